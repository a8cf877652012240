package memory

import (
	"context"
	"sync"

	"github.com/moderntech-solutions/hrms-backend-go/internal/domain/attendance"
)

type AttendanceRepository struct {
	mu      sync.RWMutex
	records []attendance.EmployeeAttendance
}

func NewAttendanceRepository(seed []attendance.EmployeeAttendance) *AttendanceRepository {
	records := make([]attendance.EmployeeAttendance, len(seed))
	copy(records, seed)
	return &AttendanceRepository{records: records}
}

func (r *AttendanceRepository) List(ctx context.Context) ([]attendance.EmployeeAttendance, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]attendance.EmployeeAttendance, len(r.records))
	copy(out, r.records)
	return out, nil
}
