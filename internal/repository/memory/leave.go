package memory

import (
	"context"
	"sync"
	"time"

	"github.com/moderntech-solutions/hrms-backend-go/internal/domain/leave"
)

type LeaveRepository struct {
	mu       sync.RWMutex
	requests []leave.LeaveRequest
}

func NewLeaveRepository(seed []leave.LeaveRequest) *LeaveRepository {
	requests := make([]leave.LeaveRequest, len(seed))
	copy(requests, seed)
	return &LeaveRepository{requests: requests}
}

func (r *LeaveRepository) ListAll(ctx context.Context) ([]leave.LeaveRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]leave.LeaveRequest, len(r.requests))
	copy(out, r.requests)
	return out, nil
}

func (r *LeaveRepository) GetByEmployeeAndDate(ctx context.Context, employeeID int, date time.Time) (leave.LeaveRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, req := range r.requests {
		if req.EmployeeID == employeeID && sameDay(req.Date, date) {
			return req, nil
		}
	}
	return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
}

func (r *LeaveRepository) UpdateStatus(ctx context.Context, employeeID int, date time.Time, status leave.LeaveRequestStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, req := range r.requests {
		if req.EmployeeID == employeeID && sameDay(req.Date, date) {
			r.requests[i].Status = status
			return nil
		}
	}
	return leave.ErrLeaveRequestNotFound
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}
