package attendance

import (
	"context"
	"strings"

	"github.com/moderntech-solutions/hrms-backend-go/internal/domain/attendance"
	"github.com/moderntech-solutions/hrms-backend-go/internal/pkg/format"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
}

func NewAttendanceService(repo attendance.AttendanceRepository) attendance.AttendanceService {
	return &AttendanceServiceImpl{AttendanceRepository: repo}
}

// ListRecords implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListRecords(ctx context.Context, query string) ([]attendance.EmployeeAttendanceResponse, error) {
	records, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(strings.TrimSpace(query))
	out := make([]attendance.EmployeeAttendanceResponse, 0, len(records))
	for _, rec := range records {
		if needle != "" && !strings.Contains(strings.ToLower(rec.Name), needle) {
			continue
		}

		days := make([]attendance.AttendanceDayResponse, 0, len(rec.Days))
		for _, d := range rec.Days {
			days = append(days, attendance.AttendanceDayResponse{
				Date:        format.ISODate(d.Date),
				DateDisplay: format.ShortDate(d.Date),
				Status:      d.Status,
			})
		}
		out = append(out, attendance.EmployeeAttendanceResponse{
			EmployeeID: rec.EmployeeID,
			Name:       rec.Name,
			Days:       days,
		})
	}
	return out, nil
}
