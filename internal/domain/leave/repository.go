package leave

import (
	"context"
	"time"
)

type LeaveRepository interface {
	// ListAll returns every leave request across all employees, fixture order.
	ListAll(ctx context.Context) ([]LeaveRequest, error)
	GetByEmployeeAndDate(ctx context.Context, employeeID int, date time.Time) (LeaveRequest, error)
	// UpdateStatus flips the status of the matched request and nothing else.
	UpdateStatus(ctx context.Context, employeeID int, date time.Time, status LeaveRequestStatus) error
}
