package leave

import "github.com/moderntech-solutions/hrms-backend-go/internal/pkg/validator"

// ReviewLeaveRequest identifies the request a reviewer is acting on.
type ReviewLeaveRequest struct {
	EmployeeID int    `json:"employee_id"`
	Date       string `json:"date"` // YYYY-MM-DD
}

func (r *ReviewLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date is required",
		})
	} else if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type LeaveRequestResponse struct {
	EmployeeID   int                `json:"employee_id"`
	EmployeeName string             `json:"employee_name"`
	Date         string             `json:"date"`
	DateDisplay  string             `json:"date_display"`
	Reason       string             `json:"reason"`
	Status       LeaveRequestStatus `json:"status"`
	Actionable   bool               `json:"actionable"`
}

type LeaveSummaryResponse struct {
	Approved int `json:"approved"`
	Pending  int `json:"pending"`
	Denied   int `json:"denied"`
}
