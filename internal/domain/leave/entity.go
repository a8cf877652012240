package leave

import "time"

type LeaveRequestStatus string

const (
	LeaveRequestStatusPending  LeaveRequestStatus = "Pending"
	LeaveRequestStatusApproved LeaveRequestStatus = "Approved"
	LeaveRequestStatusDenied   LeaveRequestStatus = "Denied"
)

// LeaveRequest is identified by (EmployeeID, Date). Status is the only field
// that ever changes, and only Pending -> Approved or Pending -> Denied.
type LeaveRequest struct {
	EmployeeID   int
	EmployeeName string
	Date         time.Time
	Reason       string
	Status       LeaveRequestStatus
}
