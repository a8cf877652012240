package attendance

import "context"

type AttendanceService interface {
	// ListRecords returns attendance sheets whose employee name contains the
	// query, case-insensitive; an empty query matches all.
	ListRecords(ctx context.Context, query string) ([]EmployeeAttendanceResponse, error)
}
