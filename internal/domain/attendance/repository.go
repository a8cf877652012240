package attendance

import "context"

type AttendanceRepository interface {
	// List returns all attendance sheets in fixture order.
	List(ctx context.Context) ([]EmployeeAttendance, error)
}
