package attendance

import "time"

type DayStatus string

const (
	DayStatusPresent DayStatus = "Present"
	DayStatusAbsent  DayStatus = "Absent"
)

// AttendanceDay is one calendar day for one employee. There is at most one
// record per (employee, date).
type AttendanceDay struct {
	Date   time.Time
	Status DayStatus
}

// EmployeeAttendance is the per-employee attendance sheet, ordered by date.
type EmployeeAttendance struct {
	EmployeeID int
	Name       string
	Days       []AttendanceDay
}
