package attendance

type AttendanceDayResponse struct {
	Date        string    `json:"date"`
	DateDisplay string    `json:"date_display"`
	Status      DayStatus `json:"status"`
}

type EmployeeAttendanceResponse struct {
	EmployeeID int                     `json:"employee_id"`
	Name       string                  `json:"name"`
	Days       []AttendanceDayResponse `json:"days"`
}
