package dashboard

import "github.com/shopspring/decimal"

// DashboardResponse is the combined response for the main dashboard view.
type DashboardResponse struct {
	TotalEmployees         int                `json:"total_employees"`
	AttendanceRate         int                `json:"attendance_rate"` // integer percent
	AttendanceRateDisplay  string             `json:"attendance_rate_display"`
	PendingLeaves          int                `json:"pending_leaves"`
	MonthlyPayroll         decimal.Decimal    `json:"monthly_payroll"`
	MonthlyPayrollDisplay  string             `json:"monthly_payroll_display"` // abbreviated
	DepartmentDistribution []DepartmentCount  `json:"department_distribution"`
	PayrollByDepartment    []DepartmentAmount `json:"payroll_by_department"`
	RecentLeaves           []RecentLeave      `json:"recent_leaves"`
}

// DepartmentCount is one pie-chart slice. Departments appear in first-seen
// order; an empty department name forms its own group.
type DepartmentCount struct {
	Department string `json:"department"`
	Count      int    `json:"count"`
}

type DepartmentAmount struct {
	Department    string          `json:"department"`
	Amount        decimal.Decimal `json:"amount"`
	AmountDisplay string          `json:"amount_display"` // abbreviated, e.g. "R68K"
}

type RecentLeave struct {
	EmployeeName string `json:"employee_name"`
	Reason       string `json:"reason"`
	Date         string `json:"date"`
	DateDisplay  string `json:"date_display"`
	Status       string `json:"status"`
}
