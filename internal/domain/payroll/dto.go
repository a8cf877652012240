package payroll

import "github.com/shopspring/decimal"

// PayrollRowResponse is one payroll record joined with its employee.
type PayrollRowResponse struct {
	EmployeeID         int             `json:"employee_id"`
	EmployeeName       string          `json:"employee_name"`
	Position           string          `json:"position"`
	Department         string          `json:"department"`
	HoursWorked        int             `json:"hours_worked"`
	BaseSalary         decimal.Decimal `json:"base_salary"`
	BaseSalaryDisplay  string          `json:"base_salary_display"`
	Deduction          decimal.Decimal `json:"deduction"`
	DeductionDisplay   string          `json:"deduction_display"`
	FinalSalary        decimal.Decimal `json:"final_salary"`
	FinalSalaryDisplay string          `json:"final_salary_display"`
}

type PayrollSummaryResponse struct {
	TotalPayroll        decimal.Decimal `json:"total_payroll"`
	TotalPayrollDisplay string          `json:"total_payroll_display"` // abbreviated, e.g. "R569K"
	TotalHours          int             `json:"total_hours"`
	TotalDeductionHours int             `json:"total_deduction_hours"`
}

// PayslipResponse is the read-only formatted payslip shown in the modal.
type PayslipResponse struct {
	CompanyName  string `json:"company_name"`
	Period       string `json:"period"` // e.g. "January 2026"
	EmployeeName string `json:"employee_name"`
	EmployeeCode string `json:"employee_code"` // e.g. "EMP-0001"
	Department   string `json:"department"`
	Position     string `json:"position"`

	BasicSalary        decimal.Decimal `json:"basic_salary"`
	BasicSalaryDisplay string          `json:"basic_salary_display"`
	HoursWorked        int             `json:"hours_worked"`

	LeaveDeductionHours int             `json:"leave_deduction_hours"`
	Deduction           decimal.Decimal `json:"deduction"`
	DeductionDisplay    string          `json:"deduction_display"`

	NetPay        decimal.Decimal `json:"net_pay"`
	NetPayDisplay string          `json:"net_pay_display"`

	GeneratedOn string `json:"generated_on"`
}

// DownloadPayslipResponse is the notification-only download stub: a
// confirmation message, no file bytes.
type DownloadPayslipResponse struct {
	Message string `json:"message"`
}
