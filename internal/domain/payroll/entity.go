package payroll

import "github.com/shopspring/decimal"

// PayrollRecord is one month of pay for one employee. FinalSalary never
// exceeds the employee's base salary; the deduction amount is derived as
// base salary minus FinalSalary and never stored.
type PayrollRecord struct {
	EmployeeID      int
	HoursWorked     int
	LeaveDeductions int // hours
	FinalSalary     decimal.Decimal
}
