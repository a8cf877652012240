package employee

import "github.com/shopspring/decimal"

type Employee struct {
	EmployeeID        int
	Name              string
	Position          string
	Department        string
	Salary            decimal.Decimal // monthly, ZAR
	EmploymentHistory string
	Contact           string
}

// Departments is the fixed allowed set for the department field.
var Departments = []string{
	"Development",
	"HR",
	"QA",
	"Sales",
	"Marketing",
	"Design",
	"IT",
	"Finance",
	"Support",
}
