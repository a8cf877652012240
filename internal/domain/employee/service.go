package employee

import "context"

// EmployeeService defines business logic for employee operations.
type EmployeeService interface {
	// ListEmployees returns employees matching the search query.
	// The query is a case-insensitive substring match against name, department
	// and position; an empty query matches all. Input order is preserved.
	ListEmployees(ctx context.Context, query string) ([]EmployeeResponse, error)

	GetEmployee(ctx context.Context, id int) (EmployeeResponse, error)

	// CreateEmployee validates the request and appends a record with
	// EmployeeID = max existing + 1. Validation faults do not mutate state.
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)

	// UpdateEmployee merges supplied fields into the matched record.
	UpdateEmployee(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)

	// DeleteEmployee removes the matched record. Dependent attendance and
	// payroll rows are not cascaded; joined views exclude the orphans.
	DeleteEmployee(ctx context.Context, id int) error

	// Departments returns the fixed allowed department set.
	Departments(ctx context.Context) []string
}
