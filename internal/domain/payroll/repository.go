package payroll

import "context"

type PayrollRepository interface {
	List(ctx context.Context) ([]PayrollRecord, error)
	GetByEmployeeID(ctx context.Context, employeeID int) (PayrollRecord, error)
}
