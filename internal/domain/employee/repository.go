package employee

import "context"

type EmployeeRepository interface {
	// List returns the collection in insertion order.
	List(ctx context.Context) ([]Employee, error)
	GetByID(ctx context.Context, id int) (Employee, error)
	// Create assigns EmployeeID = max existing + 1 and appends the record.
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	// Update replaces the record matched by EmployeeID.
	Update(ctx context.Context, updated Employee) error
	// Delete removes exactly the record matched by id.
	Delete(ctx context.Context, id int) error
}
