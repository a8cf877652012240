// Package memory holds the in-memory fixture store. Each repository copies
// its seed slice on construction; mutations live only until the process
// exits, which is the whole persistence story of this dashboard.
package memory

import (
	"context"
	"sync"

	"github.com/moderntech-solutions/hrms-backend-go/internal/domain/employee"
)

type EmployeeRepository struct {
	mu        sync.RWMutex
	employees []employee.Employee
}

func NewEmployeeRepository(seed []employee.Employee) *EmployeeRepository {
	employees := make([]employee.Employee, len(seed))
	copy(employees, seed)
	return &EmployeeRepository{employees: employees}
}

func (r *EmployeeRepository) List(ctx context.Context) ([]employee.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]employee.Employee, len(r.employees))
	copy(out, r.employees)
	return out, nil
}

func (r *EmployeeRepository) GetByID(ctx context.Context, id int) (employee.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, emp := range r.employees {
		if emp.EmployeeID == id {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (r *EmployeeRepository) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	maxID := 0
	for _, emp := range r.employees {
		if emp.EmployeeID > maxID {
			maxID = emp.EmployeeID
		}
	}
	newEmployee.EmployeeID = maxID + 1
	r.employees = append(r.employees, newEmployee)
	return newEmployee, nil
}

func (r *EmployeeRepository) Update(ctx context.Context, updated employee.Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, emp := range r.employees {
		if emp.EmployeeID == updated.EmployeeID {
			r.employees[i] = updated
			return nil
		}
	}
	return employee.ErrEmployeeNotFound
}

func (r *EmployeeRepository) Delete(ctx context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, emp := range r.employees {
		if emp.EmployeeID == id {
			r.employees = append(r.employees[:i], r.employees[i+1:]...)
			return nil
		}
	}
	return employee.ErrEmployeeNotFound
}
