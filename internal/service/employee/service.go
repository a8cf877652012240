package employee

import (
	"context"
	"strings"

	"github.com/moderntech-solutions/hrms-backend-go/internal/domain/employee"
	"github.com/moderntech-solutions/hrms-backend-go/internal/pkg/format"
)

type EmployeeServiceImpl struct {
	employee.EmployeeRepository
}

func NewEmployeeService(repo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{EmployeeRepository: repo}
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context, query string) ([]employee.EmployeeResponse, error) {
	employees, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(strings.TrimSpace(query))
	out := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		if needle != "" && !matches(emp, needle) {
			continue
		}
		out = append(out, toResponse(emp))
	}
	return out, nil
}

// matches reports whether the lowercased query is a substring of the
// employee's name, department or position.
func matches(emp employee.Employee, needle string) bool {
	return strings.Contains(strings.ToLower(emp.Name), needle) ||
		strings.Contains(strings.ToLower(emp.Department), needle) ||
		strings.Contains(strings.ToLower(emp.Position), needle)
}

// GetEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id int) (employee.EmployeeResponse, error) {
	emp, err := s.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return toResponse(emp), nil
}

// CreateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	created, err := s.Create(ctx, employee.Employee{
		Name:              req.Name,
		Position:          req.Position,
		Department:        req.Department,
		Salary:            req.Salary,
		EmploymentHistory: req.EmploymentHistory,
		Contact:           req.Contact,
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return toResponse(created), nil
}

// UpdateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	current, err := s.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	merged := req.Apply(current)
	if err := employee.ValidateMerged(merged); err != nil {
		return employee.EmployeeResponse{}, err
	}

	if err := s.Update(ctx, merged); err != nil {
		return employee.EmployeeResponse{}, err
	}
	return toResponse(merged), nil
}

// DeleteEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) DeleteEmployee(ctx context.Context, id int) error {
	return s.Delete(ctx, id)
}

// Departments implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Departments(ctx context.Context) []string {
	return employee.Departments
}

func toResponse(emp employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		EmployeeID:        emp.EmployeeID,
		Name:              emp.Name,
		Position:          emp.Position,
		Department:        emp.Department,
		Salary:            emp.Salary,
		SalaryDisplay:     format.Money(emp.Salary),
		EmploymentHistory: emp.EmploymentHistory,
		Contact:           emp.Contact,
	}
}
