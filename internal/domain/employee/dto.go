package employee

import (
	"github.com/moderntech-solutions/hrms-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateEmployeeRequest struct {
	Name              string          `json:"name"`
	Position          string          `json:"position"`
	Department        string          `json:"department"`
	Salary            decimal.Decimal `json:"salary"`
	EmploymentHistory string          `json:"employment_history"`
	Contact           string          `json:"contact"`
}

func (r *CreateEmployeeRequest) Validate() error {
	errs := validateFields(r.Name, r.Position, r.Department, r.Salary, r.Contact)
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateEmployeeRequest merges supplied fields into the existing record.
// Nil fields keep their current value; EmployeeID itself is immutable.
type UpdateEmployeeRequest struct {
	EmployeeID        int              `json:"-"`
	Name              *string          `json:"name,omitempty"`
	Position          *string          `json:"position,omitempty"`
	Department        *string          `json:"department,omitempty"`
	Salary            *decimal.Decimal `json:"salary,omitempty"`
	EmploymentHistory *string          `json:"employment_history,omitempty"`
	Contact           *string          `json:"contact,omitempty"`
}

// Apply returns a copy of current with the supplied fields merged in.
func (r *UpdateEmployeeRequest) Apply(current Employee) Employee {
	merged := current
	if r.Name != nil {
		merged.Name = *r.Name
	}
	if r.Position != nil {
		merged.Position = *r.Position
	}
	if r.Department != nil {
		merged.Department = *r.Department
	}
	if r.Salary != nil {
		merged.Salary = *r.Salary
	}
	if r.EmploymentHistory != nil {
		merged.EmploymentHistory = *r.EmploymentHistory
	}
	if r.Contact != nil {
		merged.Contact = *r.Contact
	}
	return merged
}

// ValidateMerged runs create-level validation against the merged record.
func ValidateMerged(merged Employee) error {
	errs := validateFields(merged.Name, merged.Position, merged.Department, merged.Salary, merged.Contact)
	if len(errs) > 0 {
		return errs
	}
	return nil
}

func validateFields(name, position, department string, salary decimal.Decimal, contact string) validator.ValidationErrors {
	var errs validator.ValidationErrors

	if validator.IsEmpty(name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "Name is required",
		})
	}
	if validator.IsEmpty(position) {
		errs = append(errs, validator.ValidationError{
			Field:   "position",
			Message: "Position is required",
		})
	}
	if !validator.IsInSlice(department, Departments) {
		errs = append(errs, validator.ValidationError{
			Field:   "department",
			Message: "Department is required",
		})
	}
	if salary.LessThanOrEqual(decimal.Zero) {
		errs = append(errs, validator.ValidationError{
			Field:   "salary",
			Message: "Valid salary is required",
		})
	}
	if validator.IsEmpty(contact) {
		errs = append(errs, validator.ValidationError{
			Field:   "contact",
			Message: "Contact email is required",
		})
	} else if !validator.IsValidEmail(contact) {
		errs = append(errs, validator.ValidationError{
			Field:   "contact",
			Message: "Invalid email format",
		})
	}

	return errs
}

type EmployeeResponse struct {
	EmployeeID        int             `json:"employee_id"`
	Name              string          `json:"name"`
	Position          string          `json:"position"`
	Department        string          `json:"department"`
	Salary            decimal.Decimal `json:"salary"`
	SalaryDisplay     string          `json:"salary_display"`
	EmploymentHistory string          `json:"employment_history"`
	Contact           string          `json:"contact"`
}
