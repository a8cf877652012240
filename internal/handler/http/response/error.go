package response

import (
	"errors"
	"net/http"

	"github.com/moderntech-solutions/hrms-backend-go/internal/domain/auth"
	"github.com/moderntech-solutions/hrms-backend-go/internal/domain/employee"
	"github.com/moderntech-solutions/hrms-backend-go/internal/domain/leave"
	"github.com/moderntech-solutions/hrms-backend-go/internal/domain/payroll"
	"github.com/moderntech-solutions/hrms-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid session")
	case errors.Is(err, auth.ErrNoSession):
		Unauthorized(w, "No active session")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrLeaveAlreadyProcessed):
		Conflict(w, "Leave request already processed")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrPayrollNotFound):
		NotFound(w, "Payroll record not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
