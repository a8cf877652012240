package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/moderntech-solutions/hrms-backend-go/internal/domain/payroll"
	"github.com/moderntech-solutions/hrms-backend-go/internal/handler/http/response"
)

type PayrollHandler interface {
	ListPayroll(w http.ResponseWriter, r *http.Request)
	Summary(w http.ResponseWriter, r *http.Request)
	GetPayslip(w http.ResponseWriter, r *http.Request)
	DownloadPayslip(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &payrollHandlerImpl{
		payrollService: payrollService,
	}
}

// ListPayroll implements PayrollHandler
func (h *payrollHandlerImpl) ListPayroll(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	results, err := h.payrollService.ListPayroll(r.Context(), query)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// Summary implements PayrollHandler
func (h *payrollHandlerImpl) Summary(w http.ResponseWriter, r *http.Request) {
	result, err := h.payrollService.Summary(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetPayslip implements PayrollHandler
func (h *payrollHandlerImpl) GetPayslip(w http.ResponseWriter, r *http.Request) {
	employeeID, err := strconv.Atoi(chi.URLParam(r, "employeeId"))
	if err != nil {
		response.BadRequest(w, "Invalid employee ID", nil)
		return
	}

	result, err := h.payrollService.GetPayslip(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// DownloadPayslip implements PayrollHandler
func (h *payrollHandlerImpl) DownloadPayslip(w http.ResponseWriter, r *http.Request) {
	employeeID, err := strconv.Atoi(chi.URLParam(r, "employeeId"))
	if err != nil {
		response.BadRequest(w, "Invalid employee ID", nil)
		return
	}

	result, err := h.payrollService.DownloadPayslip(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, result.Message, result)
}
