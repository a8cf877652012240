package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/moderntech-solutions/hrms-backend-go/internal/domain/leave"
	"github.com/moderntech-solutions/hrms-backend-go/internal/handler/http/response"
)

type LeaveHandler interface {
	ListQueue(w http.ResponseWriter, r *http.Request)
	Summary(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Deny(w http.ResponseWriter, r *http.Request)
}

type leaveHandlerImpl struct {
	leaveService leave.LeaveService
}

func NewLeaveHandler(leaveService leave.LeaveService) LeaveHandler {
	return &leaveHandlerImpl{
		leaveService: leaveService,
	}
}

// ListQueue implements LeaveHandler
func (h *leaveHandlerImpl) ListQueue(w http.ResponseWriter, r *http.Request) {
	results, err := h.leaveService.ListQueue(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// Summary implements LeaveHandler
func (h *leaveHandlerImpl) Summary(w http.ResponseWriter, r *http.Request) {
	result, err := h.leaveService.Summary(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Approve implements LeaveHandler
func (h *leaveHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	h.review(w, r, h.leaveService.Approve, "Leave request approved")
}

// Deny implements LeaveHandler
func (h *leaveHandlerImpl) Deny(w http.ResponseWriter, r *http.Request) {
	h.review(w, r, h.leaveService.Deny, "Leave request denied")
}

// review handles the shared decode/validate/respond flow for both decisions.
func (h *leaveHandlerImpl) review(
	w http.ResponseWriter,
	r *http.Request,
	decide func(context.Context, leave.ReviewLeaveRequest) (leave.LeaveRequestResponse, error),
	message string,
) {
	var req leave.ReviewLeaveRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Leave review decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := decide(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	slog.Info("Leave request reviewed", "employee_id", result.EmployeeID, "status", result.Status)
	response.SuccessWithMessage(w, message, result)
}
