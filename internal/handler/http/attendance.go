package http

import (
	"net/http"

	"github.com/moderntech-solutions/hrms-backend-go/internal/domain/attendance"
	"github.com/moderntech-solutions/hrms-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	ListRecords(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// ListRecords implements AttendanceHandler
func (h *attendanceHandlerImpl) ListRecords(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	results, err := h.attendanceService.ListRecords(r.Context(), query)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}
