package leave

import (
	"context"
	"sort"

	"github.com/moderntech-solutions/hrms-backend-go/internal/domain/leave"
	"github.com/moderntech-solutions/hrms-backend-go/internal/pkg/format"
	"github.com/moderntech-solutions/hrms-backend-go/internal/pkg/validator"
)

type LeaveServiceImpl struct {
	leave.LeaveRepository
}

func NewLeaveService(repo leave.LeaveRepository) leave.LeaveService {
	return &LeaveServiceImpl{LeaveRepository: repo}
}

// ListQueue implements leave.LeaveService.
func (s *LeaveServiceImpl) ListQueue(ctx context.Context) ([]leave.LeaveRequestResponse, error) {
	requests, err := s.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	SortQueue(requests)

	out := make([]leave.LeaveRequestResponse, 0, len(requests))
	for _, req := range requests {
		out = append(out, toResponse(req))
	}
	return out, nil
}

// SortQueue orders requests Pending first, then most recent date first.
// sort.SliceStable keeps fixture order for equal elements, making the
// ordering a strict total order.
func SortQueue(requests []leave.LeaveRequest) {
	sort.SliceStable(requests, func(i, j int) bool {
		iPending := requests[i].Status == leave.LeaveRequestStatusPending
		jPending := requests[j].Status == leave.LeaveRequestStatusPending
		if iPending != jPending {
			return iPending
		}
		return requests[i].Date.After(requests[j].Date)
	})
}

// Summary implements leave.LeaveService.
func (s *LeaveServiceImpl) Summary(ctx context.Context) (leave.LeaveSummaryResponse, error) {
	requests, err := s.ListAll(ctx)
	if err != nil {
		return leave.LeaveSummaryResponse{}, err
	}

	var summary leave.LeaveSummaryResponse
	for _, req := range requests {
		switch req.Status {
		case leave.LeaveRequestStatusApproved:
			summary.Approved++
		case leave.LeaveRequestStatusPending:
			summary.Pending++
		case leave.LeaveRequestStatusDenied:
			summary.Denied++
		}
	}
	return summary, nil
}

// Approve implements leave.LeaveService.
func (s *LeaveServiceImpl) Approve(ctx context.Context, req leave.ReviewLeaveRequest) (leave.LeaveRequestResponse, error) {
	return s.review(ctx, req, leave.LeaveRequestStatusApproved)
}

// Deny implements leave.LeaveService.
func (s *LeaveServiceImpl) Deny(ctx context.Context, req leave.ReviewLeaveRequest) (leave.LeaveRequestResponse, error) {
	return s.review(ctx, req, leave.LeaveRequestStatusDenied)
}

func (s *LeaveServiceImpl) review(ctx context.Context, req leave.ReviewLeaveRequest, decision leave.LeaveRequestStatus) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	date, _ := validator.IsValidDate(req.Date)

	request, err := s.GetByEmployeeAndDate(ctx, req.EmployeeID, date)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	if request.Status != leave.LeaveRequestStatusPending {
		// Terminal states are not reversible and not re-enterable.
		return leave.LeaveRequestResponse{}, leave.ErrLeaveAlreadyProcessed
	}

	if err := s.UpdateStatus(ctx, req.EmployeeID, date, decision); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	request.Status = decision
	return toResponse(request), nil
}

func toResponse(req leave.LeaveRequest) leave.LeaveRequestResponse {
	return leave.LeaveRequestResponse{
		EmployeeID:   req.EmployeeID,
		EmployeeName: req.EmployeeName,
		Date:         format.ISODate(req.Date),
		DateDisplay:  format.ShortDate(req.Date),
		Reason:       req.Reason,
		Status:       req.Status,
		Actionable:   req.Status == leave.LeaveRequestStatusPending,
	}
}
