package leave

import "context"

type LeaveService interface {
	// ListQueue returns every leave request merged into one sequence, ordered
	// Pending first and most recent date first within equal pending-ness. The
	// ordering is stable, so equal elements keep their fixture order.
	ListQueue(ctx context.Context) ([]LeaveRequestResponse, error)

	Summary(ctx context.Context) (LeaveSummaryResponse, error)

	// Approve moves a Pending request to Approved. Acting on an
	// already-decided request returns ErrLeaveAlreadyProcessed and changes
	// nothing; there is no revert transition.
	Approve(ctx context.Context, req ReviewLeaveRequest) (LeaveRequestResponse, error)

	// Deny moves a Pending request to Denied, same rules as Approve.
	Deny(ctx context.Context, req ReviewLeaveRequest) (LeaveRequestResponse, error)
}
