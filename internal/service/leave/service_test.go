package leave

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moderntech-solutions/hrms-backend-go/internal/domain/leave"
	"github.com/moderntech-solutions/hrms-backend-go/internal/fixtures"
	"github.com/moderntech-solutions/hrms-backend-go/internal/pkg/validator"
	"github.com/moderntech-solutions/hrms-backend-go/internal/repository/memory"
)

func newTestLeaveService() leave.LeaveService {
	return NewLeaveService(memory.NewLeaveRepository(fixtures.LeaveRequests()))
}

// Test the queue ordering: all Pending first, most recent date first, and
// ties broken by fixture order
func TestLeaveService_ListQueue_Ordering(t *testing.T) {
	ctx := context.Background()
	service := newTestLeaveService()

	queue, err := service.ListQueue(ctx)
	assert.NoError(t, err)
	require.Len(t, queue, 10)

	// Pending block first, ordered by date descending.
	pendingDates := []string{"2025-08-01", "2025-07-30", "2025-07-29", "2025-07-28"}
	for i, date := range pendingDates {
		assert.Equal(t, leave.LeaveRequestStatusPending, queue[i].Status)
		assert.Equal(t, date, queue[i].Date)
		assert.True(t, queue[i].Actionable)
	}

	// Decided block after, also date descending, stable for the shared date.
	for i := 4; i < 10; i++ {
		assert.NotEqual(t, leave.LeaveRequestStatusPending, queue[i].Status)
		assert.False(t, queue[i].Actionable)
	}
	assert.Equal(t, "2025-07-25", queue[4].Date)
	assert.Equal(t, "2025-07-24", queue[5].Date)
	// Thabo (fixture index 2) precedes Fatima (index 9) on the shared 23rd.
	assert.Equal(t, "Thabo Molefe", queue[6].EmployeeName)
	assert.Equal(t, "Fatima Patel", queue[7].EmployeeName)
	assert.Equal(t, "2025-07-22", queue[8].Date)
	assert.Equal(t, "2025-07-21", queue[9].Date)
}

// Test the queue ordering is deterministic across calls
func TestLeaveService_ListQueue_Deterministic(t *testing.T) {
	ctx := context.Background()
	service := newTestLeaveService()

	first, err := service.ListQueue(ctx)
	require.NoError(t, err)
	second, err := service.ListQueue(ctx)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

// Test the status summary counts
func TestLeaveService_Summary(t *testing.T) {
	ctx := context.Background()
	service := newTestLeaveService()

	summary, err := service.Summary(ctx)
	assert.NoError(t, err)
	assert.Equal(t, leave.LeaveSummaryResponse{Approved: 4, Pending: 4, Denied: 2}, summary)
}

// Test Approve moves a pending request and leaves the rest alone
func TestLeaveService_Approve_Success(t *testing.T) {
	ctx := context.Background()
	service := newTestLeaveService()

	result, err := service.Approve(ctx, leave.ReviewLeaveRequest{EmployeeID: 2, Date: "2025-07-28"})
	assert.NoError(t, err)
	assert.Equal(t, leave.LeaveRequestStatusApproved, result.Status)
	assert.False(t, result.Actionable)
	assert.Equal(t, "Lungile Moyo", result.EmployeeName)
	assert.Equal(t, "28 Jul 2025", result.DateDisplay)

	summary, err := service.Summary(ctx)
	assert.NoError(t, err)
	assert.Equal(t, leave.LeaveSummaryResponse{Approved: 5, Pending: 3, Denied: 2}, summary)
}

// Test Deny moves a pending request to Denied
func TestLeaveService_Deny_Success(t *testing.T) {
	ctx := context.Background()
	service := newTestLeaveService()

	result, err := service.Deny(ctx, leave.ReviewLeaveRequest{EmployeeID: 4, Date: "2025-07-30"})
	assert.NoError(t, err)
	assert.Equal(t, leave.LeaveRequestStatusDenied, result.Status)

	summary, err := service.Summary(ctx)
	assert.NoError(t, err)
	assert.Equal(t, leave.LeaveSummaryResponse{Approved: 4, Pending: 3, Denied: 3}, summary)
}

// Test a decision only touches the matched request
func TestLeaveService_Approve_Isolation(t *testing.T) {
	ctx := context.Background()
	service := newTestLeaveService()

	before, err := service.ListQueue(ctx)
	require.NoError(t, err)

	_, err = service.Approve(ctx, leave.ReviewLeaveRequest{EmployeeID: 6, Date: "2025-08-01"})
	require.NoError(t, err)

	after, err := service.ListQueue(ctx)
	require.NoError(t, err)

	changed := 0
	for _, b := range before {
		for _, a := range after {
			if a.EmployeeID == b.EmployeeID && a.Date == b.Date && a.Status != b.Status {
				changed++
			}
		}
	}
	assert.Equal(t, 1, changed)
}

// Test that terminal states reject further decisions
func TestLeaveService_Review_AlreadyProcessed(t *testing.T) {
	ctx := context.Background()
	service := newTestLeaveService()

	// Fixture-approved request.
	_, err := service.Approve(ctx, leave.ReviewLeaveRequest{EmployeeID: 1, Date: "2025-07-22"})
	assert.ErrorIs(t, err, leave.ErrLeaveAlreadyProcessed)

	// Fixture-denied request cannot be flipped either.
	_, err = service.Approve(ctx, leave.ReviewLeaveRequest{EmployeeID: 3, Date: "2025-07-23"})
	assert.ErrorIs(t, err, leave.ErrLeaveAlreadyProcessed)

	// A request decided in this run is just as terminal.
	_, err = service.Deny(ctx, leave.ReviewLeaveRequest{EmployeeID: 2, Date: "2025-07-28"})
	require.NoError(t, err)
	_, err = service.Approve(ctx, leave.ReviewLeaveRequest{EmployeeID: 2, Date: "2025-07-28"})
	assert.ErrorIs(t, err, leave.ErrLeaveAlreadyProcessed)

	summary, err := service.Summary(ctx)
	assert.NoError(t, err)
	assert.Equal(t, leave.LeaveSummaryResponse{Approved: 4, Pending: 3, Denied: 3}, summary)
}

// Test review of a request that does not exist
func TestLeaveService_Review_NotFound(t *testing.T) {
	ctx := context.Background()
	service := newTestLeaveService()

	_, err := service.Approve(ctx, leave.ReviewLeaveRequest{EmployeeID: 2, Date: "2025-12-25"})
	assert.ErrorIs(t, err, leave.ErrLeaveRequestNotFound)

	_, err = service.Deny(ctx, leave.ReviewLeaveRequest{EmployeeID: 99, Date: "2025-07-28"})
	assert.ErrorIs(t, err, leave.ErrLeaveRequestNotFound)
}

// Test review input validation
func TestLeaveService_Review_Validation(t *testing.T) {
	ctx := context.Background()
	service := newTestLeaveService()

	tests := []struct {
		name string
		req  leave.ReviewLeaveRequest
	}{
		{"missing employee", leave.ReviewLeaveRequest{Date: "2025-07-28"}},
		{"missing date", leave.ReviewLeaveRequest{EmployeeID: 2}},
		{"malformed date", leave.ReviewLeaveRequest{EmployeeID: 2, Date: "28/07/2025"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Approve(ctx, tt.req)
			var verrs validator.ValidationErrors
			assert.ErrorAs(t, err, &verrs)
		})
	}
}
