package dashboard

import "context"

// DashboardService aggregates the fixture store into view-ready stats.
type DashboardService interface {
	// GetDashboard returns the combined dashboard data. The independent
	// aggregates are computed concurrently.
	GetDashboard(ctx context.Context) (*DashboardResponse, error)
}
