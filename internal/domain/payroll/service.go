package payroll

import "context"

type PayrollService interface {
	// ListPayroll joins every payroll record with its employee and filters by
	// a case-insensitive substring match on name or department. Records whose
	// employee no longer exists are skipped with a diagnostic, never surfaced
	// as an error.
	ListPayroll(ctx context.Context, query string) ([]PayrollRowResponse, error)

	// Summary returns exact totals; rounding happens only in the display
	// fields.
	Summary(ctx context.Context) (PayrollSummaryResponse, error)

	GetPayslip(ctx context.Context, employeeID int) (PayslipResponse, error)

	// DownloadPayslip is a notification-only stub; no file is produced.
	DownloadPayslip(ctx context.Context, employeeID int) (DownloadPayslipResponse, error)
}
