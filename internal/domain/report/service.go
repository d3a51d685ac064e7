package report

import "context"

// ReportService defines business logic for fiscal-month reporting
type ReportService interface {
	// Monthly builds the work-hour report for one fiscal month window
	Monthly(ctx context.Context, filter MonthlyReportFilter) (MonthlyReportResponse, error)

	// FiscalMonths lists the twelve fiscal windows of a reference year
	// with their configured targets, for the admin settings screen
	FiscalMonths(ctx context.Context, year int) ([]FiscalMonthResponse, error)
}
