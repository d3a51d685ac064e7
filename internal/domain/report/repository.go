package report

import (
	"context"
	"time"
)

// EmployeeAggregate is the per-employee minute rollup produced by the
// data store for a date range. Leave-type entries are excluded.
type EmployeeAggregate struct {
	EmployeeName string
	DaysWorked   int
	WorkMinutes  int
	BreakMinutes int
	NetMinutes   int
}

// ReportRepository defines the aggregation queries behind the monthly
// work-hour report.
type ReportRepository interface {
	// SummarizeByEmployee aggregates entries with dates in [start, end],
	// inclusive, grouped by employee
	SummarizeByEmployee(ctx context.Context, start, end time.Time) ([]EmployeeAggregate, error)
}
