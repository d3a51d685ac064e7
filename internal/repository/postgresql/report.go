package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/kintai-app/kintai-backend-go/internal/domain/attendance"
	"github.com/kintai-app/kintai-backend-go/internal/domain/report"
	"github.com/kintai-app/kintai-backend-go/internal/pkg/database"
)

type reportRepository struct {
	db *database.DB
}

func NewReportRepository(db *database.DB) report.ReportRepository {
	return &reportRepository{db: db}
}

// SummarizeByEmployee implements report.ReportRepository.
// Leave-type entries carry no minute totals and are excluded up front.
func (r *reportRepository) SummarizeByEmployee(ctx context.Context, start, end time.Time) ([]report.EmployeeAggregate, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT employee_name,
			   COUNT(*) AS days_worked,
			   COALESCE(SUM(work_minutes), 0),
			   COALESCE(SUM(break_minutes), 0),
			   COALESCE(SUM(net_minutes), 0)
		FROM attendance_entries
		WHERE date >= $1 AND date <= $2
		  AND work_type NOT IN ($3, $4)
		  AND net_minutes IS NOT NULL
		GROUP BY employee_name
		ORDER BY employee_name
	`

	rows, err := q.Query(ctx, query, start, end,
		attendance.WorkTypeScheduledOff, attendance.WorkTypePaidLeave)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize attendance by employee: %w", err)
	}
	defer rows.Close()

	var aggregates []report.EmployeeAggregate
	for rows.Next() {
		var agg report.EmployeeAggregate
		err := rows.Scan(
			&agg.EmployeeName, &agg.DaysWorked,
			&agg.WorkMinutes, &agg.BreakMinutes, &agg.NetMinutes,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee aggregate: %w", err)
		}
		aggregates = append(aggregates, agg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read employee aggregates: %w", err)
	}

	return aggregates, nil
}
