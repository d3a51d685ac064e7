package report

import (
	"context"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/kintai-app/kintai-backend-go/internal/domain/fiscal"
	"github.com/kintai-app/kintai-backend-go/internal/domain/report"
	"github.com/kintai-app/kintai-backend-go/internal/domain/settings"
	"github.com/kintai-app/kintai-backend-go/internal/domain/worktime"
)

type ReportServiceImpl struct {
	reportRepo    report.ReportRepository
	settingsStore settings.Store
}

func NewReportService(reportRepo report.ReportRepository, settingsStore settings.Store) report.ReportService {
	return &ReportServiceImpl{
		reportRepo:    reportRepo,
		settingsStore: settingsStore,
	}
}

// Monthly implements report.ReportService.
func (s *ReportServiceImpl) Monthly(ctx context.Context, filter report.MonthlyReportFilter) (report.MonthlyReportResponse, error) {
	if err := filter.Validate(); err != nil {
		return report.MonthlyReportResponse{}, err
	}

	window, err := fiscal.Resolve(filter.Year, filter.Month)
	if err != nil {
		return report.MonthlyReportResponse{}, err
	}

	record, err := s.settingsStore.Read(ctx)
	if err != nil {
		return report.MonthlyReportResponse{}, fmt.Errorf("failed to read settings: %w", err)
	}
	targetHours := record.WorkHours[strconv.Itoa(filter.Month)]

	aggregates, err := s.reportRepo.SummarizeByEmployee(ctx, window.StartDate, window.EndDate)
	if err != nil {
		return report.MonthlyReportResponse{}, fmt.Errorf("failed to summarize attendance: %w", err)
	}

	employees := make([]report.EmployeeSummary, 0, len(aggregates))
	for _, agg := range aggregates {
		employees = append(employees, report.EmployeeSummary{
			EmployeeName:    agg.EmployeeName,
			DaysWorked:      agg.DaysWorked,
			WorkMinutes:     agg.WorkMinutes,
			BreakMinutes:    agg.BreakMinutes,
			NetMinutes:      agg.NetMinutes,
			TotalWorkTime:   worktime.FormatMinutes(agg.NetMinutes),
			AchievementRate: achievementRate(agg.NetMinutes, targetHours),
		})
	}

	return report.MonthlyReportResponse{
		Year:        filter.Year,
		Month:       filter.Month,
		Label:       window.Label(),
		StartDate:   window.StartDate.Format("2006-01-02"),
		EndDate:     window.EndDate.Format("2006-01-02"),
		DayCount:    window.DayCount,
		TargetHours: targetHours,
		Employees:   employees,
	}, nil
}

// FiscalMonths implements report.ReportService.
func (s *ReportServiceImpl) FiscalMonths(ctx context.Context, year int) ([]report.FiscalMonthResponse, error) {
	record, err := s.settingsStore.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}

	windows := fiscal.ResolveYear(year)
	months := make([]report.FiscalMonthResponse, 0, len(windows))
	for _, w := range windows {
		months = append(months, report.FiscalMonthResponse{
			Month:       w.Month,
			Label:       w.Label(),
			StartDate:   w.StartDate.Format("2006-01-02"),
			EndDate:     w.EndDate.Format("2006-01-02"),
			DayCount:    w.DayCount,
			TargetHours: record.WorkHours[strconv.Itoa(w.Month)],
		})
	}

	return months, nil
}

// achievementRate renders net worked minutes as a percentage of the
// monthly hour target, rounded to one decimal place. A zero target has
// no meaningful rate.
func achievementRate(netMinutes, targetHours int) string {
	if targetHours <= 0 {
		return "0.0"
	}
	targetMinutes := decimal.NewFromInt(int64(targetHours) * 60)
	return decimal.NewFromInt(int64(netMinutes)).
		Div(targetMinutes).
		Mul(decimal.NewFromInt(100)).
		Round(1).
		StringFixed(1)
}
