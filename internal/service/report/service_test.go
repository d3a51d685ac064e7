package report

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kintai-app/kintai-backend-go/internal/domain/fiscal"
	"github.com/kintai-app/kintai-backend-go/internal/domain/report"
	"github.com/kintai-app/kintai-backend-go/internal/domain/settings"
)

type fakeSettingsStore struct {
	record settings.Record
}

func (f *fakeSettingsStore) Read(_ context.Context) (settings.Record, error) {
	return f.record.Clone(), nil
}

func (f *fakeSettingsStore) ReplaceWorkHours(_ context.Context, hours map[string]int) error {
	f.record.WorkHours = hours
	return nil
}

func (f *fakeSettingsStore) ReplacePaidLeave(_ context.Context, paidLeave settings.PaidLeave) error {
	f.record.PaidLeave = paidLeave
	return nil
}

type fakeReportRepository struct {
	aggregates []report.EmployeeAggregate
	start      time.Time
	end        time.Time
}

func (f *fakeReportRepository) SummarizeByEmployee(_ context.Context, start, end time.Time) ([]report.EmployeeAggregate, error) {
	f.start = start
	f.end = end
	return f.aggregates, nil
}

func newService(aggregates []report.EmployeeAggregate) (report.ReportService, *fakeReportRepository) {
	repo := &fakeReportRepository{aggregates: aggregates}
	store := &fakeSettingsStore{record: settings.DefaultRecord()}
	return NewReportService(repo, store), repo
}

func TestMonthly_QueriesFiscalWindow(t *testing.T) {
	service, repo := newService(nil)

	resp, err := service.Monthly(context.Background(), report.MonthlyReportFilter{Year: 2024, Month: 4})
	require.NoError(t, err)

	assert.Equal(t, "2024-03-21", repo.start.Format("2006-01-02"))
	assert.Equal(t, "2024-04-20", repo.end.Format("2006-01-02"))
	assert.Equal(t, "2024-03-21", resp.StartDate)
	assert.Equal(t, "2024-04-20", resp.EndDate)
	assert.Equal(t, 31, resp.DayCount)
	assert.Equal(t, "4月 (3/21～4/20)", resp.Label)
	assert.Equal(t, 177, resp.TargetHours)
	assert.Empty(t, resp.Employees)
}

func TestMonthly_ComputesAchievementRate(t *testing.T) {
	// 177h target = 10620 minutes; 9558 net minutes is exactly 90%.
	service, _ := newService([]report.EmployeeAggregate{
		{
			EmployeeName: "山田太郎",
			DaysWorked:   20,
			WorkMinutes:  10758,
			BreakMinutes: 1200,
			NetMinutes:   9558,
		},
	})

	resp, err := service.Monthly(context.Background(), report.MonthlyReportFilter{Year: 2024, Month: 4})
	require.NoError(t, err)

	require.Len(t, resp.Employees, 1)
	summary := resp.Employees[0]
	assert.Equal(t, "159時間18分", summary.TotalWorkTime)
	assert.Equal(t, "90.0", summary.AchievementRate)
}

func TestMonthly_RateRoundsToOneDecimal(t *testing.T) {
	// 10000 / 10620 * 100 = 94.161..., rounds to 94.2.
	service, _ := newService([]report.EmployeeAggregate{
		{EmployeeName: "山田太郎", NetMinutes: 10000},
	})

	resp, err := service.Monthly(context.Background(), report.MonthlyReportFilter{Year: 2024, Month: 4})
	require.NoError(t, err)

	require.Len(t, resp.Employees, 1)
	assert.Equal(t, "94.2", resp.Employees[0].AchievementRate)
}

func TestMonthly_ZeroTargetYieldsZeroRate(t *testing.T) {
	repo := &fakeReportRepository{aggregates: []report.EmployeeAggregate{
		{EmployeeName: "山田太郎", NetMinutes: 9000},
	}}
	record := settings.DefaultRecord()
	record.WorkHours["4"] = 0
	service := NewReportService(repo, &fakeSettingsStore{record: record})

	resp, err := service.Monthly(context.Background(), report.MonthlyReportFilter{Year: 2024, Month: 4})
	require.NoError(t, err)

	require.Len(t, resp.Employees, 1)
	assert.Equal(t, "0.0", resp.Employees[0].AchievementRate)
}

func TestMonthly_InvalidFilter(t *testing.T) {
	service, _ := newService(nil)

	_, err := service.Monthly(context.Background(), report.MonthlyReportFilter{Year: 2024, Month: 13})
	require.Error(t, err)

	_, err = service.Monthly(context.Background(), report.MonthlyReportFilter{Year: 1900, Month: 4})
	require.Error(t, err)
}

func TestFiscalMonths_ListsTwelveWindows(t *testing.T) {
	service, _ := newService(nil)

	months, err := service.FiscalMonths(context.Background(), 2024)
	require.NoError(t, err)
	require.Len(t, months, 12)

	january := months[0]
	assert.Equal(t, 1, january.Month)
	assert.Equal(t, "2023-12-21", january.StartDate)
	assert.Equal(t, "2024-01-20", january.EndDate)
	assert.Equal(t, 177, january.TargetHours)

	march := months[2]
	assert.Equal(t, 160, march.TargetHours)
	assert.Equal(t, "3月 (2/21～3/20)", march.Label)

	totalDays := 0
	for _, m := range months {
		totalDays += m.DayCount
	}
	assert.Equal(t, 366, totalDays, "2024 windows must cover the leap year exactly")
}

func TestFiscalWindowMatchesResolver(t *testing.T) {
	service, repo := newService(nil)

	_, err := service.Monthly(context.Background(), report.MonthlyReportFilter{Year: 2024, Month: 1})
	require.NoError(t, err)

	window, err := fiscal.Resolve(2024, 1)
	require.NoError(t, err)
	assert.True(t, repo.start.Equal(window.StartDate))
	assert.True(t, repo.end.Equal(window.EndDate))
}
