package report

import "github.com/kintai-app/kintai-backend-go/internal/pkg/validator"

type MonthlyReportFilter struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

func (f *MonthlyReportFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Year < 2000 || f.Year > 2100 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be between 2000 and 2100",
		})
	}

	// Month range is enforced again by the fiscal resolver; validating
	// here keeps contract violations out of the report service.
	if f.Month < 1 || f.Month > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// EmployeeSummary is one employee's aggregated work time for a fiscal
// month window.
type EmployeeSummary struct {
	EmployeeName    string `json:"employee_name"`
	DaysWorked      int    `json:"days_worked"`
	WorkMinutes     int    `json:"work_minutes"`
	BreakMinutes    int    `json:"break_minutes"`
	NetMinutes      int    `json:"net_minutes"`
	TotalWorkTime   string `json:"total_work_time"`
	AchievementRate string `json:"achievement_rate"` // percent of the monthly target, 1dp
}

type MonthlyReportResponse struct {
	Year        int               `json:"year"`
	Month       int               `json:"month"`
	Label       string            `json:"label"`
	StartDate   string            `json:"start_date"`
	EndDate     string            `json:"end_date"`
	DayCount    int               `json:"day_count"`
	TargetHours int               `json:"target_hours"`
	Employees   []EmployeeSummary `json:"employees"`
}

// FiscalMonthResponse is one row of the admin settings screen: the
// fiscal window plus its configured target.
type FiscalMonthResponse struct {
	Month       int    `json:"month"`
	Label       string `json:"label"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	DayCount    int    `json:"day_count"`
	TargetHours int    `json:"target_hours"`
}
