package fiscal

import (
	"fmt"
	"time"
)

// MonthWindow is the fiscal accounting window for one calendar month:
// the 21st of the preceding month through the 20th of the target month,
// both inclusive.
type MonthWindow struct {
	Month     int
	StartDate time.Time
	EndDate   time.Time
	DayCount  int
}

// Resolve computes the fiscal window for the given month in the given
// reference year. January wraps its start into December of the previous
// year. Day counts come from real calendar subtraction, so month lengths
// and leap years are accounted for.
func Resolve(year, month int) (MonthWindow, error) {
	if month < 1 || month > 12 {
		return MonthWindow{}, ErrInvalidMonth
	}

	prevYear, prevMonth := year, month-1
	if month == 1 {
		prevYear, prevMonth = year-1, 12
	}

	start := time.Date(prevYear, time.Month(prevMonth), 21, 0, 0, 0, 0, time.UTC)
	end := time.Date(year, time.Month(month), 20, 0, 0, 0, 0, time.UTC)

	return MonthWindow{
		Month:     month,
		StartDate: start,
		EndDate:   end,
		DayCount:  int(end.Sub(start).Hours()/24) + 1,
	}, nil
}

// ResolveYear returns the twelve fiscal windows for the given reference
// year, in calendar-month order.
func ResolveYear(year int) []MonthWindow {
	windows := make([]MonthWindow, 0, 12)
	for month := 1; month <= 12; month++ {
		w, _ := Resolve(year, month)
		windows = append(windows, w)
	}
	return windows
}

// Label renders the admin-facing period label, e.g. "4月 (3/21～4/20)".
func (w MonthWindow) Label() string {
	return fmt.Sprintf("%d月 (%d/21～%d/20)", w.Month, int(w.StartDate.Month()), w.Month)
}
