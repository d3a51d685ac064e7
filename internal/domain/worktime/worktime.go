package worktime

import (
	"fmt"
	"time"
)

// TimeInterval is a start/end wall-clock pair on a single nominal day.
// Both endpoints are anchored to the same reference date so that
// subtraction yields a pure time-of-day difference.
type TimeInterval struct {
	Start *time.Time
	End   *time.Time
}

// Minutes returns the elapsed minutes between Start and End and whether
// the interval has a defined duration. An interval missing either
// endpoint has no duration. End before Start yields negative minutes;
// no overnight wrap is applied.
func (i TimeInterval) Minutes() (int, bool) {
	if i.Start == nil || i.End == nil {
		return 0, false
	}
	return int(i.End.Sub(*i.Start) / time.Minute), true
}

// BreakRecord is one break taken during a shift. A record missing either
// endpoint is incomplete and contributes zero minutes.
type BreakRecord struct {
	BreakStart *time.Time
	BreakEnd   *time.Time
}

// TotalBreakMinutes sums the durations of the given break records.
// Incomplete records are skipped, not treated as errors. Overlapping
// breaks are not deduplicated.
func TotalBreakMinutes(breaks []BreakRecord) int {
	total := 0
	for _, b := range breaks {
		m, ok := TimeInterval{Start: b.BreakStart, End: b.BreakEnd}.Minutes()
		if !ok {
			continue
		}
		total += m
	}
	return total
}

// Summary holds the minute totals derived from one shift and its breaks.
type Summary struct {
	WorkMinutes  int
	BreakMinutes int
	NetMinutes   int
}

// Calculate derives the work/break/net summary for a shift. When the
// shift has no defined duration the second return value is false and no
// summary applies (the caller must not treat this as zero work).
func Calculate(shift TimeInterval, breaks []BreakRecord) (Summary, bool) {
	workMinutes, ok := shift.Minutes()
	if !ok {
		return Summary{}, false
	}
	breakMinutes := TotalBreakMinutes(breaks)
	return Summary{
		WorkMinutes:  workMinutes,
		BreakMinutes: breakMinutes,
		NetMinutes:   workMinutes - breakMinutes,
	}, true
}

func (s Summary) WorkTime() string  { return FormatMinutes(s.WorkMinutes) }
func (s Summary) BreakTime() string { return FormatMinutes(s.BreakMinutes) }
func (s Summary) NetTime() string   { return FormatMinutes(s.NetMinutes) }

// FormatMinutes renders a minute total as "H時間M分". Negative totals are
// rendered sign-magnitude: -90 becomes "-1時間30分", never "-1時間-30分".
func FormatMinutes(minutes int) string {
	sign := ""
	if minutes < 0 {
		sign = "-"
		minutes = -minutes
	}
	return fmt.Sprintf("%s%d時間%d分", sign, minutes/60, minutes%60)
}

// TimeOfDay anchors a wall-clock time to the shared reference date used
// by all intervals.
func TimeOfDay(hour, minute int) time.Time {
	return time.Date(0, 1, 1, hour, minute, 0, 0, time.UTC)
}
