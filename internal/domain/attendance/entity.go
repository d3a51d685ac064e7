package attendance

import (
	"time"

	"github.com/kintai-app/kintai-backend-go/internal/domain/worktime"
)

// WorkType classifies one attendance entry.
type WorkType string

const (
	WorkTypeRegular          WorkType = "出勤"
	WorkTypeScheduledOff     WorkType = "公休"
	WorkTypeHalfDayOff       WorkType = "半休"
	WorkTypeEarlyLeave       WorkType = "早退"
	WorkTypeLateArrival      WorkType = "遅刻"
	WorkTypePaidLeave        WorkType = "有給休暇"
	WorkTypeHolidayWork      WorkType = "休日出勤"
	WorkTypeCompensatoryWork WorkType = "振替出勤"
)

// IsLeaveType reports whether the work type is exempt from shift and
// break time computation. Leave-type entries never carry a total work
// time.
func (w WorkType) IsLeaveType() bool {
	return w == WorkTypeScheduledOff || w == WorkTypePaidLeave
}

// ValidWorkTypes lists every accepted work type value.
func ValidWorkTypes() []string {
	return []string{
		string(WorkTypeRegular),
		string(WorkTypeScheduledOff),
		string(WorkTypeHalfDayOff),
		string(WorkTypeEarlyLeave),
		string(WorkTypeLateArrival),
		string(WorkTypePaidLeave),
		string(WorkTypeHolidayWork),
		string(WorkTypeCompensatoryWork),
	}
}

// Entry is one employee's attendance record for one working day. Minute
// totals and TotalWorkTime are derived from the shift and breaks, never
// set directly, and are recomputed on every change to either.
type Entry struct {
	ID            string
	EmployeeName  string
	WorkType      WorkType
	Date          time.Time
	ShiftStart    *time.Time
	ShiftEnd      *time.Time
	Breaks        []worktime.BreakRecord
	WorkMinutes   *int
	BreakMinutes  *int
	NetMinutes    *int
	TotalWorkTime *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
