package settings

// Record is the full monthly settings document: per-fiscal-month
// standard work-hour targets keyed by month number ("1"-"12") and the
// paid-leave allotment.
type Record struct {
	WorkHours map[string]int `json:"workHours"`
	PaidLeave PaidLeave      `json:"paidLeave"`
}

// PaidLeave holds the paid-leave configuration.
type PaidLeave struct {
	BaseCount int `json:"baseCount"`
}

// Clone returns a deep copy so callers can mutate the result without
// aliasing the store's snapshot.
func (r Record) Clone() Record {
	hours := make(map[string]int, len(r.WorkHours))
	for month, target := range r.WorkHours {
		hours[month] = target
	}
	return Record{WorkHours: hours, PaidLeave: r.PaidLeave}
}
