package settings

// DefaultRecord returns the hard-coded settings used to seed a fresh
// store and to answer reads when the persisted document cannot be
// parsed. The March target is shorter to absorb the fiscal year-end.
func DefaultRecord() Record {
	return Record{
		WorkHours: map[string]int{
			"1":  177,
			"2":  177,
			"3":  160,
			"4":  177,
			"5":  171,
			"6":  177,
			"7":  171,
			"8":  177,
			"9":  177,
			"10": 171,
			"11": 177,
			"12": 171,
		},
		PaidLeave: PaidLeave{BaseCount: 10},
	}
}
