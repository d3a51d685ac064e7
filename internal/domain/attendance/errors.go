package attendance

import "errors"

// Attendance domain errors
var (
	ErrEntryNotFound  = errors.New("attendance entry not found")
	ErrDuplicateEntry = errors.New("attendance entry already exists for this employee and date")
)
