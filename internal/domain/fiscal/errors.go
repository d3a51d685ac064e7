package fiscal

import "errors"

var (
	// ErrInvalidMonth reports a month argument outside 1-12. This is a
	// caller contract violation and is never coerced.
	ErrInvalidMonth = errors.New("month must be between 1 and 12")
)
