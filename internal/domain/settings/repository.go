package settings

import "context"

// Store is durable storage for the monthly settings record.
//
// Read must be idempotent: a store that already holds a record returns
// it unchanged, and a fresh store initializes itself with the defaults
// exactly once. Implementations serialize all access so concurrent
// category replacements cannot clobber one another.
type Store interface {
	// Read returns the current record, creating and persisting the
	// default record when none exists yet. An unreadable persisted
	// record is logged and answered with the in-memory defaults; Read
	// never fails for that reason.
	Read(ctx context.Context) (Record, error)

	// ReplaceWorkHours swaps the entire work-hours table and persists
	// the whole record. Persistence failures are surfaced.
	ReplaceWorkHours(ctx context.Context, hours map[string]int) error

	// ReplacePaidLeave swaps the paid-leave configuration and persists
	// the whole record. Persistence failures are surfaced.
	ReplacePaidLeave(ctx context.Context, paidLeave PaidLeave) error
}
