package attendance

import (
	"context"
	"time"
)

// EntryRepository defines data access methods for attendance entries.
type EntryRepository interface {
	// Create creates a new attendance entry together with its breaks
	Create(ctx context.Context, entry Entry) (Entry, error)

	// GetByID retrieves an entry and its breaks by ID
	GetByID(ctx context.Context, id string) (Entry, error)

	// GetByEmployeeAndDate retrieves the entry for a specific employee
	// on a specific date; nil when none exists. Used to prevent double
	// submission.
	GetByEmployeeAndDate(ctx context.Context, employeeName string, date time.Time) (*Entry, error)

	// Update rewrites an existing entry and replaces its breaks
	Update(ctx context.Context, entry Entry) error

	// Delete removes an entry and its breaks
	Delete(ctx context.Context, id string) error

	// List retrieves entries with filters and pagination
	List(ctx context.Context, filter EntryFilter) ([]Entry, int64, error)
}
