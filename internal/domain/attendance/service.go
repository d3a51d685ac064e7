package attendance

import "context"

// EntryService defines business logic for attendance entries
type EntryService interface {
	// CreateEntry validates a submission, derives the total work time
	// and persists the entry
	CreateEntry(ctx context.Context, req CreateEntryRequest) (EntryResponse, error)

	// GetEntry retrieves a single entry by ID
	GetEntry(ctx context.Context, id string) (EntryResponse, error)

	// UpdateEntry applies changes and recomputes the derived total work
	// time from the resulting shift and breaks
	UpdateEntry(ctx context.Context, req UpdateEntryRequest) (EntryResponse, error)

	// DeleteEntry removes an entry
	DeleteEntry(ctx context.Context, id string) error

	// ListEntries retrieves entries with filters (admin view)
	ListEntries(ctx context.Context, filter EntryFilter) (ListEntriesResponse, error)
}
