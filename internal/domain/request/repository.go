package request

import "context"

// RequestRepository defines data access methods for schedule requests.
type RequestRepository interface {
	// Create creates a new schedule request
	Create(ctx context.Context, req Request) (Request, error)

	// GetByID retrieves a request by ID
	GetByID(ctx context.Context, id string) (Request, error)

	// UpdateStatus transitions a request's status and rejection reason
	UpdateStatus(ctx context.Context, id string, status Status, rejectionReason *string) error

	// List retrieves requests with filters and pagination
	List(ctx context.Context, filter RequestFilter) ([]Request, int64, error)
}
