package request

import "context"

// RequestService defines business logic for schedule requests
type RequestService interface {
	// Submit records a new pending request
	Submit(ctx context.Context, req CreateRequestRequest) (RequestResponse, error)

	// GetRequest retrieves a single request by ID
	GetRequest(ctx context.Context, id string) (RequestResponse, error)

	// ListRequests retrieves requests with filters
	ListRequests(ctx context.Context, filter RequestFilter) (ListRequestsResponse, error)

	// Approve marks a pending request approved
	Approve(ctx context.Context, id string) (RequestResponse, error)

	// Reject marks a pending request rejected with a reason
	Reject(ctx context.Context, req RejectRequestRequest) (RequestResponse, error)
}
