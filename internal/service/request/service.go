package request

import (
	"context"
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/kintai-app/kintai-backend-go/internal/domain/attendance"
	"github.com/kintai-app/kintai-backend-go/internal/domain/request"
	"github.com/kintai-app/kintai-backend-go/internal/pkg/validator"
)

type RequestServiceImpl struct {
	request.RequestRepository
}

func NewRequestService(requestRepo request.RequestRepository) request.RequestService {
	return &RequestServiceImpl{RequestRepository: requestRepo}
}

// Submit implements request.RequestService.
func (s *RequestServiceImpl) Submit(ctx context.Context, req request.CreateRequestRequest) (request.RequestResponse, error) {
	if err := req.Validate(); err != nil {
		return request.RequestResponse{}, err
	}

	date, _ := validator.IsValidDate(req.Date)

	created, err := s.RequestRepository.Create(ctx, request.Request{
		ID:            uuid.NewString(),
		EmployeeName:  req.EmployeeName,
		Date:          date,
		RequestedType: attendance.WorkType(req.RequestedType),
		Reason:        req.Reason,
		Status:        request.StatusPending,
	})
	if err != nil {
		return request.RequestResponse{}, fmt.Errorf("failed to create schedule request: %w", err)
	}

	return toRequestResponse(created), nil
}

// GetRequest implements request.RequestService.
func (s *RequestServiceImpl) GetRequest(ctx context.Context, id string) (request.RequestResponse, error) {
	req, err := s.RequestRepository.GetByID(ctx, id)
	if err != nil {
		return request.RequestResponse{}, err
	}
	return toRequestResponse(req), nil
}

// ListRequests implements request.RequestService.
func (s *RequestServiceImpl) ListRequests(ctx context.Context, filter request.RequestFilter) (request.ListRequestsResponse, error) {
	if err := filter.Validate(); err != nil {
		return request.ListRequestsResponse{}, err
	}

	requests, total, err := s.RequestRepository.List(ctx, filter)
	if err != nil {
		return request.ListRequestsResponse{}, fmt.Errorf("failed to list schedule requests: %w", err)
	}

	responses := make([]request.RequestResponse, 0, len(requests))
	for _, req := range requests {
		responses = append(responses, toRequestResponse(req))
	}

	return request.ListRequestsResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: int(math.Ceil(float64(total) / float64(filter.Limit))),
		Requests:   responses,
	}, nil
}

// Approve implements request.RequestService. Only pending requests can
// transition; a second decision on the same request is rejected.
func (s *RequestServiceImpl) Approve(ctx context.Context, id string) (request.RequestResponse, error) {
	req, err := s.RequestRepository.GetByID(ctx, id)
	if err != nil {
		return request.RequestResponse{}, err
	}
	if req.Status != request.StatusPending {
		return request.RequestResponse{}, request.ErrAlreadyProcessed
	}

	if err := s.RequestRepository.UpdateStatus(ctx, id, request.StatusApproved, nil); err != nil {
		return request.RequestResponse{}, fmt.Errorf("failed to approve schedule request: %w", err)
	}

	return s.GetRequest(ctx, id)
}

// Reject implements request.RequestService.
func (s *RequestServiceImpl) Reject(ctx context.Context, req request.RejectRequestRequest) (request.RequestResponse, error) {
	if err := req.Validate(); err != nil {
		return request.RequestResponse{}, err
	}

	existing, err := s.RequestRepository.GetByID(ctx, req.ID)
	if err != nil {
		return request.RequestResponse{}, err
	}
	if existing.Status != request.StatusPending {
		return request.RequestResponse{}, request.ErrAlreadyProcessed
	}

	if err := s.RequestRepository.UpdateStatus(ctx, req.ID, request.StatusRejected, &req.Reason); err != nil {
		return request.RequestResponse{}, fmt.Errorf("failed to reject schedule request: %w", err)
	}

	return s.GetRequest(ctx, req.ID)
}

func toRequestResponse(req request.Request) request.RequestResponse {
	return request.RequestResponse{
		ID:              req.ID,
		EmployeeName:    req.EmployeeName,
		Date:            req.Date.Format("2006-01-02"),
		RequestedType:   string(req.RequestedType),
		Reason:          req.Reason,
		Status:          string(req.Status),
		RejectionReason: req.RejectionReason,
		CreatedAt:       req.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:       req.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}
