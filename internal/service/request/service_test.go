package request

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kintai-app/kintai-backend-go/internal/domain/request"
	"github.com/kintai-app/kintai-backend-go/internal/pkg/validator"
)

type fakeRequestRepository struct {
	requests map[string]request.Request
}

func newFakeRequestRepository() *fakeRequestRepository {
	return &fakeRequestRepository{requests: make(map[string]request.Request)}
}

func (f *fakeRequestRepository) Create(_ context.Context, req request.Request) (request.Request, error) {
	req.CreatedAt = time.Now()
	req.UpdatedAt = req.CreatedAt
	f.requests[req.ID] = req
	return req, nil
}

func (f *fakeRequestRepository) GetByID(_ context.Context, id string) (request.Request, error) {
	req, ok := f.requests[id]
	if !ok {
		return request.Request{}, request.ErrRequestNotFound
	}
	return req, nil
}

func (f *fakeRequestRepository) UpdateStatus(_ context.Context, id string, status request.Status, rejectionReason *string) error {
	req, ok := f.requests[id]
	if !ok {
		return request.ErrRequestNotFound
	}
	req.Status = status
	req.RejectionReason = rejectionReason
	req.UpdatedAt = time.Now()
	f.requests[id] = req
	return nil
}

func (f *fakeRequestRepository) List(_ context.Context, _ request.RequestFilter) ([]request.Request, int64, error) {
	var requests []request.Request
	for _, req := range f.requests {
		requests = append(requests, req)
	}
	return requests, int64(len(requests)), nil
}

func strPtr(s string) *string { return &s }

func submitPending(t *testing.T, service request.RequestService) request.RequestResponse {
	t.Helper()
	resp, err := service.Submit(context.Background(), request.CreateRequestRequest{
		EmployeeName:  "佐藤花子",
		Date:          "2024-05-10",
		RequestedType: "有給休暇",
		Reason:        strPtr("私用のため"),
	})
	require.NoError(t, err)
	return resp
}

func TestSubmit_CreatesPendingRequest(t *testing.T) {
	service := NewRequestService(newFakeRequestRepository())

	resp := submitPending(t, service)

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, "2024-05-10", resp.Date)
	assert.Nil(t, resp.RejectionReason)
}

func TestSubmit_ValidationErrors(t *testing.T) {
	service := NewRequestService(newFakeRequestRepository())

	_, err := service.Submit(context.Background(), request.CreateRequestRequest{
		EmployeeName:  "",
		Date:          "next friday",
		RequestedType: "休み",
	})
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	fields := errs.ToMap()
	assert.Contains(t, fields, "employee_name")
	assert.Contains(t, fields, "date")
	assert.Contains(t, fields, "requested_type")
}

func TestApprove_TransitionsPending(t *testing.T) {
	service := NewRequestService(newFakeRequestRepository())
	created := submitPending(t, service)

	approved, err := service.Approve(context.Background(), created.ID)
	require.NoError(t, err)

	assert.Equal(t, "approved", approved.Status)
	assert.Nil(t, approved.RejectionReason)
}

func TestApprove_AlreadyProcessed(t *testing.T) {
	service := NewRequestService(newFakeRequestRepository())
	created := submitPending(t, service)

	_, err := service.Approve(context.Background(), created.ID)
	require.NoError(t, err)

	_, err = service.Approve(context.Background(), created.ID)
	assert.ErrorIs(t, err, request.ErrAlreadyProcessed)
}

func TestApprove_NotFound(t *testing.T) {
	service := NewRequestService(newFakeRequestRepository())

	_, err := service.Approve(context.Background(), "missing")
	assert.ErrorIs(t, err, request.ErrRequestNotFound)
}

func TestReject_RequiresReason(t *testing.T) {
	service := NewRequestService(newFakeRequestRepository())
	created := submitPending(t, service)

	_, err := service.Reject(context.Background(), request.RejectRequestRequest{ID: created.ID})
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs.ToMap(), "reason")

	// The request must still be pending after the failed rejection.
	current, err := service.GetRequest(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "pending", current.Status)
}

func TestReject_StoresReason(t *testing.T) {
	service := NewRequestService(newFakeRequestRepository())
	created := submitPending(t, service)

	rejected, err := service.Reject(context.Background(), request.RejectRequestRequest{
		ID:     created.ID,
		Reason: "人員不足のため",
	})
	require.NoError(t, err)

	assert.Equal(t, "rejected", rejected.Status)
	require.NotNil(t, rejected.RejectionReason)
	assert.Equal(t, "人員不足のため", *rejected.RejectionReason)
}

func TestReject_AlreadyProcessed(t *testing.T) {
	service := NewRequestService(newFakeRequestRepository())
	created := submitPending(t, service)

	_, err := service.Reject(context.Background(), request.RejectRequestRequest{
		ID:     created.ID,
		Reason: "人員不足のため",
	})
	require.NoError(t, err)

	_, err = service.Approve(context.Background(), created.ID)
	assert.ErrorIs(t, err, request.ErrAlreadyProcessed)
}

func TestListRequests_Pagination(t *testing.T) {
	repo := newFakeRequestRepository()
	service := NewRequestService(repo)

	for _, date := range []string{"2024-05-10", "2024-05-11", "2024-05-12"} {
		_, err := service.Submit(context.Background(), request.CreateRequestRequest{
			EmployeeName:  "佐藤花子",
			Date:          date,
			RequestedType: "公休",
		})
		require.NoError(t, err)
	}

	resp, err := service.ListRequests(context.Background(), request.RequestFilter{Limit: 2})
	require.NoError(t, err)

	assert.Equal(t, int64(3), resp.TotalCount)
	assert.Equal(t, 2, resp.TotalPages)
}
