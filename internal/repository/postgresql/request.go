package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/kintai-app/kintai-backend-go/internal/domain/request"
	"github.com/kintai-app/kintai-backend-go/internal/pkg/database"
)

type requestRepository struct {
	db *database.DB
}

func NewRequestRepository(db *database.DB) request.RequestRepository {
	return &requestRepository{db: db}
}

const requestColumns = `
	id, employee_name, date, requested_type, reason,
	status, rejection_reason, created_at, updated_at
`

// Create implements request.RequestRepository.
func (r *requestRepository) Create(ctx context.Context, req request.Request) (request.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO schedule_requests (
			id, employee_name, date, requested_type, reason, status
		) VALUES (
			$1, $2, $3, $4, $5, $6
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		req.ID,
		req.EmployeeName,
		req.Date,
		req.RequestedType,
		req.Reason,
		req.Status,
	).Scan(&req.CreatedAt, &req.UpdatedAt)
	if err != nil {
		return request.Request{}, fmt.Errorf("failed to create schedule request: %w", err)
	}

	return req, nil
}

// GetByID implements request.RequestRepository.
func (r *requestRepository) GetByID(ctx context.Context, id string) (request.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + requestColumns + ` FROM schedule_requests WHERE id = $1`

	var req request.Request
	err := q.QueryRow(ctx, query, id).Scan(
		&req.ID, &req.EmployeeName, &req.Date, &req.RequestedType, &req.Reason,
		&req.Status, &req.RejectionReason, &req.CreatedAt, &req.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return request.Request{}, request.ErrRequestNotFound
		}
		return request.Request{}, fmt.Errorf("failed to get schedule request by ID: %w", err)
	}

	return req, nil
}

// UpdateStatus implements request.RequestRepository.
func (r *requestRepository) UpdateStatus(ctx context.Context, id string, status request.Status, rejectionReason *string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE schedule_requests
		SET status = $2, rejection_reason = $3, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, id, status, rejectionReason)
	if err != nil {
		return fmt.Errorf("failed to update schedule request status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return request.ErrRequestNotFound
	}

	return nil
}

// List implements request.RequestRepository.
func (r *requestRepository) List(ctx context.Context, filter request.RequestFilter) ([]request.Request, int64, error) {
	q := GetQuerier(ctx, r.db)

	// Build WHERE clause
	baseWhere := "1=1"
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeName != nil && *filter.EmployeeName != "" {
		baseWhere += fmt.Sprintf(" AND employee_name ILIKE $%d", argIdx)
		args = append(args, "%"+*filter.EmployeeName+"%")
		argIdx++
	}

	if filter.Status != nil && *filter.Status != "" {
		baseWhere += fmt.Sprintf(" AND status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}

	if filter.StartDate != nil && *filter.StartDate != "" {
		baseWhere += fmt.Sprintf(" AND date >= $%d", argIdx)
		args = append(args, *filter.StartDate)
		argIdx++
	}

	if filter.EndDate != nil && *filter.EndDate != "" {
		baseWhere += fmt.Sprintf(" AND date <= $%d", argIdx)
		args = append(args, *filter.EndDate)
		argIdx++
	}

	// Count total
	var total int64
	countQuery := "SELECT COUNT(*) FROM schedule_requests WHERE " + baseWhere
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count schedule requests: %w", err)
	}

	offset := (filter.Page - 1) * filter.Limit
	query := fmt.Sprintf(`
		SELECT %s FROM schedule_requests
		WHERE %s
		ORDER BY date DESC, created_at DESC
		LIMIT $%d OFFSET $%d
	`, requestColumns, baseWhere, argIdx, argIdx+1)
	args = append(args, filter.Limit, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list schedule requests: %w", err)
	}
	defer rows.Close()

	var requests []request.Request
	for rows.Next() {
		var req request.Request
		err := rows.Scan(
			&req.ID, &req.EmployeeName, &req.Date, &req.RequestedType, &req.Reason,
			&req.Status, &req.RejectionReason, &req.CreatedAt, &req.UpdatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan schedule request: %w", err)
		}
		requests = append(requests, req)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to read schedule requests: %w", err)
	}

	return requests, total, nil
}
