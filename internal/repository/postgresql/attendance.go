package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/kintai-app/kintai-backend-go/internal/domain/attendance"
	"github.com/kintai-app/kintai-backend-go/internal/domain/worktime"
	"github.com/kintai-app/kintai-backend-go/internal/pkg/database"
)

type entryRepository struct {
	db *database.DB
}

func NewEntryRepository(db *database.DB) attendance.EntryRepository {
	return &entryRepository{db: db}
}

const entryColumns = `
	id, employee_name, work_type, date, shift_start, shift_end,
	work_minutes, break_minutes, net_minutes, total_work_time,
	created_at, updated_at
`

// Create implements attendance.EntryRepository.
func (r *entryRepository) Create(ctx context.Context, entry attendance.Entry) (attendance.Entry, error) {
	err := WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		query := `
			INSERT INTO attendance_entries (
				id, employee_name, work_type, date, shift_start, shift_end,
				work_minutes, break_minutes, net_minutes, total_work_time
			) VALUES (
				$1, $2, $3, $4, $5, $6, $7, $8, $9, $10
			) RETURNING created_at, updated_at
		`

		err := tx.QueryRow(ctx, query,
			entry.ID,
			entry.EmployeeName,
			entry.WorkType,
			entry.Date,
			entry.ShiftStart,
			entry.ShiftEnd,
			entry.WorkMinutes,
			entry.BreakMinutes,
			entry.NetMinutes,
			entry.TotalWorkTime,
		).Scan(&entry.CreatedAt, &entry.UpdatedAt)
		if err != nil {
			return fmt.Errorf("failed to create attendance entry: %w", err)
		}

		return insertBreaks(ctx, tx, entry.ID, entry.Breaks)
	})
	if err != nil {
		return attendance.Entry{}, err
	}

	return entry, nil
}

// GetByID implements attendance.EntryRepository.
func (r *entryRepository) GetByID(ctx context.Context, id string) (attendance.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + entryColumns + ` FROM attendance_entries WHERE id = $1`

	entry, err := scanEntry(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Entry{}, attendance.ErrEntryNotFound
		}
		return attendance.Entry{}, fmt.Errorf("failed to get attendance entry by ID: %w", err)
	}

	entry.Breaks, err = r.loadBreaks(ctx, entry.ID)
	if err != nil {
		return attendance.Entry{}, err
	}

	return entry, nil
}

// GetByEmployeeAndDate implements attendance.EntryRepository.
func (r *entryRepository) GetByEmployeeAndDate(ctx context.Context, employeeName string, date time.Time) (*attendance.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + entryColumns + `
		FROM attendance_entries
		WHERE employee_name = $1 AND date = $2
		LIMIT 1
	`

	entry, err := scanEntry(q.QueryRow(ctx, query, employeeName, date))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil // No existing entry found
		}
		return nil, fmt.Errorf("failed to get attendance entry by employee and date: %w", err)
	}

	entry.Breaks, err = r.loadBreaks(ctx, entry.ID)
	if err != nil {
		return nil, err
	}

	return &entry, nil
}

// Update implements attendance.EntryRepository.
func (r *entryRepository) Update(ctx context.Context, entry attendance.Entry) error {
	return WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		query := `
			UPDATE attendance_entries
			SET employee_name = $2, work_type = $3, date = $4,
				shift_start = $5, shift_end = $6,
				work_minutes = $7, break_minutes = $8, net_minutes = $9,
				total_work_time = $10, updated_at = NOW()
			WHERE id = $1
		`

		tag, err := tx.Exec(ctx, query,
			entry.ID,
			entry.EmployeeName,
			entry.WorkType,
			entry.Date,
			entry.ShiftStart,
			entry.ShiftEnd,
			entry.WorkMinutes,
			entry.BreakMinutes,
			entry.NetMinutes,
			entry.TotalWorkTime,
		)
		if err != nil {
			return fmt.Errorf("failed to update attendance entry: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return attendance.ErrEntryNotFound
		}

		// Breaks are replaced wholesale; the derived totals already
		// reflect the new set.
		if _, err := tx.Exec(ctx, `DELETE FROM attendance_breaks WHERE attendance_id = $1`, entry.ID); err != nil {
			return fmt.Errorf("failed to clear attendance breaks: %w", err)
		}

		return insertBreaks(ctx, tx, entry.ID, entry.Breaks)
	})
}

// Delete implements attendance.EntryRepository.
func (r *entryRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM attendance_entries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete attendance entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrEntryNotFound
	}

	return nil
}

// List implements attendance.EntryRepository.
func (r *entryRepository) List(ctx context.Context, filter attendance.EntryFilter) ([]attendance.Entry, int64, error) {
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

	if filter.WorkType != nil && *filter.WorkType != "" {
		baseWhere += fmt.Sprintf(" AND work_type = $%d", argIdx)
		args = append(args, *filter.WorkType)
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
	countQuery := "SELECT COUNT(*) FROM attendance_entries WHERE " + baseWhere
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendance entries: %w", err)
	}

	// Sorting is validated upstream; only whitelisted columns reach here.
	orderBy := filter.SortBy
	if orderBy == "" {
		orderBy = "date"
	}
	sortOrder := "DESC"
	if filter.SortOrder == "asc" {
		sortOrder = "ASC"
	}

	offset := (filter.Page - 1) * filter.Limit
	query := fmt.Sprintf(`
		SELECT %s FROM attendance_entries
		WHERE %s
		ORDER BY %s %s, created_at DESC
		LIMIT $%d OFFSET $%d
	`, entryColumns, baseWhere, orderBy, sortOrder, argIdx, argIdx+1)
	args = append(args, filter.Limit, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list attendance entries: %w", err)
	}
	defer rows.Close()

	var entries []attendance.Entry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan attendance entry: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to read attendance entries: %w", err)
	}

	for i := range entries {
		entries[i].Breaks, err = r.loadBreaks(ctx, entries[i].ID)
		if err != nil {
			return nil, 0, err
		}
	}

	return entries, total, nil
}

func (r *entryRepository) loadBreaks(ctx context.Context, entryID string) ([]worktime.BreakRecord, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT break_start, break_end
		FROM attendance_breaks
		WHERE attendance_id = $1
		ORDER BY position
	`, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to load attendance breaks: %w", err)
	}
	defer rows.Close()

	var breaks []worktime.BreakRecord
	for rows.Next() {
		var b worktime.BreakRecord
		if err := rows.Scan(&b.BreakStart, &b.BreakEnd); err != nil {
			return nil, fmt.Errorf("failed to scan attendance break: %w", err)
		}
		breaks = append(breaks, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read attendance breaks: %w", err)
	}

	return breaks, nil
}

func insertBreaks(ctx context.Context, tx pgx.Tx, entryID string, breaks []worktime.BreakRecord) error {
	for i, b := range breaks {
		_, err := tx.Exec(ctx, `
			INSERT INTO attendance_breaks (attendance_id, position, break_start, break_end)
			VALUES ($1, $2, $3, $4)
		`, entryID, i, b.BreakStart, b.BreakEnd)
		if err != nil {
			return fmt.Errorf("failed to create attendance break: %w", err)
		}
	}
	return nil
}

type entryRow interface {
	Scan(dest ...any) error
}

func scanEntry(row entryRow) (attendance.Entry, error) {
	var entry attendance.Entry
	err := row.Scan(
		&entry.ID, &entry.EmployeeName, &entry.WorkType, &entry.Date,
		&entry.ShiftStart, &entry.ShiftEnd,
		&entry.WorkMinutes, &entry.BreakMinutes, &entry.NetMinutes,
		&entry.TotalWorkTime,
		&entry.CreatedAt, &entry.UpdatedAt,
	)
	return entry, err
}
