package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kintai-app/kintai-backend-go/internal/domain/attendance"
	"github.com/kintai-app/kintai-backend-go/internal/pkg/validator"
)

type fakeEntryRepository struct {
	entries map[string]attendance.Entry
}

func newFakeEntryRepository() *fakeEntryRepository {
	return &fakeEntryRepository{entries: make(map[string]attendance.Entry)}
}

func (f *fakeEntryRepository) Create(_ context.Context, entry attendance.Entry) (attendance.Entry, error) {
	entry.CreatedAt = time.Now()
	entry.UpdatedAt = entry.CreatedAt
	f.entries[entry.ID] = entry
	return entry, nil
}

func (f *fakeEntryRepository) GetByID(_ context.Context, id string) (attendance.Entry, error) {
	entry, ok := f.entries[id]
	if !ok {
		return attendance.Entry{}, attendance.ErrEntryNotFound
	}
	return entry, nil
}

func (f *fakeEntryRepository) GetByEmployeeAndDate(_ context.Context, employeeName string, date time.Time) (*attendance.Entry, error) {
	for _, entry := range f.entries {
		if entry.EmployeeName == employeeName && entry.Date.Equal(date) {
			e := entry
			return &e, nil
		}
	}
	return nil, nil
}

func (f *fakeEntryRepository) Update(_ context.Context, entry attendance.Entry) error {
	if _, ok := f.entries[entry.ID]; !ok {
		return attendance.ErrEntryNotFound
	}
	f.entries[entry.ID] = entry
	return nil
}

func (f *fakeEntryRepository) Delete(_ context.Context, id string) error {
	if _, ok := f.entries[id]; !ok {
		return attendance.ErrEntryNotFound
	}
	delete(f.entries, id)
	return nil
}

func (f *fakeEntryRepository) List(_ context.Context, _ attendance.EntryFilter) ([]attendance.Entry, int64, error) {
	var entries []attendance.Entry
	for _, entry := range f.entries {
		entries = append(entries, entry)
	}
	return entries, int64(len(entries)), nil
}

func strPtr(s string) *string { return &s }

func TestCreateEntry_ComputesWorkTime(t *testing.T) {
	repo := newFakeEntryRepository()
	service := NewEntryService(repo)

	resp, err := service.CreateEntry(context.Background(), attendance.CreateEntryRequest{
		EmployeeName: "山田太郎",
		WorkType:     "出勤",
		Date:         "2024-04-01",
		ShiftStart:   strPtr("08:00"),
		ShiftEnd:     strPtr("17:00"),
		Breaks: []attendance.BreakInput{
			{BreakStart: strPtr("12:00"), BreakEnd: strPtr("13:00")},
		},
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	require.NotNil(t, resp.WorkTime)
	assert.Equal(t, "9時間0分", *resp.WorkTime)
	require.NotNil(t, resp.BreakTime)
	assert.Equal(t, "1時間0分", *resp.BreakTime)
	require.NotNil(t, resp.TotalWorkTime)
	assert.Equal(t, "8時間0分", *resp.TotalWorkTime)
}

func TestCreateEntry_IncompleteBreakCountsZero(t *testing.T) {
	repo := newFakeEntryRepository()
	service := NewEntryService(repo)

	resp, err := service.CreateEntry(context.Background(), attendance.CreateEntryRequest{
		EmployeeName: "山田太郎",
		WorkType:     "出勤",
		Date:         "2024-04-01",
		ShiftStart:   strPtr("09:00"),
		ShiftEnd:     strPtr("18:00"),
		Breaks: []attendance.BreakInput{
			{BreakStart: strPtr("12:00")}, // no end recorded yet
			{BreakStart: strPtr("15:00"), BreakEnd: strPtr("15:30")},
		},
	})
	require.NoError(t, err)

	require.NotNil(t, resp.BreakTime)
	assert.Equal(t, "0時間30分", *resp.BreakTime)
	require.NotNil(t, resp.TotalWorkTime)
	assert.Equal(t, "8時間30分", *resp.TotalWorkTime)
}

func TestCreateEntry_MissingShiftLeavesTotalsUndefined(t *testing.T) {
	repo := newFakeEntryRepository()
	service := NewEntryService(repo)

	resp, err := service.CreateEntry(context.Background(), attendance.CreateEntryRequest{
		EmployeeName: "山田太郎",
		WorkType:     "出勤",
		Date:         "2024-04-01",
		ShiftStart:   strPtr("08:00"),
	})
	require.NoError(t, err)

	assert.Nil(t, resp.WorkTime)
	assert.Nil(t, resp.BreakTime)
	assert.Nil(t, resp.TotalWorkTime)
}

func TestCreateEntry_LeaveTypeSkipsComputation(t *testing.T) {
	repo := newFakeEntryRepository()
	service := NewEntryService(repo)

	resp, err := service.CreateEntry(context.Background(), attendance.CreateEntryRequest{
		EmployeeName: "山田太郎",
		WorkType:     "有給休暇",
		Date:         "2024-04-01",
		ShiftStart:   strPtr("08:00"),
		ShiftEnd:     strPtr("17:00"),
	})
	require.NoError(t, err)

	assert.Nil(t, resp.ShiftStart)
	assert.Nil(t, resp.ShiftEnd)
	assert.Nil(t, resp.TotalWorkTime)
}

func TestCreateEntry_DuplicateDateRejected(t *testing.T) {
	repo := newFakeEntryRepository()
	service := NewEntryService(repo)

	req := attendance.CreateEntryRequest{
		EmployeeName: "山田太郎",
		WorkType:     "出勤",
		Date:         "2024-04-01",
	}

	_, err := service.CreateEntry(context.Background(), req)
	require.NoError(t, err)

	_, err = service.CreateEntry(context.Background(), req)
	assert.ErrorIs(t, err, attendance.ErrDuplicateEntry)
}

func TestCreateEntry_ValidationErrors(t *testing.T) {
	repo := newFakeEntryRepository()
	service := NewEntryService(repo)

	_, err := service.CreateEntry(context.Background(), attendance.CreateEntryRequest{
		EmployeeName: "",
		WorkType:     "残業",
		Date:         "04-01-2024",
		ShiftStart:   strPtr("25:00"),
	})
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)

	fields := errs.ToMap()
	assert.Contains(t, fields, "employee_name")
	assert.Contains(t, fields, "work_type")
	assert.Contains(t, fields, "date")
	assert.Contains(t, fields, "shift_start")
	assert.Empty(t, repo.entries)
}

func TestUpdateEntry_RecomputesTotals(t *testing.T) {
	repo := newFakeEntryRepository()
	service := NewEntryService(repo)

	created, err := service.CreateEntry(context.Background(), attendance.CreateEntryRequest{
		EmployeeName: "山田太郎",
		WorkType:     "出勤",
		Date:         "2024-04-01",
		ShiftStart:   strPtr("08:00"),
		ShiftEnd:     strPtr("17:00"),
	})
	require.NoError(t, err)

	updated, err := service.UpdateEntry(context.Background(), attendance.UpdateEntryRequest{
		ID:       created.ID,
		ShiftEnd: strPtr("18:00"),
		Breaks: []attendance.BreakInput{
			{BreakStart: strPtr("12:00"), BreakEnd: strPtr("13:00")},
		},
	})
	require.NoError(t, err)

	require.NotNil(t, updated.TotalWorkTime)
	assert.Equal(t, "9時間0分", *updated.TotalWorkTime)
}

func TestUpdateEntry_SwitchToLeaveTypeClearsTotals(t *testing.T) {
	repo := newFakeEntryRepository()
	service := NewEntryService(repo)

	created, err := service.CreateEntry(context.Background(), attendance.CreateEntryRequest{
		EmployeeName: "山田太郎",
		WorkType:     "出勤",
		Date:         "2024-04-01",
		ShiftStart:   strPtr("08:00"),
		ShiftEnd:     strPtr("17:00"),
	})
	require.NoError(t, err)
	require.NotNil(t, created.TotalWorkTime)

	updated, err := service.UpdateEntry(context.Background(), attendance.UpdateEntryRequest{
		ID:       created.ID,
		WorkType: strPtr("公休"),
	})
	require.NoError(t, err)

	assert.Nil(t, updated.ShiftStart)
	assert.Nil(t, updated.ShiftEnd)
	assert.Nil(t, updated.TotalWorkTime)
}

func TestUpdateEntry_NotFound(t *testing.T) {
	repo := newFakeEntryRepository()
	service := NewEntryService(repo)

	_, err := service.UpdateEntry(context.Background(), attendance.UpdateEntryRequest{
		ID:           "missing",
		EmployeeName: strPtr("山田太郎"),
	})
	assert.ErrorIs(t, err, attendance.ErrEntryNotFound)
}

func TestDeleteEntry(t *testing.T) {
	repo := newFakeEntryRepository()
	service := NewEntryService(repo)

	created, err := service.CreateEntry(context.Background(), attendance.CreateEntryRequest{
		EmployeeName: "山田太郎",
		WorkType:     "出勤",
		Date:         "2024-04-01",
	})
	require.NoError(t, err)

	require.NoError(t, service.DeleteEntry(context.Background(), created.ID))
	assert.ErrorIs(t, service.DeleteEntry(context.Background(), created.ID), attendance.ErrEntryNotFound)
}

func TestListEntries_Pagination(t *testing.T) {
	repo := newFakeEntryRepository()
	service := NewEntryService(repo)

	for _, date := range []string{"2024-04-01", "2024-04-02", "2024-04-03"} {
		_, err := service.CreateEntry(context.Background(), attendance.CreateEntryRequest{
			EmployeeName: "山田太郎",
			WorkType:     "出勤",
			Date:         date,
		})
		require.NoError(t, err)
	}

	resp, err := service.ListEntries(context.Background(), attendance.EntryFilter{Limit: 2})
	require.NoError(t, err)

	assert.Equal(t, int64(3), resp.TotalCount)
	assert.Equal(t, 1, resp.Page)
	assert.Equal(t, 2, resp.Limit)
	assert.Equal(t, 2, resp.TotalPages)
}

func TestListEntries_InvalidFilter(t *testing.T) {
	repo := newFakeEntryRepository()
	service := NewEntryService(repo)

	_, err := service.ListEntries(context.Background(), attendance.EntryFilter{Limit: 500})
	require.Error(t, err)

	var errs validator.ValidationErrors
	assert.ErrorAs(t, err, &errs)
}
