package attendance

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/kintai-app/kintai-backend-go/internal/domain/attendance"
	"github.com/kintai-app/kintai-backend-go/internal/domain/worktime"
	"github.com/kintai-app/kintai-backend-go/internal/pkg/validator"
)

type EntryServiceImpl struct {
	attendance.EntryRepository
}

func NewEntryService(entryRepo attendance.EntryRepository) attendance.EntryService {
	return &EntryServiceImpl{EntryRepository: entryRepo}
}

// CreateEntry implements attendance.EntryService.
func (s *EntryServiceImpl) CreateEntry(ctx context.Context, req attendance.CreateEntryRequest) (attendance.EntryResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.EntryResponse{}, err
	}

	date, _ := validator.IsValidDate(req.Date)
	workType := attendance.WorkType(req.WorkType)

	existing, err := s.EntryRepository.GetByEmployeeAndDate(ctx, req.EmployeeName, date)
	if err != nil {
		return attendance.EntryResponse{}, fmt.Errorf("failed to check existing attendance entry: %w", err)
	}
	if existing != nil {
		return attendance.EntryResponse{}, attendance.ErrDuplicateEntry
	}

	entry := attendance.Entry{
		ID:           uuid.NewString(),
		EmployeeName: req.EmployeeName,
		WorkType:     workType,
		Date:         date,
	}

	// Leave-type classifications carry no shift or breaks; the
	// submitted fields are ignored rather than rejected.
	if !workType.IsLeaveType() {
		entry.ShiftStart = parseTimeOfDay(req.ShiftStart)
		entry.ShiftEnd = parseTimeOfDay(req.ShiftEnd)
		entry.Breaks = parseBreaks(req.Breaks)
		applyWorkTime(&entry)
	}

	created, err := s.EntryRepository.Create(ctx, entry)
	if err != nil {
		return attendance.EntryResponse{}, fmt.Errorf("failed to create attendance entry: %w", err)
	}

	return toEntryResponse(created), nil
}

// GetEntry implements attendance.EntryService.
func (s *EntryServiceImpl) GetEntry(ctx context.Context, id string) (attendance.EntryResponse, error) {
	entry, err := s.EntryRepository.GetByID(ctx, id)
	if err != nil {
		return attendance.EntryResponse{}, err
	}
	return toEntryResponse(entry), nil
}

// UpdateEntry implements attendance.EntryService.
func (s *EntryServiceImpl) UpdateEntry(ctx context.Context, req attendance.UpdateEntryRequest) (attendance.EntryResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.EntryResponse{}, err
	}

	entry, err := s.EntryRepository.GetByID(ctx, req.ID)
	if err != nil {
		return attendance.EntryResponse{}, err
	}

	if req.EmployeeName != nil {
		entry.EmployeeName = *req.EmployeeName
	}
	if req.WorkType != nil {
		entry.WorkType = attendance.WorkType(*req.WorkType)
	}
	if req.Date != nil {
		date, _ := validator.IsValidDate(*req.Date)
		entry.Date = date
	}
	if req.ShiftStart != nil {
		entry.ShiftStart = parseTimeOfDay(req.ShiftStart)
	}
	if req.ShiftEnd != nil {
		entry.ShiftEnd = parseTimeOfDay(req.ShiftEnd)
	}
	if req.Breaks != nil {
		entry.Breaks = parseBreaks(req.Breaks)
	}

	// The total work time is derived state: every change to the shift
	// or breaks recomputes it from scratch.
	if entry.WorkType.IsLeaveType() {
		entry.ShiftStart = nil
		entry.ShiftEnd = nil
		entry.Breaks = nil
	}
	applyWorkTime(&entry)

	if err := s.EntryRepository.Update(ctx, entry); err != nil {
		return attendance.EntryResponse{}, err
	}
	entry.UpdatedAt = time.Now()

	return toEntryResponse(entry), nil
}

// DeleteEntry implements attendance.EntryService.
func (s *EntryServiceImpl) DeleteEntry(ctx context.Context, id string) error {
	return s.EntryRepository.Delete(ctx, id)
}

// ListEntries implements attendance.EntryService.
func (s *EntryServiceImpl) ListEntries(ctx context.Context, filter attendance.EntryFilter) (attendance.ListEntriesResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListEntriesResponse{}, err
	}

	entries, total, err := s.EntryRepository.List(ctx, filter)
	if err != nil {
		return attendance.ListEntriesResponse{}, fmt.Errorf("failed to list attendance entries: %w", err)
	}

	responses := make([]attendance.EntryResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, toEntryResponse(entry))
	}

	return attendance.ListEntriesResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: int(math.Ceil(float64(total) / float64(filter.Limit))),
		Entries:    responses,
	}, nil
}

// applyWorkTime recomputes the derived minute totals and display string
// from the entry's current shift and breaks. An undefined shift leaves
// the derived fields empty rather than zero.
func applyWorkTime(entry *attendance.Entry) {
	entry.WorkMinutes = nil
	entry.BreakMinutes = nil
	entry.NetMinutes = nil
	entry.TotalWorkTime = nil

	if entry.WorkType.IsLeaveType() {
		return
	}

	shift := worktime.TimeInterval{Start: entry.ShiftStart, End: entry.ShiftEnd}
	summary, ok := worktime.Calculate(shift, entry.Breaks)
	if !ok {
		return
	}

	total := summary.NetTime()
	entry.WorkMinutes = &summary.WorkMinutes
	entry.BreakMinutes = &summary.BreakMinutes
	entry.NetMinutes = &summary.NetMinutes
	entry.TotalWorkTime = &total
}

func parseTimeOfDay(value *string) *time.Time {
	if value == nil || *value == "" {
		return nil
	}
	t, ok := validator.IsValidTimeOfDay(*value)
	if !ok {
		return nil
	}
	return &t
}

func parseBreaks(inputs []attendance.BreakInput) []worktime.BreakRecord {
	breaks := make([]worktime.BreakRecord, 0, len(inputs))
	for _, in := range inputs {
		breaks = append(breaks, worktime.BreakRecord{
			BreakStart: parseTimeOfDay(in.BreakStart),
			BreakEnd:   parseTimeOfDay(in.BreakEnd),
		})
	}
	return breaks
}

func formatTimeOfDay(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.Format("15:04")
	return &formatted
}

func toEntryResponse(entry attendance.Entry) attendance.EntryResponse {
	breaks := make([]attendance.BreakResponse, 0, len(entry.Breaks))
	for _, b := range entry.Breaks {
		breaks = append(breaks, attendance.BreakResponse{
			BreakStart: formatTimeOfDay(b.BreakStart),
			BreakEnd:   formatTimeOfDay(b.BreakEnd),
		})
	}

	var workTime, breakTime *string
	if entry.WorkMinutes != nil {
		formatted := worktime.FormatMinutes(*entry.WorkMinutes)
		workTime = &formatted
	}
	if entry.BreakMinutes != nil {
		formatted := worktime.FormatMinutes(*entry.BreakMinutes)
		breakTime = &formatted
	}

	return attendance.EntryResponse{
		ID:            entry.ID,
		EmployeeName:  entry.EmployeeName,
		WorkType:      string(entry.WorkType),
		Date:          entry.Date.Format("2006-01-02"),
		ShiftStart:    formatTimeOfDay(entry.ShiftStart),
		ShiftEnd:      formatTimeOfDay(entry.ShiftEnd),
		Breaks:        breaks,
		WorkTime:      workTime,
		BreakTime:     breakTime,
		TotalWorkTime: entry.TotalWorkTime,
		CreatedAt:     entry.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:     entry.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}
