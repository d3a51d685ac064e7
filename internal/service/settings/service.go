package settings

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/kintai-app/kintai-backend-go/internal/domain/settings"
	"github.com/kintai-app/kintai-backend-go/internal/pkg/validator"
)

type SettingsServiceImpl struct {
	store settings.Store
}

func NewSettingsService(store settings.Store) settings.SettingsService {
	return &SettingsServiceImpl{store: store}
}

// GetSettings implements settings.SettingsService.
func (s *SettingsServiceImpl) GetSettings(ctx context.Context) (settings.SettingsResponse, error) {
	record, err := s.store.Read(ctx)
	if err != nil {
		return settings.SettingsResponse{}, fmt.Errorf("failed to read settings: %w", err)
	}
	return settings.NewSettingsResponse(record), nil
}

// UpdateSettings implements settings.SettingsService. The named category
// is replaced in full; the other category is left untouched. Nothing is
// written when the payload fails validation.
func (s *SettingsServiceImpl) UpdateSettings(ctx context.Context, req settings.UpdateSettingsRequest) (settings.SettingsResponse, error) {
	if err := req.Validate(); err != nil {
		return settings.SettingsResponse{}, err
	}

	switch req.Category {
	case settings.CategoryWorkHours:
		hours, err := decodeWorkHours(req.Data)
		if err != nil {
			return settings.SettingsResponse{}, err
		}
		if err := s.store.ReplaceWorkHours(ctx, hours); err != nil {
			return settings.SettingsResponse{}, fmt.Errorf("failed to replace work hours: %w", err)
		}

	case settings.CategoryPaidLeave:
		paidLeave, err := decodePaidLeave(req.Data)
		if err != nil {
			return settings.SettingsResponse{}, err
		}
		if err := s.store.ReplacePaidLeave(ctx, paidLeave); err != nil {
			return settings.SettingsResponse{}, fmt.Errorf("failed to replace paid leave: %w", err)
		}

	default:
		return settings.SettingsResponse{}, settings.ErrUnknownCategory
	}

	record, err := s.store.Read(ctx)
	if err != nil {
		return settings.SettingsResponse{}, fmt.Errorf("failed to read settings: %w", err)
	}

	return settings.NewSettingsResponse(record), nil
}

// decodeWorkHours decodes and validates a full work-hours table: every
// month "1" through "12" present, no extra keys, no negative targets.
func decodeWorkHours(data json.RawMessage) (map[string]int, error) {
	var hours map[string]int
	if err := json.Unmarshal(data, &hours); err != nil {
		return nil, validator.ValidationErrors{{
			Field:   "data",
			Message: "data must be an object mapping month numbers to hour targets",
		}}
	}

	var errs validator.ValidationErrors
	for month := 1; month <= 12; month++ {
		key := strconv.Itoa(month)
		target, ok := hours[key]
		if !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "data." + key,
				Message: "month " + key + " is required",
			})
			continue
		}
		if target < 0 {
			errs = append(errs, validator.ValidationError{
				Field:   "data." + key,
				Message: "hour target must not be negative",
			})
		}
	}
	for key := range hours {
		if n, err := strconv.Atoi(key); err != nil || n < 1 || n > 12 {
			errs = append(errs, validator.ValidationError{
				Field:   "data." + key,
				Message: "unknown month key",
			})
		}
	}

	if len(errs) > 0 {
		return nil, errs
	}

	return hours, nil
}

func decodePaidLeave(data json.RawMessage) (settings.PaidLeave, error) {
	var paidLeave settings.PaidLeave
	if err := json.Unmarshal(data, &paidLeave); err != nil {
		return settings.PaidLeave{}, validator.ValidationErrors{{
			Field:   "data",
			Message: "data must be a paid leave object",
		}}
	}

	if paidLeave.BaseCount < 0 {
		return settings.PaidLeave{}, validator.ValidationErrors{{
			Field:   "data.baseCount",
			Message: "baseCount must not be negative",
		}}
	}

	return paidLeave, nil
}
