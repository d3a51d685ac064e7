package settings

import (
	"encoding/json"

	"github.com/kintai-app/kintai-backend-go/internal/pkg/validator"
)

const (
	CategoryWorkHours = "workHours"
	CategoryPaidLeave = "paidLeave"
)

// UpdateSettingsRequest replaces one settings category in full. Data is
// decoded per category by the service; there is no field-level merge
// within a category.
type UpdateSettingsRequest struct {
	Category string          `json:"category"`
	Data     json.RawMessage `json:"data"`
}

func (r *UpdateSettingsRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Category) {
		errs = append(errs, validator.ValidationError{
			Field:   "category",
			Message: "category is required",
		})
	} else if !validator.IsInSlice(r.Category, []string{CategoryWorkHours, CategoryPaidLeave}) {
		errs = append(errs, validator.ValidationError{
			Field:   "category",
			Message: "category must be one of: workHours, paidLeave",
		})
	}

	if len(r.Data) == 0 || string(r.Data) == "null" {
		errs = append(errs, validator.ValidationError{
			Field:   "data",
			Message: "data is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type SettingsResponse struct {
	WorkHours map[string]int `json:"workHours"`
	PaidLeave PaidLeave      `json:"paidLeave"`
}

func NewSettingsResponse(record Record) SettingsResponse {
	return SettingsResponse{
		WorkHours: record.WorkHours,
		PaidLeave: record.PaidLeave,
	}
}
