package attendance

import (
	"strconv"
	"strings"

	"github.com/kintai-app/kintai-backend-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE ENTRY DTOs
// ========================================

// BreakInput is one break interval as submitted by the form. Either
// endpoint may be absent; an incomplete break is accepted and counts as
// zero minutes.
type BreakInput struct {
	BreakStart *string `json:"break_start,omitempty"` // HH:MM
	BreakEnd   *string `json:"break_end,omitempty"`   // HH:MM
}

type CreateEntryRequest struct {
	EmployeeName string       `json:"employee_name"`
	WorkType     string       `json:"work_type"`
	Date         string       `json:"date"`                  // YYYY-MM-DD
	ShiftStart   *string      `json:"shift_start,omitempty"` // HH:MM
	ShiftEnd     *string      `json:"shift_end,omitempty"`   // HH:MM
	Breaks       []BreakInput `json:"breaks,omitempty"`
}

func (r *CreateEntryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeName) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_name",
			Message: "employee_name is required",
		})
	}

	if !validator.IsInSlice(r.WorkType, ValidWorkTypes()) {
		errs = append(errs, validator.ValidationError{
			Field:   "work_type",
			Message: "work_type must be one of: " + strings.Join(ValidWorkTypes(), ", "),
		})
	}

	if _, valid := validator.IsValidDate(r.Date); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	errs = append(errs, validateTimeField("shift_start", r.ShiftStart)...)
	errs = append(errs, validateTimeField("shift_end", r.ShiftEnd)...)
	errs = append(errs, validateBreaks(r.Breaks)...)

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateEntryRequest rewrites an entry's submitted fields. Shift and
// break values replace the stored ones wholesale so the derived total
// work time is recomputed from the request alone.
type UpdateEntryRequest struct {
	ID           string       `json:"-"`
	EmployeeName *string      `json:"employee_name,omitempty"`
	WorkType     *string      `json:"work_type,omitempty"`
	Date         *string      `json:"date,omitempty"`        // YYYY-MM-DD
	ShiftStart   *string      `json:"shift_start,omitempty"` // HH:MM
	ShiftEnd     *string      `json:"shift_end,omitempty"`   // HH:MM
	Breaks       []BreakInput `json:"breaks"`
}

func (r *UpdateEntryRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeName != nil && validator.IsEmpty(*r.EmployeeName) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_name",
			Message: "employee_name must not be empty",
		})
	}

	if r.WorkType != nil && !validator.IsInSlice(*r.WorkType, ValidWorkTypes()) {
		errs = append(errs, validator.ValidationError{
			Field:   "work_type",
			Message: "work_type must be one of: " + strings.Join(ValidWorkTypes(), ", "),
		})
	}

	if r.Date != nil {
		if _, valid := validator.IsValidDate(*r.Date); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			})
		}
	}

	errs = append(errs, validateTimeField("shift_start", r.ShiftStart)...)
	errs = append(errs, validateTimeField("shift_end", r.ShiftEnd)...)
	errs = append(errs, validateBreaks(r.Breaks)...)

	if len(errs) > 0 {
		return errs
	}

	return nil
}

func validateTimeField(field string, value *string) validator.ValidationErrors {
	if value == nil || *value == "" {
		return nil
	}
	if _, valid := validator.IsValidTimeOfDay(*value); !valid {
		return validator.ValidationErrors{{
			Field:   field,
			Message: field + " must be in HH:MM format",
		}}
	}
	return nil
}

func validateBreaks(breaks []BreakInput) validator.ValidationErrors {
	var errs validator.ValidationErrors
	for i, b := range breaks {
		prefix := "breaks[" + strconv.Itoa(i) + "]."
		errs = append(errs, validateTimeField(prefix+"break_start", b.BreakStart)...)
		errs = append(errs, validateTimeField(prefix+"break_end", b.BreakEnd)...)
	}
	return errs
}

type BreakResponse struct {
	BreakStart *string `json:"break_start,omitempty"`
	BreakEnd   *string `json:"break_end,omitempty"`
}

type EntryResponse struct {
	ID            string          `json:"id"`
	EmployeeName  string          `json:"employee_name"`
	WorkType      string          `json:"work_type"`
	Date          string          `json:"date"`
	ShiftStart    *string         `json:"shift_start,omitempty"`
	ShiftEnd      *string         `json:"shift_end,omitempty"`
	Breaks        []BreakResponse `json:"breaks"`
	WorkTime      *string         `json:"work_time,omitempty"`
	BreakTime     *string         `json:"break_time,omitempty"`
	TotalWorkTime *string         `json:"total_work_time,omitempty"`
	CreatedAt     string          `json:"created_at"`
	UpdatedAt     string          `json:"updated_at"`
}

type EntryFilter struct {
	// Search & Filter
	EmployeeName *string `json:"employee_name,omitempty"`
	WorkType     *string `json:"work_type,omitempty"`
	StartDate    *string `json:"start_date,omitempty"` // YYYY-MM-DD
	EndDate      *string `json:"end_date,omitempty"`   // YYYY-MM-DD

	// Pagination
	Page  int `json:"page"`
	Limit int `json:"limit"`

	// Sorting
	SortBy    string `json:"sort_by"`    // date, employee_name
	SortOrder string `json:"sort_order"` // asc, desc
}

func (f *EntryFilter) Validate() error {
	var errs validator.ValidationErrors

	// Page validation
	if f.Page < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page must be a positive number",
		})
	}
	if f.Page == 0 {
		f.Page = 1 // Default page
	}

	// Limit validation
	if f.Limit < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must be a positive number",
		})
	}
	if f.Limit == 0 {
		f.Limit = 20 // Default limit
	}
	if f.Limit > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must not exceed 100",
		})
	}

	if f.WorkType != nil && !validator.IsInSlice(*f.WorkType, ValidWorkTypes()) {
		errs = append(errs, validator.ValidationError{
			Field:   "work_type",
			Message: "work_type must be one of: " + strings.Join(ValidWorkTypes(), ", "),
		})
	}

	if f.StartDate != nil && *f.StartDate != "" {
		if _, valid := validator.IsValidDate(*f.StartDate); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}

	if f.EndDate != nil && *f.EndDate != "" {
		if _, valid := validator.IsValidDate(*f.EndDate); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}

	// Sort validation
	if f.SortBy != "" {
		validSortFields := []string{"date", "employee_name"}
		if !validator.IsInSlice(f.SortBy, validSortFields) {
			errs = append(errs, validator.ValidationError{
				Field:   "sort_by",
				Message: "sort_by must be one of: date, employee_name",
			})
		}
	} else {
		f.SortBy = "date" // Default sort
	}

	if f.SortOrder != "" {
		validSortOrders := []string{"asc", "desc"}
		if !validator.IsInSlice(strings.ToLower(f.SortOrder), validSortOrders) {
			errs = append(errs, validator.ValidationError{
				Field:   "sort_order",
				Message: "sort_order must be one of: asc, desc",
			})
		}
	} else {
		f.SortOrder = "desc" // Default descending (newest first)
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ListEntriesResponse struct {
	TotalCount int64           `json:"total_count"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
	TotalPages int             `json:"total_pages"`
	Entries    []EntryResponse `json:"entries"`
}
