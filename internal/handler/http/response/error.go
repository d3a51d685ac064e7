package response

import (
	"errors"
	"net/http"

	"github.com/kintai-app/kintai-backend-go/internal/domain/attendance"
	"github.com/kintai-app/kintai-backend-go/internal/domain/auth"
	"github.com/kintai-app/kintai-backend-go/internal/domain/fiscal"
	"github.com/kintai-app/kintai-backend-go/internal/domain/request"
	"github.com/kintai-app/kintai-backend-go/internal/domain/settings"
	"github.com/kintai-app/kintai-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth errors
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or missing token")
	case errors.Is(err, auth.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrEntryNotFound):
		NotFound(w, "Attendance entry not found")
	case errors.Is(err, attendance.ErrDuplicateEntry):
		Conflict(w, "An attendance entry already exists for this employee and date")

	// Schedule request domain errors
	case errors.Is(err, request.ErrRequestNotFound):
		NotFound(w, "Schedule request not found")
	case errors.Is(err, request.ErrAlreadyProcessed):
		Conflict(w, "Schedule request already processed")

	// Settings and fiscal errors
	case errors.Is(err, settings.ErrUnknownCategory):
		BadRequest(w, "Unknown settings category", nil)
	case errors.Is(err, fiscal.ErrInvalidMonth):
		BadRequest(w, "Month must be between 1 and 12", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
