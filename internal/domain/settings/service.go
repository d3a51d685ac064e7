package settings

import "context"

// SettingsService defines business logic for the admin settings screen
type SettingsService interface {
	// GetSettings returns the current settings, initializing defaults on
	// first access
	GetSettings(ctx context.Context) (SettingsResponse, error)

	// UpdateSettings replaces one category's value in full and returns
	// the resulting settings
	UpdateSettings(ctx context.Context, req UpdateSettingsRequest) (SettingsResponse, error)
}
