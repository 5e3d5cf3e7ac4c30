package database

import (
	"context"

	"gallery/internal/domain/model"
)

// SettingsStore owns the singleton settings record. Both methods create it
// from defaults when it does not exist yet.
type SettingsStore interface {
	Get(ctx context.Context, defaults model.Settings) (*model.Settings, error)
	SetSiteName(ctx context.Context, defaults model.Settings, siteName string) error
}
