package abstraction

import (
	"context"

	"gallery/internal/domain/dto"
)

type SettingsManager interface {
	Get(ctx context.Context) (*dto.SettingsDescriptor, int, error)
	UpdateSiteName(ctx context.Context, siteName *string) (int, error)
}

type Authenticator interface {
	CheckPin(ctx context.Context, pin string) (bool, int, error)
}
