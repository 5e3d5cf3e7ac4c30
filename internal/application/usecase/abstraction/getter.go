package abstraction

import (
	"context"

	"gallery/internal/domain/dto"
)

// Getter defines the interface for retrieving one album.
type Getter interface {
	GetAlbum(ctx context.Context, id string) (*dto.AlbumDescriptor, int, error)
}
