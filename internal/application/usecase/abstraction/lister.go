package abstraction

import (
	"context"

	"gallery/internal/domain/dto"
)

type AlbumLister interface {
	ListAlbums(ctx context.Context) ([]dto.AlbumDescriptor, int, error)
}

// Feed defines the interface for reading the flattened image feed.
type Feed interface {
	ListImages(ctx context.Context) ([]dto.ImageView, int, error)
	PageImages(ctx context.Context, page, limit int) (*dto.ImagePage, int, error)
}
