package database

import (
	"context"

	"gallery/internal/domain/dto"
	"gallery/internal/domain/model"
)

// Lister defines the interface for listing albums from the database.
// Both methods share one order: newest album first, images in upload order.
type Lister interface {
	ListAll(ctx context.Context) ([]model.Album, error)
	PageImages(ctx context.Context, offset, limit int) ([]dto.ImageView, int, error)
}
