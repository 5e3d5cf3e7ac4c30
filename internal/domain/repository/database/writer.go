package database

import (
	"context"

	"gallery/internal/domain/model"
)

type Writer interface {
	Create(ctx context.Context, album *model.Album) error
}
