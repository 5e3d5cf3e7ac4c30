package database

import (
	"context"

	"gallery/internal/domain/model"
)

type Retriever interface {
	GetByID(ctx context.Context, id string) (*model.Album, error)
	GetByImageID(ctx context.Context, imageID string) (*model.Album, error)
}
