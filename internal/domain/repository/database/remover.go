package database

import "context"

type Remover interface {
	RemoveImage(ctx context.Context, albumID, imageID string) error
	RemoveAlbum(ctx context.Context, id string) error
}
