package abstraction

import "context"

// Deleter defines the interface for deleting images and albums.
type Deleter interface {
	DeleteImage(ctx context.Context, imageID string) (int, error)
	DeleteAlbum(ctx context.Context, id string) (int, error)
}
