package database

import "context"

// Counter holds the atomic engagement primitives of an album.
type Counter interface {
	IncrementViews(ctx context.Context, id string) (int64, error)
	AppendLikeIfAbsent(ctx context.Context, id, identity string) (int64, error)
}
