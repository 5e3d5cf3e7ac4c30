package abstraction

import "context"

type Engagement interface {
	ViewAlbum(ctx context.Context, albumID string) (int64, int, error)
	LikeAlbum(ctx context.Context, albumID, identity string) (int64, int, error)
}
