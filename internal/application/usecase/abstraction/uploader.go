package abstraction

import (
	"context"

	"gallery/internal/domain/dto"
	"gallery/internal/domain/entity"
)

type Uploader interface {
	Upload(ctx context.Context, draft entity.AlbumDraft, files []entity.UploadFile) (*dto.AlbumDescriptor, int, error)
}
