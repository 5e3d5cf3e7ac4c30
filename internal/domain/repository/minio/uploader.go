package minio

import (
	"context"
	"io"

	"gallery/internal/domain/entity"
)

type Uploader interface {
	UploadFile(ctx context.Context, body io.Reader, fileSize int64) (entity.StoredObject, error)
}
