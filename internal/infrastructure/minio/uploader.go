package minio

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"

	"gallery/internal/domain/entity"
	"gallery/pkg/logger"
	"gallery/pkg/utils"
)

// sniffSize is how much of a file is read to detect its type.
const sniffSize = 3072

var ErrUnsupportedType = errors.New("unsupported file type")

type Uploader struct {
	minioClient *minio.Client
	cfg         UploaderConfig
}

func NewUploader(minioClient *minio.Client, config UploaderConfig) *Uploader {
	return &Uploader{
		minioClient: minioClient,
		cfg:         config,
	}
}

// UploadFile stores one photo or clip under a fresh name. fileSize may be -1
// when unknown.
func (u *Uploader) UploadFile(ctx context.Context, body io.Reader, fileSize int64) (entity.StoredObject, error) {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(u.cfg.Timeout)*time.Millisecond)
	defer cancel()

	head := make([]byte, sniffSize)
	n, err := io.ReadFull(body, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) {
		if errors.Is(err, io.EOF) {
			return entity.StoredObject{}, errors.New("read error: empty file")
		}

		return entity.StoredObject{}, fmt.Errorf("read error: %w", err)
	}
	head = head[:n]

	detectedMIME := mimetype.Detect(head).String()
	if !utils.IsAllowedMediaType(detectedMIME) {
		return entity.StoredObject{}, fmt.Errorf("%w: %s", ErrUnsupportedType, detectedMIME)
	}

	objectName := uuid.New().String() + utils.GetExtensionFromMimeType(detectedMIME)

	info, err := u.minioClient.PutObject(ctx, u.cfg.Bucket, objectName,
		io.MultiReader(bytes.NewReader(head), body), fileSize,
		minio.PutObjectOptions{
			ContentType: detectedMIME,
		})
	if err != nil {
		logger.Error("failed to upload object", "object", objectName, "err", err)

		return entity.StoredObject{}, fmt.Errorf("upload failed: %w", err)
	}

	if err := u.validateFileSize(info.Size, fileSize); err != nil {
		if rmErr := u.minioClient.RemoveObject(ctx, u.cfg.Bucket, objectName, minio.RemoveObjectOptions{}); rmErr != nil {
			logger.Error("failed to remove truncated object", "object", objectName, "err", rmErr)
		}

		return entity.StoredObject{}, err
	}

	return entity.StoredObject{
		ObjectName: objectName,
		Location:   u.location(objectName),
		Bucket:     u.cfg.Bucket,
		Type:       detectedMIME,
		Size:       info.Size,
	}, nil
}

func (u *Uploader) location(objectName string) string {
	return fmt.Sprintf("%s/%s/%s", strings.TrimRight(u.cfg.PublicBaseURL, "/"), u.cfg.Bucket, objectName)
}

func (u *Uploader) validateFileSize(totalBytes, expectedSize int64) error {
	if totalBytes != expectedSize && expectedSize != -1 {
		return fmt.Errorf("file size mismatch: read %d bytes, expected %d", totalBytes, expectedSize)
	}

	return nil
}
