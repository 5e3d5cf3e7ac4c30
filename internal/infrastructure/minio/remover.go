package minio

import (
	"context"
	"errors"
	"time"

	"github.com/minio/minio-go/v7"

	"gallery/pkg/logger"
)

type Remover struct {
	minioClient *minio.Client
	bucket      string
	cfg         RemoverConfig
}

func NewRemover(minioClient *minio.Client, bucket string, cfg RemoverConfig) *Remover {
	return &Remover{
		minioClient: minioClient,
		bucket:      bucket,
		cfg:         cfg,
	}
}

func (r *Remover) Remove(ctx context.Context, objectNames ...string) error {
	if len(objectNames) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, time.Duration(r.cfg.Timeout)*time.Millisecond)
	defer cancel()

	objects := make(chan minio.ObjectInfo, len(objectNames))
	for _, name := range objectNames {
		objects <- minio.ObjectInfo{Key: name}
	}
	close(objects)

	var errs []error
	for e := range r.minioClient.RemoveObjects(ctx, r.bucket, objects, minio.RemoveObjectsOptions{}) {
		logger.Error("failed to remove object", "object", e.ObjectName, "err", e.Err)
		errs = append(errs, e.Err)
	}

	return errors.Join(errs...)
}
