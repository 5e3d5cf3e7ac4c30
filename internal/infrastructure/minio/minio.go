package minio

import (
	"context"
	"fmt"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"gallery/pkg/logger"
)

// publicReadPolicy lets browsers fetch stored photos by their plain URL.
const publicReadPolicy = `{
  "Version": "2012-10-17",
  "Statement": [{
    "Effect": "Allow",
    "Principal": {"AWS": ["*"]},
    "Action": ["s3:GetObject"],
    "Resource": ["arn:aws:s3:::%s/*"]
  }]
}`

type Client struct {
	MinioClient *minio.Client
}

func New(cfg ClientConfig) (*Client, error) {
	logger.Info("connecting to minio", "endpoint", cfg.Endpoint)

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		logger.Error("failed to initialize MinIO client", "err", err)

		return nil, err
	}

	return &Client{
		MinioClient: client,
	}, nil
}

// EnsureBucket creates the photo bucket when missing and opens it for
// anonymous reads.
func (c *Client) EnsureBucket(ctx context.Context, bucket string) error {
	exists, err := c.MinioClient.BucketExists(ctx, bucket)
	if err != nil {
		return err
	}

	if !exists {
		logger.Info("creating bucket", "bucket", bucket)

		if err := c.MinioClient.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			return err
		}
	}

	return c.MinioClient.SetBucketPolicy(ctx, bucket, fmt.Sprintf(publicReadPolicy, bucket))
}
