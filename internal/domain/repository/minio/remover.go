package minio

import "context"

type Remover interface {
	Remove(ctx context.Context, objectNames ...string) error
}
