package broker

import (
	"context"
	"strings"

	"github.com/redis/go-redis/v9"
)

type Client struct {
	redis  *redis.Client
	stream string
	group  string
	maxLen int64
}

func NewClient(cfg Config) (*Client, error) {
	opt, err := redis.ParseURL(cfg.URI)
	if err != nil {
		return nil, err
	}

	rdb := redis.NewClient(opt)
	ctx := context.Background()

	err = rdb.XGroupCreateMkStream(ctx, cfg.StreamName, cfg.GroupName, "$").Err()
	if err != nil && !isBusyGroup(err) {
		_ = rdb.Close()

		return nil, err
	}

	return &Client{
		redis:  rdb,
		stream: cfg.StreamName,
		group:  cfg.GroupName,
		maxLen: cfg.MaxLen,
	}, nil
}

// Redis exposes the underlying connection so other stores can share it.
func (c *Client) Redis() *redis.Client {
	return c.redis
}

func (c *Client) Close() error {
	return c.redis.Close()
}

func isBusyGroup(err error) bool {
	return err != nil && strings.HasPrefix(err.Error(), "BUSYGROUP")
}
