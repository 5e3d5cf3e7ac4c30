package broker

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"gallery/internal/domain/repository/broker"
	"gallery/pkg/logger"
)

type Receiver struct {
	redis     *redis.Client
	stream    string
	group     string
	blockTime time.Duration
}

func NewReceiver(client *Client, cfg ReceiverConfig) *Receiver {
	blockTime := time.Duration(cfg.BlockTime) * time.Millisecond
	if blockTime <= 0 {
		blockTime = 5 * time.Second
	}

	return &Receiver{
		redis:     client.redis,
		stream:    client.stream,
		group:     client.group,
		blockTime: blockTime,
	}
}

func (r *Receiver) Messages(ctx context.Context, consumerName string) (<-chan broker.Message, error) {
	if r.redis == nil {
		logger.Error("redis client is nil in receiver")

		return nil, errors.New("redis not initialized")
	}

	out := make(chan broker.Message)
	go r.consumeLoop(ctx, out, consumerName)

	return out, nil
}

func (r *Receiver) consumeLoop(ctx context.Context, out chan broker.Message, consumerName string) {
	defer close(out)

	for {
		select {
		case <-ctx.Done():
			logger.Info("message receiving stopped", "consumer", consumerName)

			return
		default:
			r.readAndEmit(ctx, out, consumerName)
		}
	}
}

func (r *Receiver) readAndEmit(ctx context.Context, out chan broker.Message, consumerName string) {
	entries, err := r.redis.XReadGroup(ctx, &redis.XReadGroupArgs{
		Group:    r.group,
		Consumer: consumerName,
		Streams:  []string{r.stream, ">"},
		Count:    1,
		Block:    r.blockTime,
	}).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) && ctx.Err() == nil {
			logger.Error("failed to read from redis stream group", "stream", r.stream, "err", err)
			time.Sleep(time.Second)
		}

		return
	}

	for _, stream := range entries {
		for _, msg := range stream.Messages {
			body, ok := msg.Values["body"].(string)
			if !ok {
				logger.Error("invalid body type in redis message", "id", msg.ID)

				continue
			}

			select {
			case out <- &RedisMessage{
				stream:      r.stream,
				group:       r.group,
				consumer:    consumerName,
				id:          msg.ID,
				body:        body,
				redisClient: r.redis,
			}:
			case <-ctx.Done():
				return
			}
		}
	}
}
