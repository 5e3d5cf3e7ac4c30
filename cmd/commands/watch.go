package commands

import (
	"context"
	"encoding/json"
	"os"
	"os/signal"
	"syscall"

	"gallery"
	"gallery/internal/domain/entity"
	"gallery/internal/infrastructure/broker"
	"gallery/pkg/logger"
)

// HandleWatch follows the engagement stream and logs every like and view.
func HandleWatch(args []string) {
	cfg := loadConfig(args)

	logger.Info("watching engagement events", "version", gallery.StringVersion(),
		"stream", cfg.BrokerConfig.StreamName, "consumer", cfg.ReceiverConfig.Consumer)

	brokerClient, err := broker.NewClient(cfg.BrokerConfig)
	if err != nil {
		ExitOnError(err)
	}
	defer brokerClient.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	messages, err := broker.NewReceiver(brokerClient, cfg.ReceiverConfig).Messages(ctx, cfg.ReceiverConfig.Consumer)
	if err != nil {
		ExitOnError(err)
	}

	for msg := range messages {
		var event entity.EngagementEvent
		if err := json.Unmarshal([]byte(msg.Body()), &event); err != nil {
			logger.Warn("dropping malformed engagement event", "id", msg.ID(), "err", err)
			_ = msg.Ack()

			continue
		}

		logger.Info("engagement", "kind", event.Kind, "album_id", event.AlbumID,
			"identity", event.Identity, "count", event.Count, "at", event.At)

		if err := msg.Ack(); err != nil {
			logger.Error("failed to ack engagement event", "id", msg.ID(), "err", err)
		}
	}

	_ = logger.Sync()
}
