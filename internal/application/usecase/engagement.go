package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"gallery/internal/domain/entity"
	"gallery/internal/domain/repository/broker"
	"gallery/internal/domain/repository/database"
	"gallery/pkg/logger"
	"gallery/pkg/utils"
)

var (
	errAlbumNotFound = errors.New("album not found")
	errCounterFailed = errors.New("failed to update album")
)

// Engagement counts album views and likes. Every successful change is
// announced on the broker; a failed announcement never fails the request.
type Engagement struct {
	counter   database.Counter
	publisher broker.Publisher
}

func NewEngagement(counter database.Counter, publisher broker.Publisher) *Engagement {
	return &Engagement{
		counter:   counter,
		publisher: publisher,
	}
}

// ViewAlbum adds one view and returns the new total. Views are not unique per
// caller.
func (e *Engagement) ViewAlbum(ctx context.Context, albumID string) (int64, int, error) {
	views, err := e.counter.IncrementViews(ctx, albumID)
	if err != nil {
		return 0, counterStatus(err), counterError(err)
	}

	e.publish(ctx, entity.EngagementEvent{
		Kind:    entity.EngagementView,
		AlbumID: albumID,
		Count:   views,
	})

	return views, http.StatusOK, nil
}

// LikeAlbum adds identity to the album likes once and returns the like count.
func (e *Engagement) LikeAlbum(ctx context.Context, albumID, identity string) (int64, int, error) {
	if identity == "" {
		identity = utils.UnknownIdentity
	}

	likes, err := e.counter.AppendLikeIfAbsent(ctx, albumID, identity)
	if err != nil {
		return 0, counterStatus(err), counterError(err)
	}

	e.publish(ctx, entity.EngagementEvent{
		Kind:     entity.EngagementLike,
		AlbumID:  albumID,
		Identity: identity,
		Count:    likes,
	})

	return likes, http.StatusOK, nil
}

func (e *Engagement) publish(ctx context.Context, event entity.EngagementEvent) {
	if e.publisher == nil {
		return
	}

	event.At = time.Now().UTC()

	body, err := json.Marshal(event)
	if err != nil {
		logger.Error("failed to encode engagement event", "err", err)

		return
	}

	if err := e.publisher.Publish(ctx, string(body)); err != nil {
		logger.Warn("failed to publish engagement event", "kind", event.Kind, "album_id", event.AlbumID, "err", err)
	}
}

func counterStatus(err error) int {
	if errors.Is(err, database.ErrNotFound) {
		return http.StatusNotFound
	}

	return http.StatusInternalServerError
}

func counterError(err error) error {
	if errors.Is(err, database.ErrNotFound) {
		return errAlbumNotFound
	}

	return errCounterFailed
}
