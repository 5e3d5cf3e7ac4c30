package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"gallery/internal/domain/model"
	"gallery/pkg/logger"
)

type AlbumWriter struct {
	db *Database
}

func NewAlbumWriter(db *Database) *AlbumWriter {
	return &AlbumWriter{db: db}
}

// Create inserts the album, assigning its id and creation time when unset.
func (w *AlbumWriter) Create(ctx context.Context, album *model.Album) error {
	ctx, cancel := context.WithTimeout(ctx, w.db.QueryTimeout)
	defer cancel()

	if album.ID.IsZero() {
		album.ID = primitive.NewObjectID()
	}

	if album.CreatedAt.IsZero() {
		album.CreatedAt = time.Now().UTC().Truncate(time.Millisecond)
	}

	_, err := w.db.Collection(AlbumCollection).InsertOne(ctx, album)
	if err != nil {
		logger.Error("failed to insert album", "err", err)

		return err
	}

	return nil
}
