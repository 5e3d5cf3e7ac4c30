package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	repository "gallery/internal/domain/repository/database"
	"gallery/pkg/logger"
)

type AlbumRemover struct {
	db *Database
}

func NewAlbumRemover(db *Database) *AlbumRemover {
	return &AlbumRemover{db: db}
}

// RemoveImage pulls one embedded image. The album stays even when it was the
// last image.
func (r *AlbumRemover) RemoveImage(ctx context.Context, albumID, imageID string) error {
	oid, err := objectID(albumID)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, r.db.QueryTimeout)
	defer cancel()

	res, err := r.db.Collection(AlbumCollection).UpdateOne(ctx,
		bson.M{"_id": oid, "images.id": imageID},
		bson.M{"$pull": bson.M{"images": bson.M{"id": imageID}}},
	)
	if err != nil {
		logger.Error("failed to remove image", "album_id", albumID, "image_id", imageID, "err", err)

		return err
	}

	if res.MatchedCount == 0 {
		return repository.ErrNotFound
	}

	return nil
}

func (r *AlbumRemover) RemoveAlbum(ctx context.Context, id string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, r.db.QueryTimeout)
	defer cancel()

	res, err := r.db.Collection(AlbumCollection).DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		logger.Error("failed to remove album", "album_id", id, "err", err)

		return err
	}

	if res.DeletedCount == 0 {
		return repository.ErrNotFound
	}

	return nil
}
