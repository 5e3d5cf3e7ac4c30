package database

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	repository "gallery/internal/domain/repository/database"
	"gallery/pkg/logger"
)

// EngagementCounter mutates album counters with single-document atomic
// updates only; it never reads a document back to write it again.
type EngagementCounter struct {
	db *Database
}

func NewEngagementCounter(db *Database) *EngagementCounter {
	return &EngagementCounter{db: db}
}

func (c *EngagementCounter) IncrementViews(ctx context.Context, id string) (int64, error) {
	oid, err := objectID(id)
	if err != nil {
		return 0, err
	}

	ctx, cancel := context.WithTimeout(ctx, c.db.QueryTimeout)
	defer cancel()

	opts := options.FindOneAndUpdate().
		SetReturnDocument(options.After).
		SetProjection(bson.M{"views": 1})

	var result struct {
		Views int64 `bson:"views"`
	}
	err = c.db.Collection(AlbumCollection).
		FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$inc": bson.M{"views": 1}}, opts).
		Decode(&result)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return 0, repository.ErrNotFound
		}

		logger.Error("failed to increment album views", "album_id", id, "err", err)

		return 0, err
	}

	return result.Views, nil
}

// AppendLikeIfAbsent adds identity to the album's like set. The filter only
// matches while identity is absent, so racing duplicates update at most once.
func (c *EngagementCounter) AppendLikeIfAbsent(ctx context.Context, id, identity string) (int64, error) {
	oid, err := objectID(id)
	if err != nil {
		return 0, err
	}

	ctx, cancel := context.WithTimeout(ctx, c.db.QueryTimeout)
	defer cancel()

	coll := c.db.Collection(AlbumCollection)
	projection := bson.M{"likesCount": sizeOf("$likes")}

	var result struct {
		LikesCount int64 `bson:"likesCount"`
	}

	err = coll.FindOneAndUpdate(ctx,
		bson.M{"_id": oid, "likes": bson.M{"$ne": identity}},
		bson.M{"$addToSet": bson.M{"likes": identity}},
		options.FindOneAndUpdate().SetReturnDocument(options.After).SetProjection(projection),
	).Decode(&result)
	if err == nil {
		return result.LikesCount, nil
	}

	if !errors.Is(err, mongo.ErrNoDocuments) {
		logger.Error("failed to like album", "album_id", id, "err", err)

		return 0, err
	}

	// Nothing matched: either the album is missing or identity already liked it.
	err = coll.FindOne(ctx, bson.M{"_id": oid}, options.FindOne().SetProjection(projection)).Decode(&result)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return 0, repository.ErrNotFound
		}

		logger.Error("failed to read album likes", "album_id", id, "err", err)

		return 0, err
	}

	return result.LikesCount, nil
}
