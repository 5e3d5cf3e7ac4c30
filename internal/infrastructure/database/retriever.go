package database

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"gallery/internal/domain/model"
	repository "gallery/internal/domain/repository/database"
	"gallery/pkg/logger"
)

type AlbumRetriever struct {
	db *Database
}

func NewAlbumRetriever(db *Database) *AlbumRetriever {
	return &AlbumRetriever{db: db}
}

func (r *AlbumRetriever) GetByID(ctx context.Context, id string) (*model.Album, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *AlbumRetriever) GetByImageID(ctx context.Context, imageID string) (*model.Album, error) {
	return r.findOne(ctx, bson.M{"images.id": imageID})
}

func (r *AlbumRetriever) findOne(ctx context.Context, filter bson.M) (*model.Album, error) {
	ctx, cancel := context.WithTimeout(ctx, r.db.QueryTimeout)
	defer cancel()

	var album model.Album
	err := r.db.Collection(AlbumCollection).FindOne(ctx, filter).Decode(&album)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}

		logger.Error("failed to retrieve album", "err", err)

		return nil, err
	}

	return &album, nil
}

// objectID parses an album id, reporting malformed ids as missing albums.
func objectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, repository.ErrNotFound
	}

	return oid, nil
}
