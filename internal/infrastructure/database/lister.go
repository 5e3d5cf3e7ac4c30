package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"gallery/internal/domain/dto"
	"gallery/internal/domain/model"
	"gallery/pkg/logger"
)

// listingOrder is shared by ListAll and PageImages so that a page of the
// image feed is always a contiguous slice of the full flattened listing.
var listingOrder = bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}

type AlbumLister struct {
	db *Database
}

func NewAlbumLister(db *Database) *AlbumLister {
	return &AlbumLister{db: db}
}

func (l *AlbumLister) ListAll(ctx context.Context) ([]model.Album, error) {
	ctx, cancel := context.WithTimeout(ctx, l.db.QueryTimeout)
	defer cancel()

	cursor, err := l.db.Collection(AlbumCollection).Find(ctx, bson.M{}, options.Find().SetSort(listingOrder))
	if err != nil {
		logger.Error("failed to list albums", "err", err)

		return nil, err
	}
	defer cursor.Close(ctx)

	albums := []model.Album{}
	if err = cursor.All(ctx, &albums); err != nil {
		logger.Error("failed to decode albums", "err", err)

		return nil, err
	}

	return albums, nil
}

// PageImages flattens albums into image views inside the database and returns
// limit views starting at offset, together with the total number of images.
func (l *AlbumLister) PageImages(ctx context.Context, offset, limit int) ([]dto.ImageView, int, error) {
	ctx, cancel := context.WithTimeout(ctx, l.db.QueryTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$sort", Value: listingOrder}},
		{{Key: "$unwind", Value: bson.D{
			{Key: "path", Value: "$images"},
			{Key: "includeArrayIndex", Value: "index"},
		}}},
		{{Key: "$facet", Value: bson.D{
			{Key: "total", Value: bson.A{bson.D{{Key: "$count", Value: "count"}}}},
			{Key: "items", Value: bson.A{
				bson.D{{Key: "$skip", Value: int64(offset)}},
				bson.D{{Key: "$limit", Value: int64(limit)}},
				bson.D{{Key: "$project", Value: imageViewProjection}},
			}},
		}}},
	}

	cursor, err := l.db.Collection(AlbumCollection).Aggregate(ctx, pipeline)
	if err != nil {
		logger.Error("failed to aggregate image feed", "err", err)

		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var result []struct {
		Total []struct {
			Count int `bson:"count"`
		} `bson:"total"`
		Items []dto.ImageView `bson:"items"`
	}
	if err = cursor.All(ctx, &result); err != nil {
		logger.Error("failed to decode image feed", "err", err)

		return nil, 0, err
	}

	views := []dto.ImageView{}
	total := 0
	if len(result) > 0 {
		if len(result[0].Total) > 0 {
			total = result[0].Total[0].Count
		}
		if result[0].Items != nil {
			views = result[0].Items
		}
	}

	return views, total, nil
}

var imageViewProjection = bson.D{
	{Key: "_id", Value: 0},
	{Key: "imageId", Value: "$images.id"},
	{Key: "url", Value: "$images.url"},
	{Key: "public_id", Value: "$images.public_id"},
	{Key: "imageLikesCount", Value: sizeOf("$images.likes")},
	{Key: "imageViews", Value: bson.D{{Key: "$ifNull", Value: bson.A{"$images.views", 0}}}},
	{Key: "albumId", Value: bson.D{{Key: "$toString", Value: "$_id"}}},
	{Key: "albumTitle", Value: "$title"},
	{Key: "albumDescription", Value: "$description"},
	{Key: "albumCategory", Value: "$category"},
	{Key: "albumLikesCount", Value: sizeOf("$likes")},
	{Key: "albumViews", Value: "$views"},
	{Key: "watchLink", Value: bson.D{{Key: "$ifNull", Value: bson.A{"$watchLink", ""}}}},
	{Key: "downloadLink", Value: bson.D{{Key: "$ifNull", Value: bson.A{"$downloadLink", ""}}}},
	{Key: "extraLinks", Value: bson.D{{Key: "$ifNull", Value: bson.A{"$extraLinks", bson.A{}}}}},
	{Key: "index", Value: "$index"},
}

func sizeOf(field string) bson.D {
	return bson.D{{Key: "$size", Value: bson.D{{Key: "$ifNull", Value: bson.A{field, bson.A{}}}}}}
}
