package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"gallery/pkg/logger"
)

const (
	AlbumCollection    = "album"
	SettingsCollection = "settings"
)

type Database struct {
	DBName       string
	QueryTimeout time.Duration
	Client       *mongo.Client
}

func Connect(cfg Config) (*Database, error) {
	logger.Info("connecting to mongodb", "db", cfg.DBName)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.ConnectionTimeout)*time.Millisecond)
	defer cancel()

	serverAPI := options.ServerAPI(options.ServerAPIVersion1)
	opts := options.Client().ApplyURI(cfg.URI).
		SetServerAPIOptions(serverAPI).
		SetConnectTimeout(time.Duration(cfg.ConnectionTimeout) * time.Millisecond).
		SetBSONOptions(&options.BSONOptions{
			NilSliceAsEmpty: true,
		})

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, err
	}

	qCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.QueryTimeout)*time.Millisecond)
	defer cancel()

	if err := client.Ping(qCtx, nil); err != nil {
		return nil, err
	}

	db := &Database{
		Client:       client,
		DBName:       cfg.DBName,
		QueryTimeout: time.Duration(cfg.QueryTimeout) * time.Millisecond,
	}

	if err := initAlbumCollection(db); err != nil {
		return nil, err
	}

	return db, nil
}

func (db *Database) Collection(name string) *mongo.Collection {
	return db.Client.Database(db.DBName).Collection(name)
}

func initAlbumCollection(db *Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), db.QueryTimeout)
	defer cancel()

	collections, err := db.Client.Database(db.DBName).ListCollectionNames(ctx, bson.M{"name": AlbumCollection})
	if err != nil {
		return err
	}
	if len(collections) > 0 {
		return nil // already exists
	}

	stringArray := bson.M{"bsonType": "array", "items": bson.M{"bsonType": "string"}}
	counter := bson.M{"bsonType": []string{"int", "long"}, "minimum": 0}

	collOpts := options.CreateCollection().SetValidator(bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": []string{"_id", "images", "likes", "views", "createdAt"},
			"properties": bson.M{
				"_id":          bson.M{"bsonType": "objectId"},
				"title":        bson.M{"bsonType": "string"},
				"description":  bson.M{"bsonType": "string"},
				"category":     bson.M{"bsonType": "string"},
				"tags":         stringArray,
				"watchLink":    bson.M{"bsonType": "string"},
				"downloadLink": bson.M{"bsonType": "string"},
				"extraLinks":   stringArray,
				"likes":        stringArray,
				"views":        counter,
				"createdAt":    bson.M{"bsonType": "date"},
				"images": bson.M{
					"bsonType": "array",
					"items": bson.M{
						"bsonType": "object",
						"required": []string{"id", "url", "public_id"},
						"properties": bson.M{
							"id":        bson.M{"bsonType": "string", "minLength": 1},
							"url":       bson.M{"bsonType": "string"},
							"public_id": bson.M{"bsonType": "string"},
							"likes":     stringArray,
							"views":     counter,
						},
					},
				},
			},
		},
	})

	err = db.Client.Database(db.DBName).CreateCollection(ctx, AlbumCollection, collOpts)
	if err != nil {
		return err
	}

	coll := db.Collection(AlbumCollection)
	_, err = coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}},
		},
		{
			// image ids are unique across albums so a lookup by image id has one answer.
			Keys: bson.D{{Key: "images.id", Value: 1}},
			Options: options.Index().
				SetUnique(true).
				SetPartialFilterExpression(bson.M{"images.id": bson.M{"$exists": true}}),
		},
	})

	return err
}

func (db *Database) Stop() error {
	if err := db.Client.Disconnect(context.Background()); err != nil {
		return err
	}

	return nil
}
