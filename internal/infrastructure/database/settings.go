package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"gallery/internal/domain/model"
	"gallery/pkg/logger"
)

// SettingsID is the _id of the only document in the settings collection.
const SettingsID = "site"

type SettingsStore struct {
	db *Database
}

func NewSettingsStore(db *Database) *SettingsStore {
	return &SettingsStore{db: db}
}

// Get returns the settings record, inserting defaults on first access.
func (s *SettingsStore) Get(ctx context.Context, defaults model.Settings) (*model.Settings, error) {
	ctx, cancel := context.WithTimeout(ctx, s.db.QueryTimeout)
	defer cancel()

	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)
	update := bson.M{"$setOnInsert": bson.M{
		"adminPin":   defaults.AdminPin,
		"siteName":   defaults.SiteName,
		"categories": nonNilStrings(defaults.Categories),
	}}

	var settings model.Settings
	coll := s.db.Collection(SettingsCollection)
	err := coll.FindOneAndUpdate(ctx, bson.M{"_id": SettingsID}, update, opts).Decode(&settings)
	if mongo.IsDuplicateKeyError(err) {
		// a concurrent first access won the upsert; the document exists now.
		err = coll.FindOne(ctx, bson.M{"_id": SettingsID}).Decode(&settings)
	}

	if err != nil {
		logger.Error("failed to load settings", "err", err)

		return nil, err
	}

	return &settings, nil
}

func (s *SettingsStore) SetSiteName(ctx context.Context, defaults model.Settings, siteName string) error {
	ctx, cancel := context.WithTimeout(ctx, s.db.QueryTimeout)
	defer cancel()

	update := bson.M{
		"$set": bson.M{"siteName": siteName},
		"$setOnInsert": bson.M{
			"adminPin":   defaults.AdminPin,
			"categories": nonNilStrings(defaults.Categories),
		},
	}

	_, err := s.db.Collection(SettingsCollection).UpdateOne(ctx, bson.M{"_id": SettingsID}, update,
		options.Update().SetUpsert(true))
	if err != nil {
		logger.Error("failed to update settings", "err", err)

		return err
	}

	return nil
}

func nonNilStrings(s []string) []string {
	if s == nil {
		return []string{}
	}

	return s
}
