package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Album struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Title        string             `bson:"title"`
	Description  string             `bson:"description"`
	Category     string             `bson:"category"`
	Tags         []string           `bson:"tags"`
	Images       []Image            `bson:"images"`
	WatchLink    string             `bson:"watchLink"`
	DownloadLink string             `bson:"downloadLink"`
	ExtraLinks   []string           `bson:"extraLinks"`
	Likes        []string           `bson:"likes"` // caller identities, no duplicates
	Views        int64              `bson:"views"`
	CreatedAt    time.Time          `bson:"createdAt"`
}

// Image is embedded in an Album and shares its lifecycle.
type Image struct {
	ID       string   `bson:"id"`
	URL      string   `bson:"url"`
	PublicID string   `bson:"public_id"`
	Likes    []string `bson:"likes"`
	Views    int64    `bson:"views"`
}

// ObjectNames returns the media store handles of every embedded image.
func (a *Album) ObjectNames() []string {
	names := make([]string, 0, len(a.Images))
	for i := range a.Images {
		if a.Images[i].PublicID != "" {
			names = append(names, a.Images[i].PublicID)
		}
	}

	return names
}
