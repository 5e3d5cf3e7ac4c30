package dto

import (
	"time"

	"gallery/internal/domain/model"
)

type ImageDescriptor struct {
	ID         string `json:"id"`
	URL        string `json:"url"`
	PublicID   string `json:"public_id"`
	LikesCount int    `json:"likesCount"`
	Views      int64  `json:"views"`
}

// AlbumDescriptor is the client facing form of an album. Like identities are
// reduced to a count so caller addresses never leave the server.
type AlbumDescriptor struct {
	ID           string            `json:"_id"`
	Title        string            `json:"title"`
	Description  string            `json:"description"`
	Category     string            `json:"category"`
	Tags         []string          `json:"tags"`
	Images       []ImageDescriptor `json:"images"`
	WatchLink    string            `json:"watchLink"`
	DownloadLink string            `json:"downloadLink"`
	ExtraLinks   []string          `json:"extraLinks"`
	LikesCount   int               `json:"likesCount"`
	Views        int64             `json:"views"`
	CreatedAt    time.Time         `json:"createdAt"`
}

func NewAlbumDescriptor(a *model.Album) AlbumDescriptor {
	images := make([]ImageDescriptor, 0, len(a.Images))
	for _, img := range a.Images {
		images = append(images, ImageDescriptor{
			ID:         img.ID,
			URL:        img.URL,
			PublicID:   img.PublicID,
			LikesCount: len(img.Likes),
			Views:      img.Views,
		})
	}

	return AlbumDescriptor{
		ID:           a.ID.Hex(),
		Title:        a.Title,
		Description:  a.Description,
		Category:     a.Category,
		Tags:         nonNil(a.Tags),
		Images:       images,
		WatchLink:    a.WatchLink,
		DownloadLink: a.DownloadLink,
		ExtraLinks:   nonNil(a.ExtraLinks),
		LikesCount:   len(a.Likes),
		Views:        a.Views,
		CreatedAt:    a.CreatedAt,
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}

	return s
}
