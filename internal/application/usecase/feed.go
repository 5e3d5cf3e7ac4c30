package usecase

import (
	"context"
	"errors"
	"math"
	"net/http"

	"gallery/internal/domain/dto"
	"gallery/internal/domain/model"
	"gallery/internal/domain/repository/database"
	"gallery/pkg/logger"
)

const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100
)

var errFeedFailed = errors.New("failed to retrieve images")

// Feed flattens albums into one image stream: albums newest first, images in
// upload order.
type Feed struct {
	lister database.Lister
}

func NewFeed(lister database.Lister) *Feed {
	return &Feed{
		lister: lister,
	}
}

// ListImages returns the whole feed.
func (f *Feed) ListImages(ctx context.Context) ([]dto.ImageView, int, error) {
	albums, err := f.lister.ListAll(ctx)
	if err != nil {
		logger.Error("failed to list albums for feed", "err", err)

		return nil, http.StatusInternalServerError, errFeedFailed
	}

	return Flatten(albums), http.StatusOK, nil
}

// PageImages returns one page of the feed. page starts at 1; out of range
// values are clamped rather than rejected.
func (f *Feed) PageImages(ctx context.Context, page, limit int) (*dto.ImagePage, int, error) {
	if page < 1 {
		page = 1
	}

	switch {
	case limit < 1:
		limit = DefaultPageLimit
	case limit > MaxPageLimit:
		limit = MaxPageLimit
	}

	// Pages past the addressable range still report the total.
	offset := math.MaxInt
	if page-1 <= math.MaxInt/limit {
		offset = (page - 1) * limit
	}

	images, total, err := f.lister.PageImages(ctx, offset, limit)
	if err != nil {
		logger.Error("failed to page images", "page", page, "limit", limit, "err", err)

		return nil, http.StatusInternalServerError, errFeedFailed
	}

	if images == nil {
		images = []dto.ImageView{}
	}

	return &dto.ImagePage{
		Images:     images,
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: (total + limit - 1) / limit,
	}, http.StatusOK, nil
}

// Flatten projects every image of albums onto its album, keeping album order
// and then image order.
func Flatten(albums []model.Album) []dto.ImageView {
	views := []dto.ImageView{}

	for i := range albums {
		album := &albums[i]
		for index, img := range album.Images {
			views = append(views, dto.ImageView{
				ImageID:          img.ID,
				URL:              img.URL,
				PublicID:         img.PublicID,
				ImageLikesCount:  len(img.Likes),
				ImageViews:       img.Views,
				AlbumID:          album.ID.Hex(),
				AlbumTitle:       album.Title,
				AlbumDescription: album.Description,
				AlbumCategory:    album.Category,
				AlbumLikesCount:  len(album.Likes),
				AlbumViews:       album.Views,
				WatchLink:        album.WatchLink,
				DownloadLink:     album.DownloadLink,
				ExtraLinks:       nonNil(album.ExtraLinks),
				Index:            index,
			})
		}
	}

	return views
}
