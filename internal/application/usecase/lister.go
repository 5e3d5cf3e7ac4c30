package usecase

import (
	"context"
	"errors"
	"net/http"

	"gallery/internal/domain/dto"
	"gallery/internal/domain/repository/database"
)

// AlbumLister lists every album, newest first.
type AlbumLister struct {
	lister database.Lister
}

func NewAlbumLister(lister database.Lister) *AlbumLister {
	return &AlbumLister{
		lister: lister,
	}
}

func (l *AlbumLister) ListAlbums(ctx context.Context) ([]dto.AlbumDescriptor, int, error) {
	albums, err := l.lister.ListAll(ctx)
	if err != nil {
		return nil, http.StatusInternalServerError, errors.New("failed to retrieve albums")
	}

	descriptors := make([]dto.AlbumDescriptor, 0, len(albums))
	for i := range albums {
		descriptors = append(descriptors, dto.NewAlbumDescriptor(&albums[i]))
	}

	return descriptors, http.StatusOK, nil
}
