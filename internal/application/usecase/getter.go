package usecase

import (
	"context"
	"errors"
	"net/http"

	"gallery/internal/domain/dto"
	"gallery/internal/domain/repository/database"
	"gallery/pkg/logger"
)

// Getter retrieves a single album.
type Getter struct {
	retriever database.Retriever
}

func NewGetter(retriever database.Retriever) *Getter {
	return &Getter{
		retriever: retriever,
	}
}

func (g *Getter) GetAlbum(ctx context.Context, id string) (*dto.AlbumDescriptor, int, error) {
	album, err := g.retriever.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, http.StatusNotFound, errors.New("album not found")
		}
		logger.Error("failed to retrieve album", "album_id", id, "err", err)

		return nil, http.StatusInternalServerError, errors.New("failed to retrieve album")
	}

	descriptor := dto.NewAlbumDescriptor(album)

	return &descriptor, http.StatusOK, nil
}
