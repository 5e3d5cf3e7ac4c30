package usecase

import (
	"context"
	"errors"
	"net/http"

	"gallery/internal/domain/repository/database"
	"gallery/internal/domain/repository/minio"
	"gallery/pkg/logger"
)

var errImageNotFound = errors.New("image not found")

// Deleter removes images and albums. The database record goes first; stored
// media are removed afterwards and a failure there is only logged.
type Deleter struct {
	dbRetriever  database.Retriever
	dbRemover    database.Remover
	minioRemover minio.Remover
}

func NewDeleter(dbRetriever database.Retriever, dbRemover database.Remover, minioRemover minio.Remover) *Deleter {
	return &Deleter{
		dbRetriever:  dbRetriever,
		dbRemover:    dbRemover,
		minioRemover: minioRemover,
	}
}

// DeleteImage removes one image from its album. The album stays even when it
// ends up empty.
func (d *Deleter) DeleteImage(ctx context.Context, imageID string) (int, error) {
	album, err := d.dbRetriever.GetByImageID(ctx, imageID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return http.StatusNotFound, errImageNotFound
		}
		logger.Error("failed to find image owner", "image_id", imageID, "err", err)

		return http.StatusInternalServerError, errors.New("failed to remove image")
	}

	if err := d.dbRemover.RemoveImage(ctx, album.ID.Hex(), imageID); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return http.StatusNotFound, errImageNotFound
		}
		logger.Error("failed to remove image from database", "image_id", imageID, "err", err)

		return http.StatusInternalServerError, errors.New("failed to remove image")
	}

	for _, img := range album.Images {
		if img.ID == imageID && img.PublicID != "" {
			d.removeObjects(ctx, img.PublicID)
		}
	}

	return http.StatusOK, nil
}

// DeleteAlbum removes an album with all of its images.
func (d *Deleter) DeleteAlbum(ctx context.Context, id string) (int, error) {
	album, err := d.dbRetriever.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return http.StatusNotFound, errAlbumNotFound
		}
		logger.Error("failed to retrieve album", "album_id", id, "err", err)

		return http.StatusInternalServerError, errors.New("delete failed")
	}

	if err := d.dbRemover.RemoveAlbum(ctx, id); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return http.StatusNotFound, errAlbumNotFound
		}
		logger.Error("failed to remove album from database", "album_id", id, "err", err)

		return http.StatusInternalServerError, errors.New("delete failed")
	}

	d.removeObjects(ctx, album.ObjectNames()...)

	return http.StatusOK, nil
}

func (d *Deleter) removeObjects(ctx context.Context, names ...string) {
	if len(names) == 0 {
		return
	}

	if err := d.minioRemover.Remove(context.WithoutCancel(ctx), names...); err != nil {
		logger.Error("failed to remove objects from minio", "objects", names, "err", err)
	}
}
