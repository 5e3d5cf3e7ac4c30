package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/sync/errgroup"

	"gallery/internal/domain/dto"
	"gallery/internal/domain/entity"
	"gallery/internal/domain/model"
	"gallery/internal/domain/repository/database"
	"gallery/internal/domain/repository/minio"
	"gallery/pkg/logger"
	"gallery/pkg/utils"
)

var errUploadFailed = errors.New("upload failed")

type Uploader struct {
	writer        database.Writer
	minioUploader minio.Uploader
	minioRemover  minio.Remover
	validator     *utils.Validator
	cfg           UploaderConfig
}

func NewUploader(writer database.Writer, minioUploader minio.Uploader, minioRemover minio.Remover,
	validator *utils.Validator, cfg UploaderConfig,
) *Uploader {
	return &Uploader{
		writer:        writer,
		minioUploader: minioUploader,
		minioRemover:  minioRemover,
		validator:     validator,
		cfg:           cfg,
	}
}

// Upload stores every photo and then creates the album that references them.
// On any failure the photos already stored are removed again and the caller
// has to resubmit the whole album.
func (u *Uploader) Upload(ctx context.Context, draft entity.AlbumDraft,
	files []entity.UploadFile,
) (*dto.AlbumDescriptor, int, error) {
	if err := u.validator.Struct(draft); err != nil {
		return nil, http.StatusBadRequest, errors.New("invalid album fields")
	}

	if u.cfg.MaxPhotos > 0 && len(files) > u.cfg.MaxPhotos {
		return nil, http.StatusBadRequest, fmt.Errorf("at most %d photos per album", u.cfg.MaxPhotos)
	}

	stored, err := u.storeAll(ctx, files)
	if err != nil {
		logger.Error("failed to store album photos", "title", draft.Title, "err", err)
		u.rollback(stored)

		return nil, http.StatusInternalServerError, errUploadFailed
	}

	images := make([]model.Image, 0, len(stored))
	for _, obj := range stored {
		images = append(images, model.Image{
			ID:       primitive.NewObjectID().Hex(),
			URL:      obj.Location,
			PublicID: obj.ObjectName,
			Likes:    []string{},
		})
	}

	album := &model.Album{
		Title:        draft.Title,
		Description:  draft.Description,
		Category:     draft.Category,
		Tags:         nonNil(draft.Tags),
		Images:       images,
		WatchLink:    draft.WatchLink,
		DownloadLink: draft.DownloadLink,
		ExtraLinks:   nonNil(draft.ExtraLinks),
		Likes:        []string{},
	}

	if err := u.writer.Create(ctx, album); err != nil {
		logger.Error("couldn't add album to database", "title", draft.Title, "err", err)
		u.rollback(stored)

		return nil, http.StatusInternalServerError, errUploadFailed
	}

	descriptor := dto.NewAlbumDescriptor(album)

	return &descriptor, http.StatusOK, nil
}

// storeAll uploads files concurrently and returns them in input order. On
// error the returned slice holds only the objects that were stored.
func (u *Uploader) storeAll(ctx context.Context, files []entity.UploadFile) ([]entity.StoredObject, error) {
	results := make([]entity.StoredObject, len(files))

	g, gctx := errgroup.WithContext(ctx)
	if u.cfg.Concurrency > 0 {
		g.SetLimit(u.cfg.Concurrency)
	}

	for i := range files {
		g.Go(func() error {
			obj, err := u.storeOne(gctx, files[i])
			if err != nil {
				return fmt.Errorf("%s: %w", files[i].Name, err)
			}
			results[i] = obj

			return nil
		})
	}

	err := g.Wait()
	if err == nil {
		return results, nil
	}

	stored := make([]entity.StoredObject, 0, len(results))
	for _, obj := range results {
		if obj.ObjectName != "" {
			stored = append(stored, obj)
		}
	}

	return stored, err
}

func (u *Uploader) storeOne(ctx context.Context, file entity.UploadFile) (entity.StoredObject, error) {
	body, err := file.Open()
	if err != nil {
		return entity.StoredObject{}, err
	}
	defer body.Close()

	return u.minioUploader.UploadFile(ctx, body, file.Size)
}

func (u *Uploader) rollback(stored []entity.StoredObject) {
	if len(stored) == 0 {
		return
	}

	names := make([]string, 0, len(stored))
	for _, obj := range stored {
		names = append(names, obj.ObjectName)
	}

	// The request context may already be cancelled here.
	if err := u.minioRemover.Remove(context.Background(), names...); err != nil {
		logger.Error("failed to remove photos from minio after upload failed", "objects", names, "err", err)
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}

	return s
}
