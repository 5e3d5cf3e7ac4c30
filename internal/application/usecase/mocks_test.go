package usecase

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"gallery/internal/domain/dto"
	"gallery/internal/domain/entity"
	"gallery/internal/domain/model"
)

type mockWriter struct{ mock.Mock }

func (m *mockWriter) Create(ctx context.Context, album *model.Album) error {
	return m.Called(ctx, album).Error(0)
}

type mockRetriever struct{ mock.Mock }

func (m *mockRetriever) GetByID(ctx context.Context, id string) (*model.Album, error) {
	args := m.Called(ctx, id)
	album, _ := args.Get(0).(*model.Album)

	return album, args.Error(1)
}

func (m *mockRetriever) GetByImageID(ctx context.Context, imageID string) (*model.Album, error) {
	args := m.Called(ctx, imageID)
	album, _ := args.Get(0).(*model.Album)

	return album, args.Error(1)
}

type mockLister struct{ mock.Mock }

func (m *mockLister) ListAll(ctx context.Context) ([]model.Album, error) {
	args := m.Called(ctx)
	albums, _ := args.Get(0).([]model.Album)

	return albums, args.Error(1)
}

func (m *mockLister) PageImages(ctx context.Context, offset, limit int) ([]dto.ImageView, int, error) {
	args := m.Called(ctx, offset, limit)
	views, _ := args.Get(0).([]dto.ImageView)

	return views, args.Int(1), args.Error(2)
}

type mockDBRemover struct{ mock.Mock }

func (m *mockDBRemover) RemoveImage(ctx context.Context, albumID, imageID string) error {
	return m.Called(ctx, albumID, imageID).Error(0)
}

func (m *mockDBRemover) RemoveAlbum(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type mockCounter struct{ mock.Mock }

func (m *mockCounter) IncrementViews(ctx context.Context, id string) (int64, error) {
	args := m.Called(ctx, id)

	return args.Get(0).(int64), args.Error(1)
}

func (m *mockCounter) AppendLikeIfAbsent(ctx context.Context, id, identity string) (int64, error) {
	args := m.Called(ctx, id, identity)

	return args.Get(0).(int64), args.Error(1)
}

type mockSettingsStore struct{ mock.Mock }

func (m *mockSettingsStore) Get(ctx context.Context, defaults model.Settings) (*model.Settings, error) {
	args := m.Called(ctx, defaults)
	settings, _ := args.Get(0).(*model.Settings)

	return settings, args.Error(1)
}

func (m *mockSettingsStore) SetSiteName(ctx context.Context, defaults model.Settings, siteName string) error {
	return m.Called(ctx, defaults, siteName).Error(0)
}

type mockMinioUploader struct{ mock.Mock }

func (m *mockMinioUploader) UploadFile(ctx context.Context, body io.Reader,
	fileSize int64,
) (entity.StoredObject, error) {
	data, err := io.ReadAll(body)
	if err != nil {
		return entity.StoredObject{}, err
	}
	args := m.Called(string(data), fileSize)

	return args.Get(0).(entity.StoredObject), args.Error(1)
}

type mockMinioRemover struct{ mock.Mock }

func (m *mockMinioRemover) Remove(ctx context.Context, objectNames ...string) error {
	return m.Called(objectNames).Error(0)
}

type mockPublisher struct{ mock.Mock }

func (m *mockPublisher) Publish(ctx context.Context, message string) error {
	return m.Called(message).Error(0)
}
