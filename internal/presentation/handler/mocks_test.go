package handler

import (
	"context"
	"errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"

	"gallery/internal/domain/dto"
	"gallery/internal/domain/entity"
)

type mockUploader struct{ mock.Mock }

func (m *mockUploader) Upload(ctx context.Context, draft entity.AlbumDraft,
	files []entity.UploadFile,
) (*dto.AlbumDescriptor, int, error) {
	args := m.Called(draft, files)
	album, _ := args.Get(0).(*dto.AlbumDescriptor)

	return album, args.Int(1), args.Error(2)
}

type mockAlbumLister struct{ mock.Mock }

func (m *mockAlbumLister) ListAlbums(ctx context.Context) ([]dto.AlbumDescriptor, int, error) {
	args := m.Called()
	albums, _ := args.Get(0).([]dto.AlbumDescriptor)

	return albums, args.Int(1), args.Error(2)
}

type mockGetter struct{ mock.Mock }

func (m *mockGetter) GetAlbum(ctx context.Context, id string) (*dto.AlbumDescriptor, int, error) {
	args := m.Called(id)
	album, _ := args.Get(0).(*dto.AlbumDescriptor)

	return album, args.Int(1), args.Error(2)
}

type mockFeed struct{ mock.Mock }

func (m *mockFeed) ListImages(ctx context.Context) ([]dto.ImageView, int, error) {
	args := m.Called()
	views, _ := args.Get(0).([]dto.ImageView)

	return views, args.Int(1), args.Error(2)
}

func (m *mockFeed) PageImages(ctx context.Context, page, limit int) (*dto.ImagePage, int, error) {
	args := m.Called(page, limit)
	result, _ := args.Get(0).(*dto.ImagePage)

	return result, args.Int(1), args.Error(2)
}

type mockEngagement struct{ mock.Mock }

func (m *mockEngagement) ViewAlbum(ctx context.Context, albumID string) (int64, int, error) {
	args := m.Called(albumID)

	return args.Get(0).(int64), args.Int(1), args.Error(2)
}

func (m *mockEngagement) LikeAlbum(ctx context.Context, albumID, identity string) (int64, int, error) {
	args := m.Called(albumID, identity)

	return args.Get(0).(int64), args.Int(1), args.Error(2)
}

type mockDeleter struct{ mock.Mock }

func (m *mockDeleter) DeleteImage(ctx context.Context, imageID string) (int, error) {
	args := m.Called(imageID)

	return args.Int(0), args.Error(1)
}

func (m *mockDeleter) DeleteAlbum(ctx context.Context, id string) (int, error) {
	args := m.Called(id)

	return args.Int(0), args.Error(1)
}

type mockSettings struct{ mock.Mock }

func (m *mockSettings) Get(ctx context.Context) (*dto.SettingsDescriptor, int, error) {
	args := m.Called()
	settings, _ := args.Get(0).(*dto.SettingsDescriptor)

	return settings, args.Int(1), args.Error(2)
}

func (m *mockSettings) UpdateSiteName(ctx context.Context, siteName *string) (int, error) {
	args := m.Called(siteName)

	return args.Int(0), args.Error(1)
}

type mockAuthenticator struct{ mock.Mock }

func (m *mockAuthenticator) CheckPin(ctx context.Context, pin string) (bool, int, error) {
	args := m.Called(pin)

	return args.Bool(0), args.Int(1), args.Error(2)
}

// fakeSession keeps the admin flag in memory for a single test.
type fakeSession struct {
	admin   bool
	failing bool
}

func (f *fakeSession) IsAdmin(echo.Context) bool { return f.admin }

func (f *fakeSession) Grant(echo.Context) error {
	if f.failing {
		return errors.New("store down")
	}
	f.admin = true

	return nil
}

func (f *fakeSession) Revoke(echo.Context) error {
	if f.failing {
		return errors.New("store down")
	}
	f.admin = false

	return nil
}
