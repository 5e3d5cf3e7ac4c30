package minio

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"io"
	"strings"
	"testing"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	TestAccessKey = "minioadmin"
	TestSecretKey = "minioadmin"
	BucketName    = "temp-bucket-for-tests"
)

func setupMinio(t *testing.T) *minio.Client {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "minio/minio:latest",
		ExposedPorts: []string{"9000/tcp"},
		Env: map[string]string{
			"MINIO_ROOT_USER":     TestAccessKey,
			"MINIO_ROOT_PASSWORD": TestSecretKey,
		},
		Cmd:        []string{"server", "/data"},
		WaitingFor: wait.ForHTTP("/minio/health/live").WithPort("9000"),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Fatal("Failed to start container:", err)
	}
	t.Cleanup(func() {
		_ = container.Terminate(context.Background())
	})

	endpoint, err := container.Endpoint(ctx, "")
	if err != nil {
		t.Fatal(err)
	}

	client, err := New(ClientConfig{
		AccessKey: TestAccessKey,
		SecretKey: TestSecretKey,
		Endpoint:  endpoint,
	})
	if err != nil {
		t.Fatal("Failed to create minio client:", err)
	}

	if err := client.EnsureBucket(ctx, BucketName); err != nil {
		t.Fatal("Failed to create bucket:", err)
	}

	return client.MinioClient
}

func pngBytes(t *testing.T) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	img.Set(1, 1, color.RGBA{R: 255, A: 255})

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	return buf.Bytes()
}

type corruptReader struct {
	source []byte
	failAt int
	read   int
}

func (r *corruptReader) Read(p []byte) (int, error) {
	if r.read >= r.failAt {
		return 0, io.ErrClosedPipe
	}
	n := copy(p, r.source[r.read:r.failAt])
	r.read += n

	return n, nil
}

func TestUploadFile(t *testing.T) {
	client := setupMinio(t)

	uploader := NewUploader(client, UploaderConfig{
		Timeout:       5000,
		Bucket:        BucketName,
		PublicBaseURL: "http://cdn.local/",
	})

	photo := pngBytes(t)

	tests := []struct {
		name             string
		reader           func() io.Reader
		fileSize         int64
		expectError      bool
		expectedErrorMsg string
		expectedType     string
	}{
		{
			name:         "png photo",
			reader:       func() io.Reader { return bytes.NewReader(photo) },
			fileSize:     int64(len(photo)),
			expectedType: "image/png",
		},
		{
			name:         "unknown size",
			reader:       func() io.Reader { return bytes.NewReader(photo) },
			fileSize:     -1,
			expectedType: "image/png",
		},
		{
			name:             "plain text rejected",
			reader:           func() io.Reader { return strings.NewReader("hello, world!") },
			fileSize:         13,
			expectError:      true,
			expectedErrorMsg: "unsupported file type",
		},
		{
			name:             "empty file",
			reader:           func() io.Reader { return bytes.NewReader(nil) },
			fileSize:         0,
			expectError:      true,
			expectedErrorMsg: "empty file",
		},
		{
			name: "corrupted stream",
			reader: func() io.Reader {
				return &corruptReader{source: photo, failAt: 5}
			},
			fileSize:         int64(len(photo)),
			expectError:      true,
			expectedErrorMsg: "read error",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result, err := uploader.UploadFile(context.Background(), tc.reader(), tc.fileSize)

			if tc.expectError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectedErrorMsg)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expectedType, result.Type)
			assert.Equal(t, int64(len(photo)), result.Size)
			assert.True(t, strings.HasSuffix(result.ObjectName, ".png"))
			assert.Equal(t, "http://cdn.local/"+BucketName+"/"+result.ObjectName, result.Location)

			_, err = client.StatObject(context.Background(), BucketName, result.ObjectName, minio.StatObjectOptions{})
			assert.NoError(t, err, "expected object %s to exist in MinIO", result.ObjectName)
		})
	}
}

func TestRemove(t *testing.T) {
	client := setupMinio(t)
	ctx := context.Background()

	uploader := NewUploader(client, UploaderConfig{Timeout: 5000, Bucket: BucketName})
	remover := NewRemover(client, BucketName, RemoverConfig{Timeout: 5000})

	photo := pngBytes(t)
	var names []string
	for i := 0; i < 3; i++ {
		res, err := uploader.UploadFile(ctx, bytes.NewReader(photo), int64(len(photo)))
		require.NoError(t, err)
		names = append(names, res.ObjectName)
	}

	require.NoError(t, remover.Remove(ctx, names...))
	require.NoError(t, remover.Remove(ctx))

	for _, name := range names {
		_, err := client.StatObject(ctx, BucketName, name, minio.StatObjectOptions{})
		assert.Error(t, err, "expected object %s to be removed", name)
	}
}
