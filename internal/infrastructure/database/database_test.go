package database

import (
	"context"
	"fmt"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"gallery/internal/domain/model"
)

const (
	TestUsername = "testuser"
	TestPassword = "testpass"
	TestDBName   = "testdb"
)

func setupMongo(t *testing.T) string {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "mongo:latest",
		ExposedPorts: []string{"27017/tcp"},
		Env: map[string]string{
			"MONGO_INITDB_ROOT_USERNAME": TestUsername,
			"MONGO_INITDB_ROOT_PASSWORD": TestPassword,
		},
		WaitingFor: wait.ForLog("Waiting for connections").WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Fatal("Failed to start MongoDB container:", err)
	}
	t.Cleanup(func() {
		_ = container.Terminate(context.Background())
	})

	host, err := container.Host(ctx)
	if err != nil {
		t.Fatal("Failed to get container host:", err)
	}

	port, err := container.MappedPort(ctx, "27017")
	if err != nil {
		t.Fatal("Failed to get mapped port:", err)
	}

	hostPort := net.JoinHostPort(host, port.Port())

	return fmt.Sprintf("mongodb://%s:%s@%s", TestUsername, TestPassword, hostPort)
}

func connectTestDB(t *testing.T) *Database {
	t.Helper()

	db, err := Connect(Config{
		URI:               setupMongo(t),
		DBName:            TestDBName,
		ConnectionTimeout: 30000,
		QueryTimeout:      30000,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Stop()
	})

	return db
}

func newAlbum(title string, createdAt time.Time, imageCount int) *model.Album {
	images := make([]model.Image, 0, imageCount)
	for i := 0; i < imageCount; i++ {
		id := primitive.NewObjectID().Hex()
		images = append(images, model.Image{
			ID:       id,
			URL:      "http://cdn.local/photos/" + id + ".jpg",
			PublicID: id + ".jpg",
			Likes:    []string{},
		})
	}

	return &model.Album{
		Title:     title,
		Category:  "travel",
		Tags:      []string{"a", "b"},
		Images:    images,
		Likes:     []string{},
		CreatedAt: createdAt,
	}
}
