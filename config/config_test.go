package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfig = `
environment: prod
http:
  address: ":8080"
  static_dir: "./public"
  admin_dir: "./admin"
db_config:
  db_name: gallery
  query_timeout_in_ms: 3000
minio_client:
  endpoint: "localhost:9000"
minio_uploader:
  bucket: photos
  public_base_url: "http://localhost:9000"
session:
  name: sid
logger:
  level: debug
  targets: ["console"]
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func setSecrets(t *testing.T) {
	t.Helper()

	t.Setenv("DATABASE_URI", "mongodb://localhost:27017")
	t.Setenv("BROKER_URI", "redis://localhost:6379")
	t.Setenv("MINIO_ROOT_USER", "minioadmin")
	t.Setenv("MINIO_ROOT_PASSWORD", "miniopass")
	t.Setenv("SESSION_SECRET", "keyboardcat")
	t.Setenv("ADMIN_PIN", "")
	t.Setenv("SITE_NAME", "")
}

func TestLoadFromFile(t *testing.T) {
	setSecrets(t)
	t.Setenv("ADMIN_PIN", "4242")

	cfg, err := Load(writeConfig(t, testConfig))
	require.NoError(t, err, "error must be nil.")

	assert.Equal(t, ":8080", cfg.HTTP.Address)
	assert.Equal(t, "./admin", cfg.HTTP.AdminDir)
	assert.Equal(t, "gallery", cfg.DBConfig.DBName)
	assert.Equal(t, "mongodb://localhost:27017", cfg.DBConfig.URI)
	assert.Equal(t, int64(3000), cfg.DBConfig.QueryTimeout)
	assert.Equal(t, "redis://localhost:6379", cfg.BrokerConfig.URI)
	assert.Equal(t, "minioadmin", cfg.MinIOClient.AccessKey)
	assert.Equal(t, "miniopass", cfg.MinIOClient.SecretKey)
	assert.Equal(t, "photos", cfg.MinIOUploader.Bucket)
	assert.Equal(t, "sid", cfg.Session.Name)
	assert.Equal(t, "keyboardcat", cfg.Session.Secret)
	assert.Equal(t, "4242", cfg.Site.AdminPin)
	assert.Equal(t, "debug", cfg.Logger.Level)
}

func TestLoadDefaults(t *testing.T) {
	setSecrets(t)

	cfg, err := Load(writeConfig(t, testConfig))
	require.NoError(t, err)

	assert.Equal(t, "1234567", cfg.Site.AdminPin)
	assert.Equal(t, "Photo Site", cfg.Site.SiteName)
	assert.Equal(t, 100, cfg.Uploader.MaxPhotos)
	assert.Equal(t, "engagement", cfg.BrokerConfig.StreamName)
	assert.Equal(t, int64(10000), cfg.DBConfig.ConnectionTimeout)
	assert.Equal(t, 86400, cfg.Session.MaxAge)
}

func TestLoadMissingSecrets(t *testing.T) {
	tests := []struct {
		name    string
		unset   string
		message string
	}{
		{name: "database uri", unset: "DATABASE_URI", message: "DATABASE_URI"},
		{name: "broker uri", unset: "BROKER_URI", message: "BROKER_URI"},
		{name: "session secret", unset: "SESSION_SECRET", message: "SESSION_SECRET"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setSecrets(t)
			t.Setenv(tt.unset, "")

			_, err := Load(writeConfig(t, testConfig))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config error")
}
