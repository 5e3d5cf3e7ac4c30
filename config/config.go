package config

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"gallery/internal/application/usecase"
	"gallery/internal/infrastructure/broker"
	"gallery/internal/infrastructure/database"
	"gallery/internal/infrastructure/minio"
	"gallery/internal/infrastructure/session"
	"gallery/internal/presentation/router"
	"gallery/pkg/logger"
)

// Config represents the configs used by services on system.
type Config struct {
	Environment     string                  `yaml:"environment"`
	HTTP            router.Config           `yaml:"http"`
	MinIOClient     minio.ClientConfig      `yaml:"minio_client"`
	MinIOUploader   minio.UploaderConfig    `yaml:"minio_uploader"`
	MinIORemover    minio.RemoverConfig     `yaml:"minio_remover"`
	DBConfig        database.Config         `yaml:"db_config"`
	BrokerConfig    broker.Config           `yaml:"redis_broker_config"`
	PublisherConfig broker.PublisherConfig  `yaml:"publisher_config"`
	ReceiverConfig  broker.ReceiverConfig   `yaml:"receiver_config"`
	Session         session.Config          `yaml:"session"`
	Uploader        usecase.UploaderConfig  `yaml:"uploader"`
	Site            usecase.SettingsDefault `yaml:"site"`
	Logger          logger.Config           `yaml:"logger"`
}

func Load(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}
	defer file.Close()

	config := &Config{}

	decoder := yaml.NewDecoder(file)

	if err := decoder.Decode(config); err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}

	if config.Environment != "prod" {
		if err := godotenv.Load(); err != nil {
			return nil, Error{
				reason: err.Error(),
			}
		}
	}

	config.MinIOClient.AccessKey = os.Getenv("MINIO_ROOT_USER")
	config.MinIOClient.SecretKey = os.Getenv("MINIO_ROOT_PASSWORD")
	config.DBConfig.URI = os.Getenv("DATABASE_URI")
	config.BrokerConfig.URI = os.Getenv("BROKER_URI")
	config.Session.Secret = os.Getenv("SESSION_SECRET")

	if pin := os.Getenv("ADMIN_PIN"); pin != "" {
		config.Site.AdminPin = pin
	}

	if name := os.Getenv("SITE_NAME"); name != "" {
		config.Site.SiteName = name
	}

	if err = config.basicCheck(); err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}

	config.setDefaults()

	return config, nil
}

// basicCheck validates the basic stuff in config.
func (c *Config) basicCheck() error {
	if c.DBConfig.URI == "" {
		return errors.New("DATABASE_URI is not set")
	}

	if c.DBConfig.DBName == "" {
		return errors.New("db_config.db_name is required")
	}

	if c.BrokerConfig.URI == "" {
		return errors.New("BROKER_URI is not set")
	}

	if c.MinIOUploader.Bucket == "" {
		return errors.New("minio_uploader.bucket is required")
	}

	if c.Session.Secret == "" {
		return errors.New("SESSION_SECRET is not set")
	}

	return nil
}

func (c *Config) setDefaults() {
	if c.HTTP.Address == "" {
		c.HTTP.Address = ":3000"
	}

	if c.HTTP.BodyLimit == "" {
		c.HTTP.BodyLimit = "500M"
	}

	if c.HTTP.ShutdownTimeout == 0 {
		c.HTTP.ShutdownTimeout = 10000
	}

	if c.DBConfig.ConnectionTimeout == 0 {
		c.DBConfig.ConnectionTimeout = 10000
	}

	if c.DBConfig.QueryTimeout == 0 {
		c.DBConfig.QueryTimeout = 5000
	}

	if c.MinIOUploader.Timeout == 0 {
		c.MinIOUploader.Timeout = 60000
	}

	if c.MinIORemover.Timeout == 0 {
		c.MinIORemover.Timeout = 5000
	}

	if c.BrokerConfig.StreamName == "" {
		c.BrokerConfig.StreamName = "engagement"
	}

	if c.BrokerConfig.GroupName == "" {
		c.BrokerConfig.GroupName = "gallery"
	}

	if c.PublisherConfig.Timeout == 0 {
		c.PublisherConfig.Timeout = 1000
	}

	if c.ReceiverConfig.BlockTime == 0 {
		c.ReceiverConfig.BlockTime = 5000
	}

	if c.ReceiverConfig.Consumer == "" {
		c.ReceiverConfig.Consumer = "watcher"
	}

	if c.Session.Name == "" {
		c.Session.Name = "gallery_session"
	}

	if c.Session.MaxAge == 0 {
		c.Session.MaxAge = 86400
	}

	if c.Uploader.MaxPhotos <= 0 {
		c.Uploader.MaxPhotos = 100
	}

	if c.Uploader.Concurrency <= 0 {
		c.Uploader.Concurrency = 4
	}

	if c.Site.SiteName == "" {
		c.Site.SiteName = "Photo Site"
	}

	if c.Site.AdminPin == "" {
		c.Site.AdminPin = "1234567"
	}
}
