package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gallery"
	"gallery/internal/application/usecase"
	"gallery/internal/infrastructure/broker"
	"gallery/internal/infrastructure/database"
	"gallery/internal/infrastructure/minio"
	"gallery/internal/infrastructure/session"
	"gallery/internal/presentation/handler"
	"gallery/internal/presentation/router"
	"gallery/pkg/logger"
	"gallery/pkg/utils"
)

func HandleRun(args []string) {
	cfg := loadConfig(args)

	logger.Info("running gallery", "version", gallery.StringVersion())

	brokerClient, err := broker.NewClient(cfg.BrokerConfig)
	if err != nil {
		ExitOnError(err)
	}
	defer brokerClient.Close()

	brokerPublisher := broker.NewPublisher(brokerClient, cfg.PublisherConfig)

	db, err := database.Connect(cfg.DBConfig)
	if err != nil {
		ExitOnError(err)
	}
	defer func() {
		if err := db.Stop(); err != nil {
			logger.Error("couldn't stop db instance", "err", err)
		}
	}()

	dbWriter := database.NewAlbumWriter(db)
	dbRetriever := database.NewAlbumRetriever(db)
	dbLister := database.NewAlbumLister(db)
	dbRemover := database.NewAlbumRemover(db)
	dbCounter := database.NewEngagementCounter(db)
	settingsStore := database.NewSettingsStore(db)

	minIOClient, err := minio.New(cfg.MinIOClient)
	if err != nil {
		ExitOnError(err)
	}

	if err := minIOClient.EnsureBucket(context.Background(), cfg.MinIOUploader.Bucket); err != nil {
		ExitOnError(err)
	}

	minIORemover := minio.NewRemover(minIOClient.MinioClient, cfg.MinIOUploader.Bucket, cfg.MinIORemover)
	minIOUploader := minio.NewUploader(minIOClient.MinioClient, cfg.MinIOUploader)

	sessionStore, err := session.NewStore(context.Background(), cfg.Session, brokerClient.Redis())
	if err != nil {
		ExitOnError(err)
	}
	adminSession := session.NewAdminSession(cfg.Session)

	validator := utils.NewValidator()

	uploader := usecase.NewUploader(dbWriter, minIOUploader, minIORemover, validator, cfg.Uploader)
	deleter := usecase.NewDeleter(dbRetriever, dbRemover, minIORemover)
	engagement := usecase.NewEngagement(dbCounter, brokerPublisher)
	settings := usecase.NewSettingsManager(settingsStore, cfg.Site, validator)
	authenticator := usecase.NewAuthenticator(settingsStore, cfg.Site)

	e := router.New(cfg.HTTP, router.Handlers{
		Upload:     handler.NewUploadHandler(uploader),
		List:       handler.NewListHandler(usecase.NewAlbumLister(dbLister)),
		Get:        handler.NewGetHandler(usecase.NewGetter(dbRetriever)),
		Feed:       handler.NewFeedHandler(usecase.NewFeed(dbLister)),
		Engagement: handler.NewEngagementHandler(engagement),
		Delete:     handler.NewDeleteHandler(deleter),
		Admin:      handler.NewAdminHandler(authenticator, adminSession),
		Settings:   handler.NewSettingsHandler(settings),
	}, sessionStore, adminSession)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := e.Start(cfg.HTTP.Address); err != nil && !errors.Is(err, http.ErrServerClosed) {
			ExitOnError(fmt.Errorf("shutting down server: %w", err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down gallery")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownTimeout)*time.Millisecond)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("failed to shut down http server", "err", err)
	}

	_ = logger.Sync()
}
