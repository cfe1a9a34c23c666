package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"net/http"
	"time"

	_ "github.com/lib/pq"

	httpapi "kig-backend/internal/api/http"
	"kig-backend/internal/config"
	"kig-backend/internal/logger"
	"kig-backend/internal/metrics"
	"kig-backend/internal/repository"
	"kig-backend/internal/repository/memory"
	"kig-backend/internal/repository/postgres"
	"kig-backend/internal/security"
	"kig-backend/internal/service"
	"kig-backend/internal/storage"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting KIG backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())

	// Initialize entity storage. The backend is chosen once here and never
	// changes for the lifetime of the process.
	var store repository.Store
	if cfg.StorageConfigured() {
		logger.Info("Using live table storage", "account", cfg.Storage.AccountName)
		db, err := sql.Open("postgres", cfg.Storage.ConnectionString)
		if err != nil {
			log.Fatalf("Failed to open database: %v", err)
		}
		defer db.Close()

		if err := db.Ping(); err != nil {
			log.Fatalf("Failed to ping database: %v", err)
		}
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if err := postgres.EnsureSchema(ctx, db); err != nil {
			cancel()
			log.Fatalf("Failed to ensure schema: %v", err)
		}
		cancel()
		store = postgres.NewStore(db)
	} else {
		logger.Warn("Storage not configured, using in-process mock data")
		store = memory.NewSeededStore()
	}

	// Initialize blob storage
	var blobs storage.BlobStorage
	if cfg.BlobConfigured() {
		logger.Info("Using live blob storage", "endpoint", cfg.Blob.Endpoint, "container", cfg.Blob.Container)
		live, err := storage.NewMinioBlobStorage(cfg.Blob.Endpoint, cfg.Blob.AccessKey, cfg.Blob.SecretKey, cfg.Blob.Container, cfg.Blob.UseSSL)
		if err != nil {
			log.Fatalf("Failed to initialize blob storage: %v", err)
		}
		blobs = live
	} else {
		logger.Warn("Blob storage not configured, uploads return mock URLs")
		blobs = storage.NewMockBlobStorage(cfg.Blob.Container)
	}

	// Initialize email notifications
	var notifier service.Notifier
	if cfg.EmailConfigured() {
		logger.Info("Email notifications enabled", "from", cfg.SendGrid.FromEmail)
		notifier = service.NewSendGridNotifier(cfg.SendGrid.APIKey, cfg.SendGrid.FromEmail, cfg.SendGrid.FromName)
	} else {
		logger.Info("Email notifications disabled")
		notifier = service.NoopNotifier{}
	}

	// Initialize security and metrics
	tokenManager := security.NewTokenManager(cfg.JWT.Secret, time.Duration(cfg.JWT.ExpiryDays)*24*time.Hour)
	collector := metrics.NewCollector()

	// Initialize services
	recorder := service.NewActivityRecorder(store.ActivityLogs(), collector)
	authSvc := service.NewAuthService(store.Users(), tokenManager, recorder)
	issueSvc := service.NewIssueService(store.Issues(), store.Users(), blobs, recorder, notifier, collector)
	groupSvc := service.NewWorkGroupService(store.WorkGroups(), recorder)
	taskSvc := service.NewTaskService(store.Tasks())
	userSvc := service.NewUserService(store.Users())
	activitySvc := service.NewActivityService(store.ActivityLogs())
	statsSvc := service.NewStatsService(store.Issues(), store.WorkGroups())

	router := httpapi.NewRouter(httpapi.Services{
		Auth:       authSvc,
		Issues:     issueSvc,
		WorkGroups: groupSvc,
		Tasks:      taskSvc,
		Users:      userSvc,
		Activity:   activitySvc,
		Stats:      statsSvc,
		Metrics:    collector,
	})

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
