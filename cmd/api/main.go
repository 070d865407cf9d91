package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"vodcore/internal/adapters/assetproc/mux"
	"vodcore/internal/adapters/eventbroker/nats"
	"vodcore/internal/adapters/handlers/http/chi"
	uploadhandler "vodcore/internal/adapters/handlers/http/chi/v1/upload"
	videohandler "vodcore/internal/adapters/handlers/http/chi/v1/video"
	webhookhandler "vodcore/internal/adapters/handlers/http/chi/v1/webhook"
	"vodcore/internal/adapters/progress/redis"
	"vodcore/internal/adapters/repository/postgres"
	"vodcore/internal/adapters/storage/minio"
	"vodcore/internal/config"
	"vodcore/internal/core/port"
	"vodcore/internal/core/service/cleanup"
	"vodcore/internal/core/service/processing"
	"vodcore/internal/core/service/record"
	"vodcore/internal/core/service/upload"
	"vodcore/internal/core/service/webhook"
)

func main() {

	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer stop()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := initDB(cfg.Database)
	if err != nil {
		logger.Error("failed to init database", "error", err)
		os.Exit(1)
	}
	defer func(db *sql.DB) {
		err := db.Close()
		if err != nil {
			logger.Error("failed to close database", "error", err)
			os.Exit(1)
		}
	}(db)
	logger.Info("db connection established")

	//storage
	minioAdapter, err := minio.NewAdapter(ctx, cfg.Minio, logger)
	if err != nil {
		logger.Error("failed to init minio", "error", err)
		os.Exit(1)
	}

	//progress cache
	tracker := redis.NewTracker(cfg.Redis)
	defer func() {
		if err := tracker.Close(); err != nil {
			logger.Error("failed to close redis tracker", "error", err)
		}
	}()

	//task broker
	publisher, err := nats.NewNATSPublisher(ctx, cfg.NATS, logger)
	if err != nil {
		logger.Error("failed to init NATS publisher", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			logger.Error("failed to close NATS publisher", "error", err)
		}
	}()

	//asset processor
	assetClient := mux.NewClient(cfg.AssetAPI)

	//repositories
	unitOfWork := postgres.NewUnitOfWork(db)
	prober := postgres.NewSchemaProber(db)

	//services
	recordService, err := record.NewRecordService(ctx, unitOfWork, prober, logger)
	if err != nil {
		logger.Error("failed to init record service", "error", err)
		os.Exit(1)
	}
	uploadService := upload.NewUploadService(recordService, unitOfWork, minioAdapter, tracker, cfg.Upload, logger)
	processingService := processing.NewProcessingService(recordService, unitOfWork, minioAdapter, assetClient, publisher, cfg.Processing, logger)
	webhookService := webhook.NewWebhookService(recordService, assetClient, cfg.AssetAPI.WebhookSecret, logger)
	cleanupService := cleanup.NewCleanupService(unitOfWork, recordService, minioAdapter, logger)

	//http
	uploadHandler := uploadhandler.NewUploadHandlerV1(uploadService, logger)
	videoHandler := videohandler.NewVideoHandlerV1(processingService, recordService, logger)
	webhookHandler := webhookhandler.NewWebhookHandlerV1(webhookService, logger)

	router := chi.NewRouter(logger, uploadHandler, videoHandler, webhookHandler, cfg.Env.Env)
	server := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
		Handler: router,
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		logger.Info("starting server", "host", cfg.Server.Host, "port", cfg.Server.Port)
		servErr := server.ListenAndServe()
		if servErr != nil && !errors.Is(servErr, http.ErrServerClosed) {
			logger.Error("failed to start server", "error", servErr)
			stop()
		}
	}()

	// init cleanup task
	wg.Add(1)
	go func() {
		defer wg.Done()
		initCleanupTask(ctx, cleanupService, cfg.Upload.CleanupEvery, logger)
	}()

	//wait for context cancel
	<-ctx.Done()
	logger.Info("gracefully shutting down app")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("failed to shutdown server", "error", err)
	} else {
		logger.Info("server gracefully shutdown complete")
	}

	wg.Wait()
	logger.Info("app shutdown complete")

}

func initDB(cfg config.DatabaseConfig) (*sql.DB, error) {

	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host,
		cfg.Port,
		cfg.User,
		cfg.Password,
		cfg.Name,
		cfg.SSLMode,
	)
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenCons)
	db.SetMaxIdleConns(cfg.MaxIdleCons)
	db.SetConnMaxLifetime(cfg.ConMaxLifeTime)

	return db, nil
}

func initCleanupTask(ctx context.Context, service port.CleanupService, every time.Duration, logger *slog.Logger) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	logger.Info("cleanup task initialized", "interval", every)

	for {
		select {
		case <-ticker.C:
			logger.Info("cleanup task starting")
			err := service.CleanupExpiredSessions(ctx, time.Now())
			if err != nil {
				logger.Error("failed to cleanup expired sessions", "error", err)
			} else {
				logger.Info("cleanup task completed successfully")
			}
		case <-ctx.Done():
			logger.Info("cleanup task stopped")
			return
		}
	}

}
