package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"vodcore/internal/adapters/assetproc/mux"
	"vodcore/internal/adapters/eventbroker/nats"
	"vodcore/internal/adapters/repository/postgres"
	"vodcore/internal/adapters/storage/minio"
	"vodcore/internal/adapters/transcription/assemblyai"
	"vodcore/internal/adapters/transcription/muxcaptions"
	"vodcore/internal/adapters/transcription/speech"
	"vodcore/internal/config"
	"vodcore/internal/core/port"
	"vodcore/internal/core/service/enrichment"
	"vodcore/internal/core/service/record"
	"vodcore/internal/core/service/transcription"
)

func main() {

	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer stop()
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	// Load config
	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	// Initialize database
	db, err := initDB(cfg.Database)
	if err != nil {
		logger.Error("failed to init database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()
	logger.Info("db connection established")

	minioAdapter, err := minio.NewAdapter(ctx, cfg.Minio, logger)
	if err != nil {
		logger.Error("failed to init minio", "error", err)
		os.Exit(1)
	}
	logger.Info("minio adapter initialized")

	assetClient := mux.NewClient(cfg.AssetAPI)

	// Initialize repositories
	unitOfWork := postgres.NewUnitOfWork(db)
	prober := postgres.NewSchemaProber(db)

	// Initialize services
	recordService, err := record.NewRecordService(ctx, unitOfWork, prober, logger)
	if err != nil {
		logger.Error("failed to init record service", "error", err)
		os.Exit(1)
	}

	transcriber := transcription.NewProviderChain(
		buildProviders(cfg, assetClient, recordService),
		cfg.Transcription,
		logger,
	)
	enrichmentService := enrichment.NewEnrichmentService(unitOfWork, recordService, minioAdapter, assetClient, transcriber, cfg.Transcription, logger)

	// Initialize NATS consumer
	natsConsumer, err := nats.NewNATSConsumer(cfg.NATS, logger)
	if err != nil {
		logger.Error("failed to create NATS consumer", "error", err)
		os.Exit(1)
	}
	logger.Info("NATS consumer initialized")

	// Subscribe to NATS
	if err := natsConsumer.Subscribe(ctx, enrichmentService); err != nil {
		logger.Error("failed to subscribe to NATS", "error", err)
		os.Exit(1)
	}
	logger.Info("NATS subscription active")

	// Wait for termination signal
	<-ctx.Done()
	logger.Info("gracefully shutting down enrichment worker")

	// Close blocks until the subscription loop has drained, so no extra
	// wait is needed here
	if err := natsConsumer.Close(); err != nil {
		logger.Error("failed to close NATS consumer during shutdown", "error", err)
	}

	logger.Info("enrichment worker shutdown complete")
}

// buildProviders assembles the transcription chain in the configured
// priority order. Unknown names are skipped.
func buildProviders(cfg *config.Config, assets port.AssetProcessor, record port.RecordService) []port.TranscriptionProvider {
	available := map[string]port.TranscriptionProvider{
		"enhanced": assemblyai.NewProvider(cfg.Transcription),
		"captions": muxcaptions.NewProvider(assets, record, cfg.AssetAPI, cfg.Transcription),
		"speech":   speech.NewProvider(cfg.Transcription),
	}

	providers := make([]port.TranscriptionProvider, 0, len(cfg.Transcription.ProviderOrder))
	for _, name := range cfg.Transcription.ProviderOrder {
		if provider, ok := available[name]; ok {
			providers = append(providers, provider)
		}
	}
	return providers
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
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenCons)
	db.SetMaxIdleConns(cfg.MaxIdleCons)
	db.SetConnMaxLifetime(cfg.ConMaxLifeTime)

	return db, nil
}
