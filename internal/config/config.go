package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Env           Env
	Server        ServerConfig
	Database      DatabaseConfig
	Minio         MinioConfig
	Upload        UploadConfig
	Processing    ProcessingConfig
	AssetAPI      AssetAPIConfig
	Transcription TranscriptionConfig
	NATS          NATSConfig
	Redis         RedisConfig
}

type Env struct {
	Env string `envconfig:"ENV" default:"DEV"`
}

type ServerConfig struct {
	Host string `envconfig:"SERVER_HOST" default:"localhost"`
	Port string `envconfig:"SERVER_PORT" default:"8080"`
}

type DatabaseConfig struct {
	Host           string        `envconfig:"DB_HOST" required:"true"`
	Port           int           `envconfig:"DB_PORT" default:"5432"`
	User           string        `envconfig:"DB_USER" required:"true"`
	Password       string        `envconfig:"DB_PASSWORD" required:"true"`
	Name           string        `envconfig:"DB_NAME" required:"true"`
	SSLMode        string        `envconfig:"DB_SSLMODE" default:"disable"`
	MaxOpenCons    int           `envconfig:"DB_MAX_OPEN_CONS" default:"25"`
	MaxIdleCons    int           `envconfig:"DB_MAX_IDLE_CONS" default:"5"`
	ConMaxLifeTime time.Duration `envconfig:"DB_CONMAX_LIFE_TIME" default:"5m"`
}

type MinioConfig struct {
	Endpoint                  string        `envconfig:"MINIO_ENDPOINT" required:"true"`
	BucketName                string        `envconfig:"MINIO_BUCKET_NAME" required:"true"`
	AccessKey                 string        `envconfig:"MINIO_ACCESS_KEY" required:"true"`
	SecretKey                 string        `envconfig:"MINIO_SECRET_KEY" required:"true"`
	PutPresignedDuration      time.Duration `envconfig:"MINIO_PUT_PRESIGNED_DURATION" default:"15m"`
	PartPresignedDuration     time.Duration `envconfig:"MINIO_PART_PRESIGNED_DURATION" default:"1h"`
	DownloadSignedURLDuration time.Duration `envconfig:"MINIO_DOWNLOAD_SIGNED_URL_DURATION" default:"15m"`
	UseSSL                    bool          `envconfig:"MINIO_USE_SSL" default:"false"`
}

type UploadConfig struct {
	KeyPrefix string `envconfig:"UPLOAD_KEY_PREFIX" default:"videos"`
	// at or above the threshold uploads go chunked
	ChunkedThreshold int64 `envconfig:"UPLOAD_CHUNKED_THRESHOLD" default:"104857600"` // 100MB
	// part-size tiers bound the number of parts for very large files
	PartSizeDefault int64         `envconfig:"UPLOAD_PART_SIZE_DEFAULT" default:"104857600"` // 100MB
	PartSizeLarge   int64         `envconfig:"UPLOAD_PART_SIZE_LARGE" default:"524288000"`   // 500MB, files >1GB
	PartSizeHuge    int64         `envconfig:"UPLOAD_PART_SIZE_HUGE" default:"1073741824"`   // 1GB, files >10GB
	LargeFileSize   int64         `envconfig:"UPLOAD_LARGE_FILE_SIZE" default:"1073741824"`  // 1GB
	HugeFileSize    int64         `envconfig:"UPLOAD_HUGE_FILE_SIZE" default:"10737418240"`  // 10GB
	MaxFileSize     int64         `envconfig:"UPLOAD_MAX_FILE_SIZE" default:"5497558138880"` // 5TB
	SessionTTL      time.Duration `envconfig:"UPLOAD_SESSION_TTL" default:"24h"`
	CleanupEvery    time.Duration `envconfig:"UPLOAD_CLEANUP_EVERY" default:"15m"`
}

type ProcessingConfig struct {
	// under this size the orchestrator waits synchronously for readiness
	SyncMaxSize           int64         `envconfig:"PROCESSING_SYNC_MAX_SIZE" default:"31457280"` // 30MB
	PollInterval          time.Duration `envconfig:"PROCESSING_POLL_INTERVAL" default:"1s"`
	PollMaxAttempts       int           `envconfig:"PROCESSING_POLL_MAX_ATTEMPTS" default:"30"`
	MetadataRetries       int           `envconfig:"PROCESSING_METADATA_RETRIES" default:"3"`
	QuickThumbnailTimeout time.Duration `envconfig:"PROCESSING_QUICK_THUMBNAIL_TIMEOUT" default:"3s"`
	ThumbnailAtSeconds    int           `envconfig:"PROCESSING_THUMBNAIL_AT_SECONDS" default:"10"`
}

type AssetAPIConfig struct {
	BaseURL       string        `envconfig:"ASSET_API_BASE_URL" default:"https://api.mux.com"`
	StreamHost    string        `envconfig:"ASSET_API_STREAM_HOST" default:"stream.mux.com"`
	ImageHost     string        `envconfig:"ASSET_API_IMAGE_HOST" default:"image.mux.com"`
	TokenID       string        `envconfig:"ASSET_API_TOKEN_ID"`
	TokenSecret   string        `envconfig:"ASSET_API_TOKEN_SECRET"`
	WebhookSecret string        `envconfig:"ASSET_API_WEBHOOK_SECRET"`
	Timeout       time.Duration `envconfig:"ASSET_API_TIMEOUT" default:"15s"`
}

type TranscriptionConfig struct {
	// comma-separated provider priority order
	ProviderOrder       []string      `envconfig:"TRANSCRIPTION_PROVIDER_ORDER" default:"enhanced,captions,speech"`
	Language            string        `envconfig:"TRANSCRIPTION_LANGUAGE" default:"en"`
	MaxSpeakers         int           `envconfig:"TRANSCRIPTION_MAX_SPEAKERS" default:"4"`
	ConfidenceThreshold float64       `envconfig:"TRANSCRIPTION_CONFIDENCE_THRESHOLD" default:"0.6"`
	EnhancedAPIKey      string        `envconfig:"TRANSCRIPTION_ENHANCED_API_KEY"`
	EnhancedBaseURL     string        `envconfig:"TRANSCRIPTION_ENHANCED_BASE_URL" default:"https://api.assemblyai.com"`
	SpeechBaseURL       string        `envconfig:"TRANSCRIPTION_SPEECH_BASE_URL"`
	Timeout             time.Duration `envconfig:"TRANSCRIPTION_TIMEOUT" default:"30s"`
}

type NATSConfig struct {
	URL          string `envconfig:"NATS_URL" required:"true"`
	StreamName   string `envconfig:"NATS_STREAM_NAME" default:"ENRICHMENT"`
	ConsumerName string `envconfig:"NATS_CONSUMER_NAME" default:"enrichment-worker"`
	Subject      string `envconfig:"NATS_SUBJECT" default:"enrichment.tasks"`
	DeliverGroup string `envconfig:"NATS_DELIVER_GROUP" default:"enrichment"`
}

type RedisConfig struct {
	Addr        string        `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password    string        `envconfig:"REDIS_PASSWORD"`
	DB          int           `envconfig:"REDIS_DB" default:"0"`
	ProgressTTL time.Duration `envconfig:"REDIS_PROGRESS_TTL" default:"24h"`
}

func Load() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
