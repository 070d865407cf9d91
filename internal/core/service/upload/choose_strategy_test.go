package upload_test

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"vodcore/internal/adapters/progress"
	"vodcore/internal/adapters/repository"
	"vodcore/internal/adapters/storage"
	"vodcore/internal/config"
	"vodcore/internal/core/domain"
	"vodcore/internal/core/port"
	"vodcore/internal/core/service/record"
	"vodcore/internal/core/service/upload"
)

var defaultCfg = config.UploadConfig{
	KeyPrefix:        "videos",
	ChunkedThreshold: 100 * 1024 * 1024,
	PartSizeDefault:  100 * 1024 * 1024,
	PartSizeLarge:    500 * 1000 * 1000,
	PartSizeHuge:     1024 * 1024 * 1024,
	LargeFileSize:    1024 * 1024 * 1024,
	HugeFileSize:     10 * 1024 * 1024 * 1024,
	MaxFileSize:      5 * 1024 * 1024 * 1024 * 1024,
	SessionTTL:       24 * time.Hour,
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newService(recordMock *record.MockRecordService, uowMock *repository.MockUnitOfWork, storageMock *storage.MockStorage, trackerMock *progress.MockProgressTracker) port.UploadService {
	return upload.NewUploadService(recordMock, uowMock, storageMock, trackerMock, defaultCfg, newTestLogger())
}

func TestUploadService_ChooseStrategy(t *testing.T) {
	service := newService(record.NewMockRecordService(), repository.NewMockUnitOfWork(), storage.NewMockStorage(), progress.NewMockProgressTracker())

	tests := []struct {
		name string
		size int64
		want domain.UploadStrategy
	}{
		{"just below threshold", defaultCfg.ChunkedThreshold - 1, domain.UploadStrategySingle},
		{"exactly at threshold", defaultCfg.ChunkedThreshold, domain.UploadStrategyChunked},
		{"above threshold", defaultCfg.ChunkedThreshold + 1, domain.UploadStrategyChunked},
		{"tiny file", 1, domain.UploadStrategySingle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, service.ChooseStrategy(tt.size))
		})
	}
}
