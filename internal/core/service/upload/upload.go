package upload

import (
	"fmt"
	"log/slog"
	"mime"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"vodcore/internal/config"
	"vodcore/internal/core/domain"
	"vodcore/internal/core/port"
)

type uploadService struct {
	record  port.RecordService
	uow     port.UnitOfWork
	storage port.BlobStorage
	tracker port.ProgressTracker
	cfg     config.UploadConfig
	logger  *slog.Logger
}

// NewUploadService creates a new upload coordinator
func NewUploadService(record port.RecordService, uow port.UnitOfWork, storage port.BlobStorage, tracker port.ProgressTracker, cfg config.UploadConfig, logger *slog.Logger) port.UploadService {
	return &uploadService{
		record:  record,
		uow:     uow,
		storage: storage,
		tracker: tracker,
		cfg:     cfg,
		logger:  logger,
	}
}

// AllowedVideoMimeTypes is a whitelist of supported video MIME types and
// their extensions. Deterministic, does not rely on OS mime databases.
var AllowedVideoMimeTypes = map[string][]string{
	"video/mp4":        {".mp4"},
	"video/webm":       {".webm"},
	"video/quicktime":  {".mov"},
	"video/x-msvideo":  {".avi"},
	"video/x-matroska": {".mkv"},
	"video/ogg":        {".ogv"},
	"video/mpeg":       {".mpeg", ".mpg"},
	"video/3gpp":       {".3gp"},
}

func (u *uploadService) validateVideoFile(filename string, contentType string) (string, error) {
	if strings.TrimSpace(filename) == "" {
		return "", domain.ErrMissingFilename
	}

	mimeType := extractMimeType(contentType)
	if mimeType == "" {
		return "", fmt.Errorf("%w: invalid content type %q", domain.ErrInvalidFileType, contentType)
	}

	allowedExts, ok := AllowedVideoMimeTypes[mimeType]
	if !ok {
		return "", fmt.Errorf("%w: unsupported MIME type %s", domain.ErrInvalidFileType, mimeType)
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		return "", fmt.Errorf("%w: no file extension found", domain.ErrInvalidFileType)
	}
	for _, allowed := range allowedExts {
		if ext == allowed {
			return mimeType, nil
		}
	}
	return "", fmt.Errorf("%w: extension %s is not allowed for %s", domain.ErrInvalidFileType, ext, mimeType)
}

func extractMimeType(contentType string) string {
	mimeType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return ""
	}
	return mimeType
}

// storageKey builds a collision-resistant key under the configured prefix:
// <prefix>/<unix-ms>-<token><ext>
func (u *uploadService) storageKey(filename string) string {
	token := strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
	ext := strings.ToLower(filepath.Ext(filename))
	return fmt.Sprintf("%s/%d-%s%s", u.cfg.KeyPrefix, time.Now().UnixMilli(), token, ext)
}

// partSizeFor scales the part size with the declared size so the number of
// parts stays bounded for very large files
func (u *uploadService) partSizeFor(declaredSize int64) int64 {
	switch {
	case declaredSize > u.cfg.HugeFileSize:
		return u.cfg.PartSizeHuge
	case declaredSize > u.cfg.LargeFileSize:
		return u.cfg.PartSizeLarge
	default:
		return u.cfg.PartSizeDefault
	}
}
