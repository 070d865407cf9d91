package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"vodcore/internal/core/domain"
	"vodcore/internal/core/port"
)

type sqlVideoRepository struct {
	db SQLQuerier
}

// NewSQLVideoRepository creates sqlVideoRepository that implements port.VideoRepository
func NewSQLVideoRepository(db SQLQuerier) port.VideoRepository {
	return &sqlVideoRepository{db: db}
}

// Create inserts the intake row
func (s *sqlVideoRepository) Create(ctx context.Context, video domain.Video) error {
	query := `INSERT INTO videos (id, filename, mime_type, size_bytes, storage_key, bucket, asset_status, processing_status, processed, public)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := s.db.ExecContext(ctx, query,
		video.ID,
		video.Filename,
		video.MimeType,
		video.SizeBytes,
		video.StorageKey,
		video.Bucket,
		video.AssetStatus,
		video.ProcessingStatus,
		video.Processed,
		video.Public,
	)
	if err != nil {
		return fmt.Errorf("error inserting video: %w", err)
	}
	return nil
}

// Update applies only the set fields that the schema has, as one statement.
// A column the capability descriptor missed surfaces as ErrUnknownColumn so
// the caller can re-probe and retry.
func (s *sqlVideoRepository) Update(ctx context.Context, id uuid.UUID, update domain.VideoUpdate, caps port.SchemaCapabilities) error {

	var clauses []string
	var args []any
	for _, col := range update.Columns() {
		if len(caps.Columns) > 0 && !caps.Has(col) {
			continue
		}
		args = append(args, update.Value(col))
		clauses = append(clauses, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	if len(clauses) == 0 {
		return nil
	}

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE videos SET %s, updated_at = now() WHERE id = $%d`,
		strings.Join(clauses, ", "), len(args))

	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "42703" {
			return fmt.Errorf("%w: %v", domain.ErrUnknownColumn, err)
		}
		return fmt.Errorf("error updating video: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error checking rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrVideoNotFound
	}
	return nil
}

const videoColumns = `id, filename, mime_type, size_bytes, storage_key, bucket,
       COALESCE(asset_id, ''), COALESCE(playback_id, ''), asset_status, processing_status,
       COALESCE(thumbnail_url, ''), COALESCE(stream_url, ''), COALESCE(download_url, ''),
       COALESCE(duration_sec, 0), COALESCE(width, 0), COALESCE(height, 0),
       COALESCE(aspect_ratio, ''), COALESCE(bitrate_kbps, 0),
       COALESCE(transcript_text, ''), COALESCE(transcript_status, 'none'),
       COALESCE(caption_vtt_url, ''), COALESCE(caption_srt_url, ''),
       COALESCE(transcription_job_id, ''), COALESCE(transcript_provider, ''),
       COALESCE(speaker_count, 0), processed, public, created_at, updated_at`

// FindByID finds a video by id
func (s *sqlVideoRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Video, error) {
	query := `SELECT ` + videoColumns + ` FROM videos WHERE id = $1`
	return s.scanVideo(s.db.QueryRowContext(ctx, query, id))
}

// FindDuplicate finds an existing video with the same original filename and
// declared size, the duplicate-detection key for client retries
func (s *sqlVideoRepository) FindDuplicate(ctx context.Context, filename string, sizeBytes int64) (*domain.Video, error) {
	query := `SELECT ` + videoColumns + ` FROM videos
              WHERE filename = $1 AND size_bytes = $2
              ORDER BY created_at ASC
              LIMIT 1`
	return s.scanVideo(s.db.QueryRowContext(ctx, query, filename, sizeBytes))
}

func (s *sqlVideoRepository) scanVideo(row *sql.Row) (*domain.Video, error) {
	var v domain.Video
	err := row.Scan(
		&v.ID,
		&v.Filename,
		&v.MimeType,
		&v.SizeBytes,
		&v.StorageKey,
		&v.Bucket,
		&v.AssetID,
		&v.PlaybackID,
		&v.AssetStatus,
		&v.ProcessingStatus,
		&v.ThumbnailURL,
		&v.StreamURL,
		&v.DownloadURL,
		&v.DurationSec,
		&v.Width,
		&v.Height,
		&v.AspectRatio,
		&v.BitrateKbps,
		&v.TranscriptText,
		&v.TranscriptStatus,
		&v.CaptionVTTURL,
		&v.CaptionSRTURL,
		&v.TranscriptionJobID,
		&v.TranscriptProvider,
		&v.SpeakerCount,
		&v.Processed,
		&v.Public,
		&v.CreatedAt,
		&v.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrVideoNotFound
		}
		return nil, err
	}
	return &v, nil
}

// SchemaProber implementation

type schemaProber struct {
	db SQLQuerier
}

// NewSchemaProber creates the videos-table capability prober
func NewSchemaProber(db SQLQuerier) port.SchemaProber {
	return &schemaProber{db: db}
}

// ProbeVideoColumns reads the actual column set of the videos table once so
// partial updates never have to feature-probe at runtime
func (p *schemaProber) ProbeVideoColumns(ctx context.Context) (port.SchemaCapabilities, error) {
	query := `SELECT column_name FROM information_schema.columns WHERE table_name = 'videos'`

	rows, err := p.db.QueryContext(ctx, query)
	if err != nil {
		return port.SchemaCapabilities{}, fmt.Errorf("error probing videos columns: %w", err)
	}
	defer rows.Close()

	caps := port.SchemaCapabilities{Columns: make(map[string]bool)}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return port.SchemaCapabilities{}, fmt.Errorf("error scanning column name: %w", err)
		}
		caps.Columns[name] = true
	}
	if err := rows.Err(); err != nil {
		return port.SchemaCapabilities{}, fmt.Errorf("error iterating columns: %w", err)
	}
	return caps, nil
}
