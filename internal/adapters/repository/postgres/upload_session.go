package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"vodcore/internal/core/domain"
	"vodcore/internal/core/port"
)

type sqlUploadSessionRepository struct {
	db SQLQuerier
}

// NewSQLUploadSessionRepository creates a new sqlUploadSessionRepository
func NewSQLUploadSessionRepository(db SQLQuerier) port.UploadSessionRepository {
	return &sqlUploadSessionRepository{db: db}
}

// Create creates an upload session
func (s *sqlUploadSessionRepository) Create(ctx context.Context, session domain.UploadSession) error {
	query := `
		INSERT INTO upload_sessions (
			id, video_id, provider_upload_id, storage_key, part_size, total_parts, declared_size, expires_at, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := s.db.ExecContext(
		ctx,
		query,
		session.ID,
		session.VideoID,
		session.ProviderUploadID,
		session.StorageKey,
		session.PartSize,
		session.TotalParts,
		session.DeclaredSize,
		session.ExpiresAt,
		session.Status,
	)
	if err != nil {
		return err
	}
	return nil
}

const sessionColumns = `id, video_id, provider_upload_id, storage_key, part_size, total_parts, declared_size, expires_at, status, created_at, updated_at`

// FindByID finds a session regardless of status
func (s *sqlUploadSessionRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.UploadSession, error) {
	query := `SELECT ` + sessionColumns + ` FROM upload_sessions WHERE id = $1`
	return s.scanSession(s.db.QueryRowContext(ctx, query, id))
}

// FindByIDAndOpen finds a session that is still open
func (s *sqlUploadSessionRepository) FindByIDAndOpen(ctx context.Context, id uuid.UUID) (*domain.UploadSession, error) {
	query := `SELECT ` + sessionColumns + ` FROM upload_sessions WHERE id = $1 AND status = 'open'`
	return s.scanSession(s.db.QueryRowContext(ctx, query, id))
}

// UpdateStatus updates the session status
func (s *sqlUploadSessionRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.UploadSessionStatus) error {
	query := `UPDATE upload_sessions SET status = $1, updated_at = now() WHERE id = $2`

	result, err := s.db.ExecContext(ctx, query, status, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrSessionNotFound
	}
	return nil
}

// UpdateExpiresAt extends an open session
func (s *sqlUploadSessionRepository) UpdateExpiresAt(ctx context.Context, id uuid.UUID, expiresAt time.Time) error {
	query := `UPDATE upload_sessions SET expires_at = $1, updated_at = now() WHERE id = $2 AND status = 'open'`

	result, err := s.db.ExecContext(ctx, query, expiresAt, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrSessionNotFound
	}
	return nil
}

// FindAllExpired finds open sessions past their TTL
func (s *sqlUploadSessionRepository) FindAllExpired(ctx context.Context, now time.Time) ([]domain.UploadSession, error) {
	query := `SELECT ` + sessionColumns + ` FROM upload_sessions WHERE status = 'open' AND expires_at < $1`

	rows, err := s.db.QueryContext(ctx, query, now)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []domain.UploadSession
	for rows.Next() {
		var row domain.UploadSession
		if err := rows.Scan(
			&row.ID,
			&row.VideoID,
			&row.ProviderUploadID,
			&row.StorageKey,
			&row.PartSize,
			&row.TotalParts,
			&row.DeclaredSize,
			&row.ExpiresAt,
			&row.Status,
			&row.CreatedAt,
			&row.UpdatedAt,
		); err != nil {
			return nil, err
		}
		sessions = append(sessions, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return sessions, nil
}

func (s *sqlUploadSessionRepository) scanSession(row *sql.Row) (*domain.UploadSession, error) {
	var session domain.UploadSession
	err := row.Scan(
		&session.ID,
		&session.VideoID,
		&session.ProviderUploadID,
		&session.StorageKey,
		&session.PartSize,
		&session.TotalParts,
		&session.DeclaredSize,
		&session.ExpiresAt,
		&session.Status,
		&session.CreatedAt,
		&session.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, err
	}
	return &session, nil
}
