package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"vodcore/internal/core/domain"
	"vodcore/internal/core/port"
)

type sqlTaskRepository struct {
	db SQLQuerier
}

// NewSQLTaskRepository creates a new sqlTaskRepository
func NewSQLTaskRepository(db SQLQuerier) port.TaskRepository {
	return &sqlTaskRepository{db: db}
}

// Create inserts an enrichment task row
func (s *sqlTaskRepository) Create(ctx context.Context, task domain.EnrichmentTask) error {
	query := `INSERT INTO enrichment_tasks (id, video_id, kind, status, attempts)
              VALUES ($1, $2, $3, $4, $5)`

	_, err := s.db.ExecContext(ctx, query, task.ID, task.VideoID, task.Kind, task.Status, task.Attempts)
	return err
}

// FindByID finds a task by id
func (s *sqlTaskRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.EnrichmentTask, error) {
	query := `SELECT id, video_id, kind, status, attempts, COALESCE(last_error, ''), created_at, updated_at
              FROM enrichment_tasks WHERE id = $1`

	var task domain.EnrichmentTask
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&task.ID,
		&task.VideoID,
		&task.Kind,
		&task.Status,
		&task.Attempts,
		&task.LastError,
		&task.CreatedAt,
		&task.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, err
	}
	return &task, nil
}

// MarkRunning bumps the attempt counter and flips status to running
func (s *sqlTaskRepository) MarkRunning(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE enrichment_tasks SET status = 'running', attempts = attempts + 1, updated_at = now() WHERE id = $1`
	return s.exec(ctx, query, id)
}

// MarkDone flips status to done
func (s *sqlTaskRepository) MarkDone(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE enrichment_tasks SET status = 'done', last_error = NULL, updated_at = now() WHERE id = $1`
	return s.exec(ctx, query, id)
}

// MarkFailed flips status to failed and records the cause
func (s *sqlTaskRepository) MarkFailed(ctx context.Context, id uuid.UUID, lastError string) error {
	query := `UPDATE enrichment_tasks SET status = 'failed', last_error = $2, updated_at = now() WHERE id = $1`

	result, err := s.db.ExecContext(ctx, query, id, lastError)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

func (s *sqlTaskRepository) exec(ctx context.Context, query string, id uuid.UUID) error {
	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}
