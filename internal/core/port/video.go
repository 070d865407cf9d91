package port

import (
	"context"

	"github.com/google/uuid"

	"vodcore/internal/core/domain"
)

// VideoRepository is an interface to define video record persistence
type VideoRepository interface {
	Create(ctx context.Context, video domain.Video) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Video, error)
	FindDuplicate(ctx context.Context, filename string, sizeBytes int64) (*domain.Video, error)
	Update(ctx context.Context, id uuid.UUID, update domain.VideoUpdate, caps SchemaCapabilities) error
}

// SchemaCapabilities describes which optional enrichment columns exist in the
// videos table. Resolved once at startup so updates never feature-probe at
// runtime.
type SchemaCapabilities struct {
	Columns map[string]bool
}

// Has reports whether a column is present
func (c SchemaCapabilities) Has(column string) bool {
	return c.Columns[column]
}

// SchemaProber resolves the capability descriptor for the videos table
type SchemaProber interface {
	ProbeVideoColumns(ctx context.Context) (SchemaCapabilities, error)
}
