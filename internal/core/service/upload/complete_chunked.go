package upload

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"vodcore/internal/core/domain"
	"vodcore/internal/core/port"
)

// CompleteChunked completes a chunked upload. Parts are checked for
// duplicates and sorted by number; gaps and bad digests are the blob store's
// call and its error is surfaced verbatim. On failure the session stays open
// so AbortChunked remains reachable.
func (u *uploadService) CompleteChunked(ctx context.Context, sessionID uuid.UUID, parts []domain.UploadPart) (*uuid.UUID, string, error) {

	session, err := u.uow.UploadSessionRepo().FindByIDAndOpen(ctx, sessionID)
	if err != nil {
		return nil, "", err
	}

	if len(parts) != session.TotalParts {
		return nil, "", fmt.Errorf("%w: got %d, expected %d", domain.ErrMismatchNBParts, len(parts), session.TotalParts)
	}

	seen := make(map[int]struct{}, len(parts))
	for _, p := range parts {
		if _, dup := seen[p.PartNumber]; dup {
			return nil, "", domain.ErrDuplicatePart
		}
		seen[p.PartNumber] = struct{}{}
	}

	sort.Slice(parts, func(i, j int) bool {
		return parts[i].PartNumber < parts[j].PartNumber
	})

	location, err := u.storage.CompleteMultipartUpload(ctx, session.StorageKey, session.ProviderUploadID, parts)
	if err != nil {
		return nil, "", err
	}

	txErr := u.uow.Execute(ctx, func(uow port.UnitOfWork) error {
		return uow.UploadSessionRepo().UpdateStatus(ctx, sessionID, domain.UploadSessionStatusCompleted)
	})
	if txErr != nil {
		// the object is assembled; losing the session status update is not
		// worth failing the upload over
		u.logger.Error("failed to mark session completed", "session_id", sessionID, "error", txErr)
	}

	if clearErr := u.tracker.Clear(ctx, sessionID); clearErr != nil {
		u.logger.Warn("failed to clear progress", "session_id", sessionID, "error", clearErr)
	}

	return &session.VideoID, location, nil
}
