package port

import "context"

// UnitOfWork groups the repositories behind one transaction boundary
type UnitOfWork interface {
	VideoRepo() VideoRepository
	UploadSessionRepo() UploadSessionRepository
	TaskRepo() TaskRepository
	Execute(ctx context.Context, fn func(uow UnitOfWork) error) error
}
