package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"vodcore/internal/core/domain"
	"vodcore/internal/core/port"
)

type MockVideoRepository struct {
	mock.Mock
}

func NewMockVideoRepository() *MockVideoRepository {
	return &MockVideoRepository{}
}

func (m *MockVideoRepository) Create(ctx context.Context, video domain.Video) error {
	args := m.Called(ctx, video)
	return args.Error(0)
}

func (m *MockVideoRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Video, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*domain.Video), args.Error(1)
}

func (m *MockVideoRepository) FindDuplicate(ctx context.Context, filename string, sizeBytes int64) (*domain.Video, error) {
	args := m.Called(ctx, filename, sizeBytes)
	return args.Get(0).(*domain.Video), args.Error(1)
}

func (m *MockVideoRepository) Update(ctx context.Context, id uuid.UUID, update domain.VideoUpdate, caps port.SchemaCapabilities) error {
	args := m.Called(ctx, id, update, caps)
	return args.Error(0)
}

type MockUploadSessionRepository struct {
	mock.Mock
}

func NewMockUploadSessionRepository() *MockUploadSessionRepository {
	return &MockUploadSessionRepository{}
}

func (m *MockUploadSessionRepository) Create(ctx context.Context, session domain.UploadSession) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockUploadSessionRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.UploadSession, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*domain.UploadSession), args.Error(1)
}

func (m *MockUploadSessionRepository) FindByIDAndOpen(ctx context.Context, id uuid.UUID) (*domain.UploadSession, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*domain.UploadSession), args.Error(1)
}

func (m *MockUploadSessionRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.UploadSessionStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockUploadSessionRepository) UpdateExpiresAt(ctx context.Context, id uuid.UUID, expiresAt time.Time) error {
	args := m.Called(ctx, id, expiresAt)
	return args.Error(0)
}

func (m *MockUploadSessionRepository) FindAllExpired(ctx context.Context, now time.Time) ([]domain.UploadSession, error) {
	args := m.Called(ctx, now)
	return args.Get(0).([]domain.UploadSession), args.Error(1)
}

type MockTaskRepository struct {
	mock.Mock
}

func NewMockTaskRepository() *MockTaskRepository {
	return &MockTaskRepository{}
}

func (m *MockTaskRepository) Create(ctx context.Context, task domain.EnrichmentTask) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockTaskRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.EnrichmentTask, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*domain.EnrichmentTask), args.Error(1)
}

func (m *MockTaskRepository) MarkRunning(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTaskRepository) MarkDone(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTaskRepository) MarkFailed(ctx context.Context, id uuid.UUID, lastError string) error {
	args := m.Called(ctx, id, lastError)
	return args.Error(0)
}

type MockSchemaProber struct {
	mock.Mock
}

func NewMockSchemaProber() *MockSchemaProber {
	return &MockSchemaProber{}
}

func (m *MockSchemaProber) ProbeVideoColumns(ctx context.Context) (port.SchemaCapabilities, error) {
	args := m.Called(ctx)
	return args.Get(0).(port.SchemaCapabilities), args.Error(1)
}

type MockUnitOfWork struct {
	mock.Mock
	videoRepo         *MockVideoRepository
	uploadSessionRepo *MockUploadSessionRepository
	taskRepo          *MockTaskRepository
}

func NewMockUnitOfWork() *MockUnitOfWork {
	return &MockUnitOfWork{
		videoRepo:         &MockVideoRepository{},
		uploadSessionRepo: &MockUploadSessionRepository{},
		taskRepo:          &MockTaskRepository{},
	}
}

func (m *MockUnitOfWork) VideoRepo() port.VideoRepository {
	return m.videoRepo
}

func (m *MockUnitOfWork) UploadSessionRepo() port.UploadSessionRepository {
	return m.uploadSessionRepo
}

func (m *MockUnitOfWork) TaskRepo() port.TaskRepository {
	return m.taskRepo
}

func (m *MockUnitOfWork) Execute(ctx context.Context, fn func(uow port.UnitOfWork) error) error {
	args := m.Called(ctx, fn)

	if err := fn(m); err != nil {
		return err
	}

	return args.Error(0)
}

func (m *MockUnitOfWork) GetVideoRepoMock() *MockVideoRepository {
	return m.videoRepo
}

func (m *MockUnitOfWork) GetUploadSessionRepoMock() *MockUploadSessionRepository {
	return m.uploadSessionRepo
}

func (m *MockUnitOfWork) GetTaskRepoMock() *MockTaskRepository {
	return m.taskRepo
}
