package upload

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"vodcore/internal/core/domain"
)

// MockUploadService is a mock implementation of UploadService
type MockUploadService struct {
	mock.Mock
}

// NewMockUploadService creates a new MockUploadService
func NewMockUploadService() *MockUploadService {
	return &MockUploadService{}
}

func (m *MockUploadService) ChooseStrategy(sizeBytes int64) domain.UploadStrategy {
	args := m.Called(sizeBytes)
	return args.Get(0).(domain.UploadStrategy)
}

func (m *MockUploadService) InitiateSingle(ctx context.Context, filename string, contentType string, sizeBytes int64) (*domain.SingleUploadTarget, error) {
	args := m.Called(ctx, filename, contentType, sizeBytes)
	return args.Get(0).(*domain.SingleUploadTarget), args.Error(1)
}

func (m *MockUploadService) InitiateChunked(ctx context.Context, filename string, contentType string, declaredSize int64) (*domain.ChunkedUploadInit, error) {
	args := m.Called(ctx, filename, contentType, declaredSize)
	return args.Get(0).(*domain.ChunkedUploadInit), args.Error(1)
}

func (m *MockUploadService) PartUploadTarget(ctx context.Context, sessionID uuid.UUID, partNumber int) (*domain.UploadPart, error) {
	args := m.Called(ctx, sessionID, partNumber)
	return args.Get(0).(*domain.UploadPart), args.Error(1)
}

func (m *MockUploadService) CompleteChunked(ctx context.Context, sessionID uuid.UUID, parts []domain.UploadPart) (*uuid.UUID, string, error) {
	args := m.Called(ctx, sessionID, parts)
	return args.Get(0).(*uuid.UUID), args.String(1), args.Error(2)
}

func (m *MockUploadService) AbortChunked(ctx context.Context, sessionID uuid.UUID) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

func (m *MockUploadService) Progress(ctx context.Context, sessionID uuid.UUID) ([]int, error) {
	args := m.Called(ctx, sessionID)
	return args.Get(0).([]int), args.Error(1)
}
