package record

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"vodcore/internal/core/domain"
)

type MockRecordService struct {
	mock.Mock
}

func NewMockRecordService() *MockRecordService {
	return &MockRecordService{}
}

func (m *MockRecordService) CreateMinimal(ctx context.Context, video domain.Video) (*domain.Video, error) {
	args := m.Called(ctx, video)
	return args.Get(0).(*domain.Video), args.Error(1)
}

func (m *MockRecordService) Update(ctx context.Context, id uuid.UUID, update domain.VideoUpdate) error {
	args := m.Called(ctx, id, update)
	return args.Error(0)
}

func (m *MockRecordService) FindDuplicate(ctx context.Context, filename string, sizeBytes int64) (*domain.Video, error) {
	args := m.Called(ctx, filename, sizeBytes)
	return args.Get(0).(*domain.Video), args.Error(1)
}

func (m *MockRecordService) Get(ctx context.Context, id uuid.UUID) (*domain.Video, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*domain.Video), args.Error(1)
}
