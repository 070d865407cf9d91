package processing

import (
	"context"

	"github.com/stretchr/testify/mock"

	"vodcore/internal/core/domain"
)

// MockProcessingService is a mock implementation of ProcessingService
type MockProcessingService struct {
	mock.Mock
}

// NewMockProcessingService creates a new MockProcessingService
func NewMockProcessingService() *MockProcessingService {
	return &MockProcessingService{}
}

func (m *MockProcessingService) Process(ctx context.Context, req domain.ProcessRequest) (*domain.ProcessResult, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(*domain.ProcessResult), args.Error(1)
}
