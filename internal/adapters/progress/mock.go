package progress

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockProgressTracker struct {
	mock.Mock
}

func NewMockProgressTracker() *MockProgressTracker {
	return &MockProgressTracker{}
}

func (m *MockProgressTracker) SetPart(ctx context.Context, sessionID uuid.UUID, partNumber int) error {
	args := m.Called(ctx, sessionID, partNumber)
	return args.Error(0)
}

func (m *MockProgressTracker) Progress(ctx context.Context, sessionID uuid.UUID) ([]int, error) {
	args := m.Called(ctx, sessionID)
	return args.Get(0).([]int), args.Error(1)
}

func (m *MockProgressTracker) Clear(ctx context.Context, sessionID uuid.UUID) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}
