package transcription

import (
	"context"

	"github.com/stretchr/testify/mock"

	"vodcore/internal/core/domain"
)

// MockProvider is a mock implementation of TranscriptionProvider
type MockProvider struct {
	mock.Mock
}

// NewMockProvider creates a new MockProvider
func NewMockProvider() *MockProvider {
	return &MockProvider{}
}

func (m *MockProvider) Name() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockProvider) Configured() (bool, string) {
	args := m.Called()
	return args.Bool(0), args.String(1)
}

func (m *MockProvider) Transcribe(ctx context.Context, req domain.TranscriptionRequest) (*domain.TranscriptionResult, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(*domain.TranscriptionResult), args.Error(1)
}

// MockTranscriber is a mock implementation of the whole chain
type MockTranscriber struct {
	mock.Mock
}

// NewMockTranscriber creates a new MockTranscriber
func NewMockTranscriber() *MockTranscriber {
	return &MockTranscriber{}
}

func (m *MockTranscriber) Transcribe(ctx context.Context, req domain.TranscriptionRequest) (*domain.TranscriptionResult, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(*domain.TranscriptionResult), args.Error(1)
}
