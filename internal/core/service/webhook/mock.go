package webhook

import (
	"context"

	"github.com/stretchr/testify/mock"

	"vodcore/internal/core/domain"
)

// MockWebhookService is a mock implementation of WebhookService
type MockWebhookService struct {
	mock.Mock
}

// NewMockWebhookService creates a new MockWebhookService
func NewMockWebhookService() *MockWebhookService {
	return &MockWebhookService{}
}

func (m *MockWebhookService) HandleEvent(ctx context.Context, rawBody []byte, signatureHeader string) domain.WebhookOutcome {
	args := m.Called(ctx, rawBody, signatureHeader)
	return args.Get(0).(domain.WebhookOutcome)
}
