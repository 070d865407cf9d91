package eventbroker

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockTaskPublisher struct {
	mock.Mock
}

func NewMockTaskPublisher() *MockTaskPublisher {
	return &MockTaskPublisher{}
}

func (m *MockTaskPublisher) Publish(ctx context.Context, data []byte) error {
	args := m.Called(ctx, data)
	return args.Error(0)
}
