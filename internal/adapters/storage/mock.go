package storage

import (
	"context"
	"io"
	"time"

	"github.com/stretchr/testify/mock"

	"vodcore/internal/core/domain"
)

type MockStorage struct {
	mock.Mock
}

func NewMockStorage() *MockStorage {
	return &MockStorage{}
}

func (m *MockStorage) Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) (string, error) {
	args := m.Called(ctx, key, body, size, contentType)
	return args.String(0), args.Error(1)
}

func (m *MockStorage) PresignedPutURL(ctx context.Context, key string, contentType string) (string, map[string]string, *time.Time, error) {
	args := m.Called(ctx, key, contentType)
	return args.String(0), args.Get(1).(map[string]string), args.Get(2).(*time.Time), args.Error(3)
}

func (m *MockStorage) InitMultipartUpload(ctx context.Context, key string, contentType string) (string, error) {
	args := m.Called(ctx, key, contentType)
	return args.String(0), args.Error(1)
}

func (m *MockStorage) PresignedPartURL(ctx context.Context, key string, uploadID string, partNumber int) (string, map[string]string, *time.Time, error) {
	args := m.Called(ctx, key, uploadID, partNumber)
	return args.String(0), args.Get(1).(map[string]string), args.Get(2).(*time.Time), args.Error(3)
}

func (m *MockStorage) CompleteMultipartUpload(ctx context.Context, key string, uploadID string, parts []domain.UploadPart) (string, error) {
	args := m.Called(ctx, key, uploadID, parts)
	return args.String(0), args.Error(1)
}

func (m *MockStorage) AbortMultipartUpload(ctx context.Context, key string, uploadID string) error {
	args := m.Called(ctx, key, uploadID)
	return args.Error(0)
}

func (m *MockStorage) ListPartsPaginated(ctx context.Context, key string, uploadID string, maxParts int, partNumberMarker int) ([]domain.UploadPart, int, error) {
	args := m.Called(ctx, key, uploadID, maxParts, partNumberMarker)
	return args.Get(0).([]domain.UploadPart), args.Int(1), args.Error(2)
}

func (m *MockStorage) PresignedReadURL(ctx context.Context, key string) (string, *time.Time, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Get(1).(*time.Time), args.Error(2)
}

func (m *MockStorage) DeleteObject(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockStorage) Bucket() string {
	args := m.Called()
	return args.String(0)
}
