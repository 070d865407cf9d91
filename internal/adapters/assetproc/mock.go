package assetproc

import (
	"context"

	"github.com/stretchr/testify/mock"

	"vodcore/internal/core/domain"
)

type MockAssetProcessor struct {
	mock.Mock
}

func NewMockAssetProcessor() *MockAssetProcessor {
	return &MockAssetProcessor{}
}

func (m *MockAssetProcessor) CreateAsset(ctx context.Context, inputURL string, passthrough string, opts domain.AssetOptions) (*domain.Asset, error) {
	args := m.Called(ctx, inputURL, passthrough, opts)
	return args.Get(0).(*domain.Asset), args.Error(1)
}

func (m *MockAssetProcessor) GetAssetStatus(ctx context.Context, assetID string) (*domain.Asset, error) {
	args := m.Called(ctx, assetID)
	return args.Get(0).(*domain.Asset), args.Error(1)
}

func (m *MockAssetProcessor) RequestCaptions(ctx context.Context, assetID string, language string) (*domain.CaptionTrack, error) {
	args := m.Called(ctx, assetID, language)
	return args.Get(0).(*domain.CaptionTrack), args.Error(1)
}

func (m *MockAssetProcessor) ThumbnailURL(playbackID string, atSeconds int) string {
	args := m.Called(playbackID, atSeconds)
	return args.String(0)
}

func (m *MockAssetProcessor) StreamURL(playbackID string) string {
	args := m.Called(playbackID)
	return args.String(0)
}

func (m *MockAssetProcessor) MP4URL(playbackID string, quality string) string {
	args := m.Called(playbackID, quality)
	return args.String(0)
}

func (m *MockAssetProcessor) CaptionURL(playbackID string, trackID string, format string) string {
	args := m.Called(playbackID, trackID, format)
	return args.String(0)
}
