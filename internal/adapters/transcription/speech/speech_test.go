package speech_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vodcore/internal/adapters/transcription/speech"
	"vodcore/internal/config"
	"vodcore/internal/core/domain"
)

func newProvider(baseURL string) *speech.Provider {
	return speech.NewProvider(config.TranscriptionConfig{
		SpeechBaseURL: baseURL,
		Timeout:       5 * time.Second,
	})
}

func TestProvider_Configured(t *testing.T) {
	t.Run("with base url", func(t *testing.T) {
		ok, _ := newProvider("http://speech.internal").Configured()
		assert.True(t, ok)
	})

	t.Run("without base url", func(t *testing.T) {
		ok, reason := newProvider("").Configured()
		assert.False(t, ok)
		assert.Equal(t, "missing base url", reason)
	})
}

func TestProvider_Transcribe(t *testing.T) {
	ctx := context.Background()

	t.Run("success - synchronous transcript", func(t *testing.T) {
		// Arrange
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/transcribe", r.URL.Path)

			var payload map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
			assert.Equal(t, "https://blob/read", payload["media_url"])
			assert.Equal(t, "en", payload["language"])

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"text":"hello world","confidence":0.91}`))
		}))
		defer server.Close()

		provider := newProvider(server.URL)

		// Act
		result, err := provider.Transcribe(ctx, domain.TranscriptionRequest{
			MediaURL: "https://blob/read",
			Options:  domain.TranscriptionOptions{Language: "en", ConfidenceThreshold: 0.6},
		})

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "hello world", result.Text)
		assert.Equal(t, domain.TranscriptionStatusCompleted, result.Status)
		assert.False(t, result.Async)
	})

	t.Run("error - confidence below threshold", func(t *testing.T) {
		// Arrange
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"text":"mumbling","confidence":0.31}`))
		}))
		defer server.Close()

		provider := newProvider(server.URL)

		// Act
		result, err := provider.Transcribe(ctx, domain.TranscriptionRequest{
			MediaURL: "https://blob/read",
			Options:  domain.TranscriptionOptions{ConfidenceThreshold: 0.6},
		})

		// Assert
		require.Error(t, err)
		assert.Contains(t, err.Error(), "below threshold")
		require.Nil(t, result)
	})

	t.Run("success - unreported confidence passes", func(t *testing.T) {
		// Arrange
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"text":"hello"}`))
		}))
		defer server.Close()

		provider := newProvider(server.URL)

		// Act
		result, err := provider.Transcribe(ctx, domain.TranscriptionRequest{
			MediaURL: "https://blob/read",
			Options:  domain.TranscriptionOptions{ConfidenceThreshold: 0.6},
		})

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "hello", result.Text)
	})

	t.Run("error - http failure", func(t *testing.T) {
		// Arrange
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "overloaded", http.StatusServiceUnavailable)
		}))
		defer server.Close()

		provider := newProvider(server.URL)

		// Act
		result, err := provider.Transcribe(ctx, domain.TranscriptionRequest{MediaURL: "https://blob/read"})

		// Assert
		require.Error(t, err)
		assert.Contains(t, err.Error(), "503")
		require.Nil(t, result)
	})
}
