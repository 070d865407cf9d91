package webhook

import (
	"log/slog"

	"vodcore/internal/core/port"
)

type webhookService struct {
	record port.RecordService
	assets port.AssetProcessor
	secret string
	logger *slog.Logger
}

// NewWebhookService creates the webhook state machine. An empty secret
// disables signature enforcement (dev mode); events are then accepted
// unsigned but logged loudly.
func NewWebhookService(record port.RecordService, assets port.AssetProcessor, secret string, logger *slog.Logger) port.WebhookService {
	return &webhookService{
		record: record,
		assets: assets,
		secret: secret,
		logger: logger,
	}
}
