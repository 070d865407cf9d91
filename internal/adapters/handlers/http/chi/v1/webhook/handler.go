package webhook

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"vodcore/internal/core/domain"
	"vodcore/internal/core/port"
)

// signatureHeader is the header the asset provider signs events with
const signatureHeader = "provider-signature"

// maxBodySize bounds webhook payloads; provider events are small
const maxBodySize = 1 << 20

// HandlerV1 is the handler for provider webhook callbacks
type HandlerV1 struct {
	webhookService port.WebhookService
	logger         *slog.Logger
}

// NewWebhookHandlerV1 creates HandlerV1
func NewWebhookHandlerV1(service port.WebhookService, logger *slog.Logger) *HandlerV1 {
	return &HandlerV1{
		webhookService: service,
		logger:         logger,
	}
}

// Routes exposes handler routes
func (h *HandlerV1) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/", h.HandleWebhookV1)

	return router
}

// V1WebhookResponse acknowledges an accepted event
type V1WebhookResponse struct {
	Action domain.WebhookAction `json:"action"`
}

func (h *HandlerV1) HandleWebhookV1(w http.ResponseWriter, r *http.Request) {

	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
	if err != nil {
		http.Error(w, "failed to read body", http.StatusBadRequest)
		return
	}

	outcome := h.webhookService.HandleEvent(r.Context(), body, r.Header.Get(signatureHeader))
	if !outcome.Accepted {
		if errors.Is(outcome.Err, domain.ErrInvalidSignature) {
			http.Error(w, "invalid signature", http.StatusUnauthorized)
			return
		}
		http.Error(w, "malformed event", http.StatusBadRequest)
		return
	}

	resp := V1WebhookResponse{Action: outcome.Action}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error("error encoding response", "error", err)
	}
}
