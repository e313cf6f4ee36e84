package handlers

import (
	"log/slog"
	nethttp "net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	appcards "github.com/preston-bernstein/team-scores-service/internal/app/cards"
	"github.com/preston-bernstein/team-scores-service/internal/domain/cards"
	"github.com/preston-bernstein/team-scores-service/internal/logging"
	"github.com/preston-bernstein/team-scores-service/internal/poller"
)

// CardsResponse is the payload of GET /cards.
type CardsResponse struct {
	Cards []cards.Card `json:"cards"`
}

// Handler serves the card read API.
type Handler struct {
	svc      *appcards.Service
	logger   *slog.Logger
	statusFn func() poller.Status
}

// NewHandler constructs a Handler. statusFn may be nil, in which case the service always reports ready.
func NewHandler(svc *appcards.Service, logger *slog.Logger, statusFn func() poller.Status) *Handler {
	return &Handler{
		svc:      svc,
		logger:   logger,
		statusFn: statusFn,
	}
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic (e.g., for Kubernetes probes).
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if h.statusFn == nil {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	status := h.statusFn()
	if status.IsReady() {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	if status.LastError != "" {
		logging.Warn(loggerFromContext(r, h.logger), "not ready",
			logging.FieldError, status.LastError,
			logging.FieldCount, status.ConsecutiveFailures,
		)
	}
	writeError(w, r, nethttp.StatusServiceUnavailable, "not ready", h.logger)
}

// Cards returns the latest card of every view in display order.
func (h *Handler) Cards(w nethttp.ResponseWriter, r *nethttp.Request) {
	list := h.svc.Cards()
	logging.Debug(loggerFromContext(r, h.logger), "served cards", logging.FieldCount, len(list))
	writeJSON(w, nethttp.StatusOK, CardsResponse{Cards: list}, h.logger)
}

// CardByKey returns the latest card for one view key.
func (h *Handler) CardByKey(w nethttp.ResponseWriter, r *nethttp.Request) {
	key := strings.TrimSpace(chi.URLParam(r, "viewKey"))
	if key == "" || strings.ContainsAny(key, " \t/") {
		writeError(w, r, nethttp.StatusBadRequest, "invalid view key", h.logger)
		return
	}

	card, ok := h.svc.CardByKey(key)
	if !ok {
		writeError(w, r, nethttp.StatusNotFound, "card not found", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, card, h.logger)
}
