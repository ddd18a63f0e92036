package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/WeAreTheArtMakers/mindTrace/internal/domain"
	"github.com/WeAreTheArtMakers/mindTrace/internal/service/analytics"
)

type analyticsService interface {
	RecordEvent(ctx context.Context, input analytics.RecordInput) (bool, error)
	Report(ctx context.Context, secret string) (*domain.AnalyticsReport, error)
}

// AnalyticsHandler collects client events and serves the report.
type AnalyticsHandler struct {
	svc analyticsService
	log *slog.Logger
}

// NewAnalyticsHandler creates an AnalyticsHandler.
func NewAnalyticsHandler(svc analyticsService, logger *slog.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{svc: svc, log: logger.With("handler", "analytics")}
}

// Record handles POST /api/analytics. ok is false when the event was dropped.
func (h *AnalyticsHandler) Record(w http.ResponseWriter, r *http.Request) {
	var req recordEventRequest
	if err := decodeJSON(r, w, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	ua := req.UserAgent
	if ua == "" {
		ua = r.UserAgent()
	}

	stored, err := h.svc.RecordEvent(r.Context(), analytics.RecordInput{
		Name:       req.Name,
		Properties: req.Properties,
		Path:       req.Path,
		Referrer:   req.Referrer,
		UserAgent:  ua,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, recordEventResponse{OK: stored})
}

// Report handles GET /api/analytics?secret=.
func (h *AnalyticsHandler) Report(w http.ResponseWriter, r *http.Request) {
	report, err := h.svc.Report(r.Context(), r.URL.Query().Get("secret"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}
