package rest

import (
	"context"
	"log/slog"
	"net/http"
)

type reactionService interface {
	Resonate(ctx context.Context, traceID string) (int, error)
	Count(ctx context.Context, traceID string) (int, error)
}

// ReactionHandler serves the resonate counter.
type ReactionHandler struct {
	svc reactionService
	log *slog.Logger
}

// NewReactionHandler creates a ReactionHandler.
func NewReactionHandler(svc reactionService, logger *slog.Logger) *ReactionHandler {
	return &ReactionHandler{svc: svc, log: logger.With("handler", "reaction")}
}

// Count handles GET /api/resonate?traceId=.
func (h *ReactionHandler) Count(w http.ResponseWriter, r *http.Request) {
	n, err := h.svc.Count(r.Context(), r.URL.Query().Get("traceId"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, countResponse{Count: n})
}

// Resonate handles POST /api/resonate.
func (h *ReactionHandler) Resonate(w http.ResponseWriter, r *http.Request) {
	var req resonateRequest
	if err := decodeJSON(r, w, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	n, err := h.svc.Resonate(r.Context(), req.TraceID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, countResponse{Count: n})
}
