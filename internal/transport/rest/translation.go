package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/WeAreTheArtMakers/mindTrace/internal/service/translation"
)

type translationService interface {
	Resolve(ctx context.Context, traceID, lang string) (*translation.Result, error)
	ResolveBatch(ctx context.Context, traceIDs []string, lang string) (*translation.BatchResult, error)
	Providers() []string
}

// Reasons reported when no translation could be produced.
const (
	reasonNoProvider     = "no_provider"
	reasonProviderFailed = "provider_failed"
)

// TranslationHandler serves on-demand translation.
type TranslationHandler struct {
	svc translationService
	log *slog.Logger
}

// NewTranslationHandler creates a TranslationHandler.
func NewTranslationHandler(svc translationService, logger *slog.Logger) *TranslationHandler {
	return &TranslationHandler{svc: svc, log: logger.With("handler", "translation")}
}

// Translate handles POST /api/translate.
func (h *TranslationHandler) Translate(w http.ResponseWriter, r *http.Request) {
	var req translateRequest
	if err := decodeJSON(r, w, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	res, err := h.svc.Resolve(r.Context(), req.TraceID, req.Lang)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if !res.Available() {
		reason := reasonProviderFailed
		if len(h.svc.Providers()) == 0 {
			reason = reasonNoProvider
		}
		writeJSON(w, http.StatusOK, translateResponse{
			Status:    string(res.Status),
			Available: false,
			Provider:  res.Provider,
			Reason:    reason,
		})
		return
	}

	writeJSON(w, http.StatusOK, translateResponse{
		Problem:   res.Content.Problem,
		Steps:     nonNil(res.Content.Steps),
		Tags:      nonNil(res.Content.Tags),
		Status:    string(res.Status),
		Cached:    res.Cached(),
		Available: true,
		Provider:  res.Provider,
	})
}

// TranslateBatch handles POST /api/translate/batch.
func (h *TranslationHandler) TranslateBatch(w http.ResponseWriter, r *http.Request) {
	var req batchTranslateRequest
	if err := decodeJSON(r, w, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	res, err := h.svc.ResolveBatch(r.Context(), req.TraceIDs, req.Lang)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make(map[string]batchItemResponse, len(res.Translations))
	for id, tr := range res.Translations {
		out[id] = toBatchItem(tr)
	}
	writeJSON(w, http.StatusOK, batchTranslateResponse{Translations: out, APIAvailable: res.APIAvailable})
}
