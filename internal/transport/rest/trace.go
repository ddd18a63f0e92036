package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/WeAreTheArtMakers/mindTrace/internal/domain"
	"github.com/WeAreTheArtMakers/mindTrace/internal/service/trace"
)

type traceService interface {
	CreateTrace(ctx context.Context, input trace.CreateTraceInput) (*domain.Trace, error)
	GetTrace(ctx context.Context, id string) (*domain.Trace, error)
	SearchTraces(ctx context.Context, input trace.SearchInput) (*trace.SearchResult, error)
	ListTags(ctx context.Context) ([]string, error)
	FeaturedID(ctx context.Context) (string, error)
	RelatedTraces(ctx context.Context, id string) (*trace.Related, error)
	AlternativeSolutions(ctx context.Context, id string) ([]trace.RankedTrace, error)
	AlternativesForProblem(ctx context.Context, problem string) ([]trace.RankedTrace, error)
}

// TraceHandler serves trace listing, creation and matching endpoints.
type TraceHandler struct {
	svc traceService
	log *slog.Logger
}

// NewTraceHandler creates a TraceHandler.
func NewTraceHandler(svc traceService, logger *slog.Logger) *TraceHandler {
	return &TraceHandler{svc: svc, log: logger.With("handler", "trace")}
}

// List handles GET /api/traces.
func (h *TraceHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	page, err := intParam(q.Get("page"), "page")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	limit, err := intParam(q.Get("limit"), "limit")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	res, err := h.svc.SearchTraces(r.Context(), trace.SearchInput{
		Query:               q.Get("query"),
		Tag:                 q.Get("tag"),
		Page:                page,
		Limit:               limit,
		Locale:              q.Get("locale"),
		ExcludeAlternatives: boolParam(q.Get("excludeAlternatives")),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, searchResponse{
		Traces: toTraceResponses(res.Traces),
		Total:  res.Total,
		Page:   res.Page,
		Limit:  res.Limit,
	})
}

// Create handles POST /api/traces.
func (h *TraceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createTraceRequest
	if err := decodeJSON(r, w, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	t, err := h.svc.CreateTrace(r.Context(), trace.CreateTraceInput{
		Problem:    req.Problem,
		Steps:      req.Steps,
		Tags:       req.Tags,
		LocaleHint: req.LocaleHint,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toTraceResponse(t))
}

// Get handles GET /api/traces/{id}.
func (h *TraceHandler) Get(w http.ResponseWriter, r *http.Request) {
	t, err := h.svc.GetTrace(r.Context(), r.PathValue("id"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toTraceResponse(t))
}

// Similar handles GET /api/traces/{id}/similar.
func (h *TraceHandler) Similar(w http.ResponseWriter, r *http.Request) {
	rel, err := h.svc.RelatedTraces(r.Context(), r.PathValue("id"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, similarResponse{
		Similar:          toRankedResponses(rel.Similar),
		AlternativeCount: rel.AlternativeCount,
		Problem:          rel.Problem,
	})
}

// Alternatives handles GET /api/traces/{id}/alternatives.
func (h *TraceHandler) Alternatives(w http.ResponseWriter, r *http.Request) {
	alts, err := h.svc.AlternativeSolutions(r.Context(), r.PathValue("id"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, alternativesResponse{Alternatives: toRankedResponses(alts)})
}

// AlternativesForProblem handles GET /api/alternatives?problem=.
func (h *TraceHandler) AlternativesForProblem(w http.ResponseWriter, r *http.Request) {
	alts, err := h.svc.AlternativesForProblem(r.Context(), r.URL.Query().Get("problem"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, alternativesResponse{Alternatives: toRankedResponses(alts)})
}

// Tags handles GET /api/tags.
func (h *TraceHandler) Tags(w http.ResponseWriter, r *http.Request) {
	tags, err := h.svc.ListTags(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string][]string{"tags": nonNil(tags)})
}

// Featured handles GET /api/featured. The id is null when there are no traces.
func (h *TraceHandler) Featured(w http.ResponseWriter, r *http.Request) {
	id, err := h.svc.FeaturedID(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var out *string
	if id != "" {
		out = &id
	}
	writeJSON(w, http.StatusOK, map[string]*string{"id": out})
}

func intParam(raw, field string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, domain.NewValidationError(field, "must be a non-negative integer")
	}
	return n, nil
}

func boolParam(raw string) bool {
	b, err := strconv.ParseBool(strings.TrimSpace(raw))
	return err == nil && b
}
