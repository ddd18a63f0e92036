package rest

import (
	"time"

	"github.com/WeAreTheArtMakers/mindTrace/internal/domain"
	"github.com/WeAreTheArtMakers/mindTrace/internal/service/trace"
	"github.com/WeAreTheArtMakers/mindTrace/internal/service/translation"
)

type traceResponse struct {
	ID         string    `json:"id"`
	Problem    string    `json:"problem"`
	Steps      []string  `json:"steps"`
	Tags       []string  `json:"tags"`
	LocaleHint *string   `json:"localeHint"`
	IsSeed     bool      `json:"isSeed"`
	CreatedAt  time.Time `json:"createdAt"`
}

type rankedTraceResponse struct {
	traceResponse
	Score         int `json:"score"`
	ResonateCount int `json:"resonateCount"`
}

type searchResponse struct {
	Traces []traceResponse `json:"traces"`
	Total  int             `json:"total"`
	Page   int             `json:"page"`
	Limit  int             `json:"limit"`
}

type similarResponse struct {
	Similar          []rankedTraceResponse `json:"similar"`
	AlternativeCount int                   `json:"alternativeCount"`
	Problem          string                `json:"problem,omitempty"`
}

type alternativesResponse struct {
	Alternatives []rankedTraceResponse `json:"alternatives"`
}

type createTraceRequest struct {
	Problem    string   `json:"problem"    validate:"required,max=4000"`
	Steps      []string `json:"steps"      validate:"required,max=100,dive,max=4000"`
	Tags       []string `json:"tags"`
	LocaleHint string   `json:"localeHint"`
}

type resonateRequest struct {
	TraceID string `json:"traceId" validate:"required"`
}

type countResponse struct {
	Count int `json:"count"`
}

type translateRequest struct {
	TraceID string `json:"traceId" validate:"required"`
	Lang    string `json:"lang"    validate:"required"`
}

type translateResponse struct {
	Problem   string   `json:"problem,omitempty"`
	Steps     []string `json:"steps,omitempty"`
	Tags      []string `json:"tags,omitempty"`
	Status    string   `json:"status"`
	Cached    bool     `json:"cached"`
	Available bool     `json:"available"`
	Provider  string   `json:"provider"`
	Reason    string   `json:"reason,omitempty"`
}

type batchTranslateRequest struct {
	TraceIDs []string `json:"traceIds" validate:"required,min=1,max=50,dive,required"`
	Lang     string   `json:"lang"     validate:"required"`
}

type batchItemResponse struct {
	Problem   string   `json:"problem"`
	Steps     []string `json:"steps"`
	Tags      []string `json:"tags"`
	Available bool     `json:"available"`
	Cached    bool     `json:"cached"`
	Status    string   `json:"status"`
}

type batchTranslateResponse struct {
	Translations map[string]batchItemResponse `json:"translations"`
	APIAvailable bool                         `json:"apiAvailable"`
}

type recordEventRequest struct {
	Name       string         `json:"name"       validate:"required"`
	Properties map[string]any `json:"properties"`
	Path       string         `json:"path"`
	Referrer   string         `json:"referrer"`
	UserAgent  string         `json:"userAgent"`
}

type recordEventResponse struct {
	OK bool `json:"ok"`
}

func toTraceResponse(t *domain.Trace) traceResponse {
	resp := traceResponse{
		ID:        t.ID,
		Problem:   t.Problem,
		Steps:     nonNil(t.Steps),
		Tags:      nonNil(t.Tags),
		IsSeed:    t.IsSeed(),
		CreatedAt: t.CreatedAt,
	}
	if t.LocaleHint != nil {
		l := string(*t.LocaleHint)
		resp.LocaleHint = &l
	}
	return resp
}

func toTraceResponses(traces []domain.Trace) []traceResponse {
	out := make([]traceResponse, len(traces))
	for i := range traces {
		out[i] = toTraceResponse(&traces[i])
	}
	return out
}

func toRankedResponses(ranked []trace.RankedTrace) []rankedTraceResponse {
	out := make([]rankedTraceResponse, len(ranked))
	for i := range ranked {
		out[i] = rankedTraceResponse{
			traceResponse: toTraceResponse(&ranked[i].Trace),
			Score:         ranked[i].Score,
			ResonateCount: ranked[i].ResonateCount,
		}
	}
	return out
}

func toBatchItem(r *translation.Result) batchItemResponse {
	return batchItemResponse{
		Problem:   r.Content.Problem,
		Steps:     nonNil(r.Content.Steps),
		Tags:      nonNil(r.Content.Tags),
		Available: r.Available(),
		Cached:    r.Cached(),
		Status:    string(r.Status),
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
