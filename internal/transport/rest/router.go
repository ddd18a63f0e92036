package rest

import (
	"net/http"

	"github.com/WeAreTheArtMakers/mindTrace/internal/transport/middleware"
)

// Handlers groups the endpoint handlers mounted by NewRouter.
type Handlers struct {
	Trace       *TraceHandler
	Reaction    *ReactionHandler
	Translation *TranslationHandler
	Analytics   *AnalyticsHandler
	Health      *HealthHandler
}

// RouterOptions holds the optional parts of the route table.
type RouterOptions struct {
	// WriteLimit wraps every state-changing or provider-calling route. Nil disables it.
	WriteLimit middleware.Middleware
	// Metrics is served at MetricsPath when non-nil.
	Metrics     http.Handler
	MetricsPath string
}

// NewRouter registers every API route.
func NewRouter(h Handlers, opts RouterOptions) *http.ServeMux {
	limited := func(fn http.HandlerFunc) http.Handler {
		if opts.WriteLimit == nil {
			return fn
		}
		return opts.WriteLimit(fn)
	}

	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/traces", h.Trace.List)
	mux.Handle("POST /api/traces", limited(h.Trace.Create))
	mux.HandleFunc("GET /api/traces/{id}", h.Trace.Get)
	mux.HandleFunc("GET /api/traces/{id}/similar", h.Trace.Similar)
	mux.HandleFunc("GET /api/traces/{id}/alternatives", h.Trace.Alternatives)
	mux.HandleFunc("GET /api/alternatives", h.Trace.AlternativesForProblem)
	mux.HandleFunc("GET /api/tags", h.Trace.Tags)
	mux.HandleFunc("GET /api/featured", h.Trace.Featured)

	mux.HandleFunc("GET /api/resonate", h.Reaction.Count)
	mux.Handle("POST /api/resonate", limited(h.Reaction.Resonate))

	mux.Handle("POST /api/translate", limited(h.Translation.Translate))
	mux.Handle("POST /api/translate/batch", limited(h.Translation.TranslateBatch))

	mux.Handle("POST /api/analytics", limited(h.Analytics.Record))
	mux.HandleFunc("GET /api/analytics", h.Analytics.Report)

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	if opts.Metrics != nil {
		path := opts.MetricsPath
		if path == "" {
			path = "/metrics"
		}
		mux.Handle("GET "+path, opts.Metrics)
	}

	return mux
}
