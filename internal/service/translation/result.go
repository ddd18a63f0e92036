package translation

import "github.com/WeAreTheArtMakers/mindTrace/internal/domain"

// Status describes how a translation was obtained.
type Status string

const (
	// StatusNotNeeded means the requested locale is the trace's own locale.
	StatusNotNeeded Status = "not_needed"
	// StatusCached means a stored translation was returned.
	StatusCached Status = "cached"
	// StatusTranslated means a provider translated the content just now.
	StatusTranslated Status = "translated"
	// StatusUnavailable means every provider failed or none is configured.
	StatusUnavailable Status = "unavailable"
)

// Result is the outcome of resolving one trace in one locale.
type Result struct {
	TraceID  string
	Locale   domain.Locale
	Content  domain.TraceContent
	Status   Status
	Provider string
}

// Available reports whether Content holds text in the requested locale
// (or the original text when no translation was needed).
func (r *Result) Available() bool { return r.Status != StatusUnavailable }

// Cached reports whether the content came from the translation cache.
func (r *Result) Cached() bool { return r.Status == StatusCached }

// BatchResult holds the resolved traces of a batch, keyed by trace id.
// Traces that could not be translated are absent.
type BatchResult struct {
	Translations map[string]*Result
	// APIAvailable is false when some trace needed a provider and none succeeded.
	APIAvailable bool
}
