package domain

import (
	"slices"
	"time"
)

// Limits applied to submitted traces.
const (
	MinProblemLength = 10
	MaxProblemLength = 1000
	MinSteps         = 2
	MaxSteps         = 20
	MaxStepLength    = 1000
	MaxTags          = 10
	MaxTagLength     = 40
)

// Trace is a recorded line of thinking: a problem and the ordered steps taken on it.
// Traces are immutable once created.
type Trace struct {
	ID      string
	Problem string
	Steps   []string
	Tags    []string

	// LocaleHint is the language the content was written in. Nil means DefaultLocale.
	LocaleHint *Locale

	// SeedKey is set for entries loaded by the seeder. User submissions have nil.
	SeedKey *string

	CreatedAt time.Time
}

// OriginLocale returns the locale the content was authored in.
func (t *Trace) OriginLocale() Locale {
	if t.LocaleHint == nil || *t.LocaleHint == "" {
		return DefaultLocale
	}
	return *t.LocaleHint
}

// IsSeed reports whether the trace came from seed data.
func (t *Trace) IsSeed() bool {
	return t.SeedKey != nil
}

// Content returns the translatable part of the trace.
func (t *Trace) Content() TraceContent {
	return TraceContent{
		Problem: t.Problem,
		Steps:   slices.Clone(t.Steps),
		Tags:    slices.Clone(t.Tags),
	}
}

// TraceContent is the translatable payload of a trace.
type TraceContent struct {
	Problem string   `json:"problem"`
	Steps   []string `json:"steps"`
	Tags    []string `json:"tags"`
}

// MatchesShape reports whether c has the same number of steps and tags as src.
// A translation that changes cardinality is rejected.
func (c TraceContent) MatchesShape(src TraceContent) bool {
	return c.Problem != "" && len(c.Steps) == len(src.Steps) && len(c.Tags) == len(src.Tags)
}

// TraceTranslation is a cached translation of a trace into one locale.
// At most one exists per (TraceID, Locale).
type TraceTranslation struct {
	TraceID   string
	Locale    Locale
	Content   TraceContent
	Provider  string
	CreatedAt time.Time
}

// TraceFilter holds search parameters for listing traces.
type TraceFilter struct {
	// Query is a case-insensitive substring match on the problem text.
	Query string
	// Tag is an exact tag match.
	Tag string
	// PreferredLocale moves traces authored in that locale ahead of others. Empty disables it.
	PreferredLocale Locale
	// ExcludeIDs removes specific traces from the result.
	ExcludeIDs []string

	Limit  int
	Offset int
}

// TracePage is one page of a search result.
type TracePage struct {
	Traces []Trace
	Total  int
}
