package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/WeAreTheArtMakers/mindTrace/internal/domain"
)

// TraceOption customizes a seeded trace.
type TraceOption func(*domain.Trace)

// WithProblem sets the problem text.
func WithProblem(p string) TraceOption { return func(t *domain.Trace) { t.Problem = p } }

// WithTags sets the tags.
func WithTags(tags ...string) TraceOption { return func(t *domain.Trace) { t.Tags = tags } }

// WithLocale sets the origin-locale hint.
func WithLocale(l domain.Locale) TraceOption { return func(t *domain.Trace) { t.LocaleHint = &l } }

// WithSeedKey marks the trace as seed data.
func WithSeedKey(key string) TraceOption { return func(t *domain.Trace) { t.SeedKey = &key } }

// WithCreatedAt sets the creation timestamp.
func WithCreatedAt(ts time.Time) TraceOption { return func(t *domain.Trace) { t.CreatedAt = ts } }

// SeedTrace inserts a trace with sensible defaults and returns it.
func SeedTrace(t *testing.T, pool *pgxpool.Pool, opts ...TraceOption) domain.Trace {
	t.Helper()

	tr := domain.Trace{
		ID:        "test-" + uuid.New().String()[:8],
		Problem:   "How should I plan a difficult week?",
		Steps:     []string{"Wrote everything down.", "Picked the three most important items."},
		Tags:      []string{},
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}
	for _, opt := range opts {
		opt(&tr)
	}

	var locale *string
	if tr.LocaleHint != nil {
		s := string(*tr.LocaleHint)
		locale = &s
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO traces (id, problem, steps, tags, locale_hint, seed_key, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		tr.ID, tr.Problem, tr.Steps, tr.Tags, locale, tr.SeedKey, tr.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedTrace insert: %v", err)
	}
	return tr
}
