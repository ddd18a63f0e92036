// Package translation implements the translation cache repository using PostgreSQL.
// There is at most one row per (trace_id, locale); writes replace the previous row.
package translation

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/WeAreTheArtMakers/mindTrace/internal/adapter/postgres"
	"github.com/WeAreTheArtMakers/mindTrace/internal/domain"
)

const columns = "trace_id, locale, problem, steps, tags, provider, created_at"

// Repo provides cached translation persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new translation repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Get returns the cached translation for (traceID, locale).
// Returns domain.ErrNotFound on a cache miss.
func (r *Repo) Get(ctx context.Context, traceID string, locale domain.Locale) (*domain.TraceTranslation, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx,
		"SELECT "+columns+" FROM trace_translations WHERE trace_id = $1 AND locale = $2",
		traceID, string(locale),
	)
	tr, err := scanTranslation(row)
	if err != nil {
		return nil, postgres.MapError(err, "translation", traceID+"/"+string(locale))
	}
	return tr, nil
}

// GetMany returns the cached translations for traceIDs in one locale, keyed by trace id.
// Missing entries are simply absent from the map.
func (r *Repo) GetMany(ctx context.Context, traceIDs []string, locale domain.Locale) (map[string]domain.TraceTranslation, error) {
	out := make(map[string]domain.TraceTranslation, len(traceIDs))
	if len(traceIDs) == 0 {
		return out, nil
	}
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx,
		"SELECT "+columns+" FROM trace_translations WHERE trace_id = ANY($1) AND locale = $2",
		traceIDs, string(locale),
	)
	if err != nil {
		return nil, fmt.Errorf("query translations: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		tr, err := scanTranslation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan translation: %w", err)
		}
		out[tr.TraceID] = *tr
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate translations: %w", err)
	}
	return out, nil
}

// Upsert stores a translation, replacing any previous row for the same key.
// Concurrent writers race; the last write wins.
func (r *Repo) Upsert(ctx context.Context, tr *domain.TraceTranslation) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := q.Exec(ctx, `
		INSERT INTO trace_translations (trace_id, locale, problem, steps, tags, provider, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (trace_id, locale) DO UPDATE SET
			problem    = EXCLUDED.problem,
			steps      = EXCLUDED.steps,
			tags       = EXCLUDED.tags,
			provider   = EXCLUDED.provider,
			created_at = EXCLUDED.created_at`,
		tr.TraceID, string(tr.Locale), tr.Content.Problem, tr.Content.Steps, nonNil(tr.Content.Tags), tr.Provider, tr.CreatedAt,
	)
	if err != nil {
		return postgres.MapError(err, "translation", tr.TraceID+"/"+string(tr.Locale))
	}
	return nil
}

// Count returns the number of cached translations.
func (r *Repo) Count(ctx context.Context) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var n int
	if err := q.QueryRow(ctx, "SELECT count(*) FROM trace_translations").Scan(&n); err != nil {
		return 0, fmt.Errorf("count translations: %w", err)
	}
	return n, nil
}

func scanTranslation(row pgx.Row) (*domain.TraceTranslation, error) {
	var (
		tr     domain.TraceTranslation
		locale string
	)
	if err := row.Scan(&tr.TraceID, &locale, &tr.Content.Problem, &tr.Content.Steps, &tr.Content.Tags, &tr.Provider, &tr.CreatedAt); err != nil {
		return nil, err
	}
	tr.Locale = domain.Locale(locale)
	tr.Content.Tags = nonNil(tr.Content.Tags)
	tr.CreatedAt = tr.CreatedAt.UTC()
	return &tr, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
