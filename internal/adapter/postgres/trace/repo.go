// Package trace implements the trace repository using PostgreSQL.
// Traces are insert-only; search ordering and filtering are built with squirrel.
package trace

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/WeAreTheArtMakers/mindTrace/internal/adapter/postgres"
	"github.com/WeAreTheArtMakers/mindTrace/internal/domain"
)

const (
	table   = "traces"
	columns = "id, problem, steps, tags, locale_hint, seed_key, created_at"
)

// Repo provides trace persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new trace repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a trace and returns the stored row.
// Returns domain.ErrAlreadyExists on an id collision.
func (r *Repo) Create(ctx context.Context, t *domain.Trace) (*domain.Trace, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := postgres.Builder().
		Insert(table).
		Columns("id", "problem", "steps", "tags", "locale_hint", "seed_key", "created_at").
		Values(t.ID, t.Problem, t.Steps, nonNilTags(t.Tags), localeArg(t.LocaleHint), t.SeedKey, t.CreatedAt).
		Suffix("RETURNING " + columns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert trace: %w", err)
	}

	created, err := scanTrace(q.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "trace", t.ID)
	}
	return created, nil
}

// InsertSeed inserts a seed trace unless a trace with the same id or seed key exists.
// Reports whether a row was inserted.
func (r *Repo) InsertSeed(ctx context.Context, t *domain.Trace) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := postgres.Builder().
		Insert(table).
		Columns("id", "problem", "steps", "tags", "locale_hint", "seed_key", "created_at").
		Values(t.ID, t.Problem, t.Steps, nonNilTags(t.Tags), localeArg(t.LocaleHint), t.SeedKey, t.CreatedAt).
		Suffix("ON CONFLICT DO NOTHING").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build insert seed: %w", err)
	}

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return false, postgres.MapError(err, "trace", t.ID)
	}
	return tag.RowsAffected() == 1, nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a trace by id. Returns domain.ErrNotFound if absent.
func (r *Repo) GetByID(ctx context.Context, id string) (*domain.Trace, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	t, err := scanTrace(q.QueryRow(ctx, "SELECT "+columns+" FROM traces WHERE id = $1", id))
	if err != nil {
		return nil, postgres.MapError(err, "trace", id)
	}
	return t, nil
}

// GetByIDs returns the traces that exist among ids, newest first.
func (r *Repo) GetByIDs(ctx context.Context, ids []string) ([]domain.Trace, error) {
	if len(ids) == 0 {
		return []domain.Trace{}, nil
	}
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx,
		"SELECT "+columns+" FROM traces WHERE id = ANY($1) ORDER BY created_at DESC, id DESC", ids)
	if err != nil {
		return nil, fmt.Errorf("query traces by ids: %w", err)
	}
	return collectTraces(rows)
}

// ListAll returns every trace, newest first. Matching scans this list.
func (r *Repo) ListAll(ctx context.Context) ([]domain.Trace, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, "SELECT "+columns+" FROM traces ORDER BY created_at DESC, id DESC")
	if err != nil {
		return nil, fmt.Errorf("query all traces: %w", err)
	}
	return collectTraces(rows)
}

// Search returns a page of traces matching the filter and the total match count.
//
// Ordering: user submissions before seed entries, then traces authored in the
// preferred locale (when set), then newest first. The id tie-break keeps
// pagination stable for traces sharing a timestamp.
func (r *Repo) Search(ctx context.Context, f domain.TraceFilter) (*domain.TracePage, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)
	where := buildWhere(f)

	countSQL, countArgs, err := postgres.Builder().
		Select("count(*)").
		From(table).
		Where(where).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build count traces: %w", err)
	}

	var total int
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count traces: %w", err)
	}

	page := &domain.TracePage{Traces: []domain.Trace{}, Total: total}
	if total == 0 || f.Offset >= total {
		return page, nil
	}

	sel := postgres.Builder().
		Select(columns).
		From(table).
		Where(where).
		OrderBy("(seed_key IS NOT NULL) ASC")
	if f.PreferredLocale != "" {
		sel = sel.OrderByClause("(COALESCE(locale_hint, ?) = ?) DESC", string(domain.DefaultLocale), string(f.PreferredLocale))
	}
	sel = sel.OrderBy("created_at DESC", "id DESC")
	if f.Limit > 0 {
		sel = sel.Limit(uint64(f.Limit))
	}
	if f.Offset > 0 {
		sel = sel.Offset(uint64(f.Offset))
	}

	query, args, err := sel.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build search traces: %w", err)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("search traces: %w", err)
	}
	traces, err := collectTraces(rows)
	if err != nil {
		return nil, err
	}
	page.Traces = traces
	return page, nil
}

// ListTags returns every distinct tag in use, sorted. Tags differing only in
// case are listed once.
func (r *Repo) ListTags(ctx context.Context) ([]string, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, `SELECT tag FROM (
			SELECT DISTINCT ON (lower(tag)) tag FROM traces, unnest(tags) AS tag ORDER BY lower(tag), tag COLLATE "C"
		) AS distinct_tags ORDER BY lower(tag)`)
	if err != nil {
		return nil, fmt.Errorf("query tags: %w", err)
	}
	tags, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("collect tags: %w", err)
	}
	if tags == nil {
		tags = []string{}
	}
	return tags, nil
}

// LatestID returns the id of the newest trace. Returns domain.ErrNotFound when empty.
func (r *Repo) LatestID(ctx context.Context) (string, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var id string
	err := q.QueryRow(ctx, "SELECT id FROM traces ORDER BY created_at DESC, id DESC LIMIT 1").Scan(&id)
	if err != nil {
		return "", postgres.MapError(err, "trace", "latest")
	}
	return id, nil
}

// Count returns the number of stored traces.
func (r *Repo) Count(ctx context.Context) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var n int
	if err := q.QueryRow(ctx, "SELECT count(*) FROM traces").Scan(&n); err != nil {
		return 0, fmt.Errorf("count traces: %w", err)
	}
	return n, nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func buildWhere(f domain.TraceFilter) sq.And {
	where := sq.And{}
	if query := strings.TrimSpace(f.Query); query != "" {
		where = append(where, sq.ILike{"problem": "%" + escapeLike(query) + "%"})
	}
	if f.Tag != "" {
		where = append(where, sq.Expr("EXISTS (SELECT 1 FROM unnest(tags) AS t WHERE lower(t) = lower(?))", f.Tag))
	}
	if len(f.ExcludeIDs) > 0 {
		where = append(where, sq.NotEq{"id": f.ExcludeIDs})
	}
	return where
}

// escapeLike escapes LIKE wildcards so the query matches literally.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func nonNilTags(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}

func localeArg(l *domain.Locale) *string {
	if l == nil || *l == "" {
		return nil
	}
	s := string(*l)
	return &s
}

func scanTrace(row pgx.Row) (*domain.Trace, error) {
	var (
		t          domain.Trace
		localeHint *string
	)
	if err := row.Scan(&t.ID, &t.Problem, &t.Steps, &t.Tags, &localeHint, &t.SeedKey, &t.CreatedAt); err != nil {
		return nil, err
	}
	if localeHint != nil {
		l := domain.Locale(*localeHint)
		t.LocaleHint = &l
	}
	if t.Tags == nil {
		t.Tags = []string{}
	}
	t.CreatedAt = t.CreatedAt.UTC()
	return &t, nil
}

func collectTraces(rows pgx.Rows) ([]domain.Trace, error) {
	defer rows.Close()

	traces := []domain.Trace{}
	for rows.Next() {
		t, err := scanTrace(rows)
		if err != nil {
			return nil, fmt.Errorf("scan trace: %w", err)
		}
		traces = append(traces, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate traces: %w", err)
	}
	return traces, nil
}
