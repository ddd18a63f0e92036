// Package analytics implements the analytics event log using PostgreSQL.
// Events are append-only; the report is aggregated from the raw log on every call.
package analytics

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/WeAreTheArtMakers/mindTrace/internal/adapter/postgres"
	"github.com/WeAreTheArtMakers/mindTrace/internal/domain"
)

const table = "analytics_events"

// Repo provides analytics persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new analytics repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Insert appends an event. The properties map is stored as JSONB.
func (r *Repo) Insert(ctx context.Context, e *domain.Event) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	props := e.Properties
	if props == nil {
		props = map[string]any{}
	}
	raw, err := json.Marshal(props)
	if err != nil {
		return fmt.Errorf("marshal event properties: %w", err)
	}

	query, args, err := postgres.Builder().
		Insert(table).
		Columns("name", "properties", "path", "referrer", "user_agent", "created_at").
		Values(string(e.Name), string(raw), e.Path, e.Referrer, e.UserAgent, e.CreatedAt).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert event: %w", err)
	}

	if err := q.QueryRow(ctx, query, args...).Scan(&e.ID); err != nil {
		return fmt.Errorf("insert event %s: %w", e.Name, err)
	}
	return nil
}

// Report aggregates the event log. All queries are sent in one batch.
func (r *Repo) Report(ctx context.Context, opts domain.ReportOptions) (*domain.AnalyticsReport, error) {
	now := opts.Now.UTC()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	trendStart := todayStart.AddDate(0, 0, -(opts.TrendDays - 1))

	b := postgres.Builder()
	stmts := []sq.Sqlizer{
		b.Select("count(*)").From(table),
		b.Select("count(*)").From(table).Where(sq.GtOrEq{"created_at": todayStart}),
		b.Select("name", "count(*) AS c").From(table).
			GroupBy("name").OrderBy("c DESC", "name"),
		b.Select("path", "count(*) AS c").From(table).
			Where(sq.Eq{"name": string(domain.EventPageView)}).
			GroupBy("path").OrderBy("c DESC", "path").
			Limit(uint64(opts.TopPagesLimit)),
		b.Select("to_char(created_at AT TIME ZONE 'UTC', 'YYYY-MM-DD') AS day", "count(*)").From(table).
			Where(sq.GtOrEq{"created_at": trendStart}).
			GroupBy("day").OrderBy("day"),
		b.Select("name", "path", "created_at").From(table).
			OrderBy("created_at DESC", "id DESC").
			Limit(uint64(opts.RecentLimit)),
		breakdown(b, domain.PropDevice),
		breakdown(b, domain.PropBrowser),
		breakdown(b, domain.PropLanguage),
		b.Select("path", "avg((properties->>'duration')::float8) AS avg_seconds", "count(*)").From(table).
			Where(sq.Eq{"name": string(domain.EventPageLeave)}).
			Where("jsonb_typeof(properties->'duration') = 'number'").
			GroupBy("path").OrderBy("avg_seconds DESC", "path"),
	}

	batch := &pgx.Batch{}
	for _, stmt := range stmts {
		query, args, err := stmt.ToSql()
		if err != nil {
			return nil, fmt.Errorf("build report query: %w", err)
		}
		batch.Queue(query, args...)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	results := q.SendBatch(ctx, batch)
	defer results.Close()

	report := &domain.AnalyticsReport{GeneratedAt: now}

	if err := results.QueryRow().Scan(&report.Total); err != nil {
		return nil, fmt.Errorf("report total: %w", err)
	}
	if err := results.QueryRow().Scan(&report.Today); err != nil {
		return nil, fmt.Errorf("report today: %w", err)
	}

	var err error
	if report.EventCounts, err = collectNamed(results); err != nil {
		return nil, fmt.Errorf("report event counts: %w", err)
	}
	if report.TopPages, err = collectPaths(results); err != nil {
		return nil, fmt.Errorf("report top pages: %w", err)
	}
	if report.WeeklyTrend, err = collectDaily(results); err != nil {
		return nil, fmt.Errorf("report trend: %w", err)
	}
	if report.RecentEvents, err = collectRecent(results); err != nil {
		return nil, fmt.Errorf("report recent: %w", err)
	}
	if report.Devices, err = collectNamed(results); err != nil {
		return nil, fmt.Errorf("report devices: %w", err)
	}
	if report.Browsers, err = collectNamed(results); err != nil {
		return nil, fmt.Errorf("report browsers: %w", err)
	}
	if report.Languages, err = collectNamed(results); err != nil {
		return nil, fmt.Errorf("report languages: %w", err)
	}
	if report.AvgDurations, err = collectDurations(results); err != nil {
		return nil, fmt.Errorf("report durations: %w", err)
	}

	return report, nil
}

// breakdown counts page views by one property value. Page views carry the
// client's device info, so each visit is counted once.
func breakdown(b sq.StatementBuilderType, key string) sq.SelectBuilder {
	return b.Select().
		Column(sq.Expr("properties->>? AS value", key)).
		Column("count(*) AS c").
		From(table).
		Where(sq.Eq{"name": string(domain.EventPageView)}).
		Where(sq.Expr("properties->>? IS NOT NULL", key)).
		GroupBy("value").
		OrderBy("c DESC", "value")
}

func collectNamed(results pgx.BatchResults) ([]domain.NamedCount, error) {
	rows, err := results.Query()
	if err != nil {
		return nil, err
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.NamedCount, error) {
		var nc domain.NamedCount
		err := row.Scan(&nc.Name, &nc.Count)
		return nc, err
	})
	if out == nil {
		out = []domain.NamedCount{}
	}
	return out, err
}

func collectPaths(results pgx.BatchResults) ([]domain.PathCount, error) {
	rows, err := results.Query()
	if err != nil {
		return nil, err
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.PathCount, error) {
		var pc domain.PathCount
		err := row.Scan(&pc.Path, &pc.Count)
		return pc, err
	})
	if out == nil {
		out = []domain.PathCount{}
	}
	return out, err
}

func collectDaily(results pgx.BatchResults) ([]domain.DailyCount, error) {
	rows, err := results.Query()
	if err != nil {
		return nil, err
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.DailyCount, error) {
		var dc domain.DailyCount
		err := row.Scan(&dc.Date, &dc.Count)
		return dc, err
	})
	if out == nil {
		out = []domain.DailyCount{}
	}
	return out, err
}

func collectRecent(results pgx.BatchResults) ([]domain.RecentEvent, error) {
	rows, err := results.Query()
	if err != nil {
		return nil, err
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.RecentEvent, error) {
		var (
			re   domain.RecentEvent
			name string
		)
		err := row.Scan(&name, &re.Path, &re.CreatedAt)
		re.Name = domain.EventName(name)
		re.CreatedAt = re.CreatedAt.UTC()
		return re, err
	})
	if out == nil {
		out = []domain.RecentEvent{}
	}
	return out, err
}

func collectDurations(results pgx.BatchResults) ([]domain.PageDuration, error) {
	rows, err := results.Query()
	if err != nil {
		return nil, err
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.PageDuration, error) {
		var pd domain.PageDuration
		err := row.Scan(&pd.Path, &pd.AvgSeconds, &pd.Samples)
		return pd, err
	})
	if out == nil {
		out = []domain.PageDuration{}
	}
	return out, err
}
