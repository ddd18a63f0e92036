// Package reaction implements the resonate counter using PostgreSQL.
// Records are append-only; a count is the number of rows for a trace id.
package reaction

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/WeAreTheArtMakers/mindTrace/internal/adapter/postgres"
)

// Repo provides reaction persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new reaction repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Add appends one reaction for traceID and returns the new count.
// The insert and the count run in one statement; the CTE's row is not visible
// to the outer count, hence the +1.
func (r *Repo) Add(ctx context.Context, traceID string) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	err := q.QueryRow(ctx, `
		WITH ins AS (
			INSERT INTO resonates (trace_id) VALUES ($1) RETURNING 1
		)
		SELECT (SELECT count(*) FROM resonates WHERE trace_id = $1) + (SELECT count(*) FROM ins)`,
		traceID,
	).Scan(&count)
	if err != nil {
		return 0, postgres.MapError(err, "resonate", traceID)
	}
	return count, nil
}

// Count returns the number of reactions recorded for traceID.
func (r *Repo) Count(ctx context.Context, traceID string) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	if err := q.QueryRow(ctx, "SELECT count(*) FROM resonates WHERE trace_id = $1", traceID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count resonates %s: %w", traceID, err)
	}
	return count, nil
}

// CountMany returns reaction counts for traceIDs. Ids without reactions are absent.
func (r *Repo) CountMany(ctx context.Context, traceIDs []string) (map[string]int, error) {
	out := make(map[string]int, len(traceIDs))
	if len(traceIDs) == 0 {
		return out, nil
	}
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx,
		"SELECT trace_id, count(*) FROM resonates WHERE trace_id = ANY($1) GROUP BY trace_id", traceIDs)
	if err != nil {
		return nil, fmt.Errorf("query resonate counts: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id    string
			count int
		)
		if err := rows.Scan(&id, &count); err != nil {
			return nil, fmt.Errorf("scan resonate count: %w", err)
		}
		out[id] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate resonate counts: %w", err)
	}
	return out, nil
}

// Total returns the number of reactions across all traces.
func (r *Repo) Total(ctx context.Context) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var n int
	if err := q.QueryRow(ctx, "SELECT count(*) FROM resonates").Scan(&n); err != nil {
		return 0, fmt.Errorf("count resonates: %w", err)
	}
	return n, nil
}
