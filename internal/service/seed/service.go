// Package seed loads demo traces from a YAML file into an empty store.
package seed

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/WeAreTheArtMakers/mindTrace/internal/domain"
)

// IDPrefix is prepended to a seed key to form the trace id.
const IDPrefix = "seed-"

// Stagger is the creation-time gap between consecutive seed entries.
const Stagger = time.Hour

type seedRepo interface {
	Count(ctx context.Context) (int, error)
	InsertSeed(ctx context.Context, t *domain.Trace) (bool, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Options controls a seeding run.
type Options struct {
	// Force inserts even when the store already holds traces.
	Force bool
}

// Result summarizes a seeding run.
type Result struct {
	Total    int `json:"total"`
	Inserted int `json:"inserted"`
	// Skipped counts entries whose id already existed.
	Skipped int `json:"skipped"`
	// Existing is the trace count found before the run.
	Existing int `json:"existing"`
	// NotEmpty is set when the run was skipped because the store held data.
	NotEmpty bool `json:"notEmpty"`
}

// Service inserts seed traces.
type Service struct {
	log   *slog.Logger
	repo  seedRepo
	tx    txManager
	clock func() time.Time
}

// NewService creates a new seed service.
func NewService(log *slog.Logger, repo seedRepo, tx txManager) *Service {
	return &Service{
		log:   log.With("service", "seed"),
		repo:  repo,
		tx:    tx,
		clock: time.Now,
	}
}

// Run inserts entries in one transaction. The first entry is the newest; each
// following entry is created Stagger earlier. Re-running is safe: existing
// ids are skipped.
func (s *Service) Run(ctx context.Context, entries []Entry, opts Options) (*Result, error) {
	res := &Result{Total: len(entries)}

	existing, err := s.repo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count traces: %w", err)
	}
	res.Existing = existing

	if existing > 0 && !opts.Force {
		res.NotEmpty = true
		s.log.InfoContext(ctx, "store already has traces, skipping seed", slog.Int("count", existing))
		return res, nil
	}

	now := s.clock().UTC().Truncate(time.Second)

	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		for i, e := range entries {
			t := toTrace(e, now.Add(-time.Duration(i)*Stagger))
			inserted, err := s.repo.InsertSeed(ctx, t)
			if err != nil {
				return fmt.Errorf("insert seed %s: %w", e.Key, err)
			}
			if inserted {
				res.Inserted++
			} else {
				res.Skipped++
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "seed complete",
		slog.Int("total", res.Total),
		slog.Int("inserted", res.Inserted),
		slog.Int("skipped", res.Skipped),
	)
	return res, nil
}

func toTrace(e Entry, createdAt time.Time) *domain.Trace {
	key := e.Key
	t := &domain.Trace{
		ID:        IDPrefix + key,
		Problem:   strings.TrimSpace(e.Problem),
		Steps:     domain.CleanSteps(e.Steps),
		Tags:      domain.NormalizeTags(e.Tags),
		SeedKey:   &key,
		CreatedAt: createdAt,
	}
	if l := domain.ParseLocale(e.Locale); l != "" {
		t.LocaleHint = &l
	}
	return t
}
