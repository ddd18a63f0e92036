package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/WeAreTheArtMakers/mindTrace/internal/adapter/postgres"
	analyticsrepo "github.com/WeAreTheArtMakers/mindTrace/internal/adapter/postgres/analytics"
	reactionrepo "github.com/WeAreTheArtMakers/mindTrace/internal/adapter/postgres/reaction"
	tracerepo "github.com/WeAreTheArtMakers/mindTrace/internal/adapter/postgres/trace"
	translationrepo "github.com/WeAreTheArtMakers/mindTrace/internal/adapter/postgres/translation"
	"github.com/WeAreTheArtMakers/mindTrace/internal/app"
	"github.com/WeAreTheArtMakers/mindTrace/internal/config"
	"github.com/WeAreTheArtMakers/mindTrace/internal/domain"
	"github.com/WeAreTheArtMakers/mindTrace/internal/service/analytics"
	"github.com/WeAreTheArtMakers/mindTrace/internal/service/seed"
)

// migrationRow is one line of migrate output.
type migrationRow struct {
	Version  int64  `json:"version"`
	Path     string `json:"path"`
	State    string `json:"state,omitempty"`
	Applied  string `json:"appliedAt,omitempty"`
	Duration string `json:"duration,omitempty"`
}

// stats is the output of the stats command.
type stats struct {
	Traces       int `json:"traces"`
	Reactions    int `json:"reactions"`
	Translations int `json:"translations"`
}

// backend is what the commands need from the database. Tests swap in fakes.
type backend interface {
	MigrateUp(ctx context.Context) ([]migrationRow, error)
	MigrateStatus(ctx context.Context) ([]migrationRow, error)
	Seed(ctx context.Context, entries []seed.Entry, opts seed.Options) (*seed.Result, error)
	Stats(ctx context.Context) (*stats, error)
	Report(ctx context.Context) (*domain.AnalyticsReport, error)
	Close()
}

// opener connects a backend using the config file at configPath.
type opener func(ctx context.Context, configPath string) (backend, error)

type pgBackend struct {
	pool         *pgxpool.Pool
	log          *slog.Logger
	traces       *tracerepo.Repo
	reactions    *reactionrepo.Repo
	translations *translationrepo.Repo
	seeder       *seed.Service
	analytics    *analytics.Service
}

func openBackend(ctx context.Context, configPath string) (backend, error) {
	cfg, err := config.LoadFrom(configPath)
	if err != nil {
		return nil, err
	}
	logger := app.NewLogger(cfg.Log)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	traces := tracerepo.New(pool)
	return &pgBackend{
		pool:         pool,
		log:          logger,
		traces:       traces,
		reactions:    reactionrepo.New(pool),
		translations: translationrepo.New(pool),
		seeder:       seed.NewService(logger, traces, postgres.NewTxManager(pool)),
		analytics:    analytics.NewService(logger, analyticsrepo.New(pool), cfg.Analytics),
	}, nil
}

func (b *pgBackend) Close() { b.pool.Close() }

func (b *pgBackend) MigrateUp(ctx context.Context) ([]migrationRow, error) {
	results, err := postgres.Migrate(ctx, b.pool)
	if err != nil {
		return nil, err
	}
	rows := make([]migrationRow, 0, len(results))
	for _, r := range results {
		rows = append(rows, migrationRow{
			Version:  r.Source.Version,
			Path:     r.Source.Path,
			Duration: r.Duration.String(),
		})
	}
	return rows, nil
}

func (b *pgBackend) MigrateStatus(ctx context.Context) ([]migrationRow, error) {
	statuses, err := postgres.MigrationStatus(ctx, b.pool)
	if err != nil {
		return nil, err
	}
	rows := make([]migrationRow, 0, len(statuses))
	for _, s := range statuses {
		row := migrationRow{
			Version: s.Source.Version,
			Path:    s.Source.Path,
			State:   string(s.State),
		}
		if !s.AppliedAt.IsZero() {
			row.Applied = s.AppliedAt.UTC().Format("2006-01-02T15:04:05Z")
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (b *pgBackend) Seed(ctx context.Context, entries []seed.Entry, opts seed.Options) (*seed.Result, error) {
	if err := postgres.EnsureSchema(ctx, b.pool, b.log); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return b.seeder.Run(ctx, entries, opts)
}

func (b *pgBackend) Stats(ctx context.Context) (*stats, error) {
	var (
		s   stats
		err error
	)
	if s.Traces, err = b.traces.Count(ctx); err != nil {
		return nil, fmt.Errorf("count traces: %w", err)
	}
	if s.Reactions, err = b.reactions.Total(ctx); err != nil {
		return nil, fmt.Errorf("count reactions: %w", err)
	}
	if s.Translations, err = b.translations.Count(ctx); err != nil {
		return nil, fmt.Errorf("count translations: %w", err)
	}
	return &s, nil
}

func (b *pgBackend) Report(ctx context.Context) (*domain.AnalyticsReport, error) {
	return b.analytics.BuildReport(ctx)
}
