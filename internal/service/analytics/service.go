// Package analytics records client events and builds the aggregate report.
package analytics

import (
	"context"
	"crypto/subtle"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/WeAreTheArtMakers/mindTrace/internal/config"
	"github.com/WeAreTheArtMakers/mindTrace/internal/domain"
)

const (
	maxPathLength      = 512
	maxReferrerLength  = 1024
	maxUserAgentLength = 512
)

type eventRepo interface {
	Insert(ctx context.Context, e *domain.Event) error
	Report(ctx context.Context, opts domain.ReportOptions) (*domain.AnalyticsReport, error)
}

// Service provides event collection and the credential-gated report.
type Service struct {
	events eventRepo
	cfg    config.AnalyticsConfig
	now    func() time.Time
	log    *slog.Logger
}

// NewService creates a new analytics service.
func NewService(log *slog.Logger, events eventRepo, cfg config.AnalyticsConfig) *Service {
	return &Service{
		events: events,
		cfg:    cfg,
		now:    time.Now,
		log:    log.With("service", "analytics"),
	}
}

// RecordInput is one client event.
type RecordInput struct {
	Name       string
	Properties map[string]any
	Path       string
	Referrer   string
	UserAgent  string
}

// Validate checks the event name against the known set.
func (i RecordInput) Validate() error {
	if i.Name == "" {
		return domain.NewValidationError("name", "required")
	}
	if !domain.EventName(i.Name).IsValid() {
		return domain.NewValidationError("name", "unknown event")
	}
	return nil
}

// RecordEvent appends an event. Only an unknown event name is an error; a
// storage failure is logged and reported as stored=false, since losing an
// event is acceptable.
func (s *Service) RecordEvent(ctx context.Context, input RecordInput) (stored bool, err error) {
	if err := input.Validate(); err != nil {
		return false, err
	}

	e := &domain.Event{
		Name:       domain.EventName(input.Name),
		Properties: domain.ScalarProperties(input.Properties),
		Path:       clip(input.Path, maxPathLength),
		Referrer:   clip(input.Referrer, maxReferrerLength),
		UserAgent:  clip(input.UserAgent, maxUserAgentLength),
		CreatedAt:  s.now().UTC(),
	}

	if err := s.events.Insert(ctx, e); err != nil {
		s.log.WarnContext(ctx, "analytics event dropped",
			slog.String("event", e.Name.String()),
			slog.String("error", err.Error()),
		)
		return false, nil
	}
	return true, nil
}

// Report returns the aggregate report when secret matches the configured
// one. An unset secret locks the report for everyone.
func (s *Service) Report(ctx context.Context, secret string) (*domain.AnalyticsReport, error) {
	if s.cfg.Secret == "" || secret == "" ||
		subtle.ConstantTimeCompare([]byte(secret), []byte(s.cfg.Secret)) != 1 {
		s.log.WarnContext(ctx, "analytics report denied")
		return nil, domain.ErrUnauthorized
	}
	return s.BuildReport(ctx)
}

// BuildReport aggregates the event log without a credential check. It backs
// the operator CLI, which already has database access.
func (s *Service) BuildReport(ctx context.Context) (*domain.AnalyticsReport, error) {
	report, err := s.events.Report(ctx, domain.ReportOptions{
		Now:           s.now(),
		TopPagesLimit: s.cfg.TopPagesLimit,
		RecentLimit:   s.cfg.RecentLimit,
		TrendDays:     s.cfg.TrendDays,
	})
	if err != nil {
		return nil, fmt.Errorf("build analytics report: %w", err)
	}
	return report, nil
}

// clip trims s and cuts it to at most n bytes without splitting a rune.
func clip(s string, n int) string {
	s = strings.TrimSpace(s)
	if len(s) <= n {
		return s
	}
	return strings.ToValidUTF8(s[:n], "")
}
