package trace

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/WeAreTheArtMakers/mindTrace/internal/domain"
)

// CreateTrace validates and stores a new trace. Traces are immutable once created.
func (s *Service) CreateTrace(ctx context.Context, input CreateTraceInput) (*domain.Trace, error) {
	input = input.normalized()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	id, err := s.newID(now)
	if err != nil {
		return nil, fmt.Errorf("generate trace id: %w", err)
	}

	t := &domain.Trace{
		ID:        id,
		Problem:   input.Problem,
		Steps:     input.Steps,
		Tags:      input.Tags,
		CreatedAt: now,
	}
	if input.LocaleHint != "" {
		l := domain.Locale(input.LocaleHint)
		t.LocaleHint = &l
	}

	created, err := s.traces.Create(ctx, t)
	if err != nil {
		return nil, fmt.Errorf("create trace: %w", err)
	}

	s.log.InfoContext(ctx, "trace created",
		slog.String("trace_id", created.ID),
		slog.Int("steps", len(created.Steps)),
		slog.Int("tags", len(created.Tags)),
	)

	return created, nil
}
