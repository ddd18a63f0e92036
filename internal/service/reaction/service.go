// Package reaction counts "resonate" reactions. Every call adds a record; a
// reader that reacts twice is counted twice. Duplicate suppression is left to
// the client, which remembers locally that it already reacted.
package reaction

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/WeAreTheArtMakers/mindTrace/internal/domain"
)

type reactionRepo interface {
	Add(ctx context.Context, traceID string) (int, error)
	Count(ctx context.Context, traceID string) (int, error)
}

// Service provides the resonate counter.
type Service struct {
	reactions reactionRepo
	log       *slog.Logger
}

// NewService creates a new reaction service.
func NewService(log *slog.Logger, reactions reactionRepo) *Service {
	return &Service{
		reactions: reactions,
		log:       log.With("service", "reaction"),
	}
}

// Resonate records one reaction for traceID and returns the new count.
// The trace is not required to exist.
func (s *Service) Resonate(ctx context.Context, traceID string) (int, error) {
	traceID = strings.TrimSpace(traceID)
	if traceID == "" {
		return 0, domain.NewValidationError("traceId", "required")
	}

	count, err := s.reactions.Add(ctx, traceID)
	if err != nil {
		return 0, fmt.Errorf("add resonate: %w", err)
	}

	s.log.DebugContext(ctx, "resonate recorded",
		slog.String("trace_id", traceID),
		slog.Int("count", count),
	)
	return count, nil
}

// Count returns the number of reactions recorded for traceID.
func (s *Service) Count(ctx context.Context, traceID string) (int, error) {
	traceID = strings.TrimSpace(traceID)
	if traceID == "" {
		return 0, domain.NewValidationError("traceId", "required")
	}

	count, err := s.reactions.Count(ctx, traceID)
	if err != nil {
		return 0, fmt.Errorf("count resonates: %w", err)
	}
	return count, nil
}
