package trace

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/WeAreTheArtMakers/mindTrace/internal/domain"
	"github.com/WeAreTheArtMakers/mindTrace/internal/service/trace/matching"
)

// Related groups what the trace page shows next to a trace.
type Related struct {
	Similar          []RankedTrace
	AlternativeCount int
	Problem          string
}

// RelatedTraces returns traces sharing tags with id and the number of
// alternative solutions. A missing trace yields empty results, not an error.
func (s *Service) RelatedTraces(ctx context.Context, id string) (*Related, error) {
	target, all, err := s.targetAndAll(ctx, id)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return &Related{Similar: []RankedTrace{}}, nil
	}

	similar := matching.Similar(*target, all, s.limits.SimilarLimit)
	alternatives := matching.Alternatives(target.Problem, target.ID, all, s.limits.AlternativeCountLimit)

	ranked, err := s.rank(ctx, similar)
	if err != nil {
		return nil, err
	}

	return &Related{
		Similar:          ranked,
		AlternativeCount: len(alternatives),
		Problem:          target.Problem,
	}, nil
}

// AlternativeSolutions returns traces whose problem restates the problem of id.
// A missing trace yields an empty list.
func (s *Service) AlternativeSolutions(ctx context.Context, id string) ([]RankedTrace, error) {
	target, all, err := s.targetAndAll(ctx, id)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return []RankedTrace{}, nil
	}
	return s.rank(ctx, matching.Alternatives(target.Problem, target.ID, all, s.limits.AlternativeLimit))
}

// AlternativesForProblem matches free problem text against every trace.
// No trace is excluded since the text belongs to no trace.
func (s *Service) AlternativesForProblem(ctx context.Context, problem string) ([]RankedTrace, error) {
	if strings.TrimSpace(problem) == "" {
		return []RankedTrace{}, nil
	}
	all, err := s.traces.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list traces: %w", err)
	}
	return s.rank(ctx, matching.Alternatives(problem, "", all, s.limits.AlternativeLimit))
}

// targetAndAll loads the trace and the full candidate list. target is nil when absent.
func (s *Service) targetAndAll(ctx context.Context, id string) (*domain.Trace, []domain.Trace, error) {
	target, err := s.traces.GetByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("get trace: %w", err)
	}

	all, err := s.traces.ListAll(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("list traces: %w", err)
	}
	return target, all, nil
}

func (s *Service) rank(ctx context.Context, scored []matching.Scored) ([]RankedTrace, error) {
	traces := make([]domain.Trace, len(scored))
	scores := make([]int, len(scored))
	for i, sc := range scored {
		traces[i] = sc.Trace
		scores[i] = sc.Score
	}
	out, err := s.withCounts(ctx, traces, scores)
	if err != nil {
		return nil, fmt.Errorf("count resonates: %w", err)
	}
	return out, nil
}
