package trace

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"math"
	"slices"

	"github.com/WeAreTheArtMakers/mindTrace/internal/domain"
	"github.com/WeAreTheArtMakers/mindTrace/internal/service/trace/matching"
)

// SearchResult is one page of traces.
type SearchResult struct {
	Traces []domain.Trace
	Total  int
	Page   int
	Limit  int
}

// GetTrace returns a trace by id. Returns domain.ErrNotFound if absent.
func (s *Service) GetTrace(ctx context.Context, id string) (*domain.Trace, error) {
	if id == "" {
		return nil, domain.NewValidationError("id", "required")
	}
	t, err := s.traces.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get trace: %w", err)
	}
	return t, nil
}

// SearchTraces returns a page of traces matching the query and tag.
// User submissions come before seed entries, then traces written in the
// requested locale, then newest first.
func (s *Service) SearchTraces(ctx context.Context, input SearchInput) (*SearchResult, error) {
	page := max(input.Page, 1)

	limit := input.Limit
	if limit <= 0 {
		limit = s.limits.DefaultPageSize
	}
	limit = max(min(limit, s.limits.MaxPageSize), 1)
	// Keeps (page-1)*limit from overflowing; such a page is simply empty.
	page = min(page, math.MaxInt/limit)

	filter := domain.TraceFilter{
		Query:           input.Query,
		Tag:             domain.NormalizeText(input.Tag),
		PreferredLocale: domain.ParseLocale(input.Locale),
		Limit:           limit,
		Offset:          (page - 1) * limit,
	}

	if input.ExcludeAlternatives {
		all, err := s.traces.ListAll(ctx)
		if err != nil {
			return nil, fmt.Errorf("list traces: %w", err)
		}
		filter.ExcludeIDs = slices.Sorted(maps.Keys(matching.AlternativeIDs(all)))
	}

	result, err := s.traces.Search(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("search traces: %w", err)
	}

	return &SearchResult{
		Traces: result.Traces,
		Total:  result.Total,
		Page:   page,
		Limit:  limit,
	}, nil
}

// ListTags returns every tag in use, sorted.
func (s *Service) ListTags(ctx context.Context) ([]string, error) {
	tags, err := s.traces.ListTags(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	return tags, nil
}

// FeaturedID returns the id of the newest trace, or "" when there are none.
func (s *Service) FeaturedID(ctx context.Context) (string, error) {
	id, err := s.traces.LatestID(ctx)
	if errors.Is(err, domain.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("latest trace: %w", err)
	}
	return id, nil
}
