package trace

import (
	"context"
	"crypto/rand"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/WeAreTheArtMakers/mindTrace/internal/config"
	"github.com/WeAreTheArtMakers/mindTrace/internal/domain"
)

type traceRepo interface {
	Create(ctx context.Context, t *domain.Trace) (*domain.Trace, error)
	GetByID(ctx context.Context, id string) (*domain.Trace, error)
	ListAll(ctx context.Context) ([]domain.Trace, error)
	Search(ctx context.Context, f domain.TraceFilter) (*domain.TracePage, error)
	ListTags(ctx context.Context) ([]string, error)
	LatestID(ctx context.Context) (string, error)
}

type reactionCounter interface {
	CountMany(ctx context.Context, traceIDs []string) (map[string]int, error)
}

// Service provides trace submission, search and matching.
type Service struct {
	traces    traceRepo
	reactions reactionCounter
	limits    config.SearchConfig
	log       *slog.Logger

	idMu    sync.Mutex
	entropy io.Reader
}

// NewService creates a new trace service.
func NewService(
	log *slog.Logger,
	traces traceRepo,
	reactions reactionCounter,
	limits config.SearchConfig,
) *Service {
	return &Service{
		traces:    traces,
		reactions: reactions,
		limits:    limits,
		log:       log.With("service", "trace"),
		entropy:   ulid.Monotonic(rand.Reader, 0),
	}
}

// newID returns a ULID; ids sort by creation time. The monotonic entropy
// source is not safe for concurrent use, hence the mutex.
func (s *Service) newID(now time.Time) (string, error) {
	s.idMu.Lock()
	defer s.idMu.Unlock()

	id, err := ulid.New(ulid.Timestamp(now), s.entropy)
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// RankedTrace is a matched trace with its score and resonate count.
type RankedTrace struct {
	Trace         domain.Trace
	Score         int
	ResonateCount int
}

// withCounts attaches resonate counts to scored traces in one query.
func (s *Service) withCounts(ctx context.Context, traces []domain.Trace, scores []int) ([]RankedTrace, error) {
	out := make([]RankedTrace, len(traces))
	if len(traces) == 0 {
		return out, nil
	}

	ids := make([]string, len(traces))
	for i, t := range traces {
		ids[i] = t.ID
	}
	counts, err := s.reactions.CountMany(ctx, ids)
	if err != nil {
		return nil, err
	}

	for i, t := range traces {
		out[i] = RankedTrace{Trace: t, Score: scores[i], ResonateCount: counts[t.ID]}
	}
	return out, nil
}
