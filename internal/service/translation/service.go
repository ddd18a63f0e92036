// Package translation resolves trace content in a target locale: the trace's
// own locale needs no work, a cached translation is served as is, and a miss
// walks an ordered chain of providers and caches the first success.
package translation

import (
	"context"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"golang.org/x/sync/singleflight"

	"github.com/WeAreTheArtMakers/mindTrace/internal/config"
	"github.com/WeAreTheArtMakers/mindTrace/internal/domain"
	"github.com/WeAreTheArtMakers/mindTrace/internal/provider"
)

type traceReader interface {
	GetByID(ctx context.Context, id string) (*domain.Trace, error)
	GetByIDs(ctx context.Context, ids []string) ([]domain.Trace, error)
}

type translationRepo interface {
	Get(ctx context.Context, traceID string, locale domain.Locale) (*domain.TraceTranslation, error)
	GetMany(ctx context.Context, traceIDs []string, locale domain.Locale) (map[string]domain.TraceTranslation, error)
	Upsert(ctx context.Context, tr *domain.TraceTranslation) error
}

// Translator is one link of the provider chain.
type Translator interface {
	Name() string
	Translate(ctx context.Context, content domain.TraceContent, target domain.Locale) (domain.TraceContent, error)
}

// BatchTranslator is a Translator that can also translate several traces in one call.
type BatchTranslator interface {
	Translator
	TranslateBatch(ctx context.Context, items []provider.BatchItem, target domain.Locale) (map[string]domain.TraceContent, error)
}

var (
	providerCalls = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "mindtrace",
		Subsystem: "translation",
		Name:      "provider_calls_total",
		Help:      "Translation provider calls by provider and outcome.",
	}, []string{"provider", "mode", "outcome"})

	resolutions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "mindtrace",
		Subsystem: "translation",
		Name:      "resolutions_total",
		Help:      "Translation resolutions by resulting status.",
	}, []string{"status"})
)

// Service resolves translations through the cache and the provider chain.
type Service struct {
	traces       traceReader
	translations translationRepo
	chain        []Translator
	locales      map[domain.Locale]struct{}
	batchMax     int
	concurrency  int
	group        singleflight.Group
	log          *slog.Logger
}

// NewService creates a new translation service. chain is tried in order; an
// empty chain makes every cache miss unavailable.
func NewService(
	log *slog.Logger,
	traces traceReader,
	translations translationRepo,
	chain []Translator,
	cfg config.TranslationConfig,
) *Service {
	locales := make(map[domain.Locale]struct{}, len(cfg.SupportedLocales))
	for _, l := range cfg.SupportedLocales {
		locales[domain.ParseLocale(l)] = struct{}{}
	}
	if len(locales) == 0 {
		for _, l := range domain.SupportedLocales() {
			locales[l] = struct{}{}
		}
	}

	names := make([]string, len(chain))
	for i, t := range chain {
		names[i] = t.Name()
	}
	logger := log.With("service", "translation")
	logger.Info("translation chain configured", slog.Any("providers", names))

	return &Service{
		traces:       traces,
		translations: translations,
		chain:        chain,
		locales:      locales,
		batchMax:     max(cfg.BatchMaxItems, 1),
		concurrency:  max(cfg.FieldConcurrency, 1),
		log:          logger,
	}
}

// Providers returns the names of the configured providers in chain order.
func (s *Service) Providers() []string {
	names := make([]string, len(s.chain))
	for i, t := range s.chain {
		names[i] = t.Name()
	}
	return names
}

func (s *Service) parseLocale(raw string) (domain.Locale, error) {
	l := domain.ParseLocale(raw)
	if l == "" {
		return "", domain.NewValidationError("lang", "required")
	}
	if _, ok := s.locales[l]; !ok {
		return "", domain.NewValidationError("lang", "unsupported locale")
	}
	return l, nil
}
