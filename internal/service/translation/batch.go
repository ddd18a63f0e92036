package translation

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/WeAreTheArtMakers/mindTrace/internal/domain"
	"github.com/WeAreTheArtMakers/mindTrace/internal/provider"
)

// ResolveBatch resolves several traces into one locale.
//
// Cached and same-locale traces are answered without a provider. The rest go
// to the first batch-capable provider in one call when there is one; whatever
// that call does not cover is resolved one trace at a time through the full
// chain. Unknown ids and traces no provider could translate are absent from
// the result.
func (s *Service) ResolveBatch(ctx context.Context, traceIDs []string, lang string) (*BatchResult, error) {
	ids := dedupeIDs(traceIDs)
	if len(ids) == 0 {
		return nil, domain.NewValidationError("traceIds", "required")
	}
	if len(ids) > s.batchMax {
		return nil, domain.NewValidationError("traceIds", fmt.Sprintf("max %d ids", s.batchMax))
	}
	locale, err := s.parseLocale(lang)
	if err != nil {
		return nil, err
	}

	traces, err := s.traces.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("get traces: %w", err)
	}

	out := &BatchResult{Translations: make(map[string]*Result, len(traces)), APIAvailable: true}

	var pending []domain.Trace
	for _, t := range traces {
		if t.OriginLocale() == locale {
			out.Translations[t.ID] = &Result{TraceID: t.ID, Locale: locale, Content: t.Content(), Status: StatusNotNeeded, Provider: provider.NameNone}
			continue
		}
		pending = append(pending, t)
	}
	if len(pending) == 0 {
		return out, nil
	}

	cached, err := s.translations.GetMany(ctx, traceIDsOf(pending), locale)
	if err != nil {
		s.log.WarnContext(ctx, "translation cache read failed",
			slog.Int("traces", len(pending)),
			slog.String("error", err.Error()),
		)
		cached = nil
	}

	missing := pending[:0:0]
	for _, t := range pending {
		if c, ok := cached[t.ID]; ok {
			out.Translations[t.ID] = &Result{TraceID: t.ID, Locale: locale, Content: c.Content, Status: StatusCached, Provider: c.Provider}
			continue
		}
		missing = append(missing, t)
	}
	if len(missing) == 0 {
		return out, nil
	}

	translated := s.translateBatchCall(ctx, missing, locale)
	for id, r := range translated {
		out.Translations[id] = r
	}

	var rest []domain.Trace
	for _, t := range missing {
		if _, ok := translated[t.ID]; !ok {
			rest = append(rest, t)
		}
	}

	fresh := len(translated)
	if len(rest) > 0 {
		fresh += s.translateEach(ctx, rest, locale, out)
	}

	out.APIAvailable = fresh > 0
	return out, nil
}

// translateBatchCall sends missing traces to the first batch-capable provider.
// A failed call returns an empty map so every trace falls back to the chain.
func (s *Service) translateBatchCall(ctx context.Context, missing []domain.Trace, locale domain.Locale) map[string]*Result {
	out := map[string]*Result{}

	var bt BatchTranslator
	for _, tr := range s.chain {
		if b, ok := tr.(BatchTranslator); ok {
			bt = b
			break
		}
	}
	if bt == nil || len(missing) < 2 {
		return out
	}

	items := make([]provider.BatchItem, len(missing))
	sources := make(map[string]domain.TraceContent, len(missing))
	for i, t := range missing {
		items[i] = provider.BatchItem{ID: t.ID, Content: t.Content()}
		sources[t.ID] = items[i].Content
	}

	got, err := bt.TranslateBatch(ctx, items, locale)
	if err != nil {
		providerCalls.WithLabelValues(bt.Name(), "batch", "error").Inc()
		s.log.WarnContext(ctx, "batch translation failed",
			slog.String("provider", bt.Name()),
			slog.Int("items", len(items)),
			slog.String("error", err.Error()),
		)
		return out
	}
	providerCalls.WithLabelValues(bt.Name(), "batch", "ok").Inc()

	for id, content := range got {
		src, ok := sources[id]
		if !ok || provider.CheckShape(src, content) != nil {
			continue
		}
		s.store(ctx, id, locale, content, bt.Name())
		out[id] = &Result{TraceID: id, Locale: locale, Content: content, Status: StatusTranslated, Provider: bt.Name()}
	}
	return out
}

// translateEach resolves traces one by one through the chain, a few at a
// time. Returns how many were translated.
func (s *Service) translateEach(ctx context.Context, traces []domain.Trace, locale domain.Locale, out *BatchResult) int {
	var (
		mu sync.Mutex
		n  int
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i := range traces {
		t := &traces[i]
		g.Go(func() error {
			res := s.translateAndStore(gctx, t, locale)
			if res.Status != StatusTranslated {
				return nil
			}
			mu.Lock()
			out.Translations[t.ID] = res
			n++
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()
	return n
}

func dedupeIDs(ids []string) []string {
	out := make([]string, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func traceIDsOf(traces []domain.Trace) []string {
	ids := make([]string, len(traces))
	for i, t := range traces {
		ids[i] = t.ID
	}
	return ids
}
