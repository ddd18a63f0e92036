package translation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/WeAreTheArtMakers/mindTrace/internal/domain"
	"github.com/WeAreTheArtMakers/mindTrace/internal/provider"
)

// Resolve returns the content of traceID in lang.
//
// Returns domain.ErrNotFound when the trace does not exist and a validation
// error for an unsupported locale. Provider failures are not errors: the
// result is flagged StatusUnavailable and the caller shows the original text.
func (s *Service) Resolve(ctx context.Context, traceID, lang string) (*Result, error) {
	if traceID == "" {
		return nil, domain.NewValidationError("traceId", "required")
	}
	locale, err := s.parseLocale(lang)
	if err != nil {
		return nil, err
	}

	t, err := s.traces.GetByID(ctx, traceID)
	if err != nil {
		return nil, fmt.Errorf("get trace: %w", err)
	}

	if t.OriginLocale() == locale {
		resolutions.WithLabelValues(string(StatusNotNeeded)).Inc()
		return &Result{TraceID: t.ID, Locale: locale, Content: t.Content(), Status: StatusNotNeeded, Provider: provider.NameNone}, nil
	}

	cached, err := s.translations.Get(ctx, t.ID, locale)
	switch {
	case err == nil:
		resolutions.WithLabelValues(string(StatusCached)).Inc()
		return &Result{TraceID: t.ID, Locale: locale, Content: cached.Content, Status: StatusCached, Provider: cached.Provider}, nil
	case !errors.Is(err, domain.ErrNotFound):
		// A broken cache should not block translation.
		s.log.WarnContext(ctx, "translation cache read failed",
			slog.String("trace_id", t.ID),
			slog.String("locale", locale.String()),
			slog.String("error", err.Error()),
		)
	}

	res := s.translateAndStore(ctx, t, locale)
	resolutions.WithLabelValues(string(res.Status)).Inc()
	return res, nil
}

// translateAndStore runs the provider chain once per (trace, locale) among
// concurrent callers and caches a success.
func (s *Service) translateAndStore(ctx context.Context, t *domain.Trace, locale domain.Locale) *Result {
	key := t.ID + "|" + string(locale)

	// The shared call must outlive any single caller's request.
	v, _, _ := s.group.Do(key, func() (any, error) {
		callCtx := context.WithoutCancel(ctx)

		content, name, err := s.runChain(callCtx, t.Content(), locale)
		if err != nil {
			s.log.WarnContext(callCtx, "translation unavailable",
				slog.String("trace_id", t.ID),
				slog.String("locale", locale.String()),
				slog.String("error", err.Error()),
			)
			return &Result{TraceID: t.ID, Locale: locale, Content: t.Content(), Status: StatusUnavailable, Provider: provider.NameNone}, nil
		}

		s.store(callCtx, t.ID, locale, content, name)
		return &Result{TraceID: t.ID, Locale: locale, Content: content, Status: StatusTranslated, Provider: name}, nil
	})

	res := *v.(*Result)
	return &res
}

// runChain tries each provider in order and returns the first well-formed result.
func (s *Service) runChain(ctx context.Context, src domain.TraceContent, locale domain.Locale) (domain.TraceContent, string, error) {
	if len(s.chain) == 0 {
		return domain.TraceContent{}, "", fmt.Errorf("no provider configured: %w", domain.ErrTranslationUnavailable)
	}

	var errs []error
	for _, tr := range s.chain {
		start := time.Now()
		out, err := tr.Translate(ctx, src, locale)
		if err == nil {
			err = provider.CheckShape(src, out)
		}
		if err != nil {
			providerCalls.WithLabelValues(tr.Name(), "single", "error").Inc()
			s.log.WarnContext(ctx, "translation provider failed",
				slog.String("provider", tr.Name()),
				slog.String("locale", locale.String()),
				slog.Duration("duration", time.Since(start)),
				slog.String("error", err.Error()),
			)
			errs = append(errs, fmt.Errorf("%s: %w", tr.Name(), err))
			continue
		}

		providerCalls.WithLabelValues(tr.Name(), "single", "ok").Inc()
		return out, tr.Name(), nil
	}
	return domain.TraceContent{}, "", fmt.Errorf("%w: %w", domain.ErrTranslationUnavailable, errors.Join(errs...))
}

// store caches a translation. A failed write is logged; the caller still gets the text.
func (s *Service) store(ctx context.Context, traceID string, locale domain.Locale, content domain.TraceContent, providerName string) {
	err := s.translations.Upsert(ctx, &domain.TraceTranslation{
		TraceID:   traceID,
		Locale:    locale,
		Content:   content,
		Provider:  providerName,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		s.log.WarnContext(ctx, "translation cache write failed",
			slog.String("trace_id", traceID),
			slog.String("locale", locale.String()),
			slog.String("error", err.Error()),
		)
	}
}
