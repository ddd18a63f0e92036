// Package fieldwise adapts a plain-text translator to structured trace content
// by translating the problem, every step and every tag as independent calls.
package fieldwise

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/WeAreTheArtMakers/mindTrace/internal/domain"
)

type textTranslator interface {
	Name() string
	TranslateText(ctx context.Context, text string, target domain.Locale) (string, error)
}

// Translator fans trace fields out to a text translator.
type Translator struct {
	text        textTranslator
	concurrency int
}

// New wraps text. concurrency bounds in-flight calls per trace; values below 1 mean 1.
func New(text textTranslator, concurrency int) *Translator {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Translator{text: text, concurrency: concurrency}
}

// Name reports the wrapped provider's name.
func (t *Translator) Name() string { return t.text.Name() }

// Translate translates every field of content. Any failed field fails the
// whole trace; partial translations are never returned.
func (t *Translator) Translate(ctx context.Context, content domain.TraceContent, target domain.Locale) (domain.TraceContent, error) {
	out := domain.TraceContent{
		Steps: make([]string, len(content.Steps)),
		Tags:  make([]string, len(content.Tags)),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(t.concurrency)

	field := func(src string, dst *string) {
		g.Go(func() error {
			res, err := t.text.TranslateText(gctx, src, target)
			if err != nil {
				return err
			}
			*dst = res
			return nil
		})
	}

	field(content.Problem, &out.Problem)
	for i, s := range content.Steps {
		field(s, &out.Steps[i])
	}
	for i, tag := range content.Tags {
		field(tag, &out.Tags[i])
	}

	if err := g.Wait(); err != nil {
		return domain.TraceContent{}, fmt.Errorf("%s: translate fields: %w", t.text.Name(), err)
	}
	return out, nil
}
