// Package provider holds the types shared by the translation provider adapters.
package provider

import (
	"errors"
	"fmt"

	"github.com/WeAreTheArtMakers/mindTrace/internal/domain"
)

// Provider names recorded with cached translations.
const (
	NameOpenAI         = "openai"
	NameLibreTranslate = "libretranslate"
	NameGoogleFree     = "google-free"
	NameNone           = "none"
)

// ErrEmptyResult is returned when a provider answers successfully but with no text.
var ErrEmptyResult = errors.New("provider returned empty result")

// ErrShapeMismatch is returned when a structured translation does not have the
// same number of steps and tags as its source.
var ErrShapeMismatch = errors.New("translated content does not match source shape")

// StatusError reports an unexpected HTTP status from a provider.
type StatusError struct {
	Provider string
	Code     int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: unexpected status %d", e.Provider, e.Code)
}

// BatchItem is one entry of a batch translation request, keyed by trace id.
type BatchItem struct {
	ID      string
	Content domain.TraceContent
}

// CheckShape returns ErrShapeMismatch unless got has the same shape as src.
func CheckShape(src, got domain.TraceContent) error {
	if !got.MatchesShape(src) {
		return fmt.Errorf("%w: steps %d/%d, tags %d/%d",
			ErrShapeMismatch, len(got.Steps), len(src.Steps), len(got.Tags), len(src.Tags))
	}
	return nil
}
