package trace

import (
	"fmt"
	"slices"
	"strings"

	"github.com/WeAreTheArtMakers/mindTrace/internal/domain"
)

// CreateTraceInput holds a trace submission.
type CreateTraceInput struct {
	Problem    string
	Steps      []string
	Tags       []string
	LocaleHint string
}

// normalized returns the input with the problem trimmed, empty steps dropped
// and tags normalized. Tags are clipped to MaxTags of MaxTagLength characters
// and an unsupported locale hint is dropped, so neither can fail validation.
// Validate runs on the normalized form.
func (i CreateTraceInput) normalized() CreateTraceInput {
	locale := domain.ParseLocale(i.LocaleHint)
	if !slices.Contains(domain.SupportedLocales(), locale) {
		locale = ""
	}
	return CreateTraceInput{
		Problem:    strings.TrimSpace(i.Problem),
		Steps:      domain.CleanSteps(i.Steps),
		Tags:       clipTags(i.Tags),
		LocaleHint: string(locale),
	}
}

func clipTags(tags []string) []string {
	out := domain.NormalizeTags(tags)
	for idx, tag := range out {
		if domain.RuneLen(tag) > domain.MaxTagLength {
			out[idx] = string([]rune(tag)[:domain.MaxTagLength])
		}
	}
	// Clipping can make two tags equal or leave a trailing space.
	out = domain.NormalizeTags(out)
	if len(out) > domain.MaxTags {
		out = out[:domain.MaxTags]
	}
	return out
}

// Validate checks the problem and steps of a normalized input and collects all
// errors. Tags and locale hint never make an input invalid.
func (i CreateTraceInput) Validate() error {
	var errs []domain.FieldError

	switch n := domain.RuneLen(i.Problem); {
	case n == 0:
		errs = append(errs, domain.FieldError{Field: "problem", Message: "required"})
	case n < domain.MinProblemLength:
		errs = append(errs, domain.FieldError{Field: "problem", Message: fmt.Sprintf("min %d characters", domain.MinProblemLength)})
	case n > domain.MaxProblemLength:
		errs = append(errs, domain.FieldError{Field: "problem", Message: fmt.Sprintf("max %d characters", domain.MaxProblemLength)})
	}

	if len(i.Steps) < domain.MinSteps {
		errs = append(errs, domain.FieldError{Field: "steps", Message: fmt.Sprintf("at least %d non-empty steps", domain.MinSteps)})
	}
	if len(i.Steps) > domain.MaxSteps {
		errs = append(errs, domain.FieldError{Field: "steps", Message: fmt.Sprintf("max %d steps", domain.MaxSteps)})
	}
	for idx, s := range i.Steps {
		if domain.RuneLen(s) > domain.MaxStepLength {
			errs = append(errs, domain.FieldError{
				Field:   fmt.Sprintf("steps[%d]", idx),
				Message: fmt.Sprintf("max %d characters", domain.MaxStepLength),
			})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// SearchInput holds listing parameters. Page is 1-based; zero values mean defaults.
type SearchInput struct {
	Query               string
	Tag                 string
	Page                int
	Limit               int
	Locale              string
	ExcludeAlternatives bool
}
