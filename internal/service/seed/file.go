package seed

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/WeAreTheArtMakers/mindTrace/internal/domain"
)

// File is the on-disk seed format.
//
//	entries:
//	  - key: move-to-new-city
//	    locale: en
//	    problem: "I'm considering moving to a new city..."
//	    steps: ["...", "..."]
//	    tags: [decisions, risk]
type File struct {
	Entries []Entry `yaml:"entries"`
}

// Entry is one seed trace.
type Entry struct {
	Key     string   `yaml:"key"`
	Locale  string   `yaml:"locale"`
	Problem string   `yaml:"problem"`
	Steps   []string `yaml:"steps"`
	Tags    []string `yaml:"tags"`
	// Topic and Region are informational and not stored.
	Topic  string `yaml:"topic"`
	Region string `yaml:"region"`
}

// LoadFile reads and parses a seed file.
func LoadFile(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open seed file: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// Parse decodes a seed file and validates every entry. Unknown keys are rejected.
func Parse(r io.Reader) (*File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var file File
	if err := dec.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return &File{}, nil
		}
		return nil, fmt.Errorf("decode seed file: %w", err)
	}

	seen := make(map[string]int, len(file.Entries))
	for i := range file.Entries {
		e := &file.Entries[i]
		e.Key = strings.TrimSpace(e.Key)
		if err := e.validate(); err != nil {
			return nil, fmt.Errorf("entry %d (%q): %w", i, e.Key, err)
		}
		if prev, ok := seen[e.Key]; ok {
			return nil, fmt.Errorf("entry %d: duplicate key %q (first at %d)", i, e.Key, prev)
		}
		seen[e.Key] = i
	}
	return &file, nil
}

func (e *Entry) validate() error {
	var errs []domain.FieldError

	if e.Key == "" {
		errs = append(errs, domain.FieldError{Field: "key", Message: "required"})
	} else if strings.ContainsAny(e.Key, " \t/") {
		errs = append(errs, domain.FieldError{Field: "key", Message: "must not contain spaces or slashes"})
	}
	if strings.TrimSpace(e.Problem) == "" {
		errs = append(errs, domain.FieldError{Field: "problem", Message: "required"})
	}
	if len(domain.CleanSteps(e.Steps)) < domain.MinSteps {
		errs = append(errs, domain.FieldError{Field: "steps", Message: fmt.Sprintf("at least %d non-empty steps", domain.MinSteps)})
	}
	if l := domain.ParseLocale(e.Locale); l != "" && !isSupported(l) {
		errs = append(errs, domain.FieldError{Field: "locale", Message: "unsupported locale"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func isSupported(l domain.Locale) bool {
	return slices.Contains(domain.SupportedLocales(), l)
}
