package config

import (
	"fmt"
	"slices"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if strings.TrimSpace(c.Database.DSN) == "" {
		return fmt.Errorf("database.dsn is required")
	}

	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}

	if c.RateLimit.Enabled && (c.RateLimit.WritesPerMinute <= 0 || c.RateLimit.Burst <= 0) {
		return fmt.Errorf("rate_limit: writes_per_minute and burst must be > 0")
	}

	if err := c.Search.validate(); err != nil {
		return fmt.Errorf("search: %w", err)
	}

	if err := c.Translation.validate(); err != nil {
		return fmt.Errorf("translation: %w", err)
	}

	if c.Analytics.Secret != "" && len(c.Analytics.Secret) < 8 {
		return fmt.Errorf("analytics.secret must be at least 8 characters (got %d)", len(c.Analytics.Secret))
	}
	if c.Analytics.TrendDays <= 0 {
		return fmt.Errorf("analytics.trend_days must be > 0 (got %d)", c.Analytics.TrendDays)
	}

	return nil
}

func (s *SearchConfig) validate() error {
	if s.DefaultPageSize <= 0 {
		return fmt.Errorf("default_page_size must be > 0 (got %d)", s.DefaultPageSize)
	}
	if s.MaxPageSize < s.DefaultPageSize {
		return fmt.Errorf("max_page_size must be >= default_page_size (got %d < %d)", s.MaxPageSize, s.DefaultPageSize)
	}
	if s.SimilarLimit <= 0 || s.AlternativeLimit <= 0 || s.AlternativeCountLimit <= 0 {
		return fmt.Errorf("similar and alternative limits must be > 0")
	}
	return nil
}

func (t *TranslationConfig) validate() error {
	if t.RequestTimeout <= 0 {
		return fmt.Errorf("request_timeout must be > 0 (got %v)", t.RequestTimeout)
	}
	if t.FieldConcurrency <= 0 {
		return fmt.Errorf("field_concurrency must be > 0 (got %d)", t.FieldConcurrency)
	}
	if t.BatchMaxItems <= 0 {
		return fmt.Errorf("batch_max_items must be > 0 (got %d)", t.BatchMaxItems)
	}

	locales := ParseList(t.SupportedLocalesRaw)
	if len(locales) == 0 {
		return fmt.Errorf("supported_locales must not be empty")
	}
	for i, l := range locales {
		locales[i] = strings.ToLower(l)
	}
	if !slices.Contains(locales, "en") {
		return fmt.Errorf("supported_locales must include en")
	}
	t.SupportedLocales = locales

	return nil
}

// ParseList splits a comma-separated string, trimming items and dropping empties.
// An empty string returns a nil slice.
func ParseList(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
