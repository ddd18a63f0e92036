// Package googlefree translates plain text through the unauthenticated Google
// Translate web endpoint. The endpoint is undocumented; availability is best effort.
package googlefree

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/WeAreTheArtMakers/mindTrace/internal/domain"
	"github.com/WeAreTheArtMakers/mindTrace/internal/provider"
)

const defaultBaseURL = "https://translate.googleapis.com/translate_a/single"

// Provider calls GET {baseURL}?client=gtx&sl=auto&tl=..&dt=t&q=.. for every text.
type Provider struct {
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
}

// NewProvider creates a Provider with the public endpoint.
func NewProvider(timeout time.Duration, logger *slog.Logger) *Provider {
	return NewProviderWithURL(defaultBaseURL, timeout, logger)
}

// NewProviderWithURL creates a Provider with a custom endpoint (for testing).
func NewProviderWithURL(baseURL string, timeout time.Duration, logger *slog.Logger) *Provider {
	return &Provider{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.With("adapter", "googlefree"),
	}
}

// Name identifies the provider in cached translations and metrics.
func (p *Provider) Name() string { return provider.NameGoogleFree }

// TranslateText translates text into target. Unlike the web client, a failed
// call is an error rather than an echo of the input, so the caller can tell the two apart.
func (p *Provider) TranslateText(ctx context.Context, text string, target domain.Locale) (string, error) {
	q := url.Values{}
	q.Set("client", "gtx")
	q.Set("sl", "auto")
	q.Set("tl", string(target))
	q.Set("dt", "t")
	q.Set("q", text)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("googlefree: create request: %w", err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("googlefree: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", &provider.StatusError{Provider: p.Name(), Code: resp.StatusCode}
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("googlefree: read body: %w", err)
	}

	translated, err := parseResponse(raw)
	if err != nil {
		return "", fmt.Errorf("googlefree: %w", err)
	}
	if translated == "" && text != "" {
		return "", fmt.Errorf("googlefree: %w", provider.ErrEmptyResult)
	}
	return translated, nil
}

// parseResponse concatenates the translated segments of a response shaped like
// [[["translated","original",null,null,10], ...], null, "en", ...].
func parseResponse(raw []byte) (string, error) {
	var top []json.RawMessage
	if err := json.Unmarshal(raw, &top); err != nil {
		return "", fmt.Errorf("decode json: %w", err)
	}
	if len(top) == 0 {
		return "", nil
	}

	var segments []json.RawMessage
	if err := json.Unmarshal(top[0], &segments); err != nil {
		// A null first element means nothing was translated.
		return "", nil
	}

	var b strings.Builder
	for _, seg := range segments {
		var parts []json.RawMessage
		if err := json.Unmarshal(seg, &parts); err != nil || len(parts) == 0 {
			continue
		}
		var s string
		if err := json.Unmarshal(parts[0], &s); err != nil {
			continue
		}
		b.WriteString(s)
	}
	return b.String(), nil
}
