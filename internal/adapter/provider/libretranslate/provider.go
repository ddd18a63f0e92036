// Package libretranslate translates plain text through a self-hosted
// LibreTranslate instance.
package libretranslate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/WeAreTheArtMakers/mindTrace/internal/domain"
	"github.com/WeAreTheArtMakers/mindTrace/internal/provider"
)

// Provider calls POST {baseURL}/translate for every text.
type Provider struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	log        *slog.Logger
}

// NewProvider creates a Provider for the instance at baseURL. apiKey may be empty.
func NewProvider(baseURL, apiKey string, timeout time.Duration, logger *slog.Logger) *Provider {
	return &Provider{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.With("adapter", "libretranslate"),
	}
}

// Name identifies the provider in cached translations and metrics.
func (p *Provider) Name() string { return provider.NameLibreTranslate }

type translateRequest struct {
	Q      string `json:"q"`
	Source string `json:"source"`
	Target string `json:"target"`
	Format string `json:"format"`
	APIKey string `json:"api_key,omitempty"`
}

type translateResponse struct {
	TranslatedText string `json:"translatedText"`
	Error          string `json:"error"`
}

// TranslateText translates text into target, letting the server detect the source language.
func (p *Provider) TranslateText(ctx context.Context, text string, target domain.Locale) (string, error) {
	body, err := json.Marshal(translateRequest{
		Q:      text,
		Source: "auto",
		Target: string(target),
		Format: "text",
		APIKey: p.apiKey,
	})
	if err != nil {
		return "", fmt.Errorf("libretranslate: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/translate", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("libretranslate: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("libretranslate: request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("libretranslate: read body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr translateResponse
		if json.Unmarshal(raw, &apiErr) == nil && apiErr.Error != "" {
			p.log.DebugContext(ctx, "libretranslate error body", slog.String("error", apiErr.Error))
		}
		return "", &provider.StatusError{Provider: p.Name(), Code: resp.StatusCode}
	}

	var out translateResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", fmt.Errorf("libretranslate: decode json: %w", err)
	}
	if out.TranslatedText == "" && text != "" {
		return "", fmt.Errorf("libretranslate: %w", provider.ErrEmptyResult)
	}
	return out.TranslatedText, nil
}
