// Package openai translates structured trace content with a chat-completion model.
// The whole trace is sent as one JSON document and the model is asked to return
// the same document with its text values translated.
package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/WeAreTheArtMakers/mindTrace/internal/domain"
	"github.com/WeAreTheArtMakers/mindTrace/internal/provider"
)

const (
	defaultModel       = "gpt-4o-mini"
	defaultTemperature = float32(0.3)
	defaultTimeout     = 20 * time.Second
)

// Options configures the provider. Zero values fall back to defaults.
type Options struct {
	APIKey      string
	BaseURL     string
	Model       string
	Temperature float32
	Timeout     time.Duration
}

// Provider translates trace content through the OpenAI chat-completion API.
type Provider struct {
	client      *openai.Client
	model       string
	temperature float32
	log         *slog.Logger
}

// NewProvider creates a Provider. BaseURL overrides the API endpoint (for
// compatible gateways and tests).
func NewProvider(opts Options, logger *slog.Logger) *Provider {
	cfg := openai.DefaultConfig(opts.APIKey)
	if opts.BaseURL != "" {
		cfg.BaseURL = opts.BaseURL
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	cfg.HTTPClient = &http.Client{Timeout: timeout}

	model := opts.Model
	if model == "" {
		model = defaultModel
	}
	temperature := opts.Temperature
	if temperature == 0 {
		temperature = defaultTemperature
	}

	return &Provider{
		client:      openai.NewClientWithConfig(cfg),
		model:       model,
		temperature: temperature,
		log:         logger.With("adapter", "openai"),
	}
}

// Name identifies the provider in cached translations and metrics.
func (p *Provider) Name() string { return provider.NameOpenAI }

// Translate translates problem, steps and tags into target in a single call.
// The result must have the same number of steps and tags as content.
func (p *Provider) Translate(ctx context.Context, content domain.TraceContent, target domain.Locale) (domain.TraceContent, error) {
	payload, err := json.Marshal(content)
	if err != nil {
		return domain.TraceContent{}, fmt.Errorf("openai: encode content: %w", err)
	}

	system := fmt.Sprintf("You are a translator. Translate the following JSON content to %s. "+
		"Keep the JSON structure exactly the same. Only translate the text values, not the keys. "+
		"Return valid JSON only, no markdown.", target.DisplayName())

	raw, err := p.complete(ctx, system, string(payload))
	if err != nil {
		return domain.TraceContent{}, err
	}

	var out domain.TraceContent
	if err := json.Unmarshal([]byte(extractJSON(raw)), &out); err != nil {
		return domain.TraceContent{}, fmt.Errorf("openai: decode translation: %w", err)
	}
	if err := provider.CheckShape(content, out); err != nil {
		return domain.TraceContent{}, fmt.Errorf("openai: %w", err)
	}
	return out, nil
}

type batchEntry struct {
	ID string `json:"id"`
	domain.TraceContent
}

type batchDocument struct {
	Items []batchEntry `json:"items"`
}

// TranslateBatch translates several traces in one call. Items the model drops
// or returns with a different shape are absent from the result.
func (p *Provider) TranslateBatch(ctx context.Context, items []provider.BatchItem, target domain.Locale) (map[string]domain.TraceContent, error) {
	doc := batchDocument{Items: make([]batchEntry, len(items))}
	sources := make(map[string]domain.TraceContent, len(items))
	for i, it := range items {
		doc.Items[i] = batchEntry{ID: it.ID, TraceContent: it.Content}
		sources[it.ID] = it.Content
	}

	payload, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("openai: encode batch: %w", err)
	}

	system := fmt.Sprintf("You are a translator. Translate the following JSON document to %s. "+
		"Keep the structure and every \"id\" value unchanged. Translate only the problem, steps and tags values. "+
		"Return valid JSON only, no markdown.", target.DisplayName())

	raw, err := p.complete(ctx, system, string(payload))
	if err != nil {
		return nil, err
	}

	var got batchDocument
	if err := json.Unmarshal([]byte(extractJSON(raw)), &got); err != nil {
		return nil, fmt.Errorf("openai: decode batch: %w", err)
	}

	out := make(map[string]domain.TraceContent, len(got.Items))
	for _, it := range got.Items {
		src, ok := sources[it.ID]
		if !ok {
			continue
		}
		if err := provider.CheckShape(src, it.TraceContent); err != nil {
			p.log.WarnContext(ctx, "openai batch item dropped",
				slog.String("trace_id", it.ID),
				slog.String("error", err.Error()),
			)
			continue
		}
		out[it.ID] = it.TraceContent
	}
	return out, nil
}

func (p *Provider) complete(ctx context.Context, system, user string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
		Temperature: p.temperature,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	}

	start := time.Now()
	resp, err := p.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("openai: chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai: %w", provider.ErrEmptyResult)
	}
	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		return "", fmt.Errorf("openai: %w", provider.ErrEmptyResult)
	}

	p.log.DebugContext(ctx, "openai response",
		slog.String("model", p.model),
		slog.String("finish_reason", string(resp.Choices[0].FinishReason)),
		slog.Int("total_tokens", resp.Usage.TotalTokens),
		slog.Duration("duration", time.Since(start)),
	)
	return content, nil
}

// extractJSON strips a markdown code fence if the model added one anyway.
func extractJSON(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimPrefix(s, "json")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
