package app

import (
	"log/slog"

	"github.com/WeAreTheArtMakers/mindTrace/internal/adapter/provider/fieldwise"
	"github.com/WeAreTheArtMakers/mindTrace/internal/adapter/provider/googlefree"
	"github.com/WeAreTheArtMakers/mindTrace/internal/adapter/provider/libretranslate"
	"github.com/WeAreTheArtMakers/mindTrace/internal/adapter/provider/openai"
	"github.com/WeAreTheArtMakers/mindTrace/internal/config"
	"github.com/WeAreTheArtMakers/mindTrace/internal/service/translation"
)

// buildTranslators returns the provider chain in fallback order: the
// chat-completion model, then LibreTranslate, then the free Google endpoint.
// Unconfigured providers are left out.
func buildTranslators(cfg config.TranslationConfig, logger *slog.Logger) []translation.Translator {
	var chain []translation.Translator

	if cfg.HasOpenAI() {
		chain = append(chain, openai.NewProvider(openai.Options{
			APIKey:      cfg.OpenAIAPIKey,
			BaseURL:     cfg.OpenAIBaseURL,
			Model:       cfg.OpenAIModel,
			Temperature: cfg.OpenAITemperature,
			Timeout:     cfg.RequestTimeout,
		}, logger))
	}

	if cfg.HasLibreTranslate() {
		lt := libretranslate.NewProvider(cfg.LibreTranslateURL, cfg.LibreTranslateAPIKey, cfg.RequestTimeout, logger)
		chain = append(chain, fieldwise.New(lt, cfg.FieldConcurrency))
	}

	if cfg.GoogleFreeEnabled {
		gf := googlefree.NewProviderWithURL(cfg.GoogleFreeURL, cfg.RequestTimeout, logger)
		chain = append(chain, fieldwise.New(gf, cfg.FieldConcurrency))
	}

	return chain
}
