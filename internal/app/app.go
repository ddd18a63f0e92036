package app

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/WeAreTheArtMakers/mindTrace/internal/adapter/postgres"
	analyticsrepo "github.com/WeAreTheArtMakers/mindTrace/internal/adapter/postgres/analytics"
	reactionrepo "github.com/WeAreTheArtMakers/mindTrace/internal/adapter/postgres/reaction"
	tracerepo "github.com/WeAreTheArtMakers/mindTrace/internal/adapter/postgres/trace"
	translationrepo "github.com/WeAreTheArtMakers/mindTrace/internal/adapter/postgres/translation"
	"github.com/WeAreTheArtMakers/mindTrace/internal/config"
	"github.com/WeAreTheArtMakers/mindTrace/internal/service/analytics"
	"github.com/WeAreTheArtMakers/mindTrace/internal/service/reaction"
	"github.com/WeAreTheArtMakers/mindTrace/internal/service/trace"
	"github.com/WeAreTheArtMakers/mindTrace/internal/service/translation"
	"github.com/WeAreTheArtMakers/mindTrace/internal/transport/middleware"
	"github.com/WeAreTheArtMakers/mindTrace/internal/transport/rest"
)

// Run is the server entry point. It loads configuration, connects to the
// database, assembles services and serves HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.AutoMigrate {
		if err := postgres.EnsureSchema(ctx, pool, logger); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	traces := tracerepo.New(pool)
	reactions := reactionrepo.New(pool)
	translations := translationrepo.New(pool)
	events := analyticsrepo.New(pool)

	traceSvc := trace.NewService(logger, traces, reactions, cfg.Search)
	reactionSvc := reaction.NewService(logger, reactions)
	analyticsSvc := analytics.NewService(logger, events, cfg.Analytics)
	translationSvc := translation.NewService(logger, traces, translations, buildTranslators(cfg.Translation, logger), cfg.Translation)

	logger.Info("translation chain ready", slog.Any("providers", translationSvc.Providers()))

	var limiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		limiter = middleware.NewRateLimiter(cfg.RateLimit.WritesPerMinute, cfg.RateLimit.Burst, cfg.RateLimit.CleanupInterval)
		defer limiter.Stop()
	}

	handler := newHandler(cfg, logger, rest.Handlers{
		Trace:       rest.NewTraceHandler(traceSvc, logger),
		Reaction:    rest.NewReactionHandler(reactionSvc, logger),
		Translation: rest.NewTranslationHandler(translationSvc, logger),
		Analytics:   rest.NewAnalyticsHandler(analyticsSvc, logger),
		Health:      rest.NewHealthHandler(pool, BuildVersion(), translationSvc.Providers()),
	}, limiter, prometheus.DefaultRegisterer)

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return serve(ctx, srv, cfg.Server.ShutdownTimeout, logger)
}

// newHandler mounts the route table and wraps it in the middleware chain.
// Metrics sits innermost so it sees the matched route pattern.
func newHandler(cfg *config.Config, logger *slog.Logger, h rest.Handlers, limiter *middleware.RateLimiter, reg prometheus.Registerer) http.Handler {
	opts := rest.RouterOptions{}
	if limiter != nil {
		opts.WriteLimit = limiter.Limit()
	}
	if cfg.Metrics.Enabled {
		opts.Metrics = promhttp.Handler()
		opts.MetricsPath = cfg.Metrics.Path
	}

	mux := rest.NewRouter(h, opts)

	return middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.ClientIP(cfg.Server.TrustProxy),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		middleware.Metrics(reg),
	)(mux)
}
