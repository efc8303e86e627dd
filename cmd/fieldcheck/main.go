// Command fieldcheck serves the customer form with live field validation.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/fieldcheck/modules/fieldcheck"
	"github.com/dmitrymomot/fieldcheck/pkg/clientip"
	"github.com/dmitrymomot/fieldcheck/pkg/config"
	"github.com/dmitrymomot/fieldcheck/pkg/environment"
	"github.com/dmitrymomot/fieldcheck/pkg/httpserver"
	"github.com/dmitrymomot/fieldcheck/pkg/livecheck"
	"github.com/dmitrymomot/fieldcheck/pkg/logger"
	"github.com/dmitrymomot/fieldcheck/pkg/ratelimiter"
	"github.com/dmitrymomot/fieldcheck/pkg/requestid"
)

type AppConfig struct {
	Env      environment.Environment `env:"APP_ENV" envDefault:"development"`
	Name     string                  `env:"APP_NAME" envDefault:"fieldcheck"`
	LogLevel string                  `env:"LOG_LEVEL"`
}

type Config struct {
	App       AppConfig
	HTTP      httpserver.Config
	Check     livecheck.Config
	ClientIP  clientip.Config
	RateLimit ratelimiter.Config
}

func main() {
	cfg, err := config.Load[Config]()
	if err != nil {
		slog.Error("failed to load config", logger.Error(err))
		os.Exit(1)
	}

	log := logger.New(
		logger.WithLevelName(cfg.App.LogLevel),
		logger.WithEnvironment(cfg.App.Env, cfg.App.Name),
		logger.WithContextExtractors(
			requestid.LoggerExtractor(),
			environment.LoggerExtractor(),
			clientip.LoggerExtractor(),
		),
	)
	logger.SetAsDefault(log)

	if err := run(context.Background(), cfg, log); err != nil {
		log.Error("server exited", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg Config, log *slog.Logger) error {
	store := ratelimiter.NewMemoryStore()
	defer store.Close()

	limiter, err := ratelimiter.NewBucket(store, cfg.RateLimit)
	if err != nil {
		return err
	}

	svc := fieldcheck.NewService(cfg.Check,
		fieldcheck.WithLogger(log),
		fieldcheck.WithRateLimiter(limiter, clientip.Key),
	)

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer,
		requestid.Middleware,
		clientip.Middleware(clientip.NewFromConfig(cfg.ClientIP)),
		environment.Middleware(cfg.App.Env),
	)
	r.Mount("/", svc.Handle())

	log.Info("live validation configured",
		slog.Duration("debounce", cfg.Check.Debounce),
		slog.Any("national_id_fields", cfg.Check.NationalIDFields),
		slog.Any("plate_fields", cfg.Check.PlateFields),
	)

	return httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log)).Run(ctx, r)
}
