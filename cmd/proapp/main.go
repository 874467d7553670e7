package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/proapp/handler"
	"github.com/dmitrymomot/proapp/locales"
	"github.com/dmitrymomot/proapp/modules/forms"
	"github.com/dmitrymomot/proapp/modules/pages"
	"github.com/dmitrymomot/proapp/pkg/clientip"
	"github.com/dmitrymomot/proapp/pkg/config"
	"github.com/dmitrymomot/proapp/pkg/environment"
	"github.com/dmitrymomot/proapp/pkg/httpserver"
	"github.com/dmitrymomot/proapp/pkg/i18n"
	"github.com/dmitrymomot/proapp/pkg/logger"
	"github.com/dmitrymomot/proapp/pkg/ratelimiter"
	"github.com/dmitrymomot/proapp/pkg/redis"
	"github.com/dmitrymomot/proapp/pkg/requestid"
	"github.com/dmitrymomot/proapp/pkg/session"
	"github.com/dmitrymomot/proapp/pkg/submission"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		slog.Error("proapp stopped", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	var cfg appConfig
	if err := config.Load(&cfg); err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	env := environment.Parse(cfg.Env)
	log := logger.New(
		logger.WithEnvironment(cfg.Env, cfg.Name),
		logger.WithLevelName(cfg.LogLevel),
		logger.WithContextExtractors(
			requestid.LoggerExtractor(),
			environment.LoggerExtractor(),
			clientip.LoggerExtractor(),
		),
	)
	logger.SetAsDefault(log)

	translator, err := i18n.NewTranslator(ctx, i18n.NewFSAdapter(locales.FS),
		i18n.WithDefaultLanguage(cfg.DefaultLanguage),
		i18n.WithLogger(log),
		i18n.WithMissingTranslationsLogging(env.IsDevelopment()),
	)
	if err != nil {
		return fmt.Errorf("load translations: %w", err)
	}

	var checks []httpserver.Check
	var store session.FlagStore
	switch cfg.Session.Store {
	case storeRedis:
		client, err := redis.Connect(ctx, cfg.Redis)
		if err != nil {
			return fmt.Errorf("connect redis: %w", err)
		}
		defer client.Close()
		store = session.NewRedisStore(client, cfg.Session.RedisKeyPrefix, cfg.Session.TTL)
		checks = append(checks, httpserver.Check{Name: "redis", Fn: redis.Healthcheck(client)})
	case storeMemory, "":
		store = session.NewMemoryStore()
	default:
		return fmt.Errorf("unknown session store %q", cfg.Session.Store)
	}

	if err := cfg.Forms.Validate(); err != nil {
		return err
	}
	registry := forms.NewRegistry(
		forms.WithIdleTTL(cfg.Forms.IdleTTL),
		forms.WithLogger(log),
		forms.WithFlowOptions(
			submission.WithDelays(cfg.Delays),
			submission.WithTranslator(translator),
		),
	)

	views := pages.NewViews(translator)
	errorHandler := handler.NewErrorHandler(log, handler.ErrorHandlerConfig{
		ErrorPage:  views.ErrorPage,
		ErrorToast: views.ErrorToast,
	})

	limiter, err := ratelimiter.NewBucket(ratelimiter.NewMemoryStore(), cfg.Limit)
	if err != nil {
		return fmt.Errorf("submit rate limit: %w", err)
	}

	formsSvc := forms.NewService(cfg.Forms, registry, errorHandler, log, forms.WithSubmitLimiter(limiter))
	pagesSvc := pages.NewService(views, store,
		pages.WithErrorHandler(errorHandler),
		pages.WithLogger(log),
		pages.WithLogoutHook(func(ctx context.Context, sid string) {
			n := registry.Forget(ctx, sid)
			log.DebugContext(ctx, "session forms dropped", logger.SessionID(sid), slog.Int("forms", n))
		}),
	)

	r := chi.NewRouter()
	r.Use(
		requestid.Middleware,
		clientip.Middleware,
		environment.Middleware(env),
		i18n.Middleware(translator),
		session.Middleware(cfg.Session),
	)
	r.Get("/healthz", httpserver.HealthCheckHandler(log))
	r.Get("/readyz", httpserver.HealthCheckHandler(log, checks...))
	r.Mount("/forms", formsSvc.Handle())
	r.Mount("/", pagesSvc.Handle())

	log.InfoContext(ctx, "starting proapp",
		slog.String("addr", cfg.HTTP.Addr),
		slog.String("session_store", cfg.Session.Store),
		logger.Language(translator.DefaultLanguage()),
	)

	return httpserver.New(cfg.HTTP, log).Run(ctx, r)
}
