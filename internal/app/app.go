package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/UAlbertaALTLab/recording-validation-interface-sub000/internal/auth"
	"github.com/UAlbertaALTLab/recording-validation-interface-sub000/internal/config"
	"github.com/UAlbertaALTLab/recording-validation-interface-sub000/internal/observe"
	"github.com/UAlbertaALTLab/recording-validation-interface-sub000/internal/transport/middleware"
	"github.com/UAlbertaALTLab/recording-validation-interface-sub000/internal/transport/rest"
)

const rateLimitCleanup = time.Minute

// Run is the server entry point. It loads configuration, connects to the
// database, serves the HTTP API and shuts down gracefully on SIGINT or
// SIGTERM.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting server",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	lc := NewLifecycle(cfg.Server.ShutdownTimeout)

	metrics := observe.Default()
	var metricsHandler http.Handler
	if cfg.Metrics.Enabled {
		provider, err := observe.InitProvider(cfg.Metrics.ServiceName, Version)
		if err != nil {
			return fmt.Errorf("init metrics: %w", err)
		}
		lc.AddShutdownHook(provider.Shutdown)
		metrics = provider.Metrics
		metricsHandler = provider.Handler()
	}

	deps, err := Connect(ctx, cfg.Database, metrics, logger)
	if err != nil {
		_ = lc.Shutdown(ctx)
		return fmt.Errorf("connect to database: %w", err)
	}
	lc.AddShutdownHook(func(context.Context) error {
		deps.Close()
		return nil
	})

	limiter := middleware.NewRateLimiter(rateLimitCleanup)
	lc.AddShutdownHook(func(context.Context) error {
		limiter.Stop()
		return nil
	})

	handler := NewHandler(cfg, deps, logger, HandlerOptions{
		RateLimiter: limiter,
		Metrics:     metricsHandler,
	})

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}
	lc.AddShutdownHook(func(ctx context.Context) error {
		logger.Info("shutting down server")
		return srv.Shutdown(ctx)
	})

	return lc.Run(ctx, func(context.Context) error {
		logger.Info("listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	})
}

// HandlerOptions are the optional parts of the HTTP handler.
type HandlerOptions struct {
	// RateLimiter limits the public endpoints. Nil disables limiting.
	RateLimiter *middleware.RateLimiter
	// Metrics serves /metrics when set.
	Metrics http.Handler
}

// NewHandler builds the HTTP handler of the server with its middleware.
// The admin endpoints are mounted only when operator authentication is
// configured.
func NewHandler(cfg *config.Config, deps *Deps, logger *slog.Logger, opts HandlerOptions) http.Handler {
	handlers := rest.Handlers{
		Lookup: rest.NewLookupHandler(deps.LookupService(cfg.Lookup), cfg.Lookup.RequestTimeout, logger),
		Stats:  rest.NewStatsHandler(deps.StatsService(), logger),
		Health: rest.NewHealthHandler(BuildVersion(), rest.Check{
			Name:     "postgres",
			Critical: true,
			Probe:    deps.Pool.Ping,
		}),
		Metrics: opts.Metrics,
	}
	if dir := cfg.Import.BlobDir; dir != "" {
		handlers.Audio = http.FileServerFS(os.DirFS(dir))
	}

	var routes rest.RouterOptions
	if opts.RateLimiter != nil {
		routes.Public = opts.RateLimiter.Limit(cfg.Server.RateLimit)
	}

	// Auth must wrap Logger for request logs to carry the operator.
	authenticate := func(next http.Handler) http.Handler { return next }
	if cfg.Auth.Enabled() {
		authenticate = middleware.Auth(auth.NewTokens(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer))
		handlers.Admin = rest.NewAdminHandler(deps.MergeService(), logger)
		routes.Operator = middleware.RequireOperator
	} else {
		logger.Warn("auth.jwt_secret not set, admin endpoints disabled")
	}

	mux := rest.NewRouter(handlers, routes)

	return middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
		authenticate,
		middleware.Logger(logger),
		observe.Middleware(deps.Metrics),
	)(mux)
}
