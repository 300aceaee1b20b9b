package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"payment-api/internal/cache"
	"payment-api/internal/config"
	"payment-api/internal/database"
	"payment-api/internal/handlers"
	"payment-api/internal/middleware"
	"payment-api/internal/repositories"
	"payment-api/internal/services"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
)

const cachePingTimeout = 2 * time.Second

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return runServer(ctx, config.Load())
		},
	}
}

func runServer(ctx context.Context, cfg *config.Config) error {
	logger := newLogger(cfg)

	db, err := database.Initialize(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	reportCache, closeCache := newReportCache(ctx, cfg.Cache, logger)
	defer closeCache()

	txnRepo := repositories.NewTransactionRepository(db.DB)
	merchantRepo := repositories.NewMerchantRepository(db.DB)
	metrics := services.NewPrometheusMetrics()
	breaker := services.NewCircuitBreaker(services.DefaultCircuitBreakerConfig())

	h := handlers.Handlers{
		Health:   handlers.NewHealthCheckHandler(db.DB, cfg.Server.ServiceName, cfg.Server.Version),
		Merchant: handlers.NewMerchantHandler(services.NewMerchantService(merchantRepo, metrics, logger)),
		Transaction: handlers.NewTransactionHandler(
			services.NewTransactionService(txnRepo, metrics, logger, cfg.Summary.Currency),
		),
		Report: handlers.NewReportHandler(
			services.NewReportService(txnRepo, reportCache, breaker, metrics, logger, cfg.Reports.DefaultWindowDays),
		),
	}

	limiter := middleware.NewIPRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
	go limiter.Run(ctx)

	e := newEcho(cfg, logger, limiter)
	handlers.RegisterRoutes(e, h)

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting HTTP server", "address", cfg.Server.Address(), "environment", cfg.Server.Environment)
		if err := e.Start(cfg.Server.Address()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down HTTP server", "timeout", cfg.Server.ShutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	return nil
}

func newEcho(cfg *config.Config, logger *slog.Logger, limiter *middleware.IPRateLimiter) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLogger(logger, middleware.NewHTTPMetrics(prometheus.DefaultRegisterer)))
	e.Use(middleware.PanicRecovery(logger))
	e.Use(middleware.SecurityHeaders())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderContentType, middleware.TraceIDHeader, middleware.RequestIDHeader},
	}))
	e.Use(echomw.BodyLimit("1M"))
	e.Use(middleware.RateLimiter(limiter))

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	return e
}

// newReportCache connects the redis report cache when enabled. An unreachable server
// is only logged; the report service's circuit breaker keeps requests off it.
func newReportCache(ctx context.Context, cfg config.CacheConfig, logger *slog.Logger) (services.ReportCacheInterface, func()) {
	if !cfg.Enabled {
		logger.Info("report cache disabled")
		return cache.NoopCache{}, func() {}
	}

	redisCache := cache.NewRedisCache(cfg)

	pingCtx, cancel := context.WithTimeout(ctx, cachePingTimeout)
	defer cancel()
	if err := redisCache.Ping(pingCtx); err != nil {
		logger.Warn("report cache unreachable at startup", "addr", cfg.Addr, "error", err)
	} else {
		logger.Info("report cache connected", "addr", cfg.Addr, "ttl", cfg.TTL)
	}

	return redisCache, func() {
		if err := redisCache.Close(); err != nil {
			logger.Warn("failed to close report cache", "error", err)
		}
	}
}
