package main

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	httpAdapter "github.com/iho/fintrack/internal/adapter/http"
	"github.com/iho/fintrack/internal/adapter/http/handler"
	"github.com/iho/fintrack/internal/adapter/http/middleware"
	"github.com/iho/fintrack/internal/adapter/idgen"
	"github.com/iho/fintrack/internal/adapter/notifier"
	"github.com/iho/fintrack/internal/adapter/repository/kv"
	"github.com/iho/fintrack/internal/infrastructure/config"
	"github.com/iho/fintrack/internal/infrastructure/logger"
	"github.com/iho/fintrack/internal/infrastructure/metrics"
	"github.com/iho/fintrack/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Setup logger
	log.Logger = logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	zerolog.DefaultContextLogger = &log.Logger

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		log.Fatal().Err(err).Msg("server failed")
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	// Metrics
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.NewWithRegisterer(reg)

	// Storage
	connectCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout+5*time.Second)
	store, err := openStorage(connectCtx, cfg)
	cancel()
	if err != nil {
		return fmt.Errorf("open %s storage: %w", cfg.StorageBackend, err)
	}
	defer store.Close()

	// Notifications
	notify, closeNotify := buildNotifier(cfg)
	defer closeNotify()

	// Use cases
	repo := kv.NewTransactionRepository(store.store, cfg.StorageKey, m)
	txUC := usecase.NewTransactionUseCase(repo, idgen.NewULIDGenerator(), usecase.SystemClock{}, notify, m)
	txUC.Start(ctx)
	summaryUC := usecase.NewSummaryUseCase(txUC, usecase.SystemClock{})

	// HTTP
	routerCfg := httpAdapter.RouterConfig{
		TransactionHandler: handler.NewTransactionHandler(txUC),
		SummaryHandler:     handler.NewSummaryHandler(summaryUC),
		HealthHandler:      handler.NewHealthHandler(cfg.StorageBackend, store.store),
		IdempotencyStore:   store.idempotency,
		IdempotencyTTL:     cfg.IdempotencyTTL,
		HTTPMetrics:        middleware.NewHTTPMetrics(reg),
		Gatherer:           reg,
	}
	if cfg.RateLimitRPS > 0 {
		rl := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
		go rl.RunCleanup(ctx, 10*time.Minute, time.Hour)
		routerCfg.RateLimiter = rl
	}

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      httpAdapter.NewRouter(routerCfg),
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.HTTPPort).Str("storage", cfg.StorageBackend).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info().Msg("server stopped")
	return nil
}

// buildNotifier always logs notifications and also publishes them over
// AMQP when a broker URL is configured. A broker that cannot be reached
// at startup is logged and skipped.
func buildNotifier(cfg *config.Config) (usecase.Notifier, func()) {
	targets := notifier.Multi{notifier.NewLogNotifier(log.Logger)}
	closeFn := func() {}

	if cfg.AMQPURL == "" {
		return targets, closeFn
	}

	amqpNotifier, err := notifier.DialAMQP(cfg.AMQPURL, cfg.AMQPExchange)
	if err != nil {
		log.Warn().Err(err).Msg("AMQP notifications disabled")
		return targets, closeFn
	}
	log.Info().Str("exchange", cfg.AMQPExchange).Msg("publishing notifications over AMQP")

	return append(targets, amqpNotifier), func() {
		if err := amqpNotifier.Close(); err != nil {
			log.Warn().Err(err).Msg("failed to close AMQP connection")
		}
	}
}
