package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"statement-analyzer/internal/config"
	"statement-analyzer/internal/database"
	"statement-analyzer/internal/events"
	"statement-analyzer/internal/handlers"
	"statement-analyzer/internal/middleware"
	"statement-analyzer/internal/repositories"
	"statement-analyzer/internal/services"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"
)

func main() {
	// .env is optional outside local development
	_ = godotenv.Load()

	cfg := config.Load()
	slog.SetDefault(newLogger(cfg))

	if err := cfg.Validate(); err != nil {
		slog.Error("Configuration validation failed", "error", err)
		os.Exit(1)
	}

	if err := run(cfg); err != nil {
		slog.Error("Server stopped with error", "error", err)
		os.Exit(1)
	}
	slog.Info("Server stopped gracefully")
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.Initialize(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := services.NewPrometheusMetrics(registry)

	publisher := newPublisher(cfg)
	defer publisher.Close()

	formatter := services.NewReportFormatter(services.NumberFormat{
		DecimalSeparator: cfg.Analysis.DecimalSeparator,
		GroupSeparator:   cfg.Analysis.GroupSeparator,
	})
	sessionService := services.NewSessionService(
		repositories.NewLedgerSessionRepository(db.DB),
		services.NewLedgerLoader(metrics),
		formatter,
		publisher,
		metrics,
		services.NewSessionLogger(slog.Default(), middleware.TraceIDFromContext),
		cfg.Session.TTL,
	)
	analysisService := services.NewAnalysisService(services.NewAggregationService(), formatter, metrics)

	rateLimiter := middleware.NewRateLimiter(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitBurst)

	e := newRouter(routerDeps{
		cfg:             cfg,
		registry:        registry,
		rateLimiter:     rateLimiter,
		sessionHandler:  handlers.NewSessionHandler(sessionService, cfg.Server.MaxUploadBytes),
		analysisHandler: handlers.NewAnalysisHandler(sessionService, analysisService, formatter, cfg.Analysis.DefaultMaxList),
		healthHandler:   handlers.NewHealthCheckHandler(db, cfg.Database.Driver),
	})

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, cfg.Server.Port),
		Handler:      e,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		slog.Info("Starting statement analyzer API",
			"addr", srv.Addr,
			"environment", cfg.Server.Environment,
			"store", cfg.Database.Driver,
			"events", cfg.EventsEnabled())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		return rateLimiter.Run(gctx)
	})

	g.Go(func() error {
		<-gctx.Done()
		slog.Info("Shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// newPublisher connects to the broker when AMQP_URL is set. A broker that
// cannot be reached at boot disables events rather than the API.
func newPublisher(cfg *config.Config) events.Publisher {
	if !cfg.EventsEnabled() {
		return events.NewNoopPublisher()
	}

	amqpPublisher, err := events.NewAMQPPublisher(cfg.AMQP.URL, cfg.AMQP.ExchangeName, cfg.AMQP.QueueName)
	if err != nil {
		slog.Error("Failed to connect to AMQP broker, ingestion events disabled", "error", err)
		return events.NewNoopPublisher()
	}

	slog.Info("Publishing ingestion events", "exchange", cfg.AMQP.ExchangeName, "queue", cfg.AMQP.QueueName)
	return events.NewGuardedPublisher(amqpPublisher, events.NewBreaker(events.DefaultBreakerConfig()))
}

// newLogger uses JSON output in production and text elsewhere
func newLogger(cfg *config.Config) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(cfg.Server.LogLevel))); err != nil {
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.IsProduction() {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}
