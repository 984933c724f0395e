package main

import (
	"log/slog"
	"strconv"

	"statement-analyzer/internal/config"
	"statement-analyzer/internal/handlers"
	"statement-analyzer/internal/middleware"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// uploads arrive as multipart or base64 data URLs, both larger than the file
const bodyLimitFactor = 2

type routerDeps struct {
	cfg             *config.Config
	registry        *prometheus.Registry
	rateLimiter     *middleware.RateLimiter
	sessionHandler  *handlers.SessionHandler
	analysisHandler *handlers.AnalysisHandler
	healthHandler   *handlers.HealthCheckHandler
}

func newRouter(deps routerDeps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.NewErrorHandler(deps.registry).Handle

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(requestLogger())
	e.Use(middleware.SecurityHeaders())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:  deps.cfg.Server.CORSAllowOrigins,
		AllowMethods:  []string{echo.GET, echo.POST, echo.PUT, echo.DELETE, echo.OPTIONS},
		AllowHeaders:  []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, middleware.TraceIDHeader},
		ExposeHeaders: []string{middleware.TraceIDHeader, echo.HeaderContentDisposition},
	}))
	e.Use(echomw.BodyLimit(strconv.FormatInt(deps.cfg.Server.MaxUploadBytes*bodyLimitFactor, 10)))

	e.GET("/health", deps.healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(deps.registry, promhttp.HandlerOpts{})))
	e.GET("/sample.csv", deps.analysisHandler.SampleCSV)

	api := e.Group("/api/v1")
	if deps.rateLimiter != nil {
		api.Use(deps.rateLimiter.Middleware())
	}

	sessions := api.Group("/sessions")
	sessions.POST("", deps.sessionHandler.CreateSession)
	sessions.GET("/:sessionId", deps.sessionHandler.GetSession)
	sessions.DELETE("/:sessionId", deps.sessionHandler.DeleteSession)
	sessions.PUT("/:sessionId/ledger", deps.sessionHandler.ReplaceLedger)
	sessions.POST("/:sessionId/analysis", deps.analysisHandler.Analyze)
	sessions.GET("/:sessionId/summary", deps.analysisHandler.Summary)
	sessions.GET("/:sessionId/transactions", deps.analysisHandler.Transactions)

	return e
}

func requestLogger() echo.MiddlewareFunc {
	return echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogMethod:   true,
		LogURIPath:  true,
		LogStatus:   true,
		LogLatency:  true,
		LogRemoteIP: true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			slog.InfoContext(c.Request().Context(), "HTTP request",
				"trace_id", middleware.GetTraceID(c),
				"method", v.Method,
				"path", v.URIPath,
				"status", v.Status,
				"latency_ms", v.Latency.Milliseconds(),
				"remote_ip", v.RemoteIP,
			)
			return nil
		},
	})
}
