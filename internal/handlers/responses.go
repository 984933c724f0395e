package handlers

import (
	"log/slog"
	"net/http"

	"statement-analyzer/internal/errors"

	"github.com/labstack/echo/v4"
)

// Handlers report failures through two helpers only:
//
//   - SendError for client and domain errors (4xx), e.g.
//     SendError(c, errors.LedgerInvalidSchema, errors.WithExample(models.ExampleCSV))
//     SendError(c, errors.SessionNotFound)
//   - SendSystemError for repository and other internal failures (5xx). The
//     internal error is logged, never returned to the client.
//
// Validation errors from c.Validate are returned as-is and formatted by
// middleware.ErrorHandler.

const (
	// TraceIDContextKey is the context key for storing the trace ID
	TraceIDContextKey = "trace_id"
)

// ErrorResponse is an alias for the standardized error response type
type ErrorResponse = errors.ErrorResponse

// getTraceID extracts the trace ID from the Echo context
func getTraceID(c echo.Context) string {
	traceID, ok := c.Get(TraceIDContextKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// SendError sends a standardized error response with trace ID from context
func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.ErrorOption) error {
	traceID := getTraceID(c)
	errorResponse := errors.NewErrorResponse(code, traceID, opts...)
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

// SendSystemError wraps a system error with generic message and logs the internal error
func SendSystemError(c echo.Context, err error) error {
	traceID := getTraceID(c)
	errorResponse, internalErr := errors.WrapSystemError(err, traceID)
	slog.ErrorContext(c.Request().Context(), "Request failed with system error",
		"trace_id", traceID,
		"path", c.Request().URL.Path,
		"error", internalErr,
	)
	return c.JSON(http.StatusInternalServerError, errorResponse)
}
