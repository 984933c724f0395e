package services

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

// TraceIDFunc extracts the request trace ID from a context
type TraceIDFunc func(ctx context.Context) string

// SessionLogger writes one structured record per session lifecycle event.
// Records never carry transaction details or amounts.
type SessionLogger struct {
	logger  *slog.Logger
	traceID TraceIDFunc
}

// NewSessionLogger creates a session logger. A nil logger uses slog.Default;
// a nil traceID leaves trace_id empty.
func NewSessionLogger(logger *slog.Logger, traceID TraceIDFunc) SessionLoggerInterface {
	if logger == nil {
		logger = slog.Default()
	}
	return &SessionLogger{
		logger:  logger,
		traceID: traceID,
	}
}

// LogSessionCreated logs a new session holding a freshly loaded ledger
func (sl *SessionLogger) LogSessionCreated(ctx context.Context, sessionID uuid.UUID, filename string, rows int) {
	sl.logger.InfoContext(ctx, "ledger session created",
		slog.String("event_type", "session_created"),
		slog.String("session_id", sessionID.String()),
		slog.String("filename", filename),
		slog.Int("rows", rows),
		slog.String("trace_id", sl.trace(ctx)),
	)
}

// LogLedgerReplaced logs a session whose ledger was swapped for a new file
func (sl *SessionLogger) LogLedgerReplaced(ctx context.Context, sessionID uuid.UUID, filename string, rows int) {
	sl.logger.InfoContext(ctx, "ledger replaced",
		slog.String("event_type", "ledger_replaced"),
		slog.String("session_id", sessionID.String()),
		slog.String("filename", filename),
		slog.Int("rows", rows),
		slog.String("trace_id", sl.trace(ctx)),
	)
}

// LogSessionExpired logs a session found past its TTL on read
func (sl *SessionLogger) LogSessionExpired(ctx context.Context, sessionID uuid.UUID) {
	sl.logger.InfoContext(ctx, "ledger session expired",
		slog.String("event_type", "session_expired"),
		slog.String("session_id", sessionID.String()),
		slog.String("trace_id", sl.trace(ctx)),
	)
}

func (sl *SessionLogger) LogSessionDeleted(ctx context.Context, sessionID uuid.UUID) {
	sl.logger.InfoContext(ctx, "ledger session deleted",
		slog.String("event_type", "session_deleted"),
		slog.String("session_id", sessionID.String()),
		slog.String("trace_id", sl.trace(ctx)),
	)
}

// LogExpiredSessionsPurged logs a purge pass that removed at least one session
func (sl *SessionLogger) LogExpiredSessionsPurged(ctx context.Context, count int64) {
	sl.logger.InfoContext(ctx, "expired ledger sessions purged",
		slog.String("event_type", "sessions_purged"),
		slog.Int64("count", count),
		slog.String("trace_id", sl.trace(ctx)),
	)
}

// LogSessionStoreWarning logs a session store failure that did not fail the request
func (sl *SessionLogger) LogSessionStoreWarning(ctx context.Context, operation string, errorMsg string) {
	sl.logger.WarnContext(ctx, "session store operation failed",
		slog.String("event_type", "session_store_warning"),
		slog.String("operation", operation),
		slog.String("error", errorMsg),
		slog.String("trace_id", sl.trace(ctx)),
	)
}

// LogEventPublishFailed logs an ingestion event that could not be published
func (sl *SessionLogger) LogEventPublishFailed(ctx context.Context, sessionID uuid.UUID, errorMsg string) {
	sl.logger.ErrorContext(ctx, "ledger ingested event not published",
		slog.String("event_type", "event_publish_failed"),
		slog.String("session_id", sessionID.String()),
		slog.String("error", errorMsg),
		slog.String("trace_id", sl.trace(ctx)),
	)
}

func (sl *SessionLogger) trace(ctx context.Context) string {
	if ctx == nil || sl.traceID == nil {
		return ""
	}
	return sl.traceID(ctx)
}
