package services

import (
	"context"
	"time"

	"statement-analyzer/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LedgerLoaderInterface turns an uploaded statement into a validated ledger
type LedgerLoaderInterface interface {
	// Load parses content as a CSV statement. filename must end in .csv.
	Load(ctx context.Context, filename string, content []byte) (models.Ledger, error)
}

// AggregationServiceInterface groups transactions by counterparty
type AggregationServiceInterface interface {
	GroupByCounterparty(ledger models.Ledger) ([]models.DuplicateGroup, error)
	TopRepeatTransactions(ledger models.Ledger, maxList int) ([]models.RepeatTransaction, error)
	TopSinglePayments(ledger models.Ledger, maxList int) (*models.SinglePayments, error)
}

// ReportFormatterInterface computes totals and renders the summary text
type ReportFormatterInterface interface {
	CalculateTotals(ledger models.Ledger) (totalIn, totalOut decimal.Decimal)
	Summarize(ledger models.Ledger, direction models.Direction, savingsKeywords []string) (*models.SummaryReport, error)
}

// AnalysisServiceInterface is the single entry point for one analysis pass
type AnalysisServiceInterface interface {
	// Analyze applies criteria to ledger and builds every derived view
	Analyze(ledger models.Ledger, criteria models.FilterCriteria) (*models.AnalysisResult, error)
	// FilterTransactions returns the fully filtered sequence used for charting
	FilterTransactions(ledger models.Ledger, criteria models.FilterCriteria) models.Ledger
}

// SessionServiceInterface manages session-scoped ledgers
type SessionServiceInterface interface {
	CreateSession(ctx context.Context, filename string, content []byte) (*models.LedgerSession, error)
	ReplaceLedger(ctx context.Context, sessionID uuid.UUID, filename string, content []byte) (*models.LedgerSession, error)
	GetSession(ctx context.Context, sessionID uuid.UUID) (*models.LedgerSession, error)
	GetLedger(ctx context.Context, sessionID uuid.UUID) (models.Ledger, error)
	DeleteSession(ctx context.Context, sessionID uuid.UUID) error
}

// EventPublisherInterface announces ingested ledgers to other systems
type EventPublisherInterface interface {
	PublishLedgerIngested(ctx context.Context, event *models.LedgerIngestedEvent) error
	Close() error
}

// SessionLoggerInterface writes structured session lifecycle records
type SessionLoggerInterface interface {
	LogSessionCreated(ctx context.Context, sessionID uuid.UUID, filename string, rows int)
	LogLedgerReplaced(ctx context.Context, sessionID uuid.UUID, filename string, rows int)
	LogSessionExpired(ctx context.Context, sessionID uuid.UUID)
	LogSessionDeleted(ctx context.Context, sessionID uuid.UUID)
	LogExpiredSessionsPurged(ctx context.Context, count int64)
	LogSessionStoreWarning(ctx context.Context, operation string, errorMsg string)
	LogEventPublishFailed(ctx context.Context, sessionID uuid.UUID, errorMsg string)
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

// TransactionGeneratorInterface generates synthetic statements for demos and tests
type TransactionGeneratorInterface interface {
	GenerateLedger(startDate, endDate time.Time, count int) models.Ledger
	GetCounterpartyPool() []string
	SelectRandomCounterparty() string
	GenerateAmount() decimal.Decimal
	GenerateDate(startDate, endDate time.Time) time.Time
}
