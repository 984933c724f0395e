package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"statement-analyzer/internal/models"
	"statement-analyzer/internal/repositories"

	"github.com/google/uuid"
)

const DefaultSessionTTL = 2 * time.Hour

var (
	ErrSessionNotFound = errors.New("session not found")
)

type sessionService struct {
	repo      repositories.LedgerSessionRepositoryInterface
	loader    LedgerLoaderInterface
	formatter ReportFormatterInterface
	publisher EventPublisherInterface
	metrics   MetricsRecorderInterface
	logger    SessionLoggerInterface
	ttl       time.Duration
	now       func() time.Time
}

// NewSessionService creates a new session service. Sessions expire ttl after
// their last ingest; a non-positive ttl uses DefaultSessionTTL. A nil logger
// logs to slog.Default.
func NewSessionService(
	repo repositories.LedgerSessionRepositoryInterface,
	loader LedgerLoaderInterface,
	formatter ReportFormatterInterface,
	publisher EventPublisherInterface,
	metrics MetricsRecorderInterface,
	logger SessionLoggerInterface,
	ttl time.Duration,
) SessionServiceInterface {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	if logger == nil {
		logger = NewSessionLogger(nil, nil)
	}
	return &sessionService{
		repo:      repo,
		loader:    loader,
		formatter: formatter,
		publisher: publisher,
		metrics:   metrics,
		logger:    logger,
		ttl:       ttl,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// CreateSession loads a statement into a new session
func (s *sessionService) CreateSession(ctx context.Context, filename string, content []byte) (*models.LedgerSession, error) {
	ledger, err := s.loader.Load(ctx, filename, content)
	if err != nil {
		return nil, err
	}

	s.purgeExpired(ctx)

	now := s.now()
	session := &models.LedgerSession{
		ID:        uuid.New(),
		Filename:  filename,
		CreatedAt: now,
		UpdatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}

	if err := s.repo.ReplaceLedger(session, ledger); err != nil {
		return nil, fmt.Errorf("failed to store ledger: %w", err)
	}

	s.incrementCounter("session.created")
	s.logger.LogSessionCreated(ctx, session.ID, filename, len(ledger))

	s.publishIngested(ctx, session, ledger, false)
	return session, nil
}

// ReplaceLedger swaps the ledger held by an existing session. The old ledger
// stays in place if the new file fails to load.
func (s *sessionService) ReplaceLedger(ctx context.Context, sessionID uuid.UUID, filename string, content []byte) (*models.LedgerSession, error) {
	session, err := s.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	ledger, err := s.loader.Load(ctx, filename, content)
	if err != nil {
		return nil, err
	}

	session.Filename = filename
	session.ExpiresAt = s.now().Add(s.ttl)

	if err := s.repo.ReplaceLedger(session, ledger); err != nil {
		return nil, fmt.Errorf("failed to replace ledger: %w", err)
	}

	s.incrementCounter("session.replaced")
	s.logger.LogLedgerReplaced(ctx, session.ID, filename, len(ledger))

	s.publishIngested(ctx, session, ledger, true)
	return session, nil
}

// GetSession returns an unexpired session header
func (s *sessionService) GetSession(ctx context.Context, sessionID uuid.UUID) (*models.LedgerSession, error) {
	session, err := s.repo.GetByID(sessionID)
	if err != nil {
		if errors.Is(err, repositories.ErrLedgerSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	if session.IsExpired(s.now()) {
		if err := s.repo.Delete(sessionID); err != nil && !errors.Is(err, repositories.ErrLedgerSessionNotFound) {
			s.logger.LogSessionStoreWarning(ctx, "delete_expired_session", err.Error())
		}
		s.incrementCounter("session.expired")
		s.logger.LogSessionExpired(ctx, sessionID)
		return nil, ErrSessionNotFound
	}

	return session, nil
}

// GetLedger returns the ledger held by an unexpired session
func (s *sessionService) GetLedger(ctx context.Context, sessionID uuid.UUID) (models.Ledger, error) {
	if _, err := s.GetSession(ctx, sessionID); err != nil {
		return nil, err
	}

	ledger, err := s.repo.GetLedger(sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get ledger: %w", err)
	}

	return ledger, nil
}

// DeleteSession drops a session and its ledger
func (s *sessionService) DeleteSession(ctx context.Context, sessionID uuid.UUID) error {
	if err := s.repo.Delete(sessionID); err != nil {
		if errors.Is(err, repositories.ErrLedgerSessionNotFound) {
			return ErrSessionNotFound
		}
		return fmt.Errorf("failed to delete session: %w", err)
	}

	s.incrementCounter("session.deleted")
	s.logger.LogSessionDeleted(ctx, sessionID)
	return nil
}

func (s *sessionService) purgeExpired(ctx context.Context) {
	deleted, err := s.repo.DeleteExpired(s.now())
	if err != nil {
		s.logger.LogSessionStoreWarning(ctx, "purge_expired_sessions", err.Error())
		return
	}
	if deleted > 0 {
		s.logger.LogExpiredSessionsPurged(ctx, deleted)
	}
}

func (s *sessionService) publishIngested(ctx context.Context, session *models.LedgerSession, ledger models.Ledger, replaced bool) {
	if s.publisher == nil {
		return
	}

	totalIn, totalOut := s.formatter.CalculateTotals(ledger)
	event := &models.LedgerIngestedEvent{
		SessionID:  session.ID,
		Filename:   session.Filename,
		RowCount:   len(ledger),
		TotalIn:    totalIn,
		TotalOut:   totalOut,
		Replaced:   replaced,
		OccurredAt: s.now(),
	}

	if err := s.publisher.PublishLedgerIngested(ctx, event); err != nil {
		s.incrementCounter("event.failed")
		s.logger.LogEventPublishFailed(ctx, session.ID, err.Error())
		return
	}
	s.incrementCounter("event.published")
}

func (s *sessionService) incrementCounter(name string) {
	if s.metrics != nil {
		s.metrics.IncrementCounter(name, nil)
	}
}
