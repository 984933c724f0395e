package repositories

import (
	"time"

	"statement-analyzer/internal/models"

	"github.com/google/uuid"
)

// LedgerSessionRepositoryInterface defines the contract for session-scoped ledger storage
type LedgerSessionRepositoryInterface interface {
	// ReplaceLedger upserts the session header and swaps its entries atomically
	ReplaceLedger(session *models.LedgerSession, ledger models.Ledger) error
	GetByID(id uuid.UUID) (*models.LedgerSession, error)
	GetLedger(id uuid.UUID) (models.Ledger, error)
	Delete(id uuid.UUID) error
	DeleteExpired(now time.Time) (int64, error)
}
