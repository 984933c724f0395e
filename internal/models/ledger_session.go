package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var ErrInvalidSessionFilename = errors.New("session filename is required")

// LedgerSession is the header of a session-scoped ledger. A session holds
// exactly one ledger, replaced wholesale on every ingest.
type LedgerSession struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Filename  string    `gorm:"type:varchar(255);not null" json:"filename"`
	RowCount  int       `gorm:"not null;default:0" json:"row_count"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
	ExpiresAt time.Time `gorm:"not null;index" json:"expires_at"`
}

// BeforeCreate hook for LedgerSession
func (s *LedgerSession) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}

	now := time.Now().UTC()
	if s.CreatedAt.IsZero() {
		s.CreatedAt = now
	}
	if s.UpdatedAt.IsZero() {
		s.UpdatedAt = now
	}

	return s.Validate()
}

// Validate validates the session header
func (s *LedgerSession) Validate() error {
	if s.Filename == "" {
		return ErrInvalidSessionFilename
	}
	return nil
}

// IsExpired reports whether the session has outlived its TTL at now
func (s *LedgerSession) IsExpired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}

// LedgerEntry is the stored form of one ledger transaction
type LedgerEntry struct {
	ID        uint            `gorm:"primaryKey;autoIncrement" json:"-"`
	SessionID uuid.UUID       `gorm:"type:uuid;not null;index:idx_ledger_entries_session_position,priority:1" json:"session_id"`
	Position  int             `gorm:"not null;index:idx_ledger_entries_session_position,priority:2" json:"position"`
	Date      time.Time       `gorm:"type:date;not null" json:"date"`
	Details   string          `gorm:"type:text;not null" json:"details"`
	Amount    decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
}

// NewLedgerEntries converts a ledger into its stored rows
func NewLedgerEntries(sessionID uuid.UUID, ledger Ledger) []LedgerEntry {
	entries := make([]LedgerEntry, len(ledger))
	for i, txn := range ledger {
		entries[i] = LedgerEntry{
			SessionID: sessionID,
			Position:  i,
			Date:      txn.Date,
			Details:   txn.Details,
			Amount:    txn.Amount,
		}
	}
	return entries
}

// Transaction converts a stored row back into a ledger transaction
func (e LedgerEntry) Transaction() Transaction {
	return NewTransaction(e.Date, e.Details, e.Amount)
}

// LedgerIngestedEvent is published after a ledger has been stored
type LedgerIngestedEvent struct {
	SessionID  uuid.UUID       `json:"session_id"`
	Filename   string          `json:"filename"`
	RowCount   int             `json:"row_count"`
	TotalIn    decimal.Decimal `json:"total_in"`
	TotalOut   decimal.Decimal `json:"total_out"`
	Replaced   bool            `json:"replaced"`
	OccurredAt time.Time       `json:"occurred_at"`
}
