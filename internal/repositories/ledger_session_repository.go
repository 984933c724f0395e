package repositories

import (
	"errors"
	"fmt"
	"time"

	"statement-analyzer/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const entryBatchSize = 500

var (
	ErrLedgerSessionNotFound = errors.New("ledger session not found")
)

// LedgerSessionRepository handles database operations for session ledgers
type LedgerSessionRepository struct {
	db *gorm.DB
}

// NewLedgerSessionRepository creates a new ledger session repository
func NewLedgerSessionRepository(db *gorm.DB) LedgerSessionRepositoryInterface {
	return &LedgerSessionRepository{
		db: db,
	}
}

// ReplaceLedger stores session and its ledger in one transaction. Existing
// entries of the session are removed first, so a session never mixes rows
// from two files.
func (r *LedgerSessionRepository) ReplaceLedger(session *models.LedgerSession, ledger models.Ledger) error {
	if session == nil {
		return errors.New("ledger session cannot be nil")
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		session.RowCount = len(ledger)
		session.UpdatedAt = time.Now().UTC()

		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"filename", "row_count", "updated_at", "expires_at"}),
		}).Create(session).Error; err != nil {
			return fmt.Errorf("failed to save ledger session: %w", err)
		}

		if err := tx.Where("session_id = ?", session.ID).Delete(&models.LedgerEntry{}).Error; err != nil {
			return fmt.Errorf("failed to clear ledger entries: %w", err)
		}

		if len(ledger) == 0 {
			return nil
		}

		entries := models.NewLedgerEntries(session.ID, ledger)
		if err := tx.CreateInBatches(entries, entryBatchSize).Error; err != nil {
			return fmt.Errorf("failed to store ledger entries: %w", err)
		}

		return nil
	})
}

// GetByID retrieves a session header by its ID
func (r *LedgerSessionRepository) GetByID(id uuid.UUID) (*models.LedgerSession, error) {
	var session models.LedgerSession
	if err := r.db.Where("id = ?", id).First(&session).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLedgerSessionNotFound
		}
		return nil, fmt.Errorf("failed to get ledger session: %w", err)
	}

	return &session, nil
}

// GetLedger returns the session's transactions in file order
func (r *LedgerSessionRepository) GetLedger(id uuid.UUID) (models.Ledger, error) {
	var entries []models.LedgerEntry
	if err := r.db.Where("session_id = ?", id).Order("position ASC").Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to get ledger entries: %w", err)
	}

	ledger := make(models.Ledger, len(entries))
	for i, entry := range entries {
		ledger[i] = entry.Transaction()
	}

	return ledger, nil
}

// Delete removes a session and its entries
func (r *LedgerSessionRepository) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("session_id = ?", id).Delete(&models.LedgerEntry{}).Error; err != nil {
			return fmt.Errorf("failed to delete ledger entries: %w", err)
		}

		result := tx.Where("id = ?", id).Delete(&models.LedgerSession{})
		if result.Error != nil {
			return fmt.Errorf("failed to delete ledger session: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrLedgerSessionNotFound
		}

		return nil
	})
}

// DeleteExpired removes every session that expired before now and returns
// how many were removed.
func (r *LedgerSessionRepository) DeleteExpired(now time.Time) (int64, error) {
	var deleted int64

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var expiredIDs []uuid.UUID
		if err := tx.Model(&models.LedgerSession{}).Where("expires_at <= ?", now).Pluck("id", &expiredIDs).Error; err != nil {
			return fmt.Errorf("failed to find expired ledger sessions: %w", err)
		}
		if len(expiredIDs) == 0 {
			return nil
		}

		if err := tx.Where("session_id IN ?", expiredIDs).Delete(&models.LedgerEntry{}).Error; err != nil {
			return fmt.Errorf("failed to delete expired ledger entries: %w", err)
		}

		result := tx.Where("id IN ?", expiredIDs).Delete(&models.LedgerSession{})
		if result.Error != nil {
			return fmt.Errorf("failed to delete expired ledger sessions: %w", result.Error)
		}

		deleted = result.RowsAffected
		return nil
	})
	if err != nil {
		return 0, err
	}

	return deleted, nil
}
