package database

import (
	"fmt"
	"testing"
	"time"

	"statement-analyzer/internal/config"
	"statement-analyzer/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupTestDB opens a private in-memory sqlite session store
func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	// every pooled connection would otherwise get its own empty database
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	testDB := &DB{
		DB: db,
		config: &config.DatabaseConfig{
			Driver:         config.DriverSQLite,
			SQLitePath:     ":memory:",
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	t.Cleanup(func() {
		_ = testDB.Close()
	})

	return testDB
}

// CreateTestSession stores a session holding ledger, expiring after ttl
func CreateTestSession(t *testing.T, db *DB, ledger models.Ledger, ttl time.Duration) *models.LedgerSession {
	t.Helper()

	now := time.Now().UTC()
	session := &models.LedgerSession{
		ID:        uuid.New(),
		Filename:  "statement.csv",
		RowCount:  len(ledger),
		CreatedAt: now,
		UpdatedAt: now,
		ExpiresAt: now.Add(ttl),
	}

	if err := db.Create(session).Error; err != nil {
		t.Fatalf("failed to create test session: %v", err)
	}

	if len(ledger) > 0 {
		entries := models.NewLedgerEntries(session.ID, ledger)
		if err := db.Create(&entries).Error; err != nil {
			t.Fatalf("failed to create test ledger entries: %v", err)
		}
	}

	return session
}

// TestLedger builds a ledger from (day offset, details, amount) triples
// starting at 1 December 2023
func TestLedger(rows ...TestRow) models.Ledger {
	start := time.Date(2023, time.December, 1, 0, 0, 0, 0, time.UTC)
	ledger := make(models.Ledger, len(rows))
	for i, row := range rows {
		ledger[i] = models.NewTransaction(start.AddDate(0, 0, row.Day), row.Details, decimal.RequireFromString(row.Amount))
	}
	return ledger
}

type TestRow struct {
	Day     int
	Details string
	Amount  string
}

func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	tables := []string{
		"ledger_entries",
		"ledger_sessions",
	}

	for _, table := range tables {
		if err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			t.Logf("failed to cleanup table %s: %v", table, err)
		}
	}
}
