package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"statement-analyzer/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 6, 30, 15, 4, 5, 0, time.UTC)

func TestRun_OutputLoadsBack(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run([]string{"-count", "120", "-days", "30", "-seed", "42"}, &out, fixedNow))

	ledger, err := services.NewLedgerLoader(nil).Load(context.Background(), "generated.csv", out.Bytes())
	require.NoError(t, err)
	require.Len(t, ledger, 120)

	start := time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)
	for _, txn := range ledger {
		assert.False(t, txn.Date.Before(start), "date %s before range", txn.Date)
		assert.False(t, txn.Date.After(end), "date %s after range", txn.Date)
	}
}

func TestRun_SeedIsDeterministic(t *testing.T) {
	var first, second bytes.Buffer
	require.NoError(t, run([]string{"-count", "50", "-seed", "7"}, &first, fixedNow))
	require.NoError(t, run([]string{"-count", "50", "-seed", "7"}, &second, fixedNow))

	assert.Equal(t, first.String(), second.String())
}

func TestRun_WritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "statement.csv")

	require.NoError(t, run([]string{"-out", path, "-count", "10", "-seed", "1"}, &bytes.Buffer{}, fixedNow))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(content, []byte("Date,Details,Amount\n")))
	assert.Equal(t, 11, bytes.Count(content, []byte("\n")))
}

func TestRun_InvalidFlags(t *testing.T) {
	assert.Error(t, run([]string{"-days", "0"}, &bytes.Buffer{}, fixedNow))
	assert.Error(t, run([]string{"-count", "-1"}, &bytes.Buffer{}, fixedNow))
	assert.Error(t, run([]string{"-unknown"}, &bytes.Buffer{}, fixedNow))
}
