package services

import (
	"encoding/csv"
	"fmt"
	"io"

	"statement-analyzer/internal/models"
)

// StatementDateLayout is the day-first layout written to CSV statements
const StatementDateLayout = "02/01/2006"

// WriteLedgerCSV writes ledger in the Date,Details,Amount layout accepted by
// the loader.
func WriteLedgerCSV(w io.Writer, ledger models.Ledger) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(expectedHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, txn := range ledger {
		record := []string{
			txn.Date.Format(StatementDateLayout),
			txn.Details,
			txn.Amount.StringFixed(models.AmountPlaces),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write transaction %d: %w", i, err)
		}
	}

	writer.Flush()
	return writer.Error()
}
