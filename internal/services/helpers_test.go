package services

import (
	"time"

	"statement-analyzer/internal/models"

	"github.com/shopspring/decimal"
)

// txn builds a transaction from a YYYY-MM-DD date and a decimal string
func txn(date, details, amount string) models.Transaction {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(err)
	}
	return models.NewTransaction(d, details, decimal.RequireFromString(amount))
}

func day(date string) *time.Time {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(err)
	}
	return &d
}

func amount(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func amounts(ledger models.Ledger) []string {
	out := make([]string, len(ledger))
	for i, t := range ledger {
		out[i] = t.Amount.StringFixed(models.AmountPlaces)
	}
	return out
}

func details(ledger models.Ledger) []string {
	out := make([]string, len(ledger))
	for i, t := range ledger {
		out[i] = t.Details
	}
	return out
}
