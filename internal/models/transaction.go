package models

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// AmountPlaces is the number of fractional digits every ledger amount carries.
const AmountPlaces = 2

var (
	ErrMissingDate      = errors.New("transaction date is required")
	ErrUnroundedAmount  = errors.New("transaction amount must be rounded to 2 decimal places")
	ErrDateHasTimeOfDay = errors.New("transaction date must not carry a time of day")
)

// Transaction is a single statement line. Positive amounts are incoming,
// negative amounts are outgoing.
type Transaction struct {
	Date    time.Time       `json:"date"`
	Details string          `json:"details"`
	Amount  decimal.Decimal `json:"amount"`
}

// NewTransaction builds a transaction with the date truncated to a calendar
// day and the amount rounded to AmountPlaces.
func NewTransaction(date time.Time, details string, amount decimal.Decimal) Transaction {
	return Transaction{
		Date:    CalendarDate(date),
		Details: details,
		Amount:  amount.Round(AmountPlaces),
	}
}

// IsIncoming reports whether money was paid in
func (t Transaction) IsIncoming() bool {
	return t.Amount.IsPositive()
}

// IsOutgoing reports whether money was paid out
func (t Transaction) IsOutgoing() bool {
	return t.Amount.IsNegative()
}

// Validate checks the ledger invariants for a single transaction
func (t Transaction) Validate() error {
	if t.Date.IsZero() {
		return ErrMissingDate
	}

	if !t.Date.Equal(CalendarDate(t.Date)) {
		return ErrDateHasTimeOfDay
	}

	if !t.Amount.Equal(t.Amount.Round(AmountPlaces)) {
		return ErrUnroundedAmount
	}

	return nil
}

// CalendarDate drops the time of day and returns midnight UTC of the same
// calendar day as t.
func CalendarDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
