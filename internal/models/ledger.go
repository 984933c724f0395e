package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Ledger is the ordered set of transactions from one ingested statement.
// Order is file order; several transactions may share a date.
type Ledger []Transaction

// Validate reports the first transaction that breaks the ledger invariants
func (l Ledger) Validate() error {
	for i, txn := range l {
		if err := txn.Validate(); err != nil {
			return &SchemaError{
				Reason: fmt.Sprintf("transaction %d", i),
				Err:    err,
			}
		}
	}
	return nil
}

// Clone returns a copy that shares no backing array with l
func (l Ledger) Clone() Ledger {
	if l == nil {
		return nil
	}
	out := make(Ledger, len(l))
	copy(out, l)
	return out
}

// Where returns the transactions for which keep reports true, in order
func (l Ledger) Where(keep func(Transaction) bool) Ledger {
	out := make(Ledger, 0, len(l))
	for _, txn := range l {
		if keep(txn) {
			out = append(out, txn)
		}
	}
	return out
}

// Sum adds up every amount
func (l Ledger) Sum() decimal.Decimal {
	total := decimal.Zero
	for _, txn := range l {
		total = total.Add(txn.Amount)
	}
	return total
}
