package services

import (
	"strings"
	"time"

	"statement-analyzer/internal/models"

	"github.com/shopspring/decimal"
)

// Filters never write to their input. Each one returns a new ledger, except
// for no-op cases, which return the input itself.

// FilterByDateRange keeps transactions dated within [start, end], bounds
// included. When nothing falls in the range the input is returned unchanged.
func FilterByDateRange(ledger models.Ledger, start, end time.Time) models.Ledger {
	from := models.CalendarDate(start)
	to := models.CalendarDate(end)

	filtered := ledger.Where(func(txn models.Transaction) bool {
		return !txn.Date.Before(from) && !txn.Date.After(to)
	})
	if len(filtered) == 0 {
		return ledger
	}
	return filtered
}

// FilterByDirection keeps incoming or outgoing transactions. Outgoing amounts
// are re-expressed as absolute values in the returned copy.
func FilterByDirection(ledger models.Ledger, direction models.Direction) models.Ledger {
	switch direction {
	case models.DirectionIncoming:
		return ledger.Where(models.Transaction.IsIncoming)
	case models.DirectionOutgoing:
		outgoing := ledger.Where(models.Transaction.IsOutgoing)
		for i := range outgoing {
			outgoing[i].Amount = outgoing[i].Amount.Abs()
		}
		return outgoing
	default:
		return ledger
	}
}

// ParseKeywords splits a comma separated list into trimmed, non-empty keywords
func ParseKeywords(raw string) []string {
	return normalizeKeywords(strings.Split(raw, ","))
}

// IsolateKeywords keeps transactions whose details contain any keyword,
// ignoring case.
func IsolateKeywords(ledger models.Ledger, keywords []string) models.Ledger {
	needles := lowerKeywords(keywords)
	if len(needles) == 0 {
		return ledger
	}
	return ledger.Where(func(txn models.Transaction) bool {
		return containsAny(txn.Details, needles)
	})
}

// RemoveKeywords keeps transactions whose details contain none of the
// keywords, ignoring case.
func RemoveKeywords(ledger models.Ledger, keywords []string) models.Ledger {
	needles := lowerKeywords(keywords)
	if len(needles) == 0 {
		return ledger
	}
	return ledger.Where(func(txn models.Transaction) bool {
		return !containsAny(txn.Details, needles)
	})
}

// FilterByKeywords applies isolate or remove. Isolate wins when both are given.
func FilterByKeywords(ledger models.Ledger, isolate, remove []string) models.Ledger {
	if len(normalizeKeywords(isolate)) > 0 {
		return IsolateKeywords(ledger, isolate)
	}
	return RemoveKeywords(ledger, remove)
}

// FilterByAmount keeps amounts strictly between the given bounds. A nil bound
// is open.
func FilterByAmount(ledger models.Ledger, minAmount, maxAmount *decimal.Decimal) models.Ledger {
	switch {
	case minAmount != nil && maxAmount != nil:
		return ledger.Where(func(txn models.Transaction) bool {
			return txn.Amount.GreaterThan(*minAmount) && txn.Amount.LessThan(*maxAmount)
		})
	case minAmount != nil:
		return ledger.Where(func(txn models.Transaction) bool {
			return txn.Amount.GreaterThan(*minAmount)
		})
	case maxAmount != nil:
		return ledger.Where(func(txn models.Transaction) bool {
			return txn.Amount.LessThan(*maxAmount)
		})
	default:
		return ledger
	}
}

// ApplyDateFilter narrows ledger to the criteria's date range when both bounds
// are set.
func ApplyDateFilter(ledger models.Ledger, criteria models.FilterCriteria) models.Ledger {
	if !criteria.HasDateRange() {
		return ledger
	}
	return FilterByDateRange(ledger, *criteria.StartDate, *criteria.EndDate)
}

// ApplyFilterChain runs the date filter first, then direction, keyword and
// amount filters on top of it. dateFiltered feeds the aggregate reports and
// must not see the later filters; fullyFiltered feeds the summary and chart.
func ApplyFilterChain(ledger models.Ledger, criteria models.FilterCriteria) (dateFiltered, fullyFiltered models.Ledger) {
	dateFiltered = ApplyDateFilter(ledger, criteria)

	fullyFiltered = FilterByDirection(dateFiltered, criteria.EffectiveDirection())
	fullyFiltered = FilterByKeywords(fullyFiltered, criteria.IsolateKeywords, criteria.RemoveKeywords)
	fullyFiltered = FilterByAmount(fullyFiltered, criteria.MinAmount, criteria.MaxAmount)

	return dateFiltered, fullyFiltered
}

func normalizeKeywords(keywords []string) []string {
	out := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		if kw = strings.TrimSpace(kw); kw != "" {
			out = append(out, kw)
		}
	}
	return out
}

func lowerKeywords(keywords []string) []string {
	normalized := normalizeKeywords(keywords)
	for i, kw := range normalized {
		normalized[i] = strings.ToLower(kw)
	}
	return normalized
}

func containsAny(details string, needles []string) bool {
	haystack := strings.ToLower(details)
	for _, needle := range needles {
		if strings.Contains(haystack, needle) {
			return true
		}
	}
	return false
}
