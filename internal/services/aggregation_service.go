package services

import (
	"sort"

	"statement-analyzer/internal/models"

	"github.com/shopspring/decimal"
)

type aggregationService struct{}

// NewAggregationService creates a new aggregation service
func NewAggregationService() AggregationServiceInterface {
	return &aggregationService{}
}

// GroupByCounterparty groups transactions by exact details. Groups are ordered
// by count descending; equal counts keep details ascending order, so the
// result does not depend on row order in the file.
func (s *aggregationService) GroupByCounterparty(ledger models.Ledger) ([]models.DuplicateGroup, error) {
	if err := ledger.Validate(); err != nil {
		return nil, err
	}
	return groupByCounterparty(ledger), nil
}

// TopRepeatTransactions returns up to maxList groups seen more than once, with
// the total split into In and Out columns.
func (s *aggregationService) TopRepeatTransactions(ledger models.Ledger, maxList int) ([]models.RepeatTransaction, error) {
	if err := ledger.Validate(); err != nil {
		return nil, err
	}

	limit := effectiveMaxList(maxList)
	repeats := make([]models.RepeatTransaction, 0, limit)
	for _, group := range groupByCounterparty(ledger) {
		if len(repeats) == limit {
			break
		}
		if !group.IsRepeat() {
			continue
		}

		row := models.RepeatTransaction{
			Details: group.Details,
			Count:   group.Count,
			In:      decimal.Zero,
			Out:     decimal.Zero,
		}
		if group.TotalAmount.IsPositive() {
			row.In = group.TotalAmount
		} else if group.TotalAmount.IsNegative() {
			row.Out = group.TotalAmount
		}
		repeats = append(repeats, row)
	}

	return repeats, nil
}

// TopSinglePayments returns the largest one-off payments on each side. Amounts
// are absolute values; both lists are ordered largest first.
func (s *aggregationService) TopSinglePayments(ledger models.Ledger, maxList int) (*models.SinglePayments, error) {
	if err := ledger.Validate(); err != nil {
		return nil, err
	}

	result := &models.SinglePayments{
		Incoming: []models.SinglePayment{},
		Outgoing: []models.SinglePayment{},
	}

	for _, group := range groupByCounterparty(ledger) {
		if !group.IsSingle() {
			continue
		}
		payment := models.SinglePayment{
			Details: group.Details,
			Amount:  group.TotalAmount.Abs(),
		}
		switch {
		case group.TotalAmount.IsPositive():
			result.Incoming = append(result.Incoming, payment)
		case group.TotalAmount.IsNegative():
			result.Outgoing = append(result.Outgoing, payment)
		}
	}

	limit := effectiveMaxList(maxList)
	result.Incoming = largestFirst(result.Incoming, limit)
	result.Outgoing = largestFirst(result.Outgoing, limit)

	return result, nil
}

func groupByCounterparty(ledger models.Ledger) []models.DuplicateGroup {
	index := make(map[string]int)
	groups := make([]models.DuplicateGroup, 0)

	for _, txn := range ledger {
		i, ok := index[txn.Details]
		if !ok {
			i = len(groups)
			index[txn.Details] = i
			groups = append(groups, models.DuplicateGroup{
				Details:     txn.Details,
				TotalAmount: decimal.Zero,
			})
		}
		groups[i].TotalAmount = groups[i].TotalAmount.Add(txn.Amount)
		groups[i].Count++
	}

	sort.Slice(groups, func(a, b int) bool {
		return groups[a].Details < groups[b].Details
	})
	sort.SliceStable(groups, func(a, b int) bool {
		return groups[a].Count > groups[b].Count
	})

	return groups
}

func largestFirst(payments []models.SinglePayment, limit int) []models.SinglePayment {
	sort.SliceStable(payments, func(a, b int) bool {
		return payments[a].Amount.GreaterThan(payments[b].Amount)
	})
	if len(payments) > limit {
		payments = payments[:limit]
	}
	return payments
}

func effectiveMaxList(maxList int) int {
	return models.FilterCriteria{MaxList: maxList}.EffectiveMaxList()
}
