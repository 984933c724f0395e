package services

import (
	"testing"
	"time"

	"statement-analyzer/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func filterLedger() models.Ledger {
	return models.Ledger{
		txn("2023-12-01", "Coffee Shop", "-3.50"),
		txn("2023-12-03", "Salary ACME", "1000.00"),
		txn("2023-12-05", "Rent", "-500.00"),
		txn("2023-12-05", "coffee shop", "-4.00"),
		txn("2023-12-10", "Refund", "0.00"),
		txn("2023-12-15", "ISA transfer", "-200.00"),
		txn("2023-12-20", "Interest", "10.00"),
	}
}

func TestFilterByDateRange(t *testing.T) {
	ledger := filterLedger()

	t.Run("bounds are inclusive", func(t *testing.T) {
		got := FilterByDateRange(ledger, *day("2023-12-03"), *day("2023-12-10"))
		assert.Equal(t, []string{"Salary ACME", "Rent", "coffee shop", "Refund"}, details(got))
	})

	t.Run("time of day on bounds is ignored", func(t *testing.T) {
		end := day("2023-12-05").Add(23*time.Hour + 59*time.Minute)
		got := FilterByDateRange(ledger, *day("2023-12-05"), end)
		assert.Len(t, got, 2)
	})

	t.Run("empty result falls back to input", func(t *testing.T) {
		got := FilterByDateRange(ledger, *day("2099-01-01"), *day("2099-12-31"))
		assert.Equal(t, ledger, got)
	})

	t.Run("reversed range falls back to input", func(t *testing.T) {
		got := FilterByDateRange(ledger, *day("2023-12-20"), *day("2023-12-01"))
		assert.Equal(t, ledger, got)
	})
}

func TestFilterByDirection(t *testing.T) {
	ledger := filterLedger()
	original := ledger.Clone()

	t.Run("incoming keeps positive amounts", func(t *testing.T) {
		got := FilterByDirection(ledger, models.DirectionIncoming)
		assert.Equal(t, []string{"1000.00", "10.00"}, amounts(got))
	})

	t.Run("outgoing returns absolute amounts", func(t *testing.T) {
		got := FilterByDirection(ledger, models.DirectionOutgoing)
		assert.Equal(t, []string{"3.50", "500.00", "4.00", "200.00"}, amounts(got))
	})

	t.Run("no direction is a no-op", func(t *testing.T) {
		got := FilterByDirection(ledger, models.DirectionNone)
		assert.Equal(t, ledger, got)
	})

	assert.Equal(t, original, ledger, "input must not be modified")
}

func TestParseKeywords(t *testing.T) {
	assert.Equal(t, []string{"coffee", "ISA transfer"}, ParseKeywords(" coffee, ,ISA transfer ,"))
	assert.Empty(t, ParseKeywords(""))
	assert.Empty(t, ParseKeywords(" , "))
}

func TestKeywordFilters(t *testing.T) {
	ledger := filterLedger()

	tests := []struct {
		name    string
		isolate []string
		remove  []string
		want    []string
	}{
		{
			name:    "isolate ignores case",
			isolate: []string{"COFFEE"},
			want:    []string{"Coffee Shop", "coffee shop"},
		},
		{
			name:    "isolate matches any keyword",
			isolate: []string{"rent", "isa"},
			want:    []string{"Rent", "ISA transfer"},
		},
		{
			name:   "remove drops matches",
			remove: []string{"coffee", "salary", "refund", "interest"},
			want:   []string{"Rent", "ISA transfer"},
		},
		{
			name:    "isolate wins over remove",
			isolate: []string{"coffee"},
			remove:  []string{"coffee"},
			want:    []string{"Coffee Shop", "coffee shop"},
		},
		{
			name:    "blank keywords are ignored",
			isolate: []string{" "},
			remove:  []string{""},
			want:    details(ledger),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterByKeywords(ledger, tt.isolate, tt.remove)
			assert.Equal(t, tt.want, details(got))
		})
	}
}

func TestFilterByAmount(t *testing.T) {
	ledger := filterLedger()

	tests := []struct {
		name string
		min  string
		max  string
		want []string
	}{
		{name: "open bounds", want: amounts(ledger)},
		{name: "min is exclusive", min: "10.00", want: []string{"1000.00"}},
		{name: "max is exclusive", max: "-200.00", want: []string{"-500.00"}},
		{name: "both bounds", min: "-200.00", max: "10.00", want: []string{"-3.50", "-4.00", "0.00"}},
		{name: "zero bound is a real bound", min: "0", want: []string{"1000.00", "10.00"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterByAmount(ledger, boundOrNil(tt.min), boundOrNil(tt.max))
			assert.Equal(t, tt.want, amounts(got))
		})
	}
}

func TestApplyDateFilter_NeedsBothBounds(t *testing.T) {
	ledger := filterLedger()

	got := ApplyDateFilter(ledger, models.FilterCriteria{StartDate: day("2023-12-10")})
	assert.Equal(t, ledger, got)

	got = ApplyDateFilter(ledger, models.FilterCriteria{EndDate: day("2023-12-01")})
	assert.Equal(t, ledger, got)
}

func TestApplyFilterChain(t *testing.T) {
	ledger := filterLedger()
	original := ledger.Clone()

	criteria := models.FilterCriteria{
		StartDate:       day("2023-12-01"),
		EndDate:         day("2023-12-05"),
		Directions:      []models.Direction{models.DirectionOutgoing},
		IsolateKeywords: []string{"coffee"},
		MinAmount:       amount("3.75"),
	}

	dateFiltered, filtered := ApplyFilterChain(ledger, criteria)

	assert.Len(t, dateFiltered, 4, "date filter only")
	assert.Equal(t, []string{"coffee shop"}, details(filtered))
	assert.Equal(t, []string{"4.00"}, amounts(filtered))
	assert.Equal(t, original, ledger)
}

func TestApplyFilterChain_BothDirectionsIsNoFilter(t *testing.T) {
	ledger := filterLedger()
	criteria := models.FilterCriteria{
		Directions: []models.Direction{models.DirectionIncoming, models.DirectionOutgoing},
	}

	_, filtered := ApplyFilterChain(ledger, criteria)

	assert.Equal(t, ledger, filtered)
}

func TestApplyFilterChain_Idempotent(t *testing.T) {
	criteria := models.FilterCriteria{
		StartDate:      day("2023-12-01"),
		EndDate:        day("2023-12-15"),
		Directions:     []models.Direction{models.DirectionIncoming},
		RemoveKeywords: []string{"interest"},
		MaxAmount:      amount("5000"),
	}

	_, once := ApplyFilterChain(filterLedger(), criteria)
	_, twice := ApplyFilterChain(once, criteria)

	require.NotEmpty(t, once)
	assert.Equal(t, once, twice)
}

func boundOrNil(s string) *decimal.Decimal {
	if s == "" {
		return nil
	}
	return amount(s)
}
