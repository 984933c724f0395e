package services

import (
	"fmt"
	"testing"
	"time"

	"statement-analyzer/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type AggregationServiceTestSuite struct {
	suite.Suite
	service AggregationServiceInterface
	ledger  models.Ledger
}

func TestAggregationServiceSuite(t *testing.T) {
	suite.Run(t, new(AggregationServiceTestSuite))
}

func (s *AggregationServiceTestSuite) SetupTest() {
	s.service = NewAggregationService()
	s.ledger = models.Ledger{
		txn("2023-12-01", "Coffee", "-3.50"),
		txn("2023-12-02", "Rent", "-500.00"),
		txn("2023-12-03", "Coffee", "-4.00"),
		txn("2023-12-04", "Salary", "1000.00"),
		txn("2023-12-05", "ISA transfer", "-200.00"),
	}
}

func (s *AggregationServiceTestSuite) TestGroupByCounterparty() {
	groups, err := s.service.GroupByCounterparty(s.ledger)

	s.Require().NoError(err)
	s.Require().Len(groups, 4)
	s.Equal("Coffee", groups[0].Details)
	s.Equal(2, groups[0].Count)
	s.Equal("-7.50", groups[0].TotalAmount.StringFixed(2))
	s.Equal([]string{"ISA transfer", "Rent", "Salary"}, []string{groups[1].Details, groups[2].Details, groups[3].Details})

	total := 0
	for _, g := range groups {
		total += g.Count
	}
	s.Equal(len(s.ledger), total, "every transaction lands in exactly one group")
}

func (s *AggregationServiceTestSuite) TestGroupByCounterparty_IndependentOfRowOrder() {
	reversed := make(models.Ledger, len(s.ledger))
	for i, t := range s.ledger {
		reversed[len(s.ledger)-1-i] = t
	}

	a, err := s.service.GroupByCounterparty(s.ledger)
	s.Require().NoError(err)
	b, err := s.service.GroupByCounterparty(reversed)
	s.Require().NoError(err)

	s.Equal(a, b)
}

func (s *AggregationServiceTestSuite) TestTopRepeatTransactions() {
	repeats, err := s.service.TopRepeatTransactions(s.ledger, 20)

	s.Require().NoError(err)
	s.Require().Len(repeats, 1)
	s.Equal("Coffee", repeats[0].Details)
	s.Equal(2, repeats[0].Count)
	s.True(repeats[0].In.IsZero())
	s.Equal("-7.50", repeats[0].Out.StringFixed(2))
}

func (s *AggregationServiceTestSuite) TestTopRepeatTransactions_SplitsInAndOut() {
	ledger := models.Ledger{
		txn("2023-12-01", "Interest", "1.00"),
		txn("2023-12-02", "Interest", "1.25"),
		txn("2023-12-03", "Refunded", "-5.00"),
		txn("2023-12-04", "Refunded", "5.00"),
	}

	repeats, err := s.service.TopRepeatTransactions(ledger, 20)

	s.Require().NoError(err)
	s.Require().Len(repeats, 2)
	s.Equal("Interest", repeats[0].Details)
	s.Equal("2.25", repeats[0].In.StringFixed(2))
	s.True(repeats[0].Out.IsZero())
	s.Equal("Refunded", repeats[1].Details)
	s.True(repeats[1].In.IsZero())
	s.True(repeats[1].Out.IsZero())
}

func (s *AggregationServiceTestSuite) TestTopRepeatTransactions_OrderAndLimit() {
	ledger := models.Ledger{
		txn("2023-12-01", "Zeta", "-1.00"),
		txn("2023-12-01", "Bus", "-2.00"),
		txn("2023-12-02", "Alpha", "-1.00"),
		txn("2023-12-02", "Zeta", "-1.00"),
		txn("2023-12-03", "Bus", "-2.00"),
		txn("2023-12-03", "Alpha", "-1.00"),
		txn("2023-12-04", "Bus", "-2.00"),
	}

	repeats, err := s.service.TopRepeatTransactions(ledger, 20)
	s.Require().NoError(err)

	got := make([]string, len(repeats))
	for i, r := range repeats {
		got[i] = fmt.Sprintf("%s:%d", r.Details, r.Count)
	}
	s.Equal([]string{"Bus:3", "Alpha:2", "Zeta:2"}, got)

	limited, err := s.service.TopRepeatTransactions(ledger, 2)
	s.Require().NoError(err)
	s.Len(limited, 2)
}

func (s *AggregationServiceTestSuite) TestTopSinglePayments() {
	singles, err := s.service.TopSinglePayments(s.ledger, 20)

	s.Require().NoError(err)
	s.Require().Len(singles.Incoming, 1)
	s.Equal("Salary", singles.Incoming[0].Details)
	s.Equal("1000.00", singles.Incoming[0].Amount.StringFixed(2))

	s.Require().Len(singles.Outgoing, 2)
	s.Equal("Rent", singles.Outgoing[0].Details)
	s.Equal("500.00", singles.Outgoing[0].Amount.StringFixed(2))
	s.Equal("ISA transfer", singles.Outgoing[1].Details)
	s.Equal("200.00", singles.Outgoing[1].Amount.StringFixed(2))
}

func (s *AggregationServiceTestSuite) TestTopSinglePayments_DropsZeroAmounts() {
	ledger := models.Ledger{txn("2023-12-01", "Adjustment", "0.00")}

	singles, err := s.service.TopSinglePayments(ledger, 20)

	s.Require().NoError(err)
	s.Empty(singles.Incoming)
	s.Empty(singles.Outgoing)
}

func (s *AggregationServiceTestSuite) TestTopSinglePayments_Truncates() {
	start := time.Date(2023, time.December, 1, 0, 0, 0, 0, time.UTC)
	ledger := make(models.Ledger, 0, 30)
	for i := 1; i <= 30; i++ {
		ledger = append(ledger, models.NewTransaction(start, fmt.Sprintf("Payee %02d", i), decimal.NewFromInt(int64(-i))))
	}

	tests := []struct {
		name      string
		maxList   int
		wantLen   int
		wantFirst string
		wantLast  string
	}{
		{"default list length", 0, 20, "30.00", "11.00"},
		{"explicit list length", 5, 5, "30.00", "26.00"},
		{"longer than ledger", 50, 30, "30.00", "1.00"},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			singles, err := s.service.TopSinglePayments(ledger, tt.maxList)

			s.Require().NoError(err)
			s.Require().Len(singles.Outgoing, tt.wantLen)
			s.Equal(tt.wantFirst, singles.Outgoing[0].Amount.StringFixed(2))
			s.Equal(tt.wantLast, singles.Outgoing[tt.wantLen-1].Amount.StringFixed(2))
			for i := 1; i < len(singles.Outgoing); i++ {
				s.True(singles.Outgoing[i-1].Amount.GreaterThanOrEqual(singles.Outgoing[i].Amount))
			}
		})
	}
}

func (s *AggregationServiceTestSuite) TestInvalidLedger() {
	ledger := models.Ledger{{
		Date:    time.Date(2023, time.December, 1, 0, 0, 0, 0, time.UTC),
		Details: "Coffee",
		Amount:  decimal.RequireFromString("-3.505"),
	}}

	var schemaErr *models.SchemaError

	_, err := s.service.GroupByCounterparty(ledger)
	s.ErrorAs(err, &schemaErr)

	_, err = s.service.TopRepeatTransactions(ledger, 20)
	s.ErrorAs(err, &schemaErr)

	_, err = s.service.TopSinglePayments(ledger, 20)
	s.ErrorAs(err, &schemaErr)
	s.ErrorIs(err, models.ErrUnroundedAmount)
}
