package dto

import (
	"testing"
	"time"

	"statement-analyzer/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalysisRequest_ToCriteria(t *testing.T) {
	req := AnalysisRequest{
		StartDate:  "2023-12-01",
		EndDate:    "2023-12-31",
		Directions: []string{"paid_out"},
		Isolate:    "coffee, tea",
		Remove:     "",
		MinAmount:  " 1.50 ",
		MaxAmount:  "100",
		ChartType:  "bubble",
		Savings:    "ISA",
	}

	criteria, err := req.ToCriteria(20)

	require.NoError(t, err)
	require.NotNil(t, criteria.StartDate)
	require.NotNil(t, criteria.EndDate)
	assert.Equal(t, time.Date(2023, time.December, 1, 0, 0, 0, 0, time.UTC), *criteria.StartDate)
	assert.Equal(t, time.Date(2023, time.December, 31, 0, 0, 0, 0, time.UTC), *criteria.EndDate)
	assert.Equal(t, []models.Direction{models.DirectionOutgoing}, criteria.Directions)
	assert.Equal(t, []string{"coffee", " tea"}, criteria.IsolateKeywords)
	assert.Nil(t, criteria.RemoveKeywords)
	assert.Equal(t, []string{"ISA"}, criteria.SavingsKeywords)
	assert.True(t, criteria.MinAmount.Equal(decimal.RequireFromString("1.5")))
	assert.True(t, criteria.MaxAmount.Equal(decimal.NewFromInt(100)))
	assert.Equal(t, models.ChartTypeBubble, criteria.ChartType)
	assert.Equal(t, 20, criteria.MaxList)
}

func TestAnalysisRequest_ToCriteria_Empty(t *testing.T) {
	criteria, err := (&AnalysisRequest{}).ToCriteria(15)

	require.NoError(t, err)
	assert.False(t, criteria.HasDateRange())
	assert.Nil(t, criteria.MinAmount)
	assert.Nil(t, criteria.MaxAmount)
	assert.Equal(t, 15, criteria.MaxList)
	assert.Equal(t, models.DirectionNone, criteria.EffectiveDirection())
}

func TestAnalysisRequest_ToCriteria_Errors(t *testing.T) {
	tests := []struct {
		name    string
		req     AnalysisRequest
		wantErr error
		wantMsg string
	}{
		{"bad start date", AnalysisRequest{StartDate: "01/12/2023"}, ErrInvalidDate, "start_date"},
		{"bad end date", AnalysisRequest{EndDate: "2023-13-01"}, ErrInvalidDate, "end_date"},
		{"bad min amount", AnalysisRequest{MinAmount: "ten"}, ErrInvalidAmount, "min_amount"},
		{"bad max amount", AnalysisRequest{MaxAmount: "1,000"}, ErrInvalidAmount, "max_amount"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.req.ToCriteria(20)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestNewAnalysisResponse(t *testing.T) {
	date := time.Date(2023, time.December, 1, 0, 0, 0, 0, time.UTC)
	result := &models.AnalysisResult{
		MaxList:           20,
		Direction:         models.DirectionIncoming,
		LedgerCount:       3,
		DateFilteredCount: 3,
		FilteredCount:     1,
		Transactions: models.Ledger{
			models.NewTransaction(date, "Salary", decimal.NewFromInt(1000)),
		},
		Chart: models.ChartSeries{Type: models.ChartTypeBar},
		Report: &models.SummaryReport{
			TotalIn:    decimal.NewFromInt(1000),
			TotalOut:   decimal.Zero,
			Difference: decimal.Zero,
			Savings: &models.SavingsReport{
				SavingsIn:    decimal.RequireFromString("12.5"),
				SavingsOut:   decimal.Zero,
				TotalSavings: decimal.RequireFromString("12.5"),
			},
			Text: "{}",
		},
	}

	response := NewAnalysisResponse("abc", result, models.AnalysisTables{})

	assert.Equal(t, "abc", response.SessionID)
	assert.Equal(t, 1, response.FilteredCount)
	assert.Equal(t, models.DirectionIncoming, response.Direction)
	assert.Equal(t, []TransactionResponse{{Date: "2023-12-01", Details: "Salary", Amount: "1000.00"}}, response.Transactions)
	assert.Equal(t, "1000.00", response.Summary.TotalIn)
	assert.Equal(t, "0.00", response.Summary.TotalOut)
	require.NotNil(t, response.Summary.Savings)
	assert.Equal(t, "12.50", response.Summary.Savings.SavingsIn)
	assert.Equal(t, "{}", response.Summary.Text)
}

func TestNewSummaryResponse_Nil(t *testing.T) {
	assert.Equal(t, SummaryResponse{}, NewSummaryResponse(nil))
}
