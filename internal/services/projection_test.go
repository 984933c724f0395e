package services

import (
	"bytes"
	"context"
	"testing"

	"statement-analyzer/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableTitle(t *testing.T) {
	assert.Equal(t, "Top 20 Single Incoming", TableTitle(TableSingleIncoming, 20))
	assert.Equal(t, "Top 5 Single Outgoing", TableTitle(TableSingleOutgoing, 5))
	assert.Equal(t, "Top 7 Repeat Transactions", TableTitle(TableRepeat, 7))
}

func TestProjectTables(t *testing.T) {
	result := &models.AnalysisResult{
		MaxList: 5,
		TopRepeat: []models.RepeatTransaction{
			{Details: "Coffee", Count: 2, In: decimal.Zero, Out: decimal.RequireFromString("-7.5")},
		},
		TopSingleIncoming: []models.SinglePayment{
			{Details: "Salary", Amount: decimal.NewFromInt(1000)},
		},
		TopSingleOutgoing: []models.SinglePayment{},
	}

	tables := ProjectTables(result)

	assert.Equal(t, "Top 5 Repeat Transactions", tables.TopRepeat.Title)
	assert.Equal(t, []string{"Details", "Count", "In", "Out"}, tables.TopRepeat.Columns)
	assert.Equal(t, [][]string{{"Coffee", "2", "0.00", "-7.50"}}, tables.TopRepeat.Rows)

	assert.Equal(t, "Top 5 Single Incoming", tables.TopSingleIncoming.Title)
	assert.Equal(t, []string{"Details", "In"}, tables.TopSingleIncoming.Columns)
	assert.Equal(t, [][]string{{"Salary", "1000.00"}}, tables.TopSingleIncoming.Rows)

	assert.Equal(t, "Top 5 Single Outgoing", tables.TopSingleOutgoing.Title)
	assert.Equal(t, []string{"Details", "Out"}, tables.TopSingleOutgoing.Columns)
	assert.NotNil(t, tables.TopSingleOutgoing.Rows)
	assert.Empty(t, tables.TopSingleOutgoing.Rows)
}

func TestProjectChart(t *testing.T) {
	ledger := models.Ledger{
		txn("2023-12-01", "Coffee", "-3.50"),
		txn("2023-12-02", "Salary", "1000.00"),
	}

	t.Run("line chart has no sizes", func(t *testing.T) {
		series := ProjectChart(ledger, models.ChartTypeLine)

		assert.Equal(t, models.ChartTypeLine, series.Type)
		require.Len(t, series.Points, 2)
		assert.Equal(t, ledger[0].Date, series.Points[0].Date)
		assert.Equal(t, "Coffee", series.Points[0].Details)
		assert.Nil(t, series.Points[0].Size)
	})

	t.Run("bubble chart sizes by magnitude", func(t *testing.T) {
		series := ProjectChart(ledger, models.ChartTypeBubble)

		require.Len(t, series.Points, 2)
		require.NotNil(t, series.Points[0].Size)
		assert.Equal(t, "3.50", series.Points[0].Size.StringFixed(2))
		assert.Equal(t, "-3.50", series.Points[0].Amount.StringFixed(2))
	})

	t.Run("empty ledger", func(t *testing.T) {
		series := ProjectChart(nil, models.ChartTypeBar)
		assert.NotNil(t, series.Points)
		assert.Empty(t, series.Points)
	})
}

func TestWriteLedgerCSV(t *testing.T) {
	ledger := models.Ledger{
		txn("2023-12-01", "Coffee, large", "-3.50"),
		txn("2023-12-25", "Salary", "2150"),
	}

	var buf bytes.Buffer
	require.NoError(t, WriteLedgerCSV(&buf, ledger))

	assert.Equal(t, "Date,Details,Amount\n"+
		"01/12/2023,\"Coffee, large\",-3.50\n"+
		"25/12/2023,Salary,2150.00\n", buf.String())

	loaded, err := NewLedgerLoader(nil).Load(context.Background(), "export.csv", buf.Bytes())
	require.NoError(t, err)
	require.Len(t, loaded, len(ledger))
	assert.Equal(t, details(ledger), details(loaded))
	assert.Equal(t, amounts(ledger), amounts(loaded))
	for i := range ledger {
		assert.True(t, ledger[i].Date.Equal(loaded[i].Date))
	}
}

func TestWriteLedgerCSV_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteLedgerCSV(&buf, nil))
	assert.Equal(t, models.ExpectedLayout+"\n", buf.String())
}
