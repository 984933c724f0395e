package services

import (
	"fmt"
	"strconv"

	"statement-analyzer/internal/models"
)

// TableKind names one of the aggregate tables
type TableKind string

const (
	TableSingleIncoming TableKind = "Single Incoming"
	TableSingleOutgoing TableKind = "Single Outgoing"
	TableRepeat         TableKind = "Repeat Transactions"
)

// TableTitle echoes the effective list length, e.g. "Top 20 Single Incoming"
func TableTitle(kind TableKind, n int) string {
	return fmt.Sprintf("Top %d %s", n, kind)
}

// ProjectTables turns an analysis result into titled display tables
func ProjectTables(result *models.AnalysisResult) models.AnalysisTables {
	repeat := models.Table{
		Title:   TableTitle(TableRepeat, result.MaxList),
		Columns: []string{"Details", "Count", "In", "Out"},
		Rows:    make([][]string, 0, len(result.TopRepeat)),
	}
	for _, row := range result.TopRepeat {
		repeat.Rows = append(repeat.Rows, []string{
			row.Details,
			strconv.Itoa(row.Count),
			row.In.StringFixed(models.AmountPlaces),
			row.Out.StringFixed(models.AmountPlaces),
		})
	}

	return models.AnalysisTables{
		TopRepeat:         repeat,
		TopSingleIncoming: singleTable(TableSingleIncoming, "In", result.MaxList, result.TopSingleIncoming),
		TopSingleOutgoing: singleTable(TableSingleOutgoing, "Out", result.MaxList, result.TopSingleOutgoing),
	}
}

func singleTable(kind TableKind, amountColumn string, maxList int, payments []models.SinglePayment) models.Table {
	table := models.Table{
		Title:   TableTitle(kind, maxList),
		Columns: []string{"Details", amountColumn},
		Rows:    make([][]string, 0, len(payments)),
	}
	for _, p := range payments {
		table.Rows = append(table.Rows, []string{p.Details, p.Amount.StringFixed(models.AmountPlaces)})
	}
	return table
}

// ProjectChart builds one chart point per transaction. Bubble points are
// sized by the absolute amount.
func ProjectChart(ledger models.Ledger, chartType models.ChartType) models.ChartSeries {
	series := models.ChartSeries{
		Type:   chartType,
		Points: make([]models.ChartPoint, 0, len(ledger)),
	}
	for _, txn := range ledger {
		point := models.ChartPoint{
			Date:    txn.Date,
			Details: txn.Details,
			Amount:  txn.Amount,
		}
		if chartType == models.ChartTypeBubble {
			size := txn.Amount.Abs()
			point.Size = &size
		}
		series.Points = append(series.Points, point)
	}
	return series
}
