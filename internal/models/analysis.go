package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DuplicateGroup aggregates transactions that share identical details.
// Count == 1 is a single payment, Count > 1 a repeat transaction.
type DuplicateGroup struct {
	Details     string          `json:"details"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Count       int             `json:"count"`
}

// IsSingle reports whether the group holds exactly one transaction
func (g DuplicateGroup) IsSingle() bool {
	return g.Count == 1
}

// IsRepeat reports whether the group holds more than one transaction
func (g DuplicateGroup) IsRepeat() bool {
	return g.Count > 1
}

// RepeatTransaction is a row of the top repeat transactions report. Out keeps
// its negative sign.
type RepeatTransaction struct {
	Details string          `json:"details"`
	Count   int             `json:"count"`
	In      decimal.Decimal `json:"in"`
	Out     decimal.Decimal `json:"out"`
}

// SinglePayment is a row of a top single payments report. Amount is always
// the absolute value.
type SinglePayment struct {
	Details string          `json:"details"`
	Amount  decimal.Decimal `json:"amount"`
}

// SinglePayments holds both sides of the top single payments report
type SinglePayments struct {
	Incoming []SinglePayment `json:"incoming"`
	Outgoing []SinglePayment `json:"outgoing"`
}

// SavingsReport is the optional savings block of the summary
type SavingsReport struct {
	SavingsIn    decimal.Decimal `json:"savings_in"`
	SavingsOut   decimal.Decimal `json:"savings_out"`
	TotalSavings decimal.Decimal `json:"total_savings"`
}

// SummaryReport holds the totals and their rendered text
type SummaryReport struct {
	TotalIn    decimal.Decimal `json:"total_in"`
	TotalOut   decimal.Decimal `json:"total_out"`
	Difference decimal.Decimal `json:"difference"`
	Savings    *SavingsReport  `json:"savings,omitempty"`
	Text       string          `json:"text"`
}

// ChartPoint is one transaction in a chart series. Size is only set for
// bubble charts.
type ChartPoint struct {
	Date    time.Time        `json:"date"`
	Details string           `json:"details"`
	Amount  decimal.Decimal  `json:"amount"`
	Size    *decimal.Decimal `json:"size,omitempty"`
}

// ChartSeries is the data behind the transactions chart
type ChartSeries struct {
	Type   ChartType    `json:"type"`
	Points []ChartPoint `json:"points"`
}

// Table is a titled display table with string cells
type Table struct {
	Title   string     `json:"title"`
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// AnalysisTables are the three aggregate tables shown next to the chart
type AnalysisTables struct {
	TopRepeat         Table `json:"top_repeat"`
	TopSingleIncoming Table `json:"top_single_incoming"`
	TopSingleOutgoing Table `json:"top_single_outgoing"`
}

// AnalysisResult is everything produced by one analysis pass. The top lists
// are computed from date-filtered data only; Transactions, Chart and Report
// use the fully filtered data.
type AnalysisResult struct {
	MaxList           int                 `json:"max_list"`
	Direction         Direction           `json:"direction"`
	ChartType         ChartType           `json:"chart_type"`
	LedgerCount       int                 `json:"ledger_count"`
	DateFilteredCount int                 `json:"date_filtered_count"`
	FilteredCount     int                 `json:"filtered_count"`
	TopRepeat         []RepeatTransaction `json:"top_repeat"`
	TopSingleIncoming []SinglePayment     `json:"top_single_incoming"`
	TopSingleOutgoing []SinglePayment     `json:"top_single_outgoing"`
	Transactions      Ledger              `json:"transactions"`
	Chart             ChartSeries         `json:"chart"`
	Report            *SummaryReport      `json:"report"`
}
