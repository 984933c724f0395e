package services

import (
	"fmt"
	"strings"

	"statement-analyzer/internal/models"

	"github.com/shopspring/decimal"
)

// NumberFormat controls how report amounts are rendered
type NumberFormat struct {
	DecimalSeparator string
	GroupSeparator   string
}

// DefaultNumberFormat renders 1234.5 as 1,234.50
func DefaultNumberFormat() NumberFormat {
	return NumberFormat{
		DecimalSeparator: ".",
		GroupSeparator:   ",",
	}
}

// Format renders d with two fractional digits and grouped thousands
func (f NumberFormat) Format(d decimal.Decimal) string {
	fixed := d.StringFixed(models.AmountPlaces)

	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign, fixed = "-", fixed[1:]
	}

	intPart, fracPart, _ := strings.Cut(fixed, ".")

	decimalSep := f.DecimalSeparator
	if decimalSep == "" {
		decimalSep = "."
	}

	return sign + groupDigits(intPart, f.GroupSeparator) + decimalSep + fracPart
}

func groupDigits(digits, sep string) string {
	if sep == "" || len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteString(sep)
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

type reportFormatter struct {
	format NumberFormat
}

// NewReportFormatter creates a new report formatter
func NewReportFormatter(format NumberFormat) ReportFormatterInterface {
	return &reportFormatter{
		format: format,
	}
}

// CalculateTotals returns the sum of positive amounts and the magnitude of
// the sum of negative amounts, both rounded to 2 places.
func (f *reportFormatter) CalculateTotals(ledger models.Ledger) (decimal.Decimal, decimal.Decimal) {
	totalIn := decimal.Zero
	totalOut := decimal.Zero

	for _, txn := range ledger {
		switch {
		case txn.Amount.IsPositive():
			totalIn = totalIn.Add(txn.Amount)
		case txn.Amount.IsNegative():
			totalOut = totalOut.Add(txn.Amount)
		}
	}

	return totalIn.Round(models.AmountPlaces), totalOut.Abs().Round(models.AmountPlaces)
}

// Summarize computes the summary totals of ledger and renders them. When the
// ledger was already narrowed to outgoing transactions its amounts are
// positive, so they are reported as money out.
func (f *reportFormatter) Summarize(ledger models.Ledger, direction models.Direction, savingsKeywords []string) (*models.SummaryReport, error) {
	if err := ledger.Validate(); err != nil {
		return nil, err
	}

	totalIn, totalOut := f.CalculateTotals(ledger)
	if direction == models.DirectionOutgoing && totalOut.IsZero() {
		totalIn, totalOut = decimal.Zero, totalIn
	}

	report := &models.SummaryReport{
		TotalIn:    totalIn,
		TotalOut:   totalOut,
		Difference: difference(totalIn, totalOut),
	}

	if keywords := normalizeKeywords(savingsKeywords); len(keywords) > 0 {
		// Payments into the savings account leave the statement, so the
		// statement's outgoing side is the savings account's incoming side.
		paidIn, paidOut := f.CalculateTotals(IsolateKeywords(ledger, keywords))
		report.Savings = &models.SavingsReport{
			SavingsIn:    paidOut,
			SavingsOut:   paidIn,
			TotalSavings: paidIn.Sub(paidOut).Abs().Round(models.AmountPlaces),
		}
	}

	report.Text = f.render(report)
	return report, nil
}

func (f *reportFormatter) render(report *models.SummaryReport) string {
	text := block(
		fmt.Sprintf("Total in: %s", f.format.Format(report.TotalIn)),
		fmt.Sprintf("Total out: %s", f.format.Format(report.TotalOut)),
		fmt.Sprintf("Difference: %s", f.format.Format(report.Difference)),
	)

	if report.Savings != nil {
		text += "\n" + block(
			fmt.Sprintf("Savings in: %s", f.format.Format(report.Savings.SavingsIn)),
			fmt.Sprintf("Savings out: %s", f.format.Format(report.Savings.SavingsOut)),
			fmt.Sprintf("Total Savings: %s", f.format.Format(report.Savings.TotalSavings)),
		)
	}

	return text
}

func block(lines ...string) string {
	var b strings.Builder
	b.WriteString("{\n")
	for _, line := range lines {
		b.WriteString("  ")
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("}")
	return b.String()
}

func difference(totalIn, totalOut decimal.Decimal) decimal.Decimal {
	if totalIn.IsZero() || totalOut.IsZero() {
		return decimal.Zero
	}
	return totalIn.Sub(totalOut).Abs().Round(models.AmountPlaces)
}
