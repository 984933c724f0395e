package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"statement-analyzer/internal/models"

	"github.com/shopspring/decimal"
)

const (
	columnDate    = "Date"
	columnDetails = "Details"
	columnAmount  = "Amount"
)

var (
	ErrNotANumber       = errors.New("not a number")
	ErrUnrecognizedDate = errors.New("unrecognized date format")
	utf8BOM             = []byte{0xEF, 0xBB, 0xBF}
	expectedHeader      = []string{columnDate, columnDetails, columnAmount}
)

// Date layouts tried in order. Day-first layouts come before month-first ones
// so 05/06/2023 is the 5th of June, while 12/25/2023 still parses.
var (
	dayFirstLayouts = []string{
		"2/1/2006",
		"2-1-2006",
		"2.1.2006",
		"2/1/06",
		"2-1-06",
		"2.1.06",
		"2006-1-2",
		"2006/1/2",
		"2 Jan 2006",
		"2-Jan-2006",
		"2 January 2006",
		"2-Jan-06",
	}
	monthFirstLayouts = []string{
		"1/2/2006",
		"1-2-2006",
		"1/2/06",
		"Jan 2 2006",
		"Jan 2, 2006",
	}
	timeOfDaySuffixes = []string{"", " 15:04", " 15:04:05", "T15:04:05", "T15:04:05Z07:00"}
	dateLayouts       = expandDateLayouts(append(append([]string{}, dayFirstLayouts...), monthFirstLayouts...))
)

type ledgerLoader struct {
	metrics MetricsRecorderInterface
}

// NewLedgerLoader creates a new ledger loader
func NewLedgerLoader(metrics MetricsRecorderInterface) LedgerLoaderInterface {
	return &ledgerLoader{
		metrics: metrics,
	}
}

// Load parses a Date,Details,Amount statement. Loading is all-or-nothing: the
// first invalid row fails the whole file.
func (l *ledgerLoader) Load(ctx context.Context, filename string, content []byte) (models.Ledger, error) {
	start := time.Now()

	ledger, err := l.load(ctx, filename, content)
	if err != nil {
		l.recordFailure(err)
		slog.Warn("Failed to load ledger", "filename", filename, "error", err)
		return nil, err
	}

	if l.metrics != nil {
		l.metrics.IncrementCounter("ledger.load.success", nil)
		l.metrics.RecordProcessingTime("ledger.load", time.Since(start))
		l.metrics.RecordGauge("ledger.rows", float64(len(ledger)), nil)
	}

	slog.Info("Ledger loaded", "filename", filename, "rows", len(ledger))
	return ledger, nil
}

func (l *ledgerLoader) load(ctx context.Context, filename string, content []byte) (models.Ledger, error) {
	if !strings.HasSuffix(filename, ".csv") {
		return nil, &models.ExtensionError{Filename: filename}
	}

	content = bytes.TrimPrefix(content, utf8BOM)
	if !utf8.Valid(content) {
		return nil, &models.ParseError{Line: 0, Err: models.ErrInvalidEncoding}
	}

	reader := csv.NewReader(bytes.NewReader(content))
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, &models.SchemaError{Reason: "file is empty"}
	}
	if err != nil {
		return nil, &models.SchemaError{Reason: "unreadable header", Err: err}
	}
	if !isExpectedHeader(header) {
		return nil, &models.SchemaError{Reason: fmt.Sprintf("got %s", strings.Join(header, ","))}
	}

	ledger := make(models.Ledger, 0, bytes.Count(content, []byte{'\n'}))
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, csvParseError(err)
		}

		line, _ := reader.FieldPos(0)
		txn, err := parseRecord(line, record)
		if err != nil {
			return nil, err
		}
		ledger = append(ledger, txn)
	}

	return ledger, nil
}

func (l *ledgerLoader) recordFailure(err error) {
	if l.metrics == nil {
		return
	}
	l.metrics.IncrementCounter("ledger.load.failed", map[string]string{"reason": loadFailureReason(err)})
}

func loadFailureReason(err error) string {
	var extErr *models.ExtensionError
	var schemaErr *models.SchemaError
	var parseErr *models.ParseError

	switch {
	case errors.As(err, &extErr):
		return "extension"
	case errors.As(err, &schemaErr):
		return "schema"
	case errors.As(err, &parseErr):
		return "parse"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "cancelled"
	default:
		return "unknown"
	}
}

func isExpectedHeader(header []string) bool {
	if len(header) != len(expectedHeader) {
		return false
	}
	for i, name := range expectedHeader {
		if header[i] != name {
			return false
		}
	}
	return true
}

func csvParseError(err error) error {
	var csvErr *csv.ParseError
	if errors.As(err, &csvErr) {
		return &models.ParseError{Line: csvErr.Line, Err: csvErr.Err}
	}
	return &models.ParseError{Err: err}
}

func parseRecord(line int, record []string) (models.Transaction, error) {
	if len(record) != len(expectedHeader) {
		return models.Transaction{}, &models.ParseError{Line: line, Err: models.ErrFieldCount}
	}

	date, err := parseStatementDate(record[0])
	if err != nil {
		return models.Transaction{}, &models.ParseError{Line: line, Column: columnDate, Value: record[0], Err: err}
	}

	details := strings.ReplaceAll(record[1], ")", "")
	if details == "" {
		return models.Transaction{}, &models.ParseError{Line: line, Column: columnDetails, Value: record[1], Err: models.ErrValueRequired}
	}

	amount, err := parseStatementAmount(record[2])
	if err != nil {
		return models.Transaction{}, &models.ParseError{Line: line, Column: columnAmount, Value: record[2], Err: err}
	}

	return models.NewTransaction(date, details, amount), nil
}

// parseStatementAmount accepts signed decimals with optional thousands commas
func parseStatementAmount(raw string) (decimal.Decimal, error) {
	cleaned := strings.TrimSpace(strings.ReplaceAll(raw, ",", ""))
	if cleaned == "" {
		return decimal.Zero, models.ErrValueRequired
	}
	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, ErrNotANumber
	}
	return amount.Round(models.AmountPlaces), nil
}

// parseStatementDate parses a date day-first, falling back to month-first
// only when no day-first reading exists.
func parseStatementDate(raw string) (time.Time, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return time.Time{}, models.ErrValueRequired
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return models.CalendarDate(t), nil
		}
	}
	return time.Time{}, ErrUnrecognizedDate
}

func expandDateLayouts(base []string) []string {
	layouts := make([]string, 0, len(base)*len(timeOfDaySuffixes))
	for _, layout := range base {
		for _, suffix := range timeOfDaySuffixes {
			layouts = append(layouts, layout+suffix)
		}
	}
	return layouts
}
