package dto

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"statement-analyzer/internal/models"

	"github.com/shopspring/decimal"
)

const isoDateLayout = "2006-01-02"

var (
	ErrInvalidDate   = errors.New("invalid date")
	ErrInvalidAmount = errors.New("invalid amount")
)

// AnalysisRequest carries the dashboard controls. Keyword fields are comma
// separated lists. The same fields are read from the query string on GET.
type AnalysisRequest struct {
	StartDate  string   `json:"start_date" query:"start_date" validate:"omitempty,iso_date"`
	EndDate    string   `json:"end_date" query:"end_date" validate:"omitempty,iso_date"`
	Directions []string `json:"directions" query:"direction" validate:"omitempty,max=2,dive,direction"`
	Isolate    string   `json:"isolate" query:"isolate" validate:"max=1000"`
	Remove     string   `json:"remove" query:"remove" validate:"max=1000"`
	MinAmount  string   `json:"min_amount" query:"min_amount" validate:"omitempty,decimal_amount"`
	MaxAmount  string   `json:"max_amount" query:"max_amount" validate:"omitempty,decimal_amount"`
	ChartType  string   `json:"chart_type" query:"chart_type" validate:"omitempty,chart_type"`
	MaxList    int      `json:"max_list" query:"max_list" validate:"gte=0,lte=500"`
	Savings    string   `json:"savings" query:"savings" validate:"max=1000"`
}

// ToCriteria converts the request into filter criteria. A zero MaxList takes
// defaultMaxList.
func (r *AnalysisRequest) ToCriteria(defaultMaxList int) (models.FilterCriteria, error) {
	criteria := models.FilterCriteria{
		IsolateKeywords: splitKeywords(r.Isolate),
		RemoveKeywords:  splitKeywords(r.Remove),
		SavingsKeywords: splitKeywords(r.Savings),
		ChartType:       models.ChartType(r.ChartType),
		MaxList:         r.MaxList,
	}
	if criteria.MaxList <= 0 {
		criteria.MaxList = defaultMaxList
	}

	for _, d := range r.Directions {
		criteria.Directions = append(criteria.Directions, models.Direction(d))
	}

	var err error
	if criteria.StartDate, err = parseOptionalDate("start_date", r.StartDate); err != nil {
		return models.FilterCriteria{}, err
	}
	if criteria.EndDate, err = parseOptionalDate("end_date", r.EndDate); err != nil {
		return models.FilterCriteria{}, err
	}
	if criteria.MinAmount, err = parseOptionalAmount("min_amount", r.MinAmount); err != nil {
		return models.FilterCriteria{}, err
	}
	if criteria.MaxAmount, err = parseOptionalAmount("max_amount", r.MaxAmount); err != nil {
		return models.FilterCriteria{}, err
	}

	return criteria, nil
}

func parseOptionalDate(field, value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(isoDateLayout, value)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", field, ErrInvalidDate)
	}
	return &t, nil
}

func parseOptionalAmount(field, value string) (*decimal.Decimal, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	amount, err := decimal.NewFromString(value)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", field, ErrInvalidAmount)
	}
	return &amount, nil
}

// splitKeywords keeps empty entries; the filters drop them after trimming
func splitKeywords(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	return strings.Split(raw, ",")
}

// AnalysisResponse is the dashboard view of one analysis pass
type AnalysisResponse struct {
	SessionID         string                `json:"session_id"`
	MaxList           int                   `json:"max_list"`
	Direction         models.Direction      `json:"direction"`
	LedgerCount       int                   `json:"ledger_count"`
	DateFilteredCount int                   `json:"date_filtered_count"`
	FilteredCount     int                   `json:"filtered_count"`
	Tables            models.AnalysisTables `json:"tables"`
	Chart             models.ChartSeries    `json:"chart"`
	Summary           SummaryResponse       `json:"summary"`
	Transactions      []TransactionResponse `json:"transactions"`
}

// SummaryResponse carries the summary totals as fixed 2 decimal strings
type SummaryResponse struct {
	TotalIn    string           `json:"total_in"`
	TotalOut   string           `json:"total_out"`
	Difference string           `json:"difference"`
	Savings    *SavingsResponse `json:"savings,omitempty"`
	Text       string           `json:"text"`
}

type SavingsResponse struct {
	SavingsIn    string `json:"savings_in"`
	SavingsOut   string `json:"savings_out"`
	TotalSavings string `json:"total_savings"`
}

// TransactionResponse is one ledger row with an ISO date and a fixed 2
// decimal amount
type TransactionResponse struct {
	Date    string `json:"date"`
	Details string `json:"details"`
	Amount  string `json:"amount"`
}

// TransactionListResponse is the fully filtered ledger
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Count        int                   `json:"count"`
	TotalIn      string                `json:"total_in"`
	TotalOut     string                `json:"total_out"`
}

func NewSummaryResponse(report *models.SummaryReport) SummaryResponse {
	if report == nil {
		return SummaryResponse{}
	}

	response := SummaryResponse{
		TotalIn:    report.TotalIn.StringFixed(models.AmountPlaces),
		TotalOut:   report.TotalOut.StringFixed(models.AmountPlaces),
		Difference: report.Difference.StringFixed(models.AmountPlaces),
		Text:       report.Text,
	}
	if report.Savings != nil {
		response.Savings = &SavingsResponse{
			SavingsIn:    report.Savings.SavingsIn.StringFixed(models.AmountPlaces),
			SavingsOut:   report.Savings.SavingsOut.StringFixed(models.AmountPlaces),
			TotalSavings: report.Savings.TotalSavings.StringFixed(models.AmountPlaces),
		}
	}
	return response
}

func NewTransactionResponses(ledger models.Ledger) []TransactionResponse {
	rows := make([]TransactionResponse, len(ledger))
	for i, txn := range ledger {
		rows[i] = TransactionResponse{
			Date:    txn.Date.Format(isoDateLayout),
			Details: txn.Details,
			Amount:  txn.Amount.StringFixed(models.AmountPlaces),
		}
	}
	return rows
}

// NewAnalysisResponse flattens a result together with its display tables
func NewAnalysisResponse(sessionID string, result *models.AnalysisResult, tables models.AnalysisTables) *AnalysisResponse {
	return &AnalysisResponse{
		SessionID:         sessionID,
		MaxList:           result.MaxList,
		Direction:         result.Direction,
		LedgerCount:       result.LedgerCount,
		DateFilteredCount: result.DateFilteredCount,
		FilteredCount:     result.FilteredCount,
		Tables:            tables,
		Chart:             result.Chart,
		Summary:           NewSummaryResponse(result.Report),
		Transactions:      NewTransactionResponses(result.Transactions),
	}
}
