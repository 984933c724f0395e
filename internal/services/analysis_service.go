package services

import (
	"fmt"
	"log/slog"
	"time"

	"statement-analyzer/internal/models"
)

type analysisService struct {
	aggregation AggregationServiceInterface
	formatter   ReportFormatterInterface
	metrics     MetricsRecorderInterface
}

// NewAnalysisService creates a new analysis service
func NewAnalysisService(
	aggregation AggregationServiceInterface,
	formatter ReportFormatterInterface,
	metrics MetricsRecorderInterface,
) AnalysisServiceInterface {
	return &analysisService{
		aggregation: aggregation,
		formatter:   formatter,
		metrics:     metrics,
	}
}

// Analyze runs one full pass. The aggregate tables only see the date filter;
// the summary, chart and transaction list see every filter.
func (s *analysisService) Analyze(ledger models.Ledger, criteria models.FilterCriteria) (*models.AnalysisResult, error) {
	start := time.Now()

	result, err := s.analyze(ledger, criteria)
	if err != nil {
		s.incrementCounter("analysis.failed")
		slog.Warn("Analysis failed", "rows", len(ledger), "error", err)
		return nil, err
	}

	s.incrementCounter("analysis.success")
	if s.metrics != nil {
		s.metrics.RecordProcessingTime("analysis", time.Since(start))
	}

	slog.Debug("Analysis completed",
		"rows", result.LedgerCount,
		"date_filtered", result.DateFilteredCount,
		"filtered", result.FilteredCount,
		"chart_type", result.ChartType)

	return result, nil
}

func (s *analysisService) analyze(ledger models.Ledger, criteria models.FilterCriteria) (*models.AnalysisResult, error) {
	maxList := criteria.EffectiveMaxList()
	direction := criteria.EffectiveDirection()
	chartType := criteria.EffectiveChartType()

	dateFiltered, filtered := ApplyFilterChain(ledger, criteria)

	repeats, err := s.aggregation.TopRepeatTransactions(dateFiltered, maxList)
	if err != nil {
		return nil, fmt.Errorf("failed to compute repeat transactions: %w", err)
	}

	singles, err := s.aggregation.TopSinglePayments(dateFiltered, maxList)
	if err != nil {
		return nil, fmt.Errorf("failed to compute single payments: %w", err)
	}

	report, err := s.formatter.Summarize(filtered, direction, criteria.SavingsKeywords)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize transactions: %w", err)
	}

	return &models.AnalysisResult{
		MaxList:           maxList,
		Direction:         direction,
		ChartType:         chartType,
		LedgerCount:       len(ledger),
		DateFilteredCount: len(dateFiltered),
		FilteredCount:     len(filtered),
		TopRepeat:         repeats,
		TopSingleIncoming: singles.Incoming,
		TopSingleOutgoing: singles.Outgoing,
		Transactions:      filtered,
		Chart:             ProjectChart(filtered, chartType),
		Report:            report,
	}, nil
}

// FilterTransactions returns the fully filtered sequence
func (s *analysisService) FilterTransactions(ledger models.Ledger, criteria models.FilterCriteria) models.Ledger {
	_, filtered := ApplyFilterChain(ledger, criteria)
	return filtered
}

func (s *analysisService) incrementCounter(name string) {
	if s.metrics != nil {
		s.metrics.IncrementCounter(name, nil)
	}
}
