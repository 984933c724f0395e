package handlers

import (
	"log/slog"
	"net/http"

	"statement-analyzer/internal/dto"
	"statement-analyzer/internal/errors"
	"statement-analyzer/internal/models"
	"statement-analyzer/internal/services"

	"github.com/labstack/echo/v4"
)

const (
	formatCSV           = "csv"
	transactionsCSVName = "transactions.csv"
	csvMIME             = "text/csv; charset=utf-8"
)

// AnalysisHandler serves analyses of the ledger held by a session
type AnalysisHandler struct {
	sessionService  services.SessionServiceInterface
	analysisService services.AnalysisServiceInterface
	formatter       services.ReportFormatterInterface
	defaultMaxList  int
}

// NewAnalysisHandler creates a new analysis handler
func NewAnalysisHandler(
	sessionService services.SessionServiceInterface,
	analysisService services.AnalysisServiceInterface,
	formatter services.ReportFormatterInterface,
	defaultMaxList int,
) *AnalysisHandler {
	return &AnalysisHandler{
		sessionService:  sessionService,
		analysisService: analysisService,
		formatter:       formatter,
		defaultMaxList:  defaultMaxList,
	}
}

// Analyze runs the filter chain and every report over the session ledger
// @Summary Analyze a statement
// @Description Top repeat and single payments from the date-filtered ledger; chart, transactions and summary from the fully filtered ledger
// @Tags Analysis
// @Accept json
// @Produce json
// @Param sessionId path string true "Session ID (UUID)"
// @Param request body dto.AnalysisRequest true "Analysis criteria"
// @Success 200 {object} dto.AnalysisResponse "Analysis"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid criteria or SESSION_002 - Invalid session ID"
// @Failure 404 {object} errors.ErrorResponse "SESSION_001 - Session not found or expired"
// @Failure 422 {object} errors.ErrorResponse "ANALYSIS_001 - Stored ledger cannot be analyzed"
// @Router /sessions/{sessionId}/analysis [post]
func (h *AnalysisHandler) Analyze(c echo.Context) error {
	ctx := c.Request().Context()

	sessionID, err := getSessionID(c)
	if err != nil {
		return SendError(c, errors.SessionInvalidID)
	}

	criteria, err := h.bindCriteria(c)
	if err != nil {
		return sendCriteriaError(c, err)
	}

	ledger, err := h.sessionService.GetLedger(ctx, sessionID)
	if err != nil {
		return sendServiceError(c, err)
	}

	result, err := h.analysisService.Analyze(ledger, *criteria)
	if err != nil {
		return sendAnalysisError(c, err)
	}

	slog.InfoContext(ctx, "Analysis completed",
		"session_id", sessionID,
		"rows", result.LedgerCount,
		"filtered", result.FilteredCount,
		"chart", result.Chart.Type)

	return c.JSON(http.StatusOK, dto.NewAnalysisResponse(sessionID.String(), result, services.ProjectTables(result)))
}

// Summary renders the summary text for the fully filtered ledger
// @Summary Summary text
// @Tags Analysis
// @Produce plain
// @Param sessionId path string true "Session ID (UUID)"
// @Param start_date query string false "Start date (YYYY-MM-DD)"
// @Param end_date query string false "End date (YYYY-MM-DD)"
// @Param direction query []string false "paid_in and/or paid_out"
// @Param savings query string false "Comma separated savings keywords"
// @Success 200 {string} string "Summary text"
// @Failure 404 {object} errors.ErrorResponse "SESSION_001 - Session not found or expired"
// @Router /sessions/{sessionId}/summary [get]
func (h *AnalysisHandler) Summary(c echo.Context) error {
	sessionID, err := getSessionID(c)
	if err != nil {
		return SendError(c, errors.SessionInvalidID)
	}

	criteria, err := h.bindCriteria(c)
	if err != nil {
		return sendCriteriaError(c, err)
	}

	ledger, err := h.sessionService.GetLedger(c.Request().Context(), sessionID)
	if err != nil {
		return sendServiceError(c, err)
	}

	filtered := h.analysisService.FilterTransactions(ledger, *criteria)
	report, err := h.formatter.Summarize(filtered, criteria.EffectiveDirection(), criteria.SavingsKeywords)
	if err != nil {
		return sendAnalysisError(c, err)
	}

	return c.String(http.StatusOK, report.Text)
}

// Transactions returns the fully filtered ledger as JSON, or as a CSV file
// in the upload layout when format=csv
// @Summary Filtered transactions
// @Tags Analysis
// @Produce json,text/csv
// @Param sessionId path string true "Session ID (UUID)"
// @Param format query string false "csv for a file download" Enums(csv)
// @Success 200 {object} dto.TransactionListResponse "Transactions"
// @Failure 404 {object} errors.ErrorResponse "SESSION_001 - Session not found or expired"
// @Router /sessions/{sessionId}/transactions [get]
func (h *AnalysisHandler) Transactions(c echo.Context) error {
	sessionID, err := getSessionID(c)
	if err != nil {
		return SendError(c, errors.SessionInvalidID)
	}

	criteria, err := h.bindCriteria(c)
	if err != nil {
		return sendCriteriaError(c, err)
	}

	ledger, err := h.sessionService.GetLedger(c.Request().Context(), sessionID)
	if err != nil {
		return sendServiceError(c, err)
	}

	filtered := h.analysisService.FilterTransactions(ledger, *criteria)

	if c.QueryParam("format") == formatCSV {
		c.Response().Header().Set(echo.HeaderContentType, csvMIME)
		c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+transactionsCSVName+`"`)
		c.Response().WriteHeader(http.StatusOK)
		return services.WriteLedgerCSV(c.Response(), filtered)
	}

	totalIn, totalOut := h.formatter.CalculateTotals(filtered)
	return c.JSON(http.StatusOK, dto.TransactionListResponse{
		Transactions: dto.NewTransactionResponses(filtered),
		Count:        len(filtered),
		TotalIn:      totalIn.StringFixed(models.AmountPlaces),
		TotalOut:     totalOut.StringFixed(models.AmountPlaces),
	})
}

// SampleCSV serves a small statement in the accepted layout
// @Summary Example statement
// @Tags Analysis
// @Produce text/csv
// @Success 200 {string} string "Example CSV"
// @Router /sample.csv [get]
func (h *AnalysisHandler) SampleCSV(c echo.Context) error {
	return c.Blob(http.StatusOK, csvMIME, []byte(models.ExampleCSV))
}

// bindCriteria reads the analysis criteria from the JSON body or, on GET,
// the query string
func (h *AnalysisHandler) bindCriteria(c echo.Context) (*models.FilterCriteria, error) {
	var req dto.AnalysisRequest
	if c.Request().Method == http.MethodGet || c.Request().ContentLength != 0 {
		if err := c.Bind(&req); err != nil {
			return nil, errInvalidParameters
		}
	}

	if err := c.Validate(req); err != nil {
		return nil, err
	}

	criteria, err := req.ToCriteria(h.defaultMaxList)
	if err != nil {
		return nil, err
	}
	return &criteria, nil
}
