package handlers

import (
	"log/slog"
	"net/http"

	"statement-analyzer/internal/dto"
	"statement-analyzer/internal/errors"
	"statement-analyzer/internal/services"

	"github.com/labstack/echo/v4"
)

// SessionHandler handles statement uploads and session lifecycle requests
type SessionHandler struct {
	sessionService services.SessionServiceInterface
	maxUploadBytes int64
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(sessionService services.SessionServiceInterface, maxUploadBytes int64) *SessionHandler {
	return &SessionHandler{
		sessionService: sessionService,
		maxUploadBytes: maxUploadBytes,
	}
}

// CreateSession loads an uploaded statement into a new session
// @Summary Upload a statement
// @Description Loads a Date,Details,Amount CSV statement into a new session. Accepts a multipart "file" field or a JSON body with a base64 data URL.
// @Tags Sessions
// @Accept multipart/form-data,json
// @Produce json
// @Param file formData file false "CSV statement"
// @Param request body dto.UploadRequest false "Statement as a data URL"
// @Success 201 {object} dto.SessionResponse "Session created"
// @Failure 400 {object} errors.ErrorResponse "LEDGER_001 - Not a .csv file or LEDGER_004 - Missing upload"
// @Failure 413 {object} errors.ErrorResponse "LEDGER_005 - Upload too large"
// @Failure 422 {object} errors.ErrorResponse "LEDGER_002 - Wrong layout or LEDGER_003 - Unreadable value"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /sessions [post]
func (h *SessionHandler) CreateSession(c echo.Context) error {
	ctx := c.Request().Context()

	file, err := readUpload(c, h.maxUploadBytes)
	if err != nil {
		slog.WarnContext(ctx, "Rejected statement upload", "error", err)
		return sendUploadError(c, err)
	}

	session, err := h.sessionService.CreateSession(ctx, file.Filename, file.Content)
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.NewSessionResponse(session))
}

// ReplaceLedger replaces the ledger held by a session
// @Summary Replace a session's statement
// @Description Replaces the session's ledger wholesale. The previous ledger is kept when the new file is rejected.
// @Tags Sessions
// @Accept multipart/form-data,json
// @Produce json
// @Param sessionId path string true "Session ID (UUID)"
// @Success 200 {object} dto.SessionResponse "Ledger replaced"
// @Failure 400 {object} errors.ErrorResponse "SESSION_002 - Invalid session ID"
// @Failure 404 {object} errors.ErrorResponse "SESSION_001 - Session not found or expired"
// @Failure 422 {object} errors.ErrorResponse "LEDGER_002 or LEDGER_003 - Statement rejected"
// @Router /sessions/{sessionId}/ledger [put]
func (h *SessionHandler) ReplaceLedger(c echo.Context) error {
	ctx := c.Request().Context()

	sessionID, err := getSessionID(c)
	if err != nil {
		return SendError(c, errors.SessionInvalidID)
	}

	file, err := readUpload(c, h.maxUploadBytes)
	if err != nil {
		slog.WarnContext(ctx, "Rejected statement upload", "session_id", sessionID, "error", err)
		return sendUploadError(c, err)
	}

	session, err := h.sessionService.ReplaceLedger(ctx, sessionID, file.Filename, file.Content)
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewSessionResponse(session))
}

// GetSession returns a session header
// @Summary Get a session
// @Tags Sessions
// @Produce json
// @Param sessionId path string true "Session ID (UUID)"
// @Success 200 {object} dto.SessionResponse "Session"
// @Failure 400 {object} errors.ErrorResponse "SESSION_002 - Invalid session ID"
// @Failure 404 {object} errors.ErrorResponse "SESSION_001 - Session not found or expired"
// @Router /sessions/{sessionId} [get]
func (h *SessionHandler) GetSession(c echo.Context) error {
	sessionID, err := getSessionID(c)
	if err != nil {
		return SendError(c, errors.SessionInvalidID)
	}

	session, err := h.sessionService.GetSession(c.Request().Context(), sessionID)
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewSessionResponse(session))
}

// DeleteSession drops a session and its ledger
// @Summary Delete a session
// @Tags Sessions
// @Param sessionId path string true "Session ID (UUID)"
// @Success 204 "Session deleted"
// @Failure 400 {object} errors.ErrorResponse "SESSION_002 - Invalid session ID"
// @Failure 404 {object} errors.ErrorResponse "SESSION_001 - Session not found"
// @Router /sessions/{sessionId} [delete]
func (h *SessionHandler) DeleteSession(c echo.Context) error {
	sessionID, err := getSessionID(c)
	if err != nil {
		return SendError(c, errors.SessionInvalidID)
	}

	if err := h.sessionService.DeleteSession(c.Request().Context(), sessionID); err != nil {
		return sendServiceError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
