package handlers

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"statement-analyzer/internal/dto"
	"statement-analyzer/internal/errors"
	"statement-analyzer/internal/models"
	"statement-analyzer/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const uploadFormField = "file"

var (
	errMissingUpload  = stderrors.New("missing upload")
	errUploadTooLarge = stderrors.New("upload too large")

	errInvalidParameters = stderrors.New("invalid request parameters")
)

// upload is a statement file received from a client
type upload struct {
	Filename string
	Content  []byte
}

// getSessionID parses the :sessionId path parameter
func getSessionID(c echo.Context) (uuid.UUID, error) {
	return uuid.Parse(c.Param("sessionId"))
}

// readUpload accepts either a multipart form with a "file" field or a JSON
// dto.UploadRequest carrying a base64 data URL
func readUpload(c echo.Context, maxBytes int64) (*upload, error) {
	contentType := c.Request().Header.Get(echo.HeaderContentType)
	if strings.HasPrefix(contentType, echo.MIMEMultipartForm) {
		return readMultipartUpload(c, maxBytes)
	}

	var req dto.UploadRequest
	if err := c.Bind(&req); err != nil {
		return nil, err
	}
	if req.Filename == "" || req.Contents == "" {
		return nil, errMissingUpload
	}
	if err := c.Validate(req); err != nil {
		return nil, err
	}

	content, err := req.Decode()
	if err != nil {
		return nil, err
	}
	if int64(len(content)) > maxBytes {
		return nil, errUploadTooLarge
	}
	if len(content) == 0 {
		return nil, errMissingUpload
	}

	return &upload{Filename: req.Filename, Content: content}, nil
}

func readMultipartUpload(c echo.Context, maxBytes int64) (*upload, error) {
	fileHeader, err := c.FormFile(uploadFormField)
	if err != nil {
		if stderrors.Is(err, http.ErrMissingFile) {
			return nil, errMissingUpload
		}
		return nil, err
	}
	if fileHeader.Size > maxBytes {
		return nil, errUploadTooLarge
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open upload: %w", err)
	}
	defer file.Close()

	content, err := io.ReadAll(io.LimitReader(file, maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}
	if int64(len(content)) > maxBytes {
		return nil, errUploadTooLarge
	}
	if len(content) == 0 {
		return nil, errMissingUpload
	}

	return &upload{Filename: fileHeader.Filename, Content: content}, nil
}

// sendUploadError maps readUpload failures to API errors
func sendUploadError(c echo.Context, err error) error {
	var httpErr *echo.HTTPError
	switch {
	case stderrors.Is(err, errMissingUpload):
		return SendError(c, errors.LedgerMissingUpload,
			errors.WithDetails(fmt.Sprintf("send a multipart %q field or a JSON filename and contents", uploadFormField)),
			errors.WithExample(models.ExampleCSV))
	case stderrors.Is(err, errUploadTooLarge):
		return SendError(c, errors.LedgerUploadTooLarge)
	case stderrors.Is(err, dto.ErrInvalidDataURL):
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("contents: "+err.Error()))
	case stderrors.As(err, &httpErr):
		if httpErr.Code == http.StatusRequestEntityTooLarge {
			return SendError(c, errors.LedgerUploadTooLarge)
		}
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	default:
		// validator errors are formatted by the HTTP error handler
		return err
	}
}

// sendServiceError maps session and ledger loading failures to API errors
func sendServiceError(c echo.Context, err error) error {
	var (
		extErr    *models.ExtensionError
		schemaErr *models.SchemaError
		parseErr  *models.ParseError
	)

	switch {
	case stderrors.Is(err, services.ErrSessionNotFound):
		return SendError(c, errors.SessionNotFound)
	case stderrors.As(err, &extErr):
		return SendError(c, errors.LedgerInvalidExtension,
			errors.WithDetails("filename: "+extErr.Filename),
			errors.WithExample(models.ExampleCSV))
	case stderrors.As(err, &schemaErr):
		return SendError(c, errors.LedgerInvalidSchema,
			errors.WithDetails(schemaErrorDetails(schemaErr)...),
			errors.WithExample(models.ExampleCSV))
	case stderrors.As(err, &parseErr):
		return SendError(c, errors.LedgerParseFailed,
			errors.WithMessage(parseErr.Error()),
			errors.WithDetails(parseErrorDetails(parseErr)...),
			errors.WithExample(models.ExampleCSV))
	case stderrors.Is(err, context.Canceled), stderrors.Is(err, context.DeadlineExceeded):
		return SendError(c, errors.SystemServiceUnavailable, errors.WithDetails("request cancelled"))
	default:
		return SendSystemError(c, err)
	}
}

// sendAnalysisError maps analysis failures to API errors. A stored ledger
// that fails validation is reported as ANALYSIS_001.
func sendAnalysisError(c echo.Context, err error) error {
	var schemaErr *models.SchemaError
	if stderrors.As(err, &schemaErr) {
		return SendError(c, errors.AnalysisInvalidLedger, errors.WithDetails(schemaErr.Error()))
	}
	return sendServiceError(c, err)
}

// sendCriteriaError maps criteria binding failures to API errors
func sendCriteriaError(c echo.Context, err error) error {
	var validationErrs validator.ValidationErrors
	switch {
	case stderrors.As(err, &validationErrs):
		// formatted by the HTTP error handler
		return err
	case stderrors.Is(err, dto.ErrInvalidDate):
		return SendError(c, errors.ValidationInvalidDate, errors.WithDetails(err.Error()))
	case stderrors.Is(err, dto.ErrInvalidAmount):
		return SendError(c, errors.ValidationInvalidAmount, errors.WithDetails(err.Error()))
	default:
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}
}

func parseErrorDetails(err *models.ParseError) []string {
	details := []string{fmt.Sprintf("line: %d", err.Line)}
	if err.Column != "" {
		details = append(details, "column: "+err.Column, "value: "+err.Value)
	}
	return details
}

func schemaErrorDetails(err *models.SchemaError) []string {
	if err.Reason == "" {
		return nil
	}
	return []string{err.Reason}
}
