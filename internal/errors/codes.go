package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Ledger ingestion error codes (LEDGER_*)
const (
	LedgerInvalidExtension ErrorCode = "LEDGER_001"
	LedgerInvalidSchema    ErrorCode = "LEDGER_002"
	LedgerParseFailed      ErrorCode = "LEDGER_003"
	LedgerMissingUpload    ErrorCode = "LEDGER_004"
	LedgerUploadTooLarge   ErrorCode = "LEDGER_005"
)

// Session error codes (SESSION_*)
const (
	SessionNotFound  ErrorCode = "SESSION_001"
	SessionInvalidID ErrorCode = "SESSION_002"
)

// Analysis error codes (ANALYSIS_*)
const (
	AnalysisInvalidLedger ErrorCode = "ANALYSIS_001"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
	ValidationInvalidDate   ErrorCode = "VALIDATION_005"
	ValidationInvalidAmount ErrorCode = "VALIDATION_006"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemConfigurationError ErrorCode = "SYSTEM_004"
	SystemUnexpectedError    ErrorCode = "SYSTEM_005"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_006"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Ledger errors
	LedgerInvalidExtension: "Please select a .csv file",
	LedgerInvalidSchema:    "CSV layout should be: Date,Details,Amount",
	LedgerParseFailed:      "The statement contains a value that could not be read",
	LedgerMissingUpload:    "A statement file is required",
	LedgerUploadTooLarge:   "The statement file is too large",

	// Session errors
	SessionNotFound:  "Session not found or expired",
	SessionInvalidID: "Invalid session ID format",

	// Analysis errors
	AnalysisInvalidLedger: "The stored ledger could not be analyzed",

	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",
	ValidationInvalidDate:   "Invalid date format, expected YYYY-MM-DD",
	ValidationInvalidAmount: "Invalid amount, expected a decimal number",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemConfigurationError: "System configuration error",
	SystemUnexpectedError:    "An unexpected error occurred",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
