package errors

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
)

// CodesTestSuite defines the test suite for error codes
type CodesTestSuite struct {
	suite.Suite
}

func TestCodesTestSuite(t *testing.T) {
	suite.Run(t, new(CodesTestSuite))
}

func (s *CodesTestSuite) TestGetErrorMessage_ValidCode() {
	testCases := []struct {
		name     string
		code     ErrorCode
		expected string
	}{
		{"Ledger Invalid Extension", LedgerInvalidExtension, "Please select a .csv file"},
		{"Ledger Invalid Schema", LedgerInvalidSchema, "CSV layout should be: Date,Details,Amount"},
		{"Session Not Found", SessionNotFound, "Session not found or expired"},
		{"Validation General", ValidationGeneral, "Validation failed"},
		{"System Internal Error", SystemInternalError, "An unexpected error occurred. Please contact support with trace ID"},
		{"System Rate Limit Exceeded", SystemRateLimitExceeded, "Rate limit exceeded. Please try again later"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, GetErrorMessage(tc.code))
		})
	}
}

func (s *CodesTestSuite) TestGetErrorMessage_InvalidCode() {
	s.Equal("An error occurred", GetErrorMessage("INVALID_CODE"))
}

func (s *CodesTestSuite) TestIsValidErrorCode() {
	s.True(IsValidErrorCode(LedgerParseFailed))
	s.True(IsValidErrorCode(AnalysisInvalidLedger))
	s.True(IsValidErrorCode(ValidationInvalidAmount))
	s.False(IsValidErrorCode("AUTH_001"))
	s.False(IsValidErrorCode(""))
}

func (s *CodesTestSuite) TestErrorCodes_FollowNamingConvention() {
	prefixes := []string{"LEDGER_", "SESSION_", "ANALYSIS_", "VALIDATION_", "SYSTEM_"}

	for code, message := range errorMessages {
		s.Run(string(code), func() {
			s.NotEmpty(message)

			matched := false
			for _, prefix := range prefixes {
				if strings.HasPrefix(string(code), prefix) {
					matched = true
					break
				}
			}
			s.True(matched, "unexpected prefix for %s", code)
		})
	}
}

func (s *CodesTestSuite) TestErrorCodes_AreUnique() {
	codes := []ErrorCode{
		LedgerInvalidExtension, LedgerInvalidSchema, LedgerParseFailed, LedgerMissingUpload, LedgerUploadTooLarge,
		SessionNotFound, SessionInvalidID,
		AnalysisInvalidLedger,
		ValidationGeneral, ValidationRequiredField, ValidationInvalidFormat, ValidationOutOfRange,
		ValidationInvalidDate, ValidationInvalidAmount,
		SystemInternalError, SystemDatabaseError, SystemServiceUnavailable,
		SystemConfigurationError, SystemUnexpectedError, SystemRateLimitExceeded,
	}

	seen := make(map[ErrorCode]bool, len(codes))
	for _, code := range codes {
		s.False(seen[code], "duplicate code %s", code)
		seen[code] = true
	}
	s.Len(errorMessages, len(codes))
}
