package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorConstructors(t *testing.T) {
	tests := []struct {
		name         string
		err          *AppError
		expectedType ErrorType
		expectedCode string
	}{
		{
			name:         "validation error",
			err:          NewValidationError("bad input", nil),
			expectedType: ErrorTypeValidation,
			expectedCode: "VALIDATION_FAILED",
		},
		{
			name:         "not found error",
			err:          NewNotFoundError("time entry", "entry-1"),
			expectedType: ErrorTypeNotFound,
			expectedCode: "NOT_FOUND",
		},
		{
			name:         "database error",
			err:          NewDatabaseError("create time entry", fmt.Errorf("disk full")),
			expectedType: ErrorTypeDatabase,
			expectedCode: "DATABASE_ERROR",
		},
		{
			name:         "invalid input error",
			err:          NewInvalidInputError("hours", "abc", "must be a whole number"),
			expectedType: ErrorTypeInvalidInput,
			expectedCode: "INVALID_INPUT",
		},
		{
			name:         "auth error carries its code",
			err:          NewAuthError(CodeUnauthorizedDomain, "domain not allowed", nil),
			expectedType: ErrorTypeAuth,
			expectedCode: CodeUnauthorizedDomain,
		},
		{
			name:         "unsupported query error",
			err:          NewUnsupportedQueryError("ordered list", fmt.Errorf("no index")),
			expectedType: ErrorTypeUnsupportedQuery,
			expectedCode: "UNSUPPORTED_QUERY",
		},
		{
			name:         "configuration error",
			err:          NewConfigurationError("required_hours", "must be positive"),
			expectedType: ErrorTypeConfiguration,
			expectedCode: "CONFIGURATION_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.err.IsType(tt.expectedType))
			assert.Equal(t, tt.expectedCode, tt.err.Code)
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("disk full")
	err := NewDatabaseError("create time entry", cause)

	assert.Equal(t, cause, err.Unwrap())
	assert.Contains(t, err.Error(), "disk full")
}

func TestIsErrorType(t *testing.T) {
	err := NewNotFoundError("time entry", "entry-1")

	assert.True(t, IsErrorType(err, ErrorTypeNotFound))
	assert.False(t, IsErrorType(err, ErrorTypeDatabase))
	assert.False(t, IsErrorType(fmt.Errorf("plain"), ErrorTypeNotFound))
}

func TestIsErrorType_Wrapped(t *testing.T) {
	err := fmt.Errorf("outer: %w", NewUnsupportedQueryError("ordered list", nil))

	assert.True(t, IsErrorType(err, ErrorTypeUnsupportedQuery))
}

func TestGetUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "auth error message passes through",
			err:      NewAuthError(CodeSignedOut, "You are not signed in.", nil),
			expected: "You are not signed in.",
		},
		{
			name:     "database error is masked",
			err:      NewDatabaseError("create time entry", fmt.Errorf("disk full")),
			expected: "A storage error occurred. Please try again.",
		},
		{
			name:     "unsupported query error is masked",
			err:      NewUnsupportedQueryError("ordered list", nil),
			expected: "A storage error occurred. Please try again.",
		},
		{
			name:     "plain error passes through",
			err:      fmt.Errorf("plain failure"),
			expected: "plain failure",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetUserMessage(tt.err))
		})
	}
}

func TestShouldLogError(t *testing.T) {
	assert.False(t, ShouldLogError(NewValidationError("bad input", nil)))
	assert.False(t, ShouldLogError(NewNotFoundError("time entry", "entry-1")))
	assert.True(t, ShouldLogError(NewDatabaseError("create", nil)))
	assert.True(t, ShouldLogError(NewConfigurationError("required_hours", "must be positive")))
	assert.True(t, ShouldLogError(fmt.Errorf("unknown")))
}

func TestAppError_WithContext(t *testing.T) {
	err := NewAuthError(CodeAuthFailed, "provider failure", nil).WithContext("provider", "google")

	value, exists := err.GetContext("provider")
	assert.True(t, exists)
	assert.Equal(t, "google", value)

	_, exists = err.GetContext("missing")
	assert.False(t, exists)
}
