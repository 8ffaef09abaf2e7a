package cli

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ojt-tracker/internal/errors"
	"ojt-tracker/internal/validation"
)

func TestErrorHandler_Handle_ValidationError(t *testing.T) {
	handler := NewErrorHandler()
	validationErr := validation.NewValidationError()
	validationErr.AddRequiredError("date")

	err := handler.Handle("add entry", validationErr)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to add entry")
	assert.Contains(t, err.Error(), "date is required")
}

func TestErrorHandler_Handle_AppError(t *testing.T) {
	handler := NewErrorHandler()
	authErr := errors.NewAuthError(errors.CodeSignedOut, "You are not signed in.", nil)

	err := handler.Handle("list entries", authErr)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "You are not signed in.")
}

func TestErrorHandler_Handle_UnknownErrorWrapped(t *testing.T) {
	handler := NewErrorHandler()
	plain := fmt.Errorf("plain failure")

	err := handler.Handle("add entry", plain)

	require.Error(t, err)
	assert.ErrorIs(t, err, plain)
}

func TestErrorHandler_TypeChecks(t *testing.T) {
	handler := NewErrorHandler()

	validationErr := validation.NewValidationError()
	validationErr.AddRequiredError("date")
	assert.True(t, handler.IsValidationError(validationErr))
	assert.True(t, handler.IsValidationError(errors.NewValidationError("bad", nil)))
	assert.False(t, handler.IsValidationError(fmt.Errorf("plain")))

	assert.True(t, handler.IsAuthError(errors.NewAuthError(errors.CodeAuthFailed, "failed", nil)))
	assert.False(t, handler.IsAuthError(fmt.Errorf("plain")))

	assert.True(t, handler.IsDatabaseError(errors.NewDatabaseError("query", nil)))
	assert.False(t, handler.IsDatabaseError(errors.NewNotFoundError("entry", "x")))
}

func TestErrorHandler_GetErrorCode(t *testing.T) {
	handler := NewErrorHandler()

	assert.Equal(t, errors.CodeUnauthorizedDomain,
		handler.GetErrorCode(errors.NewAuthError(errors.CodeUnauthorizedDomain, "blocked", nil)))
	assert.Equal(t, "UNKNOWN_ERROR", handler.GetErrorCode(fmt.Errorf("plain")))
}
