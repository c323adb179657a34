package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestAppError_MatchesSentinel(t *testing.T) {
	err := fmt.Errorf("posting: %w", NewAlreadyPostedError(5))

	assert.True(t, errors.Is(err, ErrAlreadyPosted))
	assert.False(t, errors.Is(err, ErrEntryVoided))

	var appErr *AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, CodeAlreadyPosted, appErr.Code)
	assert.Equal(t, int64(5), appErr.Details["journalEntryId"])
}

func TestAppError_MatchesByCode(t *testing.T) {
	assert.True(t, errors.Is(NewNotFoundError("a"), &AppError{Code: CodeNotFound}))
	assert.False(t, errors.Is(NewNotFoundError("a"), &AppError{Code: CodeValidation}))
}

func TestAppError_UnwrapsCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewStorageError("failed to insert ledger rows", cause, true)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "failed to insert ledger rows: connection reset", err.Error())
}

func TestStorageError_Status(t *testing.T) {
	assert.Equal(t, http.StatusServiceUnavailable, NewStorageError("x", nil, true).StatusCode)
	assert.Equal(t, http.StatusInternalServerError, NewStorageError("x", nil, false).StatusCode)
}

func TestIsTransient(t *testing.T) {
	assert.True(t, IsTransient(fmt.Errorf("wrapped: %w", NewStorageError("deadlock", nil, true))))
	assert.False(t, IsTransient(NewStorageError("disk full", nil, false)))
	assert.False(t, IsTransient(NewValidationError("bad")))
	assert.False(t, IsTransient(errors.New("plain")))
}

func TestUnbalancedEntryError_Details(t *testing.T) {
	err := NewUnbalancedEntryError(decimal.RequireFromString("100.00"), decimal.RequireFromString("99.98"))

	assert.Equal(t, http.StatusBadRequest, err.StatusCode)
	diff, ok := err.Details["difference"].(decimal.Decimal)
	assert.True(t, ok)
	assert.True(t, decimal.RequireFromString("0.02").Equal(diff))
}

func TestWithDetail(t *testing.T) {
	err := NewValidationError("bad item").WithDetail("item", 2)
	assert.Equal(t, 2, err.Details["item"])
}
