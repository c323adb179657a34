package apperrors

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrForbidden indicates the caller may not act on the requested organization.
var ErrForbidden = errors.New("forbidden")

// ErrAlreadyPosted indicates the journal entry has already been posted.
var ErrAlreadyPosted = errors.New("journal entry is already posted")

// ErrEntryVoided indicates the journal entry has been voided.
var ErrEntryVoided = errors.New("journal entry is voided")

// ErrFiscalPeriodClosed indicates the target fiscal period no longer accepts postings.
var ErrFiscalPeriodClosed = errors.New("fiscal period is closed")

// ErrUnbalancedEntry indicates total debits and total credits differ beyond tolerance.
var ErrUnbalancedEntry = errors.New("journal entry is not balanced")

// ErrPostingInProgress indicates another caller currently holds the posting gate for the entry.
var ErrPostingInProgress = errors.New("journal entry posting already in progress")

// ErrStorage indicates a failure in the backing store. Nothing was committed.
var ErrStorage = errors.New("storage error")

// ErrInternal indicates an unexpected failure.
var ErrInternal = errors.New("internal error")

// Codes rendered in the JSON error envelope.
const (
	CodeNotFound           = "NOT_FOUND"
	CodeValidation         = "VALIDATION_ERROR"
	CodeDuplicate          = "DUPLICATE"
	CodeForbidden          = "FORBIDDEN"
	CodeAlreadyPosted      = "ALREADY_POSTED"
	CodeEntryVoided        = "ENTRY_VOIDED"
	CodeFiscalPeriodClosed = "FISCAL_PERIOD_CLOSED"
	CodeUnbalancedEntry    = "UNBALANCED_ENTRY"
	CodePostingInProgress  = "POSTING_IN_PROGRESS"
	CodeStorage            = "STORAGE_ERROR"
	CodeInternal           = "INTERNAL_ERROR"
)

// AppError carries a machine readable code, an HTTP status and optional details
// alongside the underlying cause. It matches its Kind sentinel with errors.Is.
type AppError struct {
	Kind       error
	Code       string
	Message    string
	StatusCode int
	Details    map[string]any
	Err        error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel this error was built from.
func (e *AppError) Is(target error) bool {
	if e.Kind != nil && target == e.Kind {
		return true
	}
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// WithDetail returns the error with an extra detail attached.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// Transient reports whether the operation may succeed if retried.
func (e *AppError) Transient() bool {
	v, ok := e.Details["transient"].(bool)
	return ok && v
}

// NewAppError builds an AppError with no sentinel kind.
func NewAppError(statusCode int, message string, err error) *AppError {
	return &AppError{
		Code:       CodeInternal,
		Message:    message,
		StatusCode: statusCode,
		Err:        err,
	}
}

func NewNotFoundError(message string) *AppError {
	return &AppError{Kind: ErrNotFound, Code: CodeNotFound, Message: message, StatusCode: http.StatusNotFound}
}

func NewValidationError(message string) *AppError {
	return &AppError{Kind: ErrValidation, Code: CodeValidation, Message: message, StatusCode: http.StatusBadRequest}
}

func NewForbiddenError(message string) *AppError {
	return &AppError{Kind: ErrForbidden, Code: CodeForbidden, Message: message, StatusCode: http.StatusForbidden}
}

func NewAlreadyPostedError(entryID int64) *AppError {
	return &AppError{
		Kind:       ErrAlreadyPosted,
		Code:       CodeAlreadyPosted,
		Message:    "Journal entry is already posted",
		StatusCode: http.StatusBadRequest,
		Details:    map[string]any{"journalEntryId": entryID},
	}
}

func NewEntryVoidedError(entryID int64) *AppError {
	return &AppError{
		Kind:       ErrEntryVoided,
		Code:       CodeEntryVoided,
		Message:    "Cannot post a voided journal entry",
		StatusCode: http.StatusBadRequest,
		Details:    map[string]any{"journalEntryId": entryID},
	}
}

func NewFiscalPeriodClosedError(fiscalPeriodID int64) *AppError {
	return &AppError{
		Kind:       ErrFiscalPeriodClosed,
		Code:       CodeFiscalPeriodClosed,
		Message:    "Cannot post to a closed fiscal period",
		StatusCode: http.StatusBadRequest,
		Details:    map[string]any{"fiscalPeriodId": fiscalPeriodID},
	}
}

// NewUnbalancedEntryError reports the computed totals and their difference (debits minus credits).
func NewUnbalancedEntryError(totalDebit, totalCredit decimal.Decimal) *AppError {
	return &AppError{
		Kind:       ErrUnbalancedEntry,
		Code:       CodeUnbalancedEntry,
		Message:    "Journal entry must balance (total debits must equal total credits)",
		StatusCode: http.StatusBadRequest,
		Details: map[string]any{
			"totalDebits":  totalDebit,
			"totalCredits": totalCredit,
			"difference":   totalDebit.Sub(totalCredit),
		},
	}
}

func NewPostingInProgressError(entryID int64) *AppError {
	return &AppError{
		Kind:       ErrPostingInProgress,
		Code:       CodePostingInProgress,
		Message:    "Journal entry is being posted by another request",
		StatusCode: http.StatusConflict,
		Details:    map[string]any{"journalEntryId": entryID},
	}
}

// NewStorageError wraps a store failure. Transient failures are reported as 503.
func NewStorageError(message string, err error, transient bool) *AppError {
	status := http.StatusInternalServerError
	if transient {
		status = http.StatusServiceUnavailable
	}
	return &AppError{
		Kind:       ErrStorage,
		Code:       CodeStorage,
		Message:    message,
		StatusCode: status,
		Details:    map[string]any{"transient": transient},
		Err:        err,
	}
}

func NewInternalError(message string, err error) *AppError {
	return &AppError{Kind: ErrInternal, Code: CodeInternal, Message: message, StatusCode: http.StatusInternalServerError, Err: err}
}

// IsTransient reports whether err is a storage failure that is safe to retry.
func IsTransient(err error) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind == ErrStorage && appErr.Transient()
	}
	return false
}
