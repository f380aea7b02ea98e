package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an error so handlers can pick a status code without
// string-matching messages.
type Kind int

const (
	KindValidation Kind = iota // missing or malformed input
	KindNotFound               // referenced entity absent
	KindConflict               // business rule violated (already sold, duplicate key)
	KindStore                  // underlying persistence failure
)

type AppError struct {
	Kind    Kind
	Message string
	Err     error // internal cause, logged but never returned to clients

	status int
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

func Validation(message string) *AppError {
	return &AppError{Kind: KindValidation, Message: message, status: http.StatusBadRequest}
}

func NotFound(message string) *AppError {
	return &AppError{Kind: KindNotFound, Message: message, status: http.StatusNotFound}
}

// Conflict is a business-rule violation caught up front (bike already sold,
// sold bike cannot be deleted). Reported as 400, matching the pre-check
// behavior clients already rely on.
func Conflict(message string) *AppError {
	return &AppError{Kind: KindConflict, Message: message, status: http.StatusBadRequest}
}

// Duplicate is a unique-constraint violation surfaced by the store, i.e. a
// request that lost a race past the fast-path check. Reported as 409.
func Duplicate(message string) *AppError {
	return &AppError{Kind: KindConflict, Message: message, status: http.StatusConflict}
}

// Store wraps a persistence failure. The cause stays internal; clients see
// only the message.
func Store(message string, err error) *AppError {
	return &AppError{Kind: KindStore, Message: message, Err: err, status: http.StatusInternalServerError}
}

// KindOf extracts the kind from any error in the chain. Unclassified errors
// are treated as store failures.
func KindOf(err error) Kind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindStore
}

// Message returns the user-facing message for err.
func Message(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return "internal server error"
}

// HTTPStatus maps an error to the status code the API returns for it.
func HTTPStatus(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.status != 0 {
		return appErr.status
	}
	return http.StatusInternalServerError
}
