// Package apperr defines the error taxonomy the HTTP boundary maps onto
// status codes. Anything that is not an *Error reaches the client as a
// generic internal error.
package apperr

import (
	"errors"
	"net/http"
)

type Error struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// FieldError is one failed validation rule.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *Error) Error() string { return e.Message }

func NewValidation(message string, details []FieldError) *Error {
	if message == "" {
		message = "Validation failed"
	}
	var d any
	if len(details) > 0 {
		d = details
	}
	return &Error{Status: http.StatusUnprocessableEntity, Code: "VALIDATION_ERROR", Message: message, Details: d}
}

func NewNotFound(message string) *Error {
	if message == "" {
		message = "Resource not found"
	}
	return &Error{Status: http.StatusNotFound, Code: "NOT_FOUND", Message: message}
}

func NewConflict(message string) *Error {
	if message == "" {
		message = "Conflict: Resource already exists"
	}
	return &Error{Status: http.StatusConflict, Code: "CONFLICT", Message: message}
}

func NewInternal(message string) *Error {
	if message == "" {
		message = "Internal server error"
	}
	return &Error{Status: http.StatusInternalServerError, Code: "INTERNAL_ERROR", Message: message}
}

// From returns err as an *Error, converting unclassified failures into a
// generic internal error so storage-engine text never leaks to clients.
func From(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return NewInternal("An unexpected error occurred. Please try again later.")
}
