package apperr

import (
	"errors"
	"net/http"
)

// Kind classifies an application error into the categories the HTTP layer
// knows how to report. Anything unrecognized collapses to KindInternal.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindDuplicate
	KindNotFound
	KindUnauthenticated
	KindForbidden
)

type Error struct {
	Kind    Kind
	Code    string
	Message string
	// Fields lists the offending input fields on validation failures.
	Fields []string
	err    error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.err
}

func Validation(message string, fields ...string) *Error {
	return &Error{Kind: KindValidation, Code: "validation_error", Message: message, Fields: fields}
}

func Duplicate(message string) *Error {
	return &Error{Kind: KindDuplicate, Code: "duplicate_key", Message: message}
}

func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Code: "not_found", Message: message}
}

func Unauthenticated(message string) *Error {
	return &Error{Kind: KindUnauthenticated, Code: "unauthenticated", Message: message}
}

func Forbidden(message string) *Error {
	return &Error{Kind: KindForbidden, Code: "forbidden", Message: message}
}

// Internal wraps an unexpected failure. The wrapped error is kept for logs
// but never reaches the client.
func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Code: "server_error", Message: "An internal error occurred", err: err}
}

// From extracts the *Error from err, or wraps it as internal.
func From(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return Internal(err)
}

// Status maps an error to its HTTP status code.
func Status(err error) int {
	switch From(err).Kind {
	case KindValidation, KindDuplicate:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindUnauthenticated:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
