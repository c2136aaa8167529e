// Package errs defines the error taxonomy surfaced to API clients.
// Every failure in the service layer is terminal for the current request
// and reported with its code; anything unclassified is masked as an
// internal error before it leaves the process.
package errs

import (
	"errors"
	"net/http"
)

// Code classifies an error for clients.
type Code string

const (
	CodeUnauthenticated Code = "UNAUTHENTICATED"
	CodeForbidden       Code = "FORBIDDEN"
	CodeBadUserInput    Code = "BAD_USER_INPUT"
	CodeNotFound        Code = "NOT_FOUND"
	CodeConflict        Code = "CONFLICT"
	CodeInternal        Code = "INTERNAL_SERVER_ERROR"
)

// Error is a client-facing error with a classification code.
type Error struct {
	Code    Code
	Message string
	// Field names the offending input field for validation errors.
	Field string
}

func (e *Error) Error() string {
	return e.Message
}

// Extensions exposes the code to the GraphQL error formatter.
func (e *Error) Extensions() map[string]interface{} {
	ext := map[string]interface{}{
		"code": string(e.Code),
		"http": map[string]interface{}{"status": e.HTTPStatus()},
	}
	if e.Field != "" {
		ext["field"] = e.Field
	}
	return ext
}

// HTTPStatus maps the code to an HTTP status for transport-level responses.
func (e *Error) HTTPStatus() int {
	switch e.Code {
	case CodeUnauthenticated:
		return http.StatusUnauthorized
	case CodeForbidden:
		return http.StatusForbidden
	case CodeBadUserInput:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	case CodeConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func Authentication(message string) *Error {
	return &Error{Code: CodeUnauthenticated, Message: message}
}

func Forbidden(message string) *Error {
	return &Error{Code: CodeForbidden, Message: message}
}

func Validation(message string) *Error {
	return &Error{Code: CodeBadUserInput, Message: message}
}

// ValidationField is a validation error attributed to a single input field.
func ValidationField(field, message string) *Error {
	return &Error{Code: CodeBadUserInput, Message: message, Field: field}
}

func NotFound(message string) *Error {
	return &Error{Code: CodeNotFound, Message: message}
}

func Conflict(message string) *Error {
	return &Error{Code: CodeConflict, Message: message}
}

func Internal(message string) *Error {
	if message == "" {
		message = "Internal server error"
	}
	return &Error{Code: CodeInternal, Message: message}
}

// CodeOf extracts the classification of err, or CodeInternal when the
// error does not carry one.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeInternal
}

// Is reports whether err carries the given code.
func Is(err error, code Code) bool {
	return CodeOf(err) == code
}
