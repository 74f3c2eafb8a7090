// Package apierror defines the typed errors services return to the
// HTTP boundary. Each carries the status the boundary should answer
// with and a message safe to show to clients.
package apierror

import "net/http"

// Code classifies a domain failure.
type Code string

const (
	CodeValidation        Code = "validation_error"
	CodeConflict          Code = "conflict"
	CodeNotFound          Code = "not_found"
	CodeInvalidCredential Code = "invalid_credential"
	CodeInvalidToken      Code = "invalid_token"
	CodeUnauthenticated   Code = "unauthenticated"
	CodeInternal          Code = "internal_error"
)

// Error is a domain failure with a client-safe message.
type Error struct {
	HTTPStatus int
	Code       Code
	Message    string
}

func (e *Error) Error() string {
	return e.Message
}

// NewValidation reports missing or malformed client input.
func NewValidation(message string) *Error {
	return &Error{HTTPStatus: http.StatusBadRequest, Code: CodeValidation, Message: message}
}

// NewConflict reports a uniqueness violation.
func NewConflict(message string) *Error {
	return &Error{HTTPStatus: http.StatusConflict, Code: CodeConflict, Message: message}
}

// NewNotFound reports that no matching record exists.
func NewNotFound(message string) *Error {
	return &Error{HTTPStatus: http.StatusNotFound, Code: CodeNotFound, Message: message}
}

// NewInvalidCredential reports a failed password check.
func NewInvalidCredential() *Error {
	return &Error{HTTPStatus: http.StatusUnauthorized, Code: CodeInvalidCredential, Message: "invalid password"}
}

// NewInvalidToken reports an unusable session or reset token.
func NewInvalidToken() *Error {
	return &Error{HTTPStatus: http.StatusUnauthorized, Code: CodeInvalidToken, Message: "invalid or expired token"}
}

// NewUnauthenticated reports a protected operation with no verified identity.
func NewUnauthenticated() *Error {
	return &Error{HTTPStatus: http.StatusUnauthorized, Code: CodeUnauthenticated, Message: "user not authenticated"}
}

// NewInternal reports an unexpected failure without leaking detail.
func NewInternal() *Error {
	return &Error{HTTPStatus: http.StatusInternalServerError, Code: CodeInternal, Message: "internal server error"}
}
