package internal

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError is the uniform problem response every classified failure is
// rendered as. Type encodes the HTTP status so clients can switch on it
// without parsing the detail text.
type AppError struct {
	Title  string `json:"title"`
	Detail string `json:"detail"`
	Status int    `json:"status"`
	Type   string `json:"type"`
	Cause  error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Detail, e.Cause)
	}
	return e.Detail
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithCause returns a copy carrying the underlying error. The sentinel
// errors below are shared, so the receiver is never mutated.
func (e *AppError) WithCause(cause error) *AppError {
	clone := *e
	clone.Cause = cause
	return &clone
}

func newProblem(status int, title, detail string) *AppError {
	return &AppError{
		Title:  title,
		Detail: detail,
		Status: status,
		Type:   fmt.Sprintf("https://httpstatuses.com/%d", status),
	}
}

func NewBadRequestError(detail string) *AppError {
	return newProblem(http.StatusBadRequest, "Bad Request", detail)
}

func NewUnauthorizedError(detail string) *AppError {
	return newProblem(http.StatusUnauthorized, "Unauthorized", detail)
}

func NewForbiddenError(detail string) *AppError {
	return newProblem(http.StatusForbidden, "Forbidden", detail)
}

func NewNotFoundError(detail string) *AppError {
	return newProblem(http.StatusNotFound, "Not Found", detail)
}

func NewConflictError(detail string) *AppError {
	return newProblem(http.StatusConflict, "Conflict", detail)
}

func NewInternalError(detail string, cause error) *AppError {
	err := newProblem(http.StatusInternalServerError, "Internal Server Error", detail)
	err.Cause = cause
	return err
}

// AsAppError unwraps err to an *AppError if one is in the chain.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
