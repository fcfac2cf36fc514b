// Copyright (c) 2026 Fleetra. All rights reserved.
// Author: quang.phan.hcm@gmail.com

/*
Package apperr is the error taxonomy shared by every Fleetra service and
handler.

Each [AppError] carries a stable machine-readable Code, a message safe to
show fleet operators, the HTTP status it maps to, and (server-side only) the
underlying cause. Services return these; respond.Error turns them into the
wire envelope without any per-handler mapping.

The taxonomy is closed on purpose: VALIDATION_ERROR, UNAUTHORIZED, FORBIDDEN,
NOT_FOUND, CONFLICT, RATE_LIMITED, INTERNAL_ERROR. Anything else reaching the
response writer is treated as INTERNAL_ERROR.
*/
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError is the canonical error type for the Fleetra API.
//
// Cause never reaches a client. It exists so logs can carry the real
// failure (a SQL error, a Redis timeout) while the response stays generic.
type AppError struct {
	// Code is a stable machine-readable identifier, e.g. "NOT_FOUND".
	Code string `json:"code"`
	// Message is safe to show to the end user.
	Message string `json:"error"`
	// HTTPStatus is the response status this error maps to.
	HTTPStatus int `json:"-"`
	// Cause is the wrapped server-side error, logging only.
	Cause error `json:"-"`
	// Details lists field failures on VALIDATION_ERROR responses.
	Details []FieldError `json:"details,omitempty"`
}

// FieldError is a single field-level validation failure, keyed by the
// JSON field name the client sent.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error implements the error interface. It returns the client-safe message.
func (e *AppError) Error() string { return e.Message }

// Unwrap allows [errors.Is] and [errors.As] to traverse the cause chain.
func (e *AppError) Unwrap() error { return e.Cause }

// # Client Errors (4xx)

// NotFound creates a 404 [AppError] for a named resource.
//
// Example:
//
//	apperr.NotFound("Vehicle") // Returns "Vehicle not found"
func NotFound(resource string) *AppError {
	return &AppError{
		Code:       "NOT_FOUND",
		Message:    resource + " not found",
		HTTPStatus: http.StatusNotFound,
	}
}

// Unauthorized creates a 401 [AppError].
//
// It covers both credential failures and token failures. Callers must take
// care to keep messages identical across "no such user" and "wrong password"
// paths so the API never leaks which accounts exist.
func Unauthorized(msg string) *AppError {
	return &AppError{
		Code:       "UNAUTHORIZED",
		Message:    msg,
		HTTPStatus: http.StatusUnauthorized,
	}
}

// Forbidden creates a 403 [AppError].
func Forbidden(msg string) *AppError {
	return &AppError{
		Code:       "FORBIDDEN",
		Message:    msg,
		HTTPStatus: http.StatusForbidden,
	}
}

// Conflict creates a 409 [AppError] for duplicate or unique-constraint violations.
func Conflict(msg string) *AppError {
	return &AppError{
		Code:       "CONFLICT",
		Message:    msg,
		HTTPStatus: http.StatusConflict,
	}
}

// ValidationError creates a 400 [AppError] with optional per-field details.
func ValidationError(msg string, details ...FieldError) *AppError {
	return &AppError{
		Code:       "VALIDATION_ERROR",
		Message:    msg,
		HTTPStatus: http.StatusBadRequest,
		Details:    details,
	}
}

// RateLimited creates a 429 [AppError].
func RateLimited(retryAfterSeconds int) *AppError {
	return &AppError{
		Code:       "RATE_LIMITED",
		Message:    fmt.Sprintf("Too many requests. Try again in %ds.", retryAfterSeconds),
		HTTPStatus: http.StatusTooManyRequests,
	}
}

// # Server Errors (5xx)

// Internal creates a 500 [AppError] wrapping an unexpected server-side error.
// The cause is stored for logging but is never sent to the client.
func Internal(cause error) *AppError {
	return &AppError{
		Code:       "INTERNAL_ERROR",
		Message:    "An unexpected error occurred",
		HTTPStatus: http.StatusInternalServerError,
		Cause:      cause,
	}
}

// # Helpers

// IsAppError reports whether err (or any error in its chain) is an [*AppError].
func IsAppError(err error) bool {
	var ae *AppError
	return errors.As(err, &ae)
}

// As extracts the [*AppError] from err's chain. It returns nil if not found.
func As(err error) *AppError {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae
	}
	return nil
}
