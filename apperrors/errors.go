package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

type ErrorType string

const (
	ErrConfiguration   ErrorType = "CONFIGURATION_ERROR"
	ErrInvalidToken    ErrorType = "INVALID_TOKEN"
	ErrUnauthenticated ErrorType = "UNAUTHENTICATED"
	ErrForbidden       ErrorType = "FORBIDDEN"
	ErrNotFound        ErrorType = "NOT_FOUND"
	ErrConflict        ErrorType = "CONFLICT"
	ErrInvalidRequest  ErrorType = "INVALID_REQUEST"
	ErrAuditWrite      ErrorType = "AUDIT_WRITE_FAILED"
	ErrIntegrity       ErrorType = "INTEGRITY_ERROR"
	ErrInternal        ErrorType = "INTERNAL_ERROR"
)

// AppError is the standard error struct for the application
type AppError struct {
	Type       ErrorType `json:"code"`
	Message    string    `json:"message"`
	HTTPStatus int       `json:"-"`
	Cause      error     `json:"-"`
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func New(errType ErrorType, msg string, cause error) *AppError {
	return &AppError{
		Type:       errType,
		Message:    msg,
		HTTPStatus: mapTypeToStatus(errType),
		Cause:      cause,
	}
}

func NewConfiguration(msg string) *AppError {
	return New(ErrConfiguration, msg, nil)
}

func NewInvalidToken(msg string, cause error) *AppError {
	return New(ErrInvalidToken, msg, cause)
}

func NewUnauthenticated(msg string) *AppError {
	return New(ErrUnauthenticated, msg, nil)
}

func NewForbidden(msg string) *AppError {
	return New(ErrForbidden, msg, nil)
}

func NewNotFound(msg string) *AppError {
	return New(ErrNotFound, msg, nil)
}

func NewConflict(msg string) *AppError {
	return New(ErrConflict, msg, nil)
}

func NewInvalidRequest(msg string) *AppError {
	return New(ErrInvalidRequest, msg, nil)
}

func NewAuditWrite(cause error) *AppError {
	return New(ErrAuditWrite, "failed to write audit event", cause)
}

func NewIntegrity(msg string, cause error) *AppError {
	return New(ErrIntegrity, msg, cause)
}

// Wrap returns err as an AppError, treating anything unrecognised as an internal fault.
func Wrap(err error) *AppError {
	if err == nil {
		return nil
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return New(ErrInternal, "internal server error", err)
}

// TypeOf returns the ErrorType carried by err, or ErrInternal.
func TypeOf(err error) ErrorType {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type
	}
	return ErrInternal
}

// Is reports whether err carries the given type.
func Is(err error, t ErrorType) bool {
	return err != nil && TypeOf(err) == t
}

// PublicMessage is the message safe to return to clients. Server-side faults never expose their cause.
func (e *AppError) PublicMessage() string {
	if e.HTTPStatus >= http.StatusInternalServerError {
		switch e.Type {
		case ErrAuditWrite:
			return "failed to record audit event"
		case ErrIntegrity:
			return "data integrity error"
		default:
			return "internal server error"
		}
	}
	return e.Message
}

func mapTypeToStatus(t ErrorType) int {
	switch t {
	case ErrInvalidToken, ErrUnauthenticated:
		return http.StatusUnauthorized
	case ErrForbidden:
		return http.StatusForbidden
	case ErrNotFound:
		return http.StatusNotFound
	case ErrConflict:
		return http.StatusConflict
	case ErrInvalidRequest:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
