package util

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError standardizes application errors. ErrorText is the short label that
// ends up in the response's "error" field; Message is the optional
// human-readable companion.
type AppError struct {
	ErrorText  string
	Message    string
	HTTPStatus int
	Err        error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.ErrorText, e.Err)
	}
	return e.ErrorText
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError constructs an AppError.
func NewAppError(errorText, message string, status int) *AppError {
	return &AppError{ErrorText: errorText, Message: message, HTTPStatus: status}
}

func NewValidationError(errorText, message string) error {
	return NewAppError(errorText, message, http.StatusBadRequest)
}

func NewAuthError(errorText, message string) error {
	return NewAppError(errorText, message, http.StatusUnauthorized)
}

func NewInternalError(message string, err error) error {
	return &AppError{
		ErrorText:  "Internal server error",
		Message:    message,
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// ToAppError converts generic errors to AppError.
func ToAppError(err error) *AppError {
	if err == nil {
		return nil
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return &AppError{
		ErrorText:  "Internal server error",
		Message:    "An unexpected error occurred",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}
