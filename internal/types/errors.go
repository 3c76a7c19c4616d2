package types

import (
	"errors"
	"fmt"
)

// ErrorCode represents a namespaced error code for fraudlens errors.
type ErrorCode string

// Configuration error codes
const (
	CONFIG_LOAD_FAILED       ErrorCode = "CONFIG_LOAD_FAILED"
	CONFIG_PARSE_FAILED      ErrorCode = "CONFIG_PARSE_FAILED"
	CONFIG_VALIDATION_FAILED ErrorCode = "CONFIG_VALIDATION_FAILED"
)

// Graph store error codes
const (
	GRAPH_STORE_FROZEN   ErrorCode = "GRAPH_STORE_FROZEN"
	GRAPH_INVALID_ENTITY ErrorCode = "GRAPH_INVALID_ENTITY"
)

// Detection error codes
const (
	DETECT_INVALID_THRESHOLDS ErrorCode = "DETECT_INVALID_THRESHOLDS"
	DETECT_STORE_REQUIRED     ErrorCode = "DETECT_STORE_REQUIRED"
)

// Export error codes
const (
	EXPORT_CONNECTION_FAILED ErrorCode = "EXPORT_CONNECTION_FAILED"
	EXPORT_CONNECTION_CLOSED ErrorCode = "EXPORT_CONNECTION_CLOSED"
	EXPORT_WRITE_FAILED      ErrorCode = "EXPORT_WRITE_FAILED"
	EXPORT_INVALID_CONFIG    ErrorCode = "EXPORT_INVALID_CONFIG"
)

// Dataset error codes
const (
	DATASET_READ_FAILED  ErrorCode = "DATASET_READ_FAILED"
	DATASET_PARSE_FAILED ErrorCode = "DATASET_PARSE_FAILED"
	DATASET_INVALID      ErrorCode = "DATASET_INVALID"
)

// Error represents a structured error with error code, message, and optional
// cause. It supports error wrapping and retryability hints.
type Error struct {
	Code      ErrorCode
	Message   string
	Retryable bool
	Cause     error
}

// Error implements the error interface.
// Format: "[CODE] message" or "[CODE] message: cause" if cause exists.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/errors.As chains.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches errors by code. Returns true if target is an *Error with the
// same Code.
func (e *Error) Is(target error) bool {
	var ferr *Error
	if errors.As(target, &ferr) {
		return e.Code == ferr.Code
	}
	return false
}

// NewError creates a new non-retryable Error with the given code and message.
func NewError(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// NewErrorf creates a new non-retryable Error with a formatted message.
func NewErrorf(code ErrorCode, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// NewRetryableError creates a retryable Error. Use this for transient
// failures that may succeed on retry, such as export connection drops.
func NewRetryableError(code ErrorCode, message string) *Error {
	return &Error{
		Code:      code,
		Message:   message,
		Retryable: true,
	}
}

// WrapError creates a non-retryable Error that wraps an existing error.
// The wrapped error is accessible via Unwrap().
func WrapError(code ErrorCode, message string, cause error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// IsRetryable reports whether err is an *Error marked retryable.
func IsRetryable(err error) bool {
	var ferr *Error
	if errors.As(err, &ferr) {
		return ferr.Retryable
	}
	return false
}

// CodeOf extracts the ErrorCode from err, or "" if err is not an *Error.
func CodeOf(err error) ErrorCode {
	var ferr *Error
	if errors.As(err, &ferr) {
		return ferr.Code
	}
	return ""
}
