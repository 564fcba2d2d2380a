package errors

import (
	"errors"
	"fmt"
)

// Code represents an error code for categorizing errors
type Code string

const (
	// CodeUnknown indicates an unknown error
	CodeUnknown Code = "unknown"

	// CodeInvalidArgument indicates client specified an invalid argument
	CodeInvalidArgument Code = "invalid_argument"

	// CodeNotFound indicates a requested resource was not found
	CodeNotFound Code = "not_found"

	// CodeAlreadyExists indicates an attempt to create a resource that already exists
	CodeAlreadyExists Code = "already_exists"

	// CodeAlreadyClaimed indicates a claim attempt lost the race to another owner
	CodeAlreadyClaimed Code = "already_claimed"

	// CodeNotAlive indicates an operation that requires a living character
	CodeNotAlive Code = "not_alive"

	// CodeInsufficientFunds indicates a debit larger than the available balance
	CodeInsufficientFunds Code = "insufficient_funds"

	// CodeInvalidAmount indicates a non-positive gold amount
	CodeInvalidAmount Code = "invalid_amount"

	// CodeInvalidTransfer indicates a transfer that cannot be performed, such as to oneself
	CodeInvalidTransfer Code = "invalid_transfer"

	// CodeUnauthorized indicates the caller does not have permission
	CodeUnauthorized Code = "unauthorized"

	// CodeCorrupted indicates persisted state that could not be parsed
	CodeCorrupted Code = "corrupted"

	// CodeTimeout indicates an interactive flow or session expired
	CodeTimeout Code = "timeout"

	// CodeInternal indicates internal system error
	CodeInternal Code = "internal"
)

// Error represents an application error with code and metadata
type Error struct {
	// Code is the error code
	Code Code

	// Message is the error message
	Message string

	// Cause is the wrapped error
	Cause error

	// Meta contains additional context
	Meta map[string]any
}

// Error returns the error message
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Cause
}

// WithMeta adds metadata to the error (builder pattern)
func (e *Error) WithMeta(key string, value any) *Error {
	if e.Meta == nil {
		e.Meta = make(map[string]any)
	}
	e.Meta[key] = value
	return e
}

// New creates a new error with the given code and message
func New(code Code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Newf creates a new error with formatted message
func Newf(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an error with additional context
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	// If it's already our error type, preserve the code
	var botErr *Error
	if errors.As(err, &botErr) {
		return &Error{
			Code:    botErr.Code,
			Message: message,
			Cause:   err,
			Meta:    copyMeta(botErr.Meta),
		}
	}

	// Otherwise, create unknown error
	return &Error{
		Code:    CodeUnknown,
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an error with formatted message
func Wrapf(err error, format string, args ...any) *Error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// WrapWithCode wraps an error with a specific code
func WrapWithCode(err error, code Code, message string) *Error {
	if err == nil {
		return nil
	}

	wrapped := Wrap(err, message)
	wrapped.Code = code
	return wrapped
}

// Helper functions for common error types

// NotFound creates a not found error
func NotFound(message string) *Error {
	return New(CodeNotFound, message)
}

// NotFoundf creates a formatted not found error
func NotFoundf(format string, args ...any) *Error {
	return Newf(CodeNotFound, format, args...)
}

// InvalidArgument creates an invalid argument error
func InvalidArgument(message string) *Error {
	return New(CodeInvalidArgument, message)
}

// InvalidArgumentf creates a formatted invalid argument error
func InvalidArgumentf(format string, args ...any) *Error {
	return Newf(CodeInvalidArgument, format, args...)
}

// AlreadyExists creates an already exists error
func AlreadyExists(message string) *Error {
	return New(CodeAlreadyExists, message)
}

// AlreadyExistsf creates a formatted already exists error
func AlreadyExistsf(format string, args ...any) *Error {
	return Newf(CodeAlreadyExists, format, args...)
}

// AlreadyClaimedf creates a formatted already claimed error
func AlreadyClaimedf(format string, args ...any) *Error {
	return Newf(CodeAlreadyClaimed, format, args...)
}

// NotAlivef creates a formatted not alive error
func NotAlivef(format string, args ...any) *Error {
	return Newf(CodeNotAlive, format, args...)
}

// InsufficientFundsf creates a formatted insufficient funds error
func InsufficientFundsf(format string, args ...any) *Error {
	return Newf(CodeInsufficientFunds, format, args...)
}

// InvalidAmountf creates a formatted invalid amount error
func InvalidAmountf(format string, args ...any) *Error {
	return Newf(CodeInvalidAmount, format, args...)
}

// InvalidTransferf creates a formatted invalid transfer error
func InvalidTransferf(format string, args ...any) *Error {
	return Newf(CodeInvalidTransfer, format, args...)
}

// Unauthorized creates an unauthorized error
func Unauthorized(message string) *Error {
	return New(CodeUnauthorized, message)
}

// Unauthorizedf creates a formatted unauthorized error
func Unauthorizedf(format string, args ...any) *Error {
	return Newf(CodeUnauthorized, format, args...)
}

// Corruptedf creates a formatted corrupted state error
func Corruptedf(format string, args ...any) *Error {
	return Newf(CodeCorrupted, format, args...)
}

// Timeout creates a timeout error
func Timeout(message string) *Error {
	return New(CodeTimeout, message)
}

// Internal creates an internal error
func Internal(message string) *Error {
	return New(CodeInternal, message)
}

// Internalf creates a formatted internal error
func Internalf(format string, args ...any) *Error {
	return Newf(CodeInternal, format, args...)
}

// Error checking functions

// Is checks if the error is of a specific code
func Is(err error, code Code) bool {
	var botErr *Error
	if errors.As(err, &botErr) {
		return botErr.Code == code
	}
	return false
}

// IsNotFound checks if the error is a not found error
func IsNotFound(err error) bool {
	return Is(err, CodeNotFound)
}

// IsAlreadyExists checks if the error is an already exists error
func IsAlreadyExists(err error) bool {
	return Is(err, CodeAlreadyExists)
}

// IsAlreadyClaimed checks if the error is an already claimed error
func IsAlreadyClaimed(err error) bool {
	return Is(err, CodeAlreadyClaimed)
}

// IsInsufficientFunds checks if the error is an insufficient funds error
func IsInsufficientFunds(err error) bool {
	return Is(err, CodeInsufficientFunds)
}

// IsUnauthorized checks if the error is an unauthorized error
func IsUnauthorized(err error) bool {
	return Is(err, CodeUnauthorized)
}

// IsCorrupted checks if the error is a corrupted state error
func IsCorrupted(err error) bool {
	return Is(err, CodeCorrupted)
}

// IsTimeout checks if the error is a timeout error
func IsTimeout(err error) bool {
	return Is(err, CodeTimeout)
}

// GetCode returns the error code
func GetCode(err error) Code {
	var botErr *Error
	if errors.As(err, &botErr) {
		return botErr.Code
	}
	return CodeUnknown
}

// GetMeta returns the error metadata
func GetMeta(err error) map[string]any {
	var botErr *Error
	if errors.As(err, &botErr) {
		return botErr.Meta
	}
	return nil
}

// copyMeta creates a copy of the metadata map
func copyMeta(meta map[string]any) map[string]any {
	if meta == nil {
		return nil
	}

	copied := make(map[string]any, len(meta))
	for k, v := range meta {
		copied[k] = v
	}
	return copied
}
