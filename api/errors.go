// Package api
//
// Common error types and error handling utilities for the evpump library.

package api

import "fmt"

// Sentinel errors shared across the library. Callers match them with
// errors.Is; structured errors built with NewError unwrap to the
// sentinel of their code.
var (
	ErrQueueClosed     = fmt.Errorf("event queue is closed")
	ErrQueueFull       = fmt.Errorf("event queue is full")
	ErrBatchFull       = fmt.Errorf("event batch is full")
	ErrWrongThread     = fmt.Errorf("operation invoked off the owning thread")
	ErrAlreadyRunning  = fmt.Errorf("pump is already running")
	ErrInvalidArgument = fmt.Errorf("invalid argument")
	ErrNotSupported    = fmt.Errorf("operation not supported")
)

// ErrorCode classifies an error condition.
type ErrorCode int

const (
	ErrCodeOK ErrorCode = iota
	ErrCodeInvalidArgument
	ErrCodeQueueFull
	ErrCodeBatchFull
	ErrCodeClosed
	ErrCodeWrongThread
	ErrCodeNotSupported
	ErrCodeInternal
)

func (c ErrorCode) sentinel() error {
	switch c {
	case ErrCodeInvalidArgument:
		return ErrInvalidArgument
	case ErrCodeQueueFull:
		return ErrQueueFull
	case ErrCodeBatchFull:
		return ErrBatchFull
	case ErrCodeClosed:
		return ErrQueueClosed
	case ErrCodeWrongThread:
		return ErrWrongThread
	case ErrCodeNotSupported:
		return ErrNotSupported
	default:
		return nil
	}
}

// Error is a structured error carrying a code and key/value context.
type Error struct {
	Code    ErrorCode
	Message string
	Context map[string]any
}

// NewError creates a structured error with the given code.
func NewError(code ErrorCode, message string) *Error {
	return &Error{Code: code, Message: message}
}

// WithContext attaches one context value and returns the error for
// chaining.
func (e *Error) WithContext(key string, value any) *Error {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}

// Error implements the error interface.
func (e *Error) Error() string {
	if len(e.Context) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s %+v", e.Message, e.Context)
}

// Unwrap maps the error code back to its sentinel so errors.Is works
// on structured errors.
func (e *Error) Unwrap() error {
	return e.Code.sentinel()
}
