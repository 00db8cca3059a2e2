// Package api
// Author: momentics <momentics@gmail.com>
//
// Common error types and error handling utilities for segview.

package api

import (
	"errors"
	"fmt"
)

// ErrorCode represents specific error conditions in the library.
type ErrorCode int

const (
	ErrCodeOK ErrorCode = iota
	ErrCodeOutOfRange
	ErrCodeNotSupported
	ErrCodeInvalidBounds
	ErrCodeInsufficientCapacity
	ErrCodeTypeMismatch
	ErrCodeReleased
	ErrCodePoolClosed
	ErrCodeInternal
)

func (c ErrorCode) String() string {
	switch c {
	case ErrCodeOK:
		return "ok"
	case ErrCodeOutOfRange:
		return "out of range"
	case ErrCodeNotSupported:
		return "not supported"
	case ErrCodeInvalidBounds:
		return "invalid bounds"
	case ErrCodeInsufficientCapacity:
		return "insufficient capacity"
	case ErrCodeTypeMismatch:
		return "type mismatch"
	case ErrCodeReleased:
		return "released"
	case ErrCodePoolClosed:
		return "pool closed"
	default:
		return "internal"
	}
}

// Common errors used across the library. Every *Error with the same code
// matches the corresponding sentinel under errors.Is.
var (
	ErrOutOfRange           = NewError(ErrCodeOutOfRange, "index out of range")
	ErrNotSupported         = NewError(ErrCodeNotSupported, "operation not supported by a fixed-size view")
	ErrInvalidBounds        = NewError(ErrCodeInvalidBounds, "view bounds exceed backing buffer")
	ErrInsufficientCapacity = NewError(ErrCodeInsufficientCapacity, "destination too small")
	ErrTypeMismatch         = NewError(ErrCodeTypeMismatch, "value type incompatible with element type")
	ErrReleased             = NewError(ErrCodeReleased, "buffer already released")
	ErrPoolClosed           = NewError(ErrCodePoolClosed, "buffer pool is closed")
)

// Error represents a structured error with code and context.
type Error struct {
	Code    ErrorCode
	Message string
	Context map[string]any
}

// Error implements the error interface.
func (e *Error) Error() string {
	if len(e.Context) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (context: %+v)", e.Message, e.Context)
}

// Is reports whether target is an *Error carrying the same code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

// NewError creates a new structured error.
func NewError(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// WithContext returns a copy of e with key set to value. Sentinels are never
// mutated, so it is safe to call on the package-level errors.
func (e *Error) WithContext(key string, value any) *Error {
	ctx := make(map[string]any, len(e.Context)+1)
	for k, v := range e.Context {
		ctx[k] = v
	}
	ctx[key] = value
	return &Error{Code: e.Code, Message: e.Message, Context: ctx}
}

// CodeOf extracts the ErrorCode from err, looking through wrapping.
// A nil error yields ErrCodeOK; foreign errors yield ErrCodeInternal.
func CodeOf(err error) ErrorCode {
	if err == nil {
		return ErrCodeOK
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ErrCodeInternal
}
