// Package errors provides structured error types for Lexis diagrams.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the library, pipeline and CLI
//   - Machine-readable error codes for programmatic handling
//   - Typed errors that carry the offending values
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - INVALID_*: Input validation failures
//   - RANGE, INCONSISTENT_COHORT, DATA_CAST: diagram placement failures
//   - NOT_FOUND_*: Resource not found
//   - INTERNAL_*: Unexpected internal errors
//
// # Usage
//
//	err := lexis.CheckInRange(1900, 2000, 2010)
//	if errors.Is(err, errors.ErrCodeRange) {
//	    // value is outside the axis
//	}
//
//	var re *errors.RangeError
//	if stderrors.As(err, &re) {
//	    fmt.Println(re.Value, re.Start, re.End)
//	}
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Diagram placement errors
	ErrCodeRange              Code = "RANGE"
	ErrCodeInconsistentCohort Code = "INCONSISTENT_COHORT"
	ErrCodeDataCast           Code = "DATA_CAST"

	// Input validation errors
	ErrCodeInvalidInput    Code = "INVALID_INPUT"
	ErrCodeInvalidFont     Code = "INVALID_FONT"
	ErrCodeInvalidAspect   Code = "INVALID_ASPECT"
	ErrCodeInvalidColor    Code = "INVALID_COLOR"
	ErrCodeInvalidTarget   Code = "INVALID_TARGET"
	ErrCodeInvalidFormat   Code = "INVALID_FORMAT"
	ErrCodeInvalidManifest Code = "INVALID_MANIFEST"

	// Resource not found errors
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// coded is implemented by the typed errors below.
type coded interface {
	error
	ErrorCode() Code
}

// Is reports whether err has the given error code.
// It checks the outermost coded error in the chain, whether that is an
// *Error or one of the typed diagram errors.
func Is(err error, code Code) bool {
	return GetCode(err) == code
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if no coded error is found in the chain.
func GetCode(err error) Code {
	for err != nil {
		switch e := err.(type) {
		case *Error:
			return e.Code
		case coded:
			return e.ErrorCode()
		}
		err = errors.Unwrap(err)
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
