// Package errors provides structured error types for genomeviz.
//
// This package defines error codes and types that enable:
//   - A clear split between data errors and user errors
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Classes
//
// Data errors describe a broken genome. They are fatal: the run stops and no
// output is written.
//   - INVALID_GENOME: a node or gene line is structurally malformed
//   - FILE_NOT_FOUND: the genome file does not exist
//   - INCORRECT_LINK: a link references an undeclared node
//   - DEGENERATE_WEIGHTS: link weights span no usable range
//
// User errors describe a bad request. The CLI reports them and exits cleanly.
//   - UNSUPPORTED: the requested export operation does not exist
//   - INVALID_INPUT: an option or config value is out of range
//
// # Usage
//
//	err := errors.New(errors.ErrCodeIncorrectLink, "link %d -> %d", in, out)
//	if errors.Is(err, errors.ErrCodeIncorrectLink) {
//	    // Handle integrity error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInvalidGenome, origErr, "line %d", n)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// User errors
	ErrCodeInvalidInput Code = "INVALID_INPUT"
	ErrCodeUnsupported  Code = "UNSUPPORTED"

	// Data errors
	ErrCodeInvalidGenome     Code = "INVALID_GENOME"
	ErrCodeFileNotFound      Code = "FILE_NOT_FOUND"
	ErrCodeIncorrectLink     Code = "INCORRECT_LINK"
	ErrCodeDegenerateWeights Code = "DEGENERATE_WEIGHTS"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// userCodes lists the codes that describe a bad request rather than bad data.
var userCodes = map[Code]bool{
	ErrCodeInvalidInput: true,
	ErrCodeUnsupported:  true,
}

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

// Is reports whether err has the given error code.
// It unwraps the error chain looking for the first *Error and compares its code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// IsUserError reports whether err was caused by a bad request (unknown
// operation, invalid option) rather than by malformed genome data.
func IsUserError(err error) bool {
	return userCodes[GetCode(err)]
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
