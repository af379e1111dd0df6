// Package errors provides error types and utilities for vaultdedup.
// It extends the standard errors package with wrapping helpers and the
// sentinel values the error taxonomy distinguishes: fatal configuration
// errors, fatal I/O errors, and recoverable per-record errors.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common failure scenarios
var (
	// ErrInvalidConfig indicates the run configuration is unusable
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrMissingColumn indicates a required column is absent from the input header
	ErrMissingColumn = errors.New("required column missing")

	// ErrUnreadableInput indicates the input file could not be read
	ErrUnreadableInput = errors.New("input unreadable")

	// ErrUnwritableOutput indicates the output file could not be written
	ErrUnwritableOutput = errors.New("output unwritable")

	// ErrUnparsableAddress indicates an address string failed URL parsing;
	// this is recoverable and the record proceeds without a resolved domain
	ErrUnparsableAddress = errors.New("address not parsable as URL")
)

// wrappedError wraps an error with additional context
type wrappedError struct {
	msg   string
	cause error
}

func (e *wrappedError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.cause)
	}
	return e.msg
}

// Unwrap returns the underlying error
func (e *wrappedError) Unwrap() error {
	return e.cause
}

// Wrap wraps an error with additional context message.
// If err is nil, Wrap returns nil.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return &wrappedError{msg: msg, cause: err}
}

// Wrapf wraps an error with a formatted context message.
// If err is nil, Wrapf returns nil.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &wrappedError{msg: fmt.Sprintf(format, args...), cause: err}
}

// Is reports whether any error in err's chain matches target.
// Convenience wrapper around errors.Is from the standard library.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target type.
// Convenience wrapper around errors.As from the standard library.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Unwrap returns the result of calling the Unwrap method on err.
func Unwrap(err error) error {
	return errors.Unwrap(err)
}

// New creates a new error with the given message.
func New(msg string) error {
	return errors.New(msg)
}

// Errorf formats according to a format specifier and returns an error.
func Errorf(format string, args ...interface{}) error {
	return fmt.Errorf(format, args...)
}

// Join returns an error that wraps the given errors.
func Join(errs ...error) error {
	return errors.Join(errs...)
}

// IsFatal reports whether the error belongs to the fatal categories
// (configuration or I/O); fatal errors abort the run with a non-zero exit.
func IsFatal(err error) bool {
	return Is(err, ErrInvalidConfig) ||
		Is(err, ErrMissingColumn) ||
		Is(err, ErrUnreadableInput) ||
		Is(err, ErrUnwritableOutput)
}

// IsMissingColumn reports whether the error is a missing-column error
func IsMissingColumn(err error) bool {
	return Is(err, ErrMissingColumn)
}

// IsUnparsableAddress reports whether the error is a recoverable
// address-parse error
func IsUnparsableAddress(err error) bool {
	return Is(err, ErrUnparsableAddress)
}
