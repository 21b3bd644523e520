// Package apperror defines the error kinds surfaced by the use-case layer.
package apperror

import (
	"errors"
	"fmt"
)

// ValidationError represents invalid caller input.
type ValidationError struct {
	Field  string
	Reason string
	Err    error
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("validation failed: %s", e.Reason)
	}
	return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// ConflictError represents a request that collides with existing data.
type ConflictError struct {
	Resource string
	Key      string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s already exists: %s", e.Resource, e.Key)
}

// NotFoundError represents a lookup by identifier that matched nothing.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// UnsupportedBankError represents a bank with no registered statement parser.
type UnsupportedBankError struct {
	Bank string
}

func (e *UnsupportedBankError) Error() string {
	return fmt.Sprintf("bank not supported: %s", e.Bank)
}

// NewValidation builds a ValidationError.
func NewValidation(field, format string, args ...any) error {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// NewNotFound builds a NotFoundError.
func NewNotFound(resource, id string) error {
	return &NotFoundError{Resource: resource, ID: id}
}

// IsValidation reports whether err wraps a ValidationError.
func IsValidation(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

// IsConflict reports whether err wraps a ConflictError.
func IsConflict(err error) bool {
	var target *ConflictError
	return errors.As(err, &target)
}

// IsNotFound reports whether err wraps a NotFoundError.
func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

// IsUnsupportedBank reports whether err wraps an UnsupportedBankError.
func IsUnsupportedBank(err error) bool {
	var target *UnsupportedBankError
	return errors.As(err, &target)
}

// Process exit codes for each error kind.
const (
	ExitOK         = 0
	ExitFailure    = 1
	ExitValidation = 2
	ExitConflict   = 3
	ExitNotFound   = 4
)

// ExitCode maps err to a process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case IsValidation(err), IsUnsupportedBank(err):
		return ExitValidation
	case IsConflict(err):
		return ExitConflict
	case IsNotFound(err):
		return ExitNotFound
	default:
		return ExitFailure
	}
}
