// Package errors provides error handling for optlike.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - Sentinel errors for generation-time failures
//
// Usage:
//
//	// Create new error
//	err := errors.New("something went wrong")
//
//	// Wrap with context
//	if err := doSomething(); err != nil {
//	    return errors.Wrap(err, "failed to do something")
//	}
//
//	// Check errors
//	if errors.Is(err, errors.ErrInvalidSpec) {
//	    // handle malformed spec
//	}
//
// For full documentation see: https://pkg.go.dev/github.com/cockroachdb/errors
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New         = crdb.New
	Newf        = crdb.Newf
	Wrap        = crdb.Wrap
	Wrapf       = crdb.Wrapf
	WithStack   = crdb.WithStack
	WithMessage = crdb.WithMessage
	WithHint    = crdb.WithHint
	WithDetail  = crdb.WithDetail
)

// Error inspection
var (
	Is     = crdb.Is
	IsAny  = crdb.IsAny
	As     = crdb.As
	Unwrap = crdb.Unwrap
)

// Common sentinel errors for use across optlike.
// Use these with errors.Is() for type-safe error checking.
// Wrap these with errors.Wrap() to add context while preserving the type.
var (
	// ErrInvalidSpec indicates a type specification is structurally invalid
	// (malformed identifiers, duplicate or reserved names, unknown derives).
	// These are generation-time failures and are never deferred to the
	// emitted code.
	ErrInvalidSpec = New("invalid type spec")

	// ErrStale indicates committed generated output no longer matches what
	// the generator produces for its spec.
	ErrStale = New("generated output is stale")
)

// NewInvalidSpecError creates an invalid-spec error with a formatted message
func NewInvalidSpecError(format string, args ...interface{}) error {
	return Wrap(ErrInvalidSpec, Newf(format, args...).Error())
}
