// Package errors provides error handling for benchsift.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - Hints for operator-facing messages
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
//	if errors.Is(err, errors.ErrBadIndexName) {
//	    // handle malformed harness output
//	}
//
// For full documentation see: https://pkg.go.dev/github.com/cockroachdb/errors
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
)

// User-facing messages and details
var (
	WithHint    = crdb.WithHint
	WithHintf   = crdb.WithHintf
	WithDetail  = crdb.WithDetail
	WithDetailf = crdb.WithDetailf
)

// Error inspection
var (
	Is     = crdb.Is
	IsAny  = crdb.IsAny
	As     = crdb.As
	Unwrap = crdb.Unwrap
)

// Common sentinel errors for use across benchsift.
// Use these with errors.Is() for type-safe error checking.
// Wrap these with errors.Wrap() to add context while preserving the type.
var (
	// ErrBadIndexName indicates a measurement file's parent directory name
	// does not follow the "<integer>th..." harness convention. A malformed
	// name means the harness output is not the expected shape, so the whole
	// dataset cannot be trusted.
	ErrBadIndexName = New("malformed index directory name")

	// ErrCorruptDocument indicates a measurement file could not be decoded
	// as CBOR. A corrupt measurement file poisons the whole dataset.
	ErrCorruptDocument = New("corrupt measurement document")

	// ErrNoDatasets indicates the configuration lists no datasets to process
	ErrNoDatasets = New("no datasets configured")
)

// IsDatasetFatal reports whether an error aborts the current dataset's
// pipeline (index-parse and decode failures, plus anything wrapping them).
func IsDatasetFatal(err error) bool {
	return err != nil && IsAny(err, ErrBadIndexName, ErrCorruptDocument)
}
