// SPDX-License-Identifier: MIT

// Package dlx defines sentinel errors and options for the exact-cover solver.
package dlx

import (
	"context"
	"errors"
)

// Sentinel errors for matrix construction and row insertion.
var (
	// ErrNoPrimary indicates a matrix without any primary column.
	ErrNoPrimary = errors.New("dlx: matrix requires at least one primary column")
	// ErrNegativeColumns indicates a negative column count.
	ErrNegativeColumns = errors.New("dlx: column counts must be non-negative")
	// ErrColumnRange indicates a row referencing a column outside [0, primary+secondary).
	ErrColumnRange = errors.New("dlx: column index out of range")
	// ErrEmptyRow indicates a row covering no column at all.
	ErrEmptyRow = errors.New("dlx: row must cover at least one column")
	// ErrDuplicateColumn indicates a row referencing the same column twice.
	ErrDuplicateColumn = errors.New("dlx: row references a column twice")
)

// Option configures optional behavior of Solve.
// Use with m.Solve(opts...).
type Option func(*Options)

// Options holds configurable parameters for the exact-cover search.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	// Cancelling the context aborts the search after unwinding its covers,
	// leaving the matrix in its pre-Solve linkage.
	Ctx context.Context
}

// DefaultOptions returns Options with a background context.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext returns an Option that sets the cancellation context.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}
