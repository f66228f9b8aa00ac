// Package packing defines core types, options, and sentinel errors for the
// packing subpackage of github.com/dmelnyk/polycover.
package packing

import (
	"context"
	"errors"
)

// Sentinel errors for catalog construction, region validation, and parsing.
var (
	// ErrNilShape indicates a nil shape passed to NewChecker.
	ErrNilShape = errors.New("packing: catalog shape must be non-nil")
	// ErrDuplicateShape indicates two catalog shapes sharing an id.
	ErrDuplicateShape = errors.New("packing: duplicate shape id in catalog")
	// ErrBadDimensions indicates a region with non-positive width or height.
	ErrBadDimensions = errors.New("packing: region dimensions must be positive")
	// ErrNegativeCount indicates a negative required count in a region.
	ErrNegativeCount = errors.New("packing: required shape counts must be non-negative")
	// ErrUnknownShape indicates a region requiring a shape id absent from the catalog.
	ErrUnknownShape = errors.New("packing: region requires a shape missing from the catalog")
	// ErrMalformedShape indicates a shape block that does not follow the text format.
	ErrMalformedShape = errors.New("packing: malformed shape block")
	// ErrMalformedRegion indicates a region line that does not follow the text format.
	ErrMalformedRegion = errors.New("packing: malformed region line")
)

// Region is a rectangular target grid together with the required number of
// instances per shape id. A Region is a plain value; zero counts are allowed
// and equivalent to the id being absent.
type Region struct {
	// Width and Height are the grid dimensions in cells.
	Width, Height int
	// Required maps shape id → number of instances that must be placed.
	Required map[int]int
}

// Area returns Width × Height.
func (r Region) Area() int { return r.Width * r.Height }

// Placement is the set of row-major cell indices (y*Width + x) one shape
// variant occupies at a concrete position inside a region's grid.
type Placement []int

// Stats exposes deterministic effort counters accumulated by a Checker.
// They exist for diagnostics and tests (e.g. proving that over-capacity
// regions never reach placement enumeration).
type Stats struct {
	// RegionsChecked counts completed CanFit calls (any boolean outcome).
	RegionsChecked int64
	// EarlyRejects counts regions rejected by the area bound alone.
	EarlyRejects int64
	// MatricesBuilt counts constraint matrices constructed and solved.
	MatricesBuilt int64
	// PlacementSetsBuilt counts placement-cache misses, i.e. actual
	// placement enumerations per (shape, width, height) key.
	PlacementSetsBuilt int64
}

// Option configures optional behavior of CanFit and CountFeasible.
type Option func(*Options)

// Options holds configurable parameters for feasibility checking.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	// Cancelling the context aborts the exact-cover search mid-branch.
	Ctx context.Context

	// Workers sets the number of goroutines CountFeasible uses to check
	// regions concurrently. Values below 2 keep the sequential path.
	// CanFit ignores this field.
	Workers int
}

// DefaultOptions returns Options with a background context and sequential
// checking (Workers = 1).
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		Workers: 1,
	}
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

// WithWorkers returns an Option that sets the CountFeasible concurrency
// level. Values below 1 are treated as 1.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			n = 1
		}
		o.Workers = n
	}
}
