// Package packing decides whether a set of required shape instances can be
// placed into a rectangular region without overlap, by reduction to
// generalized exact cover.
//
// What:
//
//   - Region describes a W×H grid plus required counts per shape id.
//   - Checker owns a shape catalog and memoization caches (variants per
//     shape, placements per shape and grid size) and answers CanFit per
//     region and CountFeasible over batches.
//   - Placement enumeration slides every variant's bounding box across the
//     grid and records the occupied row-major cell indices.
//
// Why:
//
//   - Feasibility ("does at least one packing exist?") is the question batch
//     tooling actually asks; the checker proves existence and stops, rather
//     than enumerating packings.
//
// Reduction:
//
//	One primary dlx column per required piece instance (placed exactly once),
//	one secondary column per grid cell (occupied at most once, may stay
//	empty), one matrix row per (instance, placement) pair.
//
// Pruning:
//
//	Σ count(s)·cells(s) > W×H rejects the region before any placement
//	enumeration or matrix construction; Stats counters make that observable.
//
// Concurrency:
//
//   - Caches are compute-once-per-key under a mutex, so concurrent region
//     checks may share one Checker; every check builds its own matrix.
//   - CountFeasible fans regions out across WithWorkers(n) goroutines.
//
// Complexity:
//
//   - Placement enumeration: O(variants × (W−vw+1) × (H−vh+1) × cells).
//   - Feasibility search: exponential worst case (exact cover), heavily
//     pruned by MRV column selection; see package dlx.
//
// Errors:
//
//   - ErrNilShape, ErrDuplicateShape: invalid catalog.
//   - ErrBadDimensions, ErrNegativeCount, ErrUnknownShape: invalid region.
//   - ErrMalformedShape, ErrMalformedRegion: text parsing (see parse.go).
//   - context errors from a cancelled check.
package packing
