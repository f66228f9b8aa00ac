// Package shape models polyomino-style pieces as immutable boolean grids and
// enumerates their canonical orientations (variants).
//
// What:
//
//   - Shape wraps a rectangular [][]bool grid with a caller-assigned id.
//   - Variants derives every distinct orientation of a shape under 0/90/180/270°
//     rotation and horizontal reflection, each trimmed to its bounding box.
//   - Variant exposes the trimmed grid plus the filled-cell offsets used by
//     placement enumeration.
//
// Why:
//
//   - Packing solvers must not treat two congruent orientations as distinct:
//     duplicate variants multiply the search space without adding solutions.
//   - Bounding-box trimming makes placement bounds exact (no phantom margins).
//
// Complexity:
//
//   - New:       O(H×W) time and memory (deep copy + validation).
//   - Variants:  O(H×W) per orientation, ≤ 8 orientations ⇒ O(H×W) overall.
//
// Invariants:
//
//   - Variants returns between 1 and 8 grids; no two are structurally equal.
//   - A shape with zero filled cells yields a single empty 0×0 variant,
//     which downstream placement enumeration treats as unplaceable.
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
package shape
