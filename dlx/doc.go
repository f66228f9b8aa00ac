// SPDX-License-Identifier: MIT

// Package dlx implements generalized exact cover: Knuth's Algorithm X over a
// Dancing Links matrix, extended with optional ("secondary") columns.
//
// What:
//
//   - Matrix holds a sparse 0/1 constraint system as four-way linked nodes.
//     All nodes live in one flat arena slice; left/right/up/down neighbors
//     are integer indices into that arena, never pointers. Cover and uncover
//     mutate index fields in place: O(1) removal and O(1) reinsertion with
//     zero per-operation allocation.
//   - Primary columns must be covered exactly once by the selected rows.
//   - Secondary columns may be covered at most once; a secondary column left
//     uncovered never fails the search.
//   - Solve reports satisfiability: it stops at the first solution found.
//
// Why:
//
//   - Tiling and packing feasibility ("can these pieces fill this region?")
//     reduces directly to generalized exact cover: one primary column per
//     piece instance, one secondary column per grid cell.
//   - Scheduling, sudoku, and n-queens are classic exact-cover instances.
//
// Algorithm (Algorithm X with the MRV heuristic):
//
//  1. If no primary column remains uncovered, the current row selection is a
//     solution.
//  2. Pick the uncovered primary column with the fewest candidate rows.
//  3. Zero candidates ⇒ the branch is infeasible; backtrack.
//  4. For each candidate row: cover all of the row's columns, recurse, then
//     uncover in exact reverse order. Uncovering runs on the success path as
//     well, so a finished Solve always leaves the matrix in its pre-Solve
//     linkage and the same Matrix can be solved again.
//
// Complexity:
//
//   - Worst case exponential in the number of rows (exact search);
//     MRV column selection keeps the branching factor minimal in practice.
//   - Cover/uncover: O(nodes touched), no allocation.
//   - Memory: O(total 1-entries) arena nodes, built once by AddRow.
//
// Options:
//
//   - WithContext(ctx): cancellation checked at every recursion entry;
//     the search unwinds its covers before surfacing ctx.Err().
//
// Errors:
//
//   - ErrNoPrimary, ErrNegativeColumns: invalid Matrix dimensions.
//   - ErrColumnRange, ErrEmptyRow, ErrDuplicateColumn: invalid AddRow input.
//   - context errors from a cancelled Solve.
package dlx
