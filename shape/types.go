// Package shape defines the core types and sentinel errors for the shape
// subpackage of github.com/dmelnyk/polycover.
package shape

import "errors"

// Sentinel errors for shape construction.
var (
	// ErrEmptyGrid indicates the input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("shape: cell grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("shape: all rows must have the same length")
)

// Shape is an immutable piece template: a rectangular boolean grid where true
// marks a filled cell. Identity is the caller-assigned id; two shapes with
// equal grids but different ids are distinct pieces.
type Shape struct {
	id    int
	cells [][]bool
	count int // filled cells, computed once at construction
}

// New constructs a Shape from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if cells has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(H×W) time and memory.
func New(id int, cells [][]bool) (*Shape, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	w := len(cells[0])
	// Deep copy to prevent external mutation; count filled cells in the same pass.
	grid := make([][]bool, len(cells))
	count := 0
	for y, row := range cells {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
		grid[y] = make([]bool, w)
		copy(grid[y], row)
		for _, filled := range row {
			if filled {
				count++
			}
		}
	}

	return &Shape{id: id, cells: grid, count: count}, nil
}

// MustNew is like New but panics on error. Intended for static shape tables
// and tests where the grid is known to be well-formed.
func MustNew(id int, cells [][]bool) *Shape {
	s, err := New(id, cells)
	if err != nil {
		panic(err)
	}

	return s
}

// ID returns the caller-assigned shape identifier.
func (s *Shape) ID() int { return s.id }

// CellCount returns the number of filled cells in the template.
// Complexity: O(1) (precomputed).
func (s *Shape) CellCount() int { return s.count }

// Height returns the number of grid rows.
func (s *Shape) Height() int { return len(s.cells) }

// Width returns the number of grid columns.
func (s *Shape) Width() int { return len(s.cells[0]) }

// Cells returns a deep copy of the template grid.
// Complexity: O(H×W).
func (s *Shape) Cells() [][]bool {
	out := make([][]bool, len(s.cells))
	for y, row := range s.cells {
		out[y] = make([]bool, len(row))
		copy(out[y], row)
	}

	return out
}
