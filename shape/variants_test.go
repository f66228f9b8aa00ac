package shape_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmelnyk/polycover/shape"
)

//----------------------------------------------------------------------------//
// Constructor Tests
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects empty or ragged grids.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name  string
		cells [][]bool
		err   error
	}{
		{"EmptyRows", [][]bool{}, shape.ErrEmptyGrid},
		{"EmptyCols", [][]bool{{}}, shape.ErrEmptyGrid},
		{"Ragged", [][]bool{{true, false}, {true}}, shape.ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := shape.New(7, tc.cells)
			if !errors.Is(err, tc.err) {
				t.Errorf("New(%v) error = %v; want %v", tc.cells, err, tc.err)
			}
		})
	}
}

// TestNew_Immutability ensures the constructor deep-copies its input and
// that Cells returns an independent copy.
func TestNew_Immutability(t *testing.T) {
	in := [][]bool{{true, false}, {false, true}}
	s, err := shape.New(1, in)
	require.NoError(t, err)

	in[0][0] = false // mutate the caller's slice after construction
	got := s.Cells()
	require.True(t, got[0][0], "shape must not alias the input grid")

	got[1][1] = false // mutate the returned copy
	require.True(t, s.Cells()[1][1], "Cells must return a fresh copy")
}

// TestShape_Accessors covers ID, CellCount, Height and Width.
func TestShape_Accessors(t *testing.T) {
	s := shape.MustNew(42, [][]bool{
		{true, true, false},
		{false, true, false},
	})
	require.Equal(t, 42, s.ID())
	require.Equal(t, 3, s.CellCount())
	require.Equal(t, 2, s.Height())
	require.Equal(t, 3, s.Width())
}

//----------------------------------------------------------------------------//
// Variants Tests
//----------------------------------------------------------------------------//

// TestVariants_Counts checks the variant count for shapes of each symmetry
// class: fully symmetric (1), two-fold (2), rotation-only (4), and the
// generic asymmetric case (8).
func TestVariants_Counts(t *testing.T) {
	cases := []struct {
		name  string
		cells [][]bool
		want  int
	}{
		{
			// Single cell: invariant under every transform.
			"Monomino", [][]bool{{true}}, 1,
		},
		{
			// 1×2 domino: horizontal and vertical forms only.
			"Domino", [][]bool{{true, true}}, 2,
		},
		{
			// S-tetromino: two rotations, mirrored into two more (Z).
			"STetromino", [][]bool{
				{false, true, true},
				{true, true, false},
			}, 4,
		},
		{
			// L-tetromino: no symmetry at all.
			"LTetromino", [][]bool{
				{true, false},
				{true, false},
				{true, true},
			}, 8,
		},
		{
			// 2×2 square: one orientation.
			"Square", [][]bool{
				{true, true},
				{true, true},
			}, 1,
		},
		{
			// T-tetromino: mirror-symmetric, four rotations.
			"TTetromino", [][]bool{
				{true, true, true},
				{false, true, false},
			}, 4,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			vs := shape.Variants(shape.MustNew(1, tc.cells))
			require.Len(t, vs, tc.want)
		})
	}
}

// TestVariants_Dedup asserts the structural invariants: at most 8 variants,
// no two structurally equal, every variant trimmed and cell-count-preserving.
func TestVariants_Dedup(t *testing.T) {
	shapes := []*shape.Shape{
		shape.MustNew(1, [][]bool{{true, true, true}, {true, false, false}}),
		shape.MustNew(2, [][]bool{{false, true}, {true, true}, {true, false}}),
		shape.MustNew(3, [][]bool{{true}}),
		shape.MustNew(4, [][]bool{{true, true}, {true, true}}),
	}
	for _, s := range shapes {
		vs := shape.Variants(s)
		require.NotEmpty(t, vs)
		require.LessOrEqual(t, len(vs), 8)

		seen := make(map[string]struct{}, len(vs))
		for _, v := range vs {
			require.Equal(t, s.CellCount(), v.CellCount(),
				"rotation/reflection must preserve cell count")
			requireTrimmed(t, v)

			key := encodeGrid(v.Cells)
			_, dup := seen[key]
			require.False(t, dup, "shape %d: duplicate variant %q", s.ID(), key)
			seen[key] = struct{}{}
		}
	}
}

// TestVariants_TrimsPadding verifies that empty border rows/columns in the
// template do not leak into variants.
func TestVariants_TrimsPadding(t *testing.T) {
	// Domino embedded in a padded 3×3 template, as the text format produces.
	padded := shape.MustNew(5, [][]bool{
		{false, false, false},
		{false, true, true},
		{false, false, false},
	})
	vs := shape.Variants(padded)
	require.Len(t, vs, 2)
	for _, v := range vs {
		require.Equal(t, 2, v.Height*v.Width, "domino bounding box must be 1×2 or 2×1")
	}
}

// TestVariants_EmptyShape checks the degenerate all-empty template.
func TestVariants_EmptyShape(t *testing.T) {
	empty := shape.MustNew(9, [][]bool{{false, false}, {false, false}})
	vs := shape.Variants(empty)
	require.Len(t, vs, 1)
	require.Equal(t, 0, vs[0].Height)
	require.Equal(t, 0, vs[0].Width)
	require.Empty(t, vs[0].Offsets())
}

// TestVariant_Offsets checks row-major offset extraction.
func TestVariant_Offsets(t *testing.T) {
	s := shape.MustNew(1, [][]bool{
		{true, false},
		{true, true},
	})
	vs := shape.Variants(s)
	// The first variant is the identity orientation (already trimmed).
	require.Equal(t, [][2]int{{0, 0}, {1, 0}, {1, 1}}, vs[0].Offsets())
}

// requireTrimmed fails unless every border row/column of v contains a filled cell.
func requireTrimmed(t *testing.T, v shape.Variant) {
	t.Helper()
	if v.Height == 0 {
		return
	}
	rowHas := func(y int) bool {
		for _, f := range v.Cells[y] {
			if f {
				return true
			}
		}
		return false
	}
	colHas := func(x int) bool {
		for y := 0; y < v.Height; y++ {
			if v.Cells[y][x] {
				return true
			}
		}
		return false
	}
	require.True(t, rowHas(0) && rowHas(v.Height-1), "empty border row survived trimming")
	require.True(t, colHas(0) && colHas(v.Width-1), "empty border column survived trimming")
}

// encodeGrid renders a grid as a compact string for structural comparison.
func encodeGrid(cells [][]bool) string {
	out := ""
	for _, row := range cells {
		for _, f := range row {
			if f {
				out += "#"
			} else {
				out += "."
			}
		}
		out += "/"
	}
	return out
}
