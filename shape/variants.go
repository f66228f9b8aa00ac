package shape

import "strings"

// Variant is one canonical orientation of a shape: rotated and/or mirrored,
// then trimmed so no fully-empty border row or column remains.
// A Variant is a value type; its grid must not be mutated by callers.
type Variant struct {
	// Height and Width are the trimmed bounding-box dimensions.
	Height, Width int
	// Cells is the trimmed grid; Cells[y][x] is true for filled cells.
	Cells [][]bool
}

// CellCount returns the number of filled cells in the variant.
func (v Variant) CellCount() int {
	n := 0
	for _, row := range v.Cells {
		for _, filled := range row {
			if filled {
				n++
			}
		}
	}

	return n
}

// Offsets returns the (row, col) coordinates of every filled cell in
// row-major order. Placement enumeration translates these by an anchor.
// Complexity: O(H×W).
func (v Variant) Offsets() [][2]int {
	offs := make([][2]int, 0, v.CellCount())
	for y, row := range v.Cells {
		for x, filled := range row {
			if filled {
				offs = append(offs, [2]int{y, x})
			}
		}
	}

	return offs
}

// key encodes the variant grid as a canonical string for deduplication.
func (v Variant) key() string {
	var b strings.Builder
	b.Grow(v.Height*(v.Width+1) + 8)
	for _, row := range v.Cells {
		for _, filled := range row {
			if filled {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('/')
	}

	return b.String()
}

// Variants enumerates the distinct orientations of s: for each of the four
// rotations it considers the grid and its horizontal mirror, trims both to
// the bounding box, and keeps each structurally new result. The order is
// deterministic (insertion order of the rotate/mirror sweep); between 1 and
// 8 variants are returned. A shape with zero filled cells yields a single
// empty 0×0 variant.
// Complexity: O(H×W) per orientation, ≤ 8 orientations.
func Variants(s *Shape) []Variant {
	var (
		out  []Variant
		seen = make(map[string]struct{}, 8)
		add  = func(grid [][]bool) {
			v := trim(grid)
			k := v.key()
			if _, dup := seen[k]; dup {
				return
			}
			seen[k] = struct{}{}
			out = append(out, v)
		}
	)

	grid := s.Cells()
	for i := 0; i < 4; i++ {
		add(grid)
		add(mirror(grid))
		grid = rotate(grid)
	}

	return out
}

// trim strips fully-empty leading/trailing rows and columns and returns the
// bounding-box Variant. An all-empty grid trims to a 0×0 variant.
func trim(grid [][]bool) Variant {
	top, bottom := len(grid), -1
	left, right := len(grid[0]), -1
	for y, row := range grid {
		for x, filled := range row {
			if !filled {
				continue
			}
			if y < top {
				top = y
			}
			if y > bottom {
				bottom = y
			}
			if x < left {
				left = x
			}
			if x > right {
				right = x
			}
		}
	}
	if bottom < 0 {
		// No filled cell anywhere: degenerate empty variant.
		return Variant{Height: 0, Width: 0, Cells: [][]bool{}}
	}

	h, w := bottom-top+1, right-left+1
	cells := make([][]bool, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]bool, w)
		copy(cells[y], grid[top+y][left:right+1])
	}

	return Variant{Height: h, Width: w, Cells: cells}
}

// rotate returns the grid rotated 90° clockwise: (y,x) → (x, H−1−y).
func rotate(grid [][]bool) [][]bool {
	h, w := len(grid), len(grid[0])
	out := make([][]bool, w)
	for y := 0; y < w; y++ {
		out[y] = make([]bool, h)
		for x := 0; x < h; x++ {
			out[y][x] = grid[h-1-x][y]
		}
	}

	return out
}

// mirror returns the grid reflected horizontally (each row reversed).
func mirror(grid [][]bool) [][]bool {
	h, w := len(grid), len(grid[0])
	out := make([][]bool, h)
	for y := 0; y < h; y++ {
		out[y] = make([]bool, w)
		for x := 0; x < w; x++ {
			out[y][x] = grid[y][w-1-x]
		}
	}

	return out
}
