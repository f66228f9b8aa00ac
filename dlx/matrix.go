// SPDX-License-Identifier: MIT

package dlx

// node is one cell of the Dancing Links structure. Neighbor fields are
// indices into the owning Matrix arena; a node is "unlinked" when its former
// neighbors no longer point at it, yet its own fields keep the information
// needed to relink it in O(1).
type node struct {
	left, right, up, down int
	col                   int // owning column header index; headers own themselves
	row                   int // row id for cell nodes, -1 for headers and root
}

// Matrix is a generalized exact-cover constraint system.
//
// Arena layout: nodes[0] is the root of the column header ring; headers for
// the public columns 0..primary+secondary-1 occupy arena slots 1..P+S in
// order (primaries first); cell nodes are appended by AddRow. Secondary
// headers sit in the ring too, but column selection skips them and the
// search succeeds as soon as no primary header remains linked.
//
// A Matrix is not safe for concurrent use.
type Matrix struct {
	nPrimary   int
	nSecondary int

	nodes []node
	size  []int // candidate rows per column, indexed by header arena slot

	rows        int   // rows added so far
	primaryLeft int   // primary headers still linked into the ring
	visited     int   // candidate rows expanded by the last Solve
	solution    []int // row ids selected by the last successful Solve
}

// NewMatrix allocates a matrix with the given number of primary
// (exactly-once) and secondary (at-most-once) columns.
// Returns ErrNoPrimary if primary < 1, ErrNegativeColumns if secondary < 0.
// Complexity: O(primary+secondary).
func NewMatrix(primary, secondary int) (*Matrix, error) {
	if primary < 0 || secondary < 0 {
		return nil, ErrNegativeColumns
	}
	if primary == 0 {
		return nil, ErrNoPrimary
	}

	total := primary + secondary
	m := &Matrix{
		nPrimary:   primary,
		nSecondary: secondary,
		nodes:      make([]node, total+1, 4*(total+1)),
		size:       make([]int, total+1),
	}
	// Link root and headers into one circular ring; each header starts as its
	// own empty vertical list.
	for h := 0; h <= total; h++ {
		m.nodes[h] = node{
			left:  (h + total) % (total + 1),
			right: (h + 1) % (total + 1),
			up:    h,
			down:  h,
			col:   h,
			row:   -1,
		}
	}
	m.primaryLeft = primary

	return m, nil
}

// PrimaryColumns returns the number of primary columns.
func (m *Matrix) PrimaryColumns() int { return m.nPrimary }

// SecondaryColumns returns the number of secondary columns.
func (m *Matrix) SecondaryColumns() int { return m.nSecondary }

// Rows returns the number of rows added so far.
func (m *Matrix) Rows() int { return m.rows }

// AddRow inserts one row covering the given columns and returns its row id
// (sequential from 0). Column ids are 0-based with primaries first:
// 0..primary-1 are primary, primary..primary+secondary-1 are secondary.
// Returns ErrEmptyRow, ErrColumnRange, or ErrDuplicateColumn; on error the
// matrix is left unchanged.
// Complexity: O(len(cols)).
func (m *Matrix) AddRow(cols ...int) (int, error) {
	if len(cols) == 0 {
		return 0, ErrEmptyRow
	}
	seen := make(map[int]struct{}, len(cols))
	for _, c := range cols {
		if c < 0 || c >= m.nPrimary+m.nSecondary {
			return 0, ErrColumnRange
		}
		if _, dup := seen[c]; dup {
			return 0, ErrDuplicateColumn
		}
		seen[c] = struct{}{}
	}

	rowID := m.rows
	first := -1
	for _, c := range cols {
		h := c + 1 // header arena slot
		idx := len(m.nodes)
		m.nodes = append(m.nodes, node{col: h, row: rowID})

		// Vertical insert at the bottom of column h.
		bottom := m.nodes[h].up
		m.nodes[idx].down = h
		m.nodes[idx].up = bottom
		m.nodes[bottom].down = idx
		m.nodes[h].up = idx
		m.size[h]++

		// Horizontal ring over the row's nodes.
		if first < 0 {
			first = idx
			m.nodes[idx].left = idx
			m.nodes[idx].right = idx
		} else {
			last := m.nodes[first].left
			m.nodes[idx].left = last
			m.nodes[idx].right = first
			m.nodes[last].right = idx
			m.nodes[first].left = idx
		}
	}
	m.rows++

	return rowID, nil
}

// cover removes header h from the ring and unlinks every row of column h
// from all its other columns. The removed nodes keep their own neighbor
// fields, so uncover can restore them in O(1) each.
func (m *Matrix) cover(h int) {
	m.nodes[m.nodes[h].left].right = m.nodes[h].right
	m.nodes[m.nodes[h].right].left = m.nodes[h].left
	if h <= m.nPrimary {
		m.primaryLeft--
	}
	for i := m.nodes[h].down; i != h; i = m.nodes[i].down {
		for j := m.nodes[i].right; j != i; j = m.nodes[j].right {
			m.nodes[m.nodes[j].down].up = m.nodes[j].up
			m.nodes[m.nodes[j].up].down = m.nodes[j].down
			m.size[m.nodes[j].col]--
		}
	}
}

// uncover is the exact inverse of cover. It must be applied in reverse order
// of the matching cover calls; the bottom-up, right-to-left sweep mirrors
// cover's top-down, left-to-right one.
func (m *Matrix) uncover(h int) {
	for i := m.nodes[h].up; i != h; i = m.nodes[i].up {
		for j := m.nodes[i].left; j != i; j = m.nodes[j].left {
			m.size[m.nodes[j].col]++
			m.nodes[m.nodes[j].down].up = j
			m.nodes[m.nodes[j].up].down = j
		}
	}
	m.nodes[m.nodes[h].left].right = h
	m.nodes[m.nodes[h].right].left = h
	if h <= m.nPrimary {
		m.primaryLeft++
	}
}

// chooseColumn returns the linked primary header with the fewest candidate
// rows (MRV), or 0 (the root) when no primary header remains.
func (m *Matrix) chooseColumn() int {
	best, bestSize := 0, -1
	for h := m.nodes[0].right; h != 0; h = m.nodes[h].right {
		if h > m.nPrimary {
			continue // secondary: never selected, never required
		}
		if bestSize < 0 || m.size[h] < bestSize {
			best, bestSize = h, m.size[h]
			if bestSize == 0 {
				break
			}
		}
	}

	return best
}
