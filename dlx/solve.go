// SPDX-License-Identifier: MIT

package dlx

// Solve runs Algorithm X over the matrix and reports whether any row
// selection covers every primary column exactly once while covering each
// secondary column at most once. The search stops at the first solution.
//
// Solve always returns with the matrix in its pre-Solve linkage (covers are
// undone on success, failure, and cancellation alike), so the same matrix
// may be solved repeatedly.
//
// Returns the context's error if the search was cancelled; the boolean is
// meaningless in that case.
// Complexity: exponential worst case; see package docs.
func (m *Matrix) Solve(opts ...Option) (bool, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	m.visited = 0
	m.solution = m.solution[:0]

	return m.search(&o)
}

// Solution returns the row ids selected by the last successful Solve, in
// selection order. The result is a copy; it is empty if the last Solve
// found no solution or has not run.
func (m *Matrix) Solution() []int {
	out := make([]int, len(m.solution))
	copy(out, m.solution)

	return out
}

// Visited returns the number of candidate rows expanded by the last Solve.
// Useful as a deterministic effort metric in tests and benchmarks.
func (m *Matrix) Visited() int { return m.visited }

// search is the recursive core. Each frame covers one chosen column plus the
// columns of one candidate row, recurses, and uncovers in exact reverse
// order before trying the next candidate or returning. The call stack
// enforces the reverse-order discipline Dancing Links requires.
func (m *Matrix) search(o *Options) (bool, error) {
	select {
	case <-o.Ctx.Done():
		return false, o.Ctx.Err()
	default:
	}

	// Every primary column covered exactly once: solution found.
	if m.primaryLeft == 0 {
		return true, nil
	}

	c := m.chooseColumn()
	if m.size[c] == 0 {
		return false, nil // some primary column has no candidate row left
	}

	m.cover(c)
	for i := m.nodes[c].down; i != c; i = m.nodes[i].down {
		m.visited++
		m.solution = append(m.solution, m.nodes[i].row)

		for j := m.nodes[i].right; j != i; j = m.nodes[j].right {
			m.cover(m.nodes[j].col)
		}
		found, err := m.search(o)
		for j := m.nodes[i].left; j != i; j = m.nodes[j].left {
			m.uncover(m.nodes[j].col)
		}

		if err != nil {
			m.uncover(c)
			return false, err
		}
		if found {
			m.uncover(c)
			return true, nil
		}
		m.solution = m.solution[:len(m.solution)-1]
	}
	m.uncover(c)

	return false, nil
}
