// SPDX-License-Identifier: MIT

package dlx

import (
	"fmt"
	"strings"
)

// Test-only bridge exposing the private cover/uncover kernels and a linkage
// snapshot, so black-box tests can verify the exact-inverse property without
// widening the production API.

// CoverColumnForTest covers public column c (0-based, primaries first).
func (m *Matrix) CoverColumnForTest(c int) { m.cover(c + 1) }

// UncoverColumnForTest uncovers public column c.
func (m *Matrix) UncoverColumnForTest(c int) { m.uncover(c + 1) }

// SnapshotForTest renders every arena node's links and every column size as
// a deterministic string. Two snapshots are equal iff the linkage is
// bit-identical.
func (m *Matrix) SnapshotForTest() string {
	var b strings.Builder
	for i, n := range m.nodes {
		fmt.Fprintf(&b, "%d:[l%d r%d u%d d%d c%d]\n", i, n.left, n.right, n.up, n.down, n.col)
	}
	fmt.Fprintf(&b, "size=%v primaryLeft=%d\n", m.size, m.primaryLeft)

	return b.String()
}
