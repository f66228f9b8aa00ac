package packing_test

import (
	"fmt"
	"strings"

	"github.com/dmelnyk/polycover/packing"
)

// ExampleChecker_CountFeasible runs the whole pipeline: parse a shape
// catalog and a region list from text, then count the regions that admit a
// complete non-overlapping packing.
//
// Shape 1 is a domino, shape 2 an L-tromino. The 2×3 region asking for two
// trominoes tiles exactly; the 1×2 region asking for one of each is pruned
// by the area bound; the 3×3 region asking for one of each leaves four
// cells empty, which is allowed.
func ExampleChecker_CountFeasible() {
	shapes, err := packing.ParseShapes(strings.NewReader(`1:
##.
...
...

2:
#..
##.
...
`))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	checker, err := packing.NewChecker(shapes...)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	regions, err := packing.ParseRegions(strings.NewReader(`3x2: 0 2
2x1: 1 1
3x3: 1 1
`), checker.CatalogIDs())
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	count, err := checker.CountFeasible(regions)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("%d of %d regions are feasible\n", count, len(regions))
	// Output: 2 of 3 regions are feasible
}
