package packing

import "github.com/dmelnyk/polycover/shape"

// placementKey identifies one memoized placement enumeration.
type placementKey struct {
	shapeID, width, height int
}

// placementsFor returns every placement of the shape's variants inside a
// width×height grid, computing and caching the list on first use. The cached
// slices are shared read-only; callers must not mutate them.
// Complexity: O(1) on a cache hit, enumeration cost on a miss (see below).
func (c *Checker) placementsFor(id, width, height int) []Placement {
	key := placementKey{shapeID: id, width: width, height: height}

	c.mu.Lock()
	defer c.mu.Unlock()

	if pls, ok := c.placements[key]; ok {
		return pls
	}
	vs, ok := c.variants[id]
	if !ok {
		vs = shape.Variants(c.catalog[id])
		c.variants[id] = vs
	}
	pls := enumeratePlacements(vs, width, height)
	c.placements[key] = pls
	c.stats.PlacementSetsBuilt++

	return pls
}

// enumeratePlacements slides each variant's bounding box across the grid and
// emits the occupied cell indices per anchor position. Variants larger than
// the grid contribute nothing; an empty (zero-cell) variant is unplaceable
// and is skipped, so a blank shape yields an empty placement list.
// Complexity: O(Σ_variants (W−vw+1)×(H−vh+1)×cells).
func enumeratePlacements(vs []shape.Variant, width, height int) []Placement {
	var out []Placement
	for _, v := range vs {
		offs := v.Offsets()
		if len(offs) == 0 {
			continue
		}
		for py := 0; py+v.Height <= height; py++ {
			for px := 0; px+v.Width <= width; px++ {
				cells := make(Placement, len(offs))
				for k, off := range offs {
					cells[k] = (py+off[0])*width + px + off[1]
				}
				out = append(out, cells)
			}
		}
	}

	return out
}
