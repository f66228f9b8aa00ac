package packing

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/dmelnyk/polycover/dlx"
	"github.com/dmelnyk/polycover/shape"
)

// Checker answers packing feasibility for regions against a fixed shape
// catalog. It owns the memoization caches (variants and placements per
// shape; cell counts are precomputed on the shapes themselves), which are
// populated on first use and shared across all checks. A Checker is safe
// for concurrent use; every check builds its own constraint matrix.
type Checker struct {
	catalog map[int]*shape.Shape

	mu         sync.Mutex
	variants   map[int][]shape.Variant
	placements map[placementKey][]Placement
	stats      Stats
}

// NewChecker builds a Checker over the given shape catalog.
// Returns ErrNilShape for a nil entry, ErrDuplicateShape for a repeated id.
// Complexity: O(len(shapes)).
func NewChecker(shapes ...*shape.Shape) (*Checker, error) {
	catalog := make(map[int]*shape.Shape, len(shapes))
	for _, s := range shapes {
		if s == nil {
			return nil, ErrNilShape
		}
		if _, dup := catalog[s.ID()]; dup {
			return nil, fmt.Errorf("%w: id %d", ErrDuplicateShape, s.ID())
		}
		catalog[s.ID()] = s
	}

	return &Checker{
		catalog:    catalog,
		variants:   make(map[int][]shape.Variant, len(shapes)),
		placements: make(map[placementKey][]Placement),
	}, nil
}

// Stats returns a copy of the accumulated effort counters.
func (c *Checker) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.stats
}

// CanFit reports whether at least one non-overlapping placement of all
// required shape instances exists inside the region.
//
// Steps: validate the region; reject by the area bound without touching
// placement enumeration; succeed trivially on zero instances; otherwise
// build the exact-cover matrix (one primary column per piece instance, one
// secondary column per grid cell, one row per placement) and solve.
//
// Returns a region validation error, or the context's error if the search
// was cancelled. For any well-formed region the check always terminates
// with a definite boolean.
func (c *Checker) CanFit(r Region, opts ...Option) (bool, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	instances, needed, err := c.expand(r)
	if err != nil {
		return false, err
	}

	// Cheap rejection: more filled cells demanded than the grid holds.
	if needed > r.Area() {
		c.bump(func(st *Stats) { st.EarlyRejects++; st.RegionsChecked++ })

		return false, nil
	}
	// Nothing to place: trivially feasible.
	if len(instances) == 0 {
		c.bump(func(st *Stats) { st.RegionsChecked++ })

		return true, nil
	}

	m, err := dlx.NewMatrix(len(instances), r.Area())
	if err != nil {
		return false, err // unreachable for validated regions
	}
	for idx, id := range instances {
		for _, pl := range c.placementsFor(id, r.Width, r.Height) {
			cols := make([]int, 0, 1+len(pl))
			cols = append(cols, idx)
			for _, cell := range pl {
				cols = append(cols, len(instances)+cell)
			}
			if _, err = m.AddRow(cols...); err != nil {
				return false, err // unreachable: placements are in range by construction
			}
		}
	}
	c.bump(func(st *Stats) { st.MatricesBuilt++; st.RegionsChecked++ })

	return m.Solve(dlx.WithContext(o.Ctx))
}

// CountFeasible checks every region and returns how many are feasible.
// With WithWorkers(n>1) the regions are distributed across n goroutines
// sharing this Checker's caches; each worker solves its own matrices.
// The first error cancels the remaining work and is returned.
func (c *Checker) CountFeasible(regions []Region, opts ...Option) (int, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	if o.Workers <= 1 || len(regions) <= 1 {
		count := 0
		for _, r := range regions {
			ok, err := c.CanFit(r, WithContext(o.Ctx))
			if err != nil {
				return count, err
			}
			if ok {
				count++
			}
		}

		return count, nil
	}

	ctx, cancel := context.WithCancel(o.Ctx)
	defer cancel()

	var (
		wg       sync.WaitGroup
		jobs     = make(chan Region)
		count    int64
		errOnce  sync.Once
		firstErr error
	)
	wg.Add(o.Workers)
	for w := 0; w < o.Workers; w++ {
		go func() {
			defer wg.Done()
			for r := range jobs {
				ok, err := c.CanFit(r, WithContext(ctx))
				if err != nil {
					errOnce.Do(func() {
						firstErr = err
						cancel() // stop the remaining searches
					})

					continue
				}
				if ok {
					atomic.AddInt64(&count, 1)
				}
			}
		}()
	}
	for _, r := range regions {
		jobs <- r
	}
	close(jobs)
	wg.Wait()

	return int(count), firstErr
}

// expand validates the region and flattens Required into the ordered piece
// instance list (ascending shape id, one entry per unit of count), together
// with the total filled cells demanded.
func (c *Checker) expand(r Region) (instances []int, needed int, err error) {
	if r.Width <= 0 || r.Height <= 0 {
		return nil, 0, fmt.Errorf("%w: %dx%d", ErrBadDimensions, r.Width, r.Height)
	}

	ids := make([]int, 0, len(r.Required))
	for id := range r.Required {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	for _, id := range ids {
		count := r.Required[id]
		if count < 0 {
			return nil, 0, fmt.Errorf("%w: shape %d count %d", ErrNegativeCount, id, count)
		}
		if count == 0 {
			continue
		}
		s, ok := c.catalog[id]
		if !ok {
			return nil, 0, fmt.Errorf("%w: id %d", ErrUnknownShape, id)
		}
		needed += count * s.CellCount()
		for k := 0; k < count; k++ {
			instances = append(instances, id)
		}
	}

	return instances, needed, nil
}

// bump applies fn to the stats under the cache mutex.
func (c *Checker) bump(fn func(*Stats)) {
	c.mu.Lock()
	fn(&c.stats)
	c.mu.Unlock()
}
