package packing

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/dmelnyk/polycover/shape"
)

// Text formats:
//
//	Shape block:  a line "<id>:" followed by exactly templateSize lines of
//	              templateSize characters, '#' filled and '.' empty.
//	Region line:  "<width>x<height>: c0 c1 c2 ..." where the counts are
//	              positional over the catalog's shape ids in ascending order.
const templateSize = 3

var (
	shapeHeaderRe = regexp.MustCompile(`^(\d+):$`)
	regionLineRe  = regexp.MustCompile(`^(\d+)x(\d+):\s*(.+)$`)
)

// ParseShapes reads shape blocks from r. Blank lines between blocks are
// skipped. Returns ErrMalformedShape (wrapped with line context) on a stray
// header, wrong block length, wrong line width, or an unexpected character.
func ParseShapes(r io.Reader) ([]*shape.Shape, error) {
	var (
		out     []*shape.Shape
		scanner = bufio.NewScanner(r)
		lineNo  int
	)
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		header := shapeHeaderRe.FindStringSubmatch(line)
		if header == nil {
			return nil, fmt.Errorf("%w: line %d: expected \"<id>:\", got %q", ErrMalformedShape, lineNo, line)
		}
		id, err := strconv.Atoi(header[1])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: shape id: %v", ErrMalformedShape, lineNo, err)
		}

		cells := make([][]bool, templateSize)
		for y := 0; y < templateSize; y++ {
			if !scanner.Scan() {
				return nil, fmt.Errorf("%w: line %d: shape %d: grid truncated", ErrMalformedShape, lineNo, id)
			}
			lineNo++
			row := scanner.Text()
			if len(row) != templateSize {
				return nil, fmt.Errorf("%w: line %d: shape %d: row must be %d characters", ErrMalformedShape, lineNo, id, templateSize)
			}
			cells[y] = make([]bool, templateSize)
			for x := 0; x < templateSize; x++ {
				switch row[x] {
				case '#':
					cells[y][x] = true
				case '.':
					cells[y][x] = false
				default:
					return nil, fmt.Errorf("%w: line %d: shape %d: unexpected character %q", ErrMalformedShape, lineNo, id, row[x])
				}
			}
		}

		s, err := shape.New(id, cells)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedShape, lineNo, err)
		}
		out = append(out, s)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("packing: reading shapes: %w", err)
	}

	return out, nil
}

// ParseRegions reads region lines from r. ids gives the catalog's shape ids
// in the order the counts appear on each line (ascending by convention);
// every line must carry exactly len(ids) counts. Blank lines are skipped.
// Returns ErrMalformedRegion (wrapped with line context) on a non-matching
// line or a count list of the wrong length.
func ParseRegions(r io.Reader, ids []int) ([]Region, error) {
	var (
		out     []Region
		scanner = bufio.NewScanner(r)
		lineNo  int
	)
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		m := regionLineRe.FindStringSubmatch(line)
		if m == nil {
			return nil, fmt.Errorf("%w: line %d: %q", ErrMalformedRegion, lineNo, line)
		}
		width, err := strconv.Atoi(m[1])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: width: %v", ErrMalformedRegion, lineNo, err)
		}
		height, err := strconv.Atoi(m[2])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: height: %v", ErrMalformedRegion, lineNo, err)
		}

		counts := strings.Fields(m[3])
		if len(counts) != len(ids) {
			return nil, fmt.Errorf("%w: line %d: got %d counts, catalog has %d shapes",
				ErrMalformedRegion, lineNo, len(counts), len(ids))
		}
		required := make(map[int]int, len(ids))
		for i, field := range counts {
			n, convErr := strconv.Atoi(field)
			if convErr != nil {
				return nil, fmt.Errorf("%w: line %d: count %q: %v", ErrMalformedRegion, lineNo, field, convErr)
			}
			if n > 0 {
				required[ids[i]] = n
			}
		}
		out = append(out, Region{Width: width, Height: height, Required: required})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("packing: reading regions: %w", err)
	}

	return out, nil
}

// CatalogIDs returns the shape ids of the catalog in ascending order — the
// positional order ParseRegions expects.
func (c *Checker) CatalogIDs() []int {
	ids := make([]int, 0, len(c.catalog))
	for id := range c.catalog {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	return ids
}
