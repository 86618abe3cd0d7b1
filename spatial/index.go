// SPDX-License-Identifier: MIT
//
// File: index.go
// Role: R-tree backed nearest-city and bounding-box lookups.
// Determinism: results are re-sorted by exact distance, then name.
// Concurrency: read-only after NewIndex.
package spatial

import (
	"math"
	"sort"

	"github.com/dhconnelly/rtreego"
	"github.com/katalvlaran/citymap/core"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// R-tree shape: two dimensions, 25..50 entries per node.
const (
	dimensions = 2
	minEntries = 25
	maxEntries = 50
)

// pointTolerance is the half-size of the box each city occupies in the tree.
const pointTolerance = 1e-6

// Match is a city returned by a proximity query with its distance to the
// query point.
type Match struct {
	City     core.City
	Distance float64
}

// cityEntry wraps a city for R-tree storage.
type cityEntry struct {
	city core.City
	box  rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (e *cityEntry) Bounds() rtreego.Rect { return e.box }

// Index is an immutable spatial snapshot of a map's cities.
type Index struct {
	tree *rtreego.Rtree
}

// NewIndex builds an Index over every city of g. A nil graph yields an empty
// index.
func NewIndex(g *core.Graph) *Index {
	tree := rtreego.NewTree(dimensions, minEntries, maxEntries)
	if g != nil {
		for _, c := range g.Cities() {
			p := rtreego.Point{float64(c.X), float64(c.Y)}
			tree.Insert(&cityEntry{city: c, box: p.ToRect(pointTolerance)})
		}
	}

	return &Index{tree: tree}
}

// Size returns the number of indexed cities.
func (ix *Index) Size() int { return ix.tree.Size() }

// Nearest returns the city closest to (x, y). ok is false on an empty index.
func (ix *Index) Nearest(x, y float64) (Match, bool) {
	matches := ix.NearestN(x, y, 1)
	if len(matches) == 0 {
		return Match{}, false
	}

	return matches[0], true
}

// NearestN returns up to k cities ordered by distance to (x, y), closest
// first. k <= 0 or an empty index yields an empty slice.
func (ix *Index) NearestN(x, y float64, k int) []Match {
	if k <= 0 || ix.tree.Size() == 0 || !finite(x, y) {
		return []Match{}
	}
	if k > ix.tree.Size() {
		k = ix.tree.Size()
	}

	q := orb.Point{x, y}
	found := ix.tree.NearestNeighbors(k, rtreego.Point{x, y})
	out := make([]Match, 0, len(found))
	for _, s := range found {
		e, ok := s.(*cityEntry)
		if !ok || e == nil {
			continue
		}
		out = append(out, Match{City: e.city, Distance: planar.Distance(q, e.city.Point())})
	}
	sortMatches(out)

	return out
}

// Within returns the cities whose positions lie inside b (edges included),
// sorted by name. Distance is measured from the centre of b.
func (ix *Index) Within(b orb.Bound) []Match {
	w, h := b.Max[0]-b.Min[0], b.Max[1]-b.Min[1]
	if !finite(b.Min[0], b.Min[1], b.Max[0], b.Max[1]) || w < 0 || h < 0 || ix.tree.Size() == 0 {
		return []Match{}
	}
	// rtreego rejects zero-length sides; pad degenerate boxes.
	rect, err := rtreego.NewRect(
		rtreego.Point{b.Min[0] - pointTolerance, b.Min[1] - pointTolerance},
		[]float64{w + 2*pointTolerance, h + 2*pointTolerance},
	)
	if err != nil {
		return []Match{}
	}

	centre := b.Center()
	out := make([]Match, 0)
	for _, s := range ix.tree.SearchIntersect(rect) {
		e, ok := s.(*cityEntry)
		if !ok || !b.Contains(e.city.Point()) {
			continue
		}
		out = append(out, Match{City: e.city, Distance: planar.Distance(centre, e.city.Point())})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].City.Name < out[j].City.Name })

	return out
}

// finite reports whether every v is neither NaN nor infinite.
func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}

// sortMatches orders by distance, then by name.
func sortMatches(ms []Match) {
	sort.Slice(ms, func(i, j int) bool {
		if ms[i].Distance != ms[j].Distance {
			return ms[i].Distance < ms[j].Distance
		}

		return ms[i].City.Name < ms[j].City.Name
	})
}
