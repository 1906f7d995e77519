// Package spatial provides an in-memory spatial index over jurisdiction
// boundary polygons, supporting buffered point-coverage queries.
package spatial

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// defaultCellSizeDeg is the grid cell size in degrees. Jurisdiction pieces
// are bucketed by bounding box; a quarter degree keeps cell occupancy low
// for county-scale geometry.
const defaultCellSizeDeg = 0.25

type gridKey struct {
	lonCell int
	latCell int
}

// entry is one indexed geometry piece. Subdivided pieces of the same
// jurisdiction share a ref so a query never reports a jurisdiction twice.
type entry struct {
	ref   int
	piece orb.Polygon
	bound orb.Bound
}

// Index implements a grid-based spatial index over polygon pieces.
// Lookups resolve the cell containing the query point and test only the
// pieces whose buffered bounding box overlaps that cell.
type Index struct {
	buffer      float64 // coverage tolerance in degrees
	cellSizeDeg float64
	grid        map[gridKey][]int // maps grid cell to entry indices
	entries     []entry
}

// NewIndex creates an index with the given coverage buffer in degrees.
// Points within the buffer distance of a boundary count as covered, which
// absorbs floating-point and simplification error in source geometry.
func NewIndex(bufferDeg float64) *Index {
	return &Index{
		buffer:      bufferDeg,
		cellSizeDeg: defaultCellSizeDeg,
		grid:        make(map[gridKey][]int),
	}
}

// Add indexes every polygon of the multi-polygon under the caller's ref.
func (x *Index) Add(ref int, geometry orb.MultiPolygon) {
	for _, piece := range geometry {
		if len(piece) == 0 || len(piece[0]) == 0 {
			continue
		}

		entryIdx := len(x.entries)
		bound := piece.Bound()
		x.entries = append(x.entries, entry{ref: ref, piece: piece, bound: bound})

		// Register the entry in every cell its buffered bound overlaps.
		padded := bound.Pad(x.buffer)
		minKey := x.keyFor(orb.Point{padded.Min[0], padded.Min[1]})
		maxKey := x.keyFor(orb.Point{padded.Max[0], padded.Max[1]})
		for lonCell := minKey.lonCell; lonCell <= maxKey.lonCell; lonCell++ {
			for latCell := minKey.latCell; latCell <= maxKey.latCell; latCell++ {
				key := gridKey{lonCell: lonCell, latCell: latCell}
				x.grid[key] = append(x.grid[key], entryIdx)
			}
		}
	}
}

// Covering returns the refs of all geometries whose buffered area contains
// the point, in insertion order. An empty result is the out-of-area case.
func (x *Index) Covering(point orb.Point) []int {
	matched := make(map[int]bool)
	var refs []int

	for _, entryIdx := range x.grid[x.keyFor(point)] {
		e := x.entries[entryIdx]
		if matched[e.ref] {
			continue
		}
		if !e.bound.Pad(x.buffer).Contains(point) {
			continue
		}

		if planar.PolygonContains(e.piece, point) || x.nearBoundary(e.piece, point) {
			matched[e.ref] = true
			refs = append(refs, e.ref)
		}
	}

	return refs
}

// Size returns the number of indexed geometry pieces.
func (x *Index) Size() int {
	return len(x.entries)
}

func (x *Index) keyFor(point orb.Point) gridKey {
	return gridKey{
		lonCell: int(math.Floor(point[0] / x.cellSizeDeg)),
		latCell: int(math.Floor(point[1] / x.cellSizeDeg)),
	}
}

// nearBoundary reports whether the point lies within the buffer distance of
// any ring segment of the polygon.
func (x *Index) nearBoundary(polygon orb.Polygon, point orb.Point) bool {
	if x.buffer <= 0 {
		return false
	}

	bufferSq := x.buffer * x.buffer
	for _, ring := range polygon {
		for i := 1; i < len(ring); i++ {
			if segmentDistanceSq(point, ring[i-1], ring[i]) <= bufferSq {
				return true
			}
		}
	}

	return false
}

// segmentDistanceSq calculates the squared Euclidean distance in degrees
// from a point to the segment (a, b).
func segmentDistanceSq(point, a, b orb.Point) float64 {
	dx := b[0] - a[0]
	dy := b[1] - a[1]

	lengthSq := dx*dx + dy*dy
	if lengthSq == 0 {
		return squaredDistance(point, a)
	}

	// Project the point onto the segment, clamped to its endpoints.
	t := ((point[0]-a[0])*dx + (point[1]-a[1])*dy) / lengthSq
	t = math.Max(0, math.Min(1, t))

	closest := orb.Point{a[0] + t*dx, a[1] + t*dy}

	return squaredDistance(point, closest)
}

func squaredDistance(p, q orb.Point) float64 {
	dx := q[0] - p[0]
	dy := q[1] - p[1]

	return dx*dx + dy*dy
}
