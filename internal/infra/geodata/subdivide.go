package geodata

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/clip"
)

// maxSubdivideDepth bounds the quadrant recursion so degenerate geometry
// cannot loop forever.
const maxSubdivideDepth = 8

// Subdivide splits complex polygons into smaller pieces so the spatial
// index stays efficient. Pieces are produced by recursive quadrant clipping
// and union back to the original coverage exactly.
func Subdivide(geometry orb.MultiPolygon, maxPoints int) orb.MultiPolygon {
	var out orb.MultiPolygon
	for _, polygon := range geometry {
		out = append(out, subdividePolygon(polygon, maxPoints, 0)...)
	}

	return out
}

func subdividePolygon(polygon orb.Polygon, maxPoints, depth int) orb.MultiPolygon {
	if pointCount(polygon) <= maxPoints || depth >= maxSubdivideDepth {
		return orb.MultiPolygon{polygon}
	}

	var out orb.MultiPolygon
	for _, quadrant := range quadrants(polygon.Bound()) {
		clipped := clip.Geometry(quadrant, polygon.Clone())
		if clipped == nil {
			continue
		}

		switch g := clipped.(type) {
		case orb.Polygon:
			out = append(out, subdividePolygon(g, maxPoints, depth+1)...)
		case orb.MultiPolygon:
			for _, piece := range g {
				out = append(out, subdividePolygon(piece, maxPoints, depth+1)...)
			}
		}
	}

	if len(out) == 0 {
		// Clipping collapsed the geometry; keep the original piece rather
		// than losing coverage.
		return orb.MultiPolygon{polygon}
	}

	return out
}

func quadrants(bound orb.Bound) [4]orb.Bound {
	midLon := (bound.Min[0] + bound.Max[0]) / 2
	midLat := (bound.Min[1] + bound.Max[1]) / 2

	return [4]orb.Bound{
		{Min: bound.Min, Max: orb.Point{midLon, midLat}},
		{Min: orb.Point{midLon, bound.Min[1]}, Max: orb.Point{bound.Max[0], midLat}},
		{Min: orb.Point{bound.Min[0], midLat}, Max: orb.Point{midLon, bound.Max[1]}},
		{Min: orb.Point{midLon, midLat}, Max: bound.Max},
	}
}

func pointCount(polygon orb.Polygon) int {
	count := 0
	for _, ring := range polygon {
		count += len(ring)
	}

	return count
}
