package geodata

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// denseSquare builds a square ring with extra vertices along each edge.
func denseSquare(size float64, pointsPerEdge int) orb.Polygon {
	var ring orb.Ring
	step := size / float64(pointsPerEdge)
	for i := 0; i < pointsPerEdge; i++ {
		ring = append(ring, orb.Point{float64(i) * step, 0})
	}
	for i := 0; i < pointsPerEdge; i++ {
		ring = append(ring, orb.Point{size, float64(i) * step})
	}
	for i := pointsPerEdge; i > 0; i-- {
		ring = append(ring, orb.Point{float64(i) * step, size})
	}
	for i := pointsPerEdge; i > 0; i-- {
		ring = append(ring, orb.Point{0, float64(i) * step})
	}
	ring = append(ring, ring[0])

	return orb.Polygon{ring}
}

func TestSubdivide_SmallGeometryUnchanged(t *testing.T) {
	polygon := orb.Polygon{orb.Ring{{0, 0}, {1, 0}, {1, 1}, {0, 1}, {0, 0}}}

	out := Subdivide(orb.MultiPolygon{polygon}, 256)
	require.Len(t, out, 1)
	assert.Equal(t, polygon, out[0])
}

func TestSubdivide_SplitsDenseGeometry(t *testing.T) {
	polygon := denseSquare(4, 50)
	require.Greater(t, pointCount(polygon), 64)

	out := Subdivide(orb.MultiPolygon{polygon}, 64)
	assert.Greater(t, len(out), 1)
}

func TestSubdivide_PreservesCoverage(t *testing.T) {
	polygon := denseSquare(4, 50)
	out := Subdivide(orb.MultiPolygon{polygon}, 64)

	containedBy := func(pieces orb.MultiPolygon, point orb.Point) bool {
		for _, piece := range pieces {
			if planar.PolygonContains(piece, point) {
				return true
			}
		}
		return false
	}

	// Interior points stay covered, exterior points stay uncovered.
	for _, point := range []orb.Point{{0.5, 0.5}, {2.1, 2.1}, {3.5, 0.5}, {0.5, 3.5}} {
		assert.True(t, containedBy(out, point), "interior point %v lost", point)
	}
	for _, point := range []orb.Point{{-0.5, 2}, {4.5, 2}, {2, -0.5}, {2, 4.5}} {
		assert.False(t, containedBy(out, point), "exterior point %v gained", point)
	}
}

func TestSubdivide_PreservesTotalArea(t *testing.T) {
	polygon := denseSquare(4, 50)
	out := Subdivide(orb.MultiPolygon{polygon}, 64)

	var total float64
	for _, piece := range out {
		total += planar.Area(piece)
	}

	assert.InDelta(t, planar.Area(polygon), total, 1e-6)
	assert.True(t, math.Abs(total-16) < 1e-6)
}

func TestSubdivide_EmptyInput(t *testing.T) {
	assert.Empty(t, Subdivide(nil, 64))
}
