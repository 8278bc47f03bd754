package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreprocessDropsZeroAreaPolygon(t *testing.T) {
	degenerate := mustPolygon(t,
		Coordinate{0, 0}, Coordinate{5, 0}, Coordinate{10, 0})
	square := mustPolygon(t,
		Coordinate{0, 0}, Coordinate{4, 0}, Coordinate{4, 4}, Coordinate{0, 4})

	out := PreprocessThreats([]*Threat{degenerate, square}, 0)

	require.Len(t, out, 1)
	assert.Equal(t, square, out[0])
}

func TestPreprocessRemovesContainedThreats(t *testing.T) {
	zone := mustPolygon(t,
		Coordinate{0, 0}, Coordinate{10, 0}, Coordinate{10, 10}, Coordinate{0, 10})
	inner := mustExclusion(t, Coordinate{5, 5}, 2)
	innerZone := mustPolygon(t,
		Coordinate{2, 2}, Coordinate{4, 2}, Coordinate{3, 4})
	outside := mustExclusion(t, Coordinate{20, 20}, 1)
	straddling := mustExclusion(t, Coordinate{9, 5}, 3)

	out := PreprocessThreats([]*Threat{zone, inner, innerZone, outside, straddling}, 0)

	require.Len(t, out, 3)
	assert.Contains(t, out, zone)
	assert.Contains(t, out, outside)
	assert.Contains(t, out, straddling)
}

func TestPreprocessSimplifiesCollinearBoundary(t *testing.T) {
	// Square with a redundant midpoint on the bottom edge.
	zone := mustPolygon(t,
		Coordinate{0, 0}, Coordinate{2, 0}, Coordinate{4, 0},
		Coordinate{4, 4}, Coordinate{0, 4})

	out := PreprocessThreats([]*Threat{zone}, 1e-9)

	require.Len(t, out, 1)
	assert.Len(t, out[0].Boundary, 4)
}

func TestPreprocessKeepsTinyZonesIntact(t *testing.T) {
	triangle := mustPolygon(t,
		Coordinate{0, 0}, Coordinate{1, 0}, Coordinate{0.5, 1})

	out := PreprocessThreats([]*Threat{triangle}, 0.5)

	require.Len(t, out, 1)
	assert.Equal(t, triangle.Boundary, out[0].Boundary)
}
