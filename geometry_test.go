package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoSegmentsIntersect(t *testing.T) {
	crossing := LineSegment{Coordinate{0, 0}, Coordinate{2, 2}}
	crossed := LineSegment{Coordinate{0, 2}, Coordinate{2, 0}}
	assert.True(t, DoSegmentsIntersect(crossing, crossed))

	parallel := LineSegment{Coordinate{0, 1}, Coordinate{2, 3}}
	assert.False(t, DoSegmentsIntersect(crossing, parallel))
}

func TestDoSegmentsIntersectSharedEndpoint(t *testing.T) {
	// Legs touching at a shared endpoint are not intersections; the graph
	// connects corner nodes to each other all the time.
	a := LineSegment{Coordinate{0, 0}, Coordinate{2, 2}}
	b := LineSegment{Coordinate{2, 2}, Coordinate{4, 0}}
	assert.False(t, DoSegmentsIntersect(a, b))
	assert.False(t, DoSegmentsIntersect(a, a))
}

func TestIsPointInPolygon(t *testing.T) {
	square := []Coordinate{{0, 0}, {4, 0}, {4, 4}, {0, 4}}

	assert.True(t, IsPointInPolygon(Coordinate{2, 2}, square))
	assert.False(t, IsPointInPolygon(Coordinate{5, 2}, square))
	assert.False(t, IsPointInPolygon(Coordinate{-1, -1}, square))
}

func TestPointSegmentDistance(t *testing.T) {
	a := Coordinate{0, 0}
	b := Coordinate{10, 0}

	assert.InDelta(t, 3, PointSegmentDistance(Coordinate{5, 3}, a, b), 1e-12)
	assert.InDelta(t, 0, PointSegmentDistance(Coordinate{5, 0}, a, b), 1e-12)
	// Beyond the segment end the distance is to the endpoint, not the line.
	assert.InDelta(t, 5, PointSegmentDistance(Coordinate{13, 4}, a, b), 1e-12)
}

func TestClipSegmentToCircle(t *testing.T) {
	center := Coordinate{0, 0}

	entry, exit, ok := ClipSegmentToCircle(Coordinate{-5, 0}, Coordinate{5, 0}, center, 2)
	require.True(t, ok)
	assert.InDelta(t, -2, entry.X, 1e-9)
	assert.InDelta(t, 2, exit.X, 1e-9)

	// Fully inside: the clip is the segment itself.
	entry, exit, ok = ClipSegmentToCircle(Coordinate{-0.5, 0}, Coordinate{0.5, 0}, center, 2)
	require.True(t, ok)
	assert.Equal(t, Coordinate{-0.5, 0}, entry)
	assert.Equal(t, Coordinate{0.5, 0}, exit)

	// Miss entirely.
	_, _, ok = ClipSegmentToCircle(Coordinate{-5, 3}, Coordinate{5, 3}, center, 2)
	assert.False(t, ok)

	// Degenerate zero-length segment.
	_, _, ok = ClipSegmentToCircle(Coordinate{1, 0}, Coordinate{1, 0}, center, 2)
	assert.False(t, ok)
}
