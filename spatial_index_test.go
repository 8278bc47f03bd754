package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThreatIndexCandidates(t *testing.T) {
	near := mustExclusion(t, Coordinate{5, 0}, 2)
	far := mustExclusion(t, Coordinate{5, 100}, 2)
	zone := mustPolygon(t,
		Coordinate{2, -1}, Coordinate{3, -1}, Coordinate{3, 1}, Coordinate{2, 1})

	idx := NewThreatIndex([]*Threat{near, far, zone})

	got := idx.Candidates(Coordinate{0, 0}, Coordinate{10, 0})
	require.Len(t, got, 2)
	assert.Contains(t, got, near)
	assert.Contains(t, got, zone)

	got = idx.Candidates(Coordinate{0, 99}, Coordinate{10, 101})
	require.Len(t, got, 1)
	assert.Contains(t, got, far)
}

func TestThreatIndexEmpty(t *testing.T) {
	idx := NewThreatIndex(nil)
	assert.Empty(t, idx.Candidates(Coordinate{0, 0}, Coordinate{1, 1}))
}

func TestThreatIndexDegenerateLeg(t *testing.T) {
	near := mustExclusion(t, Coordinate{0, 0}, 2)
	idx := NewThreatIndex([]*Threat{near})

	// A vertical leg has a zero-width bounding box; the index must still
	// return the overlapping threat.
	got := idx.Candidates(Coordinate{0, -5}, Coordinate{0, 5})
	require.Len(t, got, 1)
	assert.Equal(t, near, got[0])
}

func TestPathLengthAndDetectedDistance(t *testing.T) {
	path := []Coordinate{{0, 0}, {3, 4}, {3, 10}}
	assert.InDelta(t, 11.0, PathLength(path), 1e-12)
	assert.Zero(t, PathLength(nil))

	detector := mustDetector(t, Coordinate{5, 0}, 2)
	direct := []Coordinate{{0, 0}, {10, 0}}
	assert.InDelta(t, 10.0, DetectedDistance(direct, []*Threat{detector}), 1e-9)
	assert.Zero(t, DetectedDistance(direct, nil))
}
