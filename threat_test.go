package main

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustPolygon(t *testing.T, boundary ...Coordinate) *Threat {
	t.Helper()
	threat, err := NewNoEntryPolygon(boundary)
	require.NoError(t, err)
	return threat
}

func mustExclusion(t *testing.T, center Coordinate, radius float64) *Threat {
	t.Helper()
	threat, err := NewCircularExclusion(center, radius)
	require.NoError(t, err)
	return threat
}

func mustDetector(t *testing.T, center Coordinate, radius float64) *Threat {
	t.Helper()
	threat, err := NewDirectionalDetector(center, radius, DefaultConfig().DetectionAngle())
	require.NoError(t, err)
	return threat
}

func TestNoEntryPolygonLegality(t *testing.T) {
	square := mustPolygon(t,
		Coordinate{0, 0}, Coordinate{4, 0}, Coordinate{4, 4}, Coordinate{0, 4})

	// Crossing straight through is illegal.
	assert.False(t, square.IsLegalLeg(Coordinate{-1, 2}, Coordinate{5, 2}))
	// Passing by outside is legal.
	assert.True(t, square.IsLegalLeg(Coordinate{-1, 5}, Coordinate{5, 5}))
	// Sliding along an edge between the polygon's own corners is legal:
	// the shape is shrunk by ε before testing.
	assert.True(t, square.IsLegalLeg(Coordinate{0, 0}, Coordinate{4, 0}))
	// A corner-to-corner diagonal through the interior is not.
	assert.False(t, square.IsLegalLeg(Coordinate{0, 0}, Coordinate{4, 4}))
	// A leg entirely inside is not.
	assert.False(t, square.IsLegalLeg(Coordinate{1, 1}, Coordinate{3, 3}))
}

func TestCircularExclusionLegality(t *testing.T) {
	circle := mustExclusion(t, Coordinate{0, 0}, 2)

	assert.False(t, circle.IsLegalLeg(Coordinate{-5, 0}, Coordinate{5, 0}))
	assert.True(t, circle.IsLegalLeg(Coordinate{-5, 3}, Coordinate{5, 3}))
	// A tangent chord touches the boundary only; the ε shrink keeps the
	// n-gon approximation's own chords legal.
	assert.True(t, circle.IsLegalLeg(Coordinate{-5, 2}, Coordinate{5, 2}))
}

func TestApproximateBoundaryOutBoundsCircle(t *testing.T) {
	circle := mustExclusion(t, Coordinate{3, -1}, 2)

	for _, n := range []int{20, 30} {
		boundary := circle.ApproximateBoundary(n)
		require.Len(t, boundary, n)

		buffed := 2 / math.Cos(math.Pi/float64(n))
		for i, v := range boundary {
			assert.InDelta(t, buffed, v.Distance(circle.Center), 1e-9)

			// Every chord of the approximation stays on or outside the
			// true circle: the polygon over-bounds, never under-bounds.
			next := boundary[(i+1)%n]
			mid := v.Midpoint(next)
			assert.GreaterOrEqual(t, mid.Distance(circle.Center), 2-1e-9)
		}
	}
}

func TestDetectorFoldRule(t *testing.T) {
	detector := mustDetector(t, Coordinate{0, 0}, 2)

	// Heading straight at the center: entry and exit bearings line up with
	// the line of sight, so the leg is detected.
	assert.False(t, detector.IsLegalLeg(Coordinate{-5, 0}, Coordinate{5, 0}))
	assert.False(t, detector.IsLegalLeg(Coordinate{5, 0}, Coordinate{-5, 0}))

	// Skimming the field far from the line of sight stays undetected
	// (folded bearing difference ≈ 72° at y = 1.9).
	assert.True(t, detector.IsLegalLeg(Coordinate{-5, 1.9}, Coordinate{5, 1.9}))

	// Never entering the field is always legal.
	assert.True(t, detector.IsLegalLeg(Coordinate{-5, 3}, Coordinate{5, 3}))
	assert.True(t, detector.IsLegalLeg(Coordinate{3, 0}, Coordinate{5, 0}))
}

func TestFoldDirectionDiff(t *testing.T) {
	deg := func(d float64) float64 { return d * math.Pi / 180 }

	assert.InDelta(t, deg(30), foldDirectionDiff(deg(30)), 1e-12)
	assert.InDelta(t, deg(60), foldDirectionDiff(deg(120)), 1e-12)
	assert.InDelta(t, deg(30), foldDirectionDiff(deg(210)), 1e-12)
	assert.InDelta(t, deg(60), foldDirectionDiff(deg(300)), 1e-12)
	// Negative differences fold the same way.
	assert.InDelta(t, deg(30), foldDirectionDiff(deg(-30)), 1e-12)
}

func TestThreatConstructorsRejectBadGeometry(t *testing.T) {
	_, err := NewNoEntryPolygon([]Coordinate{{0, 0}, {1, 1}})
	assert.ErrorIs(t, err, ErrMalformedScenario)

	_, err = NewCircularExclusion(Coordinate{0, 0}, 0)
	assert.ErrorIs(t, err, ErrMalformedScenario)

	_, err = NewDirectionalDetector(Coordinate{0, 0}, -1, math.Pi/4)
	assert.ErrorIs(t, err, ErrMalformedScenario)
}
