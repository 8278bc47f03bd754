package main

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoordinateDistance(t *testing.T) {
	a := Coordinate{X: 0, Y: 0}
	b := Coordinate{X: 3, Y: 4}

	assert.Equal(t, 5.0, a.Distance(b))
	assert.Equal(t, 5.0, b.Distance(a))
	assert.Equal(t, 0.0, a.Distance(a))
}

func TestCoordinateDirectionTo(t *testing.T) {
	origin := Coordinate{X: 0, Y: 0}

	assert.InDelta(t, 0, origin.DirectionTo(Coordinate{X: 1, Y: 0}), 1e-12)
	assert.InDelta(t, math.Pi/2, origin.DirectionTo(Coordinate{X: 0, Y: 1}), 1e-12)
	assert.InDelta(t, math.Pi, origin.DirectionTo(Coordinate{X: -1, Y: 0}), 1e-12)
	assert.InDelta(t, -math.Pi/2, origin.DirectionTo(Coordinate{X: 0, Y: -1}), 1e-12)
}

func TestCoordinateStringRoundTrip(t *testing.T) {
	cases := []Coordinate{
		{X: 0, Y: 0},
		{X: 1.5, Y: -2.25},
		{X: -123.456, Y: 789},
		{X: 0.1, Y: 0.0000001},
	}

	for _, c := range cases {
		parsed, err := ParseCoordinate(c.String())
		require.NoError(t, err)
		assert.InDelta(t, c.X, parsed.X, 1e-9)
		assert.InDelta(t, c.Y, parsed.Y, 1e-9)
	}
}

func TestParseCoordinateRejectsGarbage(t *testing.T) {
	_, err := ParseCoordinate("not a coordinate")
	assert.Error(t, err)
}
