package main

import (
	"fmt"
	"math"
)

// Coordinate is a point on the planning plane.
type Coordinate struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Distance calculates the Euclidean distance between two coordinates
func (c Coordinate) Distance(other Coordinate) float64 {
	dx := c.X - other.X
	dy := c.Y - other.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// DirectionTo returns the bearing from c to other in radians, measured
// counter-clockwise from the positive x-axis.
func (c Coordinate) DirectionTo(other Coordinate) float64 {
	return math.Atan2(other.Y-c.Y, other.X-c.X)
}

// Midpoint returns the point halfway between c and other.
func (c Coordinate) Midpoint(other Coordinate) Coordinate {
	return Coordinate{
		X: (c.X + other.X) / 2,
		Y: (c.Y + other.Y) / 2,
	}
}

// String returns the canonical textual form of the coordinate. The form
// round-trips through ParseCoordinate.
func (c Coordinate) String() string {
	return fmt.Sprintf("(%g,%g)", c.X, c.Y)
}

// ParseCoordinate parses the canonical form produced by String.
func ParseCoordinate(s string) (Coordinate, error) {
	var c Coordinate
	if _, err := fmt.Sscanf(s, "(%g,%g)", &c.X, &c.Y); err != nil {
		return Coordinate{}, fmt.Errorf("failed to parse coordinate %q: %w", s, err)
	}
	return c, nil
}
