package main

import "math"

// LineSegment represents a line segment between two coordinates
type LineSegment struct {
	P1, P2 Coordinate
}

// DoSegmentsIntersect checks if two line segments intersect.
// Segments that only share an endpoint are not considered intersecting,
// which lets legs touch the corner nodes the graph itself was seeded with.
func DoSegmentsIntersect(seg1, seg2 LineSegment) bool {
	p1, p2 := seg1.P1, seg1.P2
	p3, p4 := seg2.P1, seg2.P2

	// Check if the segments are the same or share endpoints
	if (p1 == p3 && p2 == p4) || (p1 == p4 && p2 == p3) {
		return false
	}
	if p1 == p3 || p1 == p4 || p2 == p3 || p2 == p4 {
		return false
	}

	d1 := direction(p3, p4, p1)
	d2 := direction(p3, p4, p2)
	d3 := direction(p1, p2, p3)
	d4 := direction(p1, p2, p4)

	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}

	// Check for collinear cases
	if d1 == 0 && onSegment(p3, p4, p1) {
		return true
	}
	if d2 == 0 && onSegment(p3, p4, p2) {
		return true
	}
	if d3 == 0 && onSegment(p1, p2, p3) {
		return true
	}
	if d4 == 0 && onSegment(p1, p2, p4) {
		return true
	}

	return false
}

// direction calculates the cross product to determine orientation
func direction(p1, p2, p3 Coordinate) float64 {
	return (p3.X-p1.X)*(p2.Y-p1.Y) - (p2.X-p1.X)*(p3.Y-p1.Y)
}

// onSegment checks if point q lies on segment pr
func onSegment(p, r, q Coordinate) bool {
	return q.X <= math.Max(p.X, r.X) && q.X >= math.Min(p.X, r.X) &&
		q.Y <= math.Max(p.Y, r.Y) && q.Y >= math.Min(p.Y, r.Y)
}

// IsPointInPolygon checks if a point is inside a polygon using ray casting
func IsPointInPolygon(point Coordinate, vertices []Coordinate) bool {
	n := len(vertices)
	if n < 3 {
		return false
	}

	count := 0
	for i := 0; i < n; i++ {
		v1 := vertices[i]
		v2 := vertices[(i+1)%n]

		// Check if the ray from point to the right intersects the edge
		if (v1.Y > point.Y) != (v2.Y > point.Y) {
			slope := (point.X-v1.X)*(v2.Y-v1.Y) - (v2.X-v1.X)*(point.Y-v1.Y)
			if v2.Y > v1.Y {
				if slope > 0 {
					count++
				}
			} else {
				if slope < 0 {
					count++
				}
			}
		}
	}

	return count%2 == 1
}

// PointSegmentDistance returns the distance from p to the segment ab.
func PointSegmentDistance(p, a, b Coordinate) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y

	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return p.Distance(a)
	}

	// Project p onto ab, clamped to the segment
	t := ((p.X-a.X)*dx + (p.Y-a.Y)*dy) / lenSq
	t = math.Max(0, math.Min(1, t))

	closest := Coordinate{X: a.X + t*dx, Y: a.Y + t*dy}
	return p.Distance(closest)
}

// polygonBoundaryDistance returns the minimum distance from p to any edge
// of the polygon boundary.
func polygonBoundaryDistance(p Coordinate, vertices []Coordinate) float64 {
	minDist := math.MaxFloat64
	n := len(vertices)
	for i := 0; i < n; i++ {
		d := PointSegmentDistance(p, vertices[i], vertices[(i+1)%n])
		if d < minDist {
			minDist = d
		}
	}
	return minDist
}

// pointInsideShrunkPolygon reports whether p lies inside the polygon after
// shrinking the boundary inward by eps. Points on or within eps of the
// boundary count as outside.
func pointInsideShrunkPolygon(p Coordinate, vertices []Coordinate, eps float64) bool {
	if !IsPointInPolygon(p, vertices) {
		return false
	}
	return polygonBoundaryDistance(p, vertices) > eps
}

// SegmentIntersectsShrunkPolygon checks if the segment ab enters the interior
// of the polygon shrunk by eps. Boundary slides and corner touches stay legal.
func SegmentIntersectsShrunkPolygon(a, b Coordinate, vertices []Coordinate, eps float64) bool {
	seg := LineSegment{P1: a, P2: b}
	n := len(vertices)
	for i := 0; i < n; i++ {
		edge := LineSegment{
			P1: vertices[i],
			P2: vertices[(i+1)%n],
		}
		if DoSegmentsIntersect(seg, edge) {
			return true
		}
	}

	// Endpoint or midpoint strictly inside covers segments that never cross
	// the boundary (e.g. corner-to-corner diagonals through the interior).
	if pointInsideShrunkPolygon(a, vertices, eps) || pointInsideShrunkPolygon(b, vertices, eps) {
		return true
	}
	return pointInsideShrunkPolygon(a.Midpoint(b), vertices, eps)
}

// ClipSegmentToCircle returns the sub-segment of ab inside the circle, in
// travel order from a to b. ok is false when the overlap is empty or has
// zero length.
func ClipSegmentToCircle(a, b, center Coordinate, radius float64) (entry, exit Coordinate, ok bool) {
	dx := b.X - a.X
	dy := b.Y - a.Y
	fx := a.X - center.X
	fy := a.Y - center.Y

	qa := dx*dx + dy*dy
	if qa == 0 {
		return Coordinate{}, Coordinate{}, false
	}
	qb := 2 * (fx*dx + fy*dy)
	qc := fx*fx + fy*fy - radius*radius

	disc := qb*qb - 4*qa*qc
	if disc <= 0 {
		// Miss or tangent touch: no sub-segment with positive length
		return Coordinate{}, Coordinate{}, false
	}

	sqrtDisc := math.Sqrt(disc)
	t0 := (-qb - sqrtDisc) / (2 * qa)
	t1 := (-qb + sqrtDisc) / (2 * qa)

	lo := math.Max(t0, 0)
	hi := math.Min(t1, 1)
	if hi <= lo {
		return Coordinate{}, Coordinate{}, false
	}

	entry = Coordinate{X: a.X + lo*dx, Y: a.Y + lo*dy}
	exit = Coordinate{X: a.X + hi*dx, Y: a.Y + hi*dy}
	return entry, exit, true
}
