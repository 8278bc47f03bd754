package main

import (
	"log"
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// PreprocessThreats prunes redundant threats before the graph is built:
// zero-area polygons (inert once shrunk by ε) and threats whose geometry is
// fully contained inside a no-entry polygon, which can never change the
// outcome but inflate the O(V²) pair tests. When epsilon is positive the
// remaining no-entry boundaries are simplified with Douglas-Peucker.
func PreprocessThreats(threats []*Threat, epsilon float64) []*Threat {
	filtered := make([]*Threat, 0, len(threats))
	for _, t := range threats {
		if t.Kind == NoEntryPolygon && math.Abs(planar.Area(t.ring)) < 1e-12 {
			log.Printf("preprocess: dropping zero-area no-entry polygon")
			continue
		}
		filtered = append(filtered, t)
	}

	filtered = removeContainedThreats(filtered)

	if epsilon > 0 {
		filtered = simplifyNoEntryZones(filtered, epsilon)
	}
	return filtered
}

// removeContainedThreats removes threats fully contained within a no-entry
// polygon.
func removeContainedThreats(threats []*Threat) []*Threat {
	if len(threats) <= 1 {
		return threats
	}

	contained := make([]bool, len(threats))
	for i, t := range threats {
		for j, zone := range threats {
			if i == j || contained[j] || zone.Kind != NoEntryPolygon {
				continue
			}
			if isThreatContainedIn(t, zone) {
				contained[i] = true
				break
			}
		}
	}

	result := make([]*Threat, 0, len(threats))
	removed := 0
	for i, t := range threats {
		if contained[i] {
			removed++
			continue
		}
		result = append(result, t)
	}
	if removed > 0 {
		log.Printf("preprocess: removed %d threats contained in no-entry zones", removed)
	}
	return result
}

// isThreatContainedIn checks if threat t lies fully inside the no-entry
// polygon zone.
func isThreatContainedIn(t *Threat, zone *Threat) bool {
	// Quick bounding box check first
	if !boundContains(zone.Bound(), t.Bound()) {
		return false
	}

	switch t.Kind {
	case NoEntryPolygon:
		for _, v := range t.Boundary {
			if !planar.RingContains(zone.ring, orb.Point{v.X, v.Y}) {
				return false
			}
		}
		return true
	default:
		// A circle is contained when its center is inside and no boundary
		// edge comes closer than the radius.
		if !planar.RingContains(zone.ring, orb.Point{t.Center.X, t.Center.Y}) {
			return false
		}
		return polygonBoundaryDistance(t.Center, zone.Boundary) >= t.Radius
	}
}

func boundContains(outer, inner orb.Bound) bool {
	return inner.Min[0] >= outer.Min[0] && inner.Max[0] <= outer.Max[0] &&
		inner.Min[1] >= outer.Min[1] && inner.Max[1] <= outer.Max[1]
}

// simplifyNoEntryZones reduces polygon complexity using Douglas-Peucker,
// keeping the original boundary whenever simplification would degenerate it.
func simplifyNoEntryZones(threats []*Threat, epsilon float64) []*Threat {
	result := make([]*Threat, 0, len(threats))
	for _, t := range threats {
		if t.Kind != NoEntryPolygon || len(t.Boundary) <= 3 {
			result = append(result, t)
			continue
		}

		// Close the ring so the first/last legs are eligible, then reopen.
		closed := append(append([]Coordinate{}, t.Boundary...), t.Boundary[0])
		simplified := douglasPeucker(closed, epsilon)
		simplified = simplified[:len(simplified)-1]
		if len(simplified) < 3 {
			result = append(result, t)
			continue
		}

		reduced, err := NewNoEntryPolygon(simplified)
		if err != nil {
			result = append(result, t)
			continue
		}
		result = append(result, reduced)
	}
	return result
}

// douglasPeucker implements the Douglas-Peucker line simplification algorithm
func douglasPeucker(points []Coordinate, epsilon float64) []Coordinate {
	if len(points) <= 2 {
		return points
	}

	// Find the point with maximum distance from line between first and last
	dmax := 0.0
	index := 0
	end := len(points) - 1

	for i := 1; i < end; i++ {
		d := PointSegmentDistance(points[i], points[0], points[end])
		if d > dmax {
			index = i
			dmax = d
		}
	}

	// If max distance is greater than epsilon, recursively simplify
	if dmax > epsilon {
		left := douglasPeucker(points[0:index+1], epsilon)
		right := douglasPeucker(points[index:], epsilon)

		// Combine results (removing duplicate point at index)
		result := make([]Coordinate, 0, len(left)+len(right)-1)
		result = append(result, left[:len(left)-1]...)
		result = append(result, right...)
		return result
	}

	// All points in between can be discarded
	return []Coordinate{points[0], points[end]}
}
