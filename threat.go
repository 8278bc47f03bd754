package main

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
)

// ThreatKind tags the threat variant. All geometric behavior is dispatched
// by this tag.
type ThreatKind int

const (
	// NoEntryPolygon is a hard no-entry zone bounded by ordered vertices.
	NoEntryPolygon ThreatKind = iota
	// CircularExclusion is a hard no-entry disc.
	CircularExclusion
	// DirectionalDetector is a soft detection field; a leg is detected only
	// when it enters or exits the field near the line of sight to the center.
	DirectionalDetector
)

func (k ThreatKind) String() string {
	switch k {
	case NoEntryPolygon:
		return "no-entry-polygon"
	case CircularExclusion:
		return "circular-exclusion"
	case DirectionalDetector:
		return "directional-detector"
	}
	return "unknown"
}

// shrinkEpsilon is the inward shrink applied to hard no-entry shapes before
// intersection testing, so legs touching the graph's own corner nodes are
// not falsely rejected. Detector fields are never shrunk.
const shrinkEpsilon = 1e-6

// Threat is one obstacle or detection field in the scenario. Instances are
// immutable once constructed.
type Threat struct {
	Kind     ThreatKind
	Boundary []Coordinate // NoEntryPolygon only
	Center   Coordinate   // circle kinds only
	Radius   float64      // circle kinds only

	detectionAngle float64 // detectors only, radians
	ring           orb.Ring
}

// NewNoEntryPolygon builds a polygonal no-entry zone from its ordered
// boundary vertices.
func NewNoEntryPolygon(boundary []Coordinate) (*Threat, error) {
	if len(boundary) < 3 {
		return nil, fmt.Errorf("%w: no-entry polygon needs at least 3 vertices, got %d",
			ErrMalformedScenario, len(boundary))
	}
	return &Threat{
		Kind:     NoEntryPolygon,
		Boundary: boundary,
		ring:     ringOf(boundary),
	}, nil
}

// NewCircularExclusion builds a hard circular no-entry zone.
func NewCircularExclusion(center Coordinate, radius float64) (*Threat, error) {
	if radius <= 0 {
		return nil, fmt.Errorf("%w: circular exclusion radius must be positive, got %g",
			ErrMalformedScenario, radius)
	}
	return &Threat{Kind: CircularExclusion, Center: center, Radius: radius}, nil
}

// NewDirectionalDetector builds a detection field. detectionAngle is the
// folded angular threshold below which a crossing counts as detected.
func NewDirectionalDetector(center Coordinate, radius, detectionAngle float64) (*Threat, error) {
	if radius <= 0 {
		return nil, fmt.Errorf("%w: detector radius must be positive, got %g",
			ErrMalformedScenario, radius)
	}
	return &Threat{
		Kind:           DirectionalDetector,
		Center:         center,
		Radius:         radius,
		detectionAngle: detectionAngle,
	}, nil
}

func ringOf(boundary []Coordinate) orb.Ring {
	ring := make(orb.Ring, 0, len(boundary)+1)
	for _, v := range boundary {
		ring = append(ring, orb.Point{v.X, v.Y})
	}
	ring = append(ring, ring[0]) // close the ring
	return ring
}

// Bound returns the axis-aligned bounding box of the threat geometry.
func (t *Threat) Bound() orb.Bound {
	if t.Kind == NoEntryPolygon {
		return t.ring.Bound()
	}
	return orb.Bound{
		Min: orb.Point{t.Center.X - t.Radius, t.Center.Y - t.Radius},
		Max: orb.Point{t.Center.X + t.Radius, t.Center.Y + t.Radius},
	}
}

// ApproximateBoundary computes an n-gon that out-bounds the threat's circle.
// The returned polygon never under-bounds the true circle, so seeding graph
// nodes from it can never miss an obstruction.
func (t *Threat) ApproximateBoundary(n int) []Coordinate {
	angleStep := 2 * math.Pi / float64(n)
	buffedRadius := t.Radius / math.Cos(angleStep/2)

	boundary := make([]Coordinate, 0, n)
	for i := 0; i < n; i++ {
		boundary = append(boundary, Coordinate{
			X: t.Center.X + buffedRadius*math.Sin(float64(i)*angleStep),
			Y: t.Center.Y + buffedRadius*math.Cos(float64(i)*angleStep),
		})
	}
	return boundary
}

// IsLegalLeg reports whether traversing the straight segment start→end does
// not trigger this threat.
func (t *Threat) IsLegalLeg(start, end Coordinate) bool {
	switch t.Kind {
	case NoEntryPolygon:
		return !SegmentIntersectsShrunkPolygon(start, end, t.Boundary, shrinkEpsilon)
	case CircularExclusion:
		return PointSegmentDistance(t.Center, start, end) >= t.Radius-shrinkEpsilon
	case DirectionalDetector:
		return t.isUndetectedLeg(start, end)
	}
	return true
}

// isUndetectedLeg implements the directional detection rule: clip the leg to
// the full detection circle and compare the travel bearing against the
// bearing from each clip endpoint to the detector center, folded into
// [0, π/2] via quadrant symmetry.
func (t *Threat) isUndetectedLeg(start, end Coordinate) bool {
	entry, exit, ok := ClipSegmentToCircle(start, end, t.Center, t.Radius)
	if !ok {
		return true
	}

	travel := entry.DirectionTo(exit)
	for _, p := range []Coordinate{entry, exit} {
		if foldDirectionDiff(travel-p.DirectionTo(t.Center)) < t.detectionAngle {
			return false
		}
	}
	return true
}

// foldDirectionDiff folds an angular difference into [0, π/2] by exploiting
// quadrant symmetry.
func foldDirectionDiff(diff float64) float64 {
	d := math.Mod(diff, 2*math.Pi)
	if d < 0 {
		d += 2 * math.Pi
	}
	switch {
	case d <= math.Pi/2:
		return d
	case d <= math.Pi:
		return math.Pi - d
	case d <= 3*math.Pi/2:
		return d - math.Pi
	default:
		return 2*math.Pi - d
	}
}

// IsLegalLegFor reports whether the leg is legal against every threat in the
// slice accepted by keep.
func IsLegalLegFor(start, end Coordinate, threats []*Threat, keep func(*Threat) bool) bool {
	for _, t := range threats {
		if keep != nil && !keep(t) {
			continue
		}
		if !t.IsLegalLeg(start, end) {
			return false
		}
	}
	return true
}

func anyThreat(*Threat) bool          { return true }
func detectorOnly(t *Threat) bool     { return t.Kind == DirectionalDetector }
func nonDetectorOnly(t *Threat) bool  { return t.Kind != DirectionalDetector }
func noEntryPolygons(t *Threat) bool  { return t.Kind == NoEntryPolygon }
func circularExclusions(t *Threat) bool { return t.Kind == CircularExclusion }
