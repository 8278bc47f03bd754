package main

import (
	"math"

	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb"
)

// ThreatEntry wraps a threat for R-tree storage
type ThreatEntry struct {
	Threat *Threat
	BBox   rtreego.Rect
}

// Bounds implements rtreego.Spatial interface
func (e *ThreatEntry) Bounds() rtreego.Rect {
	return e.BBox
}

// ThreatIndex answers which threats can possibly interact with a leg, so
// legality tests only run the geometric predicates that matter.
type ThreatIndex struct {
	tree *rtreego.Rtree
	size int
}

// NewThreatIndex builds a spatial index over the threat bounding boxes.
func NewThreatIndex(threats []*Threat) *ThreatIndex {
	tree := rtreego.NewTree(2, 25, 50) // 2D, min 25, max 50 entries per node

	for _, t := range threats {
		rect, err := rectFromBound(t.Bound())
		if err != nil {
			continue
		}
		tree.Insert(&ThreatEntry{Threat: t, BBox: rect})
	}

	return &ThreatIndex{tree: tree, size: len(threats)}
}

// Candidates returns the threats whose bounding box intersects the bounding
// box of the leg ab. Threats not returned cannot make the leg illegal.
func (ti *ThreatIndex) Candidates(a, b Coordinate) []*Threat {
	if ti.size == 0 {
		return nil
	}

	minX := math.Min(a.X, b.X)
	minY := math.Min(a.Y, b.Y)
	maxX := math.Max(a.X, b.X)
	maxY := math.Max(a.Y, b.Y)

	rect, err := rtreego.NewRect(
		rtreego.Point{minX, minY},
		[]float64{sideLength(maxX - minX), sideLength(maxY - minY)},
	)
	if err != nil {
		return nil
	}

	results := ti.tree.SearchIntersect(rect)
	threats := make([]*Threat, 0, len(results))
	for _, item := range results {
		threats = append(threats, item.(*ThreatEntry).Threat)
	}
	return threats
}

// rectFromBound converts an orb bound into an rtreego rectangle.
func rectFromBound(b orb.Bound) (rtreego.Rect, error) {
	return rtreego.NewRect(
		rtreego.Point{b.Min[0], b.Min[1]},
		[]float64{sideLength(b.Max[0] - b.Min[0]), sideLength(b.Max[1] - b.Min[1])},
	)
}

// sideLength pads degenerate extents; rtreego rejects zero-length sides.
func sideLength(d float64) float64 {
	if d <= 0 {
		return 1e-9
	}
	return d
}
