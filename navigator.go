package main

import (
	"log"
	"math/rand"
)

// CalculatePath plans the shortest route that avoids every threat outright:
// a visibility graph over the threat corners and circle approximations,
// solved with A*. An empty path means no route exists under the constraints.
// The graph is returned alongside the path for downstream rendering.
func CalculatePath(source, target Coordinate, threats []*Threat, cfg *PlannerConfig) ([]Coordinate, *Graph) {
	if path, g, done := trivialPath(source, target); done {
		return path, g
	}

	idx := NewThreatIndex(threats)
	graph := BuildVisibilityGraph(source, target, threats, idx, cfg, false)
	return solveOnGraph(graph, source, target)
}

// CalculatePathWithRoadmap additionally samples a probabilistic roadmap
// inside every detection field, so the route may pass through a field along
// legs that stay undetected.
func CalculatePathWithRoadmap(source, target Coordinate, threats []*Threat, cfg *PlannerConfig,
	rng *rand.Rand) ([]Coordinate, *Graph) {

	if path, g, done := trivialPath(source, target); done {
		return path, g
	}

	idx := NewThreatIndex(threats)
	graph := BuildVisibilityGraph(source, target, threats, idx, cfg, false)
	AugmentRoadmap(graph, threats, idx, cfg, rng, false)
	return solveOnGraph(graph, source, target)
}

// CalculatePathWithBudget tolerates detected legs up to a cumulative
// exposure budget (cfg.BudgetFraction of the straight-line source–target
// distance) by expanding the graph into quantized budget layers before
// solving.
func CalculatePathWithBudget(source, target Coordinate, threats []*Threat, cfg *PlannerConfig,
	rng *rand.Rand) ([]Coordinate, *Graph) {

	if path, g, done := trivialPath(source, target); done {
		return path, g
	}

	idx := NewThreatIndex(threats)
	graph := BuildVisibilityGraph(source, target, threats, idx, cfg, true)
	AugmentRoadmap(graph, threats, idx, cfg, rng, true)

	sourceID, _ := graph.NodeID(source)
	targetID, _ := graph.NodeID(target)
	layered, layeredSource, layeredTarget := BuildLayeredGraph(graph, sourceID, targetID, cfg)

	ids, found := AStarPath(layered, layeredSource, layeredTarget)
	if !found {
		log.Printf("navigator: no path within detection budget")
		return []Coordinate{}, graph
	}
	return layered.DecodePath(ids), graph
}

// trivialPath handles the degenerate source == target query before any
// graph is built.
func trivialPath(source, target Coordinate) ([]Coordinate, *Graph, bool) {
	if source != target {
		return nil, nil, false
	}
	g := NewGraph()
	g.AddNode(source)
	return []Coordinate{source}, g, true
}

func solveOnGraph(graph *Graph, source, target Coordinate) ([]Coordinate, *Graph) {
	sourceID, _ := graph.NodeID(source)
	targetID, _ := graph.NodeID(target)

	ids, found := AStarPath(graph, sourceID, targetID)
	if !found {
		log.Printf("navigator: no legal path found")
		return []Coordinate{}, graph
	}
	return graph.PathCoordinates(ids), graph
}

// PathLength sums the leg lengths of a path.
func PathLength(path []Coordinate) float64 {
	total := 0.0
	for i := 0; i+1 < len(path); i++ {
		total += path[i].Distance(path[i+1])
	}
	return total
}

// DetectedDistance sums the length of the legs that are exposed to at least
// one directional detector.
func DetectedDistance(path []Coordinate, threats []*Threat) float64 {
	total := 0.0
	for i := 0; i+1 < len(path); i++ {
		if !IsLegalLegFor(path[i], path[i+1], threats, detectorOnly) {
			total += path[i].Distance(path[i+1])
		}
	}
	return total
}
