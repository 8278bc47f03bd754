package main

import (
	"log"
	"math"
)

// LayeredGraph reformulates "shortest path under a detection budget" as an
// ordinary shortest path: each node is replicated once per quantized budget
// layer and detected edges jump to a higher layer. The layer component is
// non-decreasing along any path.
type LayeredGraph struct {
	base      *Graph
	numLayers int
	Edges     map[int][]Edge
}

// BuildLayeredGraph expands the graph into budget layers and returns the
// layered graph together with the layered source (layer 0) and target
// (highest layer) ids.
//
// The budget is cfg.BudgetFraction of the straight-line source–target
// distance, discretized at cfg.BudgetQuantum. A detected edge of length d
// consumes ceil(d/quantum) layers and is omitted once it would exceed the
// ceiling. The target additionally gets zero-cost edges from each layer to
// the next, so a route finishing under budget is not penalized.
func BuildLayeredGraph(g *Graph, sourceID, targetID int, cfg *PlannerConfig) (*LayeredGraph, int, int) {
	maxDetection := cfg.BudgetFraction * g.Nodes[sourceID].Distance(g.Nodes[targetID])
	maxLayer := int(maxDetection / cfg.BudgetQuantum)

	lg := &LayeredGraph{
		base:      g,
		numLayers: maxLayer + 1,
		Edges:     make(map[int][]Edge, len(g.Edges)*(maxLayer+1)),
	}

	for from, edges := range g.Edges {
		for _, e := range edges {
			if !e.Detected {
				// Free of budget cost: replicate inside every layer.
				for layer := 0; layer <= maxLayer; layer++ {
					lg.addEdge(from, layer, e.To, layer, e.Dist, false)
				}
				continue
			}

			// Charge the whole leg length, rounded up to the quantum.
			jump := int(math.Ceil((e.Dist - 1e-9) / cfg.BudgetQuantum))
			if jump < 1 {
				jump = 1
			}
			for layer := 0; layer+jump <= maxLayer; layer++ {
				lg.addEdge(from, layer, e.To, layer+jump, e.Dist, true)
			}
		}
	}

	// Zero-cost chain lower layer → next higher layer, target only.
	for layer := 0; layer < maxLayer; layer++ {
		lg.addEdge(targetID, layer, targetID, layer+1, 0, false)
	}

	log.Printf("layers: %d layers (budget %.3f, quantum %.3f)", maxLayer+1, maxDetection, cfg.BudgetQuantum)
	return lg, lg.id(sourceID, 0), lg.id(targetID, maxLayer)
}

func (lg *LayeredGraph) id(node, layer int) int {
	return node*lg.numLayers + layer
}

func (lg *LayeredGraph) nodeOf(id int) int {
	return id / lg.numLayers
}

func (lg *LayeredGraph) addEdge(fromNode, fromLayer, toNode, toLayer int, dist float64, detected bool) {
	from := lg.id(fromNode, fromLayer)
	lg.Edges[from] = append(lg.Edges[from], Edge{To: lg.id(toNode, toLayer), Dist: dist, Detected: detected})
}

// Neighbors returns the outgoing edges of a layered node.
func (lg *LayeredGraph) Neighbors(id int) []Edge {
	return lg.Edges[id]
}

// EstimateToGoal ignores the layer component; the straight-line distance of
// the underlying coordinates stays admissible because the target chain is
// free.
func (lg *LayeredGraph) EstimateToGoal(id, goal int) float64 {
	return lg.base.Nodes[lg.nodeOf(id)].Distance(lg.base.Nodes[lg.nodeOf(goal)])
}

// DecodePath strips the layer component from a layered path and collapses
// the consecutive duplicate target entries introduced by the zero-cost
// target chain.
func (lg *LayeredGraph) DecodePath(ids []int) []Coordinate {
	path := make([]Coordinate, 0, len(ids))
	for _, id := range ids {
		c := lg.base.Nodes[lg.nodeOf(id)]
		if len(path) > 0 && path[len(path)-1] == c {
			continue
		}
		path = append(path, c)
	}
	return path
}
