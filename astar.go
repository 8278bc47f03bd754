package main

import (
	"container/heap"
)

// searchGraph is the surface the solver needs; both the plain visibility
// graph and the budget-layered graph satisfy it.
type searchGraph interface {
	Neighbors(id int) []Edge
	EstimateToGoal(id, goal int) float64
}

// Node represents a node in the A* search
type Node struct {
	NodeID int     // ID of the node in the graph
	G      float64 // Cost from start to this node
	H      float64 // Heuristic cost from this node to the goal
	F      float64 // Total cost (G + H)
	Parent *Node
	Index  int // Index in the heap
}

// PriorityQueue implements heap.Interface for A* algorithm
type PriorityQueue []*Node

func (pq PriorityQueue) Len() int { return len(pq) }

func (pq PriorityQueue) Less(i, j int) bool {
	return pq[i].F < pq[j].F
}

func (pq PriorityQueue) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].Index = i
	pq[j].Index = j
}

func (pq *PriorityQueue) Push(x interface{}) {
	n := len(*pq)
	node := x.(*Node)
	node.Index = n
	*pq = append(*pq, node)
}

func (pq *PriorityQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	node := old[n-1]
	old[n-1] = nil
	node.Index = -1
	*pq = old[0 : n-1]
	return node
}

// AStarPath computes the shortest path between two node ids. The second
// return value is false when no path exists; that is a recoverable outcome,
// not a fault.
func AStarPath(graph searchGraph, startID, goalID int) ([]int, bool) {
	openSet := &PriorityQueue{}
	heap.Init(openSet)

	startNode := &Node{
		NodeID: startID,
		G:      0,
		H:      graph.EstimateToGoal(startID, goalID),
	}
	startNode.F = startNode.H
	heap.Push(openSet, startNode)

	closedSet := make(map[int]bool)
	openSetMap := map[int]*Node{startID: startNode}

	for openSet.Len() > 0 {
		current := heap.Pop(openSet).(*Node)
		delete(openSetMap, current.NodeID)

		// Check if we reached the goal
		if current.NodeID == goalID {
			path := []int{}
			for node := current; node != nil; node = node.Parent {
				path = append([]int{node.NodeID}, path...)
			}
			return path, true
		}

		closedSet[current.NodeID] = true

		// Explore neighbors
		for _, edge := range graph.Neighbors(current.NodeID) {
			neighborID := edge.To

			if closedSet[neighborID] {
				continue
			}

			tentativeG := current.G + edge.Dist

			neighbor, exists := openSetMap[neighborID]
			if !exists {
				neighbor = &Node{
					NodeID: neighborID,
					G:      tentativeG,
					H:      graph.EstimateToGoal(neighborID, goalID),
					Parent: current,
				}
				neighbor.F = neighbor.G + neighbor.H
				heap.Push(openSet, neighbor)
				openSetMap[neighborID] = neighbor
			} else if tentativeG < neighbor.G {
				// Found a better path to this neighbor
				neighbor.G = tentativeG
				neighbor.F = neighbor.G + neighbor.H
				neighbor.Parent = current
				heap.Fix(openSet, neighbor.Index)
			}
		}
	}

	// No path found
	return []int{}, false
}
