package main

// Edge represents a directed connection between two nodes with a cost
type Edge struct {
	To       int     // Index of the destination node
	Dist     float64 // Euclidean distance
	Detected bool    // Leg is exposed to a directional detector
}

// Graph is a directed weighted graph over an arena of coordinates. Node ids
// index the arena; the coordinate→id map is only consulted while seeding,
// never in the search hot path.
type Graph struct {
	Nodes []Coordinate
	Edges map[int][]Edge

	index map[Coordinate]int
}

// NewGraph creates an empty graph.
func NewGraph() *Graph {
	return &Graph{
		Edges: make(map[int][]Edge),
		index: make(map[Coordinate]int),
	}
}

// AddNode inserts a coordinate into the arena, deduplicating exact
// duplicates (e.g. shared polygon vertices), and returns its node id.
func (g *Graph) AddNode(c Coordinate) int {
	if id, ok := g.index[c]; ok {
		return id
	}
	id := len(g.Nodes)
	g.Nodes = append(g.Nodes, c)
	g.index[c] = id
	return id
}

// NodeID returns the id of a previously added coordinate.
func (g *Graph) NodeID(c Coordinate) (int, bool) {
	id, ok := g.index[c]
	return id, ok
}

// AddEdge adds a directed edge.
func (g *Graph) AddEdge(from, to int, dist float64, detected bool) {
	g.Edges[from] = append(g.Edges[from], Edge{To: to, Dist: dist, Detected: detected})
}

// Neighbors returns the outgoing edges of a node.
func (g *Graph) Neighbors(id int) []Edge {
	return g.Edges[id]
}

// EstimateToGoal returns the straight-line distance between two nodes, used
// as the A* heuristic.
func (g *Graph) EstimateToGoal(id, goal int) float64 {
	return g.Nodes[id].Distance(g.Nodes[goal])
}

// NumEdges counts the directed edges in the graph.
func (g *Graph) NumEdges() int {
	total := 0
	for _, edges := range g.Edges {
		total += len(edges)
	}
	return total
}

// LineStrings returns the graph edges as coordinate pairs for downstream
// rendering, collapsing the two directions of a connection into one segment.
func (g *Graph) LineStrings() [][2]Coordinate {
	lines := make([][2]Coordinate, 0, len(g.Edges))
	seen := make(map[[2]int]bool)

	for from, edges := range g.Edges {
		for _, e := range edges {
			key := [2]int{from, e.To}
			if key[0] > key[1] {
				key[0], key[1] = key[1], key[0]
			}
			if seen[key] {
				continue
			}
			seen[key] = true
			lines = append(lines, [2]Coordinate{g.Nodes[from], g.Nodes[e.To]})
		}
	}
	return lines
}

// PathCoordinates maps a node id path back to coordinates.
func (g *Graph) PathCoordinates(ids []int) []Coordinate {
	path := make([]Coordinate, 0, len(ids))
	for _, id := range ids {
		path = append(path, g.Nodes[id])
	}
	return path
}
