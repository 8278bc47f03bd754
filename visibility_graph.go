package main

import (
	"log"
	"runtime"
	"sync"
)

// edgeRec accumulates one directed edge before the merge barrier.
type edgeRec struct {
	from, to int
	dist     float64
	detected bool
}

// BuildVisibilityGraph constructs a visibility graph seeded with the source,
// the target, every no-entry polygon vertex and the n-gon approximation of
// every circular threat.
//
// With budgeted=false an edge is added only when the leg is legal against
// every threat. With budgeted=true legality is restricted to the hard
// no-entry threats and the edge carries a Detected flag from the
// detector-only test, so the layered expansion can charge exposure for it.
func BuildVisibilityGraph(source, target Coordinate, threats []*Threat, idx *ThreatIndex,
	cfg *PlannerConfig, budgeted bool) *Graph {

	graph := NewGraph()
	graph.AddNode(source)
	graph.AddNode(target)

	for _, t := range threats {
		switch t.Kind {
		case NoEntryPolygon:
			for _, vertex := range t.Boundary {
				graph.AddNode(vertex)
			}
		case CircularExclusion:
			for _, vertex := range t.ApproximateBoundary(cfg.ExclusionBoundaryVertices) {
				graph.AddNode(vertex)
			}
		case DirectionalDetector:
			for _, vertex := range t.ApproximateBoundary(cfg.DetectorBoundaryVertices) {
				graph.AddNode(vertex)
			}
		}
	}

	n := len(graph.Nodes)
	log.Printf("visibility: %d unique nodes, testing %d pairs", n, n*(n-1)/2)

	// The pair tests are independent: threat data is read-only and each row
	// accumulates its own edges. Rows are merged in order after the barrier
	// so the resulting graph is deterministic.
	rows := make([][]edgeRec, n)
	rowCh := make(chan int)
	var wg sync.WaitGroup

	workers := runtime.GOMAXPROCS(0)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range rowCh {
				rows[i] = connectRow(graph.Nodes, i, idx, budgeted)
			}
		}()
	}
	for i := 0; i < n; i++ {
		rowCh <- i
	}
	close(rowCh)
	wg.Wait()

	edgesAdded := 0
	for _, row := range rows {
		for _, rec := range row {
			graph.AddEdge(rec.from, rec.to, rec.dist, rec.detected)
			edgesAdded++
		}
	}

	log.Printf("visibility: %d directed edges added", edgesAdded)
	return graph
}

// connectRow evaluates every ordered pair (i, j) and (j, i) for j > i.
func connectRow(nodes []Coordinate, i int, idx *ThreatIndex, budgeted bool) []edgeRec {
	var recs []edgeRec
	a := nodes[i]

	for j := i + 1; j < len(nodes); j++ {
		b := nodes[j]
		candidates := idx.Candidates(a, b)
		dist := a.Distance(b)

		if budgeted {
			// Hard threats decide existence; detectors only decide exposure.
			if !IsLegalLegFor(a, b, candidates, nonDetectorOnly) {
				continue
			}
			recs = append(recs,
				edgeRec{i, j, dist, !IsLegalLegFor(a, b, candidates, detectorOnly)},
				edgeRec{j, i, dist, !IsLegalLegFor(b, a, candidates, detectorOnly)})
			continue
		}

		if IsLegalLegFor(a, b, candidates, anyThreat) {
			recs = append(recs, edgeRec{i, j, dist, false})
		}
		if IsLegalLegFor(b, a, candidates, anyThreat) {
			recs = append(recs, edgeRec{j, i, dist, false})
		}
	}
	return recs
}
