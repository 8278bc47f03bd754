package main

import (
	"log"
	"math/rand"
	"runtime"
	"sync"
)

// AugmentRoadmap grows the graph with a probabilistic roadmap inside every
// directional detector field, so a route can cut through a field when that
// is shorter than circling it.
//
// The total sample budget is split evenly across detectors. Samples are
// drawn by rejection sampling (uniform in the circle's bounding box, accept
// when inside the circle) from the injected random source. Each accepted
// sample connects, independently per direction, to every node within the
// connection radius.
//
// With budgeted=false a connection must be legal against every threat. With
// budgeted=true only the hard no-entry threats gate the connection and each
// direction carries its own Detected flag.
func AugmentRoadmap(g *Graph, threats []*Threat, idx *ThreatIndex, cfg *PlannerConfig,
	rng *rand.Rand, budgeted bool) {

	var detectors []*Threat
	for _, t := range threats {
		if t.Kind == DirectionalDetector {
			detectors = append(detectors, t)
		}
	}
	if len(detectors) == 0 {
		return
	}

	samplesPerDetector := cfg.RoadmapSamples / len(detectors)
	var samples []Coordinate
	for _, d := range detectors {
		samples = append(samples, sampleInCircle(d, samplesPerDetector, cfg.RejectionCap, rng)...)
	}
	log.Printf("roadmap: %d samples across %d detectors", len(samples), len(detectors))

	// Insert every sample before connecting, so connections between samples
	// are evaluated exactly once per ordered direction.
	sampleIDs := make([]int, 0, len(samples))
	for _, s := range samples {
		before := len(g.Nodes)
		id := g.AddNode(s)
		if id < before {
			continue // duplicate draw
		}
		sampleIDs = append(sampleIDs, id)
	}

	// Candidate evaluation is independent per sample; rows merge in order
	// after the barrier to keep the graph deterministic for a fixed source
	// of randomness.
	rows := make([][]edgeRec, len(sampleIDs))
	idxCh := make(chan int)
	var wg sync.WaitGroup

	workers := runtime.GOMAXPROCS(0)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range idxCh {
				rows[i] = connectSample(g.Nodes, sampleIDs[i], idx, cfg.ConnectionRadius, budgeted)
			}
		}()
	}
	for i := range sampleIDs {
		idxCh <- i
	}
	close(idxCh)
	wg.Wait()

	edgesAdded := 0
	for _, row := range rows {
		for _, rec := range row {
			g.AddEdge(rec.from, rec.to, rec.dist, rec.detected)
			edgesAdded++
		}
	}
	log.Printf("roadmap: %d directed edges added", edgesAdded)
}

// sampleInCircle draws up to n points uniformly inside the detector circle.
// Every draw is capped at rejectionCap attempts so a near-degenerate region
// cannot hang the sampler; on exhaustion the points accepted so far are kept.
func sampleInCircle(d *Threat, n, rejectionCap int, rng *rand.Rand) []Coordinate {
	bound := d.Bound()
	points := make([]Coordinate, 0, n)

	for len(points) < n {
		accepted := false
		for attempt := 0; attempt < rejectionCap; attempt++ {
			p := Coordinate{
				X: bound.Min[0] + rng.Float64()*(bound.Max[0]-bound.Min[0]),
				Y: bound.Min[1] + rng.Float64()*(bound.Max[1]-bound.Min[1]),
			}
			if p.Distance(d.Center) < d.Radius {
				points = append(points, p)
				accepted = true
				break
			}
		}
		if !accepted {
			log.Printf("roadmap: rejection sampling exhausted after %d attempts, keeping %d/%d samples",
				rejectionCap, len(points), n)
			break
		}
	}
	return points
}

// connectSample links one sample node to every earlier node within the
// connection radius, testing legality per direction.
func connectSample(nodes []Coordinate, sampleID int, idx *ThreatIndex, radius float64, budgeted bool) []edgeRec {
	var recs []edgeRec
	node := nodes[sampleID]

	for other := 0; other < sampleID; other++ {
		dist := node.Distance(nodes[other])
		if dist > radius {
			continue
		}
		candidates := idx.Candidates(node, nodes[other])

		if budgeted {
			if !IsLegalLegFor(nodes[other], node, candidates, nonDetectorOnly) {
				continue
			}
			recs = append(recs,
				edgeRec{other, sampleID, dist, !IsLegalLegFor(nodes[other], node, candidates, detectorOnly)},
				edgeRec{sampleID, other, dist, !IsLegalLegFor(node, nodes[other], candidates, detectorOnly)})
			continue
		}

		if IsLegalLegFor(nodes[other], node, candidates, anyThreat) {
			recs = append(recs, edgeRec{other, sampleID, dist, false})
		}
		if IsLegalLegFor(node, nodes[other], candidates, anyThreat) {
			recs = append(recs, edgeRec{sampleID, other, dist, false})
		}
	}
	return recs
}
