package main

import (
	"encoding/json"
	"flag"
	"log"
	"math/rand"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// RouteRequest carries a scenario descriptor plus per-query overrides.
type RouteRequest struct {
	Scenario       json.RawMessage `json:"scenario"`
	Variant        string          `json:"variant,omitempty"` // avoid | roadmap | budget
	Seed           *int64          `json:"seed,omitempty"`
	BudgetFraction *float64        `json:"budgetFraction,omitempty"`
	IncludeGraph   bool            `json:"includeGraph,omitempty"`
}

// RouteResponse returns the planned path and graph diagnostics.
type RouteResponse struct {
	Success          bool            `json:"success"`
	Message          string          `json:"message,omitempty"`
	Path             []Coordinate    `json:"path"`
	Distance         float64         `json:"distance"`
	DetectedDistance float64         `json:"detectedDistance"`
	GraphEdges       [][2]Coordinate `json:"graphEdges,omitempty"`
}

// ValidateRequest asks for a verdict on a submitted path.
type ValidateRequest struct {
	Scenario json.RawMessage `json:"scenario"`
	Path     [][]float64     `json:"path"`
	Variant  string          `json:"variant,omitempty"`
}

// ValidateResponse is the validation verdict.
type ValidateResponse struct {
	Valid  bool   `json:"valid"`
	Reason string `json:"reason,omitempty"`
}

type server struct {
	cfg *PlannerConfig
}

// corsMiddleware adds CORS headers to allow frontend requests
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *server) routeHandler(w http.ResponseWriter, r *http.Request) {
	reqID := uuid.New().String()[:8]

	var req RouteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("[%s] invalid request body: %v", reqID, err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	cfg := *s.cfg
	if req.BudgetFraction != nil {
		cfg.BudgetFraction = *req.BudgetFraction
	}

	scenario, err := DecodeScenario(req.Scenario, &cfg)
	if err != nil {
		log.Printf("[%s] scenario rejected: %v", reqID, err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	threats := PreprocessThreats(scenario.Threats, cfg.SimplifyEpsilon)

	seed := time.Now().UnixNano()
	if req.Seed != nil {
		seed = *req.Seed
	}
	rng := rand.New(rand.NewSource(seed))

	log.Printf("[%s] route %v → %v, %d threats, variant=%q",
		reqID, scenario.Source, scenario.Target, len(threats), req.Variant)

	var path []Coordinate
	var graph *Graph
	switch req.Variant {
	case "", "avoid":
		path, graph = CalculatePath(scenario.Source, scenario.Target, threats, &cfg)
	case "roadmap":
		path, graph = CalculatePathWithRoadmap(scenario.Source, scenario.Target, threats, &cfg, rng)
	case "budget":
		path, graph = CalculatePathWithBudget(scenario.Source, scenario.Target, threats, &cfg, rng)
	default:
		log.Printf("[%s] unknown variant %q", reqID, req.Variant)
		http.Error(w, "Unknown variant: "+req.Variant, http.StatusBadRequest)
		return
	}

	resp := RouteResponse{
		Success:          len(path) > 0,
		Path:             path,
		Distance:         PathLength(path),
		DetectedDistance: DetectedDistance(path, threats),
	}
	if !resp.Success {
		resp.Message = "No path found under the given constraints"
		log.Printf("[%s] no path found", reqID)
	} else {
		log.Printf("[%s] path found: %d waypoints, distance %.3f (detected %.3f)",
			reqID, len(path), resp.Distance, resp.DetectedDistance)
	}
	if req.IncludeGraph {
		resp.GraphEdges = graph.LineStrings()
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

func (s *server) validateHandler(w http.ResponseWriter, r *http.Request) {
	reqID := uuid.New().String()[:8]

	var req ValidateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("[%s] invalid request body: %v", reqID, err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	scenario, err := DecodeScenario(req.Scenario, s.cfg)
	if err != nil {
		log.Printf("[%s] scenario rejected: %v", reqID, err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	path := make([]Coordinate, 0, len(req.Path))
	for _, p := range req.Path {
		if len(p) != 2 {
			http.Error(w, "Path points must be [x, y] pairs", http.StatusBadRequest)
			return
		}
		path = append(path, Coordinate{X: p[0], Y: p[1]})
	}

	resp := ValidateResponse{Valid: true}
	if err := ValidatePath(scenario, path, s.cfg, req.Variant == "budget"); err != nil {
		resp.Valid = false
		resp.Reason = err.Error()
	}
	log.Printf("[%s] validate: valid=%t %s", reqID, resp.Valid, resp.Reason)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

func (s *server) healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":         "ready",
		"budgetFraction": s.cfg.BudgetFraction,
		"roadmapSamples": s.cfg.RoadmapSamples,
	})
}

func newRouter(cfg *PlannerConfig) *mux.Router {
	s := &server{cfg: cfg}

	r := mux.NewRouter()
	r.Use(corsMiddleware)
	r.HandleFunc("/route", s.routeHandler).Methods(http.MethodPost, http.MethodOptions)
	r.HandleFunc("/validate", s.validateHandler).Methods(http.MethodPost, http.MethodOptions)
	r.HandleFunc("/health", s.healthHandler).Methods(http.MethodGet)
	return r
}

func main() {
	configPath := flag.String("config", "", "path to YAML planner config")
	flag.Parse()

	cfg := DefaultConfig()
	if *configPath != "" {
		loaded, err := LoadConfig(*configPath)
		if err != nil {
			log.Fatal(err)
		}
		cfg = loaded
	}

	log.Println("Threat-aware route planner")
	log.Printf("  detection angle: %.0f°, quantum: %g, budget fraction: %g",
		cfg.DetectionAngleDeg, cfg.BudgetQuantum, cfg.BudgetFraction)
	log.Println("Endpoints:")
	log.Println("  POST /route     - compute a route for a scenario")
	log.Println("  POST /validate  - check a submitted path")
	log.Println("  GET  /health    - check server status")
	log.Printf("Listening on %s", cfg.ListenAddr)

	if err := http.ListenAndServe(cfg.ListenAddr, newRouter(cfg)); err != nil {
		log.Fatal(err)
	}
}
