package main

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// PlannerConfig carries the planner tuning knobs. The detection angle and
// budget quantum are tunable constants preserved from the reference
// behavior; the defaults below are the documented values.
type PlannerConfig struct {
	// DetectionAngleDeg is the folded bearing difference below which a
	// detector field crossing counts as detected. Default 45.
	DetectionAngleDeg float64 `yaml:"detection_angle_deg"`
	// BudgetQuantum is the layer discretization step for the budgeted
	// variant. Default 0.5.
	BudgetQuantum float64 `yaml:"budget_quantum"`
	// BudgetFraction caps total detected distance as a fraction of the
	// straight-line source–target distance. Default 0.1.
	BudgetFraction float64 `yaml:"budget_fraction"`
	// RoadmapSamples is the total sample count split evenly across
	// detectors. Default 2000.
	RoadmapSamples int `yaml:"roadmap_samples"`
	// ConnectionRadius bounds roadmap connection attempts. Default 5.
	ConnectionRadius float64 `yaml:"connection_radius"`
	// ExclusionBoundaryVertices / DetectorBoundaryVertices size the n-gon
	// approximations used to seed the visibility graph.
	ExclusionBoundaryVertices int `yaml:"exclusion_boundary_vertices"`
	DetectorBoundaryVertices  int `yaml:"detector_boundary_vertices"`
	// RejectionCap bounds the attempts per rejection-sampling draw so a
	// near-degenerate region cannot hang the sampler. Default 1000.
	RejectionCap int `yaml:"rejection_cap"`
	// SimplifyEpsilon, when positive, enables Douglas-Peucker reduction of
	// no-entry polygon boundaries before planning. Default 0 (off).
	SimplifyEpsilon float64 `yaml:"simplify_epsilon"`
	// ListenAddr is the HTTP listen address.
	ListenAddr string `yaml:"listen_addr"`
}

// DefaultConfig returns the documented defaults.
func DefaultConfig() *PlannerConfig {
	return &PlannerConfig{
		DetectionAngleDeg:         45,
		BudgetQuantum:             0.5,
		BudgetFraction:            0.1,
		RoadmapSamples:            2000,
		ConnectionRadius:          5,
		ExclusionBoundaryVertices: 20,
		DetectorBoundaryVertices:  30,
		RejectionCap:              1000,
		ListenAddr:                ":8080",
	}
}

// LoadConfig overlays a YAML file onto the defaults.
func LoadConfig(path string) (*PlannerConfig, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the planner cannot run with.
func (c *PlannerConfig) Validate() error {
	if c.BudgetQuantum <= 0 {
		return fmt.Errorf("budget_quantum must be positive, got %g", c.BudgetQuantum)
	}
	if c.BudgetFraction < 0 {
		return fmt.Errorf("budget_fraction must be non-negative, got %g", c.BudgetFraction)
	}
	if c.RoadmapSamples <= 0 {
		return fmt.Errorf("roadmap_samples must be positive, got %d", c.RoadmapSamples)
	}
	if c.ConnectionRadius <= 0 {
		return fmt.Errorf("connection_radius must be positive, got %g", c.ConnectionRadius)
	}
	if c.ExclusionBoundaryVertices < 3 || c.DetectorBoundaryVertices < 3 {
		return fmt.Errorf("boundary approximations need at least 3 vertices")
	}
	if c.RejectionCap <= 0 {
		return fmt.Errorf("rejection_cap must be positive, got %d", c.RejectionCap)
	}
	return nil
}

// DetectionAngle returns the detection threshold in radians.
func (c *PlannerConfig) DetectionAngle() float64 {
	return c.DetectionAngleDeg * math.Pi / 180
}
