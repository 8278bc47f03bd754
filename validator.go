package main

import (
	"errors"
	"fmt"
)

// Validation verdicts for a submitted path. Infeasible scenarios legitimately
// produce ErrNoPath; everything else points at a broken submission.
var (
	ErrNoPath          = errors.New("no path returned")
	ErrBadSource       = errors.New("path does not start at the source")
	ErrBadTarget       = errors.New("path does not end at the target")
	ErrNoEntryBreach   = errors.New("leg crosses a no-entry zone")
	ErrExclusionBreach = errors.New("leg crosses a circular exclusion")
	ErrDetected        = errors.New("leg detected by a directional detector")
	ErrBudgetExceeded  = errors.New("detected distance exceeds the budget")
)

// ValidatePath checks a path against the scenario's hard constraints.
//
// When budgeted is false any detected leg fails the path. When budgeted is
// true the accumulated detected distance must stay within
// cfg.BudgetFraction of the straight-line source–target distance, with one
// quantum of tolerance for the layer discretization.
func ValidatePath(s *Scenario, path []Coordinate, cfg *PlannerConfig, budgeted bool) error {
	if len(path) == 0 {
		return ErrNoPath
	}
	if path[0] != s.Source {
		return fmt.Errorf("%w: got %v", ErrBadSource, path[0])
	}
	if path[len(path)-1] != s.Target {
		return fmt.Errorf("%w: got %v", ErrBadTarget, path[len(path)-1])
	}

	for i := 0; i+1 < len(path); i++ {
		start, end := path[i], path[i+1]
		if !IsLegalLegFor(start, end, s.Threats, noEntryPolygons) {
			return fmt.Errorf("%w: leg %d (%v → %v)", ErrNoEntryBreach, i, start, end)
		}
		if !IsLegalLegFor(start, end, s.Threats, circularExclusions) {
			return fmt.Errorf("%w: leg %d (%v → %v)", ErrExclusionBreach, i, start, end)
		}
		if !budgeted && !IsLegalLegFor(start, end, s.Threats, detectorOnly) {
			return fmt.Errorf("%w: leg %d (%v → %v)", ErrDetected, i, start, end)
		}
	}

	if budgeted {
		allowed := cfg.BudgetFraction*s.Source.Distance(s.Target) + cfg.BudgetQuantum
		if detected := DetectedDistance(path, s.Threats); detected > allowed {
			return fmt.Errorf("%w: %.3f > %.3f", ErrBudgetExceeded, detected, allowed)
		}
	}
	return nil
}
