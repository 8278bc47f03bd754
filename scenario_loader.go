package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// ErrMalformedScenario marks invalid or missing geometry. It is surfaced at
// construction, never discovered mid-search.
var ErrMalformedScenario = errors.New("malformed scenario")

// scenarioSchema validates the raw descriptor before decoding, so every
// geometry problem fails fast with a precise message.
const scenarioSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"properties": {
		"source": {"$ref": "#/definitions/point"},
		"target": {"$ref": "#/definitions/point"},
		"no_entry_zones": {
			"type": "array",
			"items": {
				"type": "object",
				"properties": {
					"boundary": {
						"type": "array",
						"items": {"$ref": "#/definitions/point"},
						"minItems": 3
					}
				},
				"required": ["boundary"],
				"additionalProperties": false
			}
		},
		"circular_exclusions": {"$ref": "#/definitions/circles"},
		"detectors": {"$ref": "#/definitions/circles"}
	},
	"required": ["source", "target"],
	"additionalProperties": false,
	"definitions": {
		"point": {
			"type": "array",
			"items": {"type": "number"},
			"minItems": 2,
			"maxItems": 2
		},
		"circles": {
			"type": "array",
			"items": {
				"type": "object",
				"properties": {
					"center": {"$ref": "#/definitions/point"},
					"radius": {"type": "number", "exclusiveMinimum": 0}
				},
				"required": ["center", "radius"],
				"additionalProperties": false
			}
		}
	}
}`

type rawCircle struct {
	Center []float64 `json:"center"`
	Radius float64   `json:"radius"`
}

type rawZone struct {
	Boundary [][]float64 `json:"boundary"`
}

type rawScenario struct {
	Source             []float64   `json:"source"`
	Target             []float64   `json:"target"`
	NoEntryZones       []rawZone   `json:"no_entry_zones"`
	CircularExclusions []rawCircle `json:"circular_exclusions"`
	Detectors          []rawCircle `json:"detectors"`
}

// Scenario is the decoded planning input: a source, a target and the threat
// collections, all immutable once constructed.
type Scenario struct {
	Source  Coordinate
	Target  Coordinate
	Threats []*Threat
}

// DecodeScenario validates the raw descriptor against the schema and builds
// the scenario. Any violation wraps ErrMalformedScenario.
func DecodeScenario(data []byte, cfg *PlannerConfig) (*Scenario, error) {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(scenarioSchema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedScenario, err)
	}
	if !result.Valid() {
		var problems []string
		for _, desc := range result.Errors() {
			problems = append(problems, desc.String())
		}
		return nil, fmt.Errorf("%w: %s", ErrMalformedScenario, strings.Join(problems, "; "))
	}

	var raw rawScenario
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedScenario, err)
	}

	s := &Scenario{
		Source: Coordinate{X: raw.Source[0], Y: raw.Source[1]},
		Target: Coordinate{X: raw.Target[0], Y: raw.Target[1]},
	}

	for _, zone := range raw.NoEntryZones {
		boundary := make([]Coordinate, 0, len(zone.Boundary))
		for _, v := range zone.Boundary {
			boundary = append(boundary, Coordinate{X: v[0], Y: v[1]})
		}
		t, err := NewNoEntryPolygon(boundary)
		if err != nil {
			return nil, err
		}
		s.Threats = append(s.Threats, t)
	}

	for _, c := range raw.CircularExclusions {
		t, err := NewCircularExclusion(Coordinate{X: c.Center[0], Y: c.Center[1]}, c.Radius)
		if err != nil {
			return nil, err
		}
		s.Threats = append(s.Threats, t)
	}

	for _, c := range raw.Detectors {
		t, err := NewDirectionalDetector(Coordinate{X: c.Center[0], Y: c.Center[1]}, c.Radius, cfg.DetectionAngle())
		if err != nil {
			return nil, err
		}
		s.Threats = append(s.Threats, t)
	}

	return s, nil
}
