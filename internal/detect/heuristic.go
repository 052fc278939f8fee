package detect

import (
	"github.com/openfield/scene-analyzer/internal/imaging"
)

// Heuristic is one non-learned detector: a pure function of a frame
// producing zero or more candidate detections. Implementations never
// panic on malformed or empty input; they log a diagnostic and return
// nothing instead.
type Heuristic interface {
	Name() string
	Detect(f *imaging.Frame) []Detection
}

// DefaultHeuristics returns the fixed ordered detector set the
// orchestrator falls back to when the primary model finds too little.
// The order matters: when two detectors claim the same category, the
// earlier detector's result is the one the orchestrator keeps.
func DefaultHeuristics() []Heuristic {
	return []Heuristic{
		HumanDetector{},
		VehicleDetector{},
		AnimalDetector{},
		MachineryDetector{},
	}
}

// Edge map gradient thresholds shared by the heuristics. The strong
// threshold keeps only the sharp edges typical of machined surfaces.
const (
	edgeThreshold       = 30.0
	strongEdgeThreshold = 60.0
)
