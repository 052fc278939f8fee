// Package analyze orchestrates the full single-photo pipeline: scene
// classification, the primary model pass, the heuristic fallback pass,
// and assembly of the final result.
package analyze

import (
	"fmt"
	"image"
	"log"
	"time"

	"github.com/openfield/scene-analyzer/internal/detect"
	"github.com/openfield/scene-analyzer/internal/imaging"
)

// MinPrimaryDetections is the model output count below which the
// heuristic detectors are consulted.
const MinPrimaryDetections = 2

// PrimarySource is the model-backed detector the analyzer consults
// first. An unavailable source is skipped, not an error.
type PrimarySource interface {
	Available() bool
	Detect(img image.Image) ([]detect.Detection, error)
}

// Analyzer runs the pipeline over single photos. The zero value is not
// usable; construct with New.
type Analyzer struct {
	primary    PrimarySource
	heuristics []detect.Heuristic
	minPrimary int
}

// New builds an analyzer over the given primary source, which may be
// nil when no model is configured. The heuristic set and fallback
// threshold take their standard values.
func New(primary PrimarySource) *Analyzer {
	return &Analyzer{
		primary:    primary,
		heuristics: detect.DefaultHeuristics(),
		minPrimary: MinPrimaryDetections,
	}
}

// SetMinPrimary overrides the model-result count below which the
// heuristic pass runs. Negative values are ignored.
func (a *Analyzer) SetMinPrimary(n int) {
	if n >= 0 {
		a.minPrimary = n
	}
}

// Analyze processes one photo and always returns a usable result: any
// failure inside the pipeline degrades to the safe fallback rather
// than propagating.
func (a *Analyzer) Analyze(path string) (result *Result) {
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			log.Printf("analyze: recovered from %v", r)
			result = Degraded(path, fmt.Errorf("%v", r))
		}
		result.LatencyMs = time.Since(start).Milliseconds()
	}()

	img, err := imaging.Load(path)
	if err != nil {
		log.Printf("analyze: %v", err)
		return Degraded(path, err)
	}

	frame := imaging.NewFrame(img)
	isDay := IsDay(frame.Gray)

	var dets []detect.Detection
	if a.primary != nil && a.primary.Available() {
		dets, err = a.primary.Detect(img)
		if err != nil {
			log.Printf("analyze: primary detection failed: %v", err)
			dets = nil
		}
	}

	if len(dets) < a.minPrimary {
		dets = a.mergeHeuristics(frame, dets)
	}

	objects := objectCategories(dets)
	if dets == nil {
		dets = []detect.Detection{}
	}

	return &Result{
		IsDay:             isDay,
		Objects:           objects,
		Details:           dets,
		Summary:           buildSummary(isDay, objects),
		PhotoPath:         path,
		OverallConfidence: overallConfidence(dets),
	}
}

// mergeHeuristics runs every heuristic detector and appends each
// detection whose category the result does not yet contain. The first
// detection seen for a category wins; later ones for the same category
// are dropped, including within a single detector's output.
func (a *Analyzer) mergeHeuristics(f *imaging.Frame, dets []detect.Detection) []detect.Detection {
	seen := make(map[string]bool, len(dets))
	for _, d := range dets {
		seen[d.Category] = true
	}

	for _, h := range a.heuristics {
		for _, d := range runHeuristic(h, f) {
			if seen[d.Category] {
				continue
			}
			seen[d.Category] = true
			dets = append(dets, d)
		}
	}
	return dets
}

// runHeuristic isolates one detector behind a recover boundary so a
// failing detector costs its own output, not the whole analysis.
func runHeuristic(h detect.Heuristic, f *imaging.Frame) (dets []detect.Detection) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("analyze: %s detector failed: %v", h.Name(), r)
			dets = nil
		}
	}()
	return h.Detect(f)
}
