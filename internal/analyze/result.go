package analyze

import (
	"fmt"
	"strings"

	"github.com/openfield/scene-analyzer/internal/detect"
)

// fallbackObject is reported when no detector found anything, so the
// summary never reads as empty.
const fallbackObject = "general scene"

// defaultConfidence is the overall confidence reported when there are
// no detections to aggregate.
const defaultConfidence = 0.5

// Result is the full outcome of analyzing one photo.
type Result struct {
	IsDay             bool               `json:"isDay"`
	Objects           []string           `json:"objects"`
	Details           []detect.Detection `json:"details"`
	Summary           string             `json:"summary"`
	PhotoPath         string             `json:"photoPath"`
	LatencyMs         int64              `json:"latencyMs"`
	OverallConfidence float64            `json:"overallConfidence"`
}

// Degraded builds the safe fallback result returned when analysis
// cannot complete. The photo path is preserved so callers can retry.
func Degraded(path string, cause error) *Result {
	return &Result{
		IsDay:             true,
		Objects:           []string{fallbackObject},
		Details:           []detect.Detection{},
		Summary:           fmt.Sprintf("Analysis failed: %v", cause),
		PhotoPath:         path,
		OverallConfidence: defaultConfidence,
	}
}

// buildSummary renders the one-line human readable description.
func buildSummary(isDay bool, objects []string) string {
	tod := "night"
	if isDay {
		tod = "day"
	}
	return fmt.Sprintf("It's %s time. The photo includes: %s", tod, strings.Join(objects, ", "))
}

// objectCategories returns the distinct detection categories in
// first-seen order, or the fallback object when there are none.
func objectCategories(dets []detect.Detection) []string {
	var objects []string
	seen := make(map[string]bool)
	for _, d := range dets {
		if seen[d.Category] {
			continue
		}
		seen[d.Category] = true
		objects = append(objects, d.Category)
	}
	if len(objects) == 0 {
		objects = []string{fallbackObject}
	}
	return objects
}

// overallConfidence aggregates per-detection confidences into one
// score, weighting each detection by its own confidence so strong
// detections dominate. Defaults to 0.5 with nothing to aggregate.
func overallConfidence(dets []detect.Detection) float64 {
	if len(dets) == 0 {
		return defaultConfidence
	}
	var num, den float64
	for _, d := range dets {
		num += d.Confidence * d.Confidence
		den += d.Confidence
	}
	if den == 0 {
		return defaultConfidence
	}
	c := num / den
	if c < 0 {
		return 0
	}
	if c > 1 {
		return 1
	}
	return c
}
