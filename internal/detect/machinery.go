package detect

import (
	"log"
	"math"

	"github.com/openfield/scene-analyzer/internal/imaging"
)

// Machinery detection thresholds. Machinery shows up as a dense cluster
// of long straight edges; the detection box spans every segment found.
const (
	machineryMinSegLength  = 50
	machineryMinSegments   = 20
	machineryMinExtent     = 100
	machineryMaxConfidence = 0.7
	machinerySegScale      = 100.0
)

// MachineryDetector looks for concentrations of long straight lines in
// the strong-edge map, the signature of frames, booms, and panels.
//
// At most one detection is produced per frame, covering all segments.
type MachineryDetector struct{}

func (MachineryDetector) Name() string { return "machinery" }

func (MachineryDetector) Detect(f *imaging.Frame) []Detection {
	if f == nil || f.Empty() {
		log.Printf("machinery detector: empty frame, skipping")
		return nil
	}

	segments := extractSegments(f.Edges(strongEdgeThreshold), machineryMinSegLength)
	if len(segments) <= machineryMinSegments {
		return nil
	}

	minX, minY := f.Width(), f.Height()
	maxX, maxY := 0, 0
	for _, s := range segments {
		for _, p := range []struct{ X, Y int }{{s.Start.X, s.Start.Y}, {s.End.X, s.End.Y}} {
			if p.X < minX {
				minX = p.X
			}
			if p.X > maxX {
				maxX = p.X
			}
			if p.Y < minY {
				minY = p.Y
			}
			if p.Y > maxY {
				maxY = p.Y
			}
		}
	}

	w := maxX - minX
	h := maxY - minY
	if w < machineryMinExtent || h < machineryMinExtent {
		return nil
	}

	conf := math.Min(machineryMaxConfidence, float64(len(segments))/machinerySegScale)
	return []Detection{{
		Class:      "machinery",
		Confidence: clampConfidence(conf),
		Category:   CategoryMachinery,
		Box:        BoundingBox{X: minX, Y: minY, Width: w, Height: h},
	}}
}
