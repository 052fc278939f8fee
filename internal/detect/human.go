package detect

import (
	"log"
	"math"

	"github.com/openfield/scene-analyzer/internal/imaging"
)

// Human detection thresholds. A person standing upright fits a 2:1
// portrait window whose edge pixels concentrate along an elliptical
// silhouette ring.
const (
	humanMinScore  = 0.3
	humanRingInner = 0.8
	humanRingOuter = 1.2
	humanCoreLimit = 0.6
	humanRadiusX   = 0.35
	humanRadiusY   = 0.45
)

// humanWindowHeights are the sliding window scales, in pixels. Windows
// are half as wide as they are tall and advance by a quarter height.
var humanWindowHeights = []int{96, 128, 192}

// HumanDetector scans the frame with a multi-scale sliding window and
// scores each window by how well its edge pixels trace a person-shaped
// silhouette: edges on the elliptical outline raise the score, edges in
// the body interior lower it. Overlapping hits at different scales are
// merged with the same suppression used for model output.
type HumanDetector struct{}

func (HumanDetector) Name() string { return "human" }

func (HumanDetector) Detect(f *imaging.Frame) []Detection {
	if f == nil || f.Empty() {
		log.Printf("human detector: empty frame, skipping")
		return nil
	}

	edges := f.Edges(edgeThreshold)
	width, height := f.Width(), f.Height()

	var candidates []Detection
	for _, winH := range humanWindowHeights {
		if winH > height {
			continue
		}
		winW := winH / 2
		if winW > width {
			continue
		}
		stride := winH / 4

		for y := 0; y+winH <= height; y += stride {
			for x := 0; x+winW <= width; x += stride {
				score := silhouetteScore(edges, x, y, winW, winH)
				if score <= humanMinScore {
					continue
				}
				candidates = append(candidates, Detection{
					Class:      "person",
					Confidence: clampConfidence(math.Min(score, 1.0)),
					Category:   CategoryHuman,
					Box:        BoundingBox{X: x, Y: y, Width: winW, Height: winH},
				})
			}
		}
	}

	return SuppressOverlaps(candidates, DefaultPrimaryConfig().NMSThreshold)
}

// silhouetteScore rates one window against an elliptical outline
// template. Each pixel's normalized elliptical distance from the window
// center decides its role: distances near 1 form the silhouette ring,
// distances well inside form the body core. The score is the ring edge
// density doubled, minus the core edge density as a clutter penalty.
func silhouetteScore(edges [][]bool, x0, y0, winW, winH int) float64 {
	cx := float64(x0) + float64(winW)/2
	cy := float64(y0) + float64(winH)/2
	rx := float64(winW) * humanRadiusX
	ry := float64(winH) * humanRadiusY

	ringHits, ringTotal := 0, 0
	coreHits, coreTotal := 0, 0

	for y := y0; y < y0+winH; y++ {
		for x := x0; x < x0+winW; x++ {
			dx := (float64(x) - cx) / rx
			dy := (float64(y) - cy) / ry
			d := math.Sqrt(dx*dx + dy*dy)

			switch {
			case d >= humanRingInner && d <= humanRingOuter:
				ringTotal++
				if edges[y][x] {
					ringHits++
				}
			case d < humanCoreLimit:
				coreTotal++
				if edges[y][x] {
					coreHits++
				}
			}
		}
	}

	if ringTotal == 0 {
		return 0
	}
	score := 2 * float64(ringHits) / float64(ringTotal)
	if coreTotal > 0 {
		score -= float64(coreHits) / float64(coreTotal)
	}
	return score
}
