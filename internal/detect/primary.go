package detect

import "sort"

// PrimaryConfig holds the thresholds for decoding model output.
type PrimaryConfig struct {
	// ConfidenceThreshold is the minimum class score an anchor must
	// reach to produce a detection.
	ConfidenceThreshold float64

	// NMSThreshold is the IoU above which a lower-confidence box is
	// suppressed by a higher-confidence one.
	NMSThreshold float64
}

// DefaultPrimaryConfig returns the standard decoding thresholds.
func DefaultPrimaryConfig() PrimaryConfig {
	return PrimaryConfig{
		ConfidenceThreshold: 0.5,
		NMSThreshold:        0.4,
	}
}

// DecodePrimary converts raw model output into filtered, non-overlapping
// detections.
//
// Each raw row is one anchor: [centerX, centerY, width, height,
// objectness, class scores...], with coordinates normalized to [0,1].
// The class with the maximum score wins the anchor; anchors whose
// winning score does not exceed the confidence threshold are dropped.
// Surviving boxes are converted to absolute top-left pixel coordinates
// and run through greedy non-maximum suppression.
func DecodePrimary(raw [][]float32, labels []string, imgWidth, imgHeight int, cfg PrimaryConfig) []Detection {
	candidates := make([]Detection, 0)

	for _, row := range raw {
		if len(row) < 6 {
			continue
		}
		scores := row[5:]
		classID, score := argmax(scores)
		if float64(score) <= cfg.ConfidenceThreshold {
			continue
		}

		centerX := float64(row[0]) * float64(imgWidth)
		centerY := float64(row[1]) * float64(imgHeight)
		w := float64(row[2]) * float64(imgWidth)
		h := float64(row[3]) * float64(imgHeight)

		class := "unknown"
		if classID < len(labels) {
			class = labels[classID]
		}

		candidates = append(candidates, Detection{
			Class:      class,
			Confidence: clampConfidence(float64(score)),
			Category:   Categorize(class),
			Box: BoundingBox{
				X:      int(centerX - w/2),
				Y:      int(centerY - h/2),
				Width:  int(w),
				Height: int(h),
			},
		})
	}

	return SuppressOverlaps(candidates, cfg.NMSThreshold)
}

// SuppressOverlaps performs greedy non-maximum suppression.
//
// Candidates are sorted by confidence descending with a stable sort, so
// equal confidences keep their original order and the earlier box wins.
// The highest remaining box is accepted, then every unaccepted box whose
// IoU with it exceeds the threshold is discarded; repeat until no
// candidates remain. Running the function on its own output returns the
// same set.
func SuppressOverlaps(dets []Detection, iouThreshold float64) []Detection {
	if len(dets) == 0 {
		return dets
	}

	ordered := make([]Detection, len(dets))
	copy(ordered, dets)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Confidence > ordered[j].Confidence
	})

	kept := make([]Detection, 0, len(ordered))
	suppressed := make([]bool, len(ordered))

	for i := range ordered {
		if suppressed[i] {
			continue
		}
		kept = append(kept, ordered[i])
		for j := i + 1; j < len(ordered); j++ {
			if suppressed[j] {
				continue
			}
			if IoU(ordered[i].Box, ordered[j].Box) > iouThreshold {
				suppressed[j] = true
			}
		}
	}
	return kept
}

func argmax(scores []float32) (int, float32) {
	best, bestScore := 0, scores[0]
	for i, s := range scores {
		if s > bestScore {
			bestScore = s
			best = i
		}
	}
	return best, bestScore
}
