package analyze

import "github.com/openfield/scene-analyzer/internal/imaging"

// Scene classification thresholds on the luminance plane. A frame is
// daytime when it is bright overall, or moderately bright with the
// histogram mass clearly in the upper half.
const (
	dayMeanThreshold  = 80.0
	duskMeanThreshold = 50.0
	brightDominance   = 1.5
)

// IsDay classifies a frame as day or night from its luminance
// statistics alone. The decision is deterministic for a given image.
func IsDay(gray *imaging.Plane) bool {
	mean := gray.Mean()
	if mean > dayMeanThreshold {
		return true
	}
	if mean <= duskMeanThreshold {
		return false
	}

	hist := gray.Histogram()
	var dark, bright int
	for i := 0; i < 128; i++ {
		dark += hist[i]
	}
	for i := 128; i < 256; i++ {
		bright += hist[i]
	}
	return float64(bright) > brightDominance*float64(dark)
}
