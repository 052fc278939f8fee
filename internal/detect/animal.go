package detect

import (
	"log"
	"math"

	"github.com/openfield/scene-analyzer/internal/imaging"
)

// Animal detection thresholds. Candidate regions are connected blobs of
// earth-tone pixels with a body-like shape and enough texture (fur, hide)
// to rule out flat painted surfaces.
const (
	animalMinArea       = 2000
	animalMaxArea       = 50000
	animalMinAspect     = 0.5
	animalMaxAspect     = 3.0
	animalMinVariance   = 100.0
	animalMaxConfidence = 0.6
	animalVarScale      = 1000.0
	animalAreaScale     = 100000.0
)

// earthToneBand is the hue/saturation/value range covering the browns
// and tans of common mammals.
var earthToneBand = imaging.HSVBand{
	HueMin: 10, HueMax: 50,
	SatMin: 0.196, SatMax: 1.0,
	ValMin: 0.196, ValMax: 0.784,
}

// AnimalDetector finds animal-colored textured blobs in the frame.
type AnimalDetector struct{}

func (AnimalDetector) Name() string { return "animal" }

func (AnimalDetector) Detect(f *imaging.Frame) []Detection {
	if f == nil || f.Empty() {
		log.Printf("animal detector: empty frame, skipping")
		return nil
	}

	var dets []Detection
	for _, region := range findContours(f.HSV.Mask(earthToneBand)) {
		b := region.Bounds
		w, h := b.Dx(), b.Dy()
		area := w * h
		if area <= animalMinArea || area >= animalMaxArea {
			continue
		}
		aspect := float64(w) / float64(h)
		if aspect <= animalMinAspect || aspect >= animalMaxAspect {
			continue
		}
		variance := f.Gray.VarianceIn(b)
		if variance <= animalMinVariance {
			continue
		}

		conf := math.Min(animalMaxConfidence, variance/animalVarScale+float64(area)/animalAreaScale)
		dets = append(dets, Detection{
			Class:      "animal",
			Confidence: clampConfidence(conf),
			Category:   CategoryAnimal,
			Box:        BoxFromRect(b),
		})
	}
	return dets
}
