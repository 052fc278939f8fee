package detect

import (
	"log"
	"math"

	"github.com/openfield/scene-analyzer/internal/imaging"
)

// Vehicle detection thresholds. A vehicle region is a large edge
// component with a landscape aspect ratio and enough saturated paint.
const (
	vehicleMinArea       = 5000
	vehicleMinWidth      = 100
	vehicleMinHeight     = 50
	vehicleMinAspect     = 1.2
	vehicleMaxAspect     = 4.0
	vehicleSatLevel      = 0.39 // ~100 on an 8-bit saturation channel
	vehicleMinSatRatio   = 0.30
	vehicleMaxConfidence = 0.7
	vehicleAreaScale     = 50000.0
)

// VehicleDetector finds car-sized colored regions: it groups edge pixels
// into connected components and keeps the ones shaped and painted like a
// road vehicle.
type VehicleDetector struct{}

func (VehicleDetector) Name() string { return "vehicle" }

func (VehicleDetector) Detect(f *imaging.Frame) []Detection {
	if f == nil || f.Empty() {
		log.Printf("vehicle detector: empty frame, skipping")
		return nil
	}

	var dets []Detection
	for _, region := range findContours(f.Edges(edgeThreshold)) {
		b := region.Bounds
		w, h := b.Dx(), b.Dy()
		area := w * h
		if area <= vehicleMinArea {
			continue
		}
		if w <= vehicleMinWidth || h <= vehicleMinHeight {
			continue
		}
		aspect := float64(w) / float64(h)
		if aspect <= vehicleMinAspect || aspect >= vehicleMaxAspect {
			continue
		}
		if f.HSV.SaturationRatio(b, vehicleSatLevel) <= vehicleMinSatRatio {
			continue
		}

		conf := math.Min(vehicleMaxConfidence, float64(area)/vehicleAreaScale)
		dets = append(dets, Detection{
			Class:      "vehicle",
			Confidence: clampConfidence(conf),
			Category:   CategoryVehicle,
			Box:        BoxFromRect(b),
		})
	}
	return dets
}
