package model

import (
	"fmt"
	"image"

	"github.com/openfield/scene-analyzer/internal/detect"
)

// PrimaryDetector couples a backend with its label set and decoding
// thresholds, producing finished detections in original image
// coordinates.
type PrimaryDetector struct {
	backend *Backend
	labels  []string
	cfg     detect.PrimaryConfig
}

// NewPrimaryDetector builds a detector over an already resolved backend.
func NewPrimaryDetector(backend *Backend, labels []string, cfg detect.PrimaryConfig) *PrimaryDetector {
	return &PrimaryDetector{backend: backend, labels: labels, cfg: cfg}
}

// Available reports whether the underlying network was loaded.
func (d *PrimaryDetector) Available() bool {
	return d.backend != nil && d.backend.Available()
}

// Detect runs the network on the image and decodes its output.
func (d *PrimaryDetector) Detect(img image.Image) ([]detect.Detection, error) {
	if !d.Available() {
		return nil, fmt.Errorf("model: no network loaded")
	}
	raw, err := d.backend.Infer(img)
	if err != nil {
		return nil, fmt.Errorf("model: inference failed: %w", err)
	}
	b := img.Bounds()
	return detect.DecodePrimary(raw, d.labels, b.Dx(), b.Dy(), d.cfg), nil
}
