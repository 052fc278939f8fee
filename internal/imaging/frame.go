package imaging

import "image"

// Frame bundles a source image with the derived views the detectors
// share: the luminance plane, the HSV planes, and lazily computed edge
// maps keyed by gradient threshold.
//
// A Frame and everything it derives live for exactly one analysis call;
// nothing is cached across frames. The source image is read-only.
type Frame struct {
	Img  image.Image
	Gray *Plane
	HSV  *HSVPlanes

	edges map[float64][][]bool
}

// NewFrame builds the derived planes for an image.
func NewFrame(img image.Image) *Frame {
	return &Frame{
		Img:   img,
		Gray:  NewGrayPlane(img),
		HSV:   NewHSVPlanes(img),
		edges: make(map[float64][][]bool),
	}
}

// Width returns the frame width in pixels.
func (f *Frame) Width() int { return f.Gray.Width }

// Height returns the frame height in pixels.
func (f *Frame) Height() int { return f.Gray.Height }

// Empty reports whether the frame has no pixels to analyze.
func (f *Frame) Empty() bool { return f.Width() == 0 || f.Height() == 0 }

// Edges returns the binary edge map for the given gradient threshold,
// computing it on first use and reusing it for the rest of the frame's
// lifetime.
func (f *Frame) Edges(threshold float64) [][]bool {
	if m, ok := f.edges[threshold]; ok {
		return m
	}
	m := EdgeMap(f.Img, threshold)
	f.edges[threshold] = m
	return m
}
