package imaging

import (
	"image"
	"math"

	"github.com/anthonynsimon/bild/blur"
)

// blurSigma is the Gaussian radius applied before gradient computation
// to keep sensor noise out of the edge maps.
const blurSigma = 1.0

// EdgeMap computes a binary edge map of an image.
//
// The image is first smoothed with a Gaussian blur, then pixels whose
// horizontal or vertical luminance gradient exceeds the threshold are
// marked as edges. Border pixels are never edges.
//
// Typical thresholds: 30 for general structure, 60 for only the strong
// edges of manufactured surfaces.
func EdgeMap(img image.Image, threshold float64) [][]bool {
	blurred := blur.Gaussian(img, blurSigma)
	gray := NewGrayPlane(blurred)
	return gradientEdges(gray, threshold)
}

// gradientEdges marks pixels whose gradient against the right or lower
// neighbor exceeds the threshold.
func gradientEdges(gray *Plane, threshold float64) [][]bool {
	w := gray.Width
	h := gray.Height

	edges := make([][]bool, h)
	for y := 0; y < h; y++ {
		edges[y] = make([]bool, w)
		for x := 0; x < w; x++ {
			if x == 0 || y == 0 || x == w-1 || y == h-1 {
				continue
			}
			c := float64(gray.At(x, y))
			dx := math.Abs(c - float64(gray.At(x+1, y)))
			dy := math.Abs(c - float64(gray.At(x, y+1)))
			if dx > threshold || dy > threshold {
				edges[y][x] = true
			}
		}
	}
	return edges
}
