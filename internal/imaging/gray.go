package imaging

import "image"

// Plane is a single-channel 8-bit view of an image, stored row-major.
//
// The luminance plane is the basis for brightness statistics, edge maps,
// and the texture-variance checks used by the heuristic detectors.
type Plane struct {
	Width  int
	Height int
	Pix    []uint8
}

// NewGrayPlane converts an image to a luminance plane using ITU-R BT.601
// weights (0.299*R + 0.587*G + 0.114*B), the same formula the rest of
// the pipeline uses for grayscale values.
func NewGrayPlane(img image.Image) *Plane {
	bounds := img.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()

	p := &Plane{Width: w, Height: h, Pix: make([]uint8, w*h)}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			lum := 0.299*float64(r>>8) + 0.587*float64(g>>8) + 0.114*float64(b>>8)
			p.Pix[y*w+x] = uint8(lum)
		}
	}
	return p
}

// At returns the plane value at (x, y). No bounds checking is performed;
// the caller must ensure coordinates are valid.
func (p *Plane) At(x, y int) uint8 {
	return p.Pix[y*p.Width+x]
}

// Mean returns the average value across the whole plane, or 0 for an
// empty plane.
func (p *Plane) Mean() float64 {
	if len(p.Pix) == 0 {
		return 0
	}
	var sum uint64
	for _, v := range p.Pix {
		sum += uint64(v)
	}
	return float64(sum) / float64(len(p.Pix))
}

// Histogram returns the 256-bin value distribution of the plane.
func (p *Plane) Histogram() [256]int {
	var hist [256]int
	for _, v := range p.Pix {
		hist[v]++
	}
	return hist
}

// VarianceIn computes the value variance within a rectangular region,
// clipped to the plane bounds. Returns 0 for a degenerate region.
//
// Used as a texture proxy: fur and skin produce high local variance,
// flat painted surfaces do not.
func (p *Plane) VarianceIn(r image.Rectangle) float64 {
	r = r.Intersect(image.Rect(0, 0, p.Width, p.Height))
	n := r.Dx() * r.Dy()
	if n <= 1 {
		return 0
	}

	var sum float64
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			sum += float64(p.At(x, y))
		}
	}
	mean := sum / float64(n)

	var sq float64
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			d := float64(p.At(x, y)) - mean
			sq += d * d
		}
	}
	return sq / float64(n)
}
