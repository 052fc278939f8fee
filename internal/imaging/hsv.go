package imaging

import (
	"image"

	"github.com/lucasb-eyer/go-colorful"
)

// HSVPlanes holds per-pixel hue/saturation/value channels, row-major.
//
// Hue is in degrees [0, 360); saturation and value are in [0, 1],
// following go-colorful's conventions.
type HSVPlanes struct {
	Width  int
	Height int
	Hue    []float32
	Sat    []float32
	Val    []float32
}

// NewHSVPlanes converts an image to HSV channel planes.
func NewHSVPlanes(img image.Image) *HSVPlanes {
	bounds := img.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()

	p := &HSVPlanes{
		Width:  w,
		Height: h,
		Hue:    make([]float32, w*h),
		Sat:    make([]float32, w*h),
		Val:    make([]float32, w*h),
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			c := colorful.Color{
				R: float64(r>>8) / 255.0,
				G: float64(g>>8) / 255.0,
				B: float64(b>>8) / 255.0,
			}
			hue, sat, val := c.Hsv()
			i := y*w + x
			p.Hue[i] = float32(hue)
			p.Sat[i] = float32(sat)
			p.Val[i] = float32(val)
		}
	}
	return p
}

// SaturationRatio returns the fraction of pixels within the region whose
// saturation exceeds the given level. The region is clipped to the plane
// bounds; a degenerate region yields 0.
func (p *HSVPlanes) SaturationRatio(r image.Rectangle, level float32) float64 {
	r = r.Intersect(image.Rect(0, 0, p.Width, p.Height))
	total := r.Dx() * r.Dy()
	if total <= 0 {
		return 0
	}

	count := 0
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if p.Sat[y*p.Width+x] > level {
				count++
			}
		}
	}
	return float64(count) / float64(total)
}

// HSVBand describes an inclusive hue/saturation/value range used to
// build binary masks (e.g. the earth-tone band for the animal detector).
type HSVBand struct {
	HueMin, HueMax float32 // degrees
	SatMin, SatMax float32
	ValMin, ValMax float32
}

// Mask returns a binary mask of pixels falling inside the band.
func (p *HSVPlanes) Mask(band HSVBand) [][]bool {
	mask := make([][]bool, p.Height)
	for y := 0; y < p.Height; y++ {
		mask[y] = make([]bool, p.Width)
		for x := 0; x < p.Width; x++ {
			i := y*p.Width + x
			if p.Hue[i] >= band.HueMin && p.Hue[i] <= band.HueMax &&
				p.Sat[i] >= band.SatMin && p.Sat[i] <= band.SatMax &&
				p.Val[i] >= band.ValMin && p.Val[i] <= band.ValMax {
				mask[y][x] = true
			}
		}
	}
	return mask
}
