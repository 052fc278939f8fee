package imaging

import (
	"image"
	"image/color"
	"testing"
)

// createTestImage creates a solid color test image
func createTestImage(width, height int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestGrayPlaneMeanUniform(t *testing.T) {
	img := createTestImage(64, 64, color.RGBA{200, 200, 200, 255})
	gray := NewGrayPlane(img)

	mean := gray.Mean()
	if mean < 199 || mean > 201 {
		t.Errorf("expected mean near 200, got %f", mean)
	}
}

func TestGrayPlaneHistogram(t *testing.T) {
	img := createTestImage(32, 32, color.RGBA{128, 128, 128, 255})
	hist := NewGrayPlane(img).Histogram()

	total := 0
	for _, n := range hist {
		total += n
	}
	if total != 32*32 {
		t.Errorf("histogram total %d, want %d", total, 32*32)
	}
	if hist[128] != 32*32 {
		t.Errorf("expected all pixels in bin 128, got %d", hist[128])
	}
}

func TestVarianceIn(t *testing.T) {
	flat := createTestImage(32, 32, color.RGBA{100, 100, 100, 255})
	if v := NewGrayPlane(flat).VarianceIn(image.Rect(0, 0, 32, 32)); v != 0 {
		t.Errorf("uniform image variance = %f, want 0", v)
	}

	// Checkerboard of black and white has large variance.
	checker := image.NewRGBA(image.Rect(0, 0, 32, 32))
	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			if (x+y)%2 == 0 {
				checker.Set(x, y, color.White)
			} else {
				checker.Set(x, y, color.Black)
			}
		}
	}
	if v := NewGrayPlane(checker).VarianceIn(image.Rect(0, 0, 32, 32)); v < 10000 {
		t.Errorf("checkerboard variance = %f, want > 10000", v)
	}
}

func TestVarianceInDegenerateRegion(t *testing.T) {
	gray := NewGrayPlane(createTestImage(16, 16, color.White))
	if v := gray.VarianceIn(image.Rect(100, 100, 200, 200)); v != 0 {
		t.Errorf("out of bounds region variance = %f, want 0", v)
	}
}

func TestSaturationRatio(t *testing.T) {
	// Left half saturated red, right half gray.
	img := image.NewRGBA(image.Rect(0, 0, 40, 20))
	for y := 0; y < 20; y++ {
		for x := 0; x < 40; x++ {
			if x < 20 {
				img.Set(x, y, color.RGBA{255, 0, 0, 255})
			} else {
				img.Set(x, y, color.RGBA{120, 120, 120, 255})
			}
		}
	}

	hsv := NewHSVPlanes(img)
	ratio := hsv.SaturationRatio(image.Rect(0, 0, 40, 20), 0.39)
	if ratio < 0.49 || ratio > 0.51 {
		t.Errorf("expected ratio near 0.5, got %f", ratio)
	}

	if r := hsv.SaturationRatio(image.Rect(20, 0, 40, 20), 0.39); r != 0 {
		t.Errorf("gray half ratio = %f, want 0", r)
	}
}

func TestHSVMask(t *testing.T) {
	// One earth-tone pixel among gray ones.
	img := createTestImage(8, 8, color.RGBA{120, 120, 120, 255})
	img.Set(3, 4, color.RGBA{150, 100, 50, 255})

	band := HSVBand{
		HueMin: 10, HueMax: 50,
		SatMin: 0.196, SatMax: 1.0,
		ValMin: 0.196, ValMax: 0.784,
	}
	mask := NewHSVPlanes(img).Mask(band)

	if !mask[4][3] {
		t.Error("earth-tone pixel not in mask")
	}
	if mask[0][0] {
		t.Error("gray pixel should not be in mask")
	}
}

func TestEdgeMapUniform(t *testing.T) {
	img := createTestImage(32, 32, color.RGBA{90, 90, 90, 255})
	edges := EdgeMap(img, 30)

	for y := range edges {
		for x := range edges[y] {
			if edges[y][x] {
				t.Fatalf("unexpected edge at (%d,%d) in uniform image", x, y)
			}
		}
	}
}

func TestEdgeMapStep(t *testing.T) {
	// Vertical black/white boundary at x=16.
	img := image.NewRGBA(image.Rect(0, 0, 32, 32))
	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			if x < 16 {
				img.Set(x, y, color.Black)
			} else {
				img.Set(x, y, color.White)
			}
		}
	}
	edges := EdgeMap(img, 30)

	found := false
	for x := 13; x < 19; x++ {
		if edges[16][x] {
			found = true
		}
	}
	if !found {
		t.Error("no edge found near the boundary")
	}

	// Border pixels are never edges.
	for x := 0; x < 32; x++ {
		if edges[0][x] || edges[31][x] {
			t.Fatal("border pixel marked as edge")
		}
	}
}

func TestFrameEdgeCaching(t *testing.T) {
	f := NewFrame(createTestImage(16, 16, color.White))

	a := f.Edges(30)
	b := f.Edges(30)
	if &a[0] != &b[0] {
		t.Error("expected cached edge map on second call")
	}

	c := f.Edges(60)
	if &a[0] == &c[0] {
		t.Error("different thresholds must not share an edge map")
	}
}

func TestFrameEmpty(t *testing.T) {
	f := NewFrame(image.NewRGBA(image.Rect(0, 0, 0, 0)))
	if !f.Empty() {
		t.Error("zero-size frame should report empty")
	}

	f = NewFrame(createTestImage(4, 4, color.White))
	if f.Empty() {
		t.Error("non-empty frame reported empty")
	}
}
