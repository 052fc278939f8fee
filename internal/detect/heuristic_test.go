package detect

import (
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/openfield/scene-analyzer/internal/imaging"
)

// createSceneImage creates a solid background test image
func createSceneImage(width, height int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

// fillRect fills an axis-aligned rectangle with a color
func fillRect(img *image.RGBA, r image.Rectangle, c color.Color) {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.Set(x, y, c)
		}
	}
}

func TestVehicleDetectorFindsSaturatedRectangle(t *testing.T) {
	// A 300x150 saturated region on a neutral background satisfies the
	// area, aspect, size, and color criteria.
	img := createSceneImage(640, 480, color.RGBA{240, 240, 240, 255})
	fillRect(img, image.Rect(200, 100, 500, 250), color.RGBA{200, 20, 20, 255})

	dets := VehicleDetector{}.Detect(imaging.NewFrame(img))
	if len(dets) != 1 {
		t.Fatalf("expected 1 detection, got %d", len(dets))
	}

	d := dets[0]
	if d.Class != "vehicle" || d.Category != CategoryVehicle {
		t.Errorf("unexpected class/category %s/%s", d.Class, d.Category)
	}
	if math.Abs(d.Confidence-0.7) > 0.001 {
		t.Errorf("expected saturated confidence 0.7, got %f", d.Confidence)
	}

	// The box should cover the drawn region, within edge blur tolerance.
	if d.Box.X < 190 || d.Box.X > 210 || d.Box.Y < 90 || d.Box.Y > 110 {
		t.Errorf("box origin (%d,%d) far from (200,100)", d.Box.X, d.Box.Y)
	}
	if d.Box.Width < 280 || d.Box.Width > 320 || d.Box.Height < 135 || d.Box.Height > 165 {
		t.Errorf("box size %dx%d far from 300x150", d.Box.Width, d.Box.Height)
	}
}

func TestVehicleDetectorRejectsUnsaturated(t *testing.T) {
	// Same geometry but a gray region: the saturation gate fails.
	img := createSceneImage(640, 480, color.RGBA{240, 240, 240, 255})
	fillRect(img, image.Rect(200, 100, 500, 250), color.RGBA{60, 60, 60, 255})

	if dets := (VehicleDetector{}).Detect(imaging.NewFrame(img)); len(dets) != 0 {
		t.Errorf("expected no detections for gray region, got %d", len(dets))
	}
}

func TestVehicleDetectorRejectsSquare(t *testing.T) {
	// A square region fails the landscape aspect gate.
	img := createSceneImage(640, 480, color.RGBA{240, 240, 240, 255})
	fillRect(img, image.Rect(200, 100, 400, 300), color.RGBA{200, 20, 20, 255})

	if dets := (VehicleDetector{}).Detect(imaging.NewFrame(img)); len(dets) != 0 {
		t.Errorf("expected no detections for square region, got %d", len(dets))
	}
}

func TestAnimalDetectorFindsTexturedEarthTones(t *testing.T) {
	// A textured blob of two earth tones: in the color band, in the
	// area and aspect windows, with enough luminance variance.
	img := createSceneImage(640, 480, color.RGBA{120, 120, 120, 255})
	for y := 100; y < 180; y++ {
		for x := 200; x < 300; x++ {
			if (x+y)%2 == 0 {
				img.Set(x, y, color.RGBA{150, 100, 50, 255})
			} else {
				img.Set(x, y, color.RGBA{180, 140, 90, 255})
			}
		}
	}

	dets := AnimalDetector{}.Detect(imaging.NewFrame(img))
	if len(dets) != 1 {
		t.Fatalf("expected 1 detection, got %d", len(dets))
	}

	d := dets[0]
	if d.Class != "animal" || d.Category != CategoryAnimal {
		t.Errorf("unexpected class/category %s/%s", d.Class, d.Category)
	}
	if d.Confidence <= 0 || d.Confidence > 0.6 {
		t.Errorf("confidence %f outside (0, 0.6]", d.Confidence)
	}
}

func TestAnimalDetectorRejectsFlatFill(t *testing.T) {
	// A flat single-tone blob has no texture and is rejected.
	img := createSceneImage(640, 480, color.RGBA{120, 120, 120, 255})
	fillRect(img, image.Rect(200, 100, 300, 180), color.RGBA{150, 100, 50, 255})

	if dets := (AnimalDetector{}).Detect(imaging.NewFrame(img)); len(dets) != 0 {
		t.Errorf("expected no detections for flat blob, got %d", len(dets))
	}
}

func TestMachineryDetectorFindsLineGrid(t *testing.T) {
	// A grid of thick straight lines produces well over the minimum
	// segment count, spanning a region larger than 100x100.
	img := createSceneImage(400, 400, color.White)
	for i := 0; i < 8; i++ {
		x := 60 + i*30
		fillRect(img, image.Rect(x, 60, x+3, 330), color.Black)
		y := 60 + i*30
		fillRect(img, image.Rect(60, y, 330, y+3), color.Black)
	}

	dets := MachineryDetector{}.Detect(imaging.NewFrame(img))
	if len(dets) != 1 {
		t.Fatalf("expected 1 detection, got %d", len(dets))
	}

	d := dets[0]
	if d.Class != "machinery" || d.Category != CategoryMachinery {
		t.Errorf("unexpected class/category %s/%s", d.Class, d.Category)
	}
	if d.Box.Width < 100 || d.Box.Height < 100 {
		t.Errorf("box %dx%d smaller than minimum extent", d.Box.Width, d.Box.Height)
	}
	if d.Confidence <= 0.2 || d.Confidence > 0.7 {
		t.Errorf("confidence %f outside (0.2, 0.7]", d.Confidence)
	}
}

func TestMachineryDetectorIgnoresSparseLines(t *testing.T) {
	// Two lines are nowhere near the segment count threshold.
	img := createSceneImage(400, 400, color.White)
	fillRect(img, image.Rect(100, 50, 103, 350), color.Black)
	fillRect(img, image.Rect(50, 100, 350, 103), color.Black)

	if dets := (MachineryDetector{}).Detect(imaging.NewFrame(img)); len(dets) != 0 {
		t.Errorf("expected no detections for sparse lines, got %d", len(dets))
	}
}

func TestHumanDetectorFindsSilhouette(t *testing.T) {
	// An elliptical outline proportioned like a standing person,
	// centered in a 64x128 window.
	img := createSceneImage(128, 128, color.White)
	cx, cy := 64.0, 64.0
	rx, ry := 22.0, 57.0
	for y := 0; y < 128; y++ {
		for x := 0; x < 128; x++ {
			dx := (float64(x) - cx) / rx
			dy := (float64(y) - cy) / ry
			d := math.Sqrt(dx*dx + dy*dy)
			if d >= 0.95 && d <= 1.05 {
				img.Set(x, y, color.Black)
			}
		}
	}

	dets := HumanDetector{}.Detect(imaging.NewFrame(img))
	if len(dets) == 0 {
		t.Fatal("expected at least one detection")
	}
	for _, d := range dets {
		if d.Class != "person" || d.Category != CategoryHuman {
			t.Errorf("unexpected class/category %s/%s", d.Class, d.Category)
		}
		if d.Confidence <= 0.3 || d.Confidence > 1.0 {
			t.Errorf("confidence %f outside (0.3, 1]", d.Confidence)
		}
	}

	// The best detection should overlap the drawn silhouette.
	silhouette := BoundingBox{X: 42, Y: 7, Width: 44, Height: 114}
	if IoU(dets[0].Box, silhouette) < 0.2 {
		t.Errorf("best box %+v does not cover the silhouette", dets[0].Box)
	}
}

func TestHumanDetectorUniformImage(t *testing.T) {
	img := createSceneImage(256, 256, color.RGBA{128, 128, 128, 255})
	if dets := (HumanDetector{}).Detect(imaging.NewFrame(img)); len(dets) != 0 {
		t.Errorf("expected no detections in uniform image, got %d", len(dets))
	}
}

func TestHeuristicsHandleDegenerateFrames(t *testing.T) {
	empty := imaging.NewFrame(image.NewRGBA(image.Rect(0, 0, 0, 0)))
	tiny := imaging.NewFrame(createSceneImage(2, 2, color.White))

	for _, h := range DefaultHeuristics() {
		if dets := h.Detect(empty); len(dets) != 0 {
			t.Errorf("%s returned detections for empty frame", h.Name())
		}
		if dets := h.Detect(tiny); len(dets) != 0 {
			t.Errorf("%s returned detections for 2x2 frame", h.Name())
		}
		if dets := h.Detect(nil); len(dets) != 0 {
			t.Errorf("%s returned detections for nil frame", h.Name())
		}
	}
}

func TestDefaultHeuristicsOrder(t *testing.T) {
	names := []string{"human", "vehicle", "animal", "machinery"}
	hs := DefaultHeuristics()
	if len(hs) != len(names) {
		t.Fatalf("expected %d heuristics, got %d", len(names), len(hs))
	}
	for i, h := range hs {
		if h.Name() != names[i] {
			t.Errorf("heuristic %d = %s, want %s", i, h.Name(), names[i])
		}
	}
}
