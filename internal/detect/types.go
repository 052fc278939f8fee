package detect

import (
	"encoding/json"
	"fmt"
	"image"
)

// BoundingBox is an axis-aligned box in pixel coordinates with a
// top-left origin. Width and height are never negative.
//
// On the wire the box is a 4-element array [x, y, width, height].
type BoundingBox struct {
	X      int
	Y      int
	Width  int
	Height int
}

// MarshalJSON encodes the box as [x, y, width, height].
func (b BoundingBox) MarshalJSON() ([]byte, error) {
	return json.Marshal([4]int{b.X, b.Y, b.Width, b.Height})
}

// UnmarshalJSON decodes a [x, y, width, height] array.
func (b *BoundingBox) UnmarshalJSON(data []byte) error {
	var arr [4]int
	if err := json.Unmarshal(data, &arr); err != nil {
		return fmt.Errorf("bounding box must be [x,y,w,h]: %w", err)
	}
	b.X, b.Y, b.Width, b.Height = arr[0], arr[1], arr[2], arr[3]
	return nil
}

// Rect returns the box as an image.Rectangle.
func (b BoundingBox) Rect() image.Rectangle {
	return image.Rect(b.X, b.Y, b.X+b.Width, b.Y+b.Height)
}

// Area returns the box area in square pixels.
func (b BoundingBox) Area() int {
	return b.Width * b.Height
}

// BoxFromRect converts an image.Rectangle to a BoundingBox.
func BoxFromRect(r image.Rectangle) BoundingBox {
	return BoundingBox{X: r.Min.X, Y: r.Min.Y, Width: r.Dx(), Height: r.Dy()}
}

// Detection is one detected object. It is created by exactly one
// detector, is immutable once created, and is discarded with the result
// that aggregates it; nothing persists across frames.
type Detection struct {
	Class      string      `json:"class"`
	Confidence float64     `json:"confidence"`
	Category   string      `json:"category"`
	Box        BoundingBox `json:"bbox"`
}

// IoU computes the intersection-over-union of two boxes, the overlap
// metric used by non-maximum suppression. Returns 0 when the boxes do
// not intersect or when the union is degenerate.
func IoU(a, b BoundingBox) float64 {
	inter := a.Rect().Intersect(b.Rect())
	if inter.Empty() {
		return 0
	}
	interArea := float64(inter.Dx() * inter.Dy())
	union := float64(a.Area()+b.Area()) - interArea
	if union <= 0 {
		return 0
	}
	return interArea / union
}

// clampConfidence keeps a detector score inside the documented [0,1]
// range.
func clampConfidence(c float64) float64 {
	if c < 0 {
		return 0
	}
	if c > 1 {
		return 1
	}
	return c
}
