// Package imaging provides the pixel-level primitives shared by the
// analysis pipeline: image loading, grayscale and HSV planes, brightness
// statistics, and gradient edge maps.
//
// All derived buffers (planes, masks, edge maps) are owned copies scoped
// to the Frame that created them; the source image.Image is never mutated.
package imaging
