package detect

import "image"

// contourRegion is one connected component of a binary mask together
// with its bounding rectangle.
type contourRegion struct {
	Points []image.Point
	Bounds image.Rectangle
}

// findContours groups connected true pixels of a binary mask into
// external contour regions using 8-connected flood fill. Components
// smaller than 10 pixels are discarded as noise.
func findContours(mask [][]bool) []contourRegion {
	height := len(mask)
	if height == 0 {
		return nil
	}
	width := len(mask[0])

	visited := make([][]bool, height)
	for y := range visited {
		visited[y] = make([]bool, width)
	}

	var regions []contourRegion
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if !mask[y][x] || visited[y][x] {
				continue
			}
			points := floodFill(mask, visited, x, y, width, height)
			if len(points) < 10 {
				continue
			}
			regions = append(regions, contourRegion{
				Points: points,
				Bounds: boundsOf(points),
			})
		}
	}
	return regions
}

// floodFill collects the connected component containing (startX, startY).
// Stack-based rather than recursive so large components cannot overflow
// the goroutine stack.
func floodFill(mask, visited [][]bool, startX, startY, width, height int) []image.Point {
	var points []image.Point
	stack := []image.Point{{X: startX, Y: startY}}

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if p.X < 0 || p.X >= width || p.Y < 0 || p.Y >= height {
			continue
		}
		if visited[p.Y][p.X] || !mask[p.Y][p.X] {
			continue
		}

		visited[p.Y][p.X] = true
		points = append(points, p)

		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				stack = append(stack, image.Point{X: p.X + dx, Y: p.Y + dy})
			}
		}
	}
	return points
}

func boundsOf(points []image.Point) image.Rectangle {
	minX, minY := points[0].X, points[0].Y
	maxX, maxY := minX, minY
	for _, p := range points[1:] {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	return image.Rect(minX, minY, maxX+1, maxY+1)
}
