package detect

import (
	"image"
	"math"
	"sort"
)

// segment is one straight line segment found in an edge map.
type segment struct {
	Start image.Point
	End   image.Point
}

// maxSegments bounds the Hough peak scan; beyond this count the
// machinery confidence formula is saturated anyway.
const maxSegments = 200

// extractSegments finds straight line segments in a binary edge map
// using a Hough transform: edge pixels vote in (rho, theta) space,
// local maxima above a vote threshold become candidate lines, and the
// actual segment endpoints are recovered by collecting the edge pixels
// lying on each candidate line.
//
// Segments shorter than minLength pixels are discarded.
func extractSegments(edges [][]bool, minLength int) []segment {
	height := len(edges)
	if height == 0 {
		return nil
	}
	width := len(edges[0])
	if width == 0 {
		return nil
	}

	maxDist := int(math.Sqrt(float64(width*width + height*height)))
	const numAngles = 180
	accumulator := make([][]int, maxDist*2)
	for i := range accumulator {
		accumulator[i] = make([]int, numAngles)
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if !edges[y][x] {
				continue
			}
			for theta := 0; theta < numAngles; theta++ {
				angle := float64(theta) * math.Pi / 180.0
				rho := float64(x)*math.Cos(angle) + float64(y)*math.Sin(angle)
				rhoIdx := int(rho) + maxDist
				if rhoIdx >= 0 && rhoIdx < maxDist*2 {
					accumulator[rhoIdx][theta]++
				}
			}
		}
	}

	type peak struct {
		rho   int
		theta int
		votes int
	}
	var peaks []peak
	threshold := minLength / 2

	for rhoIdx := 0; rhoIdx < maxDist*2; rhoIdx++ {
		for theta := 0; theta < numAngles; theta++ {
			votes := accumulator[rhoIdx][theta]
			if votes < threshold {
				continue
			}
			isMax := true
			for dr := -2; dr <= 2 && isMax; dr++ {
				for dt := -2; dt <= 2 && isMax; dt++ {
					if dr == 0 && dt == 0 {
						continue
					}
					nr := rhoIdx + dr
					nt := (theta + dt + numAngles) % numAngles
					if nr >= 0 && nr < maxDist*2 && accumulator[nr][nt] > votes {
						isMax = false
					}
				}
			}
			if isMax {
				peaks = append(peaks, peak{rho: rhoIdx - maxDist, theta: theta, votes: votes})
			}
		}
	}

	sort.Slice(peaks, func(i, j int) bool {
		return peaks[i].votes > peaks[j].votes
	})

	var segments []segment
	for _, p := range peaks {
		if len(segments) >= maxSegments {
			break
		}

		angle := float64(p.theta) * math.Pi / 180.0
		cosA := math.Cos(angle)
		sinA := math.Sin(angle)
		rho := float64(p.rho)

		// Recover endpoints from the edge pixels within tolerance of
		// the line.
		first := true
		var start, end image.Point
		minProj := math.MaxFloat64
		maxProj := -math.MaxFloat64
		onLine := 0

		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				if !edges[y][x] {
					continue
				}
				dist := math.Abs(float64(x)*cosA + float64(y)*sinA - rho)
				if dist >= 2.0 {
					continue
				}
				onLine++
				first = false
				// Project onto the line direction to find the extremes.
				proj := float64(x)*-sinA + float64(y)*cosA
				if proj < minProj {
					minProj = proj
					start = image.Point{X: x, Y: y}
				}
				if proj > maxProj {
					maxProj = proj
					end = image.Point{X: x, Y: y}
				}
			}
		}

		if first || onLine < minLength {
			continue
		}

		dx := float64(end.X - start.X)
		dy := float64(end.Y - start.Y)
		if math.Sqrt(dx*dx+dy*dy) < float64(minLength) {
			continue
		}

		segments = append(segments, segment{Start: start, End: end})
	}
	return segments
}
