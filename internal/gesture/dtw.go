package gesture

import (
	"math"
)

// PathPoint represents a point in a motion path.
type PathPoint struct {
	X         float64 // X coordinate
	Y         float64 // Y coordinate
	Timestamp int64   // Timestamp in milliseconds
}

// DTWDistance calculates Dynamic Time Warping distance between two paths.
// Returns infinity if either path is empty.
// The distance is normalized by the maximum path length.
func DTWDistance(path1, path2 []PathPoint) float64 {
	n := len(path1)
	m := len(path2)

	if n == 0 || m == 0 {
		return math.Inf(1)
	}

	// (n+1) x (m+1) cost matrix initialized to infinity
	dtw := make([][]float64, n+1)
	for i := range dtw {
		dtw[i] = make([]float64, m+1)
		for j := range dtw[i] {
			dtw[i][j] = math.Inf(1)
		}
	}

	dtw[0][0] = 0

	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			// Cost is the distance between current points plus minimum of three neighbors
			cost := pointDistance(path1[i-1], path2[j-1])
			dtw[i][j] = cost + min3(dtw[i-1][j], dtw[i][j-1], dtw[i-1][j-1])
		}
	}

	return dtw[n][m] / float64(max(n, m))
}

// pointDistance calculates the Euclidean distance between two PathPoints.
func pointDistance(a, b PathPoint) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// min3 returns the minimum of three float64 values.
func min3(a, b, c float64) float64 {
	if a <= b && a <= c {
		return a
	}
	if b <= c {
		return b
	}
	return c
}

// max returns the maximum of two int values.
func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// normalizePath scales the path coordinates to the 0-1 range.
// Timestamps are preserved.
func normalizePath(path []PathPoint) []PathPoint {
	if path == nil {
		return nil
	}

	n := len(path)
	if n == 0 {
		return []PathPoint{}
	}

	if n == 1 {
		return []PathPoint{
			{X: 0, Y: 0, Timestamp: path[0].Timestamp},
		}
	}

	minX, maxX := path[0].X, path[0].X
	minY, maxY := path[0].Y, path[0].Y

	for _, p := range path {
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

	rangeX := maxX - minX
	rangeY := maxY - minY

	normalized := make([]PathPoint, n)
	for i, p := range path {
		var normX, normY float64

		if rangeX > 0 {
			normX = (p.X - minX) / rangeX
		}
		if rangeY > 0 {
			normY = (p.Y - minY) / rangeY
		}

		normalized[i] = PathPoint{
			X:         normX,
			Y:         normY,
			Timestamp: p.Timestamp,
		}
	}

	return normalized
}

// resamplePath resamples a path to have exactly targetLength points.
// Uses linear interpolation for smooth resampling.
func resamplePath(path []PathPoint, targetLength int) []PathPoint {
	if len(path) == 0 {
		return nil
	}

	if len(path) == 1 || targetLength <= 1 {
		return []PathPoint{path[0]}
	}

	result := make([]PathPoint, targetLength)

	for i := 0; i < targetLength; i++ {
		// Map index i to a position in the original path
		t := float64(i) / float64(targetLength-1)
		pos := t * float64(len(path)-1)

		idx := int(pos)
		if idx >= len(path)-1 {
			idx = len(path) - 2
		}

		frac := pos - float64(idx)

		p1 := path[idx]
		p2 := path[idx+1]

		result[i] = PathPoint{
			X:         p1.X + frac*(p2.X-p1.X),
			Y:         p1.Y + frac*(p2.Y-p1.Y),
			Timestamp: p1.Timestamp + int64(frac*float64(p2.Timestamp-p1.Timestamp)),
		}
	}

	return result
}
