package gesture

import (
	"math"
	"testing"
)

func TestDTW_IdenticalPaths(t *testing.T) {
	// Same path should have distance 0
	path := []PathPoint{
		{X: 0, Y: 0, Timestamp: 0},
		{X: 1, Y: 1, Timestamp: 100},
		{X: 2, Y: 2, Timestamp: 200},
	}

	distance := DTWDistance(path, path)

	if distance != 0 {
		t.Errorf("expected distance 0 for identical paths, got %f", distance)
	}
}

func TestDTW_DifferentPaths(t *testing.T) {
	// Different paths should have distance > 0
	path1 := []PathPoint{
		{X: 0, Y: 0, Timestamp: 0},
		{X: 1, Y: 0, Timestamp: 100},
		{X: 2, Y: 0, Timestamp: 200},
	}

	path2 := []PathPoint{
		{X: 0, Y: 2, Timestamp: 0},
		{X: 1, Y: 2, Timestamp: 100},
		{X: 2, Y: 2, Timestamp: 200},
	}

	distance := DTWDistance(path1, path2)

	if distance <= 0 {
		t.Errorf("expected distance > 0 for different paths, got %f", distance)
	}
}

func TestDTW_SpeedInvariant(t *testing.T) {
	// Fast and slow versions of the same trajectory should match closely

	fastPath := []PathPoint{
		{X: 0, Y: 0, Timestamp: 0},
		{X: 1, Y: 0, Timestamp: 50},
		{X: 2, Y: 0, Timestamp: 100},
	}

	slowPath := []PathPoint{
		{X: 0, Y: 0, Timestamp: 0},
		{X: 0.25, Y: 0, Timestamp: 50},
		{X: 0.5, Y: 0, Timestamp: 100},
		{X: 0.75, Y: 0, Timestamp: 150},
		{X: 1, Y: 0, Timestamp: 200},
		{X: 1.25, Y: 0, Timestamp: 250},
		{X: 1.5, Y: 0, Timestamp: 300},
		{X: 1.75, Y: 0, Timestamp: 350},
		{X: 2, Y: 0, Timestamp: 400},
	}

	distance := DTWDistance(fastPath, slowPath)

	if distance > 0.5 {
		t.Errorf("expected low distance for speed-invariant paths, got %f", distance)
	}
}

func TestDTW_EmptyPaths(t *testing.T) {
	// Empty paths should return infinity
	emptyPath := []PathPoint{}
	path := []PathPoint{
		{X: 0, Y: 0, Timestamp: 0},
		{X: 1, Y: 1, Timestamp: 100},
	}

	dist1 := DTWDistance(emptyPath, emptyPath)
	if !math.IsInf(dist1, 1) {
		t.Errorf("expected infinity for empty paths, got %f", dist1)
	}

	dist2 := DTWDistance(emptyPath, path)
	if !math.IsInf(dist2, 1) {
		t.Errorf("expected infinity when first path is empty, got %f", dist2)
	}

	dist3 := DTWDistance(path, emptyPath)
	if !math.IsInf(dist3, 1) {
		t.Errorf("expected infinity when second path is empty, got %f", dist3)
	}
}

func TestPointDistance(t *testing.T) {
	a := PathPoint{X: 0, Y: 0, Timestamp: 0}
	b := PathPoint{X: 3, Y: 4, Timestamp: 100}

	dist := pointDistance(a, b)

	// Should be 5 (3-4-5 triangle)
	expected := 5.0
	if math.Abs(dist-expected) > 0.0001 {
		t.Errorf("expected distance %f, got %f", expected, dist)
	}
}

func TestMin3(t *testing.T) {
	tests := []struct {
		a, b, c  float64
		expected float64
	}{
		{1, 2, 3, 1},
		{2, 1, 3, 1},
		{3, 2, 1, 1},
		{1, 1, 1, 1},
		{-1, 0, 1, -1},
	}

	for _, tt := range tests {
		result := min3(tt.a, tt.b, tt.c)
		if result != tt.expected {
			t.Errorf("min3(%f, %f, %f) = %f, expected %f", tt.a, tt.b, tt.c, result, tt.expected)
		}
	}
}

func TestMax(t *testing.T) {
	tests := []struct {
		a, b     int
		expected int
	}{
		{1, 2, 2},
		{2, 1, 2},
		{1, 1, 1},
		{-1, 0, 0},
		{-2, -1, -1},
	}

	for _, tt := range tests {
		result := max(tt.a, tt.b)
		if result != tt.expected {
			t.Errorf("max(%d, %d) = %d, expected %d", tt.a, tt.b, result, tt.expected)
		}
	}
}

func TestNormalizePath(t *testing.T) {
	// Normalization scales to 0-1 range
	path := []PathPoint{
		{X: 0, Y: 0, Timestamp: 0},
		{X: 50, Y: 100, Timestamp: 50},
		{X: 100, Y: 200, Timestamp: 100},
	}

	normalized := normalizePath(path)

	if len(normalized) != len(path) {
		t.Errorf("expected normalized path length %d, got %d", len(path), len(normalized))
	}

	for i, p := range normalized {
		if p.X < 0 || p.X > 1 {
			t.Errorf("point %d: X=%f is not in 0-1 range", i, p.X)
		}
		if p.Y < 0 || p.Y > 1 {
			t.Errorf("point %d: Y=%f is not in 0-1 range", i, p.Y)
		}
	}

	if normalized[0].X != 0 || normalized[0].Y != 0 {
		t.Errorf("expected first point to be (0, 0), got (%f, %f)", normalized[0].X, normalized[0].Y)
	}
	if normalized[2].X != 1 || normalized[2].Y != 1 {
		t.Errorf("expected last point to be (1, 1), got (%f, %f)", normalized[2].X, normalized[2].Y)
	}
}

func TestNormalizePath_Empty(t *testing.T) {
	normalized := normalizePath(nil)
	if normalized != nil {
		t.Errorf("expected nil for nil input, got %v", normalized)
	}

	normalized = normalizePath([]PathPoint{})
	if len(normalized) != 0 {
		t.Errorf("expected empty slice for empty input, got %v", normalized)
	}
}

func TestNormalizePath_SinglePoint(t *testing.T) {
	path := []PathPoint{
		{X: 50, Y: 100, Timestamp: 0},
	}

	normalized := normalizePath(path)

	if len(normalized) != 1 {
		t.Fatalf("expected 1 point, got %d", len(normalized))
	}

	if normalized[0].X != 0 || normalized[0].Y != 0 {
		t.Errorf("expected (0, 0), got (%f, %f)", normalized[0].X, normalized[0].Y)
	}
}

func TestNormalizePath_PreservesTimestamp(t *testing.T) {
	path := []PathPoint{
		{X: 0, Y: 0, Timestamp: 100},
		{X: 50, Y: 50, Timestamp: 200},
		{X: 100, Y: 100, Timestamp: 300},
	}

	normalized := normalizePath(path)

	for i, p := range normalized {
		if p.Timestamp != path[i].Timestamp {
			t.Errorf("point %d: timestamp %d != original %d", i, p.Timestamp, path[i].Timestamp)
		}
	}
}

func TestResamplePath(t *testing.T) {
	// Resampling a 3-point path to 5 points
	path := []PathPoint{
		{X: 0, Y: 0, Timestamp: 0},
		{X: 1, Y: 1, Timestamp: 100},
		{X: 2, Y: 0, Timestamp: 200},
	}

	result := resamplePath(path, 5)

	if len(result) != 5 {
		t.Fatalf("expected 5 points, got %d", len(result))
	}

	if !floatEqual(result[0].X, 0) || !floatEqual(result[0].Y, 0) {
		t.Errorf("wrong first point: got (%f, %f)", result[0].X, result[0].Y)
	}

	if !floatEqual(result[4].X, 2) || !floatEqual(result[4].Y, 0) {
		t.Errorf("wrong last point: got (%f, %f)", result[4].X, result[4].Y)
	}

	if !floatEqual(result[2].X, 1) || !floatEqual(result[2].Y, 1) {
		t.Errorf("wrong middle point: got (%f, %f)", result[2].X, result[2].Y)
	}
}

func TestResamplePath_SameLength(t *testing.T) {
	path := []PathPoint{
		{X: 0, Y: 0, Timestamp: 0},
		{X: 1, Y: 1, Timestamp: 100},
	}

	result := resamplePath(path, 2)

	if len(result) != 2 {
		t.Fatalf("expected 2 points, got %d", len(result))
	}

	if !floatEqual(result[0].X, 0) || !floatEqual(result[1].X, 1) {
		t.Errorf("unexpected result: start=(%f, %f), end=(%f, %f)",
			result[0].X, result[0].Y, result[1].X, result[1].Y)
	}
}

func TestResamplePath_Empty(t *testing.T) {
	result := resamplePath([]PathPoint{}, 5)
	if result != nil {
		t.Error("expected nil for empty path")
	}
}

func TestResamplePath_SinglePoint(t *testing.T) {
	path := []PathPoint{{X: 1, Y: 2, Timestamp: 100}}

	result := resamplePath(path, 5)

	if len(result) != 1 {
		t.Fatalf("expected 1 point, got %d", len(result))
	}

	if !floatEqual(result[0].X, 1) || !floatEqual(result[0].Y, 2) {
		t.Errorf("unexpected point: (%f, %f)", result[0].X, result[0].Y)
	}
}

// floatEqual checks if two floats are approximately equal.
func floatEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
