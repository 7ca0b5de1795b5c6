package detector

import (
	"gocv.io/x/gocv"
)

// MockDetector is a test implementation of the Detector interface.
// It allows tests to control the detection results.
type MockDetector struct {
	hands []HandLandmarks
	err   error
}

// NewMockDetector creates a new MockDetector instance.
func NewMockDetector() *MockDetector {
	return &MockDetector{}
}

// SetHands sets the hands that will be returned by Detect.
func (m *MockDetector) SetHands(hands []HandLandmarks) {
	m.hands = hands
}

// SetError sets the error that will be returned by Detect.
func (m *MockDetector) SetError(err error) {
	m.err = err
}

// Detect returns the pre-configured hands or error.
func (m *MockDetector) Detect(frame *gocv.Mat) ([]HandLandmarks, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.hands, nil
}

// Close is a no-op for the mock detector.
func (m *MockDetector) Close() error {
	return nil
}

// FistLandmarks returns a preset HandLandmarks with all fingers curled.
func FistLandmarks() HandLandmarks {
	return CountLandmarks(0)
}

// OpenPalmLandmarks returns a preset HandLandmarks with all five fingers
// extended.
func OpenPalmLandmarks() HandLandmarks {
	return CountLandmarks(5)
}

// CountLandmarks returns a preset HandLandmarks showing n extended fingers,
// for n in [0,5]. Fingers extend in counting order: index, middle, ring,
// pinky, then thumb. Values outside [0,5] are clamped.
//
// All fixture poses are authored in the upright frame (Y grows upward) with
// the wrist near the bottom and fingertips pointing up.
func CountLandmarks(n int) HandLandmarks {
	if n < 0 {
		n = 0
	}
	if n > 5 {
		n = 5
	}

	lm := HandLandmarks{
		Handedness: "Right",
		Score:      0.95,
	}
	lm.Points[Wrist] = Point3D{X: 0.50, Y: 0.20, Z: 0.0}

	// Thumb tucked across the palm, tip close to the wrist.
	lm.Points[ThumbCMC] = Point3D{X: 0.55, Y: 0.24, Z: 0.02}
	lm.Points[ThumbMCP] = Point3D{X: 0.58, Y: 0.27, Z: 0.03}
	lm.Points[ThumbIP] = Point3D{X: 0.57, Y: 0.31, Z: 0.02}
	lm.Points[ThumbTip] = Point3D{X: 0.55, Y: 0.33, Z: 0.01}

	fingers := [4]struct {
		mcp  int
		x, y float64
	}{
		{IndexMCP, 0.56, 0.34},
		{MiddleMCP, 0.50, 0.36},
		{RingMCP, 0.44, 0.34},
		{PinkyMCP, 0.38, 0.30},
	}

	for i, f := range fingers {
		if i < n {
			// Extended: straight up, tip well above the PIP joint.
			lm.Points[f.mcp] = Point3D{X: f.x, Y: f.y, Z: 0.0}
			lm.Points[f.mcp+1] = Point3D{X: f.x + 0.01, Y: f.y + 0.12, Z: 0.0}
			lm.Points[f.mcp+2] = Point3D{X: f.x + 0.02, Y: f.y + 0.21, Z: 0.0}
			lm.Points[f.mcp+3] = Point3D{X: f.x + 0.02, Y: f.y + 0.30, Z: 0.0}
		} else {
			// Curled: tip folded back below the PIP joint.
			lm.Points[f.mcp] = Point3D{X: f.x, Y: f.y, Z: 0.0}
			lm.Points[f.mcp+1] = Point3D{X: f.x, Y: f.y + 0.06, Z: -0.03}
			lm.Points[f.mcp+2] = Point3D{X: f.x - 0.02, Y: f.y + 0.02, Z: -0.05}
			lm.Points[f.mcp+3] = Point3D{X: f.x - 0.04, Y: f.y - 0.02, Z: -0.03}
		}
	}

	if n == 5 {
		// Thumb swung out from the palm, tip far from the wrist.
		lm.Points[ThumbCMC] = Point3D{X: 0.56, Y: 0.24, Z: 0.02}
		lm.Points[ThumbMCP] = Point3D{X: 0.60, Y: 0.28, Z: 0.03}
		lm.Points[ThumbIP] = Point3D{X: 0.66, Y: 0.35, Z: 0.03}
		lm.Points[ThumbTip] = Point3D{X: 0.72, Y: 0.42, Z: 0.03}
	}

	return lm
}

// ThumbsUpLandmarks returns a preset HandLandmarks representing a thumbs up
// gesture. The thumb is extended upward while other fingers are curled, so
// the pose reads as a count of one.
func ThumbsUpLandmarks() HandLandmarks {
	lm := CountLandmarks(0)

	lm.Points[ThumbCMC] = Point3D{X: 0.54, Y: 0.26, Z: 0.02}
	lm.Points[ThumbMCP] = Point3D{X: 0.56, Y: 0.32, Z: 0.02}
	lm.Points[ThumbIP] = Point3D{X: 0.57, Y: 0.43, Z: 0.02}
	lm.Points[ThumbTip] = Point3D{X: 0.58, Y: 0.53, Z: 0.02}

	return lm
}
