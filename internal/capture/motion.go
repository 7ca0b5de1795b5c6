package capture

import (
	"image"
	"sync"

	"gocv.io/x/gocv"
)

// Frame differencing parameters. Frames are blurred before comparison so
// sensor noise does not read as motion, and a pixel only counts as changed
// when its brightness moves by more than pixelDelta.
const (
	blurKernel = 21
	pixelDelta = 25
)

// MotionDetector reports how much of the scene changed between consecutive
// frames. The game loop uses it to wake from the idle frame rate when a
// player steps in front of the camera, so it favors cheap full-frame
// differencing over anything that tracks individual objects.
type MotionDetector struct {
	mu           sync.Mutex
	thresholdPct float64
	baseline     gocv.Mat
	primed       bool
}

// NewMotionDetector creates a MotionDetector that reports motion once more
// than thresholdPct percent of the pixels change between frames.
func NewMotionDetector(thresholdPct float64) *MotionDetector {
	return &MotionDetector{
		thresholdPct: thresholdPct,
		baseline:     gocv.NewMat(),
	}
}

// Detect compares the frame against the previous one and reports whether
// the changed area exceeds the threshold, along with the changed percentage.
// The first frame after construction or Close only primes the baseline and
// never reports motion.
func (m *MotionDetector) Detect(frame *gocv.Mat) (bool, float64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if frame == nil || frame.Empty() {
		return false, 0
	}

	cur := flattenFrame(frame)

	if !m.primed {
		m.baseline.Close()
		m.baseline = cur
		m.primed = true
		return false, 0
	}

	diff := gocv.NewMat()
	defer diff.Close()
	gocv.AbsDiff(cur, m.baseline, &diff)

	mask := gocv.NewMat()
	defer mask.Close()
	gocv.Threshold(diff, &mask, pixelDelta, 255, gocv.ThresholdBinary)

	changedPct := float64(gocv.CountNonZero(mask)) / float64(mask.Rows()*mask.Cols()) * 100.0

	m.baseline.Close()
	m.baseline = cur

	return changedPct > m.thresholdPct, changedPct
}

// flattenFrame reduces a frame to blurred grayscale. The caller owns the
// returned Mat.
func flattenFrame(frame *gocv.Mat) gocv.Mat {
	gray := gocv.NewMat()
	if frame.Channels() > 1 {
		gocv.CvtColor(*frame, &gray, gocv.ColorBGRToGray)
	} else {
		frame.CopyTo(&gray)
	}

	blurred := gocv.NewMat()
	gocv.GaussianBlur(gray, &blurred, image.Pt(blurKernel, blurKernel), 0, 0, gocv.BorderDefault)
	gray.Close()
	return blurred
}

// Close releases the baseline frame. The detector stays usable; the next
// Detect call primes a fresh baseline.
func (m *MotionDetector) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.baseline.Close()
	m.baseline = gocv.NewMat()
	m.primed = false
}
