package gesture

// Wave detection parameters.
const (
	WaveWindowMs   = 1200 // sliding window of wrist motion to consider
	WaveMinPoints  = 8    // minimum samples before matching is attempted
	WaveMinWidth   = 0.25 // minimum horizontal travel in frame units
	WaveTolerance  = 0.15 // maximum DTW distance to the wave template
	WaveCooldownMs = 1500 // quiet period after a detection
)

// waveTemplate and its mirror describe a canonical three-sweep horizontal
// wave (right, left, right again) in normalized coordinates. Input windows
// are reduced to their X profile before matching, so the vertical wobble of
// a real wave is ignored.
var (
	waveTemplate       = buildWaveTemplate(false)
	waveTemplateMirror = buildWaveTemplate(true)
)

func buildWaveTemplate(mirror bool) []PathPoint {
	xs := []float64{0, 0.25, 0.5, 0.75, 1, 0.75, 0.5, 0.25, 0, 0.25, 0.5, 0.75, 1}
	tpl := make([]PathPoint, len(xs))
	for i, x := range xs {
		if mirror {
			x = 1 - x
		}
		tpl[i] = PathPoint{X: x, Timestamp: int64(i) * 100}
	}
	return tpl
}

// WaveDetector recognizes a horizontal wave from a stream of wrist
// positions. It keeps a sliding window of recent points and reports a
// detection when the window travels far enough sideways and its X profile
// matches the three-sweep template under DTW. Counting poses are stationary,
// so they never clear the travel gate.
type WaveDetector struct {
	path     []PathPoint
	lastFire int64
}

// NewWaveDetector creates a WaveDetector with an empty window.
func NewWaveDetector() *WaveDetector {
	return &WaveDetector{}
}

// Observe records a wrist position seen at the given time in milliseconds
// and drops window entries older than WaveWindowMs.
func (w *WaveDetector) Observe(x, y float64, nowMs int64) {
	w.path = append(w.path, PathPoint{X: x, Y: y, Timestamp: nowMs})

	cutoff := nowMs - WaveWindowMs
	start := 0
	for start < len(w.path) && w.path[start].Timestamp < cutoff {
		start++
	}
	if start > 0 {
		w.path = append(w.path[:0], w.path[start:]...)
	}
}

// Detected reports whether the current window holds a wave. A detection
// clears the window and starts the cooldown.
func (w *WaveDetector) Detected(nowMs int64) bool {
	if w.lastFire > 0 && nowMs-w.lastFire < WaveCooldownMs {
		return false
	}
	if len(w.path) < WaveMinPoints {
		return false
	}

	minX, maxX := w.path[0].X, w.path[0].X
	for _, p := range w.path {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
	}
	if maxX-minX < WaveMinWidth {
		return false
	}

	// Match on the X profile only, resampled to template length so the
	// tolerance behaves the same at idle and active frame rates.
	flat := make([]PathPoint, len(w.path))
	for i, p := range w.path {
		flat[i] = PathPoint{X: p.X, Timestamp: p.Timestamp}
	}
	flat = normalizePath(resamplePath(flat, len(waveTemplate)))

	dist := DTWDistance(flat, waveTemplate)
	if mirrored := DTWDistance(flat, waveTemplateMirror); mirrored < dist {
		dist = mirrored
	}
	if dist > WaveTolerance {
		return false
	}

	w.lastFire = nowMs
	w.path = w.path[:0]
	return true
}

// Reset clears the window, for example when the hand leaves the frame.
func (w *WaveDetector) Reset() {
	w.path = w.path[:0]
}
