package gesture

import (
	"testing"
)

// waveXs traces the canonical three-sweep wave scaled into frame
// coordinates, the way a wrist would actually travel.
var waveXs = []float64{
	0.2, 0.35, 0.5, 0.65, 0.8,
	0.65, 0.5, 0.35, 0.2,
	0.35, 0.5, 0.65, 0.8,
}

// feedWave observes one full wave starting at startMs and returns the
// timestamp of the final sample.
func feedWave(w *WaveDetector, startMs int64) int64 {
	now := startMs
	for _, x := range waveXs {
		w.Observe(x, 0.5, now)
		now += 80
	}
	return now - 80
}

func TestWaveDetector_DetectsWave(t *testing.T) {
	w := NewWaveDetector()

	end := feedWave(w, 0)

	if !w.Detected(end) {
		t.Fatal("expected a three-sweep wave to be detected")
	}

	// Detection clears the window, so an immediate re-check is quiet.
	if w.Detected(end) {
		t.Error("expected no detection immediately after firing")
	}
}

func TestWaveDetector_DetectsMirroredWave(t *testing.T) {
	w := NewWaveDetector()

	now := int64(0)
	for _, x := range waveXs {
		w.Observe(1-x, 0.5, now)
		now += 80
	}

	if !w.Detected(now - 80) {
		t.Error("expected a wave starting from the right to be detected")
	}
}

func TestWaveDetector_IgnoresVerticalWobble(t *testing.T) {
	w := NewWaveDetector()

	// Same X profile, messy Y: still a wave.
	now := int64(0)
	for i, x := range waveXs {
		w.Observe(x, 0.3+0.05*float64(i%4), now)
		now += 80
	}

	if !w.Detected(now - 80) {
		t.Error("expected vertical wobble to be ignored")
	}
}

func TestWaveDetector_IgnoresStationaryHand(t *testing.T) {
	w := NewWaveDetector()

	// A counting pose held still: tiny jitter, no sideways travel.
	now := int64(0)
	for i := 0; i < 15; i++ {
		jitter := 0.004 * float64(i%2)
		w.Observe(0.5+jitter, 0.4, now)
		now += 66
	}

	if w.Detected(now - 66) {
		t.Error("stationary hand should never read as a wave")
	}
}

func TestWaveDetector_IgnoresSingleSwipe(t *testing.T) {
	w := NewWaveDetector()

	now := int64(0)
	for i := 0; i < 13; i++ {
		w.Observe(0.2+0.6*float64(i)/12, 0.5, now)
		now += 80
	}

	if w.Detected(now - 80) {
		t.Error("a single sideways swipe should not read as a wave")
	}
}

func TestWaveDetector_IgnoresTwoSweeps(t *testing.T) {
	w := NewWaveDetector()

	xs := []float64{0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.7, 0.6, 0.5, 0.4, 0.3, 0.2}
	now := int64(0)
	for _, x := range xs {
		w.Observe(x, 0.5, now)
		now += 80
	}

	if w.Detected(now - 80) {
		t.Error("out and back is two sweeps, a wave needs three")
	}
}

func TestWaveDetector_RequiresMinimumPoints(t *testing.T) {
	w := NewWaveDetector()

	w.Observe(0.2, 0.5, 0)
	w.Observe(0.8, 0.5, 80)
	w.Observe(0.2, 0.5, 160)
	w.Observe(0.8, 0.5, 240)

	if w.Detected(240) {
		t.Error("expected no detection below the minimum sample count")
	}
}

func TestWaveDetector_Cooldown(t *testing.T) {
	w := NewWaveDetector()

	end := feedWave(w, 0)
	if !w.Detected(end) {
		t.Fatal("expected first wave to be detected")
	}

	// A second wave inside the cooldown window stays quiet.
	end = feedWave(w, end+100)
	if w.Detected(end) {
		t.Error("expected cooldown to suppress a back-to-back wave")
	}

	// Well past the cooldown a fresh wave fires again.
	end = feedWave(w, end+WaveCooldownMs+100)
	if !w.Detected(end) {
		t.Error("expected detection after the cooldown expired")
	}
}

func TestWaveDetector_PrunesOldSamples(t *testing.T) {
	w := NewWaveDetector()

	// Wide travel early on, then a long stationary stretch. The early
	// samples age out of the window, so no wave remains.
	w.Observe(0.1, 0.5, 0)
	w.Observe(0.9, 0.5, 100)
	w.Observe(0.1, 0.5, 200)
	w.Observe(0.9, 0.5, 300)

	now := int64(2000)
	for i := 0; i < 10; i++ {
		w.Observe(0.5, 0.5, now)
		now += 100
	}

	if w.Detected(now - 100) {
		t.Error("expected aged-out samples to be ignored")
	}
}

func TestWaveDetector_Reset(t *testing.T) {
	w := NewWaveDetector()

	end := feedWave(w, 0)
	w.Reset()

	if w.Detected(end) {
		t.Error("expected no detection after reset")
	}
}
