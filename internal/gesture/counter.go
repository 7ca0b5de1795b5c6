// Package gesture interprets hand landmarks as game input: a per-frame count
// of extended fingers, and a horizontal wave used to restart a session.
package gesture

import (
	"github.com/ayusman/ganitha/internal/detector"
)

// Finger identifies one of the five fingers, thumb first.
type Finger int

const (
	Thumb Finger = iota
	Index
	Middle
	Ring
	Pinky
)

// NumFingers is the number of fingers on a hand.
const NumFingers = 5

// String returns the lowercase finger name.
func (f Finger) String() string {
	switch f {
	case Thumb:
		return "thumb"
	case Index:
		return "index"
	case Middle:
		return "middle"
	case Ring:
		return "ring"
	case Pinky:
		return "pinky"
	}
	return "unknown"
}

// ThumbRatio is the extension threshold for the thumb: the thumb counts as
// extended when its tip sits more than this factor times the wrist-to-MCP
// distance away from the wrist. The comparison is strict, so a ratio of
// exactly ThumbRatio does not count.
const ThumbRatio = 1.5

// IsExtended reports whether a single finger of the hand is extended.
//
// Index, middle, ring and pinky are extended when the fingertip sits strictly
// above the PIP joint in the upright frame. The thumb folds sideways rather
// than down, so it uses a distance rule instead: extended when its tip lies
// more than ThumbRatio times the wrist-to-thumb-MCP distance from the wrist.
func IsExtended(hand *detector.HandLandmarks, f Finger) bool {
	if hand == nil {
		return false
	}

	var tip, pip int
	switch f {
	case Thumb:
		wrist := hand.Points[detector.Wrist]
		tipDist := detector.Distance(hand.Points[detector.ThumbTip], wrist)
		mcpDist := detector.Distance(hand.Points[detector.ThumbMCP], wrist)
		return tipDist > ThumbRatio*mcpDist
	case Index:
		tip, pip = detector.IndexTip, detector.IndexPIP
	case Middle:
		tip, pip = detector.MiddleTip, detector.MiddlePIP
	case Ring:
		tip, pip = detector.RingTip, detector.RingPIP
	case Pinky:
		tip, pip = detector.PinkyTip, detector.PinkyPIP
	default:
		return false
	}

	return hand.Points[tip].Y > hand.Points[pip].Y
}

// ExtendedFingers returns the per-finger extension flags in finger order
// (thumb first).
func ExtendedFingers(hand *detector.HandLandmarks) [NumFingers]bool {
	var flags [NumFingers]bool
	for f := Thumb; f <= Pinky; f++ {
		flags[f] = IsExtended(hand, f)
	}
	return flags
}

// CountFingers returns how many fingers of the hand are extended, 0 through
// 5. The count is computed fresh from the given landmarks every call; it
// carries no state between frames.
func CountFingers(hand *detector.HandLandmarks) int {
	count := 0
	for _, extended := range ExtendedFingers(hand) {
		if extended {
			count++
		}
	}
	return count
}
