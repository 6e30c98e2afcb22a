package feature

import "github.com/ayusman/abhinaya/internal/detector"

// Extension thresholds in pixel units. A fingertip must clear its MCP joint
// vertically by the finger threshold to count as extended; the thumb tip
// must clear its IP joint horizontally by the thumb threshold.
const (
	fingerExtendThreshold = 10.0
	thumbExtendThreshold  = 5.0
)

// FingerState captures which fingers of a hand are extended.
type FingerState struct {
	Thumb  bool
	Index  bool
	Middle bool
	Ring   bool
	Pinky  bool
}

// Count returns how many of the four non-thumb fingers are extended.
func (s FingerState) Count() int {
	count := 0
	for _, extended := range [4]bool{s.Index, s.Middle, s.Ring, s.Pinky} {
		if extended {
			count++
		}
	}
	return count
}

// Fingers analyzes which fingers are extended. A non-thumb finger is
// extended when its tip sits above its MCP joint (lower Y) by the finger
// threshold. The thumb is extended when its tip sits past its IP joint on
// the side away from the palm; the detector's handedness label decides
// which side that is, with unlabeled hands treated as right hands.
func Fingers(hand *detector.HandLandmarks) FingerState {
	if hand == nil || len(hand.Points) != detector.NumHandLandmarks {
		return FingerState{}
	}

	points := hand.Points

	return FingerState{
		Thumb:  thumbExtended(hand),
		Index:  points[detector.IndexTip].Y < points[detector.IndexMCP].Y-fingerExtendThreshold,
		Middle: points[detector.MiddleTip].Y < points[detector.MiddleMCP].Y-fingerExtendThreshold,
		Ring:   points[detector.RingTip].Y < points[detector.RingMCP].Y-fingerExtendThreshold,
		Pinky:  points[detector.PinkyTip].Y < points[detector.PinkyMCP].Y-fingerExtendThreshold,
	}
}

func thumbExtended(hand *detector.HandLandmarks) bool {
	tip := hand.Points[detector.ThumbTip]
	ip := hand.Points[detector.ThumbIP]

	if hand.Handedness == "Left" {
		return tip.X > ip.X+thumbExtendThreshold
	}
	return tip.X < ip.X-thumbExtendThreshold
}
