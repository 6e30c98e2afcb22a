// Package gesture classifies a single hand pose into a discrete gesture
// label using an ordered rule table over finger extension states.
package gesture

import (
	"github.com/ayusman/abhinaya/internal/detector"
	"github.com/ayusman/abhinaya/internal/feature"
)

// Label identifies a recognized hand gesture.
type Label string

const (
	Fist         Label = "fist"
	OpenHand     Label = "open_hand"
	Victory      Label = "victory"
	Pointing     Label = "pointing"
	ThumbsUp     Label = "thumbs_up"
	ThumbsDown   Label = "thumbs_down"
	ThreeFingers Label = "three_fingers"
	FourFingers  Label = "four_fingers"
	OK           Label = "ok"
	Rock         Label = "rock"
	Pinch        Label = "pinch"
	Unknown      Label = "unknown"
)

// Result is a classified gesture with its confidence in [0, 1].
type Result struct {
	Label      Label   `json:"label"`
	Confidence float64 `json:"confidence"`
}

// Distance thresholds in pixel units for the contact gestures.
const (
	victoryMinSeparation = 20.0
	okMaxDistance        = 25.0
	pinchMinDistance     = 10.0
	pinchMaxDistance     = 35.0
	thumbsDownWristDrop  = 50.0
)

// Recognize classifies a hand pose. Rules are evaluated in priority order
// and the first match wins; a hand with the wrong number of landmarks is
// unclassifiable.
//
// Stateless: the same landmarks always yield the same result.
func Recognize(hand *detector.HandLandmarks) Result {
	if hand == nil || len(hand.Points) != detector.NumHandLandmarks {
		return Result{Label: Unknown, Confidence: 0.0}
	}

	fingers := feature.Fingers(hand)
	count := fingers.Count()

	thumbTip := hand.Points[detector.ThumbTip]
	indexTip := hand.Points[detector.IndexTip]
	middleTip := hand.Points[detector.MiddleTip]
	wrist := hand.Points[detector.Wrist]

	switch {
	// Fist: nothing extended, thumb included
	case !fingers.Thumb && count == 0:
		return Result{Label: Fist, Confidence: 0.95}

	// Open hand: everything extended
	case fingers.Thumb && count == 4:
		return Result{Label: OpenHand, Confidence: 0.92}

	// Victory: only index and middle, clearly separated
	case fingers.Index && fingers.Middle && !fingers.Ring && !fingers.Pinky &&
		detector.Distance2D(indexTip, middleTip) > victoryMinSeparation:
		return Result{Label: Victory, Confidence: 0.93}

	// Pointing: only index
	case fingers.Index && !fingers.Middle && !fingers.Ring && !fingers.Pinky:
		return Result{Label: Pointing, Confidence: 0.90}

	// Thumbs up: only thumb
	case fingers.Thumb && count == 0:
		return Result{Label: ThumbsUp, Confidence: 0.94}

	// Thumbs down: this branch is shadowed by the thumbs-up guard above and
	// can never fire. It is kept to mirror the recorded rule table.
	// TODO: disambiguate up/down by the thumb tip's vertical offset from
	// the wrist instead of sharing the thumbs-up guard.
	case fingers.Thumb && count == 0 && thumbTip.Y > wrist.Y+thumbsDownWristDrop:
		return Result{Label: ThumbsDown, Confidence: 0.94}

	// Three fingers: index, middle, ring
	case fingers.Index && fingers.Middle && fingers.Ring && !fingers.Pinky:
		return Result{Label: ThreeFingers, Confidence: 0.88}

	// Four fingers: everything but the thumb
	case !fingers.Thumb && count == 4:
		return Result{Label: FourFingers, Confidence: 0.86}

	// OK: thumb and index tips touching
	case detector.Distance2D(thumbTip, indexTip) < okMaxDistance:
		return Result{Label: OK, Confidence: 0.89}

	// Rock: thumb and pinky only
	case fingers.Thumb && fingers.Pinky && !fingers.Index && !fingers.Middle && !fingers.Ring:
		return Result{Label: Rock, Confidence: 0.87}

	// Pinch: thumb and index close but not touching
	case pinchBetween(detector.Distance2D(thumbTip, indexTip)):
		return Result{Label: Pinch, Confidence: 0.85}

	default:
		return Result{Label: Unknown, Confidence: 0.30}
	}
}

func pinchBetween(d float64) bool {
	return d > pinchMinDistance && d < pinchMaxDistance
}
