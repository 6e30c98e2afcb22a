// Package emotion classifies facial expressions from face mesh geometry,
// with a brightness heuristic over the face region when no usable mesh is
// available.
package emotion

import (
	"math"

	"github.com/ayusman/abhinaya/internal/detector"
	"github.com/ayusman/abhinaya/internal/feature"
)

// Label identifies a recognized facial emotion.
type Label string

const (
	Angry    Label = "angry"
	Disgust  Label = "disgust"
	Fear     Label = "fear"
	Happy    Label = "happy"
	Neutral  Label = "neutral"
	Sad      Label = "sad"
	Surprise Label = "surprise"
)

// Result is a classified emotion with its confidence in [0, 1].
type Result struct {
	Label      Label   `json:"label"`
	Confidence float64 `json:"confidence"`
}

// Feature defaults substituted when a computation is not possible: ratios
// default to zero, eye openness to the half-open midpoint.
const (
	defaultRatio       = 0.0
	defaultEyeOpenness = 0.5
)

// Classify derives an emotion from a complete face mesh by evaluating a
// threshold cascade over the five geometric features. The first matching
// rule wins. A face without a usable mesh degrades to low-confidence
// neutral; callers with frame access should prefer ClassifyRegion for
// those.
func Classify(face *detector.FaceLandmarks) Result {
	if !face.Complete() {
		return Result{Label: Neutral, Confidence: 0.5}
	}

	smile := feature.SmileRatio(face).Or(defaultRatio)
	brow := feature.BrowRaise(face).Or(defaultRatio)
	eye := feature.EyeOpenness(face).Or(defaultEyeOpenness)
	mouth := feature.MouthOpenness(face).Or(defaultRatio)
	jaw := feature.JawDrop(face).Or(defaultRatio)

	switch {
	case smile > 0.15:
		if mouth > 0.25 {
			// Big smile with open mouth
			return Result{Label: Happy, Confidence: math.Min(0.8+smile, 0.95)}
		}
		// Gentle smile
		return Result{Label: Happy, Confidence: math.Min(0.7+smile, 0.90)}

	case mouth > 0.35 && eye > 0.8:
		return Result{Label: Surprise, Confidence: 0.85}

	case brow > 0.6 && smile < 0.1:
		return Result{Label: Angry, Confidence: 0.80}

	case brow > 0.3 && smile < 0.05 && eye < 0.6:
		return Result{Label: Sad, Confidence: 0.75}

	case jaw > 0.4 && brow > 0.4:
		return Result{Label: Fear, Confidence: 0.70}

	case mouth < 0.15 && eye > 0.4 && eye < 0.8:
		return Result{Label: Neutral, Confidence: 0.85}

	default:
		return Result{Label: Neutral, Confidence: 0.60}
	}
}
