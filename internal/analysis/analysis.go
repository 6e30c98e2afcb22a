// Package analysis runs the per-frame classification pass: it turns one
// detector observation into stabilized emotion and gesture labels.
package analysis

import (
	"gocv.io/x/gocv"

	"github.com/ayusman/abhinaya/internal/detector"
	"github.com/ayusman/abhinaya/internal/emotion"
	"github.com/ayusman/abhinaya/internal/gesture"
	"github.com/ayusman/abhinaya/internal/smooth"
)

// StreamResult is a stabilized classification for one stream, together
// with the raw single-frame result that produced it.
type StreamResult struct {
	Stream        int     `json:"stream"`
	Label         string  `json:"label"`
	Confidence    float64 `json:"confidence"`
	RawLabel      string  `json:"raw_label"`
	RawConfidence float64 `json:"raw_confidence"`
}

// FrameResult is everything the analyzer derived from a single frame.
// Emotion is nil when no face was observed.
type FrameResult struct {
	Emotion      *StreamResult  `json:"emotion,omitempty"`
	Gestures     []StreamResult `json:"gestures"`
	PoseDetected bool           `json:"pose_detected"`
}

// Analyzer classifies observations frame by frame, smoothing each stream
// over its recent history. It is not safe for concurrent use; the capture
// pipeline calls it from a single goroutine.
type Analyzer struct {
	smoother *smooth.Smoother
}

func New() *Analyzer {
	return &Analyzer{smoother: smooth.NewSmoother()}
}

// Analyze classifies one frame's observation. The primary face drives the
// emotion stream; each hand drives its own gesture stream in enumeration
// order. The frame is only consulted for the region-brightness fallback
// when the face mesh is unusable, so a nil frame is acceptable.
func (a *Analyzer) Analyze(frame *gocv.Mat, obs detector.Observation) FrameResult {
	result := FrameResult{PoseDetected: len(obs.Pose) > 0}

	if len(obs.Faces) > 0 {
		face := &obs.Faces[0]

		var raw emotion.Result
		if face.Complete() {
			raw = emotion.Classify(face)
		} else {
			raw = emotion.ClassifyRegion(frame, face.BBox)
		}

		history := a.smoother.Emotion()
		history.Push(smooth.Entry{Label: string(raw.Label), Confidence: raw.Confidence})
		stable := history.Smoothed()

		result.Emotion = &StreamResult{
			Label:         stable.Label,
			Confidence:    stable.Confidence,
			RawLabel:      string(raw.Label),
			RawConfidence: raw.Confidence,
		}
	}

	for i := range obs.Hands {
		raw := gesture.Recognize(&obs.Hands[i])

		history := a.smoother.Gesture(i)
		history.Push(smooth.Entry{Label: string(raw.Label), Confidence: raw.Confidence})
		stable := history.Smoothed()

		result.Gestures = append(result.Gestures, StreamResult{
			Stream:        i,
			Label:         stable.Label,
			Confidence:    stable.Confidence,
			RawLabel:      string(raw.Label),
			RawConfidence: raw.Confidence,
		})
	}

	return result
}
