package detector

import (
	"gocv.io/x/gocv"
)

// MockDetector is a test implementation of the Detector interface.
// It allows tests to control the detection results.
type MockDetector struct {
	obs Observation
	err error
}

// NewMockDetector creates a new MockDetector instance.
func NewMockDetector() *MockDetector {
	return &MockDetector{}
}

// SetObservation sets the observation that will be returned by Detect.
func (m *MockDetector) SetObservation(obs Observation) {
	m.obs = obs
}

// SetError sets the error that will be returned by Detect.
func (m *MockDetector) SetError(err error) {
	m.err = err
}

// Detect returns the pre-configured observation or error.
func (m *MockDetector) Detect(frame *gocv.Mat) (Observation, error) {
	if m.err != nil {
		return Observation{}, m.err
	}
	return m.obs, nil
}

// Close is a no-op for the mock detector.
func (m *MockDetector) Close() error {
	return nil
}

// FistLandmarks returns a preset HandLandmarks representing a closed fist
// in pixel space: all fingertips curled below their MCP joints and the
// thumb tucked against the hand.
func FistLandmarks() HandLandmarks {
	hand := handSkeleton()

	// Fingertips curled below the knuckles (higher Y values)
	hand.Points[IndexTip] = Landmark{ID: IndexTip, X: 612, Y: 455}
	hand.Points[MiddleTip] = Landmark{ID: MiddleTip, X: 640, Y: 450}
	hand.Points[RingTip] = Landmark{ID: RingTip, X: 668, Y: 455}
	hand.Points[PinkyTip] = Landmark{ID: PinkyTip, X: 698, Y: 462}

	// Thumb tucked: tip not past the IP joint
	hand.Points[ThumbTip] = Landmark{ID: ThumbTip, X: 566, Y: 470}

	return hand
}

// OpenHandLandmarks returns a preset HandLandmarks representing an open
// palm: all four fingers raised well above their MCP joints and the thumb
// extended to the side.
func OpenHandLandmarks() HandLandmarks {
	hand := handSkeleton()

	// Fingertips raised well above the knuckles (lower Y values)
	hand.Points[IndexTip] = Landmark{ID: IndexTip, X: 606, Y: 335}
	hand.Points[MiddleTip] = Landmark{ID: MiddleTip, X: 640, Y: 325}
	hand.Points[RingTip] = Landmark{ID: RingTip, X: 672, Y: 335}
	hand.Points[PinkyTip] = Landmark{ID: PinkyTip, X: 702, Y: 355}

	// Thumb extended past the IP joint
	hand.Points[ThumbTip] = Landmark{ID: ThumbTip, X: 532, Y: 455}

	return hand
}

// VictoryLandmarks returns a preset HandLandmarks representing a V sign:
// index and middle fingers raised and separated, ring and pinky curled.
func VictoryLandmarks() HandLandmarks {
	hand := handSkeleton()

	hand.Points[IndexTip] = Landmark{ID: IndexTip, X: 598, Y: 330}
	hand.Points[MiddleTip] = Landmark{ID: MiddleTip, X: 648, Y: 325}
	hand.Points[RingTip] = Landmark{ID: RingTip, X: 668, Y: 455}
	hand.Points[PinkyTip] = Landmark{ID: PinkyTip, X: 698, Y: 462}
	hand.Points[ThumbTip] = Landmark{ID: ThumbTip, X: 566, Y: 470}

	return hand
}

// handSkeleton returns a right hand with wrist, knuckle, and thumb joint
// positions filled in for a 1280x720 frame. Fingertips are left at the
// knuckle positions; fixtures place them per pose.
func handSkeleton() HandLandmarks {
	hand := HandLandmarks{
		Points:     make([]Landmark, NumHandLandmarks),
		Handedness: "Right",
		Score:      0.95,
	}

	hand.Points[Wrist] = Landmark{ID: Wrist, X: 640, Y: 520}

	hand.Points[ThumbCMC] = Landmark{ID: ThumbCMC, X: 600, Y: 500}
	hand.Points[ThumbMCP] = Landmark{ID: ThumbMCP, X: 580, Y: 482}
	hand.Points[ThumbIP] = Landmark{ID: ThumbIP, X: 562, Y: 466}

	hand.Points[IndexMCP] = Landmark{ID: IndexMCP, X: 610, Y: 432}
	hand.Points[IndexPIP] = Landmark{ID: IndexPIP, X: 608, Y: 400}
	hand.Points[IndexDIP] = Landmark{ID: IndexDIP, X: 607, Y: 372}

	hand.Points[MiddleMCP] = Landmark{ID: MiddleMCP, X: 640, Y: 426}
	hand.Points[MiddlePIP] = Landmark{ID: MiddlePIP, X: 640, Y: 392}
	hand.Points[MiddleDIP] = Landmark{ID: MiddleDIP, X: 640, Y: 362}

	hand.Points[RingMCP] = Landmark{ID: RingMCP, X: 670, Y: 432}
	hand.Points[RingPIP] = Landmark{ID: RingPIP, X: 671, Y: 400}
	hand.Points[RingDIP] = Landmark{ID: RingDIP, X: 672, Y: 372}

	hand.Points[PinkyMCP] = Landmark{ID: PinkyMCP, X: 700, Y: 442}
	hand.Points[PinkyPIP] = Landmark{ID: PinkyPIP, X: 701, Y: 416}
	hand.Points[PinkyDIP] = Landmark{ID: PinkyDIP, X: 702, Y: 394}

	// Fingertips default to curled positions near the palm
	hand.Points[IndexTip] = Landmark{ID: IndexTip, X: 612, Y: 455}
	hand.Points[MiddleTip] = Landmark{ID: MiddleTip, X: 640, Y: 450}
	hand.Points[RingTip] = Landmark{ID: RingTip, X: 668, Y: 455}
	hand.Points[PinkyTip] = Landmark{ID: PinkyTip, X: 698, Y: 462}
	hand.Points[ThumbTip] = Landmark{ID: ThumbTip, X: 566, Y: 470}

	return hand
}
