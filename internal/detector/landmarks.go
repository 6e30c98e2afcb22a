// Package detector provides landmark detection interfaces and types for
// human analysis: hand joints, face meshes, and body pose.
package detector

import (
	"image"
	"math"
)

// Hand landmark indices following MediaPipe convention.
// See: https://developers.google.com/mediapipe/solutions/vision/hand_landmarker
const (
	Wrist            = 0
	ThumbCMC         = 1
	ThumbMCP         = 2
	ThumbIP          = 3
	ThumbTip         = 4
	IndexMCP         = 5
	IndexPIP         = 6
	IndexDIP         = 7
	IndexTip         = 8
	MiddleMCP        = 9
	MiddlePIP        = 10
	MiddleDIP        = 11
	MiddleTip        = 12
	RingMCP          = 13
	RingPIP          = 14
	RingDIP          = 15
	RingTip          = 16
	PinkyMCP         = 17
	PinkyPIP         = 18
	PinkyDIP         = 19
	PinkyTip         = 20
	NumHandLandmarks = 21
)

// Face mesh landmark indices following the MediaPipe face mesh convention.
// Only the points the feature extractor reads are named here.
const (
	NoseTip          = 1
	Forehead         = 10
	UpperLipInner    = 13
	LowerLipInner    = 14
	BrowOuterL       = 55
	MouthCornerL     = 61
	BrowInnerL       = 65
	EyeInnerL        = 133
	EyeBottomL       = 145
	Chin             = 152
	EyeTopL          = 159
	FaceEdgeL        = 234
	EyeOuterL        = 33
	EyeOuterR        = 263
	BrowOuterR       = 285
	MouthCornerR     = 291
	BrowInnerR       = 295
	EyeInnerR        = 362
	EyeBottomR       = 374
	EyeTopR          = 386
	FaceEdgeR        = 454
	NumFaceLandmarks = 468
)

// Landmark is a single detected anatomical point in pixel space.
// Visibility is 1.0 for point kinds that carry no visibility estimate.
type Landmark struct {
	ID         int     `json:"id"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Z          float64 `json:"z"`
	Visibility float64 `json:"visibility"`
}

// HandLandmarks represents the hand landmarks detected for one hand. A
// usable hand carries exactly NumHandLandmarks points; anything else is
// unclassifiable and callers must treat it as such.
type HandLandmarks struct {
	Points     []Landmark `json:"points"`
	Handedness string     `json:"handedness"` // "Left" or "Right"
	Score      float64    `json:"score"`
}

// FaceLandmarks represents a detected face mesh together with its derived
// bounding box. A complete mesh has at least NumFaceLandmarks points; shorter
// meshes are kept so callers can fall back to region-based analysis.
type FaceLandmarks struct {
	Points []Landmark      `json:"points"`
	BBox   image.Rectangle `json:"bbox"`
	Score  float64         `json:"score"`
}

// Point returns the landmark at index i and whether it exists.
func (f *FaceLandmarks) Point(i int) (Landmark, bool) {
	if f == nil || i < 0 || i >= len(f.Points) {
		return Landmark{}, false
	}
	return f.Points[i], true
}

// Complete reports whether the mesh carries enough points for geometric
// feature extraction.
func (f *FaceLandmarks) Complete() bool {
	return f != nil && len(f.Points) >= NumFaceLandmarks
}

// Observation is everything the detector saw in a single frame. Entities are
// enumerated in detector order; no identity is tracked across frames.
type Observation struct {
	Faces []FaceLandmarks `json:"faces"`
	Hands []HandLandmarks `json:"hands"`
	Pose  []Landmark      `json:"pose"`
}

// Distance2D calculates the Euclidean distance between two landmarks over
// the (x, y) image-plane projection.
func Distance2D(a, b Landmark) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// boundingBox derives the axis-aligned bounding box over a set of points.
func boundingBox(points []Landmark) image.Rectangle {
	if len(points) == 0 {
		return image.Rectangle{}
	}

	minX, maxX := points[0].X, points[0].X
	minY, maxY := points[0].Y, points[0].Y
	for _, p := range points {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}

	return image.Rect(int(minX), int(minY), int(math.Ceil(maxX)), int(math.Ceil(maxY)))
}
