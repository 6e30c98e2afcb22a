package feature

import (
	"math"

	"github.com/ayusman/abhinaya/internal/detector"
)

// Normalization constants. The minimum face dimension guards division by a
// degenerate denominator; the neutral/max mouth ratios anchor the smile
// rescaling; the fallback dimension stands in when the edge points are
// missing entirely.
const (
	minFaceDimension      = 50.0
	fallbackFaceDimension = 100.0
	neutralMouthRatio     = 0.4
	maxMouthRatio         = 0.6
)

// FaceWidth returns the horizontal distance between the face edge points,
// floored at the minimum dimension.
func FaceWidth(face *detector.FaceLandmarks) Value {
	left, okL := face.Point(detector.FaceEdgeL)
	right, okR := face.Point(detector.FaceEdgeR)
	if !okL || !okR {
		return NotComputable()
	}
	return Computed(math.Max(math.Abs(right.X-left.X), minFaceDimension))
}

// FaceHeight returns the vertical distance between chin and forehead,
// floored at the minimum dimension.
func FaceHeight(face *detector.FaceLandmarks) Value {
	chin, okC := face.Point(detector.Chin)
	forehead, okF := face.Point(detector.Forehead)
	if !okC || !okF {
		return NotComputable()
	}
	return Computed(math.Max(math.Abs(chin.Y-forehead.Y), minFaceDimension))
}

// SmileRatio measures smile intensity from mouth width. The mouth-to-face
// width ratio is rescaled linearly between the neutral ratio (0.4) and the
// assumed maximum (0.6), clipped to [0, 1].
func SmileRatio(face *detector.FaceLandmarks) Value {
	left, okL := face.Point(detector.MouthCornerL)
	right, okR := face.Point(detector.MouthCornerR)
	if !okL || !okR {
		return NotComputable()
	}

	mouthWidth := math.Abs(right.X - left.X)
	faceWidth := FaceWidth(face).Or(fallbackFaceDimension)

	currentRatio := mouthWidth / faceWidth
	intensity := math.Max(0, (currentRatio-neutralMouthRatio)/(maxMouthRatio-neutralMouthRatio))

	return Computed(math.Min(intensity, 1.0))
}

// BrowRaise measures brow tension as the average vertical gap between the
// inner brow points and the corresponding eye-top points, normalized by a
// tenth of the face height and clipped to 1.
func BrowRaise(face *detector.FaceLandmarks) Value {
	browL, okBL := face.Point(detector.BrowInnerL)
	browR, okBR := face.Point(detector.BrowInnerR)
	eyeL, okEL := face.Point(detector.EyeTopL)
	eyeR, okER := face.Point(detector.EyeTopR)
	if !okBL || !okBR || !okEL || !okER {
		return NotComputable()
	}

	leftGap := math.Abs(browL.Y - eyeL.Y)
	rightGap := math.Abs(browR.Y - eyeR.Y)
	faceHeight := FaceHeight(face).Or(fallbackFaceDimension)

	ratio := (leftGap + rightGap) / (faceHeight * 0.1)

	return Computed(math.Min(ratio, 1.0))
}

// EyeOpenness measures how open the eyes are: for each eye the vertical
// opening is divided by the horizontal eye width, the two ratios averaged,
// scaled by 3 for sensitivity, and clipped to 1.
func EyeOpenness(face *detector.FaceLandmarks) Value {
	topL, ok1 := face.Point(detector.EyeTopL)
	bottomL, ok2 := face.Point(detector.EyeBottomL)
	topR, ok3 := face.Point(detector.EyeTopR)
	bottomR, ok4 := face.Point(detector.EyeBottomR)
	outerL, ok5 := face.Point(detector.EyeOuterL)
	innerL, ok6 := face.Point(detector.EyeInnerL)
	innerR, ok7 := face.Point(detector.EyeInnerR)
	outerR, ok8 := face.Point(detector.EyeOuterR)
	if !ok1 || !ok2 || !ok3 || !ok4 || !ok5 || !ok6 || !ok7 || !ok8 {
		return NotComputable()
	}

	widthL := math.Abs(innerL.X - outerL.X)
	widthR := math.Abs(outerR.X - innerR.X)
	if widthL == 0 || widthR == 0 {
		return NotComputable()
	}

	ratioL := math.Abs(topL.Y-bottomL.Y) / widthL
	ratioR := math.Abs(topR.Y-bottomR.Y) / widthR
	avg := (ratioL + ratioR) / 2

	return Computed(math.Min(avg*3, 1.0))
}

// MouthOpenness measures the vertical gap between the inner lips,
// normalized by 8% of the face height and clipped to 1.
func MouthOpenness(face *detector.FaceLandmarks) Value {
	upper, okU := face.Point(detector.UpperLipInner)
	lower, okL := face.Point(detector.LowerLipInner)
	if !okU || !okL {
		return NotComputable()
	}

	openness := math.Abs(upper.Y - lower.Y)
	faceHeight := FaceHeight(face).Or(fallbackFaceDimension)

	return Computed(math.Min(openness/(faceHeight*0.08), 1.0))
}

// JawDrop measures the chin-to-nose-tip vertical gap, normalized by half
// the face height and clipped to 1.
func JawDrop(face *detector.FaceLandmarks) Value {
	chin, okC := face.Point(detector.Chin)
	nose, okN := face.Point(detector.NoseTip)
	if !okC || !okN {
		return NotComputable()
	}

	drop := math.Abs(chin.Y - nose.Y)
	faceHeight := FaceHeight(face).Or(fallbackFaceDimension)

	return Computed(math.Min(drop/(faceHeight*0.5), 1.0))
}
