// Package testdata builds synthetic face meshes with known geometry so
// classifier tests can dial in exact feature values without real camera
// frames.
package testdata

import (
	"image"

	"github.com/ayusman/abhinaya/internal/detector"
)

// Canonical face geometry for a 1280x720 frame: a 300px-wide, 400px-tall
// face centered at x=550 with eyes at y=400 and mouth at y=500. The
// FaceMetrics fields are mapped back onto this geometry so the feature
// extractor reproduces them exactly (while each stays below its clip point).
const (
	faceLeft    = 400.0
	faceRight   = 700.0
	faceTop     = 200.0
	faceBottom  = 600.0
	faceCenterX = 550.0
	eyeRowY     = 400.0
	mouthRowY   = 500.0
	eyeWidth    = 60.0
)

// FaceMetrics holds the target feature values for a synthetic mesh.
type FaceMetrics struct {
	Smile float64 // smile ratio, 0..1
	Mouth float64 // mouth openness, 0..1
	Eye   float64 // eye openness, 0..1
	Brow  float64 // brow raise, 0..1
	Jaw   float64 // jaw drop, 0..1
}

// NeutralMetrics returns metrics for a relaxed face: no smile, closed
// mouth, mid eye openness, low brow tension.
func NeutralMetrics() FaceMetrics {
	return FaceMetrics{Smile: 0, Mouth: 0.0625, Eye: 0.5, Brow: 0.25, Jaw: 0.9}
}

// FaceMesh builds a complete 468-point face mesh whose extracted features
// match the given metrics.
func FaceMesh(m FaceMetrics) detector.FaceLandmarks {
	points := make([]detector.Landmark, detector.NumFaceLandmarks)

	// Spread filler points across the face region so the derived bounding
	// box and any unnamed index stay plausible.
	for i := range points {
		col := float64(i % 26)
		row := float64(i / 26)
		points[i] = detector.Landmark{
			ID:         i,
			X:          faceLeft + col*(faceRight-faceLeft)/25,
			Y:          faceTop + row*(faceBottom-faceTop)/18,
			Visibility: 1.0,
		}
	}

	set := func(idx int, x, y float64) {
		points[idx] = detector.Landmark{ID: idx, X: x, Y: y, Visibility: 1.0}
	}

	faceWidth := faceRight - faceLeft
	faceHeight := faceBottom - faceTop

	// Face frame
	set(detector.FaceEdgeL, faceLeft, eyeRowY)
	set(detector.FaceEdgeR, faceRight, eyeRowY)
	set(detector.Forehead, faceCenterX, faceTop)
	set(detector.Chin, faceCenterX, faceBottom)

	// Smile: mouth width relative to face width, rescaled from the neutral
	// ratio 0.4 toward the max ratio 0.6
	mouthWidth := (0.4 + m.Smile*0.2) * faceWidth
	set(detector.MouthCornerL, faceCenterX-mouthWidth/2, mouthRowY)
	set(detector.MouthCornerR, faceCenterX+mouthWidth/2, mouthRowY)

	// Mouth openness: inner lip gap over 8% of face height
	lipGap := m.Mouth * faceHeight * 0.08
	set(detector.UpperLipInner, faceCenterX, mouthRowY-lipGap/2)
	set(detector.LowerLipInner, faceCenterX, mouthRowY+lipGap/2)

	// Eye openness: vertical opening over eye width, averaged and tripled
	eyeOpening := m.Eye * eyeWidth / 3
	set(detector.EyeOuterL, 445, eyeRowY)
	set(detector.EyeInnerL, 445+eyeWidth, eyeRowY)
	set(detector.EyeTopL, 475, eyeRowY-eyeOpening/2)
	set(detector.EyeBottomL, 475, eyeRowY+eyeOpening/2)
	set(detector.EyeInnerR, 595, eyeRowY)
	set(detector.EyeOuterR, 595+eyeWidth, eyeRowY)
	set(detector.EyeTopR, 625, eyeRowY-eyeOpening/2)
	set(detector.EyeBottomR, 625, eyeRowY+eyeOpening/2)

	// Brow raise: brow-to-eye-top gap over 10% of face height, both sides
	browGap := m.Brow * faceHeight * 0.1 / 2
	set(detector.BrowInnerL, 475, eyeRowY-eyeOpening/2-browGap)
	set(detector.BrowInnerR, 625, eyeRowY-eyeOpening/2-browGap)
	set(detector.BrowOuterL, 450, eyeRowY-eyeOpening/2-browGap)
	set(detector.BrowOuterR, 650, eyeRowY-eyeOpening/2-browGap)

	// Jaw drop: chin-to-nose gap over half the face height
	set(detector.NoseTip, faceCenterX, faceBottom-m.Jaw*faceHeight*0.5)

	return detector.FaceLandmarks{
		Points: points,
		BBox:   image.Rect(int(faceLeft), int(faceTop), int(faceRight), int(faceBottom)),
		Score:  0.95,
	}
}

// PartialFaceMesh returns a mesh with too few points for geometric
// analysis, forcing the region-brightness fallback path.
func PartialFaceMesh() detector.FaceLandmarks {
	full := FaceMesh(NeutralMetrics())
	return detector.FaceLandmarks{
		Points: full.Points[:100],
		BBox:   full.BBox,
		Score:  0.6,
	}
}
