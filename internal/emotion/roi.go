package emotion

import (
	"image"

	"gocv.io/x/gocv"
)

// Luminance threshold separating a likely-smiling bright face from a
// neutral one in the fallback path.
const brightFaceLuminance = 150.0

// ClassifyRegion is the fallback when no usable face mesh exists: it
// derives an emotion from the mean luminance of the face's bounding
// region. Bright faces read as happy, everything else as neutral. An
// unusable region yields low-confidence neutral.
func ClassifyRegion(frame *gocv.Mat, bbox image.Rectangle) Result {
	luminance, ok := meanLuminance(frame, bbox)
	if !ok {
		return Result{Label: Neutral, Confidence: 0.50}
	}

	if luminance > brightFaceLuminance {
		return Result{Label: Happy, Confidence: 0.70}
	}
	return Result{Label: Neutral, Confidence: 0.60}
}

// meanLuminance computes the mean gray value of the frame region under
// bbox, clamped to the frame bounds. Returns false when the region is
// empty or the frame is unusable.
func meanLuminance(frame *gocv.Mat, bbox image.Rectangle) (float64, bool) {
	if frame == nil || frame.Empty() {
		return 0, false
	}

	bounds := image.Rect(0, 0, frame.Cols(), frame.Rows())
	region := bbox.Intersect(bounds)
	if region.Empty() {
		return 0, false
	}

	roi := frame.Region(region)
	defer roi.Close()

	gray := gocv.NewMat()
	defer gray.Close()

	if roi.Channels() > 1 {
		gocv.CvtColor(roi, &gray, gocv.ColorBGRToGray)
	} else {
		roi.CopyTo(&gray)
	}

	return gray.Mean().Val1, true
}
