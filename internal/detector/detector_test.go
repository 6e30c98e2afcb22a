package detector

import (
	"errors"
	"math"
	"testing"
)

const epsilon = 1e-9

func TestDistance2D(t *testing.T) {
	t.Run("classic 3-4-5 triangle", func(t *testing.T) {
		a := Landmark{X: 0, Y: 0}
		b := Landmark{X: 3, Y: 4}

		if d := Distance2D(a, b); math.Abs(d-5.0) > epsilon {
			t.Errorf("expected distance 5.0, got %f", d)
		}
	})

	t.Run("ignores depth", func(t *testing.T) {
		a := Landmark{X: 0, Y: 0, Z: 0}
		b := Landmark{X: 3, Y: 4, Z: 100}

		if d := Distance2D(a, b); math.Abs(d-5.0) > epsilon {
			t.Errorf("expected Z to be ignored, got distance %f", d)
		}
	})

	t.Run("identical points", func(t *testing.T) {
		a := Landmark{X: 42, Y: 17}

		if d := Distance2D(a, a); d > epsilon {
			t.Errorf("expected distance 0, got %f", d)
		}
	})
}

func TestBoundingBox(t *testing.T) {
	t.Run("covers all points", func(t *testing.T) {
		points := []Landmark{
			{X: 100, Y: 200},
			{X: 300, Y: 150},
			{X: 250, Y: 400},
		}

		box := boundingBox(points)

		if box.Min.X != 100 || box.Min.Y != 150 {
			t.Errorf("unexpected box min: %v", box.Min)
		}
		if box.Max.X != 300 || box.Max.Y != 400 {
			t.Errorf("unexpected box max: %v", box.Max)
		}
	})

	t.Run("empty points", func(t *testing.T) {
		box := boundingBox(nil)

		if !box.Empty() {
			t.Errorf("expected empty box, got %v", box)
		}
	})
}

func TestFaceLandmarks_Point(t *testing.T) {
	face := FaceLandmarks{
		Points: []Landmark{{ID: 0, X: 1}, {ID: 1, X: 2}},
	}

	t.Run("in range", func(t *testing.T) {
		p, ok := face.Point(1)
		if !ok {
			t.Fatal("expected point 1 to exist")
		}
		if p.X != 2 {
			t.Errorf("expected X=2, got %f", p.X)
		}
	})

	t.Run("out of range", func(t *testing.T) {
		if _, ok := face.Point(2); ok {
			t.Error("expected point 2 to be missing")
		}
		if _, ok := face.Point(-1); ok {
			t.Error("expected negative index to be missing")
		}
	})

	t.Run("nil face", func(t *testing.T) {
		var nilFace *FaceLandmarks
		if _, ok := nilFace.Point(0); ok {
			t.Error("expected nil face to have no points")
		}
	})
}

func TestFaceLandmarks_Complete(t *testing.T) {
	t.Run("full mesh is complete", func(t *testing.T) {
		face := FaceLandmarks{Points: make([]Landmark, NumFaceLandmarks)}
		if !face.Complete() {
			t.Error("expected 468-point mesh to be complete")
		}
	})

	t.Run("short mesh is not complete", func(t *testing.T) {
		face := FaceLandmarks{Points: make([]Landmark, 100)}
		if face.Complete() {
			t.Error("expected 100-point mesh to be incomplete")
		}
	})

	t.Run("nil face is not complete", func(t *testing.T) {
		var face *FaceLandmarks
		if face.Complete() {
			t.Error("expected nil face to be incomplete")
		}
	})
}

func TestMockDetector(t *testing.T) {
	t.Run("returns empty observation by default", func(t *testing.T) {
		mock := NewMockDetector()

		obs, err := mock.Detect(nil)

		if err != nil {
			t.Errorf("unexpected error: %v", err)
		}
		if len(obs.Faces) != 0 || len(obs.Hands) != 0 || len(obs.Pose) != 0 {
			t.Errorf("expected empty observation, got %+v", obs)
		}
	})

	t.Run("returns configured observation", func(t *testing.T) {
		mock := NewMockDetector()

		mock.SetObservation(Observation{
			Hands: []HandLandmarks{FistLandmarks(), OpenHandLandmarks()},
		})

		obs, err := mock.Detect(nil)

		if err != nil {
			t.Errorf("unexpected error: %v", err)
		}
		if len(obs.Hands) != 2 {
			t.Errorf("expected 2 hands, got %d", len(obs.Hands))
		}
	})

	t.Run("returns configured error", func(t *testing.T) {
		mock := NewMockDetector()

		expectedErr := errors.New("detection failed")
		mock.SetError(expectedErr)

		_, err := mock.Detect(nil)

		if err != expectedErr {
			t.Errorf("expected error %v, got %v", expectedErr, err)
		}
	})

	t.Run("implements Detector interface", func(t *testing.T) {
		var _ Detector = (*MockDetector)(nil)
	})
}

func TestFistLandmarks(t *testing.T) {
	hand := FistLandmarks()

	t.Run("all fingertips curled below knuckles", func(t *testing.T) {
		tips := [4]int{IndexTip, MiddleTip, RingTip, PinkyTip}
		mcps := [4]int{IndexMCP, MiddleMCP, RingMCP, PinkyMCP}

		for i := range tips {
			if hand.Points[tips[i]].Y < hand.Points[mcps[i]].Y-10 {
				t.Errorf("fingertip %d appears extended", tips[i])
			}
		}
	})

	t.Run("thumb not past IP joint", func(t *testing.T) {
		if hand.Points[ThumbTip].X < hand.Points[ThumbIP].X-5 {
			t.Error("thumb appears extended")
		}
	})
}

func TestOpenHandLandmarks(t *testing.T) {
	hand := OpenHandLandmarks()

	t.Run("all fingertips raised above knuckles", func(t *testing.T) {
		tips := [4]int{IndexTip, MiddleTip, RingTip, PinkyTip}
		mcps := [4]int{IndexMCP, MiddleMCP, RingMCP, PinkyMCP}

		for i := range tips {
			if hand.Points[tips[i]].Y >= hand.Points[mcps[i]].Y-10 {
				t.Errorf("fingertip %d is not raised", tips[i])
			}
		}
	})

	t.Run("thumb extended past IP joint", func(t *testing.T) {
		if hand.Points[ThumbTip].X >= hand.Points[ThumbIP].X-5 {
			t.Error("thumb is not extended")
		}
	})
}

func TestVictoryLandmarks(t *testing.T) {
	hand := VictoryLandmarks()

	t.Run("index and middle raised and separated", func(t *testing.T) {
		if hand.Points[IndexTip].Y >= hand.Points[IndexMCP].Y-10 {
			t.Error("index is not raised")
		}
		if hand.Points[MiddleTip].Y >= hand.Points[MiddleMCP].Y-10 {
			t.Error("middle is not raised")
		}

		if d := Distance2D(hand.Points[IndexTip], hand.Points[MiddleTip]); d <= 20 {
			t.Errorf("fingertips too close together: %f", d)
		}
	})

	t.Run("ring and pinky curled", func(t *testing.T) {
		if hand.Points[RingTip].Y < hand.Points[RingMCP].Y-10 {
			t.Error("ring appears extended")
		}
		if hand.Points[PinkyTip].Y < hand.Points[PinkyMCP].Y-10 {
			t.Error("pinky appears extended")
		}
	})
}
