package vonsh

import "testing"

func TestClockStepsEverySubFrames(t *testing.T) {
	var c Clock
	for i := 1; i <= 20; i++ {
		due := c.Advance()
		if due != (i%SubFrames == 0) {
			t.Errorf("tick %d: Advance() = %v", i, due)
		}
		p := c.Progress()
		if p < 0 || p >= 1 {
			t.Errorf("tick %d: Progress() = %v, outside [0,1)", i, p)
		}
		if due && p != 0 {
			t.Errorf("tick %d: Progress() = %v on a step tick, expected 0", i, p)
		}
		want := float64(i%SubFrames) / SubFrames
		if p != want {
			t.Errorf("tick %d: Progress() = %v, expected %v", i, p, want)
		}
	}
}

func TestClockResumeKeepsProgress(t *testing.T) {
	var c Clock
	c.Advance()
	c.Advance()
	before := c.Progress()

	c.Resume()
	if c.Progress() != before {
		t.Errorf("Progress() after Resume = %v, expected %v", c.Progress(), before)
	}
	if c.Frame() != 2 {
		t.Errorf("Frame() = %d, expected 2", c.Frame())
	}
}

func TestClockSettle(t *testing.T) {
	var c Clock
	c.Advance()
	if c.Interpolation() != 0.25 {
		t.Errorf("Interpolation() = %v, expected 0.25", c.Interpolation())
	}
	c.Settle()
	if c.Interpolation() != 1 {
		t.Errorf("Interpolation() settled = %v, expected 1", c.Interpolation())
	}
	if c.Progress() >= 1 {
		t.Errorf("Progress() = %v, expected below 1", c.Progress())
	}
	c.Reset()
	if c.Interpolation() != 0 || c.Frame() != 0 {
		t.Error("Reset() should clear the clock")
	}
}

func TestPose(t *testing.T) {
	tests := []struct {
		t      float64
		pose   int
		stride int
	}{
		{0, 0, 0},
		{0.25, 1, 1},
		{0.5, 2, 0},
		{0.75, 3, 2},
		{1, 0, 0},
	}
	for _, tt := range tests {
		if got := Pose(tt.t); got != tt.pose {
			t.Errorf("Pose(%v) = %d, expected %d", tt.t, got, tt.pose)
		}
		if got := Stride(Pose(tt.t)); got != tt.stride {
			t.Errorf("Stride(Pose(%v)) = %d, expected %d", tt.t, got, tt.stride)
		}
	}
}

func TestFoodBlink(t *testing.T) {
	tests := []struct {
		frame uint64
		want  FoodLook
	}{
		{0, FoodMarker},
		{3, FoodSprite},
		{6, FoodHidden},
		{9, FoodMarker},
		{26, FoodHidden},
		{27, FoodSprite},
		{80, FoodSprite},
		{81, FoodMarker},
	}
	for _, tt := range tests {
		if got := FoodBlink(tt.frame); got != tt.want {
			t.Errorf("FoodBlink(%d) = %v, expected %v", tt.frame, got, tt.want)
		}
	}
}

func TestBannerVisible(t *testing.T) {
	on := 0
	for f := uint64(0); f < 15; f++ {
		if BannerVisible(f) {
			on++
		}
	}
	if on != 10 {
		t.Errorf("banner lit %d of 15 frames, expected 10", on)
	}
}
