package vonsh

// SubFrames is the number of render ticks per simulation step.
const SubFrames = 4

// Blink timings in render ticks.
const (
	FoodBlinkFrames = 27
	bannerPeriod    = 15
	bannerOn        = 10
)

// Clock maps render ticks to simulation steps and to the interpolation
// factor renderers use between two board configurations.
type Clock struct {
	frame    uint64
	progress float64
	settled  bool
}

// Reset rewinds the clock for a new session.
func (c *Clock) Reset() {
	*c = Clock{}
}

// Advance counts one render tick and reports whether a simulation step is
// due. Progress wraps to 0 on exactly the ticks that return true.
func (c *Clock) Advance() bool {
	c.frame++
	c.sync()
	return c.frame%SubFrames == 0
}

// Tick counts a render tick without driving the simulation. Used while the
// game-over overlay blinks.
func (c *Clock) Tick() {
	c.frame++
}

// Resume re-derives progress from the frozen frame counter, so a renderer
// sees the same interpolation it saw when the game was paused.
func (c *Clock) Resume() {
	c.sync()
}

func (c *Clock) sync() {
	c.progress = float64(c.frame%SubFrames) / SubFrames
}

// Settle pins the interpolation at its end so segments are drawn on their
// own fields.
func (c *Clock) Settle() {
	c.settled = true
}

// Frame returns the render tick count.
func (c *Clock) Frame() uint64 { return c.frame }

// Progress returns the animation progress in [0, 1).
func (c *Clock) Progress() float64 { return c.progress }

// Interpolation is the fraction of the way each segment has travelled from
// its predecessor's field to its own. It is 1 once settled.
func (c *Clock) Interpolation() float64 {
	if c.settled {
		return 1
	}
	return c.progress
}

// Pose returns the character animation pose for an interpolation value.
// A settled interpolation of 1 shows the resting pose 0.
func Pose(t float64) int {
	return int(t*SubFrames) % SubFrames
}

// Stride returns which sprite row a pose uses: 0 resting, 1 and 2 for the
// two stride poses.
func Stride(pose int) int {
	switch pose {
	case 1:
		return 1
	case 3:
		return 2
	}
	return 0
}

// FoodLook is what a food field shows on a given frame.
type FoodLook int

const (
	FoodSprite FoodLook = iota
	FoodMarker
	FoodHidden
)

// FoodBlink returns the food appearance for a frame while playing. For a
// third of each period the food cycles marker, sprite and nothing.
func FoodBlink(frame uint64) FoodLook {
	if frame%(FoodBlinkFrames*3) >= FoodBlinkFrames {
		return FoodSprite
	}
	switch (frame / 3) % 3 {
	case 0:
		return FoodMarker
	case 1:
		return FoodSprite
	}
	return FoodHidden
}

// BannerVisible reports whether the new-record banner is lit on frame.
func BannerVisible(frame uint64) bool {
	return frame%bannerPeriod < bannerOn
}
