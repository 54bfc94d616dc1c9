package vonsh

import "github.com/vovakirdan/vonsh/internal/core"

// Steer turns the snake toward d. Only turns perpendicular to the current
// heading are accepted, and only one per simulation step.
func (s *Session) Steer(d core.Point) bool {
	if s.Locked || !d.IsUnit() {
		return false
	}
	if (d.X != 0 && s.Dir.X != 0) || (d.Y != 0 && s.Dir.Y != 0) {
		return false
	}
	s.Dir = d
	s.Locked = true
	return true
}
