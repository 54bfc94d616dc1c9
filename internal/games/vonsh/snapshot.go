package vonsh

import (
	"github.com/vovakirdan/vonsh/internal/board"
	"github.com/vovakirdan/vonsh/internal/core"
)

// Snapshot captures the observable game state for determinism testing.
type Snapshot struct {
	Frame     uint64
	State     State
	Score     int
	HighScore int
	Expansion int
	SnakeLen  int
	Head      core.Point
	Tail      core.Point
	Dir       core.Point
	Food      []core.Point
	Walls     int
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Frame: g.clock.Frame(),
		State: g.state,
	}
	s := g.session
	if s == nil {
		return snap
	}
	snap.Score = s.Score
	snap.HighScore = s.HighScore
	snap.Expansion = s.Expansion
	snap.Head, snap.Tail, snap.Dir = s.Head, s.Tail, s.Dir
	if n, err := s.Len(); err == nil {
		snap.SnakeLen = n
	}
	s.Board.Each(func(p core.Point, f board.Field) {
		switch f.Type {
		case board.Food:
			snap.Food = append(snap.Food, p)
		case board.Wall:
			snap.Walls++
		}
	})
	return snap
}
