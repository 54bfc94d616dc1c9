package vonsh

import (
	"fmt"

	"github.com/vovakirdan/vonsh/internal/board"
	"github.com/vovakirdan/vonsh/internal/core"
)

// Session is the mutable state of one play session. It is rebuilt by
// Start and owned by the goroutine driving the game.
type Session struct {
	Board *board.Board

	Head core.Point
	Tail core.Point
	Dir  core.Point // exactly one axis is nonzero

	Score     int
	HighScore int
	Expansion int // pending growth steps, each also seeds a wall

	Locked    bool // a turn was accepted since the last step
	NewRecord bool
}

// Start resets b and lays out a fresh session on it: a one-segment snake in
// the middle heading up and a single food item.
func Start(b *board.Board, seeder *Seeder, highScore int) *Session {
	b.Reset()

	s := &Session{
		Board:     b,
		Dir:       core.DirUp,
		HighScore: highScore,
	}
	s.Head = core.Pt(b.Width()/2, b.Height()/2)
	s.Tail = s.Head

	f := b.At(s.Head)
	f.Type = board.Snake
	f.Param = seeder.Character()
	f.Prev = s.Dir.Neg()

	seeder.Seed(b, board.Food)
	return s
}

// Len returns the number of snake segments.
func (s *Session) Len() (int, error) {
	n, err := s.Board.ChainLen(s.Head, s.Tail)
	if err != nil {
		return 0, fmt.Errorf("session length: %w", err)
	}
	return n, nil
}

// Segments returns the snake positions from head to tail.
func (s *Session) Segments() ([]core.Point, error) {
	c := s.Board.Walk(s.Head, s.Tail)
	segs := []core.Point{c.Pos()}
	for c.Next() {
		segs = append(segs, c.Pos())
	}
	if err := c.Err(); err != nil {
		return nil, err
	}
	return segs, nil
}
