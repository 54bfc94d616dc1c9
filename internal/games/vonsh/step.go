package vonsh

import (
	"fmt"

	"github.com/vovakirdan/vonsh/internal/board"
	"github.com/vovakirdan/vonsh/internal/core"
)

// Outcome is the result class of a simulation step.
type Outcome int

const (
	Moved Outcome = iota
	Crashed
)

// Cause tells what a crashed step ran into.
type Cause int

const (
	CauseNone Cause = iota
	CauseEdge
	CauseBody
	CauseWall
)

func (c Cause) String() string {
	switch c {
	case CauseEdge:
		return "edge"
	case CauseBody:
		return "body"
	case CauseWall:
		return "wall"
	}
	return "none"
}

// StepResult reports what a step did.
type StepResult struct {
	Outcome Outcome
	Cause   Cause
	Ate     bool
	Grew    bool
	// Wall is the field seeded by a growth step, valid when WallSeeded is set.
	Wall       core.Point
	WallSeeded bool
}

// Step advances the snake one field.
//
// A crash leaves the board untouched. The returned error is fatal and only
// reports a snake chain that could not be followed.
func (s *Session) Step(seeder *Seeder) (StepResult, error) {
	var res StepResult
	next := s.Head.Add(s.Dir)

	if !s.Board.Contains(next) {
		res.Outcome, res.Cause = Crashed, CauseEdge
		return res, nil
	}

	switch s.Board.Get(next).Type {
	case board.Food:
		s.Score++
		if s.Score > s.HighScore {
			s.HighScore = s.Score
			s.NewRecord = true
		}
		s.Expansion += s.Score
		res.Ate = true
		seeder.Seed(s.Board, board.Food)
	case board.Snake:
		res.Outcome, res.Cause = Crashed, CauseBody
		return res, nil
	case board.Wall:
		res.Outcome, res.Cause = Crashed, CauseWall
		return res, nil
	}

	head := s.Board.At(next)
	head.Type = board.Snake
	head.Prev = s.Dir.Neg()

	// Every segment takes the skin of the one behind it, so skins travel
	// toward the head with the body.
	c := s.Board.Walk(next, s.Tail)
	ahead := c.Pos()
	for c.Next() {
		s.Board.At(ahead).Param = c.Field().Param
		if c.AtTail() {
			break
		}
		ahead = c.Pos()
	}
	if err := c.Err(); err != nil {
		return res, fmt.Errorf("step: %w", err)
	}

	if s.Expansion == 0 {
		s.Board.Clear(s.Tail)
		s.Tail = ahead
	} else {
		s.Board.At(s.Tail).Param = seeder.Character()
		res.Wall, res.WallSeeded = seeder.Seed(s.Board, board.Wall)
		s.Expansion--
		res.Grew = true
	}

	s.Head = next
	s.Locked = false
	return res, nil
}
