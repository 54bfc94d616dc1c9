package board

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/vonsh/internal/core"
)

// ErrChainBroken reports a snake chain that cannot be followed: a link leaves
// the board, lands on a non-Snake field, or the walk exceeds the board area.
var ErrChainBroken = errors.New("board: snake chain broken")

// Cursor walks a snake from head to tail along the Prev links.
// The walk is bounded by the board area so corrupted links end in an error
// instead of an endless loop.
type Cursor struct {
	b     *Board
	pos   core.Point
	tail  core.Point
	steps int
	err   error
	done  bool
}

// Walk returns a cursor positioned on head.
func (b *Board) Walk(head, tail core.Point) *Cursor {
	c := &Cursor{b: b, pos: head, tail: tail}
	if !b.Contains(head) || b.Get(head).Type != Snake {
		c.err = fmt.Errorf("%w: head %v is not a snake field", ErrChainBroken, head)
		c.done = true
	}
	return c
}

// Pos returns the field the cursor is on.
func (c *Cursor) Pos() core.Point { return c.pos }

// Field returns a pointer to the field under the cursor.
func (c *Cursor) Field() *Field { return c.b.At(c.pos) }

// AtTail reports whether the cursor reached the tail.
func (c *Cursor) AtTail() bool { return c.pos == c.tail }

// Next moves one segment toward the tail. It returns false at the tail or on error.
func (c *Cursor) Next() bool {
	if c.done || c.pos == c.tail {
		c.done = true
		return false
	}
	c.steps++
	if c.steps >= c.b.Area() {
		return c.fail("walk exceeded %d steps", c.b.Area())
	}
	link := c.b.Get(c.pos).Prev
	if !link.IsUnit() {
		return c.fail("field %v has link %v", c.pos, link)
	}
	next := c.pos.Add(link)
	if !c.b.Contains(next) {
		return c.fail("link from %v leaves the board", c.pos)
	}
	if c.b.Get(next).Type != Snake {
		return c.fail("link from %v reaches %s field %v", c.pos, c.b.Get(next).Type, next)
	}
	c.pos = next
	return true
}

func (c *Cursor) fail(format string, args ...any) bool {
	c.err = fmt.Errorf("%w: "+format, append([]any{ErrChainBroken}, args...)...)
	c.done = true
	return false
}

// Err returns the error that stopped the walk, if any.
func (c *Cursor) Err() error { return c.err }

// Steps returns how many links have been followed.
func (c *Cursor) Steps() int { return c.steps }

// ChainLen counts the segments between head and tail inclusive.
func (b *Board) ChainLen(head, tail core.Point) (int, error) {
	c := b.Walk(head, tail)
	n := 1
	for c.Next() {
		n++
	}
	if err := c.Err(); err != nil {
		return 0, err
	}
	return n, nil
}
