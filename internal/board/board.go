// Package board holds the playfield grid: one Field per cell in a flat
// row-major buffer, plus change notifications for renderers that cache a
// static background.
package board

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/vonsh/internal/core"
)

// ErrBadSize is returned when a board is requested with a non-positive dimension.
var ErrBadSize = errors.New("board: invalid size")

// FieldType is the content of a single cell.
type FieldType uint8

const (
	Empty FieldType = iota
	Snake
	Food
	Wall
)

// String returns the lowercase name of the field type.
func (t FieldType) String() string {
	switch t {
	case Empty:
		return "empty"
	case Snake:
		return "snake"
	case Food:
		return "food"
	case Wall:
		return "wall"
	default:
		return fmt.Sprintf("FieldType(%d)", uint8(t))
	}
}

// Field is one grid cell.
//
// Param is the character skin for Snake cells, the sprite for Food and
// Wall cells. Prev points from a Snake cell back to the segment it was
// entered from; it is zero for everything else.
type Field struct {
	Type  FieldType
	Param int
	Prev  core.Point
}

// IsEmpty reports whether nothing occupies the field.
func (f Field) IsEmpty() bool { return f.Type == Empty }

// EventKind identifies a board change.
type EventKind uint8

const (
	// EventReset fires after every field has been cleared.
	EventReset EventKind = iota
	// EventPlaced fires after an item has been put on a single field.
	EventPlaced
)

// Event describes a board change to a Listener.
type Event struct {
	Kind  EventKind
	At    core.Point
	Type  FieldType
	Param int
}

// Listener receives board events synchronously.
type Listener func(Event)

// Board is a fixed-size grid of fields.
type Board struct {
	w, h      int
	fields    []Field
	listeners []Listener
}

// MaxArea is the largest number of fields a board may have.
const MaxArea = 1 << 20

// New allocates an empty w x h board.
func New(w, h int) (*Board, error) {
	if w <= 0 || h <= 0 || w > MaxArea/h {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadSize, w, h)
	}
	return &Board{
		w:      w,
		h:      h,
		fields: make([]Field, w*h),
	}, nil
}

// Width returns the number of columns.
func (b *Board) Width() int { return b.w }

// Height returns the number of rows.
func (b *Board) Height() int { return b.h }

// Area returns the number of cells.
func (b *Board) Area() int { return b.w * b.h }

// Bounds returns the board rectangle anchored at the origin.
func (b *Board) Bounds() core.Rect { return core.NewRect(0, 0, b.w, b.h) }

// Contains reports whether p lies on the board.
func (b *Board) Contains(p core.Point) bool {
	return p.X >= 0 && p.X < b.w && p.Y >= 0 && p.Y < b.h
}

// At returns a pointer to the field at p for in-place mutation.
// It panics if p is outside the board.
func (b *Board) At(p core.Point) *Field {
	if !b.Contains(p) {
		panic(fmt.Sprintf("board: %v outside %dx%d", p, b.w, b.h))
	}
	return &b.fields[p.Y*b.w+p.X]
}

// Get returns a copy of the field at p. Off-board points read as Empty.
func (b *Board) Get(p core.Point) Field {
	if !b.Contains(p) {
		return Field{}
	}
	return b.fields[p.Y*b.w+p.X]
}

// Place puts an item of type t on p and notifies listeners.
func (b *Board) Place(p core.Point, t FieldType, param int) {
	f := b.At(p)
	*f = Field{Type: t, Param: param}
	b.emit(Event{Kind: EventPlaced, At: p, Type: t, Param: param})
}

// Clear empties the field at p. No event is emitted.
func (b *Board) Clear(p core.Point) {
	*b.At(p) = Field{}
}

// Reset empties every field and notifies listeners.
func (b *Board) Reset() {
	clear(b.fields)
	b.emit(Event{Kind: EventReset})
}

// Observe registers fn for board events.
func (b *Board) Observe(fn Listener) {
	if fn != nil {
		b.listeners = append(b.listeners, fn)
	}
}

func (b *Board) emit(ev Event) {
	for _, fn := range b.listeners {
		fn(ev)
	}
}

// Count returns the number of fields of type t.
func (b *Board) Count(t FieldType) int {
	n := 0
	for i := range b.fields {
		if b.fields[i].Type == t {
			n++
		}
	}
	return n
}

// Each calls fn for every field in row-major order.
func (b *Board) Each(fn func(p core.Point, f Field)) {
	for i, f := range b.fields {
		fn(core.Pt(i%b.w, i/b.w), f)
	}
}
