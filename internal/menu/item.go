// Package menu implements list menus whose entries are a closed set of item
// kinds, each carrying only its own payload.
package menu

import "strconv"

// Item is one menu entry. The set of implementations is closed.
type Item interface {
	// Key identifies the item to the code handling activation.
	Key() string
	// Selectable reports whether the cursor may rest on the item.
	Selectable() bool
	isItem()
}

// Label is plain text. Captions are never selectable; action labels are
// selectable unless disabled.
type Label struct {
	ID       string
	Text     string
	Caption  bool
	Disabled bool
}

// KeyConfig shows a key binding that can be captured anew.
type KeyConfig struct {
	ID      string
	Text    string
	Binding string
}

// IntConfig shows a number edited in place.
type IntConfig struct {
	ID       string
	Text     string
	Value    int
	Min      int
	Max      int // 0 means unbounded
	Disabled bool
}

// Switch toggles between two named states.
type Switch struct {
	ID       string
	Text     string
	On       bool
	States   [2]string // off, on
	Disabled bool
}

// TableRow is one row of a table drawn inside the menu.
type TableRow struct {
	Cells  []string
	Header bool
}

func (l Label) Key() string     { return l.ID }
func (k KeyConfig) Key() string { return k.ID }
func (n IntConfig) Key() string { return n.ID }
func (s Switch) Key() string    { return s.ID }
func (TableRow) Key() string    { return "" }

func (l Label) Selectable() bool     { return !l.Caption && !l.Disabled }
func (KeyConfig) Selectable() bool   { return true }
func (n IntConfig) Selectable() bool { return !n.Disabled }
func (s Switch) Selectable() bool    { return !s.Disabled }
func (TableRow) Selectable() bool    { return false }

func (Label) isItem()     {}
func (KeyConfig) isItem() {}
func (IntConfig) isItem() {}
func (Switch) isItem()    {}
func (TableRow) isItem()  {}

// State returns the name of the current switch state.
func (s Switch) State() string {
	if s.On {
		return s.States[1]
	}
	return s.States[0]
}

// ValueText returns the number as displayed.
func (n IntConfig) ValueText() string {
	return strconv.Itoa(n.Value)
}
