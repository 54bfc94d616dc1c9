package menu

import (
	"strings"
	"unicode/utf8"
)

// MaxDigits bounds number entry.
const MaxDigits = 9

// EntryMode is the in-place editing state of a menu.
type EntryMode int

const (
	EntryNone EntryMode = iota
	// EntryKey waits for the next key press to bind.
	EntryKey
	// EntryNumber edits the selected IntConfig as text.
	EntryNumber
)

// Menu is an ordered list of items with a cursor.
type Menu struct {
	Title  string
	items  []Item
	cursor int
	mode   EntryMode
	buffer string
}

// New returns a menu with the cursor on the first selectable item.
func New(title string, items ...Item) *Menu {
	m := &Menu{Title: title, items: items, cursor: -1}
	m.SetCursor(0)
	return m
}

// Items returns the menu entries. The slice must not be modified.
func (m *Menu) Items() []Item { return m.items }

// Len returns the number of entries.
func (m *Menu) Len() int { return len(m.items) }

// Cursor returns the selected index, or -1 when nothing is selectable.
func (m *Menu) Cursor() int { return m.cursor }

// Selected returns the item under the cursor, or nil.
func (m *Menu) Selected() Item {
	if m.cursor < 0 || m.cursor >= len(m.items) {
		return nil
	}
	return m.items[m.cursor]
}

// SetCursor selects item i, or the next selectable item after it.
func (m *Menu) SetCursor(i int) {
	m.cursor = -1
	n := len(m.items)
	if n == 0 {
		return
	}
	if i < 0 {
		i = 0
	}
	for k := 0; k < n; k++ {
		j := (i + k) % n
		if m.items[j].Selectable() {
			m.cursor = j
			return
		}
	}
}

// SelectLast moves the cursor to the last selectable item.
func (m *Menu) SelectLast() {
	for i := len(m.items) - 1; i >= 0; i-- {
		if m.items[i].Selectable() {
			m.cursor = i
			return
		}
	}
	m.cursor = -1
}

// Up moves to the previous selectable item, wrapping around.
func (m *Menu) Up() { m.move(-1) }

// Down moves to the next selectable item, wrapping around.
func (m *Menu) Down() { m.move(1) }

func (m *Menu) move(step int) {
	n := len(m.items)
	if n == 0 || m.cursor < 0 {
		return
	}
	j := m.cursor
	for k := 0; k < n; k++ {
		j = (j + step + n) % n
		if m.items[j].Selectable() {
			m.cursor = j
			return
		}
	}
}

// Find returns the index of the item with the given key, or -1.
func (m *Menu) Find(key string) int {
	for i, it := range m.items {
		if key != "" && it.Key() == key {
			return i
		}
	}
	return -1
}

// Set replaces item i. The cursor moves on if the item stops being selectable.
func (m *Menu) Set(i int, it Item) {
	m.items[i] = it
	if i == m.cursor && !it.Selectable() {
		m.SetCursor(i)
	}
}

// Mode returns the current entry mode.
func (m *Menu) Mode() EntryMode { return m.mode }

// Editing reports whether an entry is in progress.
func (m *Menu) Editing() bool { return m.mode != EntryNone }

// Buffer returns the text typed into a number entry.
func (m *Menu) Buffer() string { return m.buffer }

// BeginKeyCapture starts waiting for a key to bind to the selected item.
func (m *Menu) BeginKeyCapture() {
	m.mode = EntryKey
	m.buffer = ""
}

// BeginNumber starts editing the selected number, starting from text.
func (m *Menu) BeginNumber(text string) {
	m.mode = EntryNumber
	m.buffer = text
}

// Digit appends r to a number entry. Non-digits and overlong input are ignored.
func (m *Menu) Digit(r rune) bool {
	if m.mode != EntryNumber || r < '0' || r > '9' || len(m.buffer) >= MaxDigits {
		return false
	}
	m.buffer += string(r)
	return true
}

// Backspace removes the last character of a number entry.
func (m *Menu) Backspace() {
	if m.mode != EntryNumber || m.buffer == "" {
		return
	}
	_, size := utf8.DecodeLastRuneInString(m.buffer)
	m.buffer = m.buffer[:len(m.buffer)-size]
}

// EndEntry leaves entry mode and returns the buffer.
func (m *Menu) EndEntry() string {
	s := m.buffer
	m.mode = EntryNone
	m.buffer = ""
	return s
}

// ItemText returns the plain label of item i, including the value of config
// items and the entry in progress.
func (m *Menu) ItemText(i int) string {
	editing := m.Editing() && m.cursor == i
	switch it := m.items[i].(type) {
	case Label:
		return it.Text
	case KeyConfig:
		if editing {
			return it.Text + " press a key"
		}
		return it.Text + " " + strings.ToUpper(it.Binding)
	case IntConfig:
		if editing {
			return it.Text + " " + m.buffer + "_"
		}
		return it.Text + " " + it.ValueText()
	case Switch:
		return it.Text + " " + it.State()
	case TableRow:
		return strings.Join(it.Cells, " | ")
	}
	return ""
}
