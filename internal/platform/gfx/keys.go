package gfx

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// keyName returns the game's name for an ebiten key, or "" for keys the
// game never binds.
func keyName(k ebiten.Key) string {
	switch k {
	case ebiten.KeyArrowLeft:
		return "left"
	case ebiten.KeyArrowRight:
		return "right"
	case ebiten.KeyArrowUp:
		return "up"
	case ebiten.KeyArrowDown:
		return "down"
	case ebiten.KeySpace:
		return "space"
	case ebiten.KeyEnter, ebiten.KeyNumpadEnter:
		return "enter"
	case ebiten.KeyEscape:
		return "esc"
	case ebiten.KeyBackspace:
		return "backspace"
	case ebiten.KeyTab:
		return "tab"
	}
	return nameOf(k.String())
}

// nameOf maps ebiten key names such as "A", "Digit4" and "Numpad7" to
// "a", "4" and "7".
func nameOf(s string) string {
	for _, prefix := range []string{"Digit", "Numpad"} {
		if rest, ok := strings.CutPrefix(s, prefix); ok && len(rest) == 1 && rest[0] >= '0' && rest[0] <= '9' {
			return rest
		}
	}
	if len(s) == 1 && s[0] >= 'A' && s[0] <= 'Z' {
		return strings.ToLower(s)
	}
	return ""
}

// pressedKeys returns the names of the keys that went down this tick.
// Ctrl+C is reported as "ctrl+c".
func pressedKeys(buf []ebiten.Key) []string {
	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl)
	var names []string
	for _, k := range inpututil.AppendJustPressedKeys(buf[:0]) {
		name := keyName(k)
		if name == "" {
			continue
		}
		if ctrl && name == "c" {
			name = "ctrl+c"
		}
		names = append(names, name)
	}
	return names
}
