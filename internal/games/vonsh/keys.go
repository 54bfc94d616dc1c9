package vonsh

import (
	"strings"

	"github.com/vovakirdan/vonsh/internal/config"
	"github.com/vovakirdan/vonsh/internal/core"
)

// Resolve maps a key name to an action under the bindings k. Bound keys
// win over the fixed Enter, Escape, Backspace and Ctrl+C keys.
func Resolve(k config.Keys, name string) core.Action {
	switch strings.ToLower(name) {
	case "":
		return core.ActionNone
	case k.Pause:
		return core.ActionPause
	case k.Left:
		return core.ActionLeft
	case k.Right:
		return core.ActionRight
	case k.Up:
		return core.ActionUp
	case k.Down:
		return core.ActionDown
	case "enter":
		return core.ActionConfirm
	case "esc", "escape":
		return core.ActionBack
	case "backspace":
		return core.ActionErase
	case "ctrl+c":
		return core.ActionQuit
	}
	return core.ActionNone
}
