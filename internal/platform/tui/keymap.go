package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/vonsh/internal/config"
	"github.com/vovakirdan/vonsh/internal/games/vonsh"
)

// KeyName translates a Bubble Tea key message to the key name the game
// binds ("left", "a", "space", "enter", "esc").
func KeyName(msg tea.KeyMsg) string {
	switch msg.Type {
	case tea.KeySpace:
		return "space"
	case tea.KeyEscape:
		return "esc"
	}
	name := msg.String()
	if name == " " {
		return "space"
	}
	return strings.ToLower(name)
}

// KeyMap describes the keys that matter in the current state. It feeds the
// help bar and recognizes the quit key before the game sees it.
type KeyMap struct {
	Steer    key.Binding
	Pause    key.Binding
	Navigate key.Binding
	Select   key.Binding
	Back     key.Binding
	Any      key.Binding
	Name     key.Binding
	Quit     key.Binding

	state vonsh.State
}

// NewKeyMap builds the bindings for the configured keys.
func NewKeyMap(k config.Keys) KeyMap {
	steer := []string{k.Left, k.Right, k.Up, k.Down}
	return KeyMap{
		Steer: key.NewBinding(
			key.WithKeys(steer...),
			key.WithHelp(strings.Join(steer, "/"), "steer"),
		),
		Pause: key.NewBinding(
			key.WithKeys(k.Pause),
			key.WithHelp(k.Pause, "pause"),
		),
		Navigate: key.NewBinding(
			key.WithKeys("up", "down"),
			key.WithHelp("up/down", "navigate"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "select"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		// Any is for the help bar only; help skips bindings without keys.
		Any: key.NewBinding(
			key.WithKeys("any"),
			key.WithHelp("any key", "menu"),
		),
		Name: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "save name"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// In returns the key map as it applies to state s.
func (k KeyMap) In(s vonsh.State) KeyMap {
	k.state = s
	return k
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	switch k.state {
	case vonsh.Playing:
		return []key.Binding{k.Steer, k.Pause, k.Back}
	case vonsh.Paused:
		return []key.Binding{k.Pause, k.Back}
	case vonsh.GameOver:
		return []key.Binding{k.Any}
	case vonsh.EnteringHiscoreName:
		return []key.Binding{k.Name, k.Back}
	}
	return []key.Binding{k.Navigate, k.Select, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		k.ShortHelp(),
		{k.Quit},
	}
}
