// Package config provides YAML-based settings loading and saving for the
// game: board size, display mode, audio toggles and key bindings.
package config

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// Board dimension limits in fields.
const (
	BoardMinWidth  = 28
	BoardMinHeight = 28
	BoardMaxWidth  = 512
	BoardMaxHeight = 512
)

// Settings contains everything the player can change from the options menu.
type Settings struct {
	Board      BoardSize `yaml:"board"`
	Fullscreen bool      `yaml:"fullscreen"`
	MusicOn    bool      `yaml:"music_on"`
	SfxOn      bool      `yaml:"sfx_on"`
	Keys       Keys      `yaml:"keys"`
}

// BoardSize is the windowed board size. Fullscreen boards are sized from
// the viewport instead.
type BoardSize struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Keys holds key names as reported by the frontends ("left", "a", "space").
type Keys struct {
	Left  string `yaml:"left"`
	Right string `yaml:"right"`
	Up    string `yaml:"up"`
	Down  string `yaml:"down"`
	Pause string `yaml:"pause"`
}

// DefaultSettings returns the built-in settings.
func DefaultSettings() Settings {
	return Settings{
		Board:   BoardSize{Width: BoardMinWidth, Height: BoardMinHeight},
		MusicOn: true,
		SfxOn:   true,
		Keys: Keys{
			Left:  "left",
			Right: "right",
			Up:    "up",
			Down:  "down",
			Pause: "space",
		},
	}
}

// Normalize clamps the board into the allowed range and fills missing key
// bindings from the defaults.
func (s *Settings) Normalize() {
	s.Board.Width = min(max(s.Board.Width, BoardMinWidth), BoardMaxWidth)
	s.Board.Height = min(max(s.Board.Height, BoardMinHeight), BoardMaxHeight)

	def := DefaultSettings().Keys
	fill := func(k *string, fallback string) {
		*k = strings.ToLower(strings.TrimSpace(*k))
		if *k == "" {
			*k = fallback
		}
	}
	fill(&s.Keys.Left, def.Left)
	fill(&s.Keys.Right, def.Right)
	fill(&s.Keys.Up, def.Up)
	fill(&s.Keys.Down, def.Down)
	fill(&s.Keys.Pause, def.Pause)
}

// Marshal encodes the settings as YAML.
func (s Settings) Marshal() ([]byte, error) {
	return yaml.Marshal(s)
}
