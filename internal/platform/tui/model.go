package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/vonsh/internal/core"
	"github.com/vovakirdan/vonsh/internal/games/vonsh"
	"github.com/vovakirdan/vonsh/internal/registry"
)

func init() {
	registry.Register("tui", func() registry.Frontend { return Frontend{} })
}

// Frontend runs the game in the local terminal.
type Frontend struct{}

func (Frontend) ID() string    { return "tui" }
func (Frontend) Title() string { return "Terminal (Bubble Tea)" }

// Run builds the game and blocks until the player quits.
func (Frontend) Run(ctx context.Context, env registry.Env) error {
	g := vonsh.New(env.Options)
	if err := g.Init(); err != nil {
		return err
	}

	model := NewModel(g, env.Runtime)
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)

	_, err := p.Run()
	if err != nil && !(errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil) {
		return fmt.Errorf("tui: %w", err)
	}
	return g.Err()
}

// Model is the Bubble Tea model around a vonsh.Game.
type Model struct {
	game   *vonsh.Game
	view   *BoardView
	screen *core.Screen
	keys   KeyMap
	help   help.Model
	width  int
	height int
}

// NewModel wraps an initialized game. The runtime config supplies the
// initial terminal size and the ground pattern seed.
func NewModel(g *vonsh.Game, cfg core.RuntimeConfig) Model {
	view := NewBoardView(cfg.ResolveSeed())
	view.Attach(g)

	m := Model{
		game:   g,
		view:   view,
		screen: core.NewScreen(0, 0),
		keys:   NewKeyMap(g.Settings().Keys),
		help:   help.New(),
	}
	m.resize(cfg.ScreenW, cfg.ScreenH)
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(core.TickInterval)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionRelease && msg.Button == tea.MouseButtonLeft {
			m.game.HandleClick()
		}
		return m.settle(nil)

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m.settle(nil)

	case TickMsg:
		m.game.Tick()
		return m.settle(tickCmd(core.TickInterval))
	}

	return m, nil
}

// handleKey forwards a key press to the game. Typed characters also go to
// the name prompt, which ignores key names.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.game.Quit()
		return m.settle(nil)
	}

	m.game.HandleKey(KeyName(msg))
	switch msg.Type {
	case tea.KeyRunes:
		if !msg.Alt {
			m.game.HandleText(string(msg.Runes))
		}
	case tea.KeySpace:
		m.game.HandleText(" ")
	}

	// Bindings may have changed in the options menu.
	m.keys = NewKeyMap(m.game.Settings().Keys)
	return m.settle(nil)
}

// settle quits the program once the game has stopped.
func (m Model) settle(next tea.Cmd) (tea.Model, tea.Cmd) {
	if !m.game.Running() {
		return m, tea.Quit
	}
	return m, next
}

// resize records the terminal size and reports the board viewport to the
// game: one field per two columns, one row kept for the HUD and one for help.
func (m *Model) resize(w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	m.width, m.height = w, h
	m.help.Width = w
	m.game.SetViewport(w/CellWidth, h-2)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if !m.game.Running() {
		return ""
	}

	helpBar := m.help.View(m.keys.In(m.game.State()))
	if mn := m.game.Menu(); mn != nil {
		body := RenderMenu(mn, m.width, max(m.height-1, 0))
		return lipgloss.JoinVertical(lipgloss.Left, body, helpBar)
	}

	b := m.game.Board()
	if b == nil {
		return ""
	}
	w, h := m.view.Size(b)
	m.screen.Resize(w, h)
	m.view.Draw(m.screen, m.game)

	frame := lipgloss.JoinVertical(lipgloss.Left, RenderScreen(m.screen), helpBar)
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, frame)
	}
	return frame
}
