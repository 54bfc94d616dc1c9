// Package vonsh implements the game: an ever growing snake of characters
// that leaves a wall behind for every segment it gains.
//
// Game owns all mutable state and is driven from a single goroutine by a
// frontend that forwards key presses and calls Tick every core.TickInterval.
package vonsh

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/vonsh/internal/board"
	"github.com/vovakirdan/vonsh/internal/config"
	"github.com/vovakirdan/vonsh/internal/core"
	"github.com/vovakirdan/vonsh/internal/menu"
	"github.com/vovakirdan/vonsh/internal/storage"
)

// MaxNameLen is the longest accepted player name in runes.
const MaxNameLen = 15

// DefaultName is recorded when the player confirms an empty name.
const DefaultName = "Somebody"

// State is the top-level game state.
type State int

const (
	NotInitialized State = iota
	MainMenu
	OptionsMenu
	HallOfFame
	Playing
	Paused
	GameOver
	EnteringHiscoreName
)

func (s State) String() string {
	switch s {
	case NotInitialized:
		return "not_initialized"
	case MainMenu:
		return "main_menu"
	case OptionsMenu:
		return "options_menu"
	case HallOfFame:
		return "hall_of_fame"
	case Playing:
		return "playing"
	case Paused:
		return "paused"
	case GameOver:
		return "game_over"
	case EnteringHiscoreName:
		return "entering_hiscore_name"
	}
	return "State(" + strconv.Itoa(int(s)) + ")"
}

// Options configures a Game. Nil collaborators are replaced by no-ops, and
// a nil Scores by an in-memory table.
type Options struct {
	Settings config.Settings
	Scores   HighScores
	Audio    Audio
	Sink     SettingsSink
	Display  Display
	Seed     int64
	Version  string
	Logger   *log.Logger
}

// Game is the top-level state machine.
type Game struct {
	settings config.Settings
	scores   HighScores
	audio    Audio
	sink     SettingsSink
	display  Display
	logger   *log.Logger
	version  string

	state   State
	board   *board.Board
	session *Session
	seeder  *Seeder
	clock   Clock
	menu    *menu.Menu

	mainCursor int
	name       []rune
	table      []storage.ScoreEntry
	cursor     bool
	fault      Fault

	listeners []board.Listener
	viewW     int
	viewH     int
}

// New creates a game in the NotInitialized state. Call Init before use.
func New(opts Options) *Game {
	g := &Game{
		settings:   opts.Settings,
		scores:     opts.Scores,
		audio:      opts.Audio,
		sink:       opts.Sink,
		display:    opts.Display,
		logger:     opts.Logger,
		version:    opts.Version,
		seeder:     NewSeeder(opts.Seed),
		mainCursor: playIndex,
	}
	g.settings.Normalize()
	if g.scores == nil {
		g.scores = storage.NewMemory()
	}
	if g.audio == nil {
		g.audio = nopAudio{}
	}
	if g.sink == nil {
		g.sink = nopSink{}
	}
	if g.logger == nil {
		g.logger = log.New(io.Discard)
	}
	if g.version == "" {
		g.version = "dev"
	}
	return g
}

// Init allocates the board and opens the main menu.
func (g *Game) Init() error {
	if err := g.ensureBoard(); err != nil {
		return err
	}
	g.refreshScores()
	g.playMusic(g.audio.PlayIdleMusic)
	g.toMainMenu(false)
	return nil
}

// Running reports whether the game wants more input.
func (g *Game) Running() bool { return g.state != NotInitialized }

// Quit ends the game loop.
func (g *Game) Quit() {
	g.logger.Debug("quit", "from", g.state)
	g.state = NotInitialized
	g.menu = nil
	g.audio.StopMusic()
}

// Fail records a fatal error and stops the game. Only the first error is kept.
func (g *Game) Fail(err error) {
	if g.fault.Set(err) {
		g.logger.Error("fatal", "error", err)
	}
	g.state = NotInitialized
	g.menu = nil
}

// Err returns the fatal error that stopped the game, if any.
func (g *Game) Err() error { return g.fault.Err() }

// State returns the current state.
func (g *Game) State() State { return g.state }

// Board returns the current board. It is replaced when the board size changes.
func (g *Game) Board() *board.Board { return g.board }

// Session returns the current or last play session, or nil before the first game.
func (g *Game) Session() *Session { return g.session }

// Clock returns the animation clock.
func (g *Game) Clock() *Clock { return &g.clock }

// Menu returns the active menu, or nil outside the menu states.
func (g *Game) Menu() *menu.Menu { return g.menu }

// PlayerName returns the name typed so far on the high score prompt.
func (g *Game) PlayerName() string { return string(g.name) }

// Scores returns the hall of fame as of the last time it changed.
func (g *Game) Scores() []storage.ScoreEntry { return g.table }

// Settings returns the current settings.
func (g *Game) Settings() config.Settings { return g.settings }

// CursorVisible reports whether the pointer should be shown.
func (g *Game) CursorVisible() bool { return g.cursor }

// Observe subscribes fn to events of the current board and of every board
// allocated later.
func (g *Game) Observe(fn board.Listener) {
	if fn == nil {
		return
	}
	g.listeners = append(g.listeners, fn)
	if g.board != nil {
		g.board.Observe(fn)
	}
}

// SetViewport reports the frontend's drawable area in board fields. In
// fullscreen mode the board is sized from it; outside of a game the board
// is reallocated right away.
func (g *Game) SetViewport(w, h int) {
	g.viewW, g.viewH = w, h
	if !g.settings.Fullscreen {
		return
	}
	switch g.state {
	case MainMenu, OptionsMenu, HallOfFame:
		_ = g.ensureBoard() // failure already recorded by Fail
	}
}

// BoardSize returns the size the next board will have.
func (g *Game) BoardSize() (int, int) {
	w, h := g.settings.Board.Width, g.settings.Board.Height
	if g.settings.Fullscreen && g.viewW > 0 && g.viewH > 0 {
		w, h = g.viewW, g.viewH
	}
	return core.Clamp(w, config.BoardMinWidth, config.BoardMaxWidth),
		core.Clamp(h, config.BoardMinHeight, config.BoardMaxHeight)
}

// ensureBoard reallocates the board when its size no longer matches.
func (g *Game) ensureBoard() error {
	w, h := g.BoardSize()
	if g.board != nil && g.board.Width() == w && g.board.Height() == h {
		return nil
	}
	b, err := board.New(w, h)
	if err != nil {
		err = fmt.Errorf("allocate board: %w", err)
		g.Fail(err)
		return err
	}
	for _, fn := range g.listeners {
		b.Observe(fn)
	}
	g.board = b
	g.board.Reset()
	g.logger.Debug("board allocated", "width", w, "height", h)
	return nil
}

// Tick advances one render tick.
func (g *Game) Tick() {
	switch g.state {
	case Playing:
		if g.clock.Advance() {
			g.step()
		}
	case GameOver, EnteringHiscoreName:
		g.clock.Tick()
	}
}

func (g *Game) step() {
	res, err := g.session.Step(g.seeder)
	if err != nil {
		g.Fail(err)
		return
	}
	if res.Outcome == Crashed {
		g.gameOver(res.Cause)
		return
	}
	if res.Grew {
		g.playEffect(g.audio.PlayExpandSound)
	}
}

func (g *Game) startPlay() {
	if err := g.ensureBoard(); err != nil {
		return
	}
	g.session = Start(g.board, g.seeder, g.topScore())
	g.clock.Reset()
	g.menu = nil
	g.state = Playing
	g.setCursor(false)
	g.playMusic(g.audio.PlayGameplayMusic)
	g.logger.Debug("play started", "width", g.board.Width(), "height", g.board.Height())
}

func (g *Game) gameOver(cause Cause) {
	s := g.session
	qualifies, err := g.scores.IsHighScore(s.Score)
	if err != nil {
		g.logger.Warn("cannot check high score", "error", err)
	}
	if qualifies {
		g.state = EnteringHiscoreName
		s.NewRecord = s.Score > g.topScore()
		g.name = g.name[:0]
	} else {
		g.state = GameOver
		s.NewRecord = false
	}
	g.refreshScores()
	g.clock.Settle()

	g.playEffect(g.audio.PlayDeathSound)
	g.playMusic(g.audio.PlayIdleMusic)
	g.setCursor(true)
	g.logger.Debug("game over", "cause", cause, "score", s.Score, "record", s.NewRecord)
}

func (g *Game) pause() {
	if g.state != Playing {
		return
	}
	g.state = Paused
	if g.settings.MusicOn {
		g.audio.PauseMusic()
	}
}

func (g *Game) resume() {
	if g.state != Paused {
		return
	}
	g.clock.Resume()
	g.state = Playing
	if g.settings.MusicOn {
		g.audio.ResumeMusic()
	}
}

// HandleKey dispatches a key press. Names follow the frontends' convention:
// "left", "a", "space", "enter", "esc", "backspace", "ctrl+c".
func (g *Game) HandleKey(name string) {
	if !g.Running() {
		return
	}
	name = strings.ToLower(name)
	switch Resolve(g.settings.Keys, name) {
	case core.ActionQuit:
		g.Quit()
		return
	case core.ActionBack:
		g.escape()
		return
	}

	switch g.state {
	case MainMenu, OptionsMenu, HallOfFame:
		g.menuKey(name)
	case Playing:
		g.playKey(name)
	case Paused:
		if Resolve(g.settings.Keys, name) == core.ActionPause {
			g.resume()
		}
	case GameOver:
		g.toMainMenu(true)
	case EnteringHiscoreName:
		switch name {
		case "enter":
			g.recordName()
		case "backspace":
			if len(g.name) > 0 {
				g.name = g.name[:len(g.name)-1]
			}
		}
	}
}

// HandleText appends typed text to the high score name.
func (g *Game) HandleText(text string) {
	if g.state != EnteringHiscoreName {
		return
	}
	for _, r := range text {
		if len(g.name) >= MaxNameLen {
			return
		}
		if unicode.IsPrint(r) {
			g.name = append(g.name, r)
		}
	}
}

// HandleClick handles a primary pointer click outside menu items.
func (g *Game) HandleClick() {
	if g.state == GameOver {
		g.toMainMenu(true)
	}
}

// ClickItem selects and activates menu item i, as a pointer click does.
func (g *Game) ClickItem(i int) {
	m := g.menu
	if m == nil || i < 0 || i >= m.Len() || !m.Items()[i].Selectable() {
		return
	}
	if m.Editing() && m.Cursor() != i {
		m.EndEntry()
	}
	m.SetCursor(i)
	g.activate(m.Selected())
}

func (g *Game) playKey(name string) {
	switch a := Resolve(g.settings.Keys, name); {
	case a == core.ActionPause:
		g.pause()
	case a.IsDirection():
		g.session.Steer(a.Delta())
	}
}

func (g *Game) escape() {
	if g.menu != nil && g.menu.Editing() {
		g.menu.EndEntry()
		return
	}
	switch g.state {
	case OptionsMenu, HallOfFame:
		g.toMainMenu(false)
	case GameOver, EnteringHiscoreName:
		g.toMainMenu(true)
	default:
		g.Quit()
	}
}

func (g *Game) toMainMenu(resetCursor bool) {
	if resetCursor {
		g.mainCursor = playIndex
	}
	g.state = MainMenu
	g.menu = titleMenu(g.version)
	g.menu.SetCursor(g.mainCursor)
	g.name = g.name[:0]
	g.setCursor(true)
}

func (g *Game) openOptions() {
	g.mainCursor = g.menu.Cursor()
	g.state = OptionsMenu
	g.menu = optionsMenu(g.settings)
}

func (g *Game) openHallOfFame() {
	g.mainCursor = g.menu.Cursor()
	g.state = HallOfFame
	g.refreshScores()
	g.menu = hallOfFameMenu(g.table)
}

func (g *Game) recordName() {
	name := strings.TrimSpace(string(g.name))
	if name == "" {
		name = DefaultName
	}
	s := g.session
	if err := g.scores.Add(name, s.Score, g.board.Width(), g.board.Height()); err != nil {
		g.logger.Warn("cannot save high score", "error", err)
	}
	g.refreshScores()
	g.toMainMenu(true)
}

func (g *Game) menuKey(name string) {
	m := g.menu
	if m == nil {
		return
	}
	switch m.Mode() {
	case menu.EntryKey:
		g.captureKey(name)
		return
	case menu.EntryNumber:
		g.numberKey(name)
		return
	}

	switch name {
	case "up":
		m.Up()
	case "down":
		m.Down()
	case "enter", "space":
		g.activate(m.Selected())
	}
}

func (g *Game) activate(it menu.Item) {
	if it == nil {
		return
	}
	switch it.Key() {
	case ItemPlay:
		g.startPlay()
	case ItemOptions:
		g.openOptions()
	case ItemHallOfFame:
		g.openHallOfFame()
	case ItemExit:
		g.Quit()
	case ItemBack:
		g.toMainMenu(false)
	case ItemKeyLeft, ItemKeyRight, ItemKeyUp, ItemKeyDown:
		g.menu.BeginKeyCapture()
	case ItemBoardWidth, ItemBoardHeight:
		if n, ok := it.(menu.IntConfig); ok && !g.settings.Fullscreen {
			g.menu.BeginNumber(n.ValueText())
		}
	case ItemMusic:
		g.toggleMusic()
	case ItemSfx:
		g.settings.SfxOn = !g.settings.SfxOn
		g.settingsChanged()
	case ItemDisplay:
		g.settings.Fullscreen = !g.settings.Fullscreen
		if err := g.ensureBoard(); err != nil {
			return
		}
		g.settingsChanged()
	case ItemClearScores:
		if err := g.scores.Clear(); err != nil {
			g.logger.Warn("cannot clear scores", "error", err)
		}
		g.refreshScores()
		g.menu = hallOfFameMenu(g.table)
	}
}

// captureKey binds name to the key item under the cursor. Keys already in
// use and Enter are refused; the capture ends either way.
func (g *Game) captureKey(name string) {
	m := g.menu
	defer m.EndEntry()

	k := &g.settings.Keys
	switch name {
	case k.Left, k.Right, k.Up, k.Down, k.Pause, "enter", "":
		return
	}
	it := m.Selected()
	if it == nil {
		return
	}
	switch it.Key() {
	case ItemKeyLeft:
		k.Left = name
	case ItemKeyRight:
		k.Right = name
	case ItemKeyUp:
		k.Up = name
	case ItemKeyDown:
		k.Down = name
	default:
		return
	}
	g.settingsChanged()
}

func (g *Game) numberKey(name string) {
	m := g.menu
	switch {
	case name == "backspace":
		m.Backspace()
	case name == "enter":
		g.commitNumber(m.EndEntry())
	case len(name) == 1:
		m.Digit(rune(name[0]))
	}
}

func (g *Game) commitNumber(text string) {
	n, ok := g.menu.Selected().(menu.IntConfig)
	if !ok || text == "" {
		return
	}
	v, err := strconv.Atoi(text)
	if err != nil || v < n.Min || (n.Max > 0 && v > n.Max) || g.settings.Fullscreen {
		return
	}
	switch n.ID {
	case ItemBoardWidth:
		g.settings.Board.Width = v
	case ItemBoardHeight:
		g.settings.Board.Height = v
	}
	if err := g.ensureBoard(); err != nil {
		return
	}
	g.settingsChanged()
}

func (g *Game) toggleMusic() {
	g.settings.MusicOn = !g.settings.MusicOn
	if g.settings.MusicOn {
		g.playMusic(g.audio.PlayIdleMusic)
	} else {
		g.audio.StopMusic()
	}
	g.settingsChanged()
}

// settingsChanged saves the settings and refreshes the options menu.
func (g *Game) settingsChanged() {
	if err := g.sink.Save(g.settings); err != nil {
		g.logger.Warn("cannot save settings", "error", err)
	}
	if g.state == OptionsMenu && g.menu != nil {
		syncOptions(g.menu, g.settings)
	}
}

func (g *Game) refreshScores() {
	entries, err := g.scores.Scores()
	if err != nil {
		g.logger.Warn("cannot load scores", "error", err)
		return
	}
	g.table = entries
}

func (g *Game) topScore() int {
	g.refreshScores()
	if len(g.table) == 0 {
		return 0
	}
	return g.table[0].Score
}

func (g *Game) playMusic(play func() error) {
	if !g.settings.MusicOn {
		return
	}
	if err := play(); err != nil {
		g.logger.Warn("cannot play music", "error", err)
	}
}

func (g *Game) playEffect(play func() error) {
	if !g.settings.SfxOn {
		return
	}
	if err := play(); err != nil {
		g.logger.Warn("cannot play sound", "error", err)
	}
}

func (g *Game) setCursor(visible bool) {
	g.cursor = visible
	if g.display != nil {
		g.display.ShowCursor(visible)
	}
}
