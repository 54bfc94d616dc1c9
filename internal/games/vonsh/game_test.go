package vonsh

import (
	"errors"
	"reflect"
	"testing"

	"github.com/vovakirdan/vonsh/internal/board"
	"github.com/vovakirdan/vonsh/internal/config"
	"github.com/vovakirdan/vonsh/internal/core"
	"github.com/vovakirdan/vonsh/internal/menu"
	"github.com/vovakirdan/vonsh/internal/storage"
)

type recordingAudio struct {
	calls []string
}

func (a *recordingAudio) record(name string) error {
	a.calls = append(a.calls, name)
	return nil
}

func (a *recordingAudio) PlayIdleMusic() error     { return a.record("idle") }
func (a *recordingAudio) PlayGameplayMusic() error { return a.record("gameplay") }
func (a *recordingAudio) StopMusic()               { a.record("stop") }
func (a *recordingAudio) PauseMusic()              { a.record("pause") }
func (a *recordingAudio) ResumeMusic()             { a.record("resume") }
func (a *recordingAudio) PlayExpandSound() error   { return a.record("expand") }
func (a *recordingAudio) PlayDeathSound() error    { return a.record("die") }

func (a *recordingAudio) count(name string) int {
	n := 0
	for _, c := range a.calls {
		if c == name {
			n++
		}
	}
	return n
}

type memorySettings struct {
	saved []config.Settings
}

func (m *memorySettings) Save(s config.Settings) error {
	m.saved = append(m.saved, s)
	return nil
}

type fixture struct {
	game   *Game
	audio  *recordingAudio
	sink   *memorySettings
	scores *storage.Memory
}

func newFixture(t *testing.T, seed int64) *fixture {
	t.Helper()
	f := &fixture{
		audio:  &recordingAudio{},
		sink:   &memorySettings{},
		scores: storage.NewMemory(),
	}
	f.game = New(Options{
		Settings: config.DefaultSettings(),
		Scores:   f.scores,
		Audio:    f.audio,
		Sink:     f.sink,
		Seed:     seed,
		Version:  "test",
	})
	if err := f.game.Init(); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}
	return f
}

// play starts a game from the main menu with all food removed, so the
// snake moves straight up until it leaves the board.
func (f *fixture) play(t *testing.T) *Session {
	t.Helper()
	f.game.HandleKey("enter")
	if f.game.State() != Playing {
		t.Fatalf("State() = %v, expected playing", f.game.State())
	}
	b := f.game.Board()
	b.Each(func(p core.Point, fl board.Field) {
		if fl.Type == board.Food {
			b.Clear(p)
		}
	})
	return f.game.Session()
}

// runUntilOver ticks until the game leaves the playing state.
func (f *fixture) runUntilOver(t *testing.T) int {
	t.Helper()
	for i := 1; i <= 10000; i++ {
		f.game.Tick()
		if f.game.State() != Playing {
			return i
		}
	}
	t.Fatal("game never ended")
	return 0
}

func TestInitOpensMainMenu(t *testing.T) {
	f := newFixture(t, 1)
	g := f.game

	if g.State() != MainMenu {
		t.Fatalf("State() = %v, expected main menu", g.State())
	}
	if sel := g.Menu().Selected(); sel == nil || sel.Key() != ItemPlay {
		t.Errorf("Selected() = %v, expected play", sel)
	}
	if g.Board().Width() != 28 || g.Board().Height() != 28 {
		t.Errorf("board = %dx%d, expected 28x28", g.Board().Width(), g.Board().Height())
	}
	if f.audio.count("idle") != 1 {
		t.Errorf("audio calls = %v, expected idle music", f.audio.calls)
	}
	if !g.CursorVisible() {
		t.Error("cursor should show in menus")
	}
}

func TestPlayStartsSession(t *testing.T) {
	f := newFixture(t, 1)
	s := f.play(t)

	if s.Head != core.Pt(14, 14) || s.Dir != core.DirUp {
		t.Errorf("head %v dir %v, expected (14,14) up", s.Head, s.Dir)
	}
	if f.audio.count("gameplay") != 1 {
		t.Errorf("audio calls = %v, expected gameplay music", f.audio.calls)
	}
	if f.game.CursorVisible() {
		t.Error("cursor should hide while playing")
	}
	if f.game.Menu() != nil {
		t.Error("no menu while playing")
	}
}

func TestEdgeCrashEndsGame(t *testing.T) {
	f := newFixture(t, 1)
	f.play(t)

	ticks := f.runUntilOver(t)

	// 14 moves reach row 0, the 15th leaves the board.
	if ticks != 15*SubFrames {
		t.Errorf("game ended after %d ticks, expected %d", ticks, 15*SubFrames)
	}
	if f.game.State() != GameOver {
		t.Fatalf("State() = %v, expected game over", f.game.State())
	}
	if f.game.Clock().Interpolation() != 1 {
		t.Errorf("Interpolation() = %v, expected 1 after game over", f.game.Clock().Interpolation())
	}
	if f.audio.count("die") != 1 || f.audio.count("idle") != 2 {
		t.Errorf("audio calls = %v", f.audio.calls)
	}
	if !f.game.CursorVisible() {
		t.Error("cursor should show after game over")
	}

	// The overlay keeps blinking.
	frame := f.game.Clock().Frame()
	f.game.Tick()
	if f.game.Clock().Frame() != frame+1 {
		t.Error("frame should advance on the game over screen")
	}

	f.game.HandleKey("x")
	if f.game.State() != MainMenu {
		t.Errorf("State() = %v, expected main menu", f.game.State())
	}
	if sel := f.game.Menu().Selected(); sel == nil || sel.Key() != ItemPlay {
		t.Error("cursor should be back on play")
	}
}

func TestClickLeavesGameOver(t *testing.T) {
	f := newFixture(t, 1)
	f.play(t)
	f.runUntilOver(t)

	f.game.HandleClick()
	if f.game.State() != MainMenu {
		t.Errorf("State() = %v, expected main menu", f.game.State())
	}
}

func TestSoundTogglesGateAudio(t *testing.T) {
	f := newFixture(t, 1)
	f.game.settings.SfxOn = false
	f.game.settings.MusicOn = false
	f.play(t)
	f.runUntilOver(t)

	if f.audio.count("die") != 0 || f.audio.count("gameplay") != 0 {
		t.Errorf("audio calls = %v, expected no gameplay music and no effects", f.audio.calls)
	}
}

func TestHighScoreEntry(t *testing.T) {
	f := newFixture(t, 3)
	s := f.play(t)
	f.game.Board().Place(s.Head.Add(core.DirUp), board.Food, 0)

	f.runUntilOver(t)

	if s.Score < 1 {
		t.Fatalf("Score = %d, expected the food eaten", s.Score)
	}
	if f.game.State() != EnteringHiscoreName {
		t.Fatalf("State() = %v, expected name entry", f.game.State())
	}
	if !s.NewRecord {
		t.Error("first score on an empty table is a new record")
	}
	if f.audio.count("expand") < 1 {
		t.Errorf("audio calls = %v, expected an expand sound", f.audio.calls)
	}

	f.game.HandleText("Ann")
	f.game.HandleKey("a") // key names do not type
	f.game.HandleText("ie!")
	f.game.HandleKey("backspace")
	if got := f.game.PlayerName(); got != "Annie" {
		t.Errorf("PlayerName() = %q, expected Annie", got)
	}
	f.game.HandleKey("enter")

	if f.game.State() != MainMenu {
		t.Fatalf("State() = %v, expected main menu", f.game.State())
	}
	entries := f.game.Scores()
	if len(entries) != 1 || entries[0].Name != "Annie" || entries[0].Score != s.Score {
		t.Fatalf("Scores() = %+v", entries)
	}
	if entries[0].BoardW != 28 || entries[0].BoardH != 28 {
		t.Errorf("board recorded as %dx%d", entries[0].BoardW, entries[0].BoardH)
	}

	// The next session starts from the recorded high score.
	next := f.play(t)
	if next.HighScore != s.Score {
		t.Errorf("HighScore = %d, expected %d carried over", next.HighScore, s.Score)
	}
}

func TestEmptyNameRecordsDefault(t *testing.T) {
	f := newFixture(t, 3)
	s := f.play(t)
	f.game.Board().Place(s.Head.Add(core.DirUp), board.Food, 0)
	f.runUntilOver(t)

	f.game.HandleText("abcdefghijklmnopqrstuvwxyz")
	if n := len([]rune(f.game.PlayerName())); n != MaxNameLen {
		t.Errorf("name length = %d, expected %d", n, MaxNameLen)
	}
	for range MaxNameLen {
		f.game.HandleKey("backspace")
	}
	f.game.HandleKey("enter")

	entries, _ := f.scores.Scores()
	if len(entries) != 1 || entries[0].Name != DefaultName {
		t.Errorf("entries = %+v, expected %s", entries, DefaultName)
	}
}

func TestEscapeFromNameEntrySkipsRecord(t *testing.T) {
	f := newFixture(t, 3)
	s := f.play(t)
	f.game.Board().Place(s.Head.Add(core.DirUp), board.Food, 0)
	f.runUntilOver(t)

	f.game.HandleKey("esc")
	if f.game.State() != MainMenu {
		t.Errorf("State() = %v, expected main menu", f.game.State())
	}
	if entries, _ := f.scores.Scores(); len(entries) != 0 {
		t.Errorf("entries = %+v, expected none", entries)
	}
}

func TestNonQualifyingScoreGoesToGameOver(t *testing.T) {
	f := newFixture(t, 3)
	for i := 0; i < storage.Capacity; i++ {
		if err := f.scores.Add("pro", 100, 28, 28); err != nil {
			t.Fatal(err)
		}
	}
	s := f.play(t)
	f.game.Board().Place(s.Head.Add(core.DirUp), board.Food, 0)
	f.runUntilOver(t)

	if f.game.State() != GameOver || s.NewRecord {
		t.Errorf("State() = %v, NewRecord = %v, expected plain game over", f.game.State(), s.NewRecord)
	}
	if s.HighScore != 100 {
		t.Errorf("HighScore = %d, expected 100", s.HighScore)
	}
}

func TestControlLockThroughKeys(t *testing.T) {
	f := newFixture(t, 1)
	s := f.play(t)

	f.game.HandleKey("left")
	f.game.HandleKey("down")
	if s.Dir != core.DirLeft {
		t.Errorf("Dir = %v, expected left", s.Dir)
	}

	for range SubFrames {
		f.game.Tick()
	}
	f.game.HandleKey("right") // reversal
	if s.Dir != core.DirLeft {
		t.Errorf("Dir = %v, reversal should be ignored", s.Dir)
	}
	f.game.HandleKey("down")
	if s.Dir != core.DirDown {
		t.Errorf("Dir = %v, expected down after a step", s.Dir)
	}
}

func TestPauseResumeHasNoJump(t *testing.T) {
	f := newFixture(t, 1)
	s := f.play(t)

	f.game.Tick()
	f.game.Tick()
	progress := f.game.Clock().Progress()
	frame := f.game.Clock().Frame()
	head := s.Head
	if progress == 0 {
		t.Fatal("expected to pause mid interpolation")
	}

	f.game.HandleKey("space")
	if f.game.State() != Paused {
		t.Fatalf("State() = %v, expected paused", f.game.State())
	}
	for range 20 {
		f.game.Tick()
	}
	if f.game.Clock().Frame() != frame || s.Head != head {
		t.Error("nothing may advance while paused")
	}
	f.game.HandleKey("left")
	if s.Dir != core.DirUp {
		t.Error("steering is ignored while paused")
	}

	f.game.HandleKey("space")
	if f.game.State() != Playing {
		t.Fatalf("State() = %v, expected playing", f.game.State())
	}
	if got := f.game.Clock().Progress(); got != progress {
		t.Errorf("Progress() after resume = %v, expected %v", got, progress)
	}
	f.game.Tick()
	if got := f.game.Clock().Progress(); got != progress+1.0/SubFrames {
		t.Errorf("Progress() one tick later = %v, expected %v", got, progress+1.0/SubFrames)
	}
	if f.audio.count("pause") != 1 || f.audio.count("resume") != 1 {
		t.Errorf("audio calls = %v", f.audio.calls)
	}
}

func TestPauseOnlyWhilePlaying(t *testing.T) {
	f := newFixture(t, 1)
	f.game.pause()
	if f.game.State() != MainMenu {
		t.Errorf("State() = %v, pause outside play must be refused", f.game.State())
	}
}

func TestEscapeTargets(t *testing.T) {
	tests := []struct {
		name  string
		setup func(f *fixture)
		want  State
	}{
		{"main menu quits", func(f *fixture) {}, NotInitialized},
		{"options returns", func(f *fixture) { f.game.openOptions() }, MainMenu},
		{"hall of fame returns", func(f *fixture) { f.game.openHallOfFame() }, MainMenu},
		{"playing quits", func(f *fixture) { f.game.HandleKey("enter") }, NotInitialized},
		{"paused quits", func(f *fixture) {
			f.game.HandleKey("enter")
			f.game.HandleKey("space")
		}, NotInitialized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, 1)
			tt.setup(f)
			f.game.HandleKey("esc")
			if f.game.State() != tt.want {
				t.Errorf("State() = %v, expected %v", f.game.State(), tt.want)
			}
		})
	}
}

func TestMainMenuRemembersCursor(t *testing.T) {
	f := newFixture(t, 1)
	f.game.HandleKey("down")
	f.game.HandleKey("enter") // Options
	if f.game.State() != OptionsMenu {
		t.Fatalf("State() = %v, expected options", f.game.State())
	}
	f.game.HandleKey("esc")
	if sel := f.game.Menu().Selected(); sel == nil || sel.Key() != ItemOptions {
		t.Errorf("Selected() = %v, expected options", sel)
	}
}

func TestExitItemQuits(t *testing.T) {
	f := newFixture(t, 1)
	f.game.HandleKey("up") // wraps past the caption onto Exit
	if sel := f.game.Menu().Selected(); sel == nil || sel.Key() != ItemExit {
		t.Fatalf("Selected() = %v, expected exit", sel)
	}
	f.game.HandleKey("space")
	if f.game.Running() {
		t.Error("Exit should stop the game")
	}
	if f.game.Err() != nil {
		t.Errorf("Err() = %v, expected nil", f.game.Err())
	}
}

// selectItem moves the cursor of the active menu to key.
func selectItem(t *testing.T, g *Game, key string) {
	t.Helper()
	i := g.Menu().Find(key)
	if i < 0 {
		t.Fatalf("menu has no %s item", key)
	}
	g.Menu().SetCursor(i)
	if g.Menu().Cursor() != i {
		t.Fatalf("%s item is not selectable", key)
	}
}

func TestKeyCapture(t *testing.T) {
	f := newFixture(t, 1)
	g := f.game
	g.openOptions()
	selectItem(t, g, ItemKeyLeft)

	g.HandleKey("enter")
	if g.Menu().Mode() != menu.EntryKey {
		t.Fatal("expected key capture")
	}
	g.HandleKey("right") // already bound
	if g.Menu().Editing() || g.Settings().Keys.Left != "left" {
		t.Errorf("bound key accepted: %+v", g.Settings().Keys)
	}

	g.HandleKey("enter")
	g.HandleKey("enter") // Enter is refused
	if g.Settings().Keys.Left != "left" {
		t.Errorf("Enter accepted as binding")
	}

	g.HandleKey("enter")
	g.HandleKey("a")
	if g.Settings().Keys.Left != "a" {
		t.Errorf("Keys.Left = %q, expected a", g.Settings().Keys.Left)
	}
	if len(f.sink.saved) != 1 || f.sink.saved[0].Keys.Left != "a" {
		t.Errorf("saved = %+v, expected one save", f.sink.saved)
	}
	if k, ok := g.Menu().Items()[g.Menu().Find(ItemKeyLeft)].(menu.KeyConfig); !ok || k.Binding != "a" {
		t.Error("menu should show the new binding")
	}

	g.HandleKey("enter")
	g.HandleKey("esc")
	if g.Menu().Editing() || g.State() != OptionsMenu {
		t.Error("Esc should only cancel the capture")
	}

	g.HandleKey("esc")
	if sel := g.Menu().Selected(); sel == nil || sel.Key() != ItemPlay {
		t.Fatalf("Selected() = %v, expected play", sel)
	}
	g.HandleKey("enter")
	g.HandleKey("a")
	if g.Session().Dir != core.DirLeft {
		t.Error("the new binding should steer")
	}
}

func TestBoardSizeEntry(t *testing.T) {
	f := newFixture(t, 1)
	g := f.game
	g.openOptions()
	selectItem(t, g, ItemBoardWidth)

	g.HandleKey("enter")
	if g.Menu().Buffer() != "28" {
		t.Fatalf("Buffer() = %q, expected 28", g.Menu().Buffer())
	}
	g.HandleKey("backspace")
	g.HandleKey("backspace")
	g.HandleKey("4")
	g.HandleKey("x")
	g.HandleKey("0")
	g.HandleKey("enter")

	if g.Settings().Board.Width != 40 {
		t.Errorf("Board.Width = %d, expected 40", g.Settings().Board.Width)
	}
	if g.Board().Width() != 40 || g.Board().Height() != 28 {
		t.Errorf("board = %dx%d, expected 40x28", g.Board().Width(), g.Board().Height())
	}
	if len(f.sink.saved) != 1 {
		t.Errorf("saved %d times, expected 1", len(f.sink.saved))
	}

	// Below the minimum is refused.
	g.HandleKey("enter")
	g.HandleKey("backspace")
	g.HandleKey("backspace")
	g.HandleKey("9")
	g.HandleKey("enter")
	if g.Settings().Board.Width != 40 {
		t.Errorf("Board.Width = %d after undersized entry", g.Settings().Board.Width)
	}

	// So is anything above the maximum.
	g.HandleKey("enter")
	g.HandleKey("backspace")
	g.HandleKey("backspace")
	for _, d := range "999999999" {
		g.HandleKey(string(d))
	}
	g.HandleKey("enter")
	if g.Settings().Board.Width != 40 || g.Board().Width() != 40 {
		t.Errorf("Board.Width = %d after oversized entry", g.Settings().Board.Width)
	}

	// Esc cancels.
	g.HandleKey("enter")
	g.HandleKey("5")
	g.HandleKey("esc")
	if g.Menu().Editing() || g.Settings().Board.Width != 40 {
		t.Error("Esc should cancel the entry")
	}
}

func TestOversizedSettingsAreClamped(t *testing.T) {
	s := config.DefaultSettings()
	s.Board = config.BoardSize{Width: 999999999, Height: 999999999}
	g := New(Options{Settings: s, Seed: 1})
	if err := g.Init(); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}
	if w, h := g.Board().Width(), g.Board().Height(); w != config.BoardMaxWidth || h != config.BoardMaxHeight {
		t.Errorf("board = %dx%d, expected %dx%d", w, h, config.BoardMaxWidth, config.BoardMaxHeight)
	}

	g.HandleKey("enter")
	if g.State() != Playing {
		t.Errorf("State() = %v, expected %v", g.State(), Playing)
	}
}

func TestBoardResizeNotifiesObservers(t *testing.T) {
	f := newFixture(t, 1)
	g := f.game
	resets := 0
	g.Observe(func(ev board.Event) {
		if ev.Kind == board.EventReset {
			resets++
		}
	})

	g.openOptions()
	selectItem(t, g, ItemBoardHeight)
	g.HandleKey("enter")
	g.HandleKey("backspace")
	g.HandleKey("9")
	g.HandleKey("enter")

	if g.Board().Height() != 29 {
		t.Fatalf("board height = %d, expected 29", g.Board().Height())
	}
	if resets != 1 {
		t.Errorf("resets = %d, expected 1 for the new board", resets)
	}
	g.HandleKey("esc")
	g.HandleKey("enter")
	if resets != 2 {
		t.Errorf("resets = %d, expected 2 after play", resets)
	}
}

func TestFullscreenToggle(t *testing.T) {
	f := newFixture(t, 1)
	g := f.game
	g.SetViewport(50, 30)
	g.openOptions()
	selectItem(t, g, ItemDisplay)

	g.HandleKey("enter")
	if !g.Settings().Fullscreen {
		t.Fatal("Fullscreen should be on")
	}
	if g.Board().Width() != 50 || g.Board().Height() != 30 {
		t.Errorf("board = %dx%d, expected 50x30", g.Board().Width(), g.Board().Height())
	}
	if g.Menu().Find(ItemBoardWidth) >= 0 && g.Menu().Items()[g.Menu().Find(ItemBoardWidth)].Selectable() {
		t.Error("board size items should be disabled in fullscreen")
	}

	// Small viewports are clamped.
	g.SetViewport(10, 10)
	if g.Board().Width() != config.BoardMinWidth || g.Board().Height() != config.BoardMinHeight {
		t.Errorf("board = %dx%d, expected the minimum", g.Board().Width(), g.Board().Height())
	}

	g.HandleKey("enter")
	if g.Settings().Fullscreen || g.Board().Width() != 28 {
		t.Error("toggling back should restore the windowed board")
	}
	if len(f.sink.saved) != 2 {
		t.Errorf("saved %d times, expected 2", len(f.sink.saved))
	}
}

func TestMusicToggle(t *testing.T) {
	f := newFixture(t, 1)
	g := f.game
	g.openOptions()
	selectItem(t, g, ItemMusic)

	g.HandleKey("enter")
	if g.Settings().MusicOn || f.audio.count("stop") != 1 {
		t.Errorf("music off: MusicOn = %v, calls = %v", g.Settings().MusicOn, f.audio.calls)
	}
	g.HandleKey("enter")
	if !g.Settings().MusicOn || f.audio.count("idle") != 2 {
		t.Errorf("music on: MusicOn = %v, calls = %v", g.Settings().MusicOn, f.audio.calls)
	}

	selectItem(t, g, ItemSfx)
	g.HandleKey("space")
	if g.Settings().SfxOn {
		t.Error("SfxOn should be off")
	}
	if len(f.sink.saved) != 3 {
		t.Errorf("saved %d times, expected 3", len(f.sink.saved))
	}
}

func TestHallOfFame(t *testing.T) {
	f := newFixture(t, 1)
	g := f.game

	g.openHallOfFame()
	m := g.Menu()
	if sel := m.Selected(); sel == nil || sel.Key() != ItemBack {
		t.Errorf("Selected() = %v, expected back", sel)
	}
	if m.Find(ItemClearScores) >= 0 {
		t.Error("an empty table has no clear item")
	}
	if l, ok := m.Items()[1].(menu.Label); !ok || l.Text != "The table is empty. Play!" {
		t.Errorf("items[1] = %+v", m.Items()[1])
	}

	if err := f.scores.Add("ann", 5, 30, 28); err != nil {
		t.Fatal(err)
	}
	g.HandleKey("esc")
	g.openHallOfFame()
	m = g.Menu()
	row, ok := m.Items()[2].(menu.TableRow)
	if !ok || row.Cells[0] != "ann" || row.Cells[1] != "5" || row.Cells[3] != "30x28" {
		t.Fatalf("items[2] = %+v", m.Items()[2])
	}

	selectItem(t, g, ItemClearScores)
	g.HandleKey("enter")
	if len(g.Scores()) != 0 {
		t.Errorf("Scores() = %+v, expected empty", g.Scores())
	}
	if sel := g.Menu().Selected(); sel == nil || sel.Key() != ItemBack {
		t.Error("cursor should return to back after clearing")
	}
}

func TestClickItem(t *testing.T) {
	f := newFixture(t, 1)
	f.game.ClickItem(0) // caption
	if f.game.State() != MainMenu {
		t.Fatal("clicking a caption does nothing")
	}
	f.game.ClickItem(f.game.Menu().Find(ItemHallOfFame))
	if f.game.State() != HallOfFame {
		t.Errorf("State() = %v, expected hall of fame", f.game.State())
	}
}

func TestFirstErrorWins(t *testing.T) {
	f := newFixture(t, 1)
	first := errors.New("first")
	f.game.Fail(first)
	f.game.Fail(errors.New("second"))

	if !errors.Is(f.game.Err(), first) {
		t.Errorf("Err() = %v, expected first", f.game.Err())
	}
	if f.game.Running() {
		t.Error("Fail() should stop the game")
	}
	f.game.HandleKey("enter")
	if f.game.State() != NotInitialized {
		t.Error("input after a fatal error is ignored")
	}
}

func TestBrokenChainIsFatal(t *testing.T) {
	f := newFixture(t, 1)
	s := f.play(t)

	// A tail that cannot be reached from the head.
	tail := s.Head.Add(core.Pt(5, 5))
	f.game.Board().At(tail).Type = board.Snake
	s.Tail = tail

	for range SubFrames {
		f.game.Tick()
	}
	if f.game.Running() {
		t.Fatal("a broken chain should stop the game")
	}
	if !errors.Is(f.game.Err(), board.ErrChainBroken) {
		t.Errorf("Err() = %v, expected ErrChainBroken", f.game.Err())
	}
}

func TestDeterminism(t *testing.T) {
	// Two games with the same seed and inputs produce identical snapshots.
	run := func() Snapshot {
		f := newFixture(t, 12345)
		f.game.HandleKey("enter")
		for i := 0; i < 300 && f.game.State() == Playing; i++ {
			switch i {
			case 20:
				f.game.HandleKey("left")
			case 40:
				f.game.HandleKey("down")
			case 90:
				f.game.HandleKey("right")
			}
			f.game.Tick()
		}
		return f.game.Snapshot()
	}

	s1, s2 := run(), run()
	if !reflect.DeepEqual(s1, s2) {
		t.Errorf("snapshots differ:\n%+v\n%+v", s1, s2)
	}
	if s1.Frame == 0 {
		t.Error("the game should have run")
	}
}
