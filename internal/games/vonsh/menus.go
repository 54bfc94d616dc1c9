package vonsh

import (
	"strconv"
	"strings"

	"github.com/vovakirdan/vonsh/internal/config"
	"github.com/vovakirdan/vonsh/internal/menu"
	"github.com/vovakirdan/vonsh/internal/storage"
)

// Menu item keys.
const (
	ItemPlay        = "play"
	ItemOptions     = "options"
	ItemHallOfFame  = "hall_of_fame"
	ItemExit        = "exit"
	ItemBack        = "back"
	ItemKeyLeft     = "key_left"
	ItemKeyRight    = "key_right"
	ItemKeyUp       = "key_up"
	ItemKeyDown     = "key_down"
	ItemBoardWidth  = "board_width"
	ItemBoardHeight = "board_height"
	ItemMusic       = "music"
	ItemSfx         = "sfx"
	ItemDisplay     = "display"
	ItemClearScores = "clear_scores"
)

// playIndex is the title menu position of Play.
const playIndex = 1

// DateLayout formats hall of fame dates.
const DateLayout = "2006-01-02"

var (
	onOff         = [2]string{"OFF", "ON"}
	displayStates = [2]string{"window", "fullscreen"}
)

func titleMenu(version string) *menu.Menu {
	return menu.New("vonsh",
		menu.Label{Text: "version: " + version, Caption: true},
		menu.Label{ID: ItemPlay, Text: "Play"},
		menu.Label{ID: ItemOptions, Text: "Options"},
		menu.Label{ID: ItemHallOfFame, Text: "Hall of fame"},
		menu.Label{ID: ItemExit, Text: "Exit"},
	)
}

func optionsMenu(s config.Settings) *menu.Menu {
	return menu.New("Options",
		menu.Label{Text: "Options", Caption: true},
		menu.KeyConfig{ID: ItemKeyLeft, Text: "Left:", Binding: s.Keys.Left},
		menu.KeyConfig{ID: ItemKeyRight, Text: "Right:", Binding: s.Keys.Right},
		menu.KeyConfig{ID: ItemKeyUp, Text: "Up:", Binding: s.Keys.Up},
		menu.KeyConfig{ID: ItemKeyDown, Text: "Down:", Binding: s.Keys.Down},
		menu.IntConfig{ID: ItemBoardWidth, Text: "Board Width:", Value: s.Board.Width, Min: config.BoardMinWidth, Max: config.BoardMaxWidth, Disabled: s.Fullscreen},
		menu.IntConfig{ID: ItemBoardHeight, Text: "Board Height:", Value: s.Board.Height, Min: config.BoardMinHeight, Max: config.BoardMaxHeight, Disabled: s.Fullscreen},
		menu.Label{Text: "Pause: " + strings.ToUpper(s.Keys.Pause), Caption: true},
		menu.Switch{ID: ItemMusic, Text: "Music:", On: s.MusicOn, States: onOff},
		menu.Switch{ID: ItemSfx, Text: "Sound effects:", On: s.SfxOn, States: onOff},
		menu.Switch{ID: ItemDisplay, Text: "Display:", On: s.Fullscreen, States: displayStates},
		menu.Label{ID: ItemBack, Text: "Back"},
	)
}

// syncOptions rewrites the options items from s, keeping cursor and entry state.
func syncOptions(m *menu.Menu, s config.Settings) {
	fresh := optionsMenu(s)
	for i, it := range fresh.Items() {
		m.Set(i, it)
	}
}

func hallOfFameMenu(entries []storage.ScoreEntry) *menu.Menu {
	items := []menu.Item{menu.Label{Text: "Hall of fame", Caption: true}}
	if len(entries) == 0 {
		items = append(items, menu.Label{Text: "The table is empty. Play!", Caption: true})
	} else {
		items = append(items, menu.TableRow{Cells: []string{"Player", "Score", "Date", "Board"}, Header: true})
		for _, r := range ScoreRows(entries) {
			items = append(items, menu.TableRow{Cells: r})
		}
		items = append(items, menu.Label{ID: ItemClearScores, Text: "Clear scores"})
	}
	items = append(items, menu.Label{ID: ItemBack, Text: "Back"})

	m := menu.New("Hall of fame", items...)
	m.SelectLast()
	return m
}

// ScoreRows formats entries as Player, Score, Date and Board cells.
func ScoreRows(entries []storage.ScoreEntry) [][]string {
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		date := "----------"
		if !e.CreatedAt.IsZero() {
			date = e.CreatedAt.Local().Format(DateLayout)
		}
		rows = append(rows, []string{
			e.Name,
			strconv.Itoa(e.Score),
			date,
			strconv.Itoa(e.BoardW) + "x" + strconv.Itoa(e.BoardH),
		})
	}
	return rows
}
