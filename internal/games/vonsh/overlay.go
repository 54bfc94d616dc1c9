package vonsh

import "fmt"

// Overlay texts.
const (
	GameOverText  = "Game Over"
	NewRecordText = "NEW HIGH SCORE !"
	NamePrompt    = "Enter name:"
	AnyKeyText    = "Press any key"
	PausedText    = "PAUSED"
)

// OverlayLines returns the game over overlay of g as of the current frame.
// Line 1 carries the blinking record banner and is empty while it is dark.
func OverlayLines(g *Game) []string {
	s := g.Session()
	lines := []string{GameOverText, ""}
	if s != nil && s.NewRecord && BannerVisible(g.Clock().Frame()) {
		lines[1] = NewRecordText
	}
	if g.State() == EnteringHiscoreName {
		return append(lines, "", NamePrompt, g.PlayerName()+"_")
	}
	lines = append(lines, "")
	for i, row := range ScoreRows(g.Scores()) {
		lines = append(lines, fmt.Sprintf("%2d. %-15s %6s", i+1, row[0], row[1]))
	}
	return append(lines, "", AnyKeyText)
}
