package tui

import (
	"fmt"
	"math/rand"
	"unicode/utf8"

	"github.com/vovakirdan/vonsh/internal/board"
	"github.com/vovakirdan/vonsh/internal/core"
	"github.com/vovakirdan/vonsh/internal/games/vonsh"
)

// CellWidth is the number of terminal columns per board field, which keeps
// fields roughly square.
const CellWidth = 2

type glyph struct {
	text string
	fg   core.Color
}

var (
	groundBg    = core.ColorSoil
	groundTiles = [vonsh.GroundTiles]glyph{
		{"  ", core.ColorMoss}, {"  ", core.ColorMoss}, {"  ", core.ColorMoss}, {"  ", core.ColorMoss},
		{". ", core.ColorMoss}, {" '", core.ColorMoss}, {", ", core.ColorGreen}, {" .", core.ColorGreen},
	}
	wallTiles = [vonsh.WallSprites]glyph{
		{"██", core.ColorGray}, {"▓▓", core.ColorGray}, {"▒▒", core.ColorGray}, {"##", core.ColorWhite},
	}
	foodTiles = [vonsh.FoodSprites]glyph{
		{"@ ", core.ColorBrightRed}, {"% ", core.ColorYellow}, {"& ", core.ColorMagenta},
		{"$ ", core.ColorBrightYellow}, {"* ", core.ColorOrange}, {"+ ", core.ColorBrightGreen},
	}
	foodMarker = glyph{"<>", core.ColorBrightWhite}

	skinRunes  = []rune("ABCDEFGHIJKLMNOPQRSTUVWX")
	skinColors = []core.Color{
		core.ColorBrightWhite, core.ColorBrightCyan, core.ColorBrightYellow,
		core.ColorBrightMagenta, core.ColorBrightBlue, core.ColorWhite,
	}
	strideRunes = [3]rune{' ', '\'', ','}
)

// BoardView draws the board into a Screen. The ground and the walls are
// cached and only change on board events.
type BoardView struct {
	rng    *rand.Rand
	ground *core.Screen
}

// NewBoardView returns a view whose ground pattern derives from seed.
func NewBoardView(seed int64) *BoardView {
	return &BoardView{
		rng:    rand.New(rand.NewSource(seed)),
		ground: core.NewScreen(0, 0),
	}
}

// Attach subscribes the view to the game's boards.
func (v *BoardView) Attach(g *vonsh.Game) {
	g.Observe(func(ev board.Event) { v.handle(g.Board(), ev) })
	if b := g.Board(); b != nil {
		v.regenerate(b)
	}
}

func (v *BoardView) handle(b *board.Board, ev board.Event) {
	switch ev.Kind {
	case board.EventReset:
		v.regenerate(b)
	case board.EventPlaced:
		if ev.Type == board.Wall {
			v.stamp(ev.At, wallTiles[ev.Param%len(wallTiles)], groundBg)
		}
	}
}

// regenerate lays a fresh ground pattern and redraws the walls of b.
func (v *BoardView) regenerate(b *board.Board) {
	v.ground.Resize(b.Width()*CellWidth, b.Height())
	for y := range b.Height() {
		for x := range b.Width() {
			v.stamp(core.Pt(x, y), groundTiles[v.rng.Intn(len(groundTiles))], groundBg)
		}
	}
	b.Each(func(p core.Point, f board.Field) {
		if f.Type == board.Wall {
			v.stamp(p, wallTiles[f.Param%len(wallTiles)], groundBg)
		}
	})
}

func (v *BoardView) stamp(p core.Point, gl glyph, bg core.Color) {
	putGlyph(v.ground, p, gl, bg)
}

func putGlyph(s *core.Screen, p core.Point, gl glyph, bg core.Color) {
	i := 0
	for _, r := range gl.text {
		s.SetCell(p.X*CellWidth+i, p.Y, core.Cell{Rune: r, Fg: gl.fg, Bg: bg})
		i++
	}
}

// Size returns the screen area the board and its HUD row need.
func (v *BoardView) Size(b *board.Board) (int, int) {
	return b.Width() * CellWidth, b.Height() + 1
}

// Draw renders the board, HUD and overlays of g into dst, which must be
// at least Size cells large.
func (v *BoardView) Draw(dst *core.Screen, g *vonsh.Game) {
	b, s := g.Board(), g.Session()
	if b == nil {
		return
	}
	dst.Blit(v.ground, 0, 0)

	state, frame := g.State(), g.Clock().Frame()
	look := vonsh.FoodSprite
	if state == vonsh.Playing {
		look = vonsh.FoodBlink(frame)
	}
	pose := vonsh.Stride(vonsh.Pose(g.Clock().Interpolation()))

	b.Each(func(p core.Point, f board.Field) {
		switch f.Type {
		case board.Food:
			switch look {
			case vonsh.FoodMarker:
				putGlyph(dst, p, foodMarker, groundBg)
			case vonsh.FoodSprite:
				putGlyph(dst, p, foodTiles[f.Param%len(foodTiles)], groundBg)
			}
		case board.Snake:
			second := strideRunes[pose]
			if s != nil && p == s.Head {
				second = facing(f.Prev.Neg())
			}
			fg := skinColors[f.Param%len(skinColors)]
			putGlyph(dst, p, glyph{string([]rune{skinRunes[f.Param%len(skinRunes)], second}), fg}, core.ColorDarkGray)
		}
	})

	w, h := v.Size(b)
	hud := h - 1
	dst.FillRect(core.NewRect(0, hud, w, 1), core.Cell{Rune: ' ', Fg: core.ColorDefault, Bg: core.ColorDefault})
	if s != nil {
		dst.DrawText(0, hud, fmt.Sprintf("HIGH SCORE: %d", s.HighScore), core.ColorBrightYellow)
		score := fmt.Sprintf("SCORE: %d", s.Score)
		dst.DrawText(w-utf8.RuneCountInString(score), hud, score, core.ColorBrightWhite)
	}

	area := core.NewRect(0, 0, w, b.Height())
	switch state {
	case vonsh.Paused:
		label := " " + vonsh.PausedText + " "
		r := area.Centered(utf8.RuneCountInString(label), 1)
		dst.DrawText(r.X, r.Y, label, core.ColorBrightWhite)
	case vonsh.GameOver, vonsh.EnteringHiscoreName:
		drawGameOver(dst, area, g)
	}
}

// facing returns the arrow for a movement direction.
func facing(d core.Point) rune {
	switch d {
	case core.DirUp:
		return '^'
	case core.DirDown:
		return 'v'
	case core.DirLeft:
		return '<'
	case core.DirRight:
		return '>'
	}
	return ' '
}

func drawGameOver(dst *core.Screen, area core.Rect, g *vonsh.Game) {
	lines := vonsh.OverlayLines(g)
	width := 0
	for _, l := range lines {
		width = max(width, utf8.RuneCountInString(l))
	}
	box := area.Centered(min(width+4, area.W), min(len(lines)+2, area.H))
	dst.FillRect(box, core.Cell{Rune: ' ', Fg: core.ColorDefault, Bg: core.ColorBlack})
	dst.DrawBox(box, core.ColorGray)
	for i, l := range lines {
		y := box.Y + 1 + i
		if y >= box.Bottom()-1 {
			break
		}
		fg := core.ColorBrightWhite
		if i == 1 {
			fg = core.ColorBrightYellow
		}
		x := box.X + (box.W-utf8.RuneCountInString(l))/2
		dst.DrawText(x, y, l, fg)
	}
}
