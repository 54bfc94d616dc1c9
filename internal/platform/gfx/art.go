package gfx

import (
	"fmt"
	"image/color"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/vonsh/internal/board"
	"github.com/vovakirdan/vonsh/internal/core"
	"github.com/vovakirdan/vonsh/internal/games/vonsh"
)

var (
	colBackground = color.RGBA{0x10, 0x14, 0x10, 0xff}
	colText       = color.RGBA{0xee, 0xee, 0xee, 0xff}
	colTextDim    = color.RGBA{0x88, 0x88, 0x88, 0xff}
	colHighlight  = color.RGBA{0xff, 0xe0, 0x66, 0xff}
	colOverlay    = color.RGBA{0x00, 0x00, 0x00, 0xc0}

	groundColors = [vonsh.GroundTiles]color.RGBA{
		{0x2e, 0x4a, 0x22, 0xff}, {0x30, 0x4d, 0x24, 0xff}, {0x2b, 0x47, 0x20, 0xff}, {0x33, 0x50, 0x26, 0xff},
		{0x3a, 0x56, 0x2a, 0xff}, {0x2a, 0x43, 0x1f, 0xff}, {0x4a, 0x40, 0x28, 0xff}, {0x36, 0x52, 0x22, 0xff},
	}
	wallColors = [vonsh.WallSprites]color.RGBA{
		{0x70, 0x70, 0x78, 0xff}, {0x80, 0x78, 0x70, 0xff}, {0x60, 0x64, 0x6c, 0xff}, {0x8c, 0x8c, 0x90, 0xff},
	}
	foodColors = [vonsh.FoodSprites]color.RGBA{
		{0xe0, 0x30, 0x30, 0xff}, {0xf0, 0xc0, 0x20, 0xff}, {0xc0, 0x40, 0xc0, 0xff},
		{0xf0, 0x80, 0x20, 0xff}, {0x60, 0xd0, 0x40, 0xff}, {0xf0, 0xf0, 0xa0, 0xff},
	}
	skinColors = []color.RGBA{
		{0xf4, 0xc4, 0x9c, 0xff}, {0xd8, 0xa0, 0x78, 0xff}, {0xa8, 0x70, 0x48, 0xff},
		{0x7c, 0x50, 0x30, 0xff}, {0xff, 0xdc, 0xb8, 0xff}, {0xc0, 0x8c, 0x60, 0xff},
	}
	shirtColors = []color.RGBA{
		{0x30, 0x60, 0xd0, 0xff}, {0xd0, 0x30, 0x30, 0xff}, {0x30, 0xa0, 0x50, 0xff}, {0xe0, 0xa0, 0x20, 0xff},
	}
)

const (
	glyphW = 7
	lineH  = 16
)

// art caches the ground image and draws everything on top of it.
type art struct {
	rng    *rand.Rand
	ground *ebiten.Image
}

func newArt(seed int64) *art {
	return &art{rng: rand.New(rand.NewSource(seed))}
}

func (a *art) attach(g *vonsh.Game) {
	g.Observe(func(ev board.Event) {
		switch ev.Kind {
		case board.EventReset:
			a.regenerate(g.Board())
		case board.EventPlaced:
			if ev.Type == board.Wall && a.ground != nil {
				drawWall(a.ground, ev.At, ev.Param)
			}
		}
	})
	if b := g.Board(); b != nil {
		a.regenerate(b)
	}
}

// regenerate paints a fresh ground for b and the walls already on it.
func (a *art) regenerate(b *board.Board) {
	w, h := b.Width()*Tile, b.Height()*Tile
	if a.ground == nil || a.ground.Bounds().Dx() != w || a.ground.Bounds().Dy() != h {
		if a.ground != nil {
			a.ground.Deallocate()
		}
		a.ground = ebiten.NewImage(w, h)
	}
	for y := range b.Height() {
		for x := range b.Width() {
			c := groundColors[a.rng.Intn(len(groundColors))]
			vector.DrawFilledRect(a.ground, float32(x*Tile), float32(y*Tile), Tile, Tile, c, false)
		}
	}
	b.Each(func(p core.Point, f board.Field) {
		if f.Type == board.Wall {
			drawWall(a.ground, p, f.Param)
		}
	})
}

func drawWall(dst *ebiten.Image, p core.Point, sprite int) {
	x, y := float32(p.X*Tile), float32(p.Y*Tile)
	c := wallColors[sprite%len(wallColors)]
	vector.DrawFilledRect(dst, x+1, y+1, Tile-2, Tile-2, c, false)
	vector.StrokeRect(dst, x+1, y+1, Tile-2, Tile-2, 1, colBackground, false)
	vector.StrokeLine(dst, x+1, y+Tile/2, x+Tile-1, y+Tile/2, 1, colBackground, false)
}

// origin returns the top-left pixel of the board and its HUD, centered on screen.
func origin(screen *ebiten.Image, b *board.Board) (float32, float32) {
	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	bw, bh := b.Width()*Tile, (b.Height()+1)*Tile
	return float32(max((sw-bw)/2, 0)), float32(max((sh-bh)/2, 0))
}

func (a *art) drawBoard(screen *ebiten.Image, g *vonsh.Game) {
	b, s := g.Board(), g.Session()
	if b == nil || a.ground == nil {
		return
	}
	ox, oy := origin(screen, b)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(ox), float64(oy))
	screen.DrawImage(a.ground, op)

	state, clock := g.State(), g.Clock()
	look := vonsh.FoodSprite
	if state == vonsh.Playing {
		look = vonsh.FoodBlink(clock.Frame())
	}
	t := clock.Interpolation()
	stride := vonsh.Stride(vonsh.Pose(t))

	b.Each(func(p core.Point, f board.Field) {
		x, y := ox+float32(p.X*Tile), oy+float32(p.Y*Tile)
		switch f.Type {
		case board.Food:
			drawFood(screen, x, y, f.Param, look)
		case board.Snake:
			// Segments slide from the field they came from.
			off := float32(1-t) * Tile
			x += off * float32(f.Prev.X)
			y += off * float32(f.Prev.Y)
			drawCharacter(screen, x, y, f.Param, f.Prev.Neg(), stride, s != nil && p == s.Head)
		}
	})

	hudY := int(oy) + b.Height()*Tile + 12
	if s != nil {
		text.Draw(screen, fmt.Sprintf("HIGH SCORE: %d", s.HighScore), basicfont.Face7x13, int(ox)+2, hudY, colHighlight)
		score := fmt.Sprintf("SCORE: %d", s.Score)
		text.Draw(screen, score, basicfont.Face7x13, int(ox)+b.Width()*Tile-len(score)*glyphW-2, hudY, colText)
	}

	bw, bh := b.Width()*Tile, b.Height()*Tile
	switch state {
	case vonsh.Paused:
		drawCentered(screen, vonsh.PausedText, int(ox)+bw/2, int(oy)+bh/2, colText)
	case vonsh.GameOver, vonsh.EnteringHiscoreName:
		drawOverlay(screen, vonsh.OverlayLines(g), int(ox), int(oy), bw, bh)
	}
}

func drawFood(dst *ebiten.Image, x, y float32, sprite int, look vonsh.FoodLook) {
	switch look {
	case vonsh.FoodHidden:
		return
	case vonsh.FoodMarker:
		vector.StrokeRect(dst, x+2, y+2, Tile-4, Tile-4, 2, colText, false)
		return
	}
	c := foodColors[sprite%len(foodColors)]
	vector.DrawFilledCircle(dst, x+Tile/2, y+Tile/2+1, Tile/2-3, c, true)
	vector.DrawFilledRect(dst, x+Tile/2-1, y+2, 2, 3, color.RGBA{0x40, 0x90, 0x30, 0xff}, false)
}

// drawCharacter draws a little person facing dir. stride selects the
// resting pose or one of the two walking poses.
func drawCharacter(dst *ebiten.Image, x, y float32, skin int, dir core.Point, stride int, head bool) {
	face := skinColors[skin%len(skinColors)]
	shirt := shirtColors[(skin/len(skinColors))%len(shirtColors)]

	// Legs.
	legL, legR := float32(0), float32(0)
	switch stride {
	case 1:
		legL, legR = -2, 2
	case 2:
		legL, legR = 2, -2
	}
	legY := y + Tile - 5
	vector.DrawFilledRect(dst, x+4+legL, legY, 3, 4, colBackground, false)
	vector.DrawFilledRect(dst, x+Tile-7+legR, legY, 3, 4, colBackground, false)

	// Body and head.
	vector.DrawFilledRect(dst, x+3, y+7, Tile-6, 6, shirt, false)
	vector.DrawFilledCircle(dst, x+Tile/2, y+5, 4, face, true)

	// Eyes look where the character walks.
	ex, ey := x+Tile/2+float32(dir.X)*2, y+5+float32(dir.Y)*2
	vector.DrawFilledRect(dst, ex-2, ey-1, 1, 1, colBackground, false)
	vector.DrawFilledRect(dst, ex+1, ey-1, 1, 1, colBackground, false)
	if head {
		vector.StrokeCircle(dst, x+Tile/2, y+5, 5, 1, colHighlight, true)
	}
}

func drawCentered(dst *ebiten.Image, s string, cx, cy int, c color.Color) {
	bounds := text.BoundString(basicfont.Face7x13, s)
	text.Draw(dst, s, basicfont.Face7x13, cx-bounds.Dx()/2, cy+bounds.Dy()/2, c)
}

func drawOverlay(dst *ebiten.Image, lines []string, x, y, w, h int) {
	width := 0
	for _, l := range lines {
		width = max(width, len(l)*glyphW)
	}
	bw, bh := min(width+32, w), min(len(lines)*lineH+24, h)
	bx, by := x+(w-bw)/2, y+(h-bh)/2
	vector.DrawFilledRect(dst, float32(bx), float32(by), float32(bw), float32(bh), colOverlay, false)
	vector.StrokeRect(dst, float32(bx), float32(by), float32(bw), float32(bh), 1, colTextDim, false)

	for i, l := range lines {
		c := color.Color(colText)
		if i == 1 {
			c = colHighlight
		}
		drawCentered(dst, l, bx+bw/2, by+12+i*lineH+lineH/2, c)
	}
}
