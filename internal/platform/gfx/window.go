// Package gfx runs the game in a desktop window with ebiten. Characters
// glide between fields using the game's interpolation factor.
package gfx

import (
	"context"
	"image"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/vonsh/internal/core"
	"github.com/vovakirdan/vonsh/internal/games/vonsh"
	"github.com/vovakirdan/vonsh/internal/registry"
)

// Tile is the edge of one board field in pixels.
const Tile = 16

func init() {
	registry.Register("window", func() registry.Frontend { return Frontend{} })
}

// Frontend runs the game in a window.
type Frontend struct{}

func (Frontend) ID() string    { return "window" }
func (Frontend) Title() string { return "Window (ebiten)" }

// Run opens the window and blocks until the player quits or ctx is done.
func (Frontend) Run(ctx context.Context, env registry.Env) error {
	opts := env.Options
	opts.Display = cursor{}
	g := vonsh.New(opts)
	if err := g.Init(); err != nil {
		return err
	}

	w := newWindow(ctx, g, env.Runtime.ResolveSeed())
	bw, bh := g.BoardSize()
	ebiten.SetWindowSize(bw*Tile, (bh+1)*Tile)
	ebiten.SetWindowTitle("vonsh")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(int(time.Second / core.TickInterval))
	ebiten.SetFullscreen(g.Settings().Fullscreen)

	if err := ebiten.RunGame(w); err != nil {
		return err
	}
	return g.Err()
}

// cursor shows and hides the mouse pointer.
type cursor struct{}

func (cursor) ShowCursor(visible bool) {
	if visible {
		ebiten.SetCursorMode(ebiten.CursorModeVisible)
		return
	}
	ebiten.SetCursorMode(ebiten.CursorModeHidden)
}

// window implements ebiten.Game. Each Update is one render tick.
type window struct {
	ctx    context.Context
	game   *vonsh.Game
	art    *art
	keys   []ebiten.Key
	chars  []rune
	items  []image.Rectangle // menu item hit boxes from the last Draw
	outW   int
	outH   int
	layout image.Point
}

func newWindow(ctx context.Context, g *vonsh.Game, seed int64) *window {
	w := &window{ctx: ctx, game: g, art: newArt(seed)}
	w.art.attach(g)
	return w
}

func (w *window) Update() error {
	g := w.game
	if w.ctx.Err() != nil {
		g.Quit()
	}

	if vp := image.Pt(w.outW/Tile, w.outH/Tile-1); vp != w.layout && vp.X > 0 && vp.Y > 0 {
		w.layout = vp
		g.SetViewport(vp.X, vp.Y)
	}

	for _, name := range pressedKeys(w.keys) {
		g.HandleKey(name)
	}
	w.chars = ebiten.AppendInputChars(w.chars[:0])
	if len(w.chars) > 0 {
		g.HandleText(string(w.chars))
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		w.click(image.Pt(ebiten.CursorPosition()))
	}

	g.Tick()

	if !g.Running() {
		return ebiten.Termination
	}
	if fs := g.Settings().Fullscreen; fs != ebiten.IsFullscreen() {
		ebiten.SetFullscreen(fs)
	}
	return nil
}

// click activates the menu item under p, or forwards a plain click.
func (w *window) click(p image.Point) {
	if w.game.Menu() == nil {
		w.game.HandleClick()
		return
	}
	for i, r := range w.items {
		if p.In(r) {
			w.game.ClickItem(i)
			return
		}
	}
}

func (w *window) Draw(screen *ebiten.Image) {
	screen.Fill(colBackground)
	if m := w.game.Menu(); m != nil {
		w.items = drawMenu(screen, m)
		return
	}
	w.items = w.items[:0]
	w.art.drawBoard(screen, w.game)
}

func (w *window) Layout(outsideWidth, outsideHeight int) (int, int) {
	w.outW, w.outH = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}
