package gfx

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/vonsh/internal/menu"
)

var colSelected = color.RGBA{0x40, 0x30, 0xa0, 0xff}

// drawMenu draws m centered on screen and returns each item's hit box.
func drawMenu(screen *ebiten.Image, m *menu.Menu) []image.Rectangle {
	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	rows := m.Len() + 2 // title and a gap
	top := max((sh-rows*lineH)/2, 0)

	drawCentered(screen, m.Title, sw/2, top+lineH/2, colHighlight)

	boxes := make([]image.Rectangle, m.Len())
	for i, it := range m.Items() {
		label := itemLine(m, i)
		w := len(label)*glyphW + 16
		y := top + (i+2)*lineH
		r := image.Rect(sw/2-w/2, y, sw/2+w/2, y+lineH)
		boxes[i] = r

		c := color.Color(colText)
		switch {
		case i == m.Cursor():
			vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), colSelected, false)
			c = colHighlight
		case !it.Selectable():
			c = colTextDim
		}
		text.Draw(screen, label, basicfont.Face7x13, r.Min.X+8, y+12, c)
	}
	return boxes
}

// itemLine lays out table rows in fixed columns; other items use their text.
func itemLine(m *menu.Menu, i int) string {
	row, ok := m.Items()[i].(menu.TableRow)
	if !ok {
		return m.ItemText(i)
	}
	cells := make([]any, 4)
	for j := range cells {
		if j < len(row.Cells) {
			cells[j] = row.Cells[j]
		} else {
			cells[j] = ""
		}
	}
	return fmt.Sprintf("%-15s %6s  %-10s  %7s", cells...)
}
