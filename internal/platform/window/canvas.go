// Package window runs the Math Escape scenes in a graphical window with
// Ebitengine. Scenes still draw on a cell grid; the canvas maps each cell to
// a CellW×CellH block of pixels.
package window

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/math-escape/internal/core"
)

// Cell size in pixels. A 900×500 window is a 90×25 grid.
const (
	CellW = 10
	CellH = 20
)

// Glyph metrics of basicfont.Face7x13.
const (
	glyphW = 7
	glyphH = 13
)

var (
	background = color.RGBA{R: 20, G: 20, B: 30, A: 255}

	palette = map[core.Color]color.RGBA{
		core.ColorDefault: {R: 255, G: 255, B: 255, A: 255},
		core.ColorWhite:   {R: 255, G: 255, B: 255, A: 255},
		core.ColorWarning: {R: 220, G: 80, B: 80, A: 255},
		core.ColorButton:  {R: 40, G: 40, B: 40, A: 255},
		core.ColorBorder:  {R: 200, G: 200, B: 200, A: 255},
		core.ColorPlayer:  {R: 0, G: 200, B: 255, A: 255},
		core.ColorFlash:   {R: 255, G: 255, B: 255, A: 255},
		core.ColorMuted:   {R: 140, G: 140, B: 150, A: 255},
	}

	face = text.NewGoXFace(basicfont.Face7x13)
)

func rgba(c core.Color) color.RGBA {
	if v, ok := palette[c]; ok {
		return v
	}
	return palette[core.ColorDefault]
}

// glyph maps runes the bitmap font lacks to a close ASCII stand-in.
func glyph(r rune) rune {
	switch r {
	case '×':
		return 'x'
	case '÷':
		return '/'
	}
	if r < 0x20 || r > 0x7e {
		return '?'
	}
	return r
}

// Canvas is a core.Surface over an ebiten image.
type Canvas struct {
	img  *ebiten.Image
	cols int
	rows int
}

var _ core.Surface = (*Canvas)(nil)

// Bind points the canvas at img, sized in whole cells.
func (c *Canvas) Bind(img *ebiten.Image) {
	b := img.Bounds()
	c.img = img
	c.cols = b.Dx() / CellW
	c.rows = b.Dy() / CellH
}

func (c *Canvas) Width() int { return c.cols }
func (c *Canvas) Height() int { return c.rows }

// DrawText draws one glyph per cell, centered in the cell.
func (c *Canvas) DrawText(x, y int, s string, col core.Color) {
	if y < 0 || y >= c.rows {
		return
	}
	op := &text.DrawOptions{}
	op.ColorScale.ScaleWithColor(rgba(col))

	i := 0
	for _, r := range s {
		cx := x + i
		i++
		if cx < 0 || cx >= c.cols || r == ' ' {
			continue
		}
		op.GeoM.Reset()
		op.GeoM.Translate(
			float64(cx*CellW+(CellW-glyphW)/2),
			float64(y*CellH+(CellH-glyphH)/2),
		)
		text.Draw(c.img, string(glyph(r)), face, op)
	}
}

func (c *Canvas) FillRect(r core.Rect, col core.Color) {
	if r.Empty() {
		return
	}
	x, y, w, h := pixels(r)
	vector.FillRect(c.img, x, y, w, h, rgba(col), false)
}

// DrawBox strokes the outline of r, inset by half the stroke width.
func (c *Canvas) DrawBox(r core.Rect, col core.Color) {
	if r.Empty() {
		return
	}
	x, y, w, h := pixels(r)
	const stroke = 2
	vector.StrokeRect(c.img, x+stroke/2, y+stroke/2, w-stroke, h-stroke, stroke, rgba(col), false)
}

// pixels converts a cell rectangle to pixel coordinates.
func pixels(r core.Rect) (x, y, w, h float32) {
	return float32(r.X * CellW), float32(r.Y * CellH), float32(r.W * CellW), float32(r.H * CellH)
}

// cellAt converts a pixel position to the cell containing it.
func cellAt(px, py int) (int, int) {
	return floorDiv(px, CellW), floorDiv(py, CellH)
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}
