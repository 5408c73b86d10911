package core

// Surface is the drawing target handed to scenes. Coordinates are logical
// grid cells; the terminal maps a cell to a character, the window maps it to
// a block of pixels.
type Surface interface {
	Width() int
	Height() int

	// DrawText writes text starting at (x, y). Out-of-bounds cells are clipped.
	DrawText(x, y int, text string, c Color)

	// FillRect paints every cell of r.
	FillRect(r Rect, c Color)

	// DrawBox outlines r.
	DrawBox(r Rect, c Color)
}

// DrawTextCentered draws text horizontally centered on row y.
func DrawTextCentered(dst Surface, y int, text string, c Color) {
	x := (dst.Width() - TextWidth(text)) / 2
	dst.DrawText(x, y, text, c)
}

// DrawTextRight draws text so that it ends at column right (exclusive).
func DrawTextRight(dst Surface, right, y int, text string, c Color) {
	dst.DrawText(right-TextWidth(text), y, text, c)
}

// DrawLabel draws a labelled rectangle: a filled box with an outline and the
// label centered inside it.
func DrawLabel(dst Surface, r Rect, label string, fill, border, fg Color) {
	dst.FillRect(r, fill)
	dst.DrawBox(r, border)
	_, cy := r.Center()
	x := r.X + (r.W-TextWidth(label))/2
	dst.DrawText(x, cy, label, fg)
}

// TextWidth returns the number of cells text occupies.
func TextWidth(text string) int {
	n := 0
	for range text {
		n++
	}
	return n
}
