package core

// Color is a logical color for text and rectangles. Frontends map it to
// terminal styles or RGBA values.
type Color uint8

// Palette used by the scenes.
const (
	ColorDefault Color = iota
	ColorWhite
	ColorWarning // Timer readout below the warning threshold
	ColorButton  // Button and input box fill
	ColorBorder  // Button and input box outline
	ColorPlayer  // Player marker
	ColorFlash   // Player marker while flashing
	ColorMuted   // Hints and footers
)

// String returns the palette name of the color.
func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorWhite:
		return "white"
	case ColorWarning:
		return "warning"
	case ColorButton:
		return "button"
	case ColorBorder:
		return "border"
	case ColorPlayer:
		return "player"
	case ColorFlash:
		return "flash"
	case ColorMuted:
		return "muted"
	default:
		return "unknown"
	}
}
