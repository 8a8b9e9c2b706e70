package core

// Color represents a foreground color for a screen cell.
// The platform maps each value to an ANSI 256-color code.
type Color uint8

// Palette used by the game and its HUD.
const (
	ColorDefault Color = iota
	ColorGhost         // green
	ColorBomb          // red
	ColorNet           // light blue
	ColorFrost         // pale cyan overlay while frozen
	ColorWarning       // bright red, low time
	ColorHighlight     // yellow, high score
	ColorDim           // gray, borders and hints
	ColorTitle         // bright white
)

// String returns the palette name of the color.
func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorGhost:
		return "ghost"
	case ColorBomb:
		return "bomb"
	case ColorNet:
		return "net"
	case ColorFrost:
		return "frost"
	case ColorWarning:
		return "warning"
	case ColorHighlight:
		return "highlight"
	case ColorDim:
		return "dim"
	case ColorTitle:
		return "title"
	default:
		return "unknown"
	}
}
