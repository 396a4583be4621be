package core

// Color is a cell's foreground color. The zero value is the terminal's own.
type Color uint8

// Colors used by the maze and chase renderers.
const (
	ColorDefault      Color = iota
	ColorBlue               // Walls
	ColorCyan               // Maze trail
	ColorGray               // Unvisited cells, chase exit
	ColorOrange             // Maze exit
	ColorBrightBlue         // Guard
	ColorBrightGreen        // Maze walker
	ColorBrightYellow       // Chase hero
	ColorBrightWhite        // HUD text
	numColors
)

// ansiCodes holds the 256-color palette index of each Color.
var ansiCodes = [numColors]string{
	ColorBlue:         "4",
	ColorCyan:         "6",
	ColorGray:         "245",
	ColorOrange:       "208",
	ColorBrightBlue:   "12",
	ColorBrightGreen:  "10",
	ColorBrightYellow: "11",
	ColorBrightWhite:  "15",
}

// ANSI returns the 256-color palette index for c, or "" for ColorDefault
// and unknown values.
func (c Color) ANSI() string {
	if c >= numColors {
		return ""
	}
	return ansiCodes[c]
}
