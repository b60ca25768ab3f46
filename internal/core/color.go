package core

// Color is a palette slot; the front end decides the actual terminal color.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed           // Blinky, catch flash
	ColorYellow        // player
	ColorBlue          // walls
	ColorCyan          // Inky
	ColorWhite         // dots
	ColorPink          // Pinky
	ColorOrange        // Clyde
	ColorGray          // gate, hints
)
