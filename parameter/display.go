package parameter

// Host surfaces
const (
	// TerminalMinShapePx keeps far entities at least this many half-block pixels wide
	TerminalMinShapePx = 0.6

	// WindowMinShapePx is the same floor for the desktop window
	WindowMinShapePx = 1.5

	WindowWidth  = 960
	WindowHeight = 640
	WindowTitle  = "Kebab Arena"

	// WindowLineHeight matches the debug font glyph height plus spacing
	WindowLineHeight = 16
)
