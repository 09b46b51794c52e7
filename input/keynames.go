package input

// Canonical names for non-printable keys, shared by the terminal and window hosts
const (
	KeyArrowUp    = "arrowup"
	KeyArrowDown  = "arrowdown"
	KeyArrowLeft  = "arrowleft"
	KeyArrowRight = "arrowright"
	KeyShift      = "shift"
	KeyEscape     = "escape"
	KeyEnter      = "enter"
	KeySpace      = "space"
	KeyCtrlC      = "ctrl+c"
)
