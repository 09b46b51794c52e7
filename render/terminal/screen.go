package terminal

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// ErrNoScreen is wrapped when the terminal cannot be opened
var ErrNoScreen = errors.New("no terminal screen")

// NewScreen opens and initializes the controlling terminal
func NewScreen() (tcell.Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoScreen, err)
	}
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoScreen, err)
	}
	s.EnableFocus()
	s.HideCursor()
	s.Clear()
	return s, nil
}
