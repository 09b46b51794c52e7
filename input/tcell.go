package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
)

var tcellSpecialNames = map[tcell.Key]string{
	tcell.KeyUp:     KeyArrowUp,
	tcell.KeyDown:   KeyArrowDown,
	tcell.KeyLeft:   KeyArrowLeft,
	tcell.KeyRight:  KeyArrowRight,
	tcell.KeyEscape: KeyEscape,
	tcell.KeyEnter:  KeyEnter,
	tcell.KeyCtrlC:  KeyCtrlC,
}

// TcellKeyNames translates a terminal key event into held key names
// Shifted letters and shift-modified keys also report shift
func TcellKeyNames(ev *tcell.EventKey) []string {
	shift := ev.Modifiers()&tcell.ModShift != 0

	var names []string
	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		switch {
		case ev.Modifiers()&tcell.ModCtrl != 0 && unicode.ToLower(r) == 'c':
			names = append(names, KeyCtrlC)
		case r == ' ':
			names = append(names, KeySpace)
		case unicode.IsUpper(r):
			shift = true
			names = append(names, string(unicode.ToLower(r)))
		default:
			names = append(names, string(r))
		}
	} else if n, ok := tcellSpecialNames[ev.Key()]; ok {
		names = append(names, n)
	}

	if shift && len(names) > 0 {
		names = append(names, KeyShift)
	}
	return names
}
