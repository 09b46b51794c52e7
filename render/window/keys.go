package window

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lixenwraith/kebab-arena/input"
)

// KeyNames maps pressed ebiten keys to the shared key names
// Either shift reports shift; control plus C reports ctrl+c
func KeyNames(pressed []ebiten.Key, out []string) []string {
	ctrl := false
	for _, k := range pressed {
		if k == ebiten.KeyControlLeft || k == ebiten.KeyControlRight {
			ctrl = true
		}
	}

	for _, k := range pressed {
		switch k {
		case ebiten.KeyShiftLeft, ebiten.KeyShiftRight:
			out = append(out, input.KeyShift)
		case ebiten.KeyControlLeft, ebiten.KeyControlRight:
		case ebiten.KeyC:
			if ctrl {
				out = append(out, input.KeyCtrlC)
			}
			out = append(out, "c")
		default:
			out = append(out, strings.ToLower(k.String()))
		}
	}
	return out
}
