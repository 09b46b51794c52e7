package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/kebab-arena/config"
	"github.com/lixenwraith/kebab-arena/engine"
	"github.com/lixenwraith/kebab-arena/parameter"
	"github.com/lixenwraith/kebab-arena/render"
)

// Display renders frames onto a tcell screen through a half-block canvas
// It satisfies engine.Renderer; Resize takes cell dimensions
type Display struct {
	screen tcell.Screen
	canvas *Canvas
	proj   *render.ProjectionRenderer
}

// NewDisplay sizes a canvas to the current screen
func NewDisplay(s tcell.Screen, cfg config.Camera) *Display {
	cols, rows := s.Size()
	c := NewCanvas(cols, rows)
	return &Display{
		screen: s,
		canvas: c,
		proj:   render.NewProjectionRenderer(c, cfg, parameter.TerminalMinShapePx),
	}
}

func (d *Display) Init(w *engine.World) {
	d.proj.Init(w)
}

func (d *Display) Render(f engine.Frame) {
	d.proj.Render(f)
	d.canvas.Flush(d.screen)
	d.screen.Show()
}

func (d *Display) Resize(cols, rows int) {
	d.canvas.Resize(cols, rows)
	d.proj.Resize(d.canvas.Size())
	d.screen.Clear()
}

// Canvas exposes the backing canvas
func (d *Display) Canvas() *Canvas { return d.canvas }
