package window

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/lixenwraith/kebab-arena/config"
	"github.com/lixenwraith/kebab-arena/engine"
	"github.com/lixenwraith/kebab-arena/input"
	"github.com/lixenwraith/kebab-arena/parameter"
	"github.com/lixenwraith/kebab-arena/render"
)

// Display keeps the latest frame from Update and draws it in Draw
// ebiten only allows drawing to the screen inside Draw, and may call Draw
// several times per Update, so the camera advances in Render only
type Display struct {
	canvas *Canvas
	proj   *render.ProjectionRenderer
	last   engine.Frame
}

// NewDisplay creates a display of the given logical size
func NewDisplay(width, height int, cfg config.Camera) *Display {
	c := NewCanvas(width, height)
	return &Display{
		canvas: c,
		proj:   render.NewProjectionRenderer(c, cfg, parameter.WindowMinShapePx),
	}
}

func (d *Display) Init(w *engine.World) { d.proj.Init(w) }

func (d *Display) Render(f engine.Frame) {
	d.proj.Advance(f)
	d.last = f
}

func (d *Display) Resize(width, height int) {
	d.canvas.Resize(width, height)
	d.proj.Resize(d.canvas.Size())
}

// Draw renders the stored frame onto screen
func (d *Display) Draw(screen *ebiten.Image) {
	d.canvas.Begin(screen)
	d.proj.Draw(d.last)
	d.canvas.Begin(nil)
}

// Game drives a session from the ebiten loop
type Game struct {
	session *engine.Session
	keys    *input.KeySet
	display *Display

	pressed []ebiten.Key
	names   []string
	width   int
	height  int
}

// NewGame wires a session to the window display
func NewGame(session *engine.Session, keys *input.KeySet, display *Display) *Game {
	w, h := display.canvas.Size()
	return &Game{session: session, keys: keys, display: display, width: w, height: h}
}

// Update samples the keyboard and advances one fixed tick
func (g *Game) Update() error {
	g.pressed = inpututil.AppendPressedKeys(g.pressed[:0])
	g.names = KeyNames(g.pressed, g.names[:0])

	g.keys.Clear()
	for _, n := range g.names {
		g.keys.Press(n)
	}

	if g.session.QuitRequested() {
		log.Printf("window: quit requested")
		return ebiten.Termination
	}

	g.session.Frame(1.0 / float64(ebiten.TPS()))
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.display.Draw(screen)
}

// Layout follows the window size so the projection refocuses on resize
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.display.Resize(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}
