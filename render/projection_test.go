package render

import (
	"math/rand"
	"testing"

	"github.com/lixenwraith/kebab-arena/config"
	"github.com/lixenwraith/kebab-arena/engine"
)

type drawOp struct {
	kind  string
	x, y  float64
	w, h  float64
	alpha float64
	text  string
}

type recordingCanvas struct {
	width, height int
	ops           []drawOp
}

func (c *recordingCanvas) Size() (int, int)   { return c.width, c.height }
func (c *recordingCanvas) LineHeight() float64 { return 2 }
func (c *recordingCanvas) FillGradient(Gradient) {
	c.ops = append(c.ops, drawOp{kind: "gradient"})
}
func (c *recordingCanvas) FillRect(x, y, w, h float64, _ RGB, alpha float64) {
	c.ops = append(c.ops, drawOp{kind: "rect", x: x, y: y, w: w, h: h, alpha: alpha})
}
func (c *recordingCanvas) FillCircle(x, y, r float64, _ RGB, alpha float64) {
	c.ops = append(c.ops, drawOp{kind: "circle", x: x, y: y, w: r, alpha: alpha})
}
func (c *recordingCanvas) FillPolygon(pts []Point, _ RGB, alpha float64) {
	c.ops = append(c.ops, drawOp{kind: "polygon", x: pts[0].X, y: pts[0].Y, alpha: alpha})
}
func (c *recordingCanvas) Text(x, y float64, s string, _ RGB, _ Align) {
	c.ops = append(c.ops, drawOp{kind: "text", x: x, y: y, text: s})
}

func (c *recordingCanvas) texts() map[string]bool {
	out := make(map[string]bool)
	for _, op := range c.ops {
		if op.kind == "text" {
			out[op.text] = true
		}
	}
	return out
}

func newTestScene(t *testing.T) (*ProjectionRenderer, *recordingCanvas, *engine.GameState) {
	t.Helper()
	cfg := config.Default()
	st := engine.NewGameState(cfg, engine.NewSpawner(cfg.Ingredients, rand.New(rand.NewSource(5))))
	canvas := &recordingCanvas{width: 160, height: 96}
	r := NewProjectionRenderer(canvas, cfg.Camera, 0.6)
	r.Init(&st.World)
	return r, canvas, st
}

func frameOf(st *engine.GameState, msg string) engine.Frame {
	return engine.Frame{
		World:    &st.World,
		Counters: st.Counters,
		Phase:    st.Phase,
		HUD:      engine.FormatHUD(st.Counters),
		Message:  msg,
		DT:       0.016,
	}
}

func TestProjectionRendererDepthOrder(t *testing.T) {
	r, canvas, st := newTestScene(t)
	r.Render(frameOf(st, ""))

	if len(r.items) < 2+len(st.World.Ingredients) {
		t.Fatalf("only %d renderables, expected grill, player and ingredients", len(r.items))
	}
	for i := 1; i < len(r.items); i++ {
		if r.items[i].p.Depth > r.items[i-1].p.Depth {
			t.Fatalf("item %d depth %v drawn after nearer item depth %v", i, r.items[i].p.Depth, r.items[i-1].p.Depth)
		}
	}
	if canvas.ops[0].kind != "gradient" {
		t.Errorf("first op = %s, want background gradient", canvas.ops[0].kind)
	}

	kinds := make(map[renderKind]int)
	for _, it := range r.items {
		kinds[it.kind]++
	}
	if kinds[kindPlayer] != 1 || kinds[kindGrill] != 1 || kinds[kindIngredient] != len(st.World.Ingredients) {
		t.Errorf("renderable kinds = %v", kinds)
	}
	if kinds[kindRim] != RimSamples {
		t.Errorf("rim samples drawn = %d, want %d", kinds[kindRim], RimSamples)
	}
}

func TestProjectionRendererHUD(t *testing.T) {
	r, canvas, st := newTestScene(t)
	st.Score = 17
	r.Render(frameOf(st, engine.MsgPickup))

	texts := canvas.texts()
	for _, want := range []string{"Puntos: 17", "Tiempo: 60", "Cargando: 0/5", engine.MsgPickup} {
		if !texts[want] {
			t.Errorf("missing HUD text %q", want)
		}
	}
	if texts[engine.OverlayTitle] {
		t.Error("game over overlay drawn while playing")
	}
}

func TestProjectionRendererGameOverOverlay(t *testing.T) {
	r, canvas, st := newTestScene(t)
	st.Score = 42
	st.Phase = engine.PhaseGameOver
	r.Render(frameOf(st, engine.TimeUpMessage(42)))

	texts := canvas.texts()
	for _, want := range []string{engine.OverlayTitle, engine.OverlayScore(42), engine.OverlayRestart, "Puntos: 42"} {
		if !texts[want] {
			t.Errorf("missing overlay text %q", want)
		}
	}

	found := false
	for _, op := range canvas.ops {
		if op.kind == "rect" && op.w == 160 && op.h == 96 && op.alpha == AlphaOverlay {
			found = true
		}
	}
	if !found {
		t.Error("expected full-screen dimming rect")
	}
}

func TestProjectionRendererResizeAndEmpty(t *testing.T) {
	r, canvas, st := newTestScene(t)
	r.Resize(320, 100)
	if got := r.Camera().Focal; got < 94.999 || got > 95.001 {
		t.Errorf("focal after resize = %v, want 95", got)
	}

	canvas.ops = nil
	r.Render(engine.Frame{})
	if len(canvas.ops) != 1 {
		t.Errorf("empty frame drew %d ops, want background only", len(canvas.ops))
	}

	r.Resize(0, 0)
	canvas.ops = nil
	r.Render(frameOf(st, ""))
	if len(canvas.ops) != 1 {
		t.Errorf("zero-size canvas drew %d ops", len(canvas.ops))
	}
}

func TestProjectionRendererBadColor(t *testing.T) {
	r, _, st := newTestScene(t)
	st.World.Ingredients[0].Color = "not-a-color"
	r.Render(frameOf(st, ""))
	if got := r.palette["not-a-color"]; got != RGBWhite {
		t.Errorf("bad color resolved to %v, want white", got)
	}
}

func TestProjectionRendererDrawKeepsCamera(t *testing.T) {
	cfg := config.Default()
	cfg.Camera.Smoothing = 2
	st := engine.NewGameState(cfg, engine.NewSpawner(cfg.Ingredients, rand.New(rand.NewSource(5))))
	canvas := &recordingCanvas{width: 160, height: 96}
	r := NewProjectionRenderer(canvas, cfg.Camera, 0.6)
	r.Init(&st.World)
	start := r.Camera().Pos

	st.World.Player.Pos.X = 10
	f := frameOf(st, "")
	f.DT = 0.1

	for i := 0; i < 5; i++ {
		r.Draw(f)
	}
	if got := r.Camera().Pos; got != start {
		t.Fatalf("Draw moved the camera from %v to %v", start, got)
	}

	r.Advance(f)
	moved := r.Camera().Pos
	if moved.X() <= start.X() || moved.X() >= 10 {
		t.Errorf("camera x after one smoothed step = %v, want between %v and 10", moved.X(), start.X())
	}
	r.Draw(f)
	if got := r.Camera().Pos; got != moved {
		t.Errorf("Draw after Advance moved the camera to %v", got)
	}
}
