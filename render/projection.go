package render

import (
	"log"
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/kebab-arena/config"
	"github.com/lixenwraith/kebab-arena/engine"
	"github.com/lixenwraith/kebab-arena/vmath"
)

// RimSamples is the number of dots outlining the arena edge
const RimSamples = 100

// World-space sizes of drawn entities
const (
	rimDotRadius     = 0.18
	grillWidth       = 4.0
	grillHeight      = 2.3
	grillLift        = 0.6
	ingredientRadius = 0.45
	ingredientLift   = 0.5
	ingredientBob    = 0.1
	playerWidth      = 1.5
	playerHeight     = 0.8
	playerLift       = 0.6

	// Depth range over which fog ramps in, and its strength at the far end
	fogStart    = 14.0
	fogEnd      = 50.0
	fogStrength = 0.55
)

type renderKind uint8

const (
	kindRim renderKind = iota
	kindGrill
	kindIngredient
	kindPlayer
)

type renderable struct {
	kind  renderKind
	p     Projected
	color RGB
}

// ProjectionRenderer draws the arena through a trailing camera onto a flat Canvas
// Entities are depth-sorted back to front and drawn as scaled flat shapes
type ProjectionRenderer struct {
	canvas Canvas
	cfg    config.Camera
	minPx  float64

	cam     Camera
	width   int
	height  int
	palette map[string]RGB
	items   []renderable
	poly    []Point
}

// NewProjectionRenderer targets canvas; minPx keeps distant shapes visible
func NewProjectionRenderer(canvas Canvas, cfg config.Camera, minPx float64) *ProjectionRenderer {
	r := &ProjectionRenderer{
		canvas:  canvas,
		cfg:     cfg,
		minPx:   minPx,
		palette: make(map[string]RGB),
	}
	w, h := canvas.Size()
	r.Resize(w, h)
	return r
}

// Init places the camera on the player without smoothing
func (r *ProjectionRenderer) Init(w *engine.World) {
	r.cam = Camera{}
	r.cam.SetViewport(r.width, r.height, r.cfg.FocalFactor)
	r.cam.Follow(w.Player.Pos, r.cfg, 0)
}

// Resize takes canvas pixel dimensions
func (r *ProjectionRenderer) Resize(width, height int) {
	r.width, r.height = width, height
	r.cam.SetViewport(width, height, r.cfg.FocalFactor)
}

// Camera exposes the current camera for hosts and tests
func (r *ProjectionRenderer) Camera() Camera { return r.cam }

// Render advances the camera by the frame step and draws it
func (r *ProjectionRenderer) Render(f engine.Frame) {
	r.Advance(f)
	r.Draw(f)
}

// Advance moves the camera toward the player once per simulation step
func (r *ProjectionRenderer) Advance(f engine.Frame) {
	if f.World == nil {
		return
	}
	r.cam.Follow(f.World.Player.Pos, r.cfg, f.DT)
}

// Draw paints background, world and HUD from the current camera
// It may be repeated for one frame without moving the camera
func (r *ProjectionRenderer) Draw(f engine.Frame) {
	c := r.canvas
	c.FillGradient(BackgroundGradient)
	if f.World == nil || r.width == 0 || r.height == 0 {
		return
	}

	r.collect(f.World)

	sort.SliceStable(r.items, func(i, j int) bool {
		return r.items[i].p.Depth > r.items[j].p.Depth
	})

	for _, it := range r.items {
		switch it.kind {
		case kindRim:
			c.FillCircle(it.p.X, it.p.Y, r.px(rimDotRadius*it.p.Scale), it.color, AlphaArenaRim)
		case kindGrill:
			r.drawGrill(it)
		case kindIngredient:
			r.drawIngredient(it)
		case kindPlayer:
			r.drawPlayer(it, f.World.Player.Angle)
		}
	}

	if f.Phase == engine.PhaseGameOver {
		r.drawGameOver(f)
	}
	r.drawHUD(f)
}

// collect projects every visible entity into the reusable item list
func (r *ProjectionRenderer) collect(w *engine.World) {
	r.items = r.items[:0]
	add := func(kind renderKind, pos mgl64.Vec3, col RGB) {
		if p, ok := r.cam.Project(pos, r.width, r.height); ok {
			r.items = append(r.items, renderable{kind: kind, p: p, color: r.fog(col, p.Depth)})
		}
	}

	for i := 0; i < RimSamples; i++ {
		a := float64(i) / RimSamples * math.Pi * 2
		add(kindRim, mgl64.Vec3{math.Cos(a) * w.Radius, 0, math.Sin(a) * w.Radius}, RgbArenaRim)
	}

	add(kindGrill, mgl64.Vec3{w.Grill.Pos.X, grillLift, w.Grill.Pos.Z}, RgbGrillBody)

	for _, ing := range w.Ingredients {
		y := ingredientLift + math.Sin(ing.Spin)*ingredientBob
		add(kindIngredient, mgl64.Vec3{ing.Pos.X, y, ing.Pos.Z}, r.color(ing.Color))
	}

	add(kindPlayer, mgl64.Vec3{w.Player.Pos.X, playerLift, w.Player.Pos.Z}, RgbPlayerBody)
}

func (r *ProjectionRenderer) fog(c RGB, depth float64) RGB {
	t := (depth - fogStart) / (fogEnd - fogStart)
	if t <= 0 {
		return c
	}
	return Fog(c, RgbBackgroundMid, vmath.Clamp01(t)*fogStrength)
}

// color resolves and caches a palette hex, unparsable entries draw white
func (r *ProjectionRenderer) color(hex string) RGB {
	if c, ok := r.palette[hex]; ok {
		return c
	}
	c, err := ParseHex(hex)
	if err != nil {
		log.Printf("render: %v", err)
		c = RGBWhite
	}
	r.palette[hex] = c
	return c
}

func (r *ProjectionRenderer) px(v float64) float64 {
	return math.Max(r.minPx, v)
}

func (r *ProjectionRenderer) drawGrill(it renderable) {
	w := grillWidth * it.p.Scale
	h := grillHeight * it.p.Scale
	x, y := it.p.X, it.p.Y
	r.canvas.FillRect(x-w/2, y-h/2, w, h, it.color, 1)
	r.canvas.FillRect(x-w*0.35, y-h*0.18, w*0.7, h*0.35, r.fog(RgbGrillGlow, it.p.Depth), 1)
}

func (r *ProjectionRenderer) drawIngredient(it renderable) {
	rad := r.px(ingredientRadius * it.p.Scale)
	r.canvas.FillCircle(it.p.X, it.p.Y, rad, it.color, 1)
	r.canvas.FillCircle(it.p.X-rad*0.35, it.p.Y-rad*0.35, rad*0.35, RGBWhite, AlphaHighlight)
}

// drawPlayer draws a body rotated to the facing angle plus a nose triangle
// Screen rotation is clockwise because Y points down
func (r *ProjectionRenderer) drawPlayer(it renderable, angle float64) {
	w := r.px(playerWidth * it.p.Scale)
	h := r.px(playerHeight * it.p.Scale)
	sin, cos := math.Sincos(angle)
	rot := func(x, y float64) Point {
		return Point{X: it.p.X + x*cos - y*sin, Y: it.p.Y + x*sin + y*cos}
	}

	r.poly = append(r.poly[:0],
		rot(-w/2, -h/2), rot(w/2, -h/2), rot(w/2, h/2), rot(-w/2, h/2))
	r.canvas.FillPolygon(r.poly, it.color, 1)

	r.poly = append(r.poly[:0],
		rot(0, -h*0.9), rot(-h*0.3, -h*0.2), rot(h*0.3, -h*0.2))
	r.canvas.FillPolygon(r.poly, RgbPlayerNose, 1)
}

func (r *ProjectionRenderer) drawHUD(f engine.Frame) {
	c := r.canvas
	lh := c.LineHeight()
	w := float64(r.width)

	c.Text(w*0.02, 0, f.HUD.Score, RgbHUDText, AlignLeft)
	c.Text(w*0.5, 0, f.HUD.Timer, RgbHUDText, AlignCenter)
	c.Text(w*0.98, 0, f.HUD.Carry, RgbHUDText, AlignRight)
	if f.Message != "" {
		c.Text(w*0.5, float64(r.height)-lh, f.Message, RgbMessageText, AlignCenter)
	}
}

func (r *ProjectionRenderer) drawGameOver(f engine.Frame) {
	c := r.canvas
	w, h := float64(r.width), float64(r.height)
	lh := c.LineHeight()

	c.FillRect(0, 0, w, h, RgbOverlay, AlphaOverlay)
	c.Text(w/2, h/2-lh*2, engine.OverlayTitle, RgbHUDText, AlignCenter)
	c.Text(w/2, h/2, engine.OverlayScore(f.Counters.Score), RgbHUDText, AlignCenter)
	c.Text(w/2, h/2+lh*1.5, engine.OverlayRestart, RgbHUDText, AlignCenter)
}
