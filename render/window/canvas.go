// Package window hosts the game in a desktop window through ebiten
package window

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/kebab-arena/parameter"
	"github.com/lixenwraith/kebab-arena/render"
)

// glyphWidth is the debug font advance
const glyphWidth = 6

// gradientBand is the strip height used to approximate the background gradient
const gradientBand = 4

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// Canvas draws onto an ebiten image, set per frame with Begin
// Text uses the debug font and is always white
type Canvas struct {
	dst           *ebiten.Image
	width, height int

	path  vector.Path
	verts []ebiten.Vertex
	idx   []uint16
}

// NewCanvas creates a canvas of the given logical size
func NewCanvas(width, height int) *Canvas {
	return &Canvas{width: width, height: height}
}

// Begin targets dst for the following draw calls
func (c *Canvas) Begin(dst *ebiten.Image) {
	c.dst = dst
}

func (c *Canvas) Resize(width, height int) {
	c.width, c.height = max(width, 0), max(height, 0)
}

func (c *Canvas) Size() (int, int) {
	return c.width, c.height
}

func (c *Canvas) LineHeight() float64 { return parameter.WindowLineHeight }

func (c *Canvas) FillGradient(g render.Gradient) {
	if c.dst == nil || c.height == 0 {
		return
	}
	for y := 0; y < c.height; y += gradientBand {
		t := (float64(y) + gradientBand*0.5) / float64(c.height)
		vector.DrawFilledRect(c.dst, 0, float32(y), float32(c.width), gradientBand,
			render.RGBToRGBA(g.Sample(t), 1), false)
	}
}

func (c *Canvas) FillRect(x, y, w, h float64, col render.RGB, alpha float64) {
	if c.dst == nil || w <= 0 || h <= 0 {
		return
	}
	vector.DrawFilledRect(c.dst, float32(x), float32(y), float32(w), float32(h),
		render.RGBToRGBA(col, alpha), true)
}

func (c *Canvas) FillCircle(cx, cy, r float64, col render.RGB, alpha float64) {
	if c.dst == nil || r <= 0 {
		return
	}
	vector.DrawFilledCircle(c.dst, float32(cx), float32(cy), float32(r),
		render.RGBToRGBA(col, alpha), true)
}

func (c *Canvas) FillPolygon(pts []render.Point, col render.RGB, alpha float64) {
	if c.dst == nil || len(pts) < 3 {
		return
	}

	c.path.Reset()
	c.path.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		c.path.LineTo(float32(p.X), float32(p.Y))
	}
	c.path.Close()

	c.verts, c.idx = c.path.AppendVerticesAndIndicesForFilling(c.verts[:0], c.idx[:0])
	r, g, b := float32(col.R)/255, float32(col.G)/255, float32(col.B)/255
	for i := range c.verts {
		c.verts[i].SrcX = 1
		c.verts[i].SrcY = 1
		c.verts[i].ColorR = r
		c.verts[i].ColorG = g
		c.verts[i].ColorB = b
		c.verts[i].ColorA = float32(alpha)
	}

	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	c.dst.DrawTriangles(c.verts, c.idx, whiteSubImage, op)
}

// Text anchors s at x; the debug font cannot be tinted so col is unused
func (c *Canvas) Text(x, y float64, s string, _ render.RGB, align render.Align) {
	if c.dst == nil || s == "" {
		return
	}
	w := float64(runewidth.StringWidth(s) * glyphWidth)
	switch align {
	case render.AlignCenter:
		x -= w / 2
	case render.AlignRight:
		x -= w
	}
	ebitenutil.DebugPrintAt(c.dst, s, int(x), int(y))
}
