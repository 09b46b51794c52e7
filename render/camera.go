package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/kebab-arena/config"
	"github.com/lixenwraith/kebab-arena/vmath"
)

// Camera is a virtual pinhole camera looking down -Z after yaw and pitch
type Camera struct {
	Pos   mgl64.Vec3
	Yaw   float64
	Pitch float64
	Focal float64
	Near  float64

	placed bool
}

// Projected is a world point mapped to screen space
type Projected struct {
	X, Y  float64
	Scale float64 // pixels per world unit at this depth
	Depth float64
}

// Follow moves the camera toward its trailing spot behind target
// Smoothing 0 snaps; the first call always snaps
func (c *Camera) Follow(target vmath.Vec2, cfg config.Camera, dt float64) {
	want := mgl64.Vec3{target.X, cfg.Height, target.Z + cfg.Distance}
	c.Pitch = cfg.Pitch
	c.Near = cfg.NearPlane
	if !c.placed {
		c.Pos = want
		c.placed = true
		return
	}
	for i := range c.Pos {
		c.Pos[i] = vmath.Approach(c.Pos[i], want[i], cfg.Smoothing, dt)
	}
}

// SetViewport recomputes focal length for a canvas size
func (c *Camera) SetViewport(width, height int, focalFactor float64) {
	c.Focal = float64(min(width, height)) * focalFactor
}

// Project maps a world point to screen coordinates of a width x height canvas
// Points at or in front of the near plane are rejected
func (c *Camera) Project(world mgl64.Vec3, width, height int) (Projected, bool) {
	d := world.Sub(c.Pos)

	// Undo camera yaw then pitch to reach view space
	v := mgl64.Rotate3DY(c.Yaw).Mul3x1(d)
	v = mgl64.Rotate3DX(-c.Pitch).Mul3x1(v)

	depth := -v.Z()
	if depth <= c.Near || math.IsNaN(depth) {
		return Projected{}, false
	}

	f := c.Focal / depth
	return Projected{
		X:     float64(width)*0.5 + v.X()*f,
		Y:     float64(height)*0.5 - v.Y()*f,
		Scale: f,
		Depth: depth,
	}, true
}
