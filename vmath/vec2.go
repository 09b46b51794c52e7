package vmath

import "math"

// Vec2 is a point or direction on the ground plane
// X is lateral, Z is depth (-Z is forward)
type Vec2 struct {
	X, Z float64
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Z + o.Z}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Z - o.Z}
}

func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Z * s}
}

func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Z)
}

// Dist returns the euclidean distance between two ground points
func Dist(a, b Vec2) float64 {
	return math.Hypot(a.X-b.X, a.Z-b.Z)
}

// Normalize returns the unit vector, zero vector stays zero
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Z / l}
}

// ClampRadius rescales v radially so its length does not exceed r
func ClampRadius(v Vec2, r float64) Vec2 {
	d := v.Len()
	if d <= r || d == 0 {
		return v
	}
	s := r / d
	return Vec2{v.X * s, v.Z * s}
}

// Heading returns the facing angle for a direction, 0 faces -Z, positive turns toward +X
func Heading(dir Vec2) float64 {
	return math.Atan2(dir.X, -dir.Z)
}

// Polar builds a ground point from angle and radius around the origin
func Polar(angle, radius float64) Vec2 {
	return Vec2{math.Cos(angle) * radius, math.Sin(angle) * radius}
}

// Approach moves current toward target with exponential decay
// rate is per second; rate <= 0 snaps to target
func Approach(current, target, rate, dt float64) float64 {
	if rate <= 0 {
		return target
	}
	k := 1 - math.Exp(-rate*dt)
	return current + (target-current)*k
}

// Clamp01 limits v to [0, 1]
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
