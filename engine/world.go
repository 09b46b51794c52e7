package engine

import (
	"math"
	"math/rand"

	"github.com/lixenwraith/kebab-arena/config"
	"github.com/lixenwraith/kebab-arena/vmath"
)

// Player is the avatar on the ground plane
type Player struct {
	Pos   vmath.Vec2
	Vel   vmath.Vec2
	Angle float64 // facing, 0 is -Z
}

// Ingredient is a collectible that respawns elsewhere when picked up
type Ingredient struct {
	Pos   vmath.Vec2
	Spin  float64 // visual bob/rotation phase, radians
	Color string  // palette hex
}

// Grill is the fixed delivery target
type Grill struct {
	Pos    vmath.Vec2
	Radius float64
}

// World holds everything positioned in the arena
type World struct {
	Radius      float64
	Grill       Grill
	Player      Player
	Ingredients []Ingredient
}

// Spawner places ingredients uniformly in angle and radius on the spawn ring
type Spawner struct {
	rng    *rand.Rand
	inner  float64
	outer  float64
	colors []string
}

// NewSpawner creates a spawner using the ring and palette from cfg
func NewSpawner(cfg config.Ingredients, rng *rand.Rand) *Spawner {
	return &Spawner{
		rng:    rng,
		inner:  cfg.SpawnInner,
		outer:  cfg.SpawnOuter,
		colors: cfg.Colors,
	}
}

// Next returns a fresh ingredient with random position, spin and color
func (s *Spawner) Next() Ingredient {
	ing := Ingredient{Spin: s.rng.Float64() * math.Pi * 2}
	s.Relocate(&ing)
	return ing
}

// Relocate moves an ingredient to a new position and color, spin is kept
func (s *Spawner) Relocate(ing *Ingredient) {
	angle := s.rng.Float64() * math.Pi * 2
	radius := s.inner + s.rng.Float64()*(s.outer-s.inner)
	ing.Pos = vmath.Polar(angle, radius)
	ing.Color = s.colors[s.rng.Intn(len(s.colors))]
}

// Populate replaces the ingredient list with n fresh ingredients
func (s *Spawner) Populate(w *World, n int) {
	w.Ingredients = make([]Ingredient, 0, n)
	for i := 0; i < n; i++ {
		w.Ingredients = append(w.Ingredients, s.Next())
	}
}
