package engine

import (
	"github.com/lixenwraith/kebab-arena/config"
	"github.com/lixenwraith/kebab-arena/input"
	"github.com/lixenwraith/kebab-arena/vmath"
)

// StepResult reports what happened during one simulation step
type StepResult struct {
	Pickups   int
	Delivered int // ingredients handed over at the grill
	Bonus     int // points awarded by the delivery
}

// Simulation advances a GameState by one variable-length step
type Simulation struct {
	cfg     *config.Config
	spawner *Spawner
}

// NewSimulation binds the rules and the respawn source
func NewSimulation(cfg *config.Config, spawner *Spawner) *Simulation {
	return &Simulation{cfg: cfg, spawner: spawner}
}

// Step moves the player, then resolves pickups and delivery
// dt must already be clamped by the caller
func (sim *Simulation) Step(s *GameState, in input.Intent, dt float64) StepResult {
	sim.movePlayer(&s.World, in, dt)

	var res StepResult
	p := s.World.Player.Pos
	ingCfg := sim.cfg.Ingredients

	for i := range s.World.Ingredients {
		ing := &s.World.Ingredients[i]
		ing.Spin += dt * ingCfg.SpinRate
		if vmath.Dist(ing.Pos, p) < ingCfg.PickupRadius && s.Carry < s.MaxCarry {
			s.Carry++
			s.Score += sim.cfg.Round.PickupPoints
			sim.spawner.Relocate(ing)
			res.Pickups++
		}
	}

	g := s.World.Grill
	if vmath.Dist(p, g.Pos) < g.Radius+sim.cfg.Arena.GrillMargin && s.Carry > 0 {
		res.Delivered = s.Carry
		res.Bonus = s.Carry * sim.cfg.Round.DeliveryPoints
		s.Score += res.Bonus
		s.Carry = 0
	}

	return res
}

func (sim *Simulation) movePlayer(w *World, in input.Intent, dt float64) {
	pc := sim.cfg.Player
	pl := &w.Player

	var dir vmath.Vec2
	if in.Up {
		dir.Z--
	}
	if in.Down {
		dir.Z++
	}
	if in.Left {
		dir.X--
	}
	if in.Right {
		dir.X++
	}

	if dir.Len() > 0 {
		dir = dir.Normalize()
		speed := pc.Speed
		if in.Boost {
			speed *= pc.Turbo
		}
		pl.Vel = dir.Scale(speed)
		pl.Angle = vmath.Heading(dir)
	} else {
		pl.Vel = pl.Vel.Scale(pc.Damping)
	}

	pl.Pos = vmath.ClampRadius(pl.Pos.Add(pl.Vel.Scale(dt)), w.Radius)
}
