package engine

import (
	"github.com/lixenwraith/kebab-arena/config"
	"github.com/lixenwraith/kebab-arena/vmath"
)

// Phase is the round lifecycle state
type Phase uint8

const (
	PhasePlaying Phase = iota
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Counters are the per-round scoring values
type Counters struct {
	Score    int
	Carry    int
	MaxCarry int
	TimeLeft int // whole seconds
}

// GameState is the complete mutable state of one round
type GameState struct {
	World World
	Counters
	Phase Phase

	// timerAcc collects frame time toward the next whole second
	timerAcc float64
}

// NewGameState builds a round in its initial Playing state
func NewGameState(cfg *config.Config, spawner *Spawner) *GameState {
	s := &GameState{}
	s.Reset(cfg, spawner)
	return s
}

// Reset restores counters, player and ingredients to round start
func (s *GameState) Reset(cfg *config.Config, spawner *Spawner) {
	s.World.Radius = cfg.Arena.Radius
	s.World.Grill = Grill{
		Pos:    vmath.Vec2{X: cfg.Arena.GrillX, Z: cfg.Arena.GrillZ},
		Radius: cfg.Arena.GrillRadius,
	}
	s.World.Player = Player{Pos: vmath.Vec2{X: cfg.Player.StartX, Z: cfg.Player.StartZ}}
	spawner.Populate(&s.World, cfg.Ingredients.Count)

	s.Counters = Counters{
		MaxCarry: cfg.Round.MaxCarry,
		TimeLeft: cfg.Round.Duration,
	}
	s.Phase = PhasePlaying
	s.timerAcc = 0
}
