package engine

import (
	"fmt"
	"log"
	"math/rand"

	"github.com/google/uuid"

	"github.com/lixenwraith/kebab-arena/config"
	"github.com/lixenwraith/kebab-arena/input"
)

// timerEpsilon absorbs float drift when frame deltas sum to a whole second
const timerEpsilon = 1e-9

// Session owns one game: its state, held keys, bindings and renderer
// All methods run on the host loop goroutine
type Session struct {
	ID string

	cfg      *config.Config
	state    *GameState
	sim      *Simulation
	spawner  *Spawner
	keys     *input.KeySet
	bindings *input.Bindings
	renderer Renderer

	hud     HUD
	message string
	round   int
	best    int
}

// NewSession builds a session in the Playing phase
// renderer may be nil for headless use
func NewSession(cfg *config.Config, keys *input.KeySet, renderer Renderer, seed int64) (*Session, error) {
	bindings, err := input.MergeBindings(input.DefaultBindings(), cfg.Bindings)
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}

	spawner := NewSpawner(cfg.Ingredients, rand.New(rand.NewSource(seed)))
	s := &Session{
		ID:       uuid.NewString(),
		cfg:      cfg,
		spawner:  spawner,
		sim:      NewSimulation(cfg, spawner),
		state:    NewGameState(cfg, spawner),
		keys:     keys,
		bindings: bindings,
		renderer: renderer,
		message:  MsgWelcome,
		round:    1,
	}
	s.hud = FormatHUD(s.state.Counters)

	if renderer != nil {
		renderer.Init(&s.state.World)
	}
	log.Printf("session %s: round %d started, seed %d", s.ID, s.round, seed)
	return s, nil
}

// State exposes the live game state
func (s *Session) State() *GameState { return s.state }

// Bindings returns the merged key bindings
func (s *Session) Bindings() *input.Bindings { return s.bindings }

// HUD returns the status texts from the last frame
func (s *Session) HUD() HUD { return s.hud }

// Message returns the current feedback line
func (s *Session) Message() string { return s.message }

// BestScore is the highest final score across finished rounds
func (s *Session) BestScore() int { return s.best }

// QuitRequested reports whether a quit key is held
func (s *Session) QuitRequested() bool {
	return s.bindings.Active(s.keys, input.ActionQuit)
}

// Frame runs one loop iteration: clock, simulation or restart poll, HUD, render
func (s *Session) Frame(dt float64) {
	dt = s.clampDelta(dt)
	st := s.state

	switch st.Phase {
	case PhasePlaying:
		st.timerAcc += dt
		for st.Phase == PhasePlaying && st.timerAcc+timerEpsilon >= 1 {
			st.timerAcc--
			st.TimeLeft--
			if st.TimeLeft <= 0 {
				s.finish()
			}
		}
		if st.Phase == PhasePlaying {
			s.applyResult(s.sim.Step(st, s.bindings.Intent(s.keys), dt))
		}

	case PhaseGameOver:
		if s.bindings.Active(s.keys, input.ActionRestart) {
			s.bindings.Consume(s.keys, input.ActionRestart)
			s.Restart()
		}
	}

	s.hud = FormatHUD(st.Counters)
	if s.renderer != nil {
		s.renderer.Render(Frame{
			World:    &st.World,
			Counters: st.Counters,
			Phase:    st.Phase,
			HUD:      s.hud,
			Message:  s.message,
			DT:       dt,
		})
	}
}

// Restart resets the round and returns to Playing
func (s *Session) Restart() {
	s.state.Reset(s.cfg, s.spawner)
	s.round++
	s.message = MsgRestart
	log.Printf("session %s: round %d started", s.ID, s.round)
}

func (s *Session) clampDelta(dt float64) float64 {
	if dt < 0 {
		return 0
	}
	if dt > s.cfg.Frame.MaxDelta {
		return s.cfg.Frame.MaxDelta
	}
	return dt
}

func (s *Session) finish() {
	st := s.state
	st.Phase = PhaseGameOver
	st.timerAcc = 0
	if st.Score > s.best {
		s.best = st.Score
	}
	s.message = TimeUpMessage(st.Score)
	log.Printf("session %s: round %d over, score %d, carry lost %d, best %d",
		s.ID, s.round, st.Score, st.Carry, s.best)
}

func (s *Session) applyResult(res StepResult) {
	if res.Pickups > 0 {
		s.message = MsgPickup
	}
	if res.Delivered > 0 {
		s.message = DeliveryMessage(res.Bonus)
		log.Printf("session %s: delivered %d for +%d, score %d", s.ID, res.Delivered, res.Bonus, s.state.Score)
	}
}
