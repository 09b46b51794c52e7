package main

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/kebab-arena/config"
	"github.com/lixenwraith/kebab-arena/engine"
	"github.com/lixenwraith/kebab-arena/input"
	"github.com/lixenwraith/kebab-arena/render/terminal"
)

type testRig struct {
	screen  tcell.SimulationScreen
	clock   *engine.MockTimeProvider
	keys    *input.KeySet
	session *engine.Session
	display *terminal.Display
	runner  *runner
}

func newTestRig(t *testing.T) *testRig {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	screen.SetSize(40, 20)
	t.Cleanup(screen.Fini)

	cfg := config.Default()
	clock := engine.NewMockTimeProvider(time.Unix(0, 0))
	keys := input.NewKeySet()
	display := terminal.NewDisplay(screen, cfg.Camera)
	session, err := engine.NewSession(cfg, keys, display, 7)
	if err != nil {
		t.Fatalf("NewSession failed: %v", err)
	}
	return &testRig{
		screen:  screen,
		clock:   clock,
		keys:    keys,
		session: session,
		display: display,
		runner:  newRunner(screen, session, keys, display, cfg.Terminal, clock),
	}
}

func (r *testRig) step(d time.Duration) {
	r.clock.Advance(d)
	r.runner.tick()
}

func TestRunnerKeyPressMovesPlayer(t *testing.T) {
	rig := newTestRig(t)
	start := rig.session.State().World.Player.Pos

	if !rig.runner.handle(tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone)) {
		t.Fatal("movement key stopped the loop")
	}
	rig.step(16 * time.Millisecond)

	if got := rig.session.State().World.Player.Pos; got.Z >= start.Z {
		t.Errorf("player z = %v, expected to move up from %v", got.Z, start.Z)
	}
}

func TestRunnerHoldExpires(t *testing.T) {
	rig := newTestRig(t)
	rig.runner.handle(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone))

	rig.step(500 * time.Millisecond)
	if !rig.keys.Held(input.KeyArrowRight) {
		t.Fatal("key released before the initial hold window")
	}

	// Auto-repeat keeps it held past the initial window
	rig.runner.handle(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone))
	rig.step(100 * time.Millisecond)
	if !rig.keys.Held(input.KeyArrowRight) {
		t.Fatal("repeat did not extend the hold")
	}

	rig.step(200 * time.Millisecond)
	if rig.keys.Held(input.KeyArrowRight) {
		t.Error("key still held after repeats stopped")
	}
}

func TestRunnerShiftedLetterBoosts(t *testing.T) {
	rig := newTestRig(t)
	rig.runner.handle(tcell.NewEventKey(tcell.KeyRune, 'D', tcell.ModShift))
	in := rig.session.Bindings().Intent(rig.keys)
	if !in.Right || !in.Boost {
		t.Errorf("intent = %+v, want right with boost", in)
	}
}

func TestRunnerQuitKeys(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
	}{
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)},
		{"ctrl c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rig := newTestRig(t)
			if rig.runner.handle(tt.ev) {
				t.Error("expected quit")
			}
		})
	}
}

func TestRunnerFocusLossReleasesKeys(t *testing.T) {
	rig := newTestRig(t)
	rig.runner.handle(tcell.NewEventKey(tcell.KeyRune, 'W', tcell.ModNone))
	if !rig.keys.Held("w") || !rig.keys.Held(input.KeyShift) {
		t.Fatal("expected w and shift held")
	}

	rig.runner.handle(tcell.NewEventFocus(true))
	if !rig.keys.Held("w") {
		t.Error("focus gain released keys")
	}

	rig.runner.handle(tcell.NewEventFocus(false))
	if rig.keys.Len() != 0 {
		t.Errorf("%d keys still held after focus loss", rig.keys.Len())
	}
}

func TestRunnerResize(t *testing.T) {
	rig := newTestRig(t)
	rig.runner.handle(tcell.NewEventResize(24, 8))
	if w, h := rig.display.Canvas().Size(); w != 24 || h != 16 {
		t.Errorf("canvas after resize = %dx%d, want 24x16", w, h)
	}
}

func TestRunnerTickClampsStall(t *testing.T) {
	rig := newTestRig(t)
	rig.step(5 * time.Second)
	if got := rig.session.State().TimeLeft; got != 60 {
		t.Errorf("stalled tick consumed round time: %d", got)
	}

	for i := 0; i < 20; i++ {
		rig.step(50 * time.Millisecond)
	}
	if got := rig.session.State().TimeLeft; got != 59 {
		t.Errorf("timeLeft after 1s of ticks = %d, want 59", got)
	}
}
