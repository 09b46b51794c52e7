package main

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/kebab-arena/config"
	"github.com/lixenwraith/kebab-arena/engine"
	"github.com/lixenwraith/kebab-arena/input"
)

// runner owns the session, key set and hold tracker on one goroutine
// Only the poller touches the screen's event queue
type runner struct {
	screen   tcell.Screen
	session  *engine.Session
	display  engine.Renderer
	hold     *input.HoldTracker
	timer    *engine.FrameTimer
	interval time.Duration
	crash    func(any)
}

func newRunner(s tcell.Screen, session *engine.Session, keys *input.KeySet, display engine.Renderer,
	cfg config.Terminal, clock engine.TimeProvider) *runner {
	return &runner{
		screen:   s,
		session:  session,
		display:  display,
		hold:     input.NewHoldTracker(keys, clock, cfg.HoldInitial, cfg.HoldRepeat),
		timer:    engine.NewFrameTimer(clock),
		interval: cfg.FrameInterval,
	}
}

// Run blocks until a quit key is pressed or the screen closes
func (r *runner) Run() {
	events := make(chan tcell.Event, 256)
	done := make(chan struct{})
	defer close(done)

	go r.poll(events, done)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case ev, ok := <-events:
			if !ok || !r.handle(ev) {
				return
			}
		case <-ticker.C:
			r.tick()
		}
	}
}

func (r *runner) poll(events chan<- tcell.Event, done <-chan struct{}) {
	defer close(events)
	if r.crash != nil {
		defer func() {
			if rec := recover(); rec != nil {
				r.crash(rec)
			}
		}()
	}

	for {
		ev := r.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

// handle applies one event, false stops the loop
func (r *runner) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		for _, name := range input.TcellKeyNames(ev) {
			r.hold.Press(name)
		}
	case *tcell.EventResize:
		cols, rows := ev.Size()
		r.display.Resize(cols, rows)
	case *tcell.EventFocus:
		// No press events arrive while unfocused, drop every hold
		if !ev.Focused {
			r.hold.Reset()
		}
	}
	return !r.session.QuitRequested()
}

// tick releases stale keys and advances one frame of wall time
func (r *runner) tick() {
	r.hold.Expire()
	r.session.Frame(r.timer.Tick())
}
