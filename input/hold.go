package input

import "time"

// Clock supplies the current time, engine time providers satisfy it
type Clock interface {
	Now() time.Time
}

// HoldTracker synthesizes key releases for hosts that only report presses
// A fresh press holds until initial elapses, an auto-repeat extends by repeat
type HoldTracker struct {
	keys    *KeySet
	clock   Clock
	initial time.Duration
	repeat  time.Duration
	expiry  map[string]time.Time
}

// NewHoldTracker drives keys from press events using the given hold windows
func NewHoldTracker(keys *KeySet, clock Clock, initial, repeat time.Duration) *HoldTracker {
	return &HoldTracker{
		keys:    keys,
		clock:   clock,
		initial: initial,
		repeat:  repeat,
		expiry:  make(map[string]time.Time),
	}
}

// Press records a key press or auto-repeat
func (h *HoldTracker) Press(name string) {
	n := normalize(name)
	if n == "" {
		return
	}
	now := h.clock.Now()
	window := h.initial
	if h.keys.Held(n) {
		window = h.repeat
	}
	// A repeat never shortens a pending initial window
	deadline := now.Add(window)
	if prev, ok := h.expiry[n]; ok && prev.After(deadline) {
		deadline = prev
	}
	h.expiry[n] = deadline
	h.keys.Press(n)
}

// Expire releases keys whose hold window has passed
func (h *HoldTracker) Expire() {
	now := h.clock.Now()
	for n, deadline := range h.expiry {
		if !now.Before(deadline) {
			delete(h.expiry, n)
			h.keys.Release(n)
		}
	}
}

// Reset releases everything
func (h *HoldTracker) Reset() {
	for n := range h.expiry {
		h.keys.Release(n)
	}
	clear(h.expiry)
}
