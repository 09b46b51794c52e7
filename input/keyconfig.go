package input

import (
	"fmt"
	"sort"
)

// Intent is the per-frame movement request derived from held keys
type Intent struct {
	Up, Down, Left, Right bool
	Boost                 bool
}

// Bindings maps each action to the key names that trigger it
type Bindings struct {
	keys [actionCount][]string
}

// DefaultBindings returns WASD/arrows, shift for boost, R to restart, Esc/Ctrl-C to quit
func DefaultBindings() *Bindings {
	b := &Bindings{}
	b.keys[ActionMoveUp] = []string{"w", KeyArrowUp}
	b.keys[ActionMoveDown] = []string{"s", KeyArrowDown}
	b.keys[ActionMoveLeft] = []string{"a", KeyArrowLeft}
	b.keys[ActionMoveRight] = []string{"d", KeyArrowRight}
	b.keys[ActionBoost] = []string{KeyShift}
	b.keys[ActionRestart] = []string{"r"}
	b.keys[ActionQuit] = []string{KeyEscape, KeyCtrlC}
	return b
}

// Keys returns the key names bound to an action
func (b *Bindings) Keys(a Action) []string {
	if a >= actionCount {
		return nil
	}
	return b.keys[a]
}

// Active reports whether any key bound to the action is held
func (b *Bindings) Active(ks *KeySet, a Action) bool {
	for _, k := range b.Keys(a) {
		if ks.Held(k) {
			return true
		}
	}
	return false
}

// Consume releases every key bound to the action so it fires once per press
func (b *Bindings) Consume(ks *KeySet, a Action) {
	for _, k := range b.Keys(a) {
		ks.Release(k)
	}
}

// Intent samples the movement actions
func (b *Bindings) Intent(ks *KeySet) Intent {
	return Intent{
		Up:    b.Active(ks, ActionMoveUp),
		Down:  b.Active(ks, ActionMoveDown),
		Left:  b.Active(ks, ActionMoveLeft),
		Right: b.Active(ks, ActionMoveRight),
		Boost: b.Active(ks, ActionBoost),
	}
}

// Clone returns a deep copy
func (b *Bindings) Clone() *Bindings {
	c := &Bindings{}
	for i, ks := range b.keys {
		c.keys[i] = append([]string(nil), ks...)
	}
	return c
}

// MergeBindings returns base with the named actions replaced by override key lists
// An empty list unbinds the action; unknown action names are rejected
func MergeBindings(base *Bindings, override map[string][]string) (*Bindings, error) {
	result := base.Clone()

	// Sorted for deterministic error reporting
	names := make([]string, 0, len(override))
	for name := range override {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		a, ok := ActionByName(name)
		if !ok {
			return nil, fmt.Errorf("bindings: unknown action: %q", name)
		}
		keys := make([]string, 0, len(override[name]))
		for _, k := range override[name] {
			n := normalize(k)
			if n == "" {
				return nil, fmt.Errorf("bindings: action %q: empty key name", name)
			}
			keys = append(keys, n)
		}
		result.keys[a] = keys
	}

	return result, nil
}
