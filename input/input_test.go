package input

import (
	"reflect"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
)

type stepClock struct {
	now time.Time
}

func (c *stepClock) Now() time.Time { return c.now }

func (c *stepClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func TestKeySetCaseInsensitive(t *testing.T) {
	ks := NewKeySet()
	ks.Press("ArrowUp")
	if !ks.Held("arrowup") {
		t.Error("expected arrowup held after pressing ArrowUp")
	}
	if !ks.Held("ARROWUP") {
		t.Error("expected case-insensitive membership")
	}
	ks.Release("ARROWup")
	if ks.Held("arrowup") {
		t.Error("expected arrowup released")
	}
	ks.Press("")
	if ks.Len() != 0 {
		t.Errorf("blank key should be ignored, len=%d", ks.Len())
	}
}

func TestBindingsIntent(t *testing.T) {
	b := DefaultBindings()
	ks := NewKeySet()
	ks.Press("w")
	ks.Press(KeyArrowRight)
	ks.Press(KeyShift)

	got := b.Intent(ks)
	want := Intent{Up: true, Right: true, Boost: true}
	if got != want {
		t.Errorf("Intent = %+v, want %+v", got, want)
	}
}

func TestBindingsConsume(t *testing.T) {
	b := DefaultBindings()
	ks := NewKeySet()
	ks.Press("R")
	if !b.Active(ks, ActionRestart) {
		t.Fatal("expected restart active")
	}
	b.Consume(ks, ActionRestart)
	if b.Active(ks, ActionRestart) {
		t.Error("expected restart consumed")
	}
}

func TestMergeBindings(t *testing.T) {
	base := DefaultBindings()
	merged, err := MergeBindings(base, map[string][]string{
		"boost":   {"Space"},
		"restart": {},
	})
	if err != nil {
		t.Fatalf("MergeBindings failed: %v", err)
	}
	if got := merged.Keys(ActionBoost); !reflect.DeepEqual(got, []string{"space"}) {
		t.Errorf("boost keys = %v, want [space]", got)
	}
	if got := merged.Keys(ActionRestart); len(got) != 0 {
		t.Errorf("restart should be unbound, got %v", got)
	}
	if got := base.Keys(ActionBoost); !reflect.DeepEqual(got, []string{KeyShift}) {
		t.Errorf("base mutated: boost keys = %v", got)
	}

	if _, err := MergeBindings(base, map[string][]string{"jump": {"j"}}); err == nil {
		t.Error("expected error for unknown action")
	}
}

func TestActionByName(t *testing.T) {
	for a := Action(0); a < actionCount; a++ {
		got, ok := ActionByName(a.String())
		if !ok || got != a {
			t.Errorf("ActionByName(%q) = %v, %v", a.String(), got, ok)
		}
	}
	if _, ok := ActionByName("fly"); ok {
		t.Error("unexpected match for unknown name")
	}
}

func TestHoldTrackerInitialAndRepeat(t *testing.T) {
	clock := &stepClock{now: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
	ks := NewKeySet()
	h := NewHoldTracker(ks, clock, 500*time.Millisecond, 100*time.Millisecond)

	h.Press("d")
	clock.Advance(400 * time.Millisecond)
	h.Expire()
	if !ks.Held("d") {
		t.Fatal("key should be held within initial window")
	}

	// Auto-repeat arrives, initial deadline still pending
	h.Press("d")
	clock.Advance(150 * time.Millisecond)
	h.Expire()
	if ks.Held("d") {
		t.Error("key should release after initial window when repeat window is shorter")
	}

	// Steady repeat keeps the key held
	h.Press("d")
	for i := 0; i < 10; i++ {
		clock.Advance(450 * time.Millisecond / 10)
		h.Press("d")
		h.Expire()
	}
	if !ks.Held("d") {
		t.Error("key should stay held under steady repeat")
	}

	clock.Advance(time.Second)
	h.Expire()
	if ks.Held("d") {
		t.Error("key should release once repeats stop")
	}
}

func TestHoldTrackerReset(t *testing.T) {
	clock := &stepClock{now: time.Unix(0, 0)}
	ks := NewKeySet()
	h := NewHoldTracker(ks, clock, time.Second, time.Second)
	h.Press("a")
	h.Press("shift")
	h.Reset()
	if ks.Len() != 0 {
		t.Errorf("expected no held keys after reset, got %d", ks.Len())
	}
}

func TestTcellKeyNames(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want []string
	}{
		{"lower rune", tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone), []string{"w"}},
		{"upper rune implies shift", tcell.NewEventKey(tcell.KeyRune, 'W', tcell.ModNone), []string{"w", KeyShift}},
		{"arrow", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), []string{KeyArrowUp}},
		{"shift arrow", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModShift), []string{KeyArrowLeft, KeyShift}},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), []string{KeyEscape}},
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), []string{KeySpace}},
		{"ctrl c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), []string{KeyCtrlC}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TcellKeyNames(tt.ev)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("TcellKeyNames = %v, want %v", got, tt.want)
			}
		})
	}
}
