package engine

import (
	"math"
	"testing"
	"time"
)

func TestMonotonicTimeProvider(t *testing.T) {
	provider := NewMonotonicTimeProvider()

	t1 := provider.Now()
	time.Sleep(10 * time.Millisecond)
	t2 := provider.Now()

	if !t2.After(t1) {
		t.Errorf("Expected t2 to be after t1, but got t1=%v, t2=%v", t1, t2)
	}
	if diff := t2.Sub(t1); diff < 10*time.Millisecond {
		t.Errorf("Expected at least 10ms difference, got %v", diff)
	}
}

func TestFrameTimer(t *testing.T) {
	mock := NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	ft := NewFrameTimer(mock)

	mock.Advance(16 * time.Millisecond)
	if dt := ft.Tick(); math.Abs(dt-0.016) > 1e-9 {
		t.Errorf("Expected dt 0.016, got %v", dt)
	}

	// Stalls are reported as-is, clamping happens in the session
	mock.Advance(2 * time.Second)
	if dt := ft.Tick(); math.Abs(dt-2) > 1e-9 {
		t.Errorf("Expected dt 2, got %v", dt)
	}

	if dt := ft.Tick(); dt != 0 {
		t.Errorf("Expected dt 0 without advance, got %v", dt)
	}
}
