package engine

import "time"

// TimeProvider supplies wall-clock readings to the frame timer and input hold emulation
type TimeProvider interface {
	Now() time.Time
}

// MonotonicTimeProvider provides the real system time with monotonic clock readings
type MonotonicTimeProvider struct{}

// NewMonotonicTimeProvider creates a new monotonic time provider
func NewMonotonicTimeProvider() *MonotonicTimeProvider {
	return &MonotonicTimeProvider{}
}

// Now returns the current time with monotonic clock reading
func (p *MonotonicTimeProvider) Now() time.Time {
	return time.Now()
}

// FrameTimer converts successive wall-clock readings into frame deltas in seconds
type FrameTimer struct {
	provider TimeProvider
	last     time.Time
}

// NewFrameTimer starts timing from the provider's current time
func NewFrameTimer(provider TimeProvider) *FrameTimer {
	return &FrameTimer{provider: provider, last: provider.Now()}
}

// Tick returns seconds elapsed since the previous Tick
// Unclamped; Session.Frame applies the frame delta cap
func (f *FrameTimer) Tick() float64 {
	now := f.provider.Now()
	dt := now.Sub(f.last).Seconds()
	f.last = now
	return dt
}
