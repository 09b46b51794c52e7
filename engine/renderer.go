package engine

// Frame is the read-only view handed to a renderer once per loop iteration
type Frame struct {
	World    *World
	Counters Counters
	Phase    Phase
	HUD      HUD
	Message  string
	DT       float64 // clamped step length, for camera smoothing
}

// Renderer draws frames; implementations keep simulation renderer-agnostic
type Renderer interface {
	// Init is called once with the world before the first frame
	Init(w *World)
	// Render draws the current frame
	Render(f Frame)
	// Resize updates drawable dimensions in renderer units
	Resize(width, height int)
}
