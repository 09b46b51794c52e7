package parameter

import "time"

// Arena layout
const (
	ArenaRadius = 24.0

	GrillX      = 0.0
	GrillZ      = -15.0
	GrillRadius = 2.8

	// GrillMargin extends the delivery trigger beyond the grill radius
	GrillMargin = 0.7
)

// Ingredients
const (
	IngredientCount = 16

	// Spawn ring, sampled uniformly in radius
	IngredientSpawnInner = 11.0
	IngredientSpawnOuter = 21.0

	IngredientPickupRadius = 1.25

	// IngredientSpinRate is spin phase advance in radians per second
	IngredientSpinRate = 1.5
)

// IngredientColors is the fixed palette ingredients draw from
var IngredientColors = []string{"#e35d5b", "#6fcf50", "#e8d56d", "#c86a2a", "#9e5db3"}

// Round rules
const (
	RoundDuration = 60

	MaxCarry = 5

	PickupPoints = 5

	// DeliveryPointsPerItem is awarded for each carried ingredient on delivery
	DeliveryPointsPerItem = 12
)

// Frame timing
const (
	// MaxFrameDelta caps a single step after stalls or tab switches
	MaxFrameDelta = 0.05

	// TerminalFrameInterval is the terminal host tick
	TerminalFrameInterval = 16 * time.Millisecond

	// WindowTPS is the ebiten update rate
	WindowTPS = 60
)

// Terminal key hold emulation
// Terminals report presses and auto-repeat but never releases
const (
	// KeyHoldInitial covers the delay before the terminal starts auto-repeating
	KeyHoldInitial = 550 * time.Millisecond

	// KeyHoldRepeat covers the gap between auto-repeat events
	KeyHoldRepeat = 120 * time.Millisecond
)
