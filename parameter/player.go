package parameter

// Player movement
const (
	PlayerStartX = 0.0
	PlayerStartZ = 8.0

	// PlayerSpeed is the ground speed in world units per second
	PlayerSpeed = 11.0

	// PlayerTurbo multiplies speed while boost is held
	PlayerTurbo = 1.85

	// PlayerDamping is applied to velocity on every step without directional input
	PlayerDamping = 0.82
)
