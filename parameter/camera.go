package parameter

// Trailing camera
// Offsets are relative to the player on the ground plane, +Z is behind the player
const (
	// CameraHeight is the camera elevation above the ground
	CameraHeight = 10.0

	// CameraDistance is how far behind the player the camera sits
	CameraDistance = 12.0

	// CameraPitch tilts the view down toward the ground (radians, negative is down)
	CameraPitch = -0.55

	// CameraFocalFactor scales min(width, height) into the focal length
	CameraFocalFactor = 0.95

	// CameraNearPlane rejects points at or closer than this depth
	CameraNearPlane = 0.1

	// CameraSmoothing is the exponential approach rate per second
	// 0 snaps the camera to the target every frame
	CameraSmoothing = 0.0
)
