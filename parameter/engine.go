package parameter

import "time"

// Host Loop Timing
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// StepsPerFrame is the number of kernel sub-steps per rendered frame
	StepsPerFrame = 40

	// FrameTime is simulated seconds advanced per rendered frame
	FrameTime = 1.0
)

// Body Defaults
const (
	// DefaultVertexCount is the ring size used by hosts
	DefaultVertexCount = 50

	// DefaultRadius is the rest radius in world units
	DefaultRadius = 100.0

	// DefaultArenaWidth and DefaultArenaHeight size headless arenas
	DefaultArenaWidth  = 800.0
	DefaultArenaHeight = 600.0

	// DefaultGravityY points down in screen coordinates
	DefaultGravityY = 1.0
)

// Face Overlay
const (
	// EyeRadiusDiv divides body radius for eye size
	EyeRadiusDiv = 8.0
	// MouthRadiusDiv divides body radius for mouth size
	MouthRadiusDiv = 4.0
)
