package parameter

import "time"

// Game Loop & Engine Timing
const (
	// FrameUpdateInterval is the host frame interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// MaxFrameDelta caps a single tick's elapsed time after terminal stalls, 0 disables the cap
	MaxFrameDelta = 250 * time.Millisecond

	// FPSSampleWindow is the interval over which the frame rate gauge is averaged
	FPSSampleWindow = 1 * time.Second
)

// Event routing
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 256

	// EventBufferMask is the bitmask for fast modulo operations (256 - 1)
	EventBufferMask = 255
)

// Playfield in simulation units, independent of terminal cell size
const (
	PlayfieldWidth  = 800.0
	PlayfieldHeight = 600.0
)
