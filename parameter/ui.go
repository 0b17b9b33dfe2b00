package parameter

import "time"

// Terminal host
const (
	// KeyHoldWindow is how long a movement key counts as held after its last press or repeat
	// Terminals report presses only, so held state is emulated from auto-repeat
	KeyHoldWindow = 180 * time.Millisecond

	// KeyInitialHoldWindow covers the gap between the first press and the first auto-repeat
	KeyInitialHoldWindow = 550 * time.Millisecond

	// KeyRepeatDelayFloor is shorter than any common OS auto-repeat delay
	// A second press sooner than this after a fresh press is a new tap
	KeyRepeatDelayFloor = 200 * time.Millisecond

	// MinTerminalWidth and MinTerminalHeight below which the playfield is not drawn
	MinTerminalWidth  = 40
	MinTerminalHeight = 16

	// HUDRows is the number of terminal rows reserved for the status line
	HUDRows = 1
)

// Logging
const (
	LogDir      = "logs"
	LogFileName = "vi-invaders.log"
	MaxLogSize  = 10 * 1024 * 1024
)
