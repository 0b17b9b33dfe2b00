package parameter

import "time"

// Player ship
const (
	PlayerWidth  = 50.0
	PlayerHeight = 30.0

	// PlayerBottomOffset is the distance from the playfield bottom to the ship's top edge
	PlayerBottomOffset = 60.0

	// PlayerSpeed is horizontal speed in units per second
	PlayerSpeed = 300.0

	// PlayerHitFlashDuration is how long the ship flashes after being hit
	PlayerHitFlashDuration = 200 * time.Millisecond
)
