package parameter

import "time"

// Bullets
const (
	BulletWidth  = 4.0
	BulletHeight = 12.0

	PlayerBulletSpeed = 400.0
	EnemyBulletSpeed  = 200.0

	// EnemyBulletSpeedStep is added to enemy bullet speed per level past the first
	EnemyBulletSpeedStep = 20.0
)

// Enemy fire cadence
const (
	BaseFireInterval = 1500 * time.Millisecond
	FireIntervalStep = 150 * time.Millisecond
	MinFireInterval  = 500 * time.Millisecond
)

// DefaultRowPoints is the score per fleet row, top row first
// Rows beyond the table score FallbackRowPoints
var DefaultRowPoints = []int{30, 30, 20, 20, 10}

const FallbackRowPoints = 10
