package parameter

import "time"

// Bonus target
const (
	BonusWidth  = 50.0
	BonusHeight = 20.0
	BonusSpeed  = 150.0

	// BonusY sits just below the HUD band
	BonusY = 55.0

	BaseBonusSpawn = 25 * time.Second
	BonusSpawnStep = 3 * time.Second
	MinBonusSpawn  = 10 * time.Second
)

// DefaultBonusPoints is the reward table a spawned bonus draws from
var DefaultBonusPoints = []int{50, 100, 150, 200, 300}
