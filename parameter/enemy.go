package parameter

import "time"

// Fleet layout
const (
	FleetRows = 5
	FleetCols = 11

	EnemyWidth   = 40.0
	EnemyHeight  = 30.0
	EnemyPadding = 10.0

	// FleetTopOffset leaves room for the HUD band
	FleetTopOffset  = 80.0
	FleetLeftOffset = 50.0
)

// Fleet march
const (
	// BaseStepInterval is the delay between steps with a full fleet at level 1
	BaseStepInterval = 800 * time.Millisecond

	FleetStepSize     = 10.0
	FleetDropDistance = 20.0

	// FleetEdgeMargin is the distance from either playfield edge that triggers reversal
	FleetEdgeMargin = 10.0

	// FleetKillSpeedFactor scales how much a thinning fleet accelerates: 1 + ratio*factor
	FleetKillSpeedFactor = 2.0

	// LevelSpeedStep is the per-level cadence increase (20% per level)
	LevelSpeedStep = 0.2
)
