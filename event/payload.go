package event

// GameStartedPayload carries the profile the run was started with
type GameStartedPayload struct {
	Difficulty string
	Lives      int
}

// PhaseChangePayload carries phase names to keep this package free of engine types
type PhaseChangePayload struct {
	From  string
	To    string
	Level int
}

// ShotFiredPayload identifies which side fired
type ShotFiredPayload struct {
	Enemy bool
	X, Y  float64
}

// EnemyDestroyedPayload describes a fleet kill, position is the unit center
type EnemyDestroyedPayload struct {
	X, Y      float64
	Row, Col  int
	Points    int
	Remaining int
}

// BonusSpawnedPayload carries the entry side, +1 moves right
type BonusSpawnedPayload struct {
	Direction float64
	Points    int
}

// BonusDestroyedPayload describes a bonus kill, position is the target center
type BonusDestroyedPayload struct {
	X, Y   float64
	Points int
}

// PlayerHitPayload describes the ship hit, position is the ship center
type PlayerHitPayload struct {
	X, Y  float64
	Lives int
}

// FleetDropPayload carries the fleet's lowest edge after the drop
type FleetDropPayload struct {
	Bottom float64
}

// CoverDamagedPayload counts eroded cells of one bunker
type CoverDamagedPayload struct {
	Bunker int
	Cells  int
}

// LevelClearedPayload carries the level just finished
type LevelClearedPayload struct {
	Level int
	Score int
}

// GameOverReason distinguishes the loss conditions
type GameOverReason int

const (
	ReasonNone GameOverReason = iota
	ReasonLivesExhausted
	ReasonInvaded
)

func (r GameOverReason) String() string {
	switch r {
	case ReasonLivesExhausted:
		return "lives_exhausted"
	case ReasonInvaded:
		return "invaded"
	default:
		return "none"
	}
}

// GameOverPayload carries the final result of a run
type GameOverPayload struct {
	Reason    GameOverReason
	Score     int
	HighScore int
	Level     int
}
