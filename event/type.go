package event

// EventType represents the type of simulation event
type EventType int

const (
	// EventGameStarted signals a fresh run from the start screen or after game over
	// Trigger: PhaseSystem on confirm | Payload: *GameStartedPayload
	EventGameStarted EventType = iota

	// EventPhaseChange signals any game phase transition
	// Trigger: World.TransitionPhase | Payload: *PhaseChangePayload
	EventPhaseChange

	// EventShotFired signals a projectile entering the playfield
	// Trigger: PlayerSystem, FleetSystem | Payload: *ShotFiredPayload
	EventShotFired

	// EventEnemyDestroyed signals a fleet unit killed by a player bullet
	// Trigger: CombatSystem | Consumer: EffectSystem, stats | Payload: *EnemyDestroyedPayload
	EventEnemyDestroyed

	// EventBonusSpawned signals the bonus target entering from a side
	// Trigger: BonusSystem | Payload: *BonusSpawnedPayload
	EventBonusSpawned

	// EventBonusEscaped signals the bonus target leaving the playfield unhit
	// Trigger: BonusSystem | Payload: nil
	EventBonusEscaped

	// EventBonusDestroyed signals the bonus target shot down
	// Trigger: CombatSystem | Consumer: EffectSystem, stats | Payload: *BonusDestroyedPayload
	EventBonusDestroyed

	// EventPlayerHit signals the ship losing a life
	// Trigger: CombatSystem | Consumer: EffectSystem, stats | Payload: *PlayerHitPayload
	EventPlayerHit

	// EventFleetDrop signals the fleet reversing and descending
	// Trigger: FleetSystem | Consumer: EffectSystem | Payload: *FleetDropPayload
	EventFleetDrop

	// EventCoverDamaged signals cells eroded from a bunker
	// Trigger: BulletSystem | Payload: *CoverDamagedPayload
	EventCoverDamaged

	// EventLevelCleared signals the last fleet unit destroyed
	// Trigger: CombatSystem | Payload: *LevelClearedPayload
	EventLevelCleared

	// EventGameOver signals the run ending
	// Trigger: CombatSystem | Payload: *GameOverPayload
	EventGameOver

	eventTypeCount
)

var typeNames = [eventTypeCount]string{
	EventGameStarted:    "GameStarted",
	EventPhaseChange:    "PhaseChange",
	EventShotFired:      "ShotFired",
	EventEnemyDestroyed: "EnemyDestroyed",
	EventBonusSpawned:   "BonusSpawned",
	EventBonusEscaped:   "BonusEscaped",
	EventBonusDestroyed: "BonusDestroyed",
	EventPlayerHit:      "PlayerHit",
	EventFleetDrop:      "FleetDrop",
	EventCoverDamaged:   "CoverDamaged",
	EventLevelCleared:   "LevelCleared",
	EventGameOver:       "GameOver",
}

// String returns the event name for logs
func (t EventType) String() string {
	if t >= 0 && t < eventTypeCount {
		return typeNames[t]
	}
	return "Unknown"
}

// AllTypes returns every defined event type in declaration order
func AllTypes() []EventType {
	types := make([]EventType, 0, eventTypeCount)
	for t := EventType(0); t < eventTypeCount; t++ {
		types = append(types, t)
	}
	return types
}

// GameEvent represents a single simulation event with metadata
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   int64 // Tick number at emission
}
