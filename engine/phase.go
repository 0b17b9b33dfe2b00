package engine

// GamePhase is the top-level game state governing which systems run
type GamePhase int

const (
	PhaseStart GamePhase = iota
	PhasePlaying
	PhaseLevelComplete
	PhaseGameOver

	phaseCount
)

var phaseNames = [phaseCount]string{
	PhaseStart:         "start",
	PhasePlaying:       "playing",
	PhaseLevelComplete: "level_complete",
	PhaseGameOver:      "game_over",
}

// String returns the phase name for logs and the HUD
func (p GamePhase) String() string {
	if p >= 0 && p < phaseCount {
		return phaseNames[p]
	}
	return "unknown"
}

// PhaseMask is a set of phases a system runs in
type PhaseMask uint8

// Mask returns the single-phase set
func (p GamePhase) Mask() PhaseMask {
	return 1 << PhaseMask(p)
}

// Has reports whether the set contains the phase
func (m PhaseMask) Has(p GamePhase) bool {
	return m&p.Mask() != 0
}

const (
	MaskPlaying PhaseMask = 1 << PhasePlaying
	MaskAll     PhaseMask = 1<<phaseCount - 1
)

// validTransitions is the phase graph
// LevelComplete -> GameOver covers a loss resolved in the same tick as the final kill
var validTransitions = map[GamePhase][]GamePhase{
	PhaseStart:         {PhasePlaying},
	PhasePlaying:       {PhaseLevelComplete, PhaseGameOver},
	PhaseLevelComplete: {PhasePlaying, PhaseGameOver},
	PhaseGameOver:      {PhaseStart},
}

// CanTransition checks if a phase transition is valid
func CanTransition(from, to GamePhase) bool {
	for _, allowed := range validTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}
