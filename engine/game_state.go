package engine

import (
	"math"
	"time"

	"github.com/lixenwraith/vi-invaders/config"
	"github.com/lixenwraith/vi-invaders/event"
)

// GameState holds the session counters owned by the World
// Single writer: only mutated inside a tick
type GameState struct {
	// ===== PHASE =====

	Phase          GamePhase
	PhaseTimer     time.Duration // Time spent in the current phase
	GameOverReason event.GameOverReason

	// ===== SCORING =====

	Score     int
	HighScore int // Monotonic max of Score for the process lifetime
	Level     int

	// ===== DIFFICULTY =====

	Selected   int // Start screen cursor into Config.Difficulties
	Difficulty config.Difficulty

	// ===== CADENCE =====

	FireInterval time.Duration // Enemy fire interval for the current level
	BonusTimer   time.Duration // Accumulates toward the next bonus spawn
}

// ScaledPoints applies level and difficulty scaling to a base point value
func (gs *GameState) ScaledPoints(base int) int {
	return int(math.Floor(float64(base) * float64(gs.Level) * gs.Difficulty.ScoreMult))
}

// AddScore adds points and raises the high score when exceeded
func (gs *GameState) AddScore(points int) {
	gs.Score += points
	if gs.Score > gs.HighScore {
		gs.HighScore = gs.Score
	}
}

// CycleSelection moves the difficulty cursor by delta, wrapping in both directions
func (gs *GameState) CycleSelection(delta, n int) {
	if n <= 0 {
		return
	}
	gs.Selected = ((gs.Selected+delta)%n + n) % n
}
