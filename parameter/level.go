package parameter

import "time"

// Phase timing
const (
	// LevelCompleteDuration is the pause between clearing a fleet and the next level
	LevelCompleteDuration = 2 * time.Second
)

// Difficulty profiles, ordered for start-screen cycling
const (
	DifficultyEasy   = "easy"
	DifficultyNormal = "normal"
	DifficultyHard   = "hard"
)
