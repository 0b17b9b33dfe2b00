package system

import (
	"time"

	"github.com/lixenwraith/vi-invaders/engine"
	"github.com/lixenwraith/vi-invaders/parameter"
)

// PhaseSystem drives the game phase machine from confirm/cycle intents and the level-complete countdown
// Runs first in every phase
type PhaseSystem struct{}

func NewPhaseSystem(w *engine.World) engine.System {
	return &PhaseSystem{}
}

func (s *PhaseSystem) Name() string             { return "phase" }
func (s *PhaseSystem) Priority() int            { return parameter.PriorityPhase }
func (s *PhaseSystem) Phases() engine.PhaseMask { return engine.MaskAll }

func (s *PhaseSystem) Update(w *engine.World, dt time.Duration, in engine.Intents) {
	w.State.PhaseTimer += dt

	switch w.State.Phase {
	case engine.PhaseStart:
		if in.CycleLeft {
			w.SelectDifficulty(-1)
		}
		if in.CycleRight {
			w.SelectDifficulty(1)
		}
		if in.Confirm {
			w.StartGame()
		}

	case engine.PhaseLevelComplete:
		if w.State.PhaseTimer >= w.Config.Phase.LevelCompleteDuration {
			w.StartNextLevel()
		}

	case engine.PhaseGameOver:
		if in.Confirm {
			w.ReturnToStart()
		}
	}
}
