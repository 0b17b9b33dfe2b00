package engine

import (
	"testing"

	"github.com/lixenwraith/vi-invaders/config"
	"github.com/lixenwraith/vi-invaders/event"
)

// TestCanTransition tests the phase transition validation logic
func TestCanTransition(t *testing.T) {
	validTransitions := map[GamePhase][]GamePhase{
		PhaseStart:         {PhasePlaying},
		PhasePlaying:       {PhaseLevelComplete, PhaseGameOver},
		PhaseLevelComplete: {PhasePlaying, PhaseGameOver},
		PhaseGameOver:      {PhaseStart},
	}

	for from, validTos := range validTransitions {
		for _, to := range validTos {
			if !CanTransition(from, to) {
				t.Errorf("Expected transition %s -> %s to be valid, but it was rejected", from, to)
			} else {
				t.Logf("✓ Valid transition: %s -> %s", from, to)
			}
		}
	}

	invalidTransitions := []struct {
		from GamePhase
		to   GamePhase
		desc string
	}{
		{PhaseStart, PhaseGameOver, "Start -> GameOver (nothing to lose yet)"},
		{PhaseStart, PhaseLevelComplete, "Start -> LevelComplete (must play first)"},
		{PhasePlaying, PhaseStart, "Playing -> Start (must go through GameOver)"},
		{PhasePlaying, PhasePlaying, "Playing -> Playing (no self loop)"},
		{PhaseLevelComplete, PhaseStart, "LevelComplete -> Start"},
		{PhaseGameOver, PhasePlaying, "GameOver -> Playing (must confirm through Start)"},
		{PhaseGameOver, PhaseLevelComplete, "GameOver -> LevelComplete"},
	}

	for _, tc := range invalidTransitions {
		if CanTransition(tc.from, tc.to) {
			t.Errorf("Expected transition %s -> %s to be invalid, but it was allowed (%s)", tc.from, tc.to, tc.desc)
		} else {
			t.Logf("✓ Correctly rejected invalid transition: %s", tc.desc)
		}
	}
}

// TestTransitionPhase walks a full session lifecycle through the World
func TestTransitionPhase(t *testing.T) {
	w := NewWorld(config.Default(), 1, nil, nil)

	if w.State.Phase != PhaseStart {
		t.Fatalf("Expected initial phase start, got %s", w.State.Phase)
	}

	if w.TransitionPhase(PhaseGameOver) {
		t.Fatal("Start -> GameOver should be rejected")
	}
	if w.State.Phase != PhaseStart {
		t.Fatalf("Rejected transition changed phase to %s", w.State.Phase)
	}

	if !w.StartGame() {
		t.Fatal("StartGame failed from start")
	}
	t.Logf("✓ Transitioned Start -> Playing")

	w.State.PhaseTimer = 500
	if !w.TransitionPhase(PhaseLevelComplete) {
		t.Fatal("Playing -> LevelComplete failed")
	}
	if w.State.PhaseTimer != 0 {
		t.Errorf("Phase timer not reset: %v", w.State.PhaseTimer)
	}

	if !w.StartNextLevel() {
		t.Fatal("StartNextLevel failed")
	}
	if w.State.Level != 2 {
		t.Errorf("Expected level 2, got %d", w.State.Level)
	}
	t.Logf("✓ LevelComplete -> Playing at level %d", w.State.Level)

	if !w.EndGame(event.ReasonInvaded) {
		t.Fatal("Playing -> GameOver failed")
	}
	if w.State.GameOverReason != event.ReasonInvaded {
		t.Errorf("Expected reason invaded, got %s", w.State.GameOverReason)
	}

	if w.StartGame() {
		t.Error("StartGame must not run from game over")
	}
	if !w.ReturnToStart() {
		t.Fatal("GameOver -> Start failed")
	}
	t.Logf("✓ GameOver -> Start")
}

func TestPhaseMask(t *testing.T) {
	if !MaskAll.Has(PhaseStart) || !MaskAll.Has(PhaseGameOver) {
		t.Error("MaskAll missing phases")
	}
	if MaskPlaying.Has(PhaseLevelComplete) || !MaskPlaying.Has(PhasePlaying) {
		t.Error("MaskPlaying wrong")
	}
	m := PhaseStart.Mask() | PhaseGameOver.Mask()
	if !m.Has(PhaseGameOver) || m.Has(PhasePlaying) {
		t.Error("combined mask wrong")
	}
	if GamePhase(99).String() != "unknown" {
		t.Error("out of range phase should be unknown")
	}
}
