package system

import (
	"slices"
	"testing"

	"github.com/lixenwraith/vi-invaders/engine"
	"github.com/lixenwraith/vi-invaders/event"
)

func TestBonusSpawnAndEscape(t *testing.T) {
	w := newPlayingWorld(t, 5)
	bonus := NewBonusSystem(w)

	interval := w.BonusSpawnInterval()
	bonus.Update(w, interval-tick, engine.Intents{})
	if w.Bonus != nil {
		t.Fatal("bonus spawned early")
	}
	bonus.Update(w, tick, engine.Intents{})
	if w.Bonus == nil {
		t.Fatal("bonus did not spawn")
	}

	b := w.Bonus
	switch b.Direction {
	case 1:
		if b.X != -b.W {
			t.Errorf("right-moving bonus at X=%v, want %v", b.X, -b.W)
		}
	case -1:
		if b.X != w.Config.Playfield.Width {
			t.Errorf("left-moving bonus at X=%v", b.X)
		}
	default:
		t.Fatalf("direction = %v", b.Direction)
	}
	if !slices.Contains(w.Config.Bonus.PointTable, b.Points) {
		t.Errorf("points %d not in table", b.Points)
	}
	if w.State.BonusTimer != 0 {
		t.Errorf("timer = %v, want 0", w.State.BonusTimer)
	}

	// Long enough to cross the playfield
	for i := 0; i < 1000 && w.Bonus != nil; i++ {
		bonus.Update(w, tick, engine.Intents{})
	}
	if w.Bonus != nil {
		t.Fatal("bonus never left")
	}

	seen := drainEvents(w)
	if !containsEvent(seen, event.EventBonusSpawned) || !containsEvent(seen, event.EventBonusEscaped) {
		t.Errorf("events = %v", seen)
	}
	t.Logf("✓ spawn after %v, escape", interval)
}

func TestBonusTimerPausedWhilePresent(t *testing.T) {
	w := newPlayingWorld(t, 5)
	bonus := NewBonusSystem(w)

	w.State.BonusTimer = w.BonusSpawnInterval()
	bonus.Update(w, 0, engine.Intents{})
	if w.Bonus == nil {
		t.Fatal("no spawn")
	}
	bonus.Update(w, tick, engine.Intents{})
	if w.State.BonusTimer != 0 {
		t.Errorf("timer advanced while bonus present: %v", w.State.BonusTimer)
	}
}

func TestBonusSpawnSides(t *testing.T) {
	w := newPlayingWorld(t, 11)
	bonus := NewBonusSystem(w)

	sides := map[float64]int{}
	for i := 0; i < 64; i++ {
		w.Bonus = nil
		w.State.BonusTimer = w.BonusSpawnInterval()
		bonus.Update(w, 0, engine.Intents{})
		sides[w.Bonus.Direction]++
	}
	if sides[1] == 0 || sides[-1] == 0 {
		t.Errorf("sides = %v, want both", sides)
	}
	t.Logf("✓ sides %v", sides)
}
