package system

import (
	"testing"
	"time"

	"github.com/lixenwraith/vi-invaders/component"
	"github.com/lixenwraith/vi-invaders/engine"
)

func TestPlayerMoveAndClamp(t *testing.T) {
	w := newPlayingWorld(t, 1)
	player := NewPlayerSystem(w)
	x0 := w.Player.X

	player.Update(w, 100*time.Millisecond, engine.Intents{MoveRight: true})
	if want := x0 + w.Player.Speed*0.1; w.Player.X != want {
		t.Errorf("X = %v, want %v", w.Player.X, want)
	}

	player.Update(w, 10*time.Second, engine.Intents{MoveLeft: true})
	if w.Player.X != 0 {
		t.Errorf("X = %v after long left move, want 0", w.Player.X)
	}

	player.Update(w, 10*time.Second, engine.Intents{MoveRight: true})
	if max := w.Config.Playfield.Width - w.Player.W; w.Player.X != max {
		t.Errorf("X = %v after long right move, want %v", w.Player.X, max)
	}

	x := w.Player.X
	player.Update(w, time.Second, engine.Intents{MoveLeft: true, MoveRight: true})
	if w.Player.X != x {
		t.Error("opposing keys should cancel")
	}
	t.Logf("✓ movement clamps to [0, %v]", w.Config.Playfield.Width-w.Player.W)
}

func TestPlayerSingleShot(t *testing.T) {
	w := newPlayingWorld(t, 1)
	player := NewPlayerSystem(w)

	player.Update(w, tick, engine.Intents{Fire: true})
	player.Update(w, tick, engine.Intents{Fire: true})

	if len(w.Bullets) != 1 {
		t.Fatalf("bullets = %d, want 1", len(w.Bullets))
	}
	b := w.Bullets[0]
	p := w.Player
	if b.Owner != component.OwnerPlayer || b.VelY >= 0 {
		t.Errorf("owner=%v vel=%v", b.Owner, b.VelY)
	}
	if b.X != p.X+p.W/2-b.W/2 || b.Y != p.Y-b.H {
		t.Errorf("bullet at (%v,%v)", b.X, b.Y)
	}

	// Enemy shots do not block the player
	w.Bullets[0].Owner = component.OwnerEnemy
	player.Update(w, tick, engine.Intents{Fire: true})
	if len(w.Bullets) != 2 {
		t.Errorf("bullets = %d, want 2", len(w.Bullets))
	}
	t.Logf("✓ one player shot in flight")
}

func TestPlayerHitFlashExpires(t *testing.T) {
	w := newPlayingWorld(t, 1)
	player := NewPlayerSystem(w)
	w.Player.Hit = true

	player.Update(w, w.Config.Player.FlashDuration/2, engine.Intents{})
	if !w.Player.Hit {
		t.Fatal("flash cleared early")
	}
	player.Update(w, w.Config.Player.FlashDuration/2, engine.Intents{})
	if w.Player.Hit {
		t.Error("flash not cleared after its duration")
	}
}
