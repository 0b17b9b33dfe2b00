package engine

import (
	"testing"

	"github.com/lixenwraith/vi-invaders/component"
	"github.com/lixenwraith/vi-invaders/config"
)

func TestSnapshotIsDeepCopy(t *testing.T) {
	w := NewWorld(config.Default(), 1, nil, nil)
	w.StartGame()
	w.Bullets = append(w.Bullets, component.Bullet{X: 10, Y: 20, W: 4, H: 12, VelY: -400})
	w.Explosions = append(w.Explosions, component.Explosion{Particles: []component.Particle{{X: 1}}})
	w.Bonus = &component.Bonus{X: 5, Points: 100}

	s := w.Snapshot()

	w.Bunkers[0].Destroy(5, 5)
	w.Fleet.Units[0].Alive = false
	w.Bullets[0].Y = 0
	w.Explosions[0].Particles[0].X = 99
	w.Bonus.X = 50

	if !s.Bunkers[0].Solid(5, 5) {
		t.Error("snapshot bunker aliases live grid")
	}
	if !s.Enemies[0].Alive {
		t.Error("snapshot enemies alias live fleet")
	}
	if s.Bullets[0].Y != 20 {
		t.Error("snapshot bullets alias live pool")
	}
	if s.Explosions[0].Particles[0].X != 1 {
		t.Error("snapshot particles alias live pool")
	}
	if !s.HasBonus || s.Bonus.X != 5 {
		t.Error("snapshot bonus aliases live bonus")
	}
	if s.Difficulty != "normal" || len(s.Difficulties) != 3 || s.Lives != 3 {
		t.Errorf("session fields wrong: %+v", s.Difficulties)
	}
}

func TestSnapshotIntoReuses(t *testing.T) {
	w := NewWorld(config.Default(), 1, nil, nil)
	var s Snapshot
	w.SnapshotInto(&s)
	cells := &s.Bunkers[0].Cells[0]

	w.Bunkers[0].Destroy(3, 3)
	w.SnapshotInto(&s)
	if &s.Bunkers[0].Cells[0] != cells {
		t.Error("bunker cells reallocated on refill")
	}
	if s.Bunkers[0].Solid(3, 3) {
		t.Error("refill missed erosion")
	}

	w.Bunkers = w.Bunkers[:2]
	w.SnapshotInto(&s)
	if len(s.Bunkers) != 2 {
		t.Errorf("bunker count = %d, want 2", len(s.Bunkers))
	}
}

func TestSnapshotBuffer(t *testing.T) {
	w := NewWorld(config.Default(), 1, nil, nil)
	b := NewSnapshotBuffer()

	if b.Read(func(*Snapshot) {}) {
		t.Fatal("Read succeeded before publish")
	}

	w.StartGame()
	w.AwardPoints(30)
	b.Publish(w)
	w.AwardPoints(20)

	var score int
	b.Read(func(s *Snapshot) { score = s.Score })
	if score != 30 {
		t.Errorf("front score = %d, want 30", score)
	}

	b.Publish(w)
	b.Read(func(s *Snapshot) { score = s.Score })
	if score != 50 {
		t.Errorf("front score after swap = %d, want 50", score)
	}
}
