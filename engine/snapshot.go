package engine

import (
	"sync"
	"time"

	"github.com/lixenwraith/vi-invaders/component"
	"github.com/lixenwraith/vi-invaders/event"
)

// Snapshot is a deep copy of everything a renderer needs for one frame
// Slices are owned by the snapshot and reused across fills
type Snapshot struct {
	Frame int64

	// Session
	Phase                 GamePhase
	PhaseTimer            time.Duration
	LevelCompleteDuration time.Duration
	GameOverReason        event.GameOverReason
	Score                 int
	HighScore             int
	Level                 int
	Lives                 int
	Difficulty            string
	Selected              int
	Difficulties          []string

	// Playfield
	Width, Height float64

	// Entities
	Player     component.Player
	Bullets    []component.Bullet
	Enemies    []component.Enemy
	FleetFrame int
	Alive      int
	Bunkers    []component.Bunker
	Bonus      component.Bonus
	HasBonus   bool
	Explosions []component.Explosion
	FX         component.ScreenFX
}

// SnapshotInto copies world state into s, reusing its backing arrays
func (w *World) SnapshotInto(s *Snapshot) {
	s.Frame = w.frame

	s.Phase = w.State.Phase
	s.PhaseTimer = w.State.PhaseTimer
	s.LevelCompleteDuration = w.Config.Phase.LevelCompleteDuration
	s.GameOverReason = w.State.GameOverReason
	s.Score = w.State.Score
	s.HighScore = w.State.HighScore
	s.Level = w.State.Level
	s.Lives = w.Player.Lives
	s.Difficulty = w.State.Difficulty.Name
	s.Selected = w.State.Selected
	s.Difficulties = s.Difficulties[:0]
	for _, d := range w.Config.Difficulties {
		s.Difficulties = append(s.Difficulties, d.Name)
	}

	s.Width = w.Config.Playfield.Width
	s.Height = w.Config.Playfield.Height

	s.Player = w.Player
	s.Bullets = append(s.Bullets[:0], w.Bullets...)
	s.Enemies = append(s.Enemies[:0], w.Fleet.Units...)
	s.FleetFrame = w.Fleet.Frame
	s.Alive = w.Fleet.Alive

	// Bunker cells are copied element-wise so the snapshot never aliases live grids
	if cap(s.Bunkers) < len(w.Bunkers) {
		grown := make([]component.Bunker, len(w.Bunkers))
		copy(grown, s.Bunkers[:cap(s.Bunkers)])
		s.Bunkers = grown
	}
	s.Bunkers = s.Bunkers[:len(w.Bunkers)]
	for i := range w.Bunkers {
		w.Bunkers[i].CopyInto(&s.Bunkers[i])
	}

	s.HasBonus = w.Bonus != nil
	if s.HasBonus {
		s.Bonus = *w.Bonus
	} else {
		s.Bonus = component.Bonus{}
	}

	if cap(s.Explosions) < len(w.Explosions) {
		grown := make([]component.Explosion, len(w.Explosions))
		copy(grown, s.Explosions[:cap(s.Explosions)])
		s.Explosions = grown
	}
	s.Explosions = s.Explosions[:len(w.Explosions)]
	for i := range w.Explosions {
		parts := append(s.Explosions[i].Particles[:0], w.Explosions[i].Particles...)
		s.Explosions[i] = w.Explosions[i]
		s.Explosions[i].Particles = parts
	}

	s.FX = w.FX
}

// Snapshot returns a freshly allocated copy of world state
func (w *World) Snapshot() *Snapshot {
	s := &Snapshot{}
	w.SnapshotInto(s)
	return s
}

// SnapshotBuffer is a double buffer between the tick goroutine and a renderer
// The writer fills the back buffer without locking, then swaps under the write lock;
// readers hold the read lock for the duration of their access, so a swap never
// exposes a buffer that is still being read
type SnapshotBuffer struct {
	mu    sync.RWMutex
	bufs  [2]Snapshot
	front int
	ready bool
}

func NewSnapshotBuffer() *SnapshotBuffer {
	return &SnapshotBuffer{}
}

// Publish copies world state into the back buffer and makes it the front
func (b *SnapshotBuffer) Publish(w *World) {
	back := 1 - b.front
	w.SnapshotInto(&b.bufs[back])

	b.mu.Lock()
	b.front = back
	b.ready = true
	b.mu.Unlock()
}

// Read calls fn with the most recent snapshot; fn must not retain it
// Returns false without calling fn if nothing was published yet
func (b *SnapshotBuffer) Read(fn func(s *Snapshot)) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if !b.ready {
		return false
	}
	fn(&b.bufs[b.front])
	return true
}
