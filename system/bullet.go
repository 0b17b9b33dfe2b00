package system

import (
	"sync/atomic"
	"time"

	"github.com/lixenwraith/vi-invaders/engine"
	"github.com/lixenwraith/vi-invaders/event"
	"github.com/lixenwraith/vi-invaders/parameter"
	"github.com/lixenwraith/vi-invaders/status"
)

// BulletSystem advances projectiles, erodes cover on impact and culls bullets that left the playfield
// Removal compacts the pool in place, preserving order
type BulletSystem struct {
	statCells *atomic.Int64
}

func NewBulletSystem(w *engine.World) engine.System {
	return &BulletSystem{
		statCells: w.Status.Ints.Get(status.KeyCoverCellsLost),
	}
}

func (s *BulletSystem) Name() string             { return "bullet" }
func (s *BulletSystem) Priority() int            { return parameter.PriorityBullet }
func (s *BulletSystem) Phases() engine.PhaseMask { return engine.MaskPlaying }

func (s *BulletSystem) Update(w *engine.World, dt time.Duration, in engine.Intents) {
	secs := dt.Seconds()
	bc := &w.Config.Bunker
	height := w.Config.Playfield.Height

	n := 0
	for i := range w.Bullets {
		b := w.Bullets[i]
		b.Y += b.VelY * secs

		if hit, ok := DamageBunkers(w.Bunkers, b.Rect(), bc.ErosionRadius, bc.ErosionChance, w.RNG); ok {
			s.statCells.Add(int64(hit.Destroyed))
			w.Emit(event.EventCoverDamaged, &event.CoverDamagedPayload{Bunker: hit.Bunker, Cells: hit.Destroyed})
			continue
		}
		if b.OffField(height) {
			continue
		}

		w.Bullets[n] = b
		n++
	}
	w.Bullets = w.Bullets[:n]
}
