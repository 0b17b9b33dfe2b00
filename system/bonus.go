package system

import (
	"sync/atomic"
	"time"

	"github.com/lixenwraith/vi-invaders/component"
	"github.com/lixenwraith/vi-invaders/engine"
	"github.com/lixenwraith/vi-invaders/event"
	"github.com/lixenwraith/vi-invaders/parameter"
	"github.com/lixenwraith/vi-invaders/status"
)

// BonusSystem spawns the bonus target on a level-scaled countdown and flies it across the playfield
type BonusSystem struct {
	statEscaped *atomic.Int64
}

func NewBonusSystem(w *engine.World) engine.System {
	return &BonusSystem{
		statEscaped: w.Status.Ints.Get(status.KeyBonusEscaped),
	}
}

func (s *BonusSystem) Name() string             { return "bonus" }
func (s *BonusSystem) Priority() int            { return parameter.PriorityBonus }
func (s *BonusSystem) Phases() engine.PhaseMask { return engine.MaskPlaying }

func (s *BonusSystem) Update(w *engine.World, dt time.Duration, in engine.Intents) {
	if w.Bonus == nil {
		w.State.BonusTimer += dt
		if w.State.BonusTimer >= w.BonusSpawnInterval() {
			w.State.BonusTimer = 0
			s.spawn(w)
		}
		return
	}

	b := w.Bonus
	b.X += b.Speed * b.Direction * dt.Seconds()
	if b.Exited(w.Config.Playfield.Width) {
		w.Bonus = nil
		s.statEscaped.Add(1)
		w.Emit(event.EventBonusEscaped, nil)
	}
}

// spawn places the bonus just outside a random side, heading inward
func (s *BonusSystem) spawn(w *engine.World) {
	bc := &w.Config.Bonus
	dir := -1.0
	if w.RNG.Chance(0.5) {
		dir = 1
	}
	x := w.Config.Playfield.Width
	if dir > 0 {
		x = -bc.Width
	}

	w.Bonus = &component.Bonus{
		X:         x,
		Y:         bc.Y,
		W:         bc.Width,
		H:         bc.Height,
		Direction: dir,
		Speed:     bc.Speed,
		Points:    bc.PointTable[w.RNG.Intn(len(bc.PointTable))],
	}
	w.Emit(event.EventBonusSpawned, &event.BonusSpawnedPayload{Direction: dir, Points: w.Bonus.Points})
}
