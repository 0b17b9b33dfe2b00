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

// FleetSystem marches the fleet in discrete steps and fires from the frontline
// Step cadence accelerates with the kill ratio, level and difficulty
type FleetSystem struct {
	frontBuf []int

	statDrops *atomic.Int64
	statShots *atomic.Int64
}

func NewFleetSystem(w *engine.World) engine.System {
	return &FleetSystem{
		frontBuf:  make([]int, 0, w.Config.Fleet.Cols),
		statDrops: w.Status.Ints.Get(status.KeyFleetDrops),
		statShots: w.Status.Ints.Get(status.KeyShotsFired),
	}
}

func (s *FleetSystem) Name() string             { return "fleet" }
func (s *FleetSystem) Priority() int            { return parameter.PriorityFleet }
func (s *FleetSystem) Phases() engine.PhaseMask { return engine.MaskPlaying }

func (s *FleetSystem) Update(w *engine.World, dt time.Duration, in engine.Intents) {
	f := &w.Fleet

	f.StepTimer += dt
	if f.StepTimer >= w.StepInterval() {
		f.StepTimer = 0
		s.step(w)
	}

	f.FireTimer += dt
	if f.FireTimer >= w.State.FireInterval {
		f.FireTimer = 0
		s.fire(w)
	}
}

// step advances every alive unit once, reversing and dropping at the margins
func (s *FleetSystem) step(w *engine.World) {
	f := &w.Fleet
	f.Frame ^= 1

	minX, maxX, ok := f.Bounds()
	if !ok {
		return
	}

	fc := &w.Config.Fleet
	drop := false
	if f.Direction > 0 && maxX >= w.Config.Playfield.Width-fc.EdgeMargin {
		f.Direction = -1
		drop = true
	} else if f.Direction < 0 && minX <= fc.EdgeMargin {
		f.Direction = 1
		drop = true
	}

	bottom := 0.0
	for i := range f.Units {
		u := &f.Units[i]
		if !u.Alive {
			continue
		}
		if drop {
			u.Y += fc.DropDistance
		}
		u.X += fc.StepSize * f.Direction
		if u.Y+u.H > bottom {
			bottom = u.Y + u.H
		}
	}

	if drop {
		s.statDrops.Add(1)
		w.Emit(event.EventFleetDrop, &event.FleetDropPayload{Bottom: bottom})
	}
}

// fire spawns one enemy shot from a uniformly chosen frontline unit
func (s *FleetSystem) fire(w *engine.World) bool {
	s.frontBuf = w.Fleet.Frontline(s.frontBuf)
	if len(s.frontBuf) == 0 {
		return false
	}

	shooter := &w.Fleet.Units[s.frontBuf[w.RNG.Intn(len(s.frontBuf))]]
	c := &w.Config.Combat
	b := component.Bullet{
		X:     shooter.X + shooter.W/2 - c.BulletWidth/2,
		Y:     shooter.Y + shooter.H,
		W:     c.BulletWidth,
		H:     c.BulletHeight,
		VelY:  w.EnemyBulletVelocity(),
		Owner: component.OwnerEnemy,
	}
	w.Bullets = append(w.Bullets, b)

	s.statShots.Add(1)
	w.Emit(event.EventShotFired, &event.ShotFiredPayload{Enemy: true, X: b.X, Y: b.Y})
	return true
}
