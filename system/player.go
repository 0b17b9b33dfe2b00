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

// PlayerSystem moves the ship, fires the single player shot and ages the hit flash
type PlayerSystem struct {
	statShots *atomic.Int64
}

func NewPlayerSystem(w *engine.World) engine.System {
	return &PlayerSystem{
		statShots: w.Status.Ints.Get(status.KeyShotsFired),
	}
}

func (s *PlayerSystem) Name() string             { return "player" }
func (s *PlayerSystem) Priority() int            { return parameter.PriorityPlayer }
func (s *PlayerSystem) Phases() engine.PhaseMask { return engine.MaskPlaying }

func (s *PlayerSystem) Update(w *engine.World, dt time.Duration, in engine.Intents) {
	p := &w.Player

	p.X += in.Move() * p.Speed * dt.Seconds()
	w.ClampPlayer()

	if in.Fire {
		s.fire(w)
	}

	if p.Hit {
		p.HitTimer += dt
		if p.HitTimer >= w.Config.Player.FlashDuration {
			p.Hit = false
		}
	}
}

// fire spawns a shot above the ship unless one is already in flight
func (s *PlayerSystem) fire(w *engine.World) bool {
	if PlayerBulletInFlight(w) {
		return false
	}

	c := &w.Config.Combat
	p := &w.Player
	b := component.Bullet{
		X:     p.X + p.W/2 - c.BulletWidth/2,
		Y:     p.Y - c.BulletHeight,
		W:     c.BulletWidth,
		H:     c.BulletHeight,
		VelY:  w.PlayerBulletVelocity(),
		Owner: component.OwnerPlayer,
	}
	w.Bullets = append(w.Bullets, b)

	s.statShots.Add(1)
	w.Emit(event.EventShotFired, &event.ShotFiredPayload{X: b.X, Y: b.Y})
	return true
}

// PlayerBulletInFlight reports whether a player shot exists
func PlayerBulletInFlight(w *engine.World) bool {
	for i := range w.Bullets {
		if w.Bullets[i].Owner == component.OwnerPlayer {
			return true
		}
	}
	return false
}
