package system

import (
	"math"
	"time"

	"github.com/lixenwraith/vi-invaders/component"
	"github.com/lixenwraith/vi-invaders/engine"
	"github.com/lixenwraith/vi-invaders/event"
	"github.com/lixenwraith/vi-invaders/parameter"
)

// EffectSystem spawns explosions and screen feedback from combat events and ages them every tick
// Runs in every phase so effects finish during level-complete and game over
type EffectSystem struct{}

func NewEffectSystem(w *engine.World) engine.System {
	return &EffectSystem{}
}

func (s *EffectSystem) Name() string             { return "effect" }
func (s *EffectSystem) Priority() int            { return parameter.PriorityEffect }
func (s *EffectSystem) Phases() engine.PhaseMask { return engine.MaskAll }

func (s *EffectSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventEnemyDestroyed,
		event.EventBonusDestroyed,
		event.EventPlayerHit,
		event.EventFleetDrop,
	}
}

func (s *EffectSystem) HandleEvent(w *engine.World, ev event.GameEvent) {
	switch p := ev.Payload.(type) {
	case *event.EnemyDestroyedPayload:
		s.explode(w, p.X, p.Y, 0)

	case *event.BonusDestroyedPayload:
		s.explode(w, p.X, p.Y, p.Points)
		w.FX.Flash = parameter.BonusHitFlash

	case *event.PlayerHitPayload:
		s.explode(w, p.X, p.Y, 0)
		w.FX.Shake(parameter.PlayerHitShakeIntensity, parameter.PlayerHitShakeDuration)
		w.FX.Flash = parameter.PlayerHitFlash

	case *event.FleetDropPayload:
		w.FX.Shake(parameter.FleetDropShakeIntensity, parameter.FleetDropShakeDuration)
	}
}

// explode adds a radial burst, particles evenly spaced in angle with random speed and size
func (s *EffectSystem) explode(w *engine.World, x, y float64, bonus int) {
	ec := &w.Config.Effects
	n := ec.ParticleCount

	e := component.Explosion{X: x, Y: y, Bonus: bonus}
	if n > 0 {
		e.Particles = make([]component.Particle, n)
	}
	for i := range e.Particles {
		angle := 2 * math.Pi * float64(i) / float64(n)
		speed := w.RNG.Range(ec.ParticleMinSpeed, ec.ParticleMaxSpeed)
		e.Particles[i] = component.Particle{
			VX:   math.Cos(angle) * speed,
			VY:   math.Sin(angle) * speed,
			Size: w.RNG.Range(ec.ParticleMinSize, ec.ParticleMaxSize),
		}
	}
	w.Explosions = append(w.Explosions, e)
}

func (s *EffectSystem) Update(w *engine.World, dt time.Duration, in engine.Intents) {
	s.ageExplosions(w, dt)
	s.decayScreen(w, dt)
}

func (s *EffectSystem) ageExplosions(w *engine.World, dt time.Duration) {
	ec := &w.Config.Effects
	secs := dt.Seconds()

	n := 0
	for i := range w.Explosions {
		e := w.Explosions[i]
		e.Age += dt
		for j := range e.Particles {
			p := &e.Particles[j]
			p.X += p.VX * secs
			p.Y += p.VY * secs
			p.VY += ec.ParticleGravity * secs
		}
		if e.Age >= ec.ExplosionDuration {
			continue
		}
		w.Explosions[n] = e
		n++
	}
	clear(w.Explosions[n:])
	w.Explosions = w.Explosions[:n]
}

func (s *EffectSystem) decayScreen(w *engine.World, dt time.Duration) {
	fx := &w.FX
	if fx.ShakeTimer > 0 {
		fx.ShakeTimer -= dt
		if fx.ShakeTimer <= 0 {
			fx.ShakeTimer = 0
			fx.ShakeIntensity = 0
		}
	}

	if fx.Flash > 0 {
		fade := w.Config.Effects.FlashFade
		if fade <= 0 {
			fx.Flash = 0
			return
		}
		fx.Flash -= float64(dt) / float64(fade)
		if fx.Flash < 0 {
			fx.Flash = 0
		}
	}
}
