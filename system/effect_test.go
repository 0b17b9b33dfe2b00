package system

import (
	"math"
	"testing"
	"time"

	"github.com/lixenwraith/vi-invaders/config"
	"github.com/lixenwraith/vi-invaders/engine"
	"github.com/lixenwraith/vi-invaders/event"
	"github.com/lixenwraith/vi-invaders/parameter"
)

func newEffectWorld() (*engine.World, engine.System) {
	w := engine.NewWorld(config.Default(), 1, nil, nil)
	fx := NewEffectSystem(w)
	w.AddSystem(fx)
	return w, fx
}

func TestExplosionLifecycle(t *testing.T) {
	w, fx := newEffectWorld()
	ec := &w.Config.Effects

	w.Emit(event.EventEnemyDestroyed, &event.EnemyDestroyedPayload{X: 100, Y: 200, Points: 30})
	w.DispatchEvents()

	if len(w.Explosions) != 1 {
		t.Fatalf("explosions = %d, want 1", len(w.Explosions))
	}
	e := w.Explosions[0]
	if len(e.Particles) != ec.ParticleCount {
		t.Fatalf("particles = %d, want %d", len(e.Particles), ec.ParticleCount)
	}
	for i, p := range e.Particles {
		speed := math.Hypot(p.VX, p.VY)
		if speed < ec.ParticleMinSpeed-1e-9 || speed >= ec.ParticleMaxSpeed {
			t.Errorf("particle %d speed %v out of range", i, speed)
		}
		if p.Size < ec.ParticleMinSize || p.Size >= ec.ParticleMaxSize {
			t.Errorf("particle %d size %v out of range", i, p.Size)
		}
	}
	// First particle points along +X
	if e.Particles[0].VY > 1e-9 || e.Particles[0].VX <= 0 {
		t.Errorf("particle 0 velocity (%v,%v)", e.Particles[0].VX, e.Particles[0].VY)
	}

	vy0 := e.Particles[0].VY
	fx.Update(w, 100*time.Millisecond, engine.Intents{})
	p := w.Explosions[0].Particles[0]
	if p.X <= 0 {
		t.Errorf("particle did not move: X=%v", p.X)
	}
	if want := vy0 + ec.ParticleGravity*0.1; math.Abs(p.VY-want) > 1e-9 {
		t.Errorf("VY = %v, want %v", p.VY, want)
	}

	fx.Update(w, ec.ExplosionDuration, engine.Intents{})
	if len(w.Explosions) != 0 {
		t.Errorf("explosion not removed after %v", ec.ExplosionDuration)
	}
	t.Logf("✓ explosion spawned, aged and removed")
}

func TestBonusExplosionLabel(t *testing.T) {
	w, _ := newEffectWorld()
	w.Emit(event.EventBonusDestroyed, &event.BonusDestroyedPayload{X: 10, Y: 10, Points: 150})
	w.DispatchEvents()

	if len(w.Explosions) != 1 || w.Explosions[0].Bonus != 150 {
		t.Fatalf("explosions = %+v", w.Explosions)
	}
	if w.FX.Flash != parameter.BonusHitFlash {
		t.Errorf("flash = %v, want %v", w.FX.Flash, parameter.BonusHitFlash)
	}
}

func TestScreenFeedbackDecay(t *testing.T) {
	w, fx := newEffectWorld()

	w.Emit(event.EventPlayerHit, &event.PlayerHitPayload{X: 400, Y: 550, Lives: 2})
	w.DispatchEvents()

	if w.FX.ShakeIntensity != parameter.PlayerHitShakeIntensity || w.FX.ShakeTimer != parameter.PlayerHitShakeDuration {
		t.Errorf("shake = %v/%v", w.FX.ShakeIntensity, w.FX.ShakeTimer)
	}
	if w.FX.Flash != parameter.PlayerHitFlash {
		t.Errorf("flash = %v", w.FX.Flash)
	}

	fx.Update(w, 20*time.Millisecond, engine.Intents{})
	if want := parameter.PlayerHitFlash - 0.2; math.Abs(w.FX.Flash-want) > 1e-9 {
		t.Errorf("flash = %v, want %v", w.FX.Flash, want)
	}

	fx.Update(w, parameter.PlayerHitShakeDuration, engine.Intents{})
	if w.FX.ShakeTimer != 0 || w.FX.ShakeIntensity != 0 {
		t.Errorf("shake not finished: %v/%v", w.FX.ShakeIntensity, w.FX.ShakeTimer)
	}
	if w.FX.Flash != 0 {
		t.Errorf("flash = %v, want 0", w.FX.Flash)
	}

	w.Emit(event.EventFleetDrop, &event.FleetDropPayload{Bottom: 300})
	w.DispatchEvents()
	if w.FX.ShakeIntensity != parameter.FleetDropShakeIntensity {
		t.Errorf("drop shake = %v", w.FX.ShakeIntensity)
	}
	t.Logf("✓ shake and flash decay to zero")
}

func TestEffectsRunOutsidePlay(t *testing.T) {
	w, _ := newEffectWorld()
	w.Emit(event.EventEnemyDestroyed, &event.EnemyDestroyedPayload{X: 1, Y: 1})
	w.DispatchEvents()

	// Start phase, pipeline contains only the effect system
	w.Update(w.Config.Effects.ExplosionDuration, engine.Intents{})
	if len(w.Explosions) != 0 {
		t.Error("explosions not aged in start phase")
	}
}
