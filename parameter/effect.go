package parameter

import "time"

// Explosions
const (
	ExplosionDuration = 300 * time.Millisecond
	ParticleCount     = 20
	ParticleMinSpeed  = 50.0
	ParticleMaxSpeed  = 150.0
	ParticleMinSize   = 2.0
	ParticleMaxSize   = 6.0

	// ParticleGravity is the downward acceleration in units per second squared
	ParticleGravity = 100.0
)

// Screen feedback
const (
	PlayerHitShakeIntensity = 12.0
	PlayerHitShakeDuration  = 300 * time.Millisecond
	PlayerHitFlash          = 0.5

	FleetDropShakeIntensity = 6.0
	FleetDropShakeDuration  = 200 * time.Millisecond

	BonusHitFlash = 0.3

	// FlashFadeDuration is the time a full-intensity flash takes to fade out
	FlashFadeDuration = 100 * time.Millisecond
)
