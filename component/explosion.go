package component

import "time"

// Particle is one fragment of an explosion, position relative to the explosion center
type Particle struct {
	X, Y   float64
	VX, VY float64
	Size   float64
}

// Explosion is a short-lived feedback effect with no gameplay influence
type Explosion struct {
	X, Y      float64 // Center
	Age       time.Duration
	Bonus     int // Points label for bonus kills, 0 when none
	Particles []Particle
}
