package component

import (
	"time"

	"github.com/lixenwraith/vi-invaders/vmath"
)

// Player is the defending ship
// Lives is owned here; the session mirrors it for the HUD
type Player struct {
	X, Y  float64
	W, H  float64
	Speed float64 // Units per second

	Hit      bool          // Hit flash active
	HitTimer time.Duration // Time since last hit
	Lives    int
}

func (p *Player) Rect() vmath.Rect {
	return vmath.Rect{X: p.X, Y: p.Y, W: p.W, H: p.H}
}

// CenterOn places the ship horizontally centered in a playfield of given width
func (p *Player) CenterOn(width float64) {
	p.X = width/2 - p.W/2
}
