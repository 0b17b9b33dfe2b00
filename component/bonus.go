package component

import "github.com/lixenwraith/vi-invaders/vmath"

// Bonus is the high-value target crossing above the fleet
type Bonus struct {
	X, Y      float64
	W, H      float64
	Direction float64 // +1 right, -1 left
	Speed     float64
	Points    int // Base reward before level and difficulty scaling
}

func (b *Bonus) Rect() vmath.Rect {
	return vmath.Rect{X: b.X, Y: b.Y, W: b.W, H: b.H}
}

// Exited reports whether the bonus has fully crossed the playfield
func (b *Bonus) Exited(width float64) bool {
	if b.Direction > 0 {
		return b.X > width
	}
	return b.X+b.W < 0
}
