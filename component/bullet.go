package component

import "github.com/lixenwraith/vi-invaders/vmath"

// BulletOwner identifies which side fired a bullet
type BulletOwner uint8

const (
	OwnerPlayer BulletOwner = iota
	OwnerEnemy
)

// Bullet is a vertical projectile
// VelY sign encodes direction: negative travels up toward the fleet
type Bullet struct {
	X, Y  float64
	W, H  float64
	VelY  float64 // Units per second, signed
	Owner BulletOwner
}

func (b *Bullet) Rect() vmath.Rect {
	return vmath.Rect{X: b.X, Y: b.Y, W: b.W, H: b.H}
}

// OffField reports whether the bullet has fully left the playfield in its travel direction
func (b *Bullet) OffField(height float64) bool {
	if b.VelY < 0 {
		return b.Y+b.H < 0
	}
	return b.Y > height
}
