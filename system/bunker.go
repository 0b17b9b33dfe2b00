package system

import (
	"github.com/lixenwraith/vi-invaders/component"
	"github.com/lixenwraith/vi-invaders/vmath"
)

// Impact describes a resolved bullet-versus-cover hit
type Impact struct {
	Bunker    int // Index into the bunker slice
	Row, Col  int // Cell under the bullet center
	Destroyed int // Solid cells cleared by the erosion
}

// DamageBunkers resolves a projectile against cover
// The first bunker whose bounds overlap r and whose cell under r's center is solid takes the hit;
// each cell in the (2*radius+1)^2 neighborhood is destroyed with probability chance
// A bunker overlapped at an empty cell lets the search continue to later bunkers
func DamageBunkers(bunkers []component.Bunker, r vmath.Rect, radius int, chance float64, rng *vmath.FastRand) (Impact, bool) {
	cx, cy := r.Center()
	for i := range bunkers {
		b := &bunkers[i]
		if !vmath.Intersects(r, b.Rect()) {
			continue
		}
		row, col := b.CellAt(cx, cy)
		if !b.Solid(row, col) {
			continue
		}

		hit := Impact{Bunker: i, Row: row, Col: col}
		for dr := -radius; dr <= radius; dr++ {
			for dc := -radius; dc <= radius; dc++ {
				rr, cc := row+dr, col+dc
				if !b.InGrid(rr, cc) {
					continue
				}
				if rng.Chance(chance) && b.Solid(rr, cc) {
					b.Destroy(rr, cc)
					hit.Destroyed++
				}
			}
		}
		return hit, true
	}
	return Impact{Bunker: -1}, false
}

// ErodeFootprint clears every solid cell whose box overlaps r and returns the number cleared
func ErodeFootprint(b *component.Bunker, r vmath.Rect) int {
	if !vmath.Intersects(r, b.Rect()) {
		return 0
	}

	r0 := vmath.ClampInt(vmath.Floor((r.Y-b.Y)/b.CellSize), 0, b.Rows-1)
	r1 := vmath.ClampInt(vmath.Floor((r.Bottom()-b.Y)/b.CellSize), 0, b.Rows-1)
	c0 := vmath.ClampInt(vmath.Floor((r.X-b.X)/b.CellSize), 0, b.Cols-1)
	c1 := vmath.ClampInt(vmath.Floor((r.Right()-b.X)/b.CellSize), 0, b.Cols-1)

	n := 0
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			if b.Solid(row, col) && vmath.Intersects(r, b.CellRect(row, col)) {
				b.Destroy(row, col)
				n++
			}
		}
	}
	return n
}
