package engine

import (
	"time"

	"github.com/lixenwraith/vi-invaders/vmath"
)

// KillSpeedMultiplier is the march acceleration from losses: 1 + (killed/total)*factor
func (w *World) KillSpeedMultiplier() float64 {
	f := &w.Fleet
	if f.Total <= 0 {
		return 1
	}
	return 1 + float64(f.Killed())/float64(f.Total)*w.Config.Fleet.KillSpeedFactor
}

// LevelSpeedMultiplier combines per-level acceleration with the difficulty's enemy speed
func (w *World) LevelSpeedMultiplier() float64 {
	levelMult := 1 + float64(w.State.Level-1)*w.Config.Fleet.LevelSpeedStep
	return levelMult * w.State.Difficulty.EnemySpeedMult
}

// StepInterval is the delay between fleet steps for the current kill ratio and level
func (w *World) StepInterval() time.Duration {
	m := w.KillSpeedMultiplier() * w.LevelSpeedMultiplier()
	if m <= 0 {
		return w.Config.Fleet.BaseStepInterval
	}
	return time.Duration(float64(w.Config.Fleet.BaseStepInterval) / m)
}

// FireIntervalFor returns the enemy fire interval at a level, floored at the minimum
func (w *World) FireIntervalFor(level int) time.Duration {
	c := &w.Config.Combat
	d := c.BaseFireInterval - time.Duration(level-1)*c.FireIntervalStep
	if d < c.MinFireInterval {
		d = c.MinFireInterval
	}
	return d
}

// BonusSpawnInterval returns the bonus countdown for the current level, floored at the minimum
func (w *World) BonusSpawnInterval() time.Duration {
	b := &w.Config.Bonus
	d := b.BaseSpawn - time.Duration(w.State.Level-1)*b.SpawnStep
	if d < b.MinSpawn {
		d = b.MinSpawn
	}
	return d
}

// PlayerBulletVelocity is the signed upward speed of a player shot
func (w *World) PlayerBulletVelocity() float64 {
	return -w.Config.Combat.PlayerBulletSpeed * w.State.Difficulty.BulletSpeedMult
}

// EnemyBulletVelocity is the signed downward speed of an enemy shot at the current level
func (w *World) EnemyBulletVelocity() float64 {
	c := &w.Config.Combat
	return (c.EnemyBulletSpeed + float64(w.State.Level-1)*c.EnemyBulletSpeedStep) * w.State.Difficulty.BulletSpeedMult
}

// ClampPlayer keeps the ship inside the playfield
func (w *World) ClampPlayer() {
	w.Player.X = vmath.Clamp(w.Player.X, 0, w.Config.Playfield.Width-w.Player.W)
}
