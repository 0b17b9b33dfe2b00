// Package system implements the per-tick simulation pipeline
package system

import "github.com/lixenwraith/vi-invaders/engine"

// RegisterAll installs the standard pipeline and feedback handlers on a world
// Execution order follows parameter priorities: phase, player, fleet, bonus, bullet, combat, effect
func RegisterAll(w *engine.World) {
	w.AddSystem(NewPhaseSystem(w))
	w.AddSystem(NewPlayerSystem(w))
	w.AddSystem(NewFleetSystem(w))
	w.AddSystem(NewBonusSystem(w))
	w.AddSystem(NewBulletSystem(w))
	w.AddSystem(NewCombatSystem(w))
	w.AddSystem(NewEffectSystem(w))
	w.Router.Register(NewTelemetry(w))
}
