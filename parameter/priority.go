package parameter

// System Execution Priorities (lower runs first)
// Order is part of the simulation contract: a tick resolves collisions
// only after every mover has advanced
const (
	PriorityPhase  = 10 // Confirm/cycle input and level-complete countdown
	PriorityPlayer = 20 // Movement, fire, hit flash
	PriorityFleet  = 30 // March step and enemy fire
	PriorityBonus  = 40 // Bonus target spawn and flight
	PriorityBullet = 50 // Projectile advance, cover impact, off-screen cull
	PriorityCombat = 60 // Hit resolution, scoring, loss conditions
	PriorityEffect = 70 // Explosion aging, shake and flash decay
)
