package status

import "sync/atomic"

// Well-known metric keys written by the simulation and read by the HUD and exit summary
const (
	KeyTicks          = "engine.ticks"
	KeyFPS            = "engine.fps"
	KeyFramePeakMs    = "engine.frame_peak_ms"
	KeyEventsDropped  = "engine.events_dropped"
	KeyPaused         = "engine.paused"
	KeyPhase          = "game.phase"
	KeyDifficulty     = "game.difficulty"
	KeyShotsFired     = "combat.shots_fired"
	KeyEnemiesKilled  = "combat.enemies_killed"
	KeyBonusKilled    = "combat.bonus_killed"
	KeyBonusEscaped   = "combat.bonus_escaped"
	KeyPlayerHits     = "combat.player_hits"
	KeyCoverCellsLost = "cover.cells_lost"
	KeyFleetDrops     = "fleet.drops"
	KeyLevelsCleared  = "game.levels_cleared"
	KeyGamesPlayed    = "game.games_played"
)

// Registry is the central metrics facade
// Systems cache pointers during init; Update loops write directly to atomics
type Registry struct {
	Bools   *MetricMap[atomic.Bool]
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:   NewMetricMap[atomic.Bool](),
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Floats.Count() + r.Strings.Count()
}

// Fields flattens every metric into a map suitable for structured log fields
func (r *Registry) Fields() map[string]any {
	out := make(map[string]any, r.TotalCount())
	r.Bools.Range(func(k string, v *atomic.Bool) { out[k] = v.Load() })
	r.Ints.Range(func(k string, v *atomic.Int64) { out[k] = v.Load() })
	r.Floats.Range(func(k string, v *AtomicFloat) { out[k] = v.Load() })
	r.Strings.Range(func(k string, v *AtomicString) { out[k] = v.Load() })
	return out
}
