package system

import (
	"slices"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/vi-invaders/component"
	"github.com/lixenwraith/vi-invaders/engine"
	"github.com/lixenwraith/vi-invaders/event"
	"github.com/lixenwraith/vi-invaders/parameter"
	"github.com/lixenwraith/vi-invaders/status"
	"github.com/lixenwraith/vi-invaders/vmath"
)

// CombatSystem resolves hits, scoring and loss conditions after every mover has advanced
// Resolution order: player shots vs bonus, player shots vs fleet, enemy shots vs ship,
// invasion check, fleet contact erosion of cover
type CombatSystem struct {
	statKills      *atomic.Int64
	statBonusKills *atomic.Int64
	statHits       *atomic.Int64
	statCells      *atomic.Int64
}

func NewCombatSystem(w *engine.World) engine.System {
	return &CombatSystem{
		statKills:      w.Status.Ints.Get(status.KeyEnemiesKilled),
		statBonusKills: w.Status.Ints.Get(status.KeyBonusKilled),
		statHits:       w.Status.Ints.Get(status.KeyPlayerHits),
		statCells:      w.Status.Ints.Get(status.KeyCoverCellsLost),
	}
}

func (s *CombatSystem) Name() string             { return "combat" }
func (s *CombatSystem) Priority() int            { return parameter.PriorityCombat }
func (s *CombatSystem) Phases() engine.PhaseMask { return engine.MaskPlaying }

func (s *CombatSystem) Update(w *engine.World, dt time.Duration, in engine.Intents) {
	s.shotsVsBonus(w)
	s.shotsVsFleet(w)
	s.shotsVsPlayer(w)
	s.checkInvasion(w)
	s.fleetVsCover(w)
}

// shotsVsBonus removes the bonus and the first player shot overlapping it
func (s *CombatSystem) shotsVsBonus(w *engine.World) {
	if w.Bonus == nil {
		return
	}
	target := w.Bonus.Rect()
	for i := range w.Bullets {
		b := &w.Bullets[i]
		if b.Owner != component.OwnerPlayer || !vmath.Intersects(b.Rect(), target) {
			continue
		}

		pts := w.AwardPoints(w.Bonus.Points)
		cx, cy := target.Center()
		w.Emit(event.EventBonusDestroyed, &event.BonusDestroyedPayload{X: cx, Y: cy, Points: pts})
		s.statBonusKills.Add(1)

		w.Bullets = slices.Delete(w.Bullets, i, i+1)
		w.Bonus = nil
		return
	}
}

// shotsVsFleet kills at most one unit per player shot, first alive unit in fleet order wins
func (s *CombatSystem) shotsVsFleet(w *engine.World) {
	n := 0
	for i := range w.Bullets {
		b := w.Bullets[i]
		if b.Owner == component.OwnerPlayer && s.hitFleet(w, b.Rect()) {
			continue
		}
		w.Bullets[n] = b
		n++
	}
	w.Bullets = w.Bullets[:n]
}

func (s *CombatSystem) hitFleet(w *engine.World, r vmath.Rect) bool {
	f := &w.Fleet
	for j := range f.Units {
		u := &f.Units[j]
		if !u.Alive || !vmath.Intersects(r, u.Rect()) {
			continue
		}

		u.Alive = false
		f.Alive--
		pts := w.AwardPoints(w.Config.RowPoints(u.Row))
		s.statKills.Add(1)

		cx, cy := u.Rect().Center()
		w.Emit(event.EventEnemyDestroyed, &event.EnemyDestroyedPayload{
			X: cx, Y: cy, Row: u.Row, Col: u.Col, Points: pts, Remaining: f.Alive,
		})

		if f.Alive == 0 && w.TransitionPhase(engine.PhaseLevelComplete) {
			w.Emit(event.EventLevelCleared, &event.LevelClearedPayload{Level: w.State.Level, Score: w.State.Score})
		}
		return true
	}
	return false
}

// shotsVsPlayer applies every enemy shot overlapping the ship
func (s *CombatSystem) shotsVsPlayer(w *engine.World) {
	p := &w.Player
	ship := p.Rect()

	n := 0
	for i := range w.Bullets {
		b := w.Bullets[i]
		if b.Owner != component.OwnerEnemy || !vmath.Intersects(b.Rect(), ship) {
			w.Bullets[n] = b
			n++
			continue
		}

		p.Hit = true
		p.HitTimer = 0
		if p.Lives > 0 {
			p.Lives--
		}
		s.statHits.Add(1)

		cx, cy := ship.Center()
		w.Emit(event.EventPlayerHit, &event.PlayerHitPayload{X: cx, Y: cy, Lives: p.Lives})

		if p.Lives <= 0 && w.State.Phase != engine.PhaseGameOver {
			w.EndGame(event.ReasonLivesExhausted)
		}
	}
	w.Bullets = w.Bullets[:n]
}

// checkInvasion ends the game when any alive unit reaches the ship's row
func (s *CombatSystem) checkInvasion(w *engine.World) {
	if w.State.Phase == engine.PhaseGameOver {
		return
	}
	line := w.Player.Y
	for i := range w.Fleet.Units {
		u := &w.Fleet.Units[i]
		if u.Alive && u.Y+u.H >= line {
			w.EndGame(event.ReasonInvaded)
			return
		}
	}
}

// fleetVsCover clears cover cells under every alive unit's footprint
func (s *CombatSystem) fleetVsCover(w *engine.World) {
	for bi := range w.Bunkers {
		bunker := &w.Bunkers[bi]
		cleared := 0
		for i := range w.Fleet.Units {
			u := &w.Fleet.Units[i]
			if u.Alive {
				cleared += ErodeFootprint(bunker, u.Rect())
			}
		}
		if cleared > 0 {
			s.statCells.Add(int64(cleared))
			w.Emit(event.EventCoverDamaged, &event.CoverDamagedPayload{Bunker: bi, Cells: cleared})
		}
	}
}
