package system

import (
	"sync/atomic"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/vi-invaders/engine"
	"github.com/lixenwraith/vi-invaders/event"
	"github.com/lixenwraith/vi-invaders/status"
)

// Telemetry logs every simulation event and keeps the session counters the tick systems do not own
type Telemetry struct {
	statLevels *atomic.Int64
	statGames  *atomic.Int64
	difficulty *status.AtomicString
}

func NewTelemetry(w *engine.World) *Telemetry {
	return &Telemetry{
		statLevels: w.Status.Ints.Get(status.KeyLevelsCleared),
		statGames:  w.Status.Ints.Get(status.KeyGamesPlayed),
		difficulty: w.Status.Strings.Get(status.KeyDifficulty),
	}
}

func (t *Telemetry) EventTypes() []event.EventType {
	return event.AllTypes()
}

func (t *Telemetry) HandleEvent(w *engine.World, ev event.GameEvent) {
	fields := logrus.Fields{"event": ev.Type.String(), "frame": ev.Frame}

	switch p := ev.Payload.(type) {
	case *event.GameStartedPayload:
		t.statGames.Add(1)
		t.difficulty.Store(p.Difficulty)
		fields["difficulty"] = p.Difficulty
		fields["lives"] = p.Lives
	case *event.EnemyDestroyedPayload:
		fields["row"] = p.Row
		fields["col"] = p.Col
		fields["points"] = p.Points
		fields["remaining"] = p.Remaining
	case *event.BonusSpawnedPayload:
		fields["direction"] = p.Direction
		fields["points"] = p.Points
	case *event.BonusDestroyedPayload:
		fields["points"] = p.Points
	case *event.PlayerHitPayload:
		fields["lives"] = p.Lives
	case *event.FleetDropPayload:
		fields["bottom"] = p.Bottom
	case *event.CoverDamagedPayload:
		fields["bunker"] = p.Bunker
		fields["cells"] = p.Cells
	case *event.LevelClearedPayload:
		t.statLevels.Add(1)
		fields["level"] = p.Level
		fields["score"] = p.Score
	case *event.GameOverPayload:
		fields["reason"] = p.Reason.String()
		fields["score"] = p.Score
		fields["high_score"] = p.HighScore
		fields["level"] = p.Level
		w.Log.WithFields(fields).Info("game over")
		return
	case *event.ShotFiredPayload, *event.PhaseChangePayload:
		// High-frequency or already logged by the world
		return
	}

	w.Log.WithFields(fields).Debug("event")
}
