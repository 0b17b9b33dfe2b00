package engine

import (
	"io"
	"sort"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/vi-invaders/component"
	"github.com/lixenwraith/vi-invaders/config"
	"github.com/lixenwraith/vi-invaders/event"
	"github.com/lixenwraith/vi-invaders/status"
	"github.com/lixenwraith/vi-invaders/vmath"
)

// World owns every entity pool and the session state of one game
// Not safe for concurrent use; hosts read it through SnapshotBuffer
type World struct {
	Config config.Config
	Log    logrus.FieldLogger
	Status *status.Registry
	RNG    *vmath.FastRand

	State GameState

	// ===== ENTITY POOLS =====

	Player     component.Player
	Bullets    []component.Bullet
	Fleet      component.Fleet
	Bunkers    []component.Bunker
	Bonus      *component.Bonus // nil when absent
	Explosions []component.Explosion
	FX         component.ScreenFX

	// ===== EVENTS =====

	Events *event.EventQueue
	Router *event.Router[*World]

	systems []System
	frame   int64
	seed    uint64

	ticks *atomic.Int64
	phase *status.AtomicString
}

// NewWorld creates a session in the start phase with the default difficulty selected
// A nil logger discards output, a nil registry is replaced with a private one
func NewWorld(cfg config.Config, seed uint64, log logrus.FieldLogger, reg *status.Registry) *World {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	if reg == nil {
		reg = status.NewRegistry()
	}

	q := event.NewEventQueue()
	w := &World{
		Config: cfg,
		Log:    log,
		Status: reg,
		RNG:    vmath.NewFastRand(seed),
		Events: q,
		Router: event.NewRouter[*World](q),
		seed:   seed,
		ticks:  reg.Ints.Get(status.KeyTicks),
		phase:  reg.Strings.Get(status.KeyPhase),
	}

	if idx := cfg.DifficultyIndex(cfg.Default); idx >= 0 {
		w.State.Selected = idx
	}
	w.State.Difficulty = w.selectedProfile()
	w.State.Phase = PhaseStart
	w.phase.Store(PhaseStart.String())
	w.Reset()
	return w
}

// Seed returns the RNG seed the world was created with
func (w *World) Seed() uint64 {
	return w.seed
}

// Frame returns the number of completed ticks
func (w *World) Frame() int64 {
	return w.frame
}

// ===== SYSTEMS =====

// AddSystem registers a system and keeps the pipeline sorted by priority
func (w *World) AddSystem(s System) {
	w.systems = append(w.systems, s)
	sort.SliceStable(w.systems, func(i, j int) bool {
		return w.systems[i].Priority() < w.systems[j].Priority()
	})
	if h, ok := s.(event.Handler[*World]); ok {
		w.Router.Register(h)
	}
}

// Systems returns a copy of the registered pipeline in execution order
func (w *World) Systems() []System {
	out := make([]System, len(w.systems))
	copy(out, w.systems)
	return out
}

// Update runs one tick of every system whose phase set contains the phase at tick start
// Transitions made during the tick take effect for gating on the next tick
func (w *World) Update(dt time.Duration, in Intents) {
	if dt < 0 {
		dt = 0
	}
	phase := w.State.Phase
	for _, s := range w.systems {
		if s.Phases().Has(phase) {
			s.Update(w, dt, in)
		}
	}
	w.frame++
	w.ticks.Add(1)
}

// DispatchEvents routes every event emitted since the last dispatch
func (w *World) DispatchEvents() int {
	return w.Router.DispatchAll(w)
}

// Step runs Update followed by DispatchEvents
func (w *World) Step(dt time.Duration, in Intents) {
	w.Update(dt, in)
	w.DispatchEvents()
}

// Emit queues an event for end-of-tick dispatch
func (w *World) Emit(t event.EventType, payload any) {
	w.Events.Push(event.GameEvent{Type: t, Payload: payload, Frame: w.frame})
}

// ===== PHASE CONTROL =====

// TransitionPhase moves to a new phase if the transition is valid
// Resets the phase timer and announces the change
func (w *World) TransitionPhase(to GamePhase) bool {
	from := w.State.Phase
	if !CanTransition(from, to) {
		w.Log.WithFields(logrus.Fields{"from": from.String(), "to": to.String()}).Warn("rejected phase transition")
		return false
	}
	w.State.Phase = to
	w.State.PhaseTimer = 0
	w.phase.Store(to.String())

	w.Log.WithFields(logrus.Fields{
		"from":  from.String(),
		"to":    to.String(),
		"level": w.State.Level,
		"score": w.State.Score,
	}).Info("phase change")
	w.Emit(event.EventPhaseChange, &event.PhaseChangePayload{From: from.String(), To: to.String(), Level: w.State.Level})
	return true
}

// StartGame applies the selected difficulty, resets the session and begins play
func (w *World) StartGame() bool {
	if w.State.Phase != PhaseStart {
		return false
	}
	w.State.Difficulty = w.selectedProfile()
	w.Reset()
	if !w.TransitionPhase(PhasePlaying) {
		return false
	}
	w.Emit(event.EventGameStarted, &event.GameStartedPayload{
		Difficulty: w.State.Difficulty.Name,
		Lives:      w.Player.Lives,
	})
	return true
}

// StartNextLevel advances the level, regenerates fleet and cover, keeps score and lives
func (w *World) StartNextLevel() bool {
	if w.State.Phase != PhaseLevelComplete {
		return false
	}
	w.State.Level++
	w.State.FireInterval = w.FireIntervalFor(w.State.Level)

	w.Fleet = component.NewFleet(w.Config.FleetLayout())
	w.Bunkers = w.newBunkers()
	w.Bullets = w.Bullets[:0]
	w.Bonus = nil
	w.State.BonusTimer = 0
	w.Player.CenterOn(w.Config.Playfield.Width)

	return w.TransitionPhase(PhasePlaying)
}

// EndGame records the loss reason and moves to game over
func (w *World) EndGame(reason event.GameOverReason) bool {
	if !w.TransitionPhase(PhaseGameOver) {
		return false
	}
	w.State.GameOverReason = reason
	w.Emit(event.EventGameOver, &event.GameOverPayload{
		Reason:    reason,
		Score:     w.State.Score,
		HighScore: w.State.HighScore,
		Level:     w.State.Level,
	})
	return true
}

// ReturnToStart leaves game over for the start screen
func (w *World) ReturnToStart() bool {
	if w.State.Phase != PhaseGameOver {
		return false
	}
	return w.TransitionPhase(PhaseStart)
}

// Reset rebuilds every pool for level 1 with the active difficulty
// High score and difficulty selection survive
func (w *World) Reset() {
	cfg := &w.Config

	w.State.Score = 0
	w.State.Level = 1
	w.State.PhaseTimer = 0
	w.State.GameOverReason = event.ReasonNone
	w.State.FireInterval = w.FireIntervalFor(1)
	w.State.BonusTimer = 0

	w.Player = component.Player{
		Y:     cfg.Playfield.Height - cfg.Player.BottomOffset,
		W:     cfg.Player.Width,
		H:     cfg.Player.Height,
		Speed: cfg.Player.Speed,
		Lives: w.State.Difficulty.Lives,
	}
	w.Player.CenterOn(cfg.Playfield.Width)

	w.Fleet = component.NewFleet(cfg.FleetLayout())
	w.Bunkers = w.newBunkers()
	w.Bullets = w.Bullets[:0]
	w.Bonus = nil
	w.Explosions = w.Explosions[:0]
	w.FX = component.ScreenFX{}
}

// SelectDifficulty moves the start screen cursor, wrapping in both directions
func (w *World) SelectDifficulty(delta int) {
	w.State.CycleSelection(delta, len(w.Config.Difficulties))
}

// SelectedDifficulty returns the profile under the start screen cursor
func (w *World) SelectedDifficulty() config.Difficulty {
	return w.selectedProfile()
}

func (w *World) selectedProfile() config.Difficulty {
	if w.State.Selected >= 0 && w.State.Selected < len(w.Config.Difficulties) {
		return w.Config.Difficulties[w.State.Selected]
	}
	return config.Difficulty{Name: "default", EnemySpeedMult: 1, BulletSpeedMult: 1, Lives: 1, ScoreMult: 1}
}

func (w *World) newBunkers() []component.Bunker {
	cfg := &w.Config
	y := cfg.Playfield.Height - cfg.Bunker.BottomOffset
	return component.PlaceBunkers(cfg.Bunker.Count, cfg.Playfield.Width, y, cfg.BunkerShape())
}

// AwardPoints scales base points by level and difficulty and adds them to the score
// Returns the awarded amount
func (w *World) AwardPoints(base int) int {
	pts := w.State.ScaledPoints(base)
	w.State.AddScore(pts)
	return pts
}
