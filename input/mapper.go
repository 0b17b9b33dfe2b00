// Package input translates terminal key events into engine intents
package input

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-invaders/engine"
	"github.com/lixenwraith/vi-invaders/parameter"
)

// Mapper turns key presses into engine intents
// Terminals report presses and auto-repeats but no releases, so held movement
// is a latch that expires unless refreshed by a repeat
type Mapper struct {
	table *KeyTable

	initialHold time.Duration
	repeatHold  time.Duration
	tapGap      time.Duration

	left  holdLatch
	right holdLatch
}

// holdLatch tracks one movement direction
type holdLatch struct {
	until     time.Time // Held while now is before until
	pressedAt time.Time // Last press counted as fresh
	repeating bool      // Auto-repeat has started since pressedAt
}

// press refreshes the latch and reports whether the event is a fresh press
func (l *holdLatch) press(now time.Time, initialHold, repeatHold, tapGap time.Duration) bool {
	fresh := !now.Before(l.until) || (!l.repeating && now.Sub(l.pressedAt) < tapGap)
	if fresh {
		l.pressedAt = now
		l.repeating = false
		l.until = now.Add(initialHold)
		return true
	}
	l.repeating = true
	l.until = now.Add(repeatHold)
	return false
}

func (l *holdLatch) held(now time.Time) bool { return now.Before(l.until) }
func (l *holdLatch) release()                { *l = holdLatch{} }

func NewMapper(table *KeyTable) *Mapper {
	if table == nil {
		table = DefaultKeyTable()
	}
	return &Mapper{
		table:       table,
		initialHold: parameter.KeyInitialHoldWindow,
		repeatHold:  parameter.KeyHoldWindow,
		tapGap:      parameter.KeyRepeatDelayFloor,
	}
}

// HandleKey latches the key's intent into state and returns the action
// Host actions (pause, quit) are returned without touching state
func (m *Mapper) HandleKey(ev *tcell.EventKey, now time.Time, state *engine.InputState) Action {
	a := m.table.Lookup(ev)
	switch a {
	case ActionLeft:
		if m.left.press(now, m.initialHold, m.repeatHold, m.tapGap) {
			state.Press(engine.IntentCycleLeft)
		}
		m.right.release()

	case ActionRight:
		if m.right.press(now, m.initialHold, m.repeatHold, m.tapGap) {
			state.Press(engine.IntentCycleRight)
		}
		m.left.release()

	case ActionFire:
		state.Press(engine.IntentFire)

	case ActionConfirm:
		state.Press(engine.IntentConfirm)
	}

	m.Apply(now, state)
	return a
}

// Apply publishes the held movement as of now; call once per frame before ticking
func (m *Mapper) Apply(now time.Time, state *engine.InputState) {
	state.SetMove(m.left.held(now), m.right.held(now))
}

// Release drops any held movement
func (m *Mapper) Release(state *engine.InputState) {
	m.left.release()
	m.right.release()
	state.SetMove(false, false)
}
