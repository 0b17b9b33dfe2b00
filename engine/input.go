package engine

import "sync"

// Intents is the normalized per-tick input snapshot
// MoveLeft/MoveRight are held; the rest are edges, true for exactly one tick per press
type Intents struct {
	MoveLeft   bool `msgpack:"l,omitempty"`
	MoveRight  bool `msgpack:"r,omitempty"`
	Fire       bool `msgpack:"f,omitempty"`
	Confirm    bool `msgpack:"c,omitempty"`
	CycleLeft  bool `msgpack:"cl,omitempty"`
	CycleRight bool `msgpack:"cr,omitempty"`
}

// Move returns the signed horizontal direction, opposing keys cancel
func (in Intents) Move() float64 {
	d := 0.0
	if in.MoveLeft {
		d--
	}
	if in.MoveRight {
		d++
	}
	return d
}

// Intent names one edge-triggered action
type Intent uint8

const (
	IntentFire Intent = iota
	IntentConfirm
	IntentCycleLeft
	IntentCycleRight
)

// InputState latches edge intents between ticks
// Host goroutines write; the frame driver consumes once per tick
type InputState struct {
	mu      sync.Mutex
	pending Intents
}

func NewInputState() *InputState {
	return &InputState{}
}

// SetMove updates the held movement state
func (s *InputState) SetMove(left, right bool) {
	s.mu.Lock()
	s.pending.MoveLeft = left
	s.pending.MoveRight = right
	s.mu.Unlock()
}

// Press latches an edge intent until the next Consume
func (s *InputState) Press(i Intent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch i {
	case IntentFire:
		s.pending.Fire = true
	case IntentConfirm:
		s.pending.Confirm = true
	case IntentCycleLeft:
		s.pending.CycleLeft = true
	case IntentCycleRight:
		s.pending.CycleRight = true
	}
}

// Consume returns the current snapshot and clears edge intents
// Held movement survives until changed by SetMove
func (s *InputState) Consume() Intents {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.pending
	s.pending = Intents{MoveLeft: out.MoveLeft, MoveRight: out.MoveRight}
	return out
}
