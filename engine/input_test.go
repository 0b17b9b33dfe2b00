package engine

import "testing"

func TestInputStateLatchesEdges(t *testing.T) {
	s := NewInputState()
	s.Press(IntentFire)
	s.Press(IntentFire)
	s.Press(IntentCycleRight)
	s.SetMove(true, false)

	in := s.Consume()
	if !in.Fire || !in.CycleRight || !in.MoveLeft {
		t.Fatalf("latched intents lost: %+v", in)
	}
	if in.Confirm || in.CycleLeft || in.MoveRight {
		t.Errorf("unexpected intents: %+v", in)
	}

	next := s.Consume()
	if next.Fire || next.CycleRight {
		t.Errorf("edges not cleared: %+v", next)
	}
	if !next.MoveLeft {
		t.Error("held movement cleared by consume")
	}
	t.Logf("✓ Edges cleared after one consume, held movement retained")

	s.SetMove(false, false)
	if s.Consume().MoveLeft {
		t.Error("release not applied")
	}
}

func TestIntentsMove(t *testing.T) {
	tests := []struct {
		in   Intents
		want float64
	}{
		{Intents{}, 0},
		{Intents{MoveLeft: true}, -1},
		{Intents{MoveRight: true}, 1},
		{Intents{MoveLeft: true, MoveRight: true}, 0},
	}
	for _, tt := range tests {
		if got := tt.in.Move(); got != tt.want {
			t.Errorf("%+v.Move() = %v, want %v", tt.in, got, tt.want)
		}
	}
}
