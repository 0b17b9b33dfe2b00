package vmath

import "testing"

func TestIntersects(t *testing.T) {
	base := Rect{X: 10, Y: 10, W: 20, H: 10}

	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"identical", base, true},
		{"inside", Rect{X: 15, Y: 12, W: 2, H: 2}, true},
		{"partial overlap", Rect{X: 25, Y: 15, W: 20, H: 20}, true},
		{"touching right edge", Rect{X: 30, Y: 10, W: 5, H: 5}, false},
		{"touching bottom edge", Rect{X: 10, Y: 20, W: 5, H: 5}, false},
		{"touching left edge", Rect{X: 0, Y: 10, W: 10, H: 5}, false},
		{"disjoint", Rect{X: 100, Y: 100, W: 5, H: 5}, false},
		{"zero width inside", Rect{X: 15, Y: 12, W: 0, H: 2}, true},
		{"zero width on right edge", Rect{X: 30, Y: 12, W: 0, H: 2}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Intersects(base, tt.other); got != tt.want {
				t.Errorf("Intersects(%v, %v) = %v, want %v", base, tt.other, got, tt.want)
			}
			if got := Intersects(tt.other, base); got != tt.want {
				t.Errorf("Intersects is not symmetric for %v", tt.other)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(-5, 0, 10); got != 0 {
		t.Errorf("Clamp(-5) = %v, want 0", got)
	}
	if got := Clamp(15, 0, 10); got != 10 {
		t.Errorf("Clamp(15) = %v, want 10", got)
	}
	if got := Clamp(4.5, 0, 10); got != 4.5 {
		t.Errorf("Clamp(4.5) = %v, want 4.5", got)
	}
	if got := ClampInt(7, 0, 3); got != 3 {
		t.Errorf("ClampInt(7) = %v, want 3", got)
	}
}

func TestFastRandDeterministic(t *testing.T) {
	a := NewFastRand(42)
	b := NewFastRand(42)
	for i := 0; i < 1000; i++ {
		if a.Next() != b.Next() {
			t.Fatalf("sequences diverged at step %d", i)
		}
	}

	zero := NewFastRand(0)
	if zero.State() == 0 {
		t.Fatal("zero seed must be replaced, xorshift would stay at zero")
	}
}

func TestFastRandRanges(t *testing.T) {
	r := NewFastRand(7)
	for i := 0; i < 10000; i++ {
		f := r.Float64()
		if f < 0 || f >= 1 {
			t.Fatalf("Float64 out of range: %v", f)
		}
		n := r.Intn(5)
		if n < 0 || n >= 5 {
			t.Fatalf("Intn out of range: %v", n)
		}
		v := r.Range(50, 150)
		if v < 50 || v >= 150 {
			t.Fatalf("Range out of range: %v", v)
		}
	}
	if r.Intn(0) != 0 {
		t.Error("Intn(0) should return 0")
	}
}

func TestFastRandChanceExtremes(t *testing.T) {
	r := NewFastRand(99)
	for i := 0; i < 100; i++ {
		if r.Chance(0) {
			t.Fatal("Chance(0) returned true")
		}
		if !r.Chance(1) {
			t.Fatal("Chance(1) returned false")
		}
	}
}
