package status

import (
	"math"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
)

func TestMetricMapCachesPointer(t *testing.T) {
	m := NewMetricMap[atomic.Int64]()
	a := m.Get(KeyShotsFired)
	a.Add(3)
	b := m.Get(KeyShotsFired)
	if a != b {
		t.Fatal("Get returned a different pointer for the same key")
	}
	if b.Load() != 3 {
		t.Errorf("value = %d, want 3", b.Load())
	}
	if _, ok := m.Lookup("missing"); ok {
		t.Error("Lookup created a metric")
	}
	if m.Count() != 1 {
		t.Errorf("Count = %d, want 1", m.Count())
	}
}

func TestMetricMapConcurrentGet(t *testing.T) {
	m := NewMetricMap[atomic.Int64]()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				m.Get(KeyTicks).Add(1)
			}
		}()
	}
	wg.Wait()
	if got := m.Get(KeyTicks).Load(); got != 800 {
		t.Errorf("ticks = %d, want 800", got)
	}
}

func TestAtomicFloat(t *testing.T) {
	var f AtomicFloat
	if f.Load() != 0 {
		t.Error("zero value not 0")
	}
	f.Store(1.5)
	if f.StoreMax(1.25) || f.Load() != 1.5 {
		t.Errorf("StoreMax lowered gauge to %v", f.Load())
	}
	if !f.StoreMax(4) || f.Load() != 4 {
		t.Errorf("StoreMax = %v, want 4", f.Load())
	}
	if f.StoreMax(math.NaN()) {
		t.Error("NaN replaced the peak")
	}

	var wg sync.WaitGroup
	for i := 1; i <= 64; i++ {
		wg.Add(1)
		go func(v float64) {
			defer wg.Done()
			f.StoreMax(v)
		}(float64(i) * 10)
	}
	wg.Wait()
	if f.Load() != 640 {
		t.Errorf("concurrent peak = %v, want 640", f.Load())
	}
}

func TestAtomicStringTruncates(t *testing.T) {
	var s AtomicString
	if s.Load() != "" {
		t.Error("zero value not empty")
	}
	s.Store(strings.Repeat("x", MaxStringLen+5))
	if len(s.Load()) != MaxStringLen {
		t.Errorf("len = %d, want %d", len(s.Load()), MaxStringLen)
	}
}

func TestRegistryFields(t *testing.T) {
	r := NewRegistry()
	r.Ints.Get(KeyEnemiesKilled).Store(7)
	r.Floats.Get(KeyFPS).Store(60)
	r.Strings.Get(KeyPhase).Store("playing")
	r.Bools.Get(KeyPaused).Store(true)

	fields := r.Fields()
	if len(fields) != 4 || r.TotalCount() != 4 {
		t.Fatalf("fields = %v", fields)
	}
	if fields[KeyEnemiesKilled] != int64(7) {
		t.Errorf("kills = %v", fields[KeyEnemiesKilled])
	}
	if fields[KeyPhase] != "playing" {
		t.Errorf("phase = %v", fields[KeyPhase])
	}
	if fields[KeyPaused] != true {
		t.Errorf("paused = %v", fields[KeyPaused])
	}
	t.Logf("✓ Registry exports %d fields", len(fields))
}
