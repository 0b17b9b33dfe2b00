package status

import (
	"math"
	"sync/atomic"
)

// AtomicFloat is a float64 gauge stored as raw bits; zero value reads 0
type AtomicFloat struct {
	bits atomic.Uint64
}

func (f *AtomicFloat) Store(v float64) { f.bits.Store(math.Float64bits(v)) }
func (f *AtomicFloat) Load() float64   { return math.Float64frombits(f.bits.Load()) }

// StoreMax raises the gauge to v if v is larger, reporting whether it did
// NaN never wins
func (f *AtomicFloat) StoreMax(v float64) bool {
	for {
		old := f.bits.Load()
		if !(v > math.Float64frombits(old)) {
			return false
		}
		if f.bits.CompareAndSwap(old, math.Float64bits(v)) {
			return true
		}
	}
}
