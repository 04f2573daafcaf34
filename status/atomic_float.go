package status

import (
	"math"
	"sync/atomic"
)

// AtomicFloat is a float64 gauge safe for one writer and many readers
type AtomicFloat struct {
	bits atomic.Uint64
}

// Set replaces the reading
func (f *AtomicFloat) Set(val float64) {
	f.bits.Store(math.Float64bits(val))
}

// Get returns the current reading; the zero value reads 0
func (f *AtomicFloat) Get() float64 {
	return math.Float64frombits(f.bits.Load())
}

// SetMax raises the reading to val and reports whether it grew
// NaN never wins
func (f *AtomicFloat) SetMax(val float64) bool {
	for {
		old := f.bits.Load()
		if !(val > math.Float64frombits(old)) {
			return false
		}
		if f.bits.CompareAndSwap(old, math.Float64bits(val)) {
			return true
		}
	}
}
