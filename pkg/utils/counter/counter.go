// The package counter defines a minimalistic Float counter
package counter

import (
	"math"
	"sync/atomic"
)

// Float is a floating point counter that is safe for concurrent use.
// The value is stored as the IEEE 754 bits of a float64 and updated with
// compare-and-swap.
type Float struct {
	bits atomic.Uint64
}

// NewFloatCounter() returns a new Float counter with value 0.
func NewFloatCounter() *Float {
	return &Float{}
}

// Add() increases the counter by delta and returns the new value.
func (c *Float) Add(delta float64) float64 {
	if c == nil {
		return 0
	}

	for {
		old := c.bits.Load()
		val := math.Float64frombits(old) + delta
		if c.bits.CompareAndSwap(old, math.Float64bits(val)) {
			return val
		}
	}
}

// Load() returns the current value.
func (c *Float) Load() float64 {
	if c == nil {
		return 0
	}
	return math.Float64frombits(c.bits.Load())
}

// Store() overwrites the current value to val.
func (c *Float) Store(val float64) {
	if c == nil {
		return
	}
	c.bits.Store(math.Float64bits(val))
}
