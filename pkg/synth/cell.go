package synth

import (
	"math"
	"sync/atomic"
)

// Cell is a scalar parameter cell shared between the control tick and the
// render callback. The control side stores whole values, the render side
// loads whole values; neither side ever read-modify-writes, so no lock is
// needed on the audio path.
type Cell struct {
	bits atomic.Uint64
}

// Store publishes a new value from the control side.
func (c *Cell) Store(v float64) {
	c.bits.Store(math.Float64bits(v))
}

// Load reads the most recently published value on the render side.
func (c *Cell) Load() float64 {
	return math.Float64frombits(c.bits.Load())
}

// Params holds the control→render parameter cells for one generator.
// The control tick writes targets; Render snapshots them once per buffer.
type Params struct {
	freq     Cell
	volume   Cell
	interval Cell
	active   atomic.Bool
	trigger  atomic.Uint64
}

// Safe ranges enforced at the control boundary. Out-of-range writes are
// clamped, never rejected.
const (
	MinFrequency = 20.0
	MaxFrequency = 8000.0
	MinInterval  = 0.02
	MaxInterval  = 2.0
)

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
