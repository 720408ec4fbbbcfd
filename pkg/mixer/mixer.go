// Package mixer sums independently rendered mono sources into one
// interleaved stereo stream, placing each source in the field with an
// equal-power pan law.
package mixer

import (
	"math"

	"github.com/quillon/waymark/pkg/synth"
)

// Source is anything that can fill a mono buffer on demand. Sources must
// never block and must write every element of dst.
type Source interface {
	Render(dst []float64)
}

// Channel is one mixer strip: a source plus pan and gain cells written by
// the control tick.
type Channel struct {
	src  Source
	pan  synth.Cell // [-1,1]
	gain synth.Cell // [0,1]
}

// NewChannel creates a strip for src, centered at unity gain.
func NewChannel(src Source) *Channel {
	c := &Channel{src: src}
	c.gain.Store(1)
	return c
}

// SetPan publishes a new pan position, -1 hard left to +1 hard right.
func (c *Channel) SetPan(p float64) {
	if p < -1 {
		p = -1
	} else if p > 1 {
		p = 1
	}
	c.pan.Store(p)
}

// SetGain publishes a new channel gain in [0,1].
func (c *Channel) SetGain(g float64) {
	if g < 0 {
		g = 0
	} else if g > 1 {
		g = 1
	}
	c.gain.Store(g)
}

// panGains maps a pan position to (left, right) gains with an equal-power
// law: center plays both channels at cos(π/4) so total energy is constant
// across the field, ±1 is a hard side.
func panGains(pan float64) (left, right float64) {
	a := (pan + 1) * math.Pi / 4
	return math.Cos(a), math.Sin(a)
}

// Mixer owns a fixed set of channels. The set never changes after
// construction; categories that fall silent simply render zeros.
type Mixer struct {
	channels []*Channel
	scratch  []float64
}

// New creates a mixer over the given channels with a scratch buffer sized
// for maxFrames frames per render call.
func New(channels []*Channel, maxFrames int) *Mixer {
	return &Mixer{
		channels: channels,
		scratch:  make([]float64, maxFrames),
	}
}

// RenderStereo fills dst with interleaved L/R samples by summing every
// channel. Plain summation: channels are unaffected by their neighbors,
// and the bus is soft-saturated rather than clipped. Allocation-free.
func (m *Mixer) RenderStereo(dst []float64) {
	frames := len(dst) / 2
	for i := range dst {
		dst[i] = 0
	}
	if frames > len(m.scratch) {
		frames = len(m.scratch)
	}

	mono := m.scratch[:frames]
	for _, ch := range m.channels {
		ch.src.Render(mono)
		l, r := panGains(ch.pan.Load())
		g := ch.gain.Load()
		for i := 0; i < frames; i++ {
			s := mono[i] * g
			dst[2*i] += s * l
			dst[2*i+1] += s * r
		}
	}

	for i := 0; i < frames*2; i++ {
		dst[i] = softSat(dst[i])
	}
}

// softSat applies gentle tanh-like saturation at the bus — overlapping
// cues push into compression instead of wrapping.
func softSat(x float64) float64 {
	if x > 1.0 {
		return 1.0 - 0.5/x
	}
	if x < -1.0 {
		return -1.0 + 0.5/(-x)
	}
	return x - x*x*x/3.0
}
