package synth

import "math"

// shimmerStep is how long VoiceShimmer holds each of its two pitches.
const shimmerStep = 0.012

// renderBeacon synthesizes the beacon mode: a fixed-length burst at the
// start of each interval, silence until the boundary. The interval itself
// is proximity-driven and arrives through the parameter cells; the burst
// can never outlast the interval that contains it.
func (g *Generator) renderBeacon(dst []float64, freq, vol, interval, gainTarget, kGain float64) {
	burst := g.cfg.BurstLen
	if burst > interval {
		burst = interval
	}

	for i := range dst {
		g.gain += (gainTarget - g.gain) * kGain

		var s float64
		if t := g.burstClock; t < burst {
			s = g.burstSample(t, burst, freq) * burstEnv(t, g.cfg.Attack, g.cfg.Decay)
		}
		dst[i] = s * vol * g.gain

		g.burstClock += g.dt
		if g.burstClock >= interval {
			g.burstClock = 0
		}
	}
}

// burstSample produces one voice sample at t seconds into a burst of the
// given length.
func (g *Generator) burstSample(t, burst, freq float64) float64 {
	switch g.cfg.Voice {
	case VoiceChord:
		g.phase = advance(g.phase, freq, g.dt)
		g.phase2 = advance(g.phase2, freq*g.cfg.ChordRatio, g.dt)
		return sine(g.phase)*0.62 + sine(g.phase2)*0.42

	case VoiceFM:
		// Modulation depth decays across the burst: bell-like attack
		// settling into a pure tail.
		idx := g.cfg.FMIndex * (1 - t/burst)
		g.phase = advance(g.phase, freq, g.dt)
		g.phase2 = advance(g.phase2, freq*g.cfg.FMRatio, g.dt)
		return math.Sin(2*math.Pi*g.phase + idx*math.Sin(2*math.Pi*g.phase2))

	case VoiceSweep:
		inst := freq * (1 - 0.45*(t/burst))
		g.phase = advance(g.phase, inst, g.dt)
		return sine(g.phase)*0.78 + math.Sin(4*math.Pi*g.phase)*0.30

	case VoiceShimmer:
		f := freq
		if int(t/shimmerStep)%2 == 1 {
			f = freq * 1.335
		}
		g.phase = advance(g.phase, f, g.dt)
		return sine(g.phase)

	case VoiceMetal:
		ratio := g.cfg.ChordRatio
		if ratio < 2 {
			ratio = 2.756 // inharmonic partial, not an overtone
		}
		g.phase = advance(g.phase, freq, g.dt)
		g.phase2 = advance(g.phase2, freq*ratio, g.dt)
		return sine(g.phase)*0.58 + sine(g.phase2)*0.46

	default: // VoiceSine
		g.phase = advance(g.phase, freq, g.dt)
		return sine(g.phase)
	}
}
