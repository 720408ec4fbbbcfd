package synth

import "math"

// Tone smoothing time constants. Frequency moves slower than volume so a
// target jump glides rather than chirps; volume follows quickly enough to
// track proximity changes between control ticks.
const (
	toneFreqTau = 0.12
	toneVolTau  = 0.03

	tremoloRate  = 6.0  // Hz, fixed; marks the tone as "alive" vs a test tone
	tremoloDepth = 0.18
)

// renderTone synthesizes the continuous-tone mode: a triangle carrier with
// low-rate tremolo, exponentially converging on the target parameters.
// Convergence is monotone by construction — a one-pole filter cannot
// overshoot.
func (g *Generator) renderTone(dst []float64, freq, vol, gainTarget, kGain float64) {
	kFreq := smoothCoeff(toneFreqTau, g.dt)
	kVol := smoothCoeff(toneVolTau, g.dt)

	if g.curFreq == 0 {
		// First audible sample after reset: start at the target rather
		// than sweeping up from nothing.
		g.curFreq = freq
	}

	for i := range dst {
		g.curFreq += (freq - g.curFreq) * kFreq
		g.curVol += (vol - g.curVol) * kVol
		g.gain += (gainTarget - g.gain) * kGain

		g.phase = advance(g.phase, g.curFreq, g.dt)
		g.lfoPhase = advance(g.lfoPhase, tremoloRate, g.dt)

		trem := 1 - tremoloDepth + tremoloDepth*0.5*(1+math.Sin(2*math.Pi*g.lfoPhase))
		dst[i] = triWave(g.phase) * trem * g.curVol * g.gain
	}
}
