package synth

import "math"

// Alarm LFO rate ramp. The modulation speeding up alongside the pitch is
// most of what makes the cue read as urgency.
const (
	alarmLFOBase = 4.0  // Hz at cycle start
	alarmLFOPeak = 12.0 // Hz at cycle end

	alarmFadeFrac = 0.15 // linear fade over the final portion of the cycle
)

// renderAlarm synthesizes the rising-alarm mode: carrier frequency and an
// independent low-frequency alarm oscillator both ramp linearly from base
// to peak over the cycle; the alarm amplitude-modulates the carrier. The
// cycle repeats while the generator stays active.
func (g *Generator) renderAlarm(dst []float64, freq, vol, gainTarget, kGain float64) {
	dur := g.cfg.AlarmDur

	for i := range dst {
		g.gain += (gainTarget - g.gain) * kGain

		u := g.alarmClock / dur // cycle progress [0,1)
		carrierFreq := freq * (1 + (g.cfg.PeakRatio-1)*u)
		lfoRate := alarmLFOBase + (alarmLFOPeak-alarmLFOBase)*u

		g.phase = advance(g.phase, carrierFreq, g.dt)
		g.lfoPhase = advance(g.lfoPhase, lfoRate, g.dt)

		var carrier float64
		if g.cfg.Warble {
			// Gentle warble: two slightly detuned sines.
			g.phase2 = advance(g.phase2, carrierFreq*1.02, g.dt)
			carrier = sine(g.phase)*0.62 + sine(g.phase2)*0.38
		} else {
			// Siren: sine body with a square edge.
			carrier = sine(g.phase)*0.68 + softSquareWave(g.phase)*0.32
		}

		am := 0.55 + 0.45*math.Sin(2*math.Pi*g.lfoPhase)

		fade := 1.0
		if u > 1-alarmFadeFrac {
			fade = (1 - u) / alarmFadeFrac
		}

		dst[i] = carrier * am * fade * vol * g.gain

		g.alarmClock += g.dt
		if g.alarmClock >= dur {
			g.alarmClock = 0
		}
	}
}
