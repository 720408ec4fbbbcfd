package synth

import "math"

// triWave returns a triangle wave for a phase in [0,1).
func triWave(phase float64) float64 {
	return (2.0 / math.Pi) * math.Asin(math.Sin(2*math.Pi*phase))
}

// softSquareWave returns a rounded square wave for a phase in [0,1).
// The tanh shaping keeps the edges from aliasing harshly.
func softSquareWave(phase float64) float64 {
	return math.Tanh(math.Sin(2*math.Pi*phase) * 3.4)
}

func sine(phase float64) float64 {
	return math.Sin(2 * math.Pi * phase)
}

// softSat applies gentle tanh-like saturation — no harsh clipping.
func softSat(x float64) float64 {
	if x > 1.0 {
		return 1.0 - 0.5/x
	}
	if x < -1.0 {
		return -1.0 + 0.5/(-x)
	}
	return x - x*x*x/3.0
}

// burstEnv is a linear attack followed by exponential decay. t is seconds
// since burst onset, attack is the attack length in seconds, decay the
// exponential rate constant (1/s).
func burstEnv(t, attack, decay float64) float64 {
	if t < attack {
		return t / attack
	}
	return math.Exp(-(t - attack) * decay)
}

// smoothCoeff converts a time constant tau (seconds) into a per-sample
// one-pole smoothing coefficient at rate dt.
func smoothCoeff(tau, dt float64) float64 {
	if tau <= 0 {
		return 1
	}
	return 1 - math.Exp(-dt/tau)
}

// advance steps a phase accumulator by freq*dt and wraps it into [0,1).
func advance(phase, freq, dt float64) float64 {
	phase += freq * dt
	if phase >= 1 {
		phase -= math.Floor(phase)
	}
	return phase
}
