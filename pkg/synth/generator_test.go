package synth

import (
	"math"
	"testing"
)

const testRate = 44100

func renderSeconds(g *Generator, sec float64) []float64 {
	n := int(sec * testRate)
	buf := make([]float64, 512)
	out := make([]float64, 0, n)
	for len(out) < n {
		g.Render(buf)
		out = append(out, buf...)
	}
	return out[:n]
}

func TestInactiveRendersExactZeros(t *testing.T) {
	for _, mode := range []Mode{ModeTone, ModeBeacon, ModeAlarm} {
		g := NewGenerator(Config{Mode: mode, SampleRate: testRate})
		buf := make([]float64, 256)
		for i := range buf {
			buf[i] = 1 // stale garbage the renderer must overwrite
		}
		g.Render(buf)
		for i, s := range buf {
			if s != 0 {
				t.Fatalf("mode %v: sample %d = %v, want exact zero", mode, i, s)
			}
		}
	}
}

func TestDeactivateFadesToExactZero(t *testing.T) {
	g := NewGenerator(Config{Mode: ModeTone, SampleRate: testRate})
	g.SetFrequency(440)
	g.SetVolume(0.8)
	g.SetActive(true)
	renderSeconds(g, 0.1)

	g.SetActive(false)
	renderSeconds(g, 0.1) // several gain time constants

	buf := make([]float64, 256)
	g.Render(buf)
	for i, s := range buf {
		if s != 0 {
			t.Fatalf("sample %d = %v after fade-out, want exact zero", i, s)
		}
	}
}

func TestActiveTogglePreservesPhase(t *testing.T) {
	g := NewGenerator(Config{Mode: ModeTone, SampleRate: testRate})
	g.SetFrequency(440)
	g.SetVolume(0.8)
	g.SetActive(true)
	renderSeconds(g, 0.05)

	g.SetActive(false)
	renderSeconds(g, 0.1)
	off := g.phase

	g.SetActive(true)
	buf := make([]float64, 1)
	g.Render(buf)
	want := advance(off, g.curFreq, g.dt)
	if math.Abs(g.phase-want) > 1e-9 {
		t.Fatalf("phase jumped across re-activation: %v, want %v", g.phase, want)
	}
}

func TestTonePhaseStaysNormalized(t *testing.T) {
	for _, mode := range []Mode{ModeTone, ModeBeacon, ModeAlarm} {
		g := NewGenerator(Config{Mode: mode, SampleRate: testRate})
		g.SetFrequency(7900)
		g.SetVolume(1)
		g.SetActive(true)
		renderSeconds(g, 0.5)
		if g.phase < 0 || g.phase >= 1 {
			t.Errorf("mode %v: phase = %v, want [0,1)", mode, g.phase)
		}
		if g.lfoPhase < 0 || g.lfoPhase >= 1 {
			t.Errorf("mode %v: lfoPhase = %v, want [0,1)", mode, g.lfoPhase)
		}
	}
}

func TestToneFrequencyConvergesWithoutOvershoot(t *testing.T) {
	g := NewGenerator(Config{Mode: ModeTone, SampleRate: testRate})
	g.SetFrequency(500)
	g.SetVolume(0.5)
	g.SetActive(true)
	renderSeconds(g, 1.0) // settle at 500

	g.SetFrequency(1000)
	prev := g.curFreq
	buf := make([]float64, 64)
	for i := 0; i < 1000; i++ {
		g.Render(buf)
		if g.curFreq < prev-1e-9 {
			t.Fatalf("frequency moved backwards: %v -> %v", prev, g.curFreq)
		}
		if g.curFreq > 1000+1e-9 {
			t.Fatalf("frequency overshot target: %v", g.curFreq)
		}
		prev = g.curFreq
	}
	if math.Abs(g.curFreq-1000) > 1 {
		t.Fatalf("frequency did not converge: %v", g.curFreq)
	}
}

func TestBeaconBurstThenSilence(t *testing.T) {
	g := NewGenerator(Config{
		Mode: ModeBeacon, Voice: VoiceSine,
		SampleRate: testRate, BurstLen: 0.05,
	})
	g.SetFrequency(600)
	g.SetVolume(0.8)
	g.SetInterval(0.25)
	g.SetActive(true)
	renderSeconds(g, 0.02) // let the gain ramp open

	out := renderSeconds(g, 0.5)
	var loud, quiet int
	for _, s := range out {
		if math.Abs(s) > 0.05 {
			loud++
		} else {
			quiet++
		}
	}
	if loud == 0 {
		t.Fatal("no audible burst samples")
	}
	if quiet < loud {
		t.Fatalf("expected mostly silence between bursts: loud=%d quiet=%d", loud, quiet)
	}
}

func TestBeaconBurstClampedToInterval(t *testing.T) {
	g := NewGenerator(Config{
		Mode: ModeBeacon, Voice: VoiceSine,
		SampleRate: testRate, BurstLen: 0.5,
	})
	g.SetFrequency(600)
	g.SetVolume(0.8)
	g.SetInterval(0.05) // shorter than the burst
	g.SetActive(true)
	renderSeconds(g, 0.3)
	if g.burstClock >= 0.05 {
		t.Fatalf("burst clock %v escaped the interval", g.burstClock)
	}
}

func TestTriggerRestartsBurst(t *testing.T) {
	g := NewGenerator(Config{
		Mode: ModeBeacon, Voice: VoiceSine,
		SampleRate: testRate, BurstLen: 0.05,
	})
	g.SetFrequency(600)
	g.SetVolume(0.8)
	g.SetInterval(1.0)
	g.SetActive(true)
	renderSeconds(g, 0.4) // well past the burst, into silence

	g.Trigger()
	buf := make([]float64, 1)
	g.Render(buf)
	if g.burstClock > 2*g.dt {
		t.Fatalf("burst clock = %v after trigger, want restart", g.burstClock)
	}
}

func TestBeaconVoicesProduceSignal(t *testing.T) {
	voices := []Voice{VoiceSine, VoiceChord, VoiceFM, VoiceSweep, VoiceShimmer, VoiceMetal}
	for _, v := range voices {
		g := NewGenerator(Config{
			Mode: ModeBeacon, Voice: v,
			SampleRate: testRate, BurstLen: 0.06,
		})
		g.SetFrequency(500)
		g.SetVolume(0.8)
		g.SetInterval(0.2)
		g.SetActive(true)
		out := renderSeconds(g, 0.3)
		var peak float64
		for _, s := range out {
			if a := math.Abs(s); a > peak {
				peak = a
			}
		}
		if peak < 0.1 {
			t.Errorf("voice %v: peak %v, want audible output", v, peak)
		}
		if peak > 1.5 {
			t.Errorf("voice %v: peak %v, implausibly hot", v, peak)
		}
	}
}

func TestAlarmCycleWraps(t *testing.T) {
	g := NewGenerator(Config{
		Mode: ModeAlarm, SampleRate: testRate,
		AlarmDur: 0.2, PeakRatio: 1.8,
	})
	g.SetFrequency(400)
	g.SetVolume(0.8)
	g.SetActive(true)
	renderSeconds(g, 0.5)
	if g.alarmClock < 0 || g.alarmClock >= 0.2 {
		t.Fatalf("alarm clock = %v, want [0,0.2)", g.alarmClock)
	}
}

func TestSettersClampToSafeRanges(t *testing.T) {
	g := NewGenerator(Config{Mode: ModeTone, SampleRate: testRate})

	g.SetFrequency(1e6)
	if got := g.params.freq.Load(); got != MaxFrequency {
		t.Errorf("freq = %v, want %v", got, MaxFrequency)
	}
	g.SetFrequency(-10)
	if got := g.params.freq.Load(); got != MinFrequency {
		t.Errorf("freq = %v, want %v", got, MinFrequency)
	}
	g.SetVolume(3)
	if got := g.params.volume.Load(); got != 1 {
		t.Errorf("volume = %v, want 1", got)
	}
	g.SetInterval(100)
	if got := g.params.interval.Load(); got != MaxInterval {
		t.Errorf("interval = %v, want %v", got, MaxInterval)
	}
	g.SetInterval(0)
	if got := g.params.interval.Load(); got != MinInterval {
		t.Errorf("interval = %v, want %v", got, MinInterval)
	}
}

func TestResetSilencesAndZeroesState(t *testing.T) {
	g := NewGenerator(Config{Mode: ModeTone, SampleRate: testRate})
	g.SetFrequency(440)
	g.SetVolume(0.8)
	g.SetActive(true)
	renderSeconds(g, 0.1)

	g.Reset()
	if g.Active() {
		t.Fatal("still active after reset")
	}
	if g.phase != 0 || g.gain != 0 || g.curFreq != 0 {
		t.Fatalf("state not zeroed: phase=%v gain=%v curFreq=%v", g.phase, g.gain, g.curFreq)
	}
	buf := make([]float64, 128)
	g.Render(buf)
	for i, s := range buf {
		if s != 0 {
			t.Fatalf("sample %d = %v after reset, want zero", i, s)
		}
	}
}
