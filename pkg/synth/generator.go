// Package synth implements the procedural generators behind every waymark
// cue. Each generator owns its oscillator state, speaks a pull-based render
// contract, and receives its parameters through lock-free cells so the
// control tick can never stall the audio callback.
package synth

// Mode selects the synthesis algorithm bound to a generator at
// construction. It is never re-selected per call.
type Mode int

const (
	// ModeTone is a continuous triangle carrier with tremolo, smoothly
	// tracking its target frequency and volume.
	ModeTone Mode = iota
	// ModeBeacon is a repeating short burst whose cadence encodes
	// distance.
	ModeBeacon
	// ModeAlarm is a rising sweep with a ramping amplitude-modulation
	// oscillator, used for hazards and attack telegraphs.
	ModeAlarm
)

// Voice selects the beacon burst timbre.
type Voice int

const (
	VoiceSine    Voice = iota // plain sine blip
	VoiceChord                // two oscillators at a fixed ratio
	VoiceFM                   // FM with time-decaying modulation depth
	VoiceSweep                // descending sweep with second-harmonic blend
	VoiceShimmer              // rapid alternation between two pitches
	VoiceMetal                // inharmonic partial pair
)

// Config fixes a generator's synthesis behavior at construction time.
type Config struct {
	Name       string  // category label, used only for logging
	Mode       Mode
	Voice      Voice   // beacon mode only
	SampleRate int

	// Beacon shape.
	BurstLen float64 // seconds of "on" per interval
	Attack   float64 // linear attack, seconds
	Decay    float64 // exponential decay rate, 1/s

	// Voice tuning.
	ChordRatio float64 // VoiceChord/VoiceMetal second-partial ratio
	FMRatio    float64 // VoiceFM modulator/carrier ratio
	FMIndex    float64 // VoiceFM peak modulation index

	// Alarm shape.
	AlarmDur  float64 // seconds per rise cycle
	PeakRatio float64 // carrier peak frequency as a multiple of base
	Warble    bool    // two-sine warble instead of sine+square siren
}

func (c Config) withDefaults() Config {
	if c.SampleRate <= 0 {
		c.SampleRate = 44100
	}
	if c.BurstLen <= 0 {
		c.BurstLen = 0.06
	}
	if c.Attack <= 0 {
		c.Attack = 0.004
	}
	if c.Decay <= 0 {
		c.Decay = 30
	}
	if c.ChordRatio <= 0 {
		c.ChordRatio = 1.5
	}
	if c.FMRatio <= 0 {
		c.FMRatio = 2.0
	}
	if c.FMIndex <= 0 {
		c.FMIndex = 3.0
	}
	if c.AlarmDur <= 0 {
		c.AlarmDur = 1.2
	}
	if c.PeakRatio <= 1 {
		c.PeakRatio = 1.8
	}
	return c
}

// Generator synthesizes one category's cue. It is created once at subsystem
// init and lives for the process lifetime; Reset is used on scene
// transitions. All exported setters are control-side; Render is the only
// render-side entry point.
type Generator struct {
	cfg    Config
	dt     float64
	params Params

	// Render-side state. Never touched by the control tick.
	phase       float64 // primary oscillator, [0,1)
	phase2      float64 // secondary oscillator, [0,1)
	lfoPhase    float64 // tremolo / alarm LFO, [0,1)
	curFreq     float64 // smoothed frequency (tone mode)
	curVol      float64 // smoothed volume (tone mode)
	gain        float64 // activity fade, avoids steps on toggle
	burstClock  float64 // seconds into the current beacon interval
	alarmClock  float64 // seconds into the current alarm cycle
	lastTrigger uint64
}

// NewGenerator constructs a generator with its synthesis mode bound for
// life.
func NewGenerator(cfg Config) *Generator {
	cfg = cfg.withDefaults()
	g := &Generator{
		cfg: cfg,
		dt:  1.0 / float64(cfg.SampleRate),
	}
	g.params.freq.Store(MinFrequency)
	g.params.interval.Store(MaxInterval)
	return g
}

// Name returns the category label the generator was built for.
func (g *Generator) Name() string { return g.cfg.Name }

// SetFrequency publishes a new target frequency in Hz, clamped to the safe
// range.
func (g *Generator) SetFrequency(hz float64) {
	g.params.freq.Store(clamp(hz, MinFrequency, MaxFrequency))
}

// SetVolume publishes a new target volume in [0,1].
func (g *Generator) SetVolume(v float64) {
	g.params.volume.Store(clamp(v, 0, 1))
}

// SetInterval publishes a new beacon interval in seconds, clamped to the
// safe range.
func (g *Generator) SetInterval(sec float64) {
	g.params.interval.Store(clamp(sec, MinInterval, MaxInterval))
}

// SetActive switches the generator's audibility. Oscillator phase is
// preserved across toggles; only a short gain ramp is applied.
func (g *Generator) SetActive(on bool) {
	g.params.active.Store(on)
}

// Active reports the control-side active flag.
func (g *Generator) Active() bool {
	return g.params.active.Load()
}

// Trigger restarts the current burst or alarm cycle at the next render.
// Used for one-shot events routed through a beacon or alarm category.
func (g *Generator) Trigger() {
	g.params.trigger.Add(1)
}

// Reset zeroes all oscillator state and deactivates the generator. It must
// only be called while the output sink is stopped, or from the render
// goroutine itself.
func (g *Generator) Reset() {
	g.params.active.Store(false)
	g.phase = 0
	g.phase2 = 0
	g.lfoPhase = 0
	g.curFreq = 0
	g.curVol = 0
	g.gain = 0
	g.burstClock = 0
	g.alarmClock = 0
	g.lastTrigger = g.params.trigger.Load()
}

// Gain fade time constant for active on/off toggles. Fast enough to feel
// immediate, slow enough to be click-free.
const gainTau = 0.008

// Render fills dst with mono samples. It never blocks, never allocates,
// and never returns an error: an inactive generator that has already faded
// out writes exact zeros. Parameters are snapshotted once, then the whole
// buffer is synthesized against that snapshot.
func (g *Generator) Render(dst []float64) {
	active := g.params.active.Load()
	if !active && g.gain <= 1e-4 {
		// Fully faded: exact silence, cheap path.
		g.gain = 0
		for i := range dst {
			dst[i] = 0
		}
		return
	}

	if trig := g.params.trigger.Load(); trig != g.lastTrigger {
		g.lastTrigger = trig
		g.burstClock = 0
		g.alarmClock = 0
	}

	// One snapshot per buffer; the control tick may overwrite the cells
	// mid-render without affecting this buffer.
	freq := g.params.freq.Load()
	vol := g.params.volume.Load()
	interval := g.params.interval.Load()

	gainTarget := 0.0
	if active {
		gainTarget = 1.0
	}
	kGain := smoothCoeff(gainTau, g.dt)

	switch g.cfg.Mode {
	case ModeTone:
		g.renderTone(dst, freq, vol, gainTarget, kGain)
	case ModeBeacon:
		g.renderBeacon(dst, freq, vol, interval, gainTarget, kGain)
	case ModeAlarm:
		g.renderAlarm(dst, freq, vol, gainTarget, kGain)
	}
}
