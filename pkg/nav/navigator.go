package nav

import (
	"log/slog"

	"github.com/quillon/waymark/pkg/mixer"
	"github.com/quillon/waymark/pkg/synth"
	"github.com/quillon/waymark/pkg/vec"
)

// Options configures a Navigator. Every collaborator is optional: a nil
// query means no scanning, a nil announcer means no callouts, and nil
// helpers fall back to identity values. Missing collaborators degrade to
// silence, never to a panic.
type Options struct {
	Query     WorldQuery
	Announcer Announcer
	Lookup    Lookup

	// DirectionalPitch biases frequency by how directly the listener
	// faces the target. Implementations should return a multiplier near
	// 1.0. Nil means no bias.
	DirectionalPitch func(forward, toTarget vec.Vec3) float64

	// MasterVolume returns the player's per-category volume setting in
	// [0,1]. Nil means full volume everywhere.
	MasterVolume func(Category) float64

	// Tuning overrides the built-in table; nil uses DefaultTuning.
	Tuning *Tuning

	// SampleRate for all generators. Zero means 44100.
	SampleRate int

	// MaxBufferFrames sizes the mixer scratch buffer. Zero means 4096.
	MaxBufferFrames int

	Logger *slog.Logger

	// Monitor receives a state snapshot after every tick. Nil disables
	// publishing. Publish must not block.
	Monitor StateSink
}

// Announcer and Lookup mirror the speech package interfaces; they are
// redeclared here so nav's public surface names its own requirements.
type Announcer interface {
	Say(msg string)
	Interrupt(msg string)
}

type Lookup interface {
	Message(key, direction string) string
}

// categoryState is the control-side record for one category. Everything
// in here belongs to the tick goroutine; the generator and channel cells
// are the only crossing points to the render side.
type categoryState struct {
	cat Category
	cfg CategoryConfig
	gen *synth.Generator
	ch  *mixer.Channel

	enabled   bool
	manual    bool
	manualPos vec.Vec3

	target    Target
	sinceScan float64
	zones     zoneTracker

	oneShotUntil float64

	// Last published values, kept for the monitor snapshot. lastDist is
	// the per-tick geometry, not the scan-time distance: slow-cadence
	// categories would otherwise show a distance up to one scan period
	// stale next to a live pan.
	lastFreq, lastVol, lastPan, lastInterval float64
	lastDist                                 float64
}

// Navigator is the facade the game drives: it owns one generator and one
// mixer channel per category, runs scanning and proximity mapping on
// Tick, and exposes the mixer as the render callback for the output sink.
//
// Tick and the other exported methods must be called from one goroutine
// (the game's update loop). The render side is fed exclusively through
// lock-free parameter cells.
type Navigator struct {
	logger *slog.Logger
	opts   Options
	tuning Tuning

	mix  *mixer.Mixer
	cats [numCategories]*categoryState

	clock        float64 // control-side seconds, advanced by Tick dt
	lastListener vec.Vec3
	lastForward  vec.Vec3
}

// New constructs a Navigator with its full fixed channel topology: one
// generator and one mixer channel per category, no dynamic add/remove.
func New(opts Options) *Navigator {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	tuning := DefaultTuning()
	if opts.Tuning != nil {
		tuning = *opts.Tuning
	}
	sampleRate := opts.SampleRate
	if sampleRate <= 0 {
		sampleRate = 44100
	}
	maxFrames := opts.MaxBufferFrames
	if maxFrames <= 0 {
		maxFrames = 4096
	}

	n := &Navigator{
		logger:      logger,
		opts:        opts,
		tuning:      tuning,
		lastForward: vec.Vec3{Z: 1},
	}

	channels := make([]*mixer.Channel, 0, numCategories)
	for _, cat := range Categories() {
		cfg := tuning[cat]
		sc := cfg.Synth
		sc.Name = cat.String()
		sc.SampleRate = sampleRate

		gen := synth.NewGenerator(sc)
		ch := mixer.NewChannel(gen)
		n.cats[cat] = &categoryState{
			cat:     cat,
			cfg:     cfg,
			gen:     gen,
			ch:      ch,
			enabled: true,
			zones:   newZoneTracker(),
		}
		channels = append(channels, ch)
	}
	n.mix = mixer.New(channels, maxFrames)

	logger.Info("navigator ready",
		"categories", int(numCategories),
		"sample_rate", sampleRate,
	)
	return n
}

// Renderer returns the render callback for the output sink.
func (n *Navigator) Renderer() *mixer.Mixer { return n.mix }

// SetActive enables or disables a category's cue. Disabling fades the
// generator out without resetting its phase, so re-enabling resumes
// cleanly.
func (n *Navigator) SetActive(cat Category, on bool) {
	st := n.state(cat)
	if st == nil {
		return
	}
	st.enabled = on
	if !on {
		st.gen.SetActive(false)
	}
}

// SetTarget pins a category to an explicit position, bypassing the
// scanner until ClearTarget. Used by scripted sequences and escort
// objectives whose target the game already knows.
func (n *Navigator) SetTarget(cat Category, pos vec.Vec3) {
	st := n.state(cat)
	if st == nil {
		return
	}
	st.manual = true
	st.manualPos = pos
	st.zones.reset()
}

// ClearTarget releases a manual target and returns the category to
// scanning.
func (n *Navigator) ClearTarget(cat Category) {
	st := n.state(cat)
	if st == nil {
		return
	}
	st.manual = false
	st.target = Target{}
	st.zones.reset()
	st.gen.SetActive(false)
}

// Reset clears all targets, zone state, and oscillator phase, e.g. on a
// scene transition. Call it while the output sink is stopped: generator
// Reset touches render-side state.
func (n *Navigator) Reset() {
	for _, st := range n.cats {
		st.manual = false
		st.target = Target{}
		st.sinceScan = 0
		st.oneShotUntil = 0
		st.zones = newZoneTracker()
		st.gen.Reset()
	}
	n.clock = 0
	n.logger.Debug("navigator reset")
}

// Close deactivates every category. The output sink must already be
// stopped; after Close the Navigator is inert but reusable via Reset.
func (n *Navigator) Close() error {
	for _, st := range n.cats {
		st.manual = false
		st.target = Target{}
		st.gen.SetActive(false)
	}
	n.logger.Info("navigator closed")
	return nil
}

// Tick is the per-frame control entry point. It advances scan cadences,
// refreshes every synthesis parameter from the current geometry, and runs
// the zone announcers. Not latency-critical; it never blocks the render
// callback.
func (n *Navigator) Tick(listener, forward vec.Vec3, dt float64) {
	if dt <= 0 {
		return
	}
	n.clock += dt
	n.lastListener = listener
	n.lastForward = forward

	for _, st := range n.cats {
		n.tickCategory(st, listener, forward, dt)
	}

	if n.opts.Monitor != nil {
		n.opts.Monitor.Publish(n.snapshot())
	}
}

func (n *Navigator) tickCategory(st *categoryState, listener, forward vec.Vec3, dt float64) {
	// Targeting: manual pin wins; otherwise scan on the category cadence.
	if st.manual {
		st.target = Target{
			Found:    true,
			Position: st.manualPos,
			Distance: vec.Dist(listener, st.manualPos),
		}
	} else {
		st.sinceScan += dt
		if st.sinceScan >= st.cfg.ScanPeriod.Seconds() {
			st.sinceScan = 0
			n.scan(st, listener)
		}
	}

	oneShot := n.clock < st.oneShotUntil

	if !st.enabled || (!st.target.Found && !oneShot) {
		st.gen.SetActive(false)
		return
	}

	if oneShot && !st.target.Found {
		// One-shot cue playing without a tracked target: parameters were
		// fixed at trigger time, nothing to remap.
		st.gen.SetActive(true)
		return
	}

	// Proximity mapping, unconditionally every tick while a target
	// exists — the listener moves even when the target does not.
	dist := vec.Dist(listener, st.target.Position)
	toTarget := st.target.Position.Sub(listener)
	prox := Proximity(dist, st.cfg.MaxDistance)
	pan := Pan(listener, st.target.Position, forward)

	pitchMul := 1.0
	if n.opts.DirectionalPitch != nil {
		pitchMul = n.opts.DirectionalPitch(forward, toTarget)
	}
	master := 1.0
	if n.opts.MasterVolume != nil {
		master = vec.Clamp01(n.opts.MasterVolume(st.cat))
	}

	freq := vec.Lerp(st.cfg.FreqLow, st.cfg.FreqHigh, prox) * pitchMul
	vol := vec.Lerp(st.cfg.VolLow, st.cfg.VolHigh, prox) * master
	interval := vec.Lerp(st.cfg.FarInterval, st.cfg.CloseInterval, prox)

	st.gen.SetFrequency(freq)
	st.gen.SetVolume(vol)
	st.gen.SetInterval(interval)
	st.ch.SetPan(pan)
	st.gen.SetActive(true)

	st.lastFreq, st.lastVol, st.lastPan, st.lastInterval = freq, vol, pan, interval
	st.lastDist = dist

	n.announceZone(st, dist, pan)
}

// scan refreshes one category's target from the world query. The record
// is replaced wholesale; an empty candidate set clears it and resets the
// announced zone so re-entry announces from scratch.
func (n *Navigator) scan(st *categoryState, listener vec.Vec3) {
	var next Target
	if n.opts.Query != nil {
		next = nearestCandidate(n.opts.Query.CandidatesOf(st.cat.String()), listener, st.cfg.MaxDistance)
	}

	switch {
	case !next.Found && st.target.Found:
		st.zones.reset()
	case next.Found && st.target.Found && next.ID != st.target.ID:
		// Switched to a different entity: its zones are news again.
		st.zones.reset()
	}
	st.target = next
}

func (n *Navigator) announceZone(st *categoryState, dist, pan float64) {
	if st.cfg.MaxDistance <= 0 {
		return
	}
	zone := zoneFor(dist / st.cfg.MaxDistance)
	if !st.zones.observe(zone, n.clock) {
		return
	}
	if n.opts.Announcer == nil {
		return
	}

	key := st.cfg.AnnounceKey + "." + zone.String()
	msg := key
	if n.opts.Lookup != nil {
		msg = n.opts.Lookup.Message(key, panDirection(pan))
	}
	n.opts.Announcer.Say(msg)
	n.logger.Debug("zone callout",
		"category", st.cat.String(),
		"zone", zone.String(),
		"distance", dist,
	)
}

// panDirection coarsens a pan position into a spoken direction suffix.
func panDirection(pan float64) string {
	switch {
	case pan < -0.5:
		return "left"
	case pan > 0.5:
		return "right"
	default:
		return "ahead"
	}
}

func (n *Navigator) state(cat Category) *categoryState {
	if cat < 0 || cat >= numCategories {
		return nil
	}
	return n.cats[cat]
}
