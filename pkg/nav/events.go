package nav

import (
	"github.com/quillon/waymark/pkg/vec"
)

// Event is a one-shot cue trigger, fired by the game at the moment
// something happens rather than tracked continuously.
type Event int

const (
	// EventAttackTelegraph marks an enemy wind-up the player can react to.
	EventAttackTelegraph Event = iota
	// EventGrabWarning marks an unblockable grab — the most urgent cue.
	EventGrabWarning
	// EventParryWindow marks the opening of a parry timing window.
	EventParryWindow
)

// eventShape fixes each event's pitch bias and callout behavior.
var eventShapes = map[Event]struct {
	freqMul   float64
	key       string
	interrupt bool
}{
	EventAttackTelegraph: {freqMul: 1.0, key: "event.telegraph"},
	EventGrabWarning:     {freqMul: 0.7, key: "event.grab", interrupt: true},
	EventParryWindow:     {freqMul: 1.3, key: "event.parry"},
}

// Play fires a one-shot spatialized cue at pos. All events share the
// telegraph category's generator, so at most one telegraph-class cue
// sounds at a time; a new event retriggers and replaces the old one.
// Geometry is taken from the most recent Tick's listener pose.
func (n *Navigator) Play(ev Event, pos vec.Vec3) {
	shape, ok := eventShapes[ev]
	if !ok {
		return
	}
	st := n.cats[CategoryTelegraph]
	if !st.enabled {
		return
	}

	dist := vec.Dist(n.lastListener, pos)
	if dist > st.cfg.MaxDistance {
		return
	}
	prox := Proximity(dist, st.cfg.MaxDistance)
	pan := Pan(n.lastListener, pos, n.lastForward)

	master := 1.0
	if n.opts.MasterVolume != nil {
		master = vec.Clamp01(n.opts.MasterVolume(CategoryTelegraph))
	}

	st.gen.SetFrequency(vec.Lerp(st.cfg.FreqLow, st.cfg.FreqHigh, prox) * shape.freqMul)
	st.gen.SetVolume(vec.Lerp(st.cfg.VolLow, st.cfg.VolHigh, prox) * master)
	st.ch.SetPan(pan)
	st.gen.Trigger()
	st.gen.SetActive(true)
	st.oneShotUntil = n.clock + st.cfg.Synth.AlarmDur

	if n.opts.Announcer != nil && shape.interrupt {
		msg := shape.key
		if n.opts.Lookup != nil {
			msg = n.opts.Lookup.Message(shape.key, panDirection(pan))
		}
		n.opts.Announcer.Interrupt(msg)
	}
}
