package nav

import "math"

// Zone is a discretized proximity band driving verbal distance callouts.
type Zone int

const (
	ZoneNone Zone = iota
	ZoneNearby
	ZoneCloser
	ZoneVeryClose
)

func (z Zone) String() string {
	switch z {
	case ZoneNearby:
		return "nearby"
	case ZoneCloser:
		return "closer"
	case ZoneVeryClose:
		return "veryclose"
	default:
		return "none"
	}
}

// Zone thresholds on distance/maxDistance.
const (
	veryCloseFrac = 0.15
	closerFrac    = 0.35
	nearbyFrac    = 0.65
)

// announceCooldown is the minimum spacing between callouts for one
// category, in seconds.
const announceCooldown = 4.0

// zoneFor maps a normalized distance ratio to its zone.
func zoneFor(ratio float64) Zone {
	switch {
	case ratio < veryCloseFrac:
		return ZoneVeryClose
	case ratio < closerFrac:
		return ZoneCloser
	case ratio < nearbyFrac:
		return ZoneNearby
	default:
		return ZoneNone
	}
}

// zoneTracker is the per-category announcement state machine. The zone is
// recomputed every tick; an announcement fires only on a transition to a
// new non-None zone outside the cooldown window. Both fields update at
// emission time, so a racing shorter path can never double-announce.
type zoneTracker struct {
	lastAnnounced Zone
	lastTime      float64
}

func newZoneTracker() zoneTracker {
	return zoneTracker{lastTime: math.Inf(-1)}
}

// observe feeds the current zone at time now (seconds) and reports whether
// a callout should be emitted.
func (t *zoneTracker) observe(zone Zone, now float64) bool {
	if zone == ZoneNone || zone == t.lastAnnounced {
		return false
	}
	if now-t.lastTime < announceCooldown {
		return false
	}
	t.lastAnnounced = zone
	t.lastTime = now
	return true
}

// reset clears the announced zone so re-entry announces from scratch.
// The cooldown timestamp is kept: a target flickering out and back within
// the window must not spam the same callout. Called on target loss and
// target switch; a full context reset rebuilds the tracker instead,
// because the control clock rewinds with it.
func (t *zoneTracker) reset() {
	t.lastAnnounced = ZoneNone
}
