package nav

import (
	"github.com/google/uuid"

	"github.com/quillon/waymark/pkg/vec"
	"github.com/quillon/waymark/pkg/world"
)

// Target is one category's current tracking record. It is overwritten
// wholesale on every scan; there is no incremental merge.
type Target struct {
	Found    bool
	ID       uuid.UUID
	Position vec.Vec3
	Distance float64
}

// WorldQuery enumerates live candidates of a category. world.Registry
// implements it; game integrations substitute their own engine-backed
// query. A query that fails transiently should return an empty slice —
// the scanner treats "no candidates" as the normal case and retries on
// its next cadence.
type WorldQuery interface {
	CandidatesOf(kind string) []world.Candidate
}

// nearestCandidate picks the strictly nearest live candidate within
// maxDistance of the listener. First found wins ties; candidates beyond
// maxDistance are excluded outright, not merely deprioritized.
func nearestCandidate(cands []world.Candidate, listener vec.Vec3, maxDistance float64) Target {
	var best Target
	for _, c := range cands {
		if !c.Alive {
			continue
		}
		d := vec.Dist(listener, c.Position)
		if d > maxDistance {
			continue
		}
		if !best.Found || d < best.Distance {
			best = Target{Found: true, ID: c.ID, Position: c.Position, Distance: d}
		}
	}
	return best
}
