package nav

import (
	"testing"

	"github.com/google/uuid"

	"github.com/quillon/waymark/pkg/vec"
	"github.com/quillon/waymark/pkg/world"
)

func cand(x, z float64, alive bool) world.Candidate {
	return world.Candidate{
		ID:       uuid.New(),
		Position: vec.Vec3{X: x, Z: z},
		Alive:    alive,
	}
}

func TestNearestCandidatePicksClosest(t *testing.T) {
	far := cand(30, 0, true)
	near := cand(5, 0, true)
	mid := cand(12, 0, true)

	got := nearestCandidate([]world.Candidate{far, near, mid}, vec.Vec3{}, 100)
	if !got.Found || got.ID != near.ID {
		t.Fatalf("picked %v, want %v", got.ID, near.ID)
	}
	if got.Distance != 5 {
		t.Fatalf("distance = %v, want 5", got.Distance)
	}
}

func TestNearestCandidateFirstFoundWinsTies(t *testing.T) {
	a := cand(10, 0, true)
	b := cand(0, 10, true) // same distance, listed second

	got := nearestCandidate([]world.Candidate{a, b}, vec.Vec3{}, 100)
	if got.ID != a.ID {
		t.Fatalf("tie went to %v, want first-listed %v", got.ID, a.ID)
	}
}

func TestNearestCandidateExcludesBeyondMax(t *testing.T) {
	outside := cand(60, 0, true)

	got := nearestCandidate([]world.Candidate{outside}, vec.Vec3{}, 50)
	if got.Found {
		t.Fatal("candidate beyond max distance must not be targeted")
	}

	// Exactly at the boundary is still in range.
	edge := cand(50, 0, true)
	got = nearestCandidate([]world.Candidate{edge}, vec.Vec3{}, 50)
	if !got.Found {
		t.Fatal("candidate at max distance should be targeted")
	}
}

func TestNearestCandidateSkipsDead(t *testing.T) {
	dead := cand(3, 0, false)
	alive := cand(20, 0, true)

	got := nearestCandidate([]world.Candidate{dead, alive}, vec.Vec3{}, 100)
	if !got.Found || got.ID != alive.ID {
		t.Fatalf("picked %v, want the live candidate %v", got.ID, alive.ID)
	}
}

func TestNearestCandidateEmpty(t *testing.T) {
	got := nearestCandidate(nil, vec.Vec3{}, 100)
	if got.Found {
		t.Fatal("empty candidate set must clear the target")
	}
}
