package world

import (
	"testing"

	"github.com/google/uuid"

	"github.com/quillon/waymark/pkg/vec"
)

func TestUpsertAndQuery(t *testing.T) {
	r := NewRegistry()
	id := uuid.New()
	r.Upsert(Candidate{ID: id, Kind: "boss", Position: vec.Vec3{X: 1}, Alive: true})

	got := r.CandidatesOf("boss")
	if len(got) != 1 || got[0].ID != id {
		t.Fatalf("got %v", got)
	}
	if r.Len() != 1 {
		t.Fatalf("len = %d", r.Len())
	}
}

func TestUpsertReplacesInPlace(t *testing.T) {
	r := NewRegistry()
	id := uuid.New()
	r.Upsert(Candidate{ID: id, Kind: "boss", Position: vec.Vec3{X: 1}, Alive: true})
	r.Upsert(Candidate{ID: id, Kind: "boss", Position: vec.Vec3{X: 9}, Alive: true})

	got := r.CandidatesOf("boss")
	if len(got) != 1 {
		t.Fatalf("replace duplicated the entry: %v", got)
	}
	if got[0].Position.X != 9 {
		t.Fatalf("position = %v, want updated", got[0].Position)
	}
	if r.Len() != 1 {
		t.Fatalf("len = %d", r.Len())
	}
}

func TestUpsertKindChangeMovesIndex(t *testing.T) {
	r := NewRegistry()
	id := uuid.New()
	r.Upsert(Candidate{ID: id, Kind: "collectible", Alive: true})
	r.Upsert(Candidate{ID: id, Kind: "currency", Alive: true})

	if got := r.CandidatesOf("collectible"); len(got) != 0 {
		t.Fatalf("old kind still lists the candidate: %v", got)
	}
	if got := r.CandidatesOf("currency"); len(got) != 1 {
		t.Fatalf("new kind missing the candidate: %v", got)
	}
}

func TestDeadCandidatesSkipped(t *testing.T) {
	r := NewRegistry()
	id := uuid.New()
	r.Upsert(Candidate{ID: id, Kind: "boss", Alive: true})
	r.Upsert(Candidate{ID: id, Kind: "boss", Alive: false})

	if got := r.CandidatesOf("boss"); len(got) != 0 {
		t.Fatalf("dead candidate reported: %v", got)
	}
	// Still stored: death is a state, not removal.
	if r.Len() != 1 {
		t.Fatalf("len = %d, want 1", r.Len())
	}
}

func TestRemoveAndClear(t *testing.T) {
	r := NewRegistry()
	id := uuid.New()
	r.Upsert(Candidate{ID: id, Kind: "boss", Alive: true})
	r.Upsert(Candidate{ID: uuid.New(), Kind: "door", Alive: true})

	r.Remove(id)
	if got := r.CandidatesOf("boss"); len(got) != 0 {
		t.Fatalf("removed candidate still listed: %v", got)
	}
	r.Remove(uuid.New()) // unknown ID is a no-op

	r.Clear()
	if r.Len() != 0 {
		t.Fatalf("len = %d after clear", r.Len())
	}
}

func TestQueryReturnsSnapshot(t *testing.T) {
	r := NewRegistry()
	id := uuid.New()
	r.Upsert(Candidate{ID: id, Kind: "boss", Position: vec.Vec3{X: 1}, Alive: true})

	snap := r.CandidatesOf("boss")
	snap[0].Position.X = 99

	if got := r.CandidatesOf("boss"); got[0].Position.X != 1 {
		t.Fatalf("mutating a snapshot leaked into the registry: %v", got[0].Position)
	}
}

func TestInsertionOrderPreserved(t *testing.T) {
	r := NewRegistry()
	var ids []uuid.UUID
	for i := 0; i < 5; i++ {
		id := uuid.New()
		ids = append(ids, id)
		r.Upsert(Candidate{ID: id, Kind: "footpath", Position: vec.Vec3{X: float64(i)}, Alive: true})
	}

	got := r.CandidatesOf("footpath")
	if len(got) != 5 {
		t.Fatalf("got %d candidates", len(got))
	}
	for i, c := range got {
		if c.ID != ids[i] {
			t.Fatalf("order broken at %d", i)
		}
	}
}
