// Package world maintains the registry of live game entities the scanner
// draws candidates from. The real game feeds it from engine callbacks; the
// demo feeds it from a simulation. Reads return snapshot copies so callers
// never iterate a collection under concurrent mutation.
package world

import (
	"sync"

	"github.com/google/uuid"

	"github.com/quillon/waymark/pkg/vec"
)

// Candidate is one entity the navigation core may target. Kind is the
// category name it belongs to (a nav.Category string).
type Candidate struct {
	ID       uuid.UUID
	Kind     string
	Position vec.Vec3
	Alive    bool
}

// Registry is a mutex-guarded candidate store. One coarse lock per
// registry instance guards both the background scan and any other readers;
// this is deliberately the only lock in the subsystem outside the sinks.
type Registry struct {
	mu      sync.Mutex
	byID    map[uuid.UUID]Candidate
	byKind  map[string][]uuid.UUID
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byID:   make(map[uuid.UUID]Candidate),
		byKind: make(map[string][]uuid.UUID),
	}
}

// Upsert adds or replaces a candidate.
func (r *Registry) Upsert(c Candidate) {
	r.mu.Lock()
	defer r.mu.Unlock()

	prev, ok := r.byID[c.ID]
	r.byID[c.ID] = c
	if ok && prev.Kind == c.Kind {
		return
	}
	if ok {
		r.removeFromKindLocked(prev.Kind, c.ID)
	}
	r.byKind[c.Kind] = append(r.byKind[c.Kind], c.ID)
}

// Remove deletes a candidate. Removing an unknown ID is a no-op.
func (r *Registry) Remove(id uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.byID[id]
	if !ok {
		return
	}
	delete(r.byID, id)
	r.removeFromKindLocked(c.Kind, id)
}

func (r *Registry) removeFromKindLocked(kind string, id uuid.UUID) {
	ids := r.byKind[kind]
	for i, v := range ids {
		if v == id {
			r.byKind[kind] = append(ids[:i], ids[i+1:]...)
			return
		}
	}
}

// Clear removes all candidates, e.g. on a scene transition.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID = make(map[uuid.UUID]Candidate)
	r.byKind = make(map[string][]uuid.UUID)
}

// CandidatesOf returns a snapshot copy of all live candidates of a kind.
// Dead entries are skipped rather than reported: a destroyed entity is the
// normal empty case, not an error. Insertion order is preserved so
// first-found tie-breaking is stable.
func (r *Registry) CandidatesOf(kind string) []Candidate {
	r.mu.Lock()
	defer r.mu.Unlock()

	ids := r.byKind[kind]
	out := make([]Candidate, 0, len(ids))
	for _, id := range ids {
		c, ok := r.byID[id]
		if !ok || !c.Alive {
			continue
		}
		out = append(out, c)
	}
	return out
}

// Len returns the number of stored candidates, live or not.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.byID)
}
