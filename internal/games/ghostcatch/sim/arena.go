package sim

import "github.com/google/uuid"

// arena stores live entities in spawn order with an id -> slot index.
// Slots only move during compact, which rebuilds the index.
type arena struct {
	slots []Entity
	index map[uuid.UUID]int
}

func newArena(capacity int) *arena {
	return &arena{
		slots: make([]Entity, 0, capacity),
		index: make(map[uuid.UUID]int, capacity),
	}
}

func (a *arena) len() int {
	return len(a.slots)
}

func (a *arena) add(e Entity) {
	a.index[e.ID] = len(a.slots)
	a.slots = append(a.slots, e)
}

func (a *arena) get(id uuid.UUID) (*Entity, bool) {
	slot, ok := a.index[id]
	if !ok {
		return nil, false
	}
	return &a.slots[slot], true
}

// compact drops every entity for which remove returns true, preserving order.
// Returns the dropped entities.
func (a *arena) compact(remove func(*Entity) bool) []Entity {
	var dropped []Entity
	kept := a.slots[:0]
	for i := range a.slots {
		if remove(&a.slots[i]) {
			dropped = append(dropped, a.slots[i])
			continue
		}
		kept = append(kept, a.slots[i])
	}
	// Zero the tail so dropped entities are not retained by the backing array.
	for i := len(kept); i < len(a.slots); i++ {
		a.slots[i] = Entity{}
	}
	a.slots = kept

	if len(dropped) > 0 {
		clear(a.index)
		for i := range a.slots {
			a.index[a.slots[i].ID] = i
		}
	}
	return dropped
}

func (a *arena) clear() {
	clear(a.slots)
	a.slots = a.slots[:0]
	clear(a.index)
}

func (a *arena) snapshot() []Entity {
	out := make([]Entity, len(a.slots))
	copy(out, a.slots)
	return out
}
