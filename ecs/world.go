package ecs

import (
	"fmt"

	"github.com/milk9111/trophydash/ecs/component"
)

// World owns entities and their component stores.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]*SparseSet
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{stores: make(map[component.ComponentID]*SparseSet)}
}

// CreateEntity allocates a new entity.
func (w *World) CreateEntity() Entity {
	if w == nil {
		return 0
	}
	return w.entities.create()
}

// DestroyEntity removes every component of e and frees its slot. It reports
// whether e was alive.
func (w *World) DestroyEntity(e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	for _, store := range w.stores {
		store.Remove(e)
	}
	return w.entities.destroy(e)
}

// IsAlive reports whether an entity handle is valid.
func (w *World) IsAlive(e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.isAlive(e)
}

// Entities returns all live entities in creation order.
func (w *World) Entities() []Entity {
	if w == nil {
		return nil
	}
	return w.entities.entities()
}

// AddComponent attaches or replaces the value stored under id for e.
func (w *World) AddComponent(e Entity, id component.ComponentID, value any) error {
	if w == nil {
		return fmt.Errorf("ecs: add component: world is nil")
	}
	if id == 0 {
		return component.ErrInvalidComponentKind
	}
	if value == nil {
		return component.ErrNilComponent
	}
	if !w.entities.isAlive(e) {
		return fmt.Errorf("ecs: add component to %s: %w", e, component.ErrEntityNotAlive)
	}
	w.store(id, true).Set(e, value)
	return nil
}

// GetComponent returns the raw value stored under id for e.
func (w *World) GetComponent(e Entity, id component.ComponentID) (any, bool) {
	store := w.store(id, false)
	if store == nil || !store.Has(e) {
		return nil, false
	}
	return store.Get(e), true
}

// HasComponent reports whether e has a value stored under id.
func (w *World) HasComponent(e Entity, id component.ComponentID) bool {
	return w.store(id, false).Has(e)
}

// RemoveComponent detaches the value stored under id from e.
func (w *World) RemoveComponent(e Entity, id component.ComponentID) bool {
	return w.store(id, false).Remove(e)
}

// Query returns live entities owning every given kind, in the insertion
// order of the first kind's store.
func (w *World) Query(kinds ...component.AnyKind) []Entity {
	if w == nil || len(kinds) == 0 {
		return nil
	}
	first := w.store(kinds[0].ID(), false)
	if first == nil {
		return nil
	}
	out := make([]Entity, 0, first.Len())
	for _, e := range first.Entities() {
		if !w.entities.isAlive(e) {
			continue
		}
		ok := true
		for _, k := range kinds[1:] {
			if !w.store(k.ID(), false).Has(e) {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, e)
		}
	}
	return out
}

// First returns the first live entity owning kind.
func (w *World) First(kind component.AnyKind) (Entity, bool) {
	store := w.store(kind.ID(), false)
	for _, e := range store.Entities() {
		if w.entities.isAlive(e) {
			return e, true
		}
	}
	return 0, false
}

func (w *World) store(id component.ComponentID, create bool) *SparseSet {
	if w == nil {
		return nil
	}
	if s, ok := w.stores[id]; ok {
		return s
	}
	if !create {
		return nil
	}
	if w.stores == nil {
		w.stores = make(map[component.ComponentID]*SparseSet)
	}
	s := &SparseSet{}
	w.stores[id] = s
	return s
}
