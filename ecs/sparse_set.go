package ecs

// SparseSet stores components keyed by entity slot. Values are kept as `any`
// so one set type backs every component kind; the generic helpers in
// generics.go restore the static type.
//
// Iteration follows insertion order. Removal shifts the dense arrays instead
// of swapping so systems that depend on build order (platform resolution)
// stay deterministic across level rebuilds.
type SparseSet struct {
	denseEntities []Entity
	denseValues   []any
	sparse        []int
}

// Has reports whether e currently owns a value in the set.
func (s *SparseSet) Has(e Entity) bool {
	if s == nil {
		return false
	}
	id := int(e.id())
	if id <= 0 || id-1 >= len(s.sparse) {
		return false
	}
	idx := s.sparse[id-1]
	return idx >= 0 && idx < len(s.denseEntities) && s.denseEntities[idx] == e
}

// Get returns the value for e, or nil.
func (s *SparseSet) Get(e Entity) any {
	if !s.Has(e) {
		return nil
	}
	return s.denseValues[s.sparse[e.id()-1]]
}

// Set inserts or replaces the value for e.
func (s *SparseSet) Set(e Entity, v any) {
	if s == nil || !e.Valid() {
		return
	}
	id := int(e.id())
	for len(s.sparse) < id {
		s.sparse = append(s.sparse, -1)
	}
	if idx := s.sparse[id-1]; idx >= 0 && idx < len(s.denseEntities) && s.denseEntities[idx].id() == e.id() {
		// Same slot, possibly a stale generation: overwrite in place.
		s.denseEntities[idx] = e
		s.denseValues[idx] = v
		return
	}
	s.denseEntities = append(s.denseEntities, e)
	s.denseValues = append(s.denseValues, v)
	s.sparse[id-1] = len(s.denseEntities) - 1
}

// Remove deletes the value for e if present.
func (s *SparseSet) Remove(e Entity) bool {
	if !s.Has(e) {
		return false
	}
	idx := s.sparse[e.id()-1]
	s.denseEntities = append(s.denseEntities[:idx], s.denseEntities[idx+1:]...)
	s.denseValues = append(s.denseValues[:idx], s.denseValues[idx+1:]...)
	s.sparse[e.id()-1] = -1
	for i := idx; i < len(s.denseEntities); i++ {
		s.sparse[s.denseEntities[i].id()-1] = i
	}
	return true
}

// Len returns the number of stored values.
func (s *SparseSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.denseEntities)
}

// Entities returns a copy of the dense entity list.
func (s *SparseSet) Entities() []Entity {
	if s == nil {
		return nil
	}
	out := make([]Entity, len(s.denseEntities))
	copy(out, s.denseEntities)
	return out
}
