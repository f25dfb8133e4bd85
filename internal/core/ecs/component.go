package ecs

// Removable is implemented by all component stores so the Registry can
// bulk-remove an entity's data from every store on destroy.
type Removable interface {
	Remove(id EntityID)
}

// PtrComponentStore is a generic sparse-set store for ECS components.
// Values live behind pointers so a *T obtained from Get stays valid while
// other entities are added. Iteration follows the dense array, which makes
// it deterministic for a given sequence of Set/Remove calls.
type PtrComponentStore[T any] struct {
	ids   []EntityID
	vals  []*T
	index map[EntityID]int
}

func NewPtrComponentStore[T any]() *PtrComponentStore[T] {
	return &PtrComponentStore[T]{
		ids:   make([]EntityID, 0, 256),
		vals:  make([]*T, 0, 256),
		index: make(map[EntityID]int, 256),
	}
}

// Set attaches c to id, replacing any previous value.
func (s *PtrComponentStore[T]) Set(id EntityID, c *T) {
	if i, ok := s.index[id]; ok {
		s.vals[i] = c
		return
	}
	s.index[id] = len(s.ids)
	s.ids = append(s.ids, id)
	s.vals = append(s.vals, c)
}

func (s *PtrComponentStore[T]) Get(id EntityID) (*T, bool) {
	i, ok := s.index[id]
	if !ok {
		return nil, false
	}
	return s.vals[i], true
}

// Remove swaps the last element into the hole.
func (s *PtrComponentStore[T]) Remove(id EntityID) {
	i, ok := s.index[id]
	if !ok {
		return
	}
	last := len(s.ids) - 1
	if i != last {
		s.ids[i] = s.ids[last]
		s.vals[i] = s.vals[last]
		s.index[s.ids[i]] = i
	}
	s.ids = s.ids[:last]
	s.vals[last] = nil
	s.vals = s.vals[:last]
	delete(s.index, id)
}

func (s *PtrComponentStore[T]) Has(id EntityID) bool {
	_, ok := s.index[id]
	return ok
}

func (s *PtrComponentStore[T]) Len() int {
	return len(s.ids)
}

// Each visits every entry present when the call starts. Entries added by fn
// are not visited; fn must not remove entries from this store.
func (s *PtrComponentStore[T]) Each(fn func(EntityID, *T)) {
	n := len(s.ids)
	for i := 0; i < n && i < len(s.ids); i++ {
		fn(s.ids[i], s.vals[i])
	}
}

// IDs returns a copy of the entity ids in iteration order.
func (s *PtrComponentStore[T]) IDs() []EntityID {
	out := make([]EntityID, len(s.ids))
	copy(out, s.ids)
	return out
}

// TagStore is a component store for zero-size marker components.
type TagStore struct {
	ids   []EntityID
	index map[EntityID]int
}

func NewTagStore() *TagStore {
	return &TagStore{
		ids:   make([]EntityID, 0, 64),
		index: make(map[EntityID]int, 64),
	}
}

// Add attaches the marker. Adding twice is a no-op.
func (s *TagStore) Add(id EntityID) {
	if _, ok := s.index[id]; ok {
		return
	}
	s.index[id] = len(s.ids)
	s.ids = append(s.ids, id)
}

func (s *TagStore) Remove(id EntityID) {
	i, ok := s.index[id]
	if !ok {
		return
	}
	last := len(s.ids) - 1
	if i != last {
		s.ids[i] = s.ids[last]
		s.index[s.ids[i]] = i
	}
	s.ids = s.ids[:last]
	delete(s.index, id)
}

func (s *TagStore) Has(id EntityID) bool {
	_, ok := s.index[id]
	return ok
}

func (s *TagStore) Len() int { return len(s.ids) }

// Each visits every tagged entity present when the call starts.
func (s *TagStore) Each(fn func(EntityID)) {
	n := len(s.ids)
	for i := 0; i < n && i < len(s.ids); i++ {
		fn(s.ids[i])
	}
}

func (s *TagStore) IDs() []EntityID {
	out := make([]EntityID, len(s.ids))
	copy(out, s.ids)
	return out
}

// Clear drops every marker.
func (s *TagStore) Clear() {
	s.ids = s.ids[:0]
	clear(s.index)
}
