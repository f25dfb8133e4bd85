package ecs

// World is the top-level ECS container. It owns the entity pool, the component
// registry, the parent/child index and a deferred destruction queue flushed
// by CleanupSystem each tick.
type World struct {
	pool         *EntityPool
	registry     *Registry
	parent       map[EntityID]EntityID
	children     map[EntityID][]EntityID
	destroyQueue []EntityID
}

func NewWorld() *World {
	return &World{
		pool:         NewEntityPool(),
		registry:     NewRegistry(),
		parent:       make(map[EntityID]EntityID, 64),
		children:     make(map[EntityID][]EntityID, 64),
		destroyQueue: make([]EntityID, 0, 64),
	}
}

func (w *World) Pool() *EntityPool   { return w.pool }
func (w *World) Registry() *Registry { return w.registry }

func (w *World) CreateEntity() EntityID {
	return w.pool.Create()
}

func (w *World) Alive(id EntityID) bool {
	return w.pool.Alive(id)
}

// Len returns the number of live entities.
func (w *World) Len() int { return w.pool.Len() }

// SetParent attaches child under parent. A child has at most one parent;
// re-parenting detaches it from the previous one.
func (w *World) SetParent(child, parent EntityID) {
	if !w.Alive(child) || !w.Alive(parent) || child == parent {
		return
	}
	w.detach(child)
	w.parent[child] = parent
	w.children[parent] = append(w.children[parent], child)
}

// Parent returns the parent of id, if any.
func (w *World) Parent(id EntityID) (EntityID, bool) {
	p, ok := w.parent[id]
	return p, ok
}

// Children returns the direct children of id.
func (w *World) Children(id EntityID) []EntityID {
	return w.children[id]
}

// MarkForDestruction queues an entity for end-of-tick cleanup.
func (w *World) MarkForDestruction(id EntityID) {
	w.destroyQueue = append(w.destroyQueue, id)
}

// MarkForDestructionRecursive queues id and all of its descendants.
func (w *World) MarkForDestructionRecursive(id EntityID) {
	if !w.Alive(id) {
		return
	}
	w.MarkForDestruction(id)
	for _, c := range w.children[id] {
		w.MarkForDestructionRecursive(c)
	}
}

// Pending returns the number of queued destructions.
func (w *World) Pending() int { return len(w.destroyQueue) }

// FlushDestroyQueue destroys all queued entities and clears their components.
// Duplicates and stale ids in the queue are skipped. Returns the number of
// entities actually destroyed.
func (w *World) FlushDestroyQueue() int {
	destroyed := 0
	for _, id := range w.destroyQueue {
		if !w.pool.Alive(id) {
			continue
		}
		w.registry.RemoveAll(id)
		w.detach(id)
		for _, c := range w.children[id] {
			delete(w.parent, c)
		}
		delete(w.children, id)
		w.pool.Destroy(id)
		destroyed++
	}
	w.destroyQueue = w.destroyQueue[:0]
	return destroyed
}

func (w *World) detach(child EntityID) {
	p, ok := w.parent[child]
	if !ok {
		return
	}
	delete(w.parent, child)
	siblings := w.children[p]
	for i, c := range siblings {
		if c == child {
			w.children[p] = append(siblings[:i], siblings[i+1:]...)
			break
		}
	}
	if len(w.children[p]) == 0 {
		delete(w.children, p)
	}
}
