package event

import (
	"reflect"
)

// Bus holds one typed message list per event type. Producers append during
// a tick, consumers scheduled later in the same tick read the whole list in
// emission order, and Clear() empties every list at tick end. There are no
// handlers: delivery order is the system order of the Runner.
type Bus struct {
	queues map[reflect.Type]clearer
	order  []clearer
}

type clearer interface {
	clear()
	size() int
}

type queue[T any] struct {
	items []T
}

func (q *queue[T]) clear()    { q.items = q.items[:0] }
func (q *queue[T]) size() int { return len(q.items) }

func NewBus() *Bus {
	return &Bus{
		queues: make(map[reflect.Type]clearer),
	}
}

func queueFor[T any](b *Bus) *queue[T] {
	t := reflect.TypeOf((*T)(nil)).Elem()
	if q, ok := b.queues[t]; ok {
		return q.(*queue[T])
	}
	q := &queue[T]{items: make([]T, 0, 16)}
	b.queues[t] = q
	b.order = append(b.order, q)
	return q
}

// Emit appends an event to this tick's list for type T.
func Emit[T any](b *Bus, event T) {
	q := queueFor[T](b)
	q.items = append(q.items, event)
}

// Read returns the events of type T emitted so far this tick. The slice is
// only valid until the next Emit or Clear.
func Read[T any](b *Bus) []T {
	return queueFor[T](b).items
}

// Len returns the number of pending events of type T.
func Len[T any](b *Bus) int {
	return queueFor[T](b).size()
}

// Clear empties every list. Called once at tick end.
func (b *Bus) Clear() {
	for _, q := range b.order {
		q.clear()
	}
}

// Pending returns the total number of queued events across all types.
func (b *Bus) Pending() int {
	n := 0
	for _, q := range b.order {
		n += q.size()
	}
	return n
}
