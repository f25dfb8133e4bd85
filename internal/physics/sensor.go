// Package physics provides the built-in contact collaborator: overlap tests
// between sensor colliders, reported as contact-started / contact-ended
// notifications. Shapes are compared through their bounding spheres.
package physics

import (
	"sort"

	"github.com/l1jgo/asteroids/internal/component"
	"github.com/l1jgo/asteroids/internal/core/ecs"
	"github.com/l1jgo/asteroids/internal/core/event"
)

// ContactSource yields the contact notifications produced since the last call.
type ContactSource interface {
	DrainContacts() []event.Contact
}

// Bodies gives the detector read access to colliders and their poses.
type Bodies interface {
	EachCollider(fn func(id ecs.EntityID, c *component.Collider, t *component.Transform))
}

type pair struct {
	a, b ecs.EntityID
}

func makePair(a, b ecs.EntityID) pair {
	if b < a {
		a, b = b, a
	}
	return pair{a: a, b: b}
}

type sphere struct {
	id      ecs.EntityID
	x, y, z float64
	radius  float64
}

// SensorWorld detects overlaps every time DrainContacts is called.
type SensorWorld struct {
	bodies  Bodies
	active  map[pair]struct{}
	scratch []sphere
}

func NewSensorWorld(bodies Bodies) *SensorWorld {
	return &SensorWorld{
		bodies: bodies,
		active: make(map[pair]struct{}, 64),
	}
}

// DrainContacts compares every collider pair. New overlaps yield
// ContactStarted in collider iteration order; separations and removed
// entities yield ContactEnded, sorted by entity id.
func (w *SensorWorld) DrainContacts() []event.Contact {
	w.scratch = w.scratch[:0]
	w.bodies.EachCollider(func(id ecs.EntityID, c *component.Collider, t *component.Transform) {
		p := t.Translation
		w.scratch = append(w.scratch, sphere{
			id:     id,
			x:      p.X(),
			y:      p.Y(),
			z:      p.Z(),
			radius: c.BoundingRadius() * t.MaxScale(),
		})
	})

	var out []event.Contact
	touching := make(map[pair]struct{}, len(w.active))
	for i := 0; i < len(w.scratch); i++ {
		for j := i + 1; j < len(w.scratch); j++ {
			a, b := w.scratch[i], w.scratch[j]
			if !overlaps(a, b) {
				continue
			}
			key := makePair(a.id, b.id)
			touching[key] = struct{}{}
			if _, ok := w.active[key]; !ok {
				out = append(out, event.Contact{Kind: event.ContactStarted, A: a.id, B: b.id})
			}
		}
	}

	var ended []pair
	for key := range w.active {
		if _, ok := touching[key]; !ok {
			ended = append(ended, key)
		}
	}
	sort.Slice(ended, func(i, j int) bool {
		if ended[i].a != ended[j].a {
			return ended[i].a < ended[j].a
		}
		return ended[i].b < ended[j].b
	})
	for _, key := range ended {
		out = append(out, event.Contact{Kind: event.ContactEnded, A: key.a, B: key.b})
	}

	w.active = touching
	return out
}

// Active returns the number of pairs currently in contact.
func (w *SensorWorld) Active() int { return len(w.active) }

func overlaps(a, b sphere) bool {
	dx, dy, dz := a.x-b.x, a.y-b.y, a.z-b.z
	r := a.radius + b.radius
	return dx*dx+dy*dy+dz*dz < r*r
}
