package physics

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/l1jgo/asteroids/internal/component"
	"github.com/l1jgo/asteroids/internal/core/ecs"
	"github.com/l1jgo/asteroids/internal/core/event"
	"github.com/stretchr/testify/require"
)

type body struct {
	id ecs.EntityID
	c  *component.Collider
	t  *component.Transform
}

type bodies []*body

func (b bodies) EachCollider(fn func(ecs.EntityID, *component.Collider, *component.Transform)) {
	for _, x := range b {
		fn(x.id, x.c, x.t)
	}
}

func TestSensorWorld(t *testing.T) {
	a := &body{id: 1, c: component.Ball(1), t: component.NewTransform(mgl64.Vec3{0, 0, 0})}
	b := &body{id: 2, c: component.Ball(1), t: component.NewTransform(mgl64.Vec3{1.5, 0, 0})}
	c := &body{id: 3, c: component.Ball(1), t: component.NewTransform(mgl64.Vec3{10, 0, 0})}
	set := bodies{a, b, c}
	w := NewSensorWorld(&set)

	require.Equal(t, []event.Contact{{Kind: event.ContactStarted, A: 1, B: 2}}, w.DrainContacts())
	require.Equal(t, 1, w.Active())

	// Still touching: no new notification.
	require.Empty(t, w.DrainContacts())

	// Scale grows c until it reaches b.
	c.t.Scale = component.Splat(8)
	require.Equal(t, []event.Contact{{Kind: event.ContactStarted, A: 2, B: 3}}, w.DrainContacts())

	// Removing a body ends its contacts.
	set = bodies{b, c}
	require.Equal(t, []event.Contact{{Kind: event.ContactEnded, A: 1, B: 2}}, w.DrainContacts())

	b.t.Translation = mgl64.Vec3{-20, 0, 0}
	require.Equal(t, []event.Contact{{Kind: event.ContactEnded, A: 2, B: 3}}, w.DrainContacts())
	require.Zero(t, w.Active())
}

func TestBoxBoundingRadius(t *testing.T) {
	box := component.Cuboid(4, 1, 5)
	ball := &body{id: 1, c: component.Ball(0.5), t: component.NewTransform(mgl64.Vec3{0, 0, 6.9})}
	ship := &body{id: 2, c: box, t: component.NewTransform(mgl64.Vec3{})}
	w := NewSensorWorld(bodies{ball, ship})

	got := w.DrainContacts()
	require.Len(t, got, 1)
	require.Equal(t, event.ContactStarted, got[0].Kind)
}
