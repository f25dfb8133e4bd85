package system

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/l1jgo/asteroids/internal/core/event"
	"github.com/stretchr/testify/require"
)

func TestHealth(t *testing.T) {
	ws := newTestWorld(t)
	sys := NewHealthSystem(ws, ws.Log())

	dead := spawnAt(ws, mgl64.Vec3{})
	ws.SetHealth(dead, 5)
	zero := spawnAt(ws, mgl64.Vec3{})
	ws.SetHealth(zero, 5)
	alive := spawnAt(ws, mgl64.Vec3{})
	ws.SetHealth(alive, 5)
	ws.EndTick()

	ws.ApplyDamage(dead, 7)
	ws.ApplyDamage(zero, 5)
	ws.ApplyDamage(alive, 1)
	sys.Update(tick)

	require.Equal(t, []event.Died{{Entity: dead}, {Entity: zero}}, event.Read[event.Died](ws.Bus))

	// Unchanged health is not re-examined on later ticks.
	ws.EndTick()
	sys.Update(tick)
	require.Empty(t, event.Read[event.Died](ws.Bus))

	ws.ApplyDamage(dead, 1)
	sys.Update(tick)
	require.Len(t, event.Read[event.Died](ws.Bus), 1)
}

func TestApplyDamageWithoutHealth(t *testing.T) {
	ws := newTestWorld(t)
	id := spawnAt(ws, mgl64.Vec3{})
	require.False(t, ws.ApplyDamage(id, 3))
	require.False(t, ws.Healths.Has(id))
	require.False(t, ws.HealthChanged(id))
}
