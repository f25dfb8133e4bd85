package system

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/l1jgo/asteroids/internal/component"
	"github.com/stretchr/testify/require"
)

func requireVec(t *testing.T, want, got mgl64.Vec3) {
	t.Helper()
	for i := 0; i < 3; i++ {
		require.InDelta(t, want[i], got[i], 1e-9, "component %d of %v", i, got)
	}
}

func TestMovement_Integrates(t *testing.T) {
	ws := newTestWorld(t)
	a := spawnAt(ws, mgl64.Vec3{})
	ws.Velocities.Set(a, &component.Velocity{Value: mgl64.Vec3{1, 0, 0}})
	ws.Accelerations.Set(a, &component.Acceleration{Value: mgl64.Vec3{2, 4, -6}})

	b := spawnAt(ws, mgl64.Vec3{5, 0, 0})
	ws.Velocities.Set(b, &component.Velocity{Value: mgl64.Vec3{0, 0, 3}})

	NewMovementSystem(ws, 50, 0.01).Update(tick)

	va, _ := ws.Velocities.Get(a)
	requireVec(t, mgl64.Vec3{1.2, 0.4, -0.6}, va.Value)
	ta, _ := ws.Transforms.Get(a)
	requireVec(t, mgl64.Vec3{0.12, 0.04, -0.06}, ta.Translation)

	vb, _ := ws.Velocities.Get(b)
	requireVec(t, mgl64.Vec3{0, 0, 3}, vb.Value)
	tb, _ := ws.Transforms.Get(b)
	requireVec(t, mgl64.Vec3{5, 0, 0.3}, tb.Translation)
}

func TestMovement_Confinement(t *testing.T) {
	ws := newTestWorld(t)
	confined := spawnAt(ws, mgl64.Vec3{30, 0, 40})
	ws.Confined.Add(confined)
	onEdge := spawnAt(ws, mgl64.Vec3{0, 0, 50})
	ws.Confined.Add(onEdge)
	inside := spawnAt(ws, mgl64.Vec3{0, 0, 20})
	ws.Confined.Add(inside)
	free := spawnAt(ws, mgl64.Vec3{60, 0, 0})

	NewMovementSystem(ws, 50, 0.01).Update(tick)

	tc, _ := ws.Transforms.Get(confined)
	require.InDelta(t, 50.01, tc.Translation.Len(), 1e-9)
	requireVec(t, mgl64.Vec3{-30.006, 0, -40.008}, tc.Translation)

	te, _ := ws.Transforms.Get(onEdge)
	requireVec(t, mgl64.Vec3{0, 0, -50.01}, te.Translation)

	ti, _ := ws.Transforms.Get(inside)
	requireVec(t, mgl64.Vec3{0, 0, 20}, ti.Translation)

	tf, _ := ws.Transforms.Get(free)
	requireVec(t, mgl64.Vec3{60, 0, 0}, tf.Translation)
}

func TestConfine(t *testing.T) {
	p := mgl64.Vec3{10, 70, -3}
	out, wrapped := Confine(p, 50, 0.01)
	require.True(t, wrapped)
	require.InDelta(t, 50.01, out.Len(), 1e-9)
	require.InDelta(t, -1, out.Normalize().Dot(p.Normalize()), 1e-12)

	out, wrapped = Confine(mgl64.Vec3{1, 2, 3}, 50, 0.01)
	require.False(t, wrapped)
	requireVec(t, mgl64.Vec3{1, 2, 3}, out)
}

func TestMovement_Spin(t *testing.T) {
	ws := newTestWorld(t)
	id := spawnAt(ws, mgl64.Vec3{})
	ws.AngularVelocities.Set(id, &component.AngularVelocity{Value: mgl64.Vec3{0, 5 * math.Pi, 0}})

	NewMovementSystem(ws, 50, 0.01).Update(tick)

	tr, _ := ws.Transforms.Get(id)
	requireVec(t, mgl64.Vec3{1, 0, 0}, tr.Heading())
}
