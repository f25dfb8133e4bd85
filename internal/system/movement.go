package system

import (
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/l1jgo/asteroids/internal/component"
	"github.com/l1jgo/asteroids/internal/core/ecs"
	coresys "github.com/l1jgo/asteroids/internal/core/system"
	"github.com/l1jgo/asteroids/internal/world"
)

var (
	axisX = mgl64.Vec3{1, 0, 0}
	axisY = mgl64.Vec3{0, 1, 0}
	axisZ = mgl64.Vec3{0, 0, 1}
)

// MovementSystem is the kinematic integrator. Phase 1 (Update).
//
// Each tick runs four passes over all entities, in this order:
//  1. velocity += acceleration * dt
//  2. position += velocity * dt
//  3. confinement wrap for entities carrying the ConfinedToPlayArea marker
//  4. orientation rotated about local X, Y, Z by angular velocity * dt
type MovementSystem struct {
	world   *world.State
	radius  float64
	epsilon float64
}

func NewMovementSystem(ws *world.State, radius, epsilon float64) *MovementSystem {
	return &MovementSystem{world: ws, radius: radius, epsilon: epsilon}
}

func (s *MovementSystem) Phase() coresys.Phase { return coresys.PhaseUpdate }

func (s *MovementSystem) Update(dt time.Duration) {
	secs := dt.Seconds()
	ws := s.world

	ecs.Each2(ws.Accelerations, ws.Velocities, func(_ ecs.EntityID, a *component.Acceleration, v *component.Velocity) {
		v.Value = v.Value.Add(a.Value.Mul(secs))
	})

	ecs.Each2(ws.Velocities, ws.Transforms, func(_ ecs.EntityID, v *component.Velocity, t *component.Transform) {
		t.Translation = t.Translation.Add(v.Value.Mul(secs))
	})

	ecs.EachTagged(ws.Confined, ws.Transforms, func(_ ecs.EntityID, t *component.Transform) {
		if p, wrapped := Confine(t.Translation, s.radius, s.epsilon); wrapped {
			t.Translation = p
		}
	})

	ecs.Each2(ws.AngularVelocities, ws.Transforms, func(_ ecs.EntityID, w *component.AngularVelocity, t *component.Transform) {
		t.RotateLocal(axisX, w.Value.X()*secs)
		t.RotateLocal(axisY, w.Value.Y()*secs)
		t.RotateLocal(axisZ, w.Value.Z()*secs)
	})
}

// Confine sends a position at or beyond radius to the opposite side of the
// play area, just outside the boundary by epsilon.
func Confine(p mgl64.Vec3, radius, epsilon float64) (mgl64.Vec3, bool) {
	if p.Len() < radius {
		return p, false
	}
	return component.NormalizeOrZero(p).Mul(-(radius + epsilon)), true
}
