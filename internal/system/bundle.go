package system

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/l1jgo/asteroids/internal/component"
	"github.com/l1jgo/asteroids/internal/core/ecs"
	"github.com/l1jgo/asteroids/internal/world"
)

// movingObject is the component set shared by asteroids, the spaceship and
// missiles.
type movingObject struct {
	transform       *component.Transform
	collider        *component.Collider
	velocity        mgl64.Vec3
	acceleration    mgl64.Vec3
	angularVelocity mgl64.Vec3
	model           string
}

func spawnMovingObject(ws *world.State, m movingObject) ecs.EntityID {
	id := ws.ECS.CreateEntity()
	ws.Transforms.Set(id, m.transform)
	ws.Colliders.Set(id, m.collider)
	ws.Velocities.Set(id, &component.Velocity{Value: m.velocity})
	ws.Accelerations.Set(id, &component.Acceleration{Value: m.acceleration})
	ws.AngularVelocities.Set(id, &component.AngularVelocity{Value: m.angularVelocity})
	ws.Models.Set(id, &component.Model{Handle: m.model})
	return id
}
