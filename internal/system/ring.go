package system

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/l1jgo/asteroids/internal/component"
	"github.com/l1jgo/asteroids/internal/core/ecs"
	"github.com/l1jgo/asteroids/internal/world"
)

// SpawnRing places count decorative satellites evenly around the boundary
// circle. They carry no Health, so game-over sweeps leave them alone.
func SpawnRing(ws *world.State, count int, radius float64, model string) []ecs.EntityID {
	ids := make([]ecs.EntityID, 0, count)
	for i := 0; i < count; i++ {
		theta := 2 * math.Pi / float64(count) * float64(i)
		pos := mgl64.Vec3{math.Sin(theta) * radius, 0, math.Cos(theta) * radius}

		id := ws.ECS.CreateEntity()
		ws.Transforms.Set(id, component.NewTransform(pos))
		ws.Models.Set(id, &component.Model{Handle: model})
		ws.Satellites.Add(id)
		ids = append(ids, id)
	}
	return ids
}
