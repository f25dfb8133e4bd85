package system

import (
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/l1jgo/asteroids/internal/component"
	"github.com/l1jgo/asteroids/internal/config"
	"github.com/l1jgo/asteroids/internal/core/ecs"
	"github.com/l1jgo/asteroids/internal/input"
	"github.com/l1jgo/asteroids/internal/state"
	"github.com/l1jgo/asteroids/internal/world"
	"go.uber.org/zap"
)

const tick = 100 * time.Millisecond

func newTestWorld(t *testing.T) *world.State {
	t.Helper()
	return world.NewState(1, zap.NewNop())
}

// enterGame drives the machine from Start into InGame, running every hook.
func enterGame(ws *world.State) {
	ws.Game.Set(state.InGame)
	ws.Game.Apply()
}

func spawnAt(ws *world.State, pos mgl64.Vec3) ecs.EntityID {
	id := ws.ECS.CreateEntity()
	ws.Transforms.Set(id, component.NewTransform(pos))
	return id
}

func press(tr *input.Tracker, keys ...input.Key) {
	tr.Capture(keys)
}

func testShip(ws *world.State) (ecs.EntityID, config.SpaceshipConfig) {
	cfg := config.Default().Spaceship
	id := NewSpaceshipSpawner(ws, cfg, "ship", zap.NewNop()).Spawn()
	return id, cfg
}
