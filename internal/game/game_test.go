package game

import (
	"testing"
	"time"

	"github.com/l1jgo/asteroids/internal/component"
	"github.com/l1jgo/asteroids/internal/config"
	"github.com/l1jgo/asteroids/internal/core/ecs"
	"github.com/l1jgo/asteroids/internal/core/event"
	"github.com/l1jgo/asteroids/internal/input"
	"github.com/l1jgo/asteroids/internal/state"
	"github.com/l1jgo/asteroids/internal/system"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const tick = 100 * time.Millisecond

func newTestGame(t *testing.T, cfg *config.Config) (*Game, *system.ContactQueue) {
	t.Helper()
	if cfg == nil {
		cfg = config.Default()
	}
	q := &system.ContactQueue{}
	g, err := New(cfg, zap.NewNop(), WithSeed(7), WithContactSource(q))
	require.NoError(t, err)
	t.Cleanup(g.Close)
	return g, q
}

func (g *Game) press(keys ...input.Key) {
	g.Tick(tick, keys)
}

// damager creates a health-less entity dealing amount on contact.
func damager(g *Game, amount float64) ecs.EntityID {
	ws := g.World()
	id := ws.ECS.CreateEntity()
	ws.CollisionDamages.Set(id, &component.CollisionDamage{Amount: amount})
	return id
}

func TestNewGame(t *testing.T) {
	g, _ := newTestGame(t, nil)
	hud := g.HUD()
	require.Equal(t, state.Start, hud.State)
	require.False(t, hud.HasPlayer)
	require.Equal(t, 15, hud.Entities)
	require.Equal(t, 15, g.World().Satellites.Len())

	g.press()
	require.Equal(t, uint64(1), g.Ticks())
	require.Equal(t, state.Start, g.HUD().State)
}

func TestNewGame_InvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Weapon.FireRate = 0
	_, err := New(cfg, nil)
	require.Error(t, err)

	cfg = config.Default()
	cfg.Input.Keymap = "does-not-exist.yaml"
	_, err = New(cfg, nil)
	require.ErrorContains(t, err, "keymap")
}

func TestGameFlow(t *testing.T) {
	g, q := newTestGame(t, nil)
	ws := g.World()

	g.press(input.Space)
	require.True(t, ws.Game.Is(state.InGame))
	ship, err := ws.Spaceship()
	require.NoError(t, err)
	light := ws.ECS.Children(ship)[0]
	firstGame := ws.GameID

	g.press()
	hud := g.HUD()
	require.True(t, hud.HasPlayer)
	require.Equal(t, 100.0, hud.HealthPercent)

	// A killing blow ends the game and sweeps the ship and its light.
	rock := damager(g, 500)
	q.Push(event.Contact{Kind: event.ContactStarted, A: rock, B: ship})
	g.press()
	require.True(t, ws.Game.Is(state.GameOver))
	require.False(t, ws.ECS.Alive(ship))
	require.False(t, ws.ECS.Alive(light))
	require.True(t, ws.ECS.Alive(rock), "entities without health survive the sweep")
	require.Equal(t, 15, ws.Satellites.Len())

	g.press(input.Space)
	require.True(t, ws.Game.Is(state.Start))
	g.press()
	g.press(input.Space)
	require.True(t, ws.Game.Is(state.InGame))
	require.Equal(t, 1, ws.Spaceships.Len())
	require.NotEqual(t, firstGame, ws.GameID)
	require.Zero(t, g.HUD().Score)
}

func TestAsteroidLifecycle(t *testing.T) {
	g, q := newTestGame(t, nil)
	ws := g.World()
	g.press(input.Space)

	for i := 0; i < 24; i++ {
		g.press()
	}
	require.Zero(t, ws.Asteroids.Len())
	g.press()
	require.Equal(t, 1, ws.Asteroids.Len())

	rock := ws.Asteroids.IDs()[0]
	tr, _ := ws.Transforms.Get(rock)
	require.Greater(t, tr.Translation.Len(), 75.0)

	// Partial damage shrinks the asteroid.
	h, _ := ws.Healths.Get(rock)
	start := h.Value
	hit := damager(g, 1)
	q.Push(event.Contact{Kind: event.ContactStarted, A: hit, B: rock})
	g.press()
	require.InDelta(t, start-1, h.Value, 1e-12)
	require.InDelta(t, (start-1)/15+1, tr.Scale.X(), 1e-12)
	dmg, _ := ws.CollisionDamages.Get(rock)
	require.InDelta(t, start-1, dmg.Amount, 1e-12)

	// A lethal hit scores and removes it before the next tick.
	kill := damager(g, 100)
	q.Push(event.Contact{Kind: event.ContactStarted, A: kill, B: rock})
	g.press()
	require.False(t, ws.ECS.Alive(rock))
	require.Equal(t, 1.0, g.HUD().Score)
}

func TestPauseFreezesSimulation(t *testing.T) {
	g, _ := newTestGame(t, nil)
	ws := g.World()
	g.press(input.Space)
	for i := 0; i < 25; i++ {
		g.press()
	}
	rock := ws.Asteroids.IDs()[0]
	tr, _ := ws.Transforms.Get(rock)

	g.press(input.Escape)
	require.True(t, ws.Game.Is(state.Paused))
	before := tr.Translation
	for i := 0; i < 30; i++ {
		g.press()
	}
	require.Equal(t, before, tr.Translation)
	require.Equal(t, 1, ws.Asteroids.Len())

	g.press(input.Escape)
	require.True(t, ws.Game.Is(state.InGame))
	g.press()
	require.NotEqual(t, before, tr.Translation)
}

func TestResumeResetsScore(t *testing.T) {
	g, _ := newTestGame(t, nil)
	ws := g.World()
	g.press(input.Space)
	ws.Score.Add(3)

	g.press(input.Escape)
	require.True(t, ws.Game.Is(state.Paused))
	g.press()
	require.Equal(t, 3.0, g.HUD().Score)

	g.press(input.Escape)
	require.True(t, ws.Game.Is(state.InGame))
	require.Zero(t, g.HUD().Score)
	require.Equal(t, 1, ws.Spaceships.Len(), "resuming keeps the ship")
}

func TestFiring(t *testing.T) {
	g, _ := newTestGame(t, nil)
	ws := g.World()
	g.press(input.Space)
	g.press()

	g.press(input.Space)
	g.press(input.Space)
	require.Equal(t, 1, ws.Missiles.Len())
	require.True(t, ws.Game.Is(state.InGame), "continue does nothing in game")
}

func TestQuit(t *testing.T) {
	g, _ := newTestGame(t, nil)
	require.False(t, g.QuitRequested())
	g.press(input.KeyQ)
	require.True(t, g.QuitRequested())
}

func TestShippedConfig(t *testing.T) {
	cfg, err := config.Load("../../config/asteroids.toml")
	require.NoError(t, err)
	cfg.Input.Keymap = "../../config/keymap.yaml"
	cfg.Scripting.Dir = "../../scripts"

	g, err := New(cfg, zap.NewNop(), WithSeed(1))
	require.NoError(t, err)
	defer g.Close()
	require.NotNil(t, g.scripts)

	g.Tick(cfg.Simulation.TickRate, []input.Key{input.Space})
	require.True(t, g.World().Game.Is(state.InGame))
	for i := 0; i < 200; i++ {
		g.Tick(cfg.Simulation.TickRate, nil)
	}
	require.Equal(t, 1, g.World().Asteroids.Len())
}
