// Package game wires configuration, the simulation context and every
// gameplay system into a phase-ordered runner.
package game

import (
	"fmt"
	"time"

	"github.com/l1jgo/asteroids/internal/config"
	coresys "github.com/l1jgo/asteroids/internal/core/system"
	"github.com/l1jgo/asteroids/internal/data"
	"github.com/l1jgo/asteroids/internal/input"
	"github.com/l1jgo/asteroids/internal/physics"
	"github.com/l1jgo/asteroids/internal/scripting"
	"github.com/l1jgo/asteroids/internal/state"
	"github.com/l1jgo/asteroids/internal/system"
	"github.com/l1jgo/asteroids/internal/world"
	"go.uber.org/zap"
)

// Game is one running simulation.
type Game struct {
	cfg     *config.Config
	world   *world.State
	runner  *coresys.Runner
	input   *system.InputSystem
	scripts *scripting.Engine
	log     *zap.Logger
}

type options struct {
	seed     *int64
	contacts physics.ContactSource
}

// Option customises New.
type Option func(*options)

// WithSeed fixes the random seed, overriding simulation.seed.
func WithSeed(seed int64) Option {
	return func(o *options) { o.seed = &seed }
}

// WithContactSource replaces the built-in sensor overlap detector.
func WithContactSource(src physics.ContactSource) Option {
	return func(o *options) { o.contacts = src }
}

// New builds a game in the Start state with the decorative ring in place.
func New(cfg *config.Config, log *zap.Logger, opts ...Option) (*Game, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	bindings := input.DefaultBindings()
	if cfg.Input.Keymap != "" {
		b, err := data.LoadKeymap(cfg.Input.Keymap)
		if err != nil {
			return nil, fmt.Errorf("keymap: %w", err)
		}
		bindings = b
	}

	var formulas system.AsteroidFormulas = system.DefaultFormulas{}
	var scripts *scripting.Engine
	if cfg.Scripting.Dir != "" {
		eng, err := scripting.NewEngine(cfg.Scripting.Dir, log)
		if err != nil {
			return nil, fmt.Errorf("scripting: %w", err)
		}
		scripts = eng
		formulas = eng
	}

	seed := world.SeedFromString(cfg.Simulation.Seed)
	if o.seed != nil {
		seed = *o.seed
	}
	ws := world.NewState(seed, log)
	assets := data.NewAssetCatalog(cfg.Assets)

	contacts := o.contacts
	if contacts == nil {
		contacts = physics.NewSensorWorld(ws)
	}

	g := &Game{
		cfg:     cfg,
		world:   ws,
		runner:  coresys.NewRunner(),
		scripts: scripts,
		log:     log,
	}

	radius := cfg.Simulation.BoundaryRadius
	tracker := input.NewTracker()
	inGame := func() bool { return ws.Game.Is(state.InGame) }

	system.NewSpaceshipSpawner(ws, cfg.Spaceship, assets.Handle(data.CategorySpaceship), log)
	system.SpawnRing(ws, cfg.Ring.Satellites, radius, assets.Handle(data.CategorySatellite))

	// Phase 0: input capture, game-state input, player control.
	g.input = system.NewInputSystem(tracker)
	g.runner.Register(g.input)
	g.runner.Register(system.NewGameStateSystem(ws, tracker, bindings))
	g.runner.Register(coresys.RunIf(system.NewSpaceshipMovementSystem(ws, cfg.Spaceship, tracker, bindings, log), inGame))
	g.runner.Register(coresys.RunIf(system.NewSpaceshipWeaponSystem(ws, cfg.Weapon, assets.Handle(data.CategoryMissile), tracker, bindings), inGame))
	g.runner.Register(coresys.RunIf(system.NewSpaceshipShieldSystem(ws, tracker, bindings), inGame))

	// Phase 1: entity updates.
	g.runner.Register(coresys.RunIf(system.NewAsteroidSpawnSystem(ws, cfg.Asteroids, radius, formulas, assets.Handle(data.CategoryAsteroid), log), inGame))
	g.runner.Register(coresys.RunIf(system.NewMovementSystem(ws, radius, cfg.Simulation.WrapEpsilon), inGame))
	g.runner.Register(coresys.RunIf(system.NewConfineLatchSystem(ws, radius), inGame))
	g.runner.Register(coresys.RunIf(system.NewCollisionSystem(ws, contacts), inGame))
	g.runner.Register(coresys.RunIf(system.NewAsteroidAttributeSystem(ws, formulas), inGame))
	g.runner.Register(coresys.RunIf(system.NewHealthSystem(ws, log), inGame))
	g.runner.Register(coresys.RunIf(system.NewDespawnTimerSystem(ws), inGame))

	// Phase 2: death consumers.
	g.runner.Register(system.NewScoreSystem(ws))
	g.runner.Register(system.NewSpaceshipDeathSystem(ws, log))
	g.runner.Register(system.NewDespawnOnDieSystem(ws, log))

	// Phase 3: transitions, then destruction.
	g.runner.Register(system.NewTransitionSystem(ws))
	g.runner.Register(system.NewCleanupSystem(ws))

	log.Info("simulation ready",
		zap.Int64("seed", seed),
		zap.Int("systems", g.runner.Len()),
		zap.Int("assets", assets.Count()),
		zap.Int("satellites", ws.Satellites.Len()),
	)
	return g, nil
}

// Tick runs one full frame with the given keys held.
func (g *Game) Tick(dt time.Duration, held []input.Key) {
	g.input.Feed(held)
	g.runner.Tick(dt)
}

// World exposes the simulation context.
func (g *Game) World() *world.State { return g.world }

// HUD returns the read-only presentation view.
func (g *Game) HUD() world.HUD { return g.world.HUD(g.cfg.Spaceship.Health) }

// QuitRequested reports whether the player asked to exit from the start screen.
func (g *Game) QuitRequested() bool { return g.world.Game.QuitRequested() }

// Ticks returns the number of completed ticks.
func (g *Game) Ticks() uint64 { return g.runner.Ticks() }

// Close releases the Lua VM, if any.
func (g *Game) Close() {
	if g.scripts != nil {
		g.scripts.Close()
	}
}
