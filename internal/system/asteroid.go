package system

import (
	"math/rand"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/l1jgo/asteroids/internal/component"
	"github.com/l1jgo/asteroids/internal/config"
	"github.com/l1jgo/asteroids/internal/core/ecs"
	coresys "github.com/l1jgo/asteroids/internal/core/system"
	"github.com/l1jgo/asteroids/internal/core/timer"
	"github.com/l1jgo/asteroids/internal/state"
	"github.com/l1jgo/asteroids/internal/world"
	"go.uber.org/zap"
)

// AsteroidFormulas derives an asteroid's size and contact damage from its
// current health. scripting.Engine implements it with Lua overrides.
type AsteroidFormulas interface {
	AsteroidScale(health float64) float64
	AsteroidDamage(health float64) float64
}

// DefaultFormulas: scale = health/15 + 1, damage = health.
type DefaultFormulas struct{}

func (DefaultFormulas) AsteroidScale(health float64) float64  { return health/15 + 1 }
func (DefaultFormulas) AsteroidDamage(health float64) float64 { return health }

// AsteroidSpawnSystem creates one asteroid per completed spawn interval.
// Phase 1 (Update). The interval timer restarts with every new game.
//
// Spawn position is rejection-sampled on the horizontal circle of radius
// DrawRadius until it lies beyond BoundaryRadius*SpawnMargin. The asteroid
// heads for a random point on the circle of radius
// BoundaryRadius*TargetRadiusFactor and spins about an unrelated random axis.
type AsteroidSpawnSystem struct {
	world    *world.State
	cfg      config.AsteroidsConfig
	radius   float64
	formulas AsteroidFormulas
	model    string
	timer    *timer.Timer
	log      *zap.Logger
}

func NewAsteroidSpawnSystem(ws *world.State, cfg config.AsteroidsConfig, boundaryRadius float64, formulas AsteroidFormulas, model string, log *zap.Logger) *AsteroidSpawnSystem {
	if formulas == nil {
		formulas = DefaultFormulas{}
	}
	s := &AsteroidSpawnSystem{
		world:    ws,
		cfg:      cfg,
		radius:   boundaryRadius,
		formulas: formulas,
		model:    model,
		timer:    timer.New(cfg.SpawnInterval, timer.Repeating),
		log:      log,
	}
	ws.Game.OnTransition(state.Start, state.InGame, s.timer.Reset)
	return s
}

func (s *AsteroidSpawnSystem) Phase() coresys.Phase { return coresys.PhaseUpdate }

func (s *AsteroidSpawnSystem) Update(dt time.Duration) {
	s.timer.Tick(dt)
	for i := 0; i < s.timer.TimesFinishedThisTick(); i++ {
		s.Spawn()
	}
}

// Spawn creates a single asteroid now.
func (s *AsteroidSpawnSystem) Spawn() ecs.EntityID {
	rng := s.world.Rand

	// Spawn the asteroid somewhere outside the play area.
	var translation mgl64.Vec3
	for {
		translation = random2DUnitVector(rng).Mul(s.cfg.DrawRadius)
		if translation.Len() > s.radius*s.cfg.SpawnMargin {
			break
		}
	}

	// Head towards the middle of the play area.
	target := random2DUnitVector(rng).Mul(s.radius * s.cfg.TargetRadiusFactor)
	velocity := component.NormalizeOrZero(target.Sub(translation)).Mul(s.cfg.Speed)
	acceleration := random2DUnitVector(rng).Mul(s.cfg.Acceleration)
	angular := random2DUnitVector(rng)

	health := s.cfg.HealthMin + rng.Float64()*(s.cfg.HealthMax-s.cfg.HealthMin)

	id := spawnMovingObject(s.world, movingObject{
		transform:       component.NewTransform(translation),
		collider:        component.Ball(s.cfg.ColliderRadius),
		velocity:        velocity,
		acceleration:    acceleration,
		angularVelocity: angular,
		model:           s.model,
	})
	ws := s.world
	if t, ok := ws.Transforms.Get(id); ok {
		t.Scale = component.Splat(s.formulas.AsteroidScale(health))
	}
	ws.CollisionDamages.Set(id, &component.CollisionDamage{Amount: s.formulas.AsteroidDamage(health)})
	ws.SetHealth(id, health)
	ws.Asteroids.Add(id)
	ws.DespawnOnDie.Add(id)

	s.log.Debug("asteroid spawned",
		zap.Uint64("entity", uint64(id)),
		zap.Float64("health", health),
		zap.Float64("x", translation.X()),
		zap.Float64("z", translation.Z()),
	)
	return id
}

// random2DUnitVector draws a direction in the XZ plane. A degenerate draw
// yields the zero vector.
func random2DUnitVector(rng *rand.Rand) mgl64.Vec3 {
	return component.NormalizeOrZero(mgl64.Vec3{rng.Float64()*2 - 1, 0, rng.Float64()*2 - 1})
}

// AsteroidAttributeSystem keeps scale and collision damage in step with
// health for asteroids whose Health changed this tick. Phase 1 (Update),
// after collision damage.
type AsteroidAttributeSystem struct {
	world    *world.State
	formulas AsteroidFormulas
}

func NewAsteroidAttributeSystem(ws *world.State, formulas AsteroidFormulas) *AsteroidAttributeSystem {
	if formulas == nil {
		formulas = DefaultFormulas{}
	}
	return &AsteroidAttributeSystem{world: ws, formulas: formulas}
}

func (s *AsteroidAttributeSystem) Phase() coresys.Phase { return coresys.PhaseUpdate }

func (s *AsteroidAttributeSystem) Update(_ time.Duration) {
	ws := s.world
	ws.EachHealthChanged(func(id ecs.EntityID, h *component.Health) {
		if !ws.Asteroids.Has(id) {
			return
		}
		if dmg, ok := ws.CollisionDamages.Get(id); ok {
			dmg.Amount = s.formulas.AsteroidDamage(h.Value)
		}
		if t, ok := ws.Transforms.Get(id); ok {
			t.Scale = component.Splat(s.formulas.AsteroidScale(h.Value))
		}
	})
}

// ConfineLatchSystem attaches ConfinedToPlayArea to an asteroid the first
// tick it is within the boundary. The marker is never removed, so once an
// asteroid is in it cannot leave. Phase 1 (Update), after movement.
type ConfineLatchSystem struct {
	world  *world.State
	radius float64
}

func NewConfineLatchSystem(ws *world.State, radius float64) *ConfineLatchSystem {
	return &ConfineLatchSystem{world: ws, radius: radius}
}

func (s *ConfineLatchSystem) Phase() coresys.Phase { return coresys.PhaseUpdate }

func (s *ConfineLatchSystem) Update(_ time.Duration) {
	ws := s.world
	ecs.EachTagged(ws.Asteroids, ws.Transforms, func(id ecs.EntityID, t *component.Transform) {
		if ws.Confined.Has(id) {
			return
		}
		if t.Translation.Len() <= s.radius {
			ws.Confined.Add(id)
		}
	})
}
