package system

import (
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
	"github.com/l1jgo/asteroids/internal/component"
	"github.com/l1jgo/asteroids/internal/config"
	"github.com/l1jgo/asteroids/internal/core/ecs"
	"github.com/l1jgo/asteroids/internal/core/event"
	coresys "github.com/l1jgo/asteroids/internal/core/system"
	"github.com/l1jgo/asteroids/internal/core/timer"
	"github.com/l1jgo/asteroids/internal/input"
	"github.com/l1jgo/asteroids/internal/state"
	"github.com/l1jgo/asteroids/internal/world"
	"go.uber.org/zap"
)

// Spaceship child light, relative to the ship.
var (
	lightOffset    = mgl64.Vec3{0, 2, 2}
	lightIntensity = 100_000.0
)

// SpaceshipSpawner creates the player ship, with its light as a child
// entity, on the Start -> InGame edge only; resuming from pause never spawns.
type SpaceshipSpawner struct {
	world *world.State
	cfg   config.SpaceshipConfig
	model string
	log   *zap.Logger
}

func NewSpaceshipSpawner(ws *world.State, cfg config.SpaceshipConfig, model string, log *zap.Logger) *SpaceshipSpawner {
	s := &SpaceshipSpawner{world: ws, cfg: cfg, model: model, log: log}
	ws.Game.OnTransition(state.Start, state.InGame, func() { s.Spawn() })
	return s
}

// Spawn creates the ship now and starts a new game id.
func (s *SpaceshipSpawner) Spawn() ecs.EntityID {
	ws := s.world
	start := mgl64.Vec3{s.cfg.StartPosition[0], s.cfg.StartPosition[1], s.cfg.StartPosition[2]}
	he := s.cfg.HalfExtents

	id := spawnMovingObject(ws, movingObject{
		transform: component.NewTransform(start),
		collider:  component.Cuboid(he[0], he[1], he[2]),
		model:     s.model,
	})
	ws.Spaceships.Add(id)
	ws.CollisionDamages.Set(id, &component.CollisionDamage{Amount: s.cfg.CollisionDamage})
	ws.SetHealth(id, s.cfg.Health)
	ws.DespawnOnDie.Add(id)
	ws.Confined.Add(id)

	light := ws.ECS.CreateEntity()
	ws.Lights.Set(light, &component.PointLight{Offset: lightOffset, Intensity: lightIntensity, Shadows: true})
	ws.ECS.SetParent(light, id)

	ws.GameID = uuid.NewString()
	s.log.Info("spaceship spawned",
		zap.String("game", ws.GameID),
		zap.Uint64("entity", uint64(id)),
	)
	return id
}

// SpaceshipMovementSystem steers the player ship from held keys.
// Phase 0 (Input), InGame only.
//
// Turning has no inertia: a fixed yaw rate while a turn key is held, right
// checked first. Roll is a fixed angle per tick, roll-left checked first.
// Drag always applies. Thrust adds straight to velocity while the speed
// along the heading is below the cap.
type SpaceshipMovementSystem struct {
	world    *world.State
	cfg      config.SpaceshipConfig
	tracker  *input.Tracker
	bindings input.Bindings
	log      *zap.Logger
}

func NewSpaceshipMovementSystem(ws *world.State, cfg config.SpaceshipConfig, tracker *input.Tracker, bindings input.Bindings, log *zap.Logger) *SpaceshipMovementSystem {
	return &SpaceshipMovementSystem{world: ws, cfg: cfg, tracker: tracker, bindings: bindings, log: log}
}

func (s *SpaceshipMovementSystem) Phase() coresys.Phase { return coresys.PhaseInput }

func (s *SpaceshipMovementSystem) Update(dt time.Duration) {
	id, err := s.world.Spaceship()
	if err != nil {
		s.log.Warn("can't do spaceship movement", zap.Error(err))
		return
	}
	t, ok := s.world.Transforms.Get(id)
	if !ok {
		return
	}
	v, ok := s.world.Velocities.Get(id)
	if !ok {
		return
	}
	keys := s.tracker.Snapshot()
	secs := dt.Seconds()

	rotation := 0.0
	if s.bindings.Held(keys, input.RotateRight) {
		rotation = -s.cfg.RotationSpeed * secs
	} else if s.bindings.Held(keys, input.RotateLeft) {
		rotation = s.cfg.RotationSpeed * secs
	}
	if rotation != 0 {
		t.RotateWorldY(rotation)
	}

	roll := 0.0
	if s.bindings.Held(keys, input.RollLeft) {
		roll = -s.cfg.RollSpeed
	} else if s.bindings.Held(keys, input.RollRight) {
		roll = s.cfg.RollSpeed
	}
	t.RotateLocal(axisZ, roll)

	// The spaceship slows down over time.
	v.Value = v.Value.Sub(v.Value.Mul(s.cfg.Drag * secs))

	if s.bindings.Held(keys, input.Thrust) {
		heading := t.Heading()
		if heading.Dot(v.Value) < s.cfg.MaxSpeed {
			v.Value = v.Value.Add(heading.Mul(s.cfg.Acceleration))
		}
	}
}

// SpaceshipWeaponSystem fires missiles while the fire key is held, at most
// once per cooldown period. The cooldown only runs while firing.
// Phase 0 (Input), InGame only.
type SpaceshipWeaponSystem struct {
	world    *world.State
	cfg      config.WeaponConfig
	model    string
	tracker  *input.Tracker
	bindings input.Bindings
	cooldown *timer.Timer
}

func NewSpaceshipWeaponSystem(ws *world.State, cfg config.WeaponConfig, model string, tracker *input.Tracker, bindings input.Bindings) *SpaceshipWeaponSystem {
	s := &SpaceshipWeaponSystem{
		world:    ws,
		cfg:      cfg,
		model:    model,
		tracker:  tracker,
		bindings: bindings,
		cooldown: timer.FromSeconds(1/cfg.FireRate, timer.Repeating),
	}
	ws.Game.OnTransition(state.Start, state.InGame, s.cooldown.Reset)
	return s
}

func (s *SpaceshipWeaponSystem) Phase() coresys.Phase { return coresys.PhaseInput }

func (s *SpaceshipWeaponSystem) Update(dt time.Duration) {
	id, err := s.world.Spaceship()
	if err != nil {
		return
	}
	t, ok := s.world.Transforms.Get(id)
	if !ok {
		return
	}
	if !s.bindings.Held(s.tracker.Snapshot(), input.Fire) {
		return
	}
	s.cooldown.Tick(dt)
	if !s.cooldown.JustFinished() {
		return
	}
	s.fire(t)
}

func (s *SpaceshipWeaponSystem) fire(ship *component.Transform) ecs.EntityID {
	ws := s.world
	heading := ship.Heading()
	tr := component.NewTransform(ship.Translation.Add(heading.Mul(s.cfg.ForwardOffset)))
	tr.Rotation = ship.Rotation

	id := spawnMovingObject(ws, movingObject{
		transform: tr,
		collider:  component.Ball(s.cfg.MissileRadius),
		velocity:  heading.Mul(s.cfg.MissileSpeed),
		model:     s.model,
	})
	ws.Missiles.Add(id)
	ws.CollisionDamages.Set(id, &component.CollisionDamage{Amount: s.cfg.MissileDamage})
	ws.SetHealth(id, s.cfg.MissileHealth)
	ws.DespawnOnDie.Add(id)
	// Missiles start near the boundary, so they skip the latch.
	ws.Confined.Add(id)
	if s.cfg.MissileLifetime > 0 {
		ws.DespawnTimers.Set(id, &component.DespawnTimer{Remaining: s.cfg.MissileLifetime})
	}
	return id
}

// SpaceshipShieldSystem marks the ship as shielded while the shield key is
// held. Nothing consumes or removes the marker yet. Phase 0 (Input), InGame only.
type SpaceshipShieldSystem struct {
	world    *world.State
	tracker  *input.Tracker
	bindings input.Bindings
}

func NewSpaceshipShieldSystem(ws *world.State, tracker *input.Tracker, bindings input.Bindings) *SpaceshipShieldSystem {
	return &SpaceshipShieldSystem{world: ws, tracker: tracker, bindings: bindings}
}

func (s *SpaceshipShieldSystem) Phase() coresys.Phase { return coresys.PhaseInput }

func (s *SpaceshipShieldSystem) Update(_ time.Duration) {
	id, err := s.world.Spaceship()
	if err != nil {
		return
	}
	if s.bindings.Held(s.tracker.Snapshot(), input.Shield) {
		s.world.Shields.Add(id)
	}
}

// SpaceshipDeathSystem ends the game when the player ship dies.
// Phase 2 (PostUpdate).
type SpaceshipDeathSystem struct {
	world *world.State
	log   *zap.Logger
}

func NewSpaceshipDeathSystem(ws *world.State, log *zap.Logger) *SpaceshipDeathSystem {
	return &SpaceshipDeathSystem{world: ws, log: log}
}

func (s *SpaceshipDeathSystem) Phase() coresys.Phase { return coresys.PhasePostUpdate }

func (s *SpaceshipDeathSystem) Update(_ time.Duration) {
	for _, ev := range event.Read[event.Died](s.world.Bus) {
		if !s.world.Spaceships.Has(ev.Entity) {
			continue
		}
		s.world.Game.Set(state.GameOver)
		s.log.Info("spaceship destroyed",
			zap.String("game", s.world.GameID),
			zap.Float64("score", s.world.Score.Value()),
		)
	}
}
