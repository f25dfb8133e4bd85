package world

import (
	"errors"
	"math/rand"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/l1jgo/asteroids/internal/component"
	"github.com/l1jgo/asteroids/internal/core/ecs"
	"github.com/l1jgo/asteroids/internal/core/event"
	"github.com/l1jgo/asteroids/internal/state"
	"go.uber.org/zap"
)

var (
	ErrNoSpaceship        = errors.New("there's no spaceship")
	ErrMultipleSpaceships = errors.New("there's more than one spaceship")
)

// State is the simulation context handed to every system: the ECS world,
// every component store, the per-tick event lists, the random source, the
// scoreboard and the game-state machine. Accessed only from the game loop
// goroutine, so no locks are needed.
type State struct {
	ECS  *ecs.World
	Bus  *event.Bus
	Rand *rand.Rand
	Game *state.Machine

	Transforms        *ecs.PtrComponentStore[component.Transform]
	Velocities        *ecs.PtrComponentStore[component.Velocity]
	Accelerations     *ecs.PtrComponentStore[component.Acceleration]
	AngularVelocities *ecs.PtrComponentStore[component.AngularVelocity]
	Healths           *ecs.PtrComponentStore[component.Health]
	CollisionDamages  *ecs.PtrComponentStore[component.CollisionDamage]
	Colliders         *ecs.PtrComponentStore[component.Collider]
	DespawnTimers     *ecs.PtrComponentStore[component.DespawnTimer]
	Models            *ecs.PtrComponentStore[component.Model]
	Lights            *ecs.PtrComponentStore[component.PointLight]

	DespawnOnDie *ecs.TagStore
	Confined     *ecs.TagStore // ConfinedToPlayArea; never removed once added
	Asteroids    *ecs.TagStore
	Spaceships   *ecs.TagStore
	Missiles     *ecs.TagStore
	Shields      *ecs.TagStore
	Satellites   *ecs.TagStore

	// healthChanged holds entities whose Health was written this tick.
	healthChanged *ecs.TagStore

	Score  Scoreboard
	GameID string // set on every new game

	log *zap.Logger
}

// NewState builds an empty simulation context. seed drives every random draw.
func NewState(seed int64, log *zap.Logger) *State {
	if log == nil {
		log = zap.NewNop()
	}
	s := &State{
		ECS:  ecs.NewWorld(),
		Bus:  event.NewBus(),
		Rand: rand.New(rand.NewSource(seed)),
		Game: state.NewMachine(log),

		Transforms:        ecs.NewPtrComponentStore[component.Transform](),
		Velocities:        ecs.NewPtrComponentStore[component.Velocity](),
		Accelerations:     ecs.NewPtrComponentStore[component.Acceleration](),
		AngularVelocities: ecs.NewPtrComponentStore[component.AngularVelocity](),
		Healths:           ecs.NewPtrComponentStore[component.Health](),
		CollisionDamages:  ecs.NewPtrComponentStore[component.CollisionDamage](),
		Colliders:         ecs.NewPtrComponentStore[component.Collider](),
		DespawnTimers:     ecs.NewPtrComponentStore[component.DespawnTimer](),
		Models:            ecs.NewPtrComponentStore[component.Model](),
		Lights:            ecs.NewPtrComponentStore[component.PointLight](),

		DespawnOnDie: ecs.NewTagStore(),
		Confined:     ecs.NewTagStore(),
		Asteroids:    ecs.NewTagStore(),
		Spaceships:   ecs.NewTagStore(),
		Missiles:     ecs.NewTagStore(),
		Shields:      ecs.NewTagStore(),
		Satellites:   ecs.NewTagStore(),

		healthChanged: ecs.NewTagStore(),

		log: log,
	}

	reg := s.ECS.Registry()
	reg.Register(s.Transforms)
	reg.Register(s.Velocities)
	reg.Register(s.Accelerations)
	reg.Register(s.AngularVelocities)
	reg.Register(s.Healths)
	reg.Register(s.CollisionDamages)
	reg.Register(s.Colliders)
	reg.Register(s.DespawnTimers)
	reg.Register(s.Models)
	reg.Register(s.Lights)
	reg.Register(s.DespawnOnDie)
	reg.Register(s.Confined)
	reg.Register(s.Asteroids)
	reg.Register(s.Spaceships)
	reg.Register(s.Missiles)
	reg.Register(s.Shields)
	reg.Register(s.Satellites)
	reg.Register(s.healthChanged)
	return s
}

// SeedFromString hashes a configured seed string. An empty string yields a
// wall-clock seed.
func SeedFromString(seed string) int64 {
	if seed == "" {
		return time.Now().UnixNano()
	}
	return int64(xxhash.Sum64String(seed))
}

// Log returns the logger shared by the simulation.
func (s *State) Log() *zap.Logger { return s.log }

// SetHealth attaches or overwrites Health and marks it changed this tick.
func (s *State) SetHealth(id ecs.EntityID, v float64) {
	if h, ok := s.Healths.Get(id); ok {
		h.Value = v
	} else {
		s.Healths.Set(id, &component.Health{Value: v})
	}
	s.healthChanged.Add(id)
}

// ApplyDamage subtracts amount from id's Health. Returns false when id has
// no Health, in which case nothing happens.
func (s *State) ApplyDamage(id ecs.EntityID, amount float64) bool {
	h, ok := s.Healths.Get(id)
	if !ok {
		return false
	}
	h.Value -= amount
	s.healthChanged.Add(id)
	return true
}

// EachHealthChanged visits entities whose Health was written this tick, in
// write order.
func (s *State) EachHealthChanged(fn func(ecs.EntityID, *component.Health)) {
	ecs.EachTagged(s.healthChanged, s.Healths, fn)
}

// HealthChanged reports whether id's Health was written this tick.
func (s *State) HealthChanged(id ecs.EntityID) bool {
	return s.healthChanged.Has(id)
}

// EndTick clears per-tick bookkeeping: event lists and change tracking.
func (s *State) EndTick() {
	s.Bus.Clear()
	s.healthChanged.Clear()
}

// Spaceship returns the single player entity. Zero or several matches are
// reported as ErrNoSpaceship / ErrMultipleSpaceships.
func (s *State) Spaceship() (ecs.EntityID, error) {
	switch s.Spaceships.Len() {
	case 0:
		return 0, ErrNoSpaceship
	case 1:
		return s.Spaceships.IDs()[0], nil
	default:
		return 0, ErrMultipleSpaceships
	}
}

// EachCollider visits entities carrying both a Collider and a Transform.
func (s *State) EachCollider(fn func(ecs.EntityID, *component.Collider, *component.Transform)) {
	ecs.Each2(s.Colliders, s.Transforms, fn)
}
