package system

import (
	"time"

	"github.com/l1jgo/asteroids/internal/component"
	"github.com/l1jgo/asteroids/internal/core/ecs"
	"github.com/l1jgo/asteroids/internal/core/event"
	coresys "github.com/l1jgo/asteroids/internal/core/system"
	"github.com/l1jgo/asteroids/internal/state"
	"github.com/l1jgo/asteroids/internal/world"
	"go.uber.org/zap"
)

// DespawnTimerSystem counts DespawnTimers down and emits a Died event when
// one runs out; removal then goes through DespawnOnDieSystem like any other
// death. The timer is dropped once it fires. Phase 1 (Update), after
// HealthSystem: an entity whose health ran out this tick is not reported twice.
type DespawnTimerSystem struct {
	world   *world.State
	expired []ecs.EntityID
}

func NewDespawnTimerSystem(ws *world.State) *DespawnTimerSystem {
	return &DespawnTimerSystem{world: ws}
}

func (s *DespawnTimerSystem) Phase() coresys.Phase { return coresys.PhaseUpdate }

func (s *DespawnTimerSystem) Update(dt time.Duration) {
	s.expired = s.expired[:0]
	s.world.DespawnTimers.Each(func(id ecs.EntityID, t *component.DespawnTimer) {
		t.Remaining -= dt
		if t.Remaining <= 0 {
			s.expired = append(s.expired, id)
		}
	})
	for _, id := range s.expired {
		s.world.DespawnTimers.Remove(id)
		if s.diedThisTick(id) {
			continue
		}
		event.Emit(s.world.Bus, event.Died{Entity: id})
	}
}

// diedThisTick reports whether HealthSystem already announced id's death.
func (s *DespawnTimerSystem) diedThisTick(id ecs.EntityID) bool {
	if !s.world.HealthChanged(id) {
		return false
	}
	h, ok := s.world.Healths.Get(id)
	return ok && h.Value <= 0
}

// DespawnOnDieSystem queues every dead entity carrying DespawnOnDie, and
// its children, for destruction. Phase 2 (PostUpdate).
//
// It also owns the game-over sweep: entering GameOver removes every entity
// that has Health, whatever its markers.
type DespawnOnDieSystem struct {
	world *world.State
	log   *zap.Logger
}

func NewDespawnOnDieSystem(ws *world.State, log *zap.Logger) *DespawnOnDieSystem {
	s := &DespawnOnDieSystem{world: ws, log: log}
	ws.Game.OnEnter(state.GameOver, s.RemoveWithHealth)
	return s
}

func (s *DespawnOnDieSystem) Phase() coresys.Phase { return coresys.PhasePostUpdate }

func (s *DespawnOnDieSystem) Update(_ time.Duration) {
	for _, ev := range event.Read[event.Died](s.world.Bus) {
		if !s.world.DespawnOnDie.Has(ev.Entity) {
			continue
		}
		s.world.ECS.MarkForDestructionRecursive(ev.Entity)
	}
}

// RemoveWithHealth queues every entity carrying Health for recursive removal.
func (s *DespawnOnDieSystem) RemoveWithHealth() {
	ids := s.world.Healths.IDs()
	for _, id := range ids {
		s.world.ECS.MarkForDestructionRecursive(id)
	}
	s.log.Debug("swept entities with health", zap.Int("count", len(ids)))
}
