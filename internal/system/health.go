package system

import (
	"time"

	"github.com/l1jgo/asteroids/internal/component"
	"github.com/l1jgo/asteroids/internal/core/ecs"
	"github.com/l1jgo/asteroids/internal/core/event"
	coresys "github.com/l1jgo/asteroids/internal/core/system"
	"github.com/l1jgo/asteroids/internal/world"
	"go.uber.org/zap"
)

// HealthSystem emits a Died event for every entity whose Health was
// written this tick and is now zero or below. Unchanged health is never
// re-examined. Phase 1 (Update), after every health writer.
type HealthSystem struct {
	world *world.State
	log   *zap.Logger
}

func NewHealthSystem(ws *world.State, log *zap.Logger) *HealthSystem {
	return &HealthSystem{world: ws, log: log}
}

func (s *HealthSystem) Phase() coresys.Phase { return coresys.PhaseUpdate }

func (s *HealthSystem) Update(_ time.Duration) {
	s.world.EachHealthChanged(func(id ecs.EntityID, h *component.Health) {
		if h.Value > 0 {
			return
		}
		event.Emit(s.world.Bus, event.Died{Entity: id})
		s.log.Debug("entity died", zap.Uint64("entity", uint64(id)), zap.Float64("health", h.Value))
	})
}
