package system

import (
	"time"

	coresys "github.com/l1jgo/asteroids/internal/core/system"
	"github.com/l1jgo/asteroids/internal/world"
)

// TransitionSystem applies the pending game-state change, running its
// hooks, before the destroy queue is flushed. Phase 3 (Cleanup).
type TransitionSystem struct {
	world *world.State
}

func NewTransitionSystem(ws *world.State) *TransitionSystem {
	return &TransitionSystem{world: ws}
}

func (s *TransitionSystem) Phase() coresys.Phase { return coresys.PhaseCleanup }

func (s *TransitionSystem) Update(_ time.Duration) {
	s.world.Game.Apply()
}

// CleanupSystem flushes the deferred entity destruction queue at tick end
// and clears the per-tick event lists. Phase 3 (Cleanup).
type CleanupSystem struct {
	world *world.State
}

func NewCleanupSystem(ws *world.State) *CleanupSystem {
	return &CleanupSystem{world: ws}
}

func (s *CleanupSystem) Phase() coresys.Phase { return coresys.PhaseCleanup }

func (s *CleanupSystem) Update(_ time.Duration) {
	s.world.ECS.FlushDestroyQueue()
	s.world.EndTick()
}
