package system

import (
	"time"

	coresys "github.com/l1jgo/asteroids/internal/core/system"
	"github.com/l1jgo/asteroids/internal/input"
)

// InputSystem captures the keys reported held for this tick into the shared
// tracker, producing the snapshot every later system reads. Phase 0 (Input),
// registered first.
type InputSystem struct {
	tracker *input.Tracker
	held    []input.Key
}

func NewInputSystem(tracker *input.Tracker) *InputSystem {
	return &InputSystem{tracker: tracker}
}

func (s *InputSystem) Phase() coresys.Phase { return coresys.PhaseInput }

// Feed sets the keys held for the next tick.
func (s *InputSystem) Feed(held []input.Key) {
	s.held = append(s.held[:0], held...)
}

func (s *InputSystem) Update(_ time.Duration) {
	s.tracker.Capture(s.held)
}
