package system

import (
	"time"

	coresys "github.com/l1jgo/asteroids/internal/core/system"
	"github.com/l1jgo/asteroids/internal/input"
	"github.com/l1jgo/asteroids/internal/state"
	"github.com/l1jgo/asteroids/internal/world"
)

// GameStateSystem maps pause / continue / quit presses to state requests.
// Phase 0 (Input), runs in every state.
//
//	pause:    InGame -> Paused, Paused -> InGame
//	continue: Start -> InGame, GameOver -> Start
//	quit:     Start -> exit, Paused -> GameOver
//
// Any other state/key combination does nothing.
type GameStateSystem struct {
	world    *world.State
	tracker  *input.Tracker
	bindings input.Bindings
}

func NewGameStateSystem(ws *world.State, tracker *input.Tracker, bindings input.Bindings) *GameStateSystem {
	return &GameStateSystem{world: ws, tracker: tracker, bindings: bindings}
}

func (s *GameStateSystem) Phase() coresys.Phase { return coresys.PhaseInput }

func (s *GameStateSystem) Update(_ time.Duration) {
	keys := s.tracker.Snapshot()
	game := s.world.Game

	// Pause/Unpause the game.
	if s.bindings.Triggered(keys, input.Pause) {
		switch game.Current() {
		case state.InGame:
			game.Set(state.Paused)
		case state.Paused:
			game.Set(state.InGame)
		}
	}

	// Continue from the start and game over screens.
	if s.bindings.Triggered(keys, input.Continue) {
		switch game.Current() {
		case state.Start:
			game.Set(state.InGame)
		case state.GameOver:
			game.Set(state.Start)
		}
	}

	// Quit the current game or the program.
	if s.bindings.Triggered(keys, input.Quit) {
		switch game.Current() {
		case state.Start:
			game.Quit()
		case state.Paused:
			game.Set(state.GameOver)
		}
	}
}
