// Package state holds the top-level game-flow state machine. Transitions are
// requested during a tick and applied once, at the start of the cleanup
// phase, where the registered hooks run in registration order.
package state

import "go.uber.org/zap"

// GameState is the top-level game-flow state.
type GameState uint8

const (
	Start GameState = iota
	InGame
	Paused
	GameOver
)

func (s GameState) String() string {
	switch s {
	case Start:
		return "start"
	case InGame:
		return "in_game"
	case Paused:
		return "paused"
	case GameOver:
		return "game_over"
	}
	return "unknown"
}

// Transition names an applied state change.
type Transition struct {
	From, To GameState
}

type transitionHook struct {
	from, to GameState
	fn       func()
}

type stateHook struct {
	state GameState
	fn    func()
}

// Machine is the game-state machine. Accessed only from the game loop.
type Machine struct {
	current GameState
	next    GameState
	pending bool
	quit    bool

	onEnter      []stateHook
	onExit       []stateHook
	onTransition []transitionHook

	log *zap.Logger
}

// NewMachine returns a machine in the Start state.
func NewMachine(log *zap.Logger) *Machine {
	if log == nil {
		log = zap.NewNop()
	}
	return &Machine{current: Start, log: log}
}

func (m *Machine) Current() GameState  { return m.current }
func (m *Machine) Is(s GameState) bool { return m.current == s }

// Pending returns the requested next state, if any.
func (m *Machine) Pending() (GameState, bool) { return m.next, m.pending }

// Set requests a transition to s at the next Apply. The last request in a
// tick wins.
func (m *Machine) Set(s GameState) {
	m.next = s
	m.pending = true
}

// Quit requests process termination.
func (m *Machine) Quit() { m.quit = true }

// QuitRequested reports whether Quit was called.
func (m *Machine) QuitRequested() bool { return m.quit }

// OnEnter registers fn to run whenever s is entered.
func (m *Machine) OnEnter(s GameState, fn func()) {
	m.onEnter = append(m.onEnter, stateHook{state: s, fn: fn})
}

// OnExit registers fn to run whenever s is left.
func (m *Machine) OnExit(s GameState, fn func()) {
	m.onExit = append(m.onExit, stateHook{state: s, fn: fn})
}

// OnTransition registers fn for the exact from->to edge only.
func (m *Machine) OnTransition(from, to GameState, fn func()) {
	m.onTransition = append(m.onTransition, transitionHook{from: from, to: to, fn: fn})
}

// Apply performs the pending transition, if any, running exit hooks, then
// edge hooks, then enter hooks. A request for the current state is dropped.
func (m *Machine) Apply() (Transition, bool) {
	if !m.pending {
		return Transition{}, false
	}
	m.pending = false
	if m.next == m.current {
		return Transition{}, false
	}
	tr := Transition{From: m.current, To: m.next}
	for _, h := range m.onExit {
		if h.state == tr.From {
			h.fn()
		}
	}
	m.current = tr.To
	for _, h := range m.onTransition {
		if h.from == tr.From && h.to == tr.To {
			h.fn()
		}
	}
	for _, h := range m.onEnter {
		if h.state == tr.To {
			h.fn()
		}
	}
	m.log.Info("game state changed",
		zap.Stringer("from", tr.From),
		zap.Stringer("to", tr.To),
	)
	return tr, true
}
