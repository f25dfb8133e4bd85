package input

import "fmt"

// Action is a named gameplay input bound to one or more keys.
type Action string

const (
	RotateLeft  Action = "rotate_left"
	RotateRight Action = "rotate_right"
	Thrust      Action = "thrust"
	RollLeft    Action = "roll_left"
	RollRight   Action = "roll_right"
	Fire        Action = "fire"
	Shield      Action = "shield"
	Pause       Action = "pause"
	Continue    Action = "continue"
	Quit        Action = "quit"
)

// Actions lists every action in a stable order.
var Actions = []Action{
	RotateLeft, RotateRight, Thrust, RollLeft, RollRight,
	Fire, Shield, Pause, Continue, Quit,
}

// Bindings maps actions to keys.
type Bindings map[Action][]Key

// DefaultBindings mirrors the classic layout: WASD/arrows to steer, space to
// fire and continue, tab for shield, escape to pause, q to quit.
func DefaultBindings() Bindings {
	return Bindings{
		RotateLeft:  {KeyA, ArrowLeft},
		RotateRight: {KeyD, ArrowRight},
		Thrust:      {KeyW, ArrowUp},
		RollLeft:    {ShiftLeft},
		RollRight:   {ControlLeft},
		Fire:        {Space},
		Shield:      {Tab},
		Pause:       {Escape},
		Continue:    {Space},
		Quit:        {KeyQ},
	}
}

// Validate reports actions with no key bound.
func (b Bindings) Validate() error {
	for _, a := range Actions {
		if len(b[a]) == 0 {
			return fmt.Errorf("action %s has no key bound", a)
		}
	}
	return nil
}

// Held reports whether any key bound to a is held.
func (b Bindings) Held(s *Snapshot, a Action) bool {
	return s.AnyPressed(b[a])
}

// Triggered reports whether any key bound to a went down this tick.
func (b Bindings) Triggered(s *Snapshot, a Action) bool {
	return s.AnyJustPressed(b[a])
}
