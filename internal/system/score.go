package system

import (
	"time"

	"github.com/l1jgo/asteroids/internal/core/event"
	coresys "github.com/l1jgo/asteroids/internal/core/system"
	"github.com/l1jgo/asteroids/internal/state"
	"github.com/l1jgo/asteroids/internal/world"
)

// PointsPerAsteroid is awarded for each destroyed asteroid.
const PointsPerAsteroid = 1.0

// ScoreSystem awards points for asteroid deaths. Phase 2 (PostUpdate).
// The score resets whenever InGame is entered, resuming from pause included.
type ScoreSystem struct {
	world *world.State
}

func NewScoreSystem(ws *world.State) *ScoreSystem {
	s := &ScoreSystem{world: ws}
	ws.Game.OnEnter(state.InGame, ws.Score.Reset)
	return s
}

func (s *ScoreSystem) Phase() coresys.Phase { return coresys.PhasePostUpdate }

func (s *ScoreSystem) Update(_ time.Duration) {
	killed := 0
	for _, ev := range event.Read[event.Died](s.world.Bus) {
		if s.world.Asteroids.Has(ev.Entity) {
			killed++
		}
	}
	s.world.Score.Add(float64(killed) * PointsPerAsteroid)
}
