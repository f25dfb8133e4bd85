package world

import "github.com/l1jgo/asteroids/internal/state"

// HUD is the read-only view exposed to presentation collaborators.
type HUD struct {
	State         state.GameState
	Score         float64
	HasPlayer     bool
	PlayerHealth  float64
	HealthPercent float64 // of maxHealth
	Asteroids     int
	Entities      int
}

// HUD builds the presentation view. maxHealth scales HealthPercent.
func (s *State) HUD(maxHealth float64) HUD {
	h := HUD{
		State:     s.Game.Current(),
		Score:     s.Score.Value(),
		Asteroids: s.Asteroids.Len(),
		Entities:  s.ECS.Len(),
	}
	if id, err := s.Spaceship(); err == nil {
		if hp, ok := s.Healths.Get(id); ok {
			h.HasPlayer = true
			h.PlayerHealth = hp.Value
			if maxHealth > 0 {
				h.HealthPercent = hp.Value / maxHealth * 100
			}
		}
	}
	return h
}
