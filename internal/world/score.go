package world

// Scoreboard keeps the player's score. Reset on every new game.
type Scoreboard struct {
	score float64
}

func (b *Scoreboard) Add(points float64) { b.score += points }
func (b *Scoreboard) Reset()             { b.score = 0 }
func (b *Scoreboard) Value() float64     { return b.score }
