package component

import "time"

// Health may go negative within the tick it crosses zero. Mutate it through
// world.State so change tracking sees the write.
type Health struct {
	Value float64
}

// CollisionDamage is subtracted from the Health of whatever the entity touches.
type CollisionDamage struct {
	Amount float64
}

// DespawnTimer counts down and triggers a death notification at zero.
type DespawnTimer struct {
	Remaining time.Duration
}
