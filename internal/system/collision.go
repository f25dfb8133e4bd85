package system

import (
	"time"

	"github.com/l1jgo/asteroids/internal/core/ecs"
	"github.com/l1jgo/asteroids/internal/core/event"
	coresys "github.com/l1jgo/asteroids/internal/core/system"
	"github.com/l1jgo/asteroids/internal/physics"
	"github.com/l1jgo/asteroids/internal/world"
)

// CollisionSystem turns contact-started notifications into Health
// mutations. Phase 1 (Update), after movement so the contact source sees
// post-integration positions.
//
// Each notification is applied on its own: the same pair reported twice in
// one tick deals damage twice.
type CollisionSystem struct {
	world  *world.State
	source physics.ContactSource
}

func NewCollisionSystem(ws *world.State, source physics.ContactSource) *CollisionSystem {
	return &CollisionSystem{world: ws, source: source}
}

func (s *CollisionSystem) Phase() coresys.Phase { return coresys.PhaseUpdate }

func (s *CollisionSystem) Update(_ time.Duration) {
	for _, c := range s.source.DrainContacts() {
		// We only care about contacts that have just started.
		if c.Kind != event.ContactStarted {
			continue
		}
		// One notification per contact, so check both directions.
		s.tryDamage(c.A, c.B)
		s.tryDamage(c.B, c.A)
	}
}

// tryDamage applies damager's CollisionDamage to damaged's Health when both exist.
func (s *CollisionSystem) tryDamage(damager, damaged ecs.EntityID) {
	dmg, ok := s.world.CollisionDamages.Get(damager)
	if !ok {
		return
	}
	s.world.ApplyDamage(damaged, dmg.Amount)
}

// ContactQueue is a ContactSource fed by hand, for an external physics
// collaborator pushing notifications between ticks.
type ContactQueue struct {
	pending []event.Contact
}

// Push appends notifications in arrival order.
func (q *ContactQueue) Push(contacts ...event.Contact) {
	q.pending = append(q.pending, contacts...)
}

func (q *ContactQueue) DrainContacts() []event.Contact {
	out := q.pending
	q.pending = nil
	return out
}
