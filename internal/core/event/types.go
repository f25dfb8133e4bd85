package event

import "github.com/l1jgo/asteroids/internal/core/ecs"

// Died is emitted when an entity's Health crosses to zero or below, or when
// its DespawnTimer runs out.
type Died struct {
	Entity ecs.EntityID
}

// ContactKind distinguishes contact-start from contact-end notifications.
type ContactKind uint8

const (
	ContactStarted ContactKind = iota
	ContactEnded
)

func (k ContactKind) String() string {
	switch k {
	case ContactStarted:
		return "started"
	case ContactEnded:
		return "ended"
	}
	return "unknown"
}

// Contact is a notification from the physics collaborator naming an entity pair.
type Contact struct {
	Kind ContactKind
	A, B ecs.EntityID
}
