package component

import "github.com/go-gl/mathgl/mgl64"

// Model is an opaque visual handle supplied by the asset collaborator.
type Model struct {
	Handle string
}

// PointLight is attached to a child entity of the spaceship.
type PointLight struct {
	Offset    mgl64.Vec3
	Intensity float64
	Shadows   bool
}
