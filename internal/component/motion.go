package component

import "github.com/go-gl/mathgl/mgl64"

type Velocity struct {
	Value mgl64.Vec3
}

type Acceleration struct {
	Value mgl64.Vec3
}

// AngularVelocity holds per-local-axis rotation rates in radians per second.
type AngularVelocity struct {
	Value mgl64.Vec3
}
