package component

import "github.com/go-gl/mathgl/mgl64"

type Shape uint8

const (
	ShapeSphere Shape = iota
	ShapeBox
)

func (s Shape) String() string {
	if s == ShapeBox {
		return "box"
	}
	return "sphere"
}

// Collider describes the collision shape handed to the physics collaborator.
// A sensor reports contacts without receiving impulses.
type Collider struct {
	Shape       Shape
	Radius      float64    // sphere
	HalfExtents mgl64.Vec3 // box
	Sensor      bool
}

func Ball(radius float64) *Collider {
	return &Collider{Shape: ShapeSphere, Radius: radius, Sensor: true}
}

func Cuboid(hx, hy, hz float64) *Collider {
	return &Collider{Shape: ShapeBox, HalfExtents: mgl64.Vec3{hx, hy, hz}, Sensor: true}
}

// BoundingRadius is the radius of the smallest sphere enclosing the unscaled shape.
func (c *Collider) BoundingRadius() float64 {
	if c.Shape == ShapeBox {
		return c.HalfExtents.Len()
	}
	return c.Radius
}
