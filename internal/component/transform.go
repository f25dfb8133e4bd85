package component

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Transform is an entity's pose in world space.
type Transform struct {
	Translation mgl64.Vec3
	Rotation    mgl64.Quat
	Scale       mgl64.Vec3
}

// NewTransform returns an identity transform placed at pos.
func NewTransform(pos mgl64.Vec3) *Transform {
	return &Transform{
		Translation: pos,
		Rotation:    mgl64.QuatIdent(),
		Scale:       mgl64.Vec3{1, 1, 1},
	}
}

// Heading is the unit direction the entity faces: Rotation applied to +Z.
func (t *Transform) Heading() mgl64.Vec3 {
	return t.Rotation.Rotate(mgl64.Vec3{0, 0, 1})
}

// RotateWorldY yaws about the world Y axis.
func (t *Transform) RotateWorldY(angle float64) {
	t.Rotation = mgl64.QuatRotate(angle, mgl64.Vec3{0, 1, 0}).Mul(t.Rotation).Normalize()
}

// RotateLocal rotates about one of the entity's own axes.
func (t *Transform) RotateLocal(axis mgl64.Vec3, angle float64) {
	if angle == 0 {
		return
	}
	t.Rotation = t.Rotation.Mul(mgl64.QuatRotate(angle, axis)).Normalize()
}

// MaxScale returns the largest scale component.
func (t *Transform) MaxScale() float64 {
	m := t.Scale.X()
	if t.Scale.Y() > m {
		m = t.Scale.Y()
	}
	if t.Scale.Z() > m {
		m = t.Scale.Z()
	}
	return m
}

// Splat returns a vector with all components set to v.
func Splat(v float64) mgl64.Vec3 { return mgl64.Vec3{v, v, v} }

// NormalizeOrZero returns v scaled to unit length, or the zero vector when
// v has no usable direction.
func NormalizeOrZero(v mgl64.Vec3) mgl64.Vec3 {
	l := v.Len()
	if l == 0 || math.IsNaN(l) || math.IsInf(l, 0) {
		return mgl64.Vec3{}
	}
	return v.Mul(1 / l)
}
