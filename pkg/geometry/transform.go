package geometry

import "github.com/rv42/go-ray-caster/pkg/core"

// Transform places a primitive in the world via translation and
// per-axis scale. Rotation angles are stored but not yet applied
// to points or rays.
type Transform struct {
	Translation core.Vec3
	Rotation    core.Vec3 // Euler angles in radians, currently inert
	Scale       core.Vec3
}

// NewTransform creates an identity transform
func NewTransform() Transform {
	return Transform{Scale: core.NewVec3(1, 1, 1)}
}

// NewTranslation creates a pure translation transform
func NewTranslation(translation core.Vec3) Transform {
	return Transform{Translation: translation, Scale: core.NewVec3(1, 1, 1)}
}

// IsIdentity reports whether the transform leaves geometry unchanged
func (t Transform) IsIdentity() bool {
	return t.Translation == core.Zero() && t.Scale == core.NewVec3(1, 1, 1)
}

// ApplyToPoint maps a point from object space to world space
func (t Transform) ApplyToPoint(point core.Vec3) core.Vec3 {
	return core.NewVec3(
		point.X*t.Scale.X+t.Translation.X,
		point.Y*t.Scale.Y+t.Translation.Y,
		point.Z*t.Scale.Z+t.Translation.Z,
	)
}

// InverseTransformRay maps a ray from world space to object space
func (t Transform) InverseTransformRay(ray core.Ray) core.Ray {
	invScale := core.NewVec3(1/t.Scale.X, 1/t.Scale.Y, 1/t.Scale.Z)
	origin := core.NewVec3(
		(ray.Origin.X-t.Translation.X)*invScale.X,
		(ray.Origin.Y-t.Translation.Y)*invScale.Y,
		(ray.Origin.Z-t.Translation.Z)*invScale.Z,
	)
	direction := core.NewVec3(
		ray.Direction.X*invScale.X,
		ray.Direction.Y*invScale.Y,
		ray.Direction.Z*invScale.Z,
	)
	return core.NewRay(origin, direction)
}
