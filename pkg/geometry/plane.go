package geometry

import (
	"math"

	"github.com/rv42/go-ray-caster/pkg/core"
	"github.com/rv42/go-ray-caster/pkg/material"
)

// Plane represents an infinite plane defined by a point and normal
type Plane struct {
	Point     core.Vec3 // A point on the plane
	Normal    core.Vec3 // Normal vector, normalized at construction
	Material  material.Material
	Transform Transform
}

// NewPlane creates a new plane
func NewPlane(point, normal core.Vec3, mat material.Material) *Plane {
	return &Plane{
		Point:     point,
		Normal:    normal.Normalize(),
		Material:  mat,
		Transform: NewTransform(),
	}
}

// NewHorizontalPlane creates a horizontal plane at the given Y coordinate
func NewHorizontalPlane(y float64, mat material.Material) *Plane {
	return NewPlane(core.NewVec3(0, y, 0), core.UnitY(), mat)
}

// Intersect tests if a ray intersects with the plane
func (p *Plane) Intersect(ray core.Ray) (HitInfo, bool) {
	// t = (point - origin) · normal / (direction · normal)
	denominator := ray.Direction.Dot(p.Normal)

	// Ray parallel to the plane
	if math.Abs(denominator) < ParallelEpsilon {
		return HitInfo{}, false
	}

	t := p.Point.Subtract(ray.Origin).Dot(p.Normal) / denominator
	if t < Epsilon {
		return HitInfo{}, false
	}

	return HitInfo{
		T:        t,
		Point:    ray.At(t),
		Normal:   p.Normal,
		Material: p.Material,
	}, true
}
