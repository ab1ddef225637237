package geometry

import (
	"math"

	"github.com/rv42/go-ray-caster/pkg/core"
	"github.com/rv42/go-ray-caster/pkg/material"
)

// Cylinder represents a finite cylinder aligned to the Y axis
type Cylinder struct {
	Center    core.Vec3 // Center of the cylinder
	Radius    float64
	Height    float64 // Extent along the Y axis
	Material  material.Material
	Transform Transform
}

// NewCylinder creates a new cylinder
func NewCylinder(center core.Vec3, radius, height float64, mat material.Material) *Cylinder {
	return &Cylinder{
		Center:    center,
		Radius:    radius,
		Height:    height,
		Material:  mat,
		Transform: NewTransform(),
	}
}

// Intersect tests if a ray intersects with the cylinder walls or caps
func (c *Cylinder) Intersect(ray core.Ray) (HitInfo, bool) {
	oc := ray.Origin.Subtract(c.Center)

	// Lateral surface: solve the infinite-cylinder quadratic using
	// only the horizontal components, (x-cx)² + (z-cz)² = r²
	a := ray.Direction.X*ray.Direction.X + ray.Direction.Z*ray.Direction.Z
	b := 2.0 * (oc.X*ray.Direction.X + oc.Z*ray.Direction.Z)
	cc := oc.X*oc.X + oc.Z*oc.Z - c.Radius*c.Radius

	discriminant := b*b - 4*a*cc
	if discriminant < 0 {
		return HitInfo{}, false
	}

	sqrtD := math.Sqrt(discriminant)
	t1 := (-b - sqrtD) / (2 * a)
	t2 := (-b + sqrtD) / (2 * a)

	closestT := math.Inf(1)
	var closestNormal core.Vec3
	found := false

	yBottom := c.Center.Y - c.Height/2
	yTop := c.Center.Y + c.Height/2

	// Wall candidates, kept only when within the cylinder height
	for _, t := range [2]float64{t1, t2} {
		if t > Epsilon {
			hitPoint := ray.At(t)
			if hitPoint.Y >= yBottom && hitPoint.Y <= yTop && t < closestT {
				closestT = t
				closestNormal = core.NewVec3(
					(hitPoint.X-c.Center.X)/c.Radius,
					0,
					(hitPoint.Z-c.Center.Z)/c.Radius,
				).Normalize()
				found = true
			}
		}
	}

	// Cap candidates, kept only when within the cap radius
	if math.Abs(ray.Direction.Y) > ParallelEpsilon {
		for _, capY := range [2]float64{yTop, yBottom} {
			t := (capY - ray.Origin.Y) / ray.Direction.Y
			if t > Epsilon && t < closestT {
				hitPoint := ray.At(t)
				dx := hitPoint.X - c.Center.X
				dz := hitPoint.Z - c.Center.Z
				if dx*dx+dz*dz <= c.Radius*c.Radius {
					closestT = t
					if capY == yTop {
						closestNormal = core.UnitY()
					} else {
						closestNormal = core.UnitY().Negate()
					}
					found = true
				}
			}
		}
	}

	if !found {
		return HitInfo{}, false
	}

	return HitInfo{
		T:        closestT,
		Point:    ray.At(closestT),
		Normal:   closestNormal,
		Material: c.Material,
	}, true
}
