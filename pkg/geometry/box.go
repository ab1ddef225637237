package geometry

import (
	"math"

	"github.com/rv42/go-ray-caster/pkg/core"
	"github.com/rv42/go-ray-caster/pkg/material"
)

// Box represents an axis-aligned box defined by its min and max corners
type Box struct {
	Min       core.Vec3 // Minimum corner
	Max       core.Vec3 // Maximum corner
	Material  material.Material
	Transform Transform
}

// NewBox creates a new box from min and max corners
func NewBox(minCorner, maxCorner core.Vec3, mat material.Material) *Box {
	return &Box{
		Min:       minCorner,
		Max:       maxCorner,
		Material:  mat,
		Transform: NewTransform(),
	}
}

// NewUnitBox creates a unit box centered at the origin
func NewUnitBox(mat material.Material) *Box {
	return NewBox(core.NewVec3(-0.5, -0.5, -0.5), core.NewVec3(0.5, 0.5, 0.5), mat)
}

// Intersect tests if a ray intersects with the box using the slab method
func (b *Box) Intersect(ray core.Ray) (HitInfo, bool) {
	tMin := math.Inf(-1)
	tMax := math.Inf(1)
	var normal core.Vec3

	// Intersect the ray's interval against each axis slab
	for axis := 0; axis < 3; axis++ {
		var axisOrigin, axisDirection, axisMin, axisMax float64
		switch axis {
		case 0:
			axisOrigin, axisDirection, axisMin, axisMax = ray.Origin.X, ray.Direction.X, b.Min.X, b.Max.X
		case 1:
			axisOrigin, axisDirection, axisMin, axisMax = ray.Origin.Y, ray.Direction.Y, b.Min.Y, b.Max.Y
		default:
			axisOrigin, axisDirection, axisMin, axisMax = ray.Origin.Z, ray.Direction.Z, b.Min.Z, b.Max.Z
		}

		if math.Abs(axisDirection) < ParallelEpsilon {
			// Ray parallel to this slab: miss unless the origin is inside it
			if axisOrigin < axisMin || axisOrigin > axisMax {
				return HitInfo{}, false
			}
			continue
		}

		t1 := (axisMin - axisOrigin) / axisDirection
		t2 := (axisMax - axisOrigin) / axisDirection

		tNear, tFar := t1, t2
		if t1 > t2 {
			tNear, tFar = t2, t1
		}

		if tNear > tMin {
			tMin = tNear
			// Entry face determines the normal: the min-corner face
			// was entered when t1 < t2, the max-corner face otherwise
			hitMinFace := t1 < t2
			switch axis {
			case 0:
				normal = core.NewVec3(1, 0, 0)
			case 1:
				normal = core.NewVec3(0, 1, 0)
			default:
				normal = core.NewVec3(0, 0, 1)
			}
			if hitMinFace {
				normal = normal.Negate()
			}
		}
		if tFar < tMax {
			tMax = tFar
		}

		// Slab intervals no longer overlap
		if tMin > tMax {
			return HitInfo{}, false
		}
	}

	// Choose the closest intersection in front of the ray. When the
	// origin is inside the box we fall back to tMax but keep the
	// entry-face normal, matching the behavior this port reproduces.
	var t float64
	switch {
	case tMin > Epsilon:
		t = tMin
	case tMax > Epsilon:
		t = tMax
	default:
		return HitInfo{}, false
	}

	return HitInfo{
		T:        t,
		Point:    ray.At(t),
		Normal:   normal,
		Material: b.Material,
	}, true
}
