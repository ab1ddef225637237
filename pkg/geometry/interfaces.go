package geometry

import (
	"github.com/rv42/go-ray-caster/pkg/core"
	"github.com/rv42/go-ray-caster/pkg/material"
)

const (
	// Epsilon is the forward-intersection bias: hits with a ray
	// parameter at or below it count as behind the origin, which
	// suppresses self-intersection when rays start on a surface.
	Epsilon = 1e-4

	// ParallelEpsilon is the threshold below which a direction
	// component is treated as parallel to a plane or slab.
	ParallelEpsilon = 1e-6
)

// HitInfo describes a ray-surface intersection
type HitInfo struct {
	T        float64           // Ray parameter at the hit point
	Point    core.Vec3         // Hit point in world space
	Normal   core.Vec3         // Unit outward normal at the hit point
	Material material.Material // Material of the intersected primitive
}

// Intersectable is implemented by every primitive. Intersect returns
// the nearest intersection with T > Epsilon, or false if there is none.
type Intersectable interface {
	Intersect(ray core.Ray) (HitInfo, bool)
}
