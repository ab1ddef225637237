package geometry

import (
	"math"

	"github.com/rv42/go-ray-caster/pkg/core"
	"github.com/rv42/go-ray-caster/pkg/material"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center    core.Vec3
	Radius    float64
	Material  material.Material
	Transform Transform
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, mat material.Material) *Sphere {
	return &Sphere{
		Center:    center,
		Radius:    radius,
		Material:  mat,
		Transform: NewTransform(),
	}
}

// NewTransformedSphere creates a sphere with an explicit placement transform
func NewTransformedSphere(center core.Vec3, radius float64, mat material.Material, transform Transform) *Sphere {
	return &Sphere{
		Center:    center,
		Radius:    radius,
		Material:  mat,
		Transform: transform,
	}
}

// Intersect tests if a ray intersects with the sphere
func (s *Sphere) Intersect(ray core.Ray) (HitInfo, bool) {
	// Solve in object space when the sphere carries a placement
	localRay := ray
	if !s.Transform.IsIdentity() {
		localRay = s.Transform.InverseTransformRay(ray)
	}

	// Quadratic equation coefficients: at² + bt + c = 0
	oc := localRay.Origin.Subtract(s.Center)
	a := localRay.Direction.Dot(localRay.Direction)
	b := 2.0 * oc.Dot(localRay.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return HitInfo{}, false
	}

	sqrtD := math.Sqrt(discriminant)
	t1 := (-b - sqrtD) / (2 * a)
	t2 := (-b + sqrtD) / (2 * a)

	// Prefer the nearer root, fall back to the farther one
	var t float64
	switch {
	case t1 > Epsilon:
		t = t1
	case t2 > Epsilon:
		t = t2
	default:
		return HitInfo{}, false // Both intersections behind ray origin
	}

	hitPoint := localRay.At(t)
	normal := hitPoint.Subtract(s.Center).Normalize()

	worldPoint := hitPoint
	if !s.Transform.IsIdentity() {
		worldPoint = s.Transform.ApplyToPoint(hitPoint)
	}

	return HitInfo{
		T:        t,
		Point:    worldPoint,
		Normal:   normal,
		Material: s.Material,
	}, true
}
