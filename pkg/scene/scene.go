package scene

import (
	"math"

	"github.com/rv42/go-ray-caster/pkg/core"
	"github.com/rv42/go-ray-caster/pkg/geometry"
)

// Light is a point light source
type Light struct {
	Position  core.Vec3
	Intensity float64
	Color     core.Vec3
}

// NewLight creates a new point light
func NewLight(position core.Vec3, intensity float64, color core.Vec3) Light {
	return Light{Position: position, Intensity: intensity, Color: color}
}

// NewWhiteLight creates a white point light
func NewWhiteLight(position core.Vec3, intensity float64) Light {
	return NewLight(position, intensity, core.NewVec3(1, 1, 1))
}

// Scene contains all the elements needed for rendering: an ordered
// collection of primitives, point lights, and a background color.
// It is built up with AddObject/AddLight and read-only while rendering.
type Scene struct {
	Objects    []geometry.Intersectable
	Lights     []Light
	Background core.Vec3
}

// New creates an empty scene with the default sky-blue background
func New() *Scene {
	return &Scene{
		Background: core.NewVec3(0.2, 0.3, 0.5),
	}
}

// AddObject appends a primitive to the scene
func (s *Scene) AddObject(object geometry.Intersectable) {
	s.Objects = append(s.Objects, object)
}

// AddLight appends a light to the scene
func (s *Scene) AddLight(light Light) {
	s.Lights = append(s.Lights, light)
}

// Intersect finds the closest intersection with any object in the
// scene. The comparison is strict, so on an exact tie the object
// registered first wins.
func (s *Scene) Intersect(ray core.Ray) (geometry.HitInfo, bool) {
	var closestHit geometry.HitInfo
	closestT := math.Inf(1)
	found := false

	for _, object := range s.Objects {
		if hit, isHit := object.Intersect(ray); isHit && hit.T < closestT {
			closestT = hit.T
			closestHit = hit
			found = true
		}
	}

	return closestHit, found
}
