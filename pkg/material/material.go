package material

import "github.com/rv42/go-ray-caster/pkg/core"

// Material describes the surface properties used for shading.
// Specular, Shininess and Reflectivity are carried on every material
// but the current shading model only reads Albedo; they exist so that
// Phong highlights and mirror bounces have a place to land later.
type Material struct {
	Albedo       core.Vec3 // Base color (diffuse reflectance)
	Specular     float64   // Specular reflection coefficient
	Shininess    float64   // Phong shininess exponent
	Reflectivity float64   // Mirror reflection coefficient (0 = none, 1 = perfect mirror)
}

// New creates a purely diffuse material
func New(albedo core.Vec3) Material {
	return Material{
		Albedo:    albedo,
		Shininess: 1.0,
	}
}

// NewSpecular creates a material with specular highlight parameters
func NewSpecular(albedo core.Vec3, specular, shininess float64) Material {
	return Material{
		Albedo:    albedo,
		Specular:  specular,
		Shininess: shininess,
	}
}

// NewReflective creates a mirror-like material
func NewReflective(albedo core.Vec3, reflectivity float64) Material {
	return Material{
		Albedo:       albedo,
		Shininess:    1.0,
		Reflectivity: reflectivity,
	}
}

// Red returns a predefined red diffuse material
func Red() Material {
	return New(core.NewVec3(0.8, 0.2, 0.2))
}

// Green returns a predefined green diffuse material
func Green() Material {
	return New(core.NewVec3(0.2, 0.8, 0.2))
}

// Blue returns a predefined blue diffuse material
func Blue() Material {
	return New(core.NewVec3(0.2, 0.2, 0.8))
}

// White returns a predefined white diffuse material
func White() Material {
	return New(core.NewVec3(0.8, 0.8, 0.8))
}

// Gray returns a predefined gray diffuse material
func Gray() Material {
	return New(core.NewVec3(0.5, 0.5, 0.5))
}

// Mirror returns a predefined reflective material
func Mirror() Material {
	return NewReflective(core.NewVec3(0.9, 0.9, 0.9), 0.9)
}
