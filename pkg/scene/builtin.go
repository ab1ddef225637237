package scene

import (
	"github.com/rv42/go-ray-caster/pkg/core"
	"github.com/rv42/go-ray-caster/pkg/geometry"
	"github.com/rv42/go-ray-caster/pkg/material"
)

// Info describes a built-in demo scene for catalogs and the web API
type Info struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Objects     int    `json:"objects"`
	Lights      int    `json:"lights"`
	Description string `json:"description"`
}

// Builtins returns the catalog of built-in demo scenes
func Builtins() []Info {
	return []Info{
		{ID: 1, Name: "sphere", Objects: 1, Lights: 1, Description: "Bright green sphere on a light blue sky, front-lit"},
		{ID: 2, Name: "box", Objects: 2, Lights: 1, Description: "Red box on a gray ground plane with shadows"},
		{ID: 3, Name: "primitives", Objects: 4, Lights: 1, Description: "Sphere, cylinder and box on a ground plane"},
		{ID: 4, Name: "primitives-side", Objects: 4, Lights: 1, Description: "Same objects as scene 3 from a side camera"},
		{ID: 0, Name: "fallback", Objects: 1, Lights: 1, Description: "Red sphere on the default background (any other id)"},
	}
}

// Builtin constructs a built-in demo scene and its camera placement.
// Unknown ids produce the fallback scene rather than an error.
// The returned camera config carries no VFov or aspect ratio; the
// caller merges those in from its own settings.
func Builtin(id int, brightness float64) (*Scene, geometry.CameraConfig) {
	s := New()

	switch id {
	case 1:
		// Bright green sphere, front-lit so nothing shadows it
		s.Background = core.NewVec3(0.5, 0.7, 1.0)
		s.AddObject(geometry.NewSphere(core.NewVec3(0, 0, -3), 1.2, material.Green()))
		s.AddLight(NewWhiteLight(core.NewVec3(0, 0, 1), brightness*2.0))
		return s, geometry.CameraConfig{
			Center: core.Zero(),
			LookAt: core.NewVec3(0, 0, -1),
			Up:     core.UnitY(),
		}
	case 2:
		// Red box on a gray ground plane, dimmer side light for shadows
		s.Background = core.NewVec3(0.5, 0.7, 1.0)
		s.AddObject(geometry.NewHorizontalPlane(-1.5, material.Gray()))
		s.AddObject(geometry.NewBox(
			core.NewVec3(-0.5, -1.5, -3.7),
			core.NewVec3(0.5, -0.5, -2.7),
			material.Red(),
		))
		s.AddLight(NewWhiteLight(core.NewVec3(2, 3, -1), brightness*0.6))
		return s, geometry.CameraConfig{
			Center: core.NewVec3(0, 0.5, 0),
			LookAt: core.NewVec3(0, -0.5, -3),
			Up:     core.UnitY(),
		}
	case 3:
		s := allPrimitivesScene(brightness)
		return s, geometry.CameraConfig{
			Center: core.NewVec3(0, 1, 0),
			LookAt: core.NewVec3(0, -0.5, -4),
			Up:     core.UnitY(),
		}
	case 4:
		// Same objects as scene 3, viewed from the side and lower
		s := allPrimitivesScene(brightness)
		return s, geometry.CameraConfig{
			Center: core.NewVec3(-3, 0.2, -2),
			LookAt: core.NewVec3(0, -0.5, -4),
			Up:     core.UnitY(),
		}
	default:
		// Fallback: red sphere on the unmodified default background
		s.AddObject(geometry.NewSphere(core.NewVec3(0, 0, -3), 1.0, material.Red()))
		s.AddLight(NewWhiteLight(core.NewVec3(2, 2, 0), brightness))
		return s, geometry.CameraConfig{
			Center: core.Zero(),
			LookAt: core.NewVec3(0, 0, -1),
			Up:     core.UnitY(),
		}
	}
}

// allPrimitivesScene builds the shared object set for scenes 3 and 4:
// green sphere, blue cylinder and red box on a gray ground plane
func allPrimitivesScene(brightness float64) *Scene {
	s := New()
	s.Background = core.NewVec3(0.5, 0.7, 1.0)

	s.AddObject(geometry.NewHorizontalPlane(-1.5, material.Gray()))
	s.AddObject(geometry.NewSphere(core.NewVec3(-2.5, -0.7, -4), 0.8, material.Green()))
	s.AddObject(geometry.NewCylinder(core.NewVec3(0, -1.5, -4.5), 0.6, 1.8, material.Blue()))
	s.AddObject(geometry.NewBox(
		core.NewVec3(1.8, -1.5, -3.5),
		core.NewVec3(3.2, -0.1, -2.1),
		material.Red(),
	))
	s.AddLight(NewWhiteLight(core.NewVec3(2, 4, -1), brightness*0.8))

	return s
}
