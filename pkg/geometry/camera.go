package geometry

import (
	"math"

	"github.com/rv42/go-ray-caster/pkg/core"
)

// CameraConfig holds camera placement parameters
type CameraConfig struct {
	Center      core.Vec3 // Camera position (look-from)
	LookAt      core.Vec3 // Point the camera is looking at
	Up          core.Vec3 // Up direction, usually (0, 1, 0)
	VFov        float64   // Vertical field of view in degrees
	AspectRatio float64   // Width / height
}

// MergeCameraConfig merges non-zero override fields onto a base config
func MergeCameraConfig(base, override CameraConfig) CameraConfig {
	merged := base
	if override.Center != core.Zero() {
		merged.Center = override.Center
	}
	if override.LookAt != core.Zero() {
		merged.LookAt = override.LookAt
	}
	if override.Up != core.Zero() {
		merged.Up = override.Up
	}
	if override.VFov != 0 {
		merged.VFov = override.VFov
	}
	if override.AspectRatio != 0 {
		merged.AspectRatio = override.AspectRatio
	}
	return merged
}

// Camera generates world-space rays from normalized screen coordinates.
// The viewport corners are derived once at construction.
type Camera struct {
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
}

// NewCamera creates a camera from placement parameters
func NewCamera(config CameraConfig) *Camera {
	theta := config.VFov * math.Pi / 180.0
	halfHeight := math.Tan(theta / 2)
	halfWidth := config.AspectRatio * halfHeight

	// Orthonormal viewing basis
	w := config.Center.Subtract(config.LookAt).Normalize()
	u := config.Up.Cross(w).Normalize()
	v := w.Cross(u)

	origin := config.Center
	lowerLeftCorner := origin.
		Subtract(u.Multiply(halfWidth)).
		Subtract(v.Multiply(halfHeight)).
		Subtract(w)

	return &Camera{
		origin:          origin,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      u.Multiply(2 * halfWidth),
		vertical:        v.Multiply(2 * halfHeight),
	}
}

// GetRay generates a ray for screen coordinates (s, t) where 0 <= s,t <= 1
// and (0, 0) is the lower-left corner of the image plane
func (c *Camera) GetRay(s, t float64) core.Ray {
	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t)).
		Subtract(c.origin)

	return core.NewRay(c.origin, direction)
}
