package renderer

import (
	"github.com/rv42/go-ray-caster/pkg/core"
	"github.com/rv42/go-ray-caster/pkg/geometry"
	"github.com/rv42/go-ray-caster/pkg/ppm"
	"github.com/rv42/go-ray-caster/pkg/scene"
)

// RowCallback is invoked after each completed row of pixels
type RowCallback func(row, totalRows int)

// Renderer casts one ray per pixel and shades hits with Lambertian
// lighting, hard shadows, and a constant ambient term
type Renderer struct {
	MaxDepth int     // Recursion guard for the shading entry point
	Epsilon  float64 // Shadow ray bias and light distance tolerance
}

// New creates a renderer with the default depth guard and bias
func New() *Renderer {
	return &Renderer{
		MaxDepth: 10,
		Epsilon:  1e-4,
	}
}

// Render fills a pixel buffer by scanning rows top to bottom
func (r *Renderer) Render(s *scene.Scene, camera *geometry.Camera, width, height int) *ppm.Buffer {
	return r.RenderWithProgress(s, camera, width, height, nil)
}

// RenderWithProgress renders like Render and additionally invokes
// onRow synchronously after each completed row. The callback changes
// nothing about pixel evaluation order.
func (r *Renderer) RenderWithProgress(s *scene.Scene, camera *geometry.Camera, width, height int, onRow RowCallback) *ppm.Buffer {
	buffer := ppm.NewBuffer(width, height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			u := float64(x) / float64(width)
			// Row 0 maps to the top of the camera's upward axis
			v := float64(height-1-y) / float64(height)

			ray := camera.GetRay(u, v)
			color := r.traceRay(ray, s, 0)

			clamped := color.Clamp(0, 1)
			buffer.WritePixel(
				uint8(255*clamped.X),
				uint8(255*clamped.Y),
				uint8(255*clamped.Z),
			)
		}
		if onRow != nil {
			onRow(y+1, height)
		}
	}

	return buffer
}

// traceRay evaluates the color seen along a ray. The depth parameter
// guards against runaway recursion; nothing recurses yet, but a future
// reflective bounce will call back into traceRay with depth+1.
func (r *Renderer) traceRay(ray core.Ray, s *scene.Scene, depth int) core.Vec3 {
	if depth >= r.MaxDepth {
		return core.Zero()
	}

	hit, isHit := s.Intersect(ray)
	if !isHit {
		return s.Background
	}

	color := core.Zero()
	for _, light := range s.Lights {
		toLight := light.Position.Subtract(hit.Point)
		lightDir := toLight.Normalize()
		lightDistance := toLight.Length()

		diffuseFactor := max(0, hit.Normal.Dot(lightDir))
		if diffuseFactor <= 0 {
			continue
		}

		// Shadow ray: offset along the normal to avoid shadow acne
		shadowOrigin := hit.Point.Add(hit.Normal.Multiply(r.Epsilon))
		shadowRay := core.NewRay(shadowOrigin, lightDir)

		if shadowHit, occluded := s.Intersect(shadowRay); occluded && shadowHit.T < lightDistance-r.Epsilon {
			continue
		}

		contribution := hit.Material.Albedo.
			MultiplyVec(light.Color).
			Multiply(light.Intensity * diffuseFactor)
		color = color.Add(contribution)
	}

	// Constant ambient term so shadows are never fully black,
	// added once regardless of light count
	return color.Add(hit.Material.Albedo.Multiply(0.1))
}
