package server

import (
	"fmt"
	"image"
	"image/png"
	"net/http"

	"golang.org/x/image/draw"

	"github.com/rv42/go-ray-caster/pkg/renderer"
	"github.com/rv42/go-ray-caster/pkg/scene"
)

// handleRender performs a synchronous render and returns the PNG.
// Each request runs its own independent render; concurrency exists
// only between requests, never inside the pixel loop.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	req, err := parseRenderRequest(r)
	if err != nil {
		http.Error(w, fmt.Sprintf("invalid request: %v", err), http.StatusBadRequest)
		return
	}

	sc, cameraConfig := scene.Builtin(req.Scene, req.Brightness)
	camera := buildCamera(req, cameraConfig)

	logger.Infof("rendering scene %d at %dx%d", req.Scene, req.Width, req.Height)
	buffer := renderer.New().Render(sc, camera, req.Width, req.Height)

	rgba := buffer.RGBA()
	img := image.Image(rgba)
	if req.Thumb > 0 {
		img = scaleToThumb(rgba, req.Thumb)
	}

	w.Header().Set("Content-Type", "image/png")
	if err := png.Encode(w, img); err != nil {
		logger.Errorf("failed to encode png response: %v", err)
	}
}

// scaleToThumb downscales an image so its longest edge is maxEdge,
// preserving the aspect ratio. Images already small enough pass through.
func scaleToThumb(src *image.RGBA, maxEdge int) image.Image {
	bounds := src.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	longest := max(width, height)
	if longest <= maxEdge {
		return src
	}

	scale := float64(maxEdge) / float64(longest)
	dst := image.NewRGBA(image.Rect(0, 0,
		max(1, int(float64(width)*scale)),
		max(1, int(float64(height)*scale)),
	))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, bounds, draw.Src, nil)
	return dst
}
