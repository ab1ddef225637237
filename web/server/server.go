// Package server exposes the ray caster over HTTP: a static viewer
// page, a JSON scene catalog, a synchronous PNG render endpoint, and a
// websocket stream with per-row progress.
package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/rv42/go-ray-caster/log"
	"github.com/rv42/go-ray-caster/pkg/geometry"
	"github.com/rv42/go-ray-caster/pkg/scene"
)

var logger = log.New("web")

// Server handles web requests for the ray caster
type Server struct {
	port int
}

// New creates a new web server
func New(port int) *Server {
	return &Server{port: port}
}

// Start registers the routes and serves until the listener fails
func (s *Server) Start() error {
	mux := s.routes()
	mux.Handle("/", http.FileServer(http.Dir("web/static/")))

	addr := fmt.Sprintf(":%d", s.port)
	logger.Noticef("starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, mux)
}

// Handler returns the API route table without the static file server
func (s *Server) Handler() http.Handler {
	return s.routes()
}

func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/scenes", s.handleScenes)
	mux.HandleFunc("/api/render", s.handleRender)
	mux.HandleFunc("/ws/render", s.handleRenderSocket)
	return mux
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// handleScenes returns the catalog of built-in scenes
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(scene.Builtins())
}

// RenderRequest holds the validated parameters of a render call
type RenderRequest struct {
	Scene      int
	Width      int
	Height     int
	FOV        float64
	Brightness float64
	Thumb      int // Longest thumbnail edge, 0 disables downscaling
}

// parseRenderRequest validates query parameters for the render endpoints
func parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	req := &RenderRequest{}

	var err error
	if req.Scene, err = parseIntParam(r.URL.Query(), "scene", 1, 0, 1<<30); err != nil {
		return nil, err
	}
	if req.Width, err = parseIntParam(r.URL.Query(), "width", 400, 16, 2000); err != nil {
		return nil, err
	}
	if req.Height, err = parseIntParam(r.URL.Query(), "height", 300, 16, 2000); err != nil {
		return nil, err
	}
	if req.FOV, err = parseFloatParam(r.URL.Query(), "fov", 45.0, 10.0, 170.0); err != nil {
		return nil, err
	}
	if req.Brightness, err = parseFloatParam(r.URL.Query(), "brightness", 1.0, 0.0, 10.0); err != nil {
		return nil, err
	}
	if req.Thumb, err = parseIntParam(r.URL.Query(), "thumb", 0, 0, 512); err != nil {
		return nil, err
	}

	return req, nil
}

// buildCamera derives the camera for a request from the scene's
// placement defaults plus the requested fov and aspect ratio
func buildCamera(req *RenderRequest, cameraConfig geometry.CameraConfig) *geometry.Camera {
	merged := geometry.MergeCameraConfig(cameraConfig, geometry.CameraConfig{
		VFov:        req.FOV,
		AspectRatio: float64(req.Width) / float64(req.Height),
	})
	return geometry.NewCamera(merged)
}

// parseIntParam parses an integer parameter from URL query with validation
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %d and %d, got: %d", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// parseFloatParam parses a float parameter from URL query with validation
func parseFloatParam(values url.Values, key string, defaultValue, min, max float64) (float64, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %f and %f, got: %f", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}
