package server

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"

	"github.com/rv42/go-ray-caster/pkg/scene"
)

func TestServer_Health(t *testing.T) {
	srv := New(0)
	rec := httptest.NewRecorder()

	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
}

func TestServer_Scenes(t *testing.T) {
	srv := New(0)
	rec := httptest.NewRecorder()

	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/scenes", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}

	var infos []scene.Info
	if err := json.NewDecoder(rec.Body).Decode(&infos); err != nil {
		t.Fatalf("Failed to decode catalog: %v", err)
	}
	if len(infos) != len(scene.Builtins()) {
		t.Errorf("Expected %d catalog entries, got %d", len(scene.Builtins()), len(infos))
	}
}

func TestServer_Render(t *testing.T) {
	srv := New(0)
	rec := httptest.NewRecorder()

	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/render?scene=1&width=32&height=24", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/png" {
		t.Errorf("Expected image/png, got %s", ct)
	}

	img, err := png.Decode(rec.Body)
	if err != nil {
		t.Fatalf("Response is not a decodable PNG: %v", err)
	}
	if img.Bounds().Dx() != 32 || img.Bounds().Dy() != 24 {
		t.Errorf("Expected 32x24 image, got %v", img.Bounds())
	}
}

func TestServer_RenderThumb(t *testing.T) {
	srv := New(0)
	rec := httptest.NewRecorder()

	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/render?scene=1&width=64&height=32&thumb=16", nil))

	img, err := png.Decode(rec.Body)
	if err != nil {
		t.Fatalf("Response is not a decodable PNG: %v", err)
	}
	if img.Bounds().Dx() != 16 || img.Bounds().Dy() != 8 {
		t.Errorf("Expected 16x8 thumbnail, got %v", img.Bounds())
	}
}

func TestServer_RenderRejectsBadParams(t *testing.T) {
	srv := New(0)

	tests := []string{
		"/api/render?width=5",
		"/api/render?height=99999",
		"/api/render?width=abc",
		"/api/render?fov=500",
		"/api/render?brightness=-1",
	}

	for _, target := range tests {
		rec := httptest.NewRecorder()
		srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", target, rec.Code)
		}
	}
}

func TestServer_RenderSocket(t *testing.T) {
	srv := New(0)
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws/render?scene=1&width=16&height=8"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("Failed to dial websocket: %v", err)
	}
	defer conn.Close()

	lastRow := 0
	for {
		var msg struct {
			Type      string `json:"type"`
			Row       int    `json:"row"`
			Rows      int    `json:"rows"`
			ImageData string `json:"imageData"`
			Message   string `json:"message"`
		}
		if err := conn.ReadJSON(&msg); err != nil {
			t.Fatalf("Failed to read message: %v", err)
		}

		switch msg.Type {
		case "row":
			if msg.Row <= lastRow {
				t.Errorf("Expected monotonically increasing rows, got %d after %d", msg.Row, lastRow)
			}
			lastRow = msg.Row
			if msg.Rows != 8 {
				t.Errorf("Expected 8 total rows, got %d", msg.Rows)
			}
		case "frame":
			if lastRow != 8 {
				t.Errorf("Expected all 8 rows before the frame, got %d", lastRow)
			}
			data, err := base64.StdEncoding.DecodeString(msg.ImageData)
			if err != nil {
				t.Fatalf("Frame is not valid base64: %v", err)
			}
			img, err := png.Decode(bytes.NewReader(data))
			if err != nil {
				t.Fatalf("Frame is not a decodable PNG: %v", err)
			}
			if img.Bounds().Dx() != 16 || img.Bounds().Dy() != 8 {
				t.Errorf("Expected 16x8 frame, got %v", img.Bounds())
			}
			return
		case "error":
			t.Fatalf("Unexpected error message: %s", msg.Message)
		}
	}
}

func TestServer_RenderSocketRejectsBadParams(t *testing.T) {
	srv := New(0)
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws/render?width=5"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("Failed to dial websocket: %v", err)
	}
	defer conn.Close()

	var msg struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	}
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("Failed to read message: %v", err)
	}
	if msg.Type != "error" || msg.Message == "" {
		t.Errorf("Expected error message, got %+v", msg)
	}
}
