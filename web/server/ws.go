package server

import (
	"bytes"
	"encoding/base64"
	"image/png"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/rv42/go-ray-caster/pkg/renderer"
	"github.com/rv42/go-ray-caster/pkg/scene"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// rowMessage reports progress after each completed row
type rowMessage struct {
	Type string `json:"type"`
	Row  int    `json:"row"`
	Rows int    `json:"rows"`
}

// frameMessage carries the finished image as base64 PNG
type frameMessage struct {
	Type      string `json:"type"`
	ImageData string `json:"imageData"`
}

// errorMessage reports a failed request to the client
type errorMessage struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// handleRenderSocket streams row progress over a websocket while the
// render runs, then sends the finished frame and closes.
func (s *Server) handleRenderSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Errorf("websocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	req, err := parseRenderRequest(r)
	if err != nil {
		if werr := conn.WriteJSON(errorMessage{Type: "error", Message: err.Error()}); werr != nil {
			logger.Errorf("websocket write failed: %v", werr)
		}
		return
	}

	sc, cameraConfig := scene.Builtin(req.Scene, req.Brightness)
	camera := buildCamera(req, cameraConfig)

	logger.Infof("streaming render of scene %d at %dx%d", req.Scene, req.Width, req.Height)

	// The row callback runs synchronously inside the pixel loop, so
	// writes to the connection never overlap.
	buffer := renderer.New().RenderWithProgress(sc, camera, req.Width, req.Height, func(row, totalRows int) {
		if werr := conn.WriteJSON(rowMessage{Type: "row", Row: row, Rows: totalRows}); werr != nil {
			logger.Debugf("websocket progress write failed: %v", werr)
		}
	})

	var buf bytes.Buffer
	if err := png.Encode(&buf, buffer.RGBA()); err != nil {
		logger.Errorf("failed to encode frame: %v", err)
		return
	}

	frame := frameMessage{
		Type:      "frame",
		ImageData: base64.StdEncoding.EncodeToString(buf.Bytes()),
	}
	if err := conn.WriteJSON(frame); err != nil {
		logger.Errorf("websocket frame write failed: %v", err)
	}
}
