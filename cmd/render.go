package cmd

import (
	"fmt"
	"image/png"
	"io"
	"os"
	"strings"
	"time"

	"github.com/urfave/cli"

	"github.com/rv42/go-ray-caster/pkg/geometry"
	"github.com/rv42/go-ray-caster/pkg/ppm"
	"github.com/rv42/go-ray-caster/pkg/renderer"
	"github.com/rv42/go-ray-caster/pkg/scene"
)

// RenderScene renders a built-in scene and writes the image to the
// given output file, or to stdout when no output is set.
func RenderScene(ctx *cli.Context) error {
	setupLogging(ctx)

	width := ctx.Int("width")
	height := ctx.Int("height")
	if width <= 0 || height <= 0 {
		return fmt.Errorf("image dimensions must be positive, got %dx%d", width, height)
	}

	// These options are parsed for compatibility but have no effect on
	// the rendering path.
	if ctx.IsSet("aa") {
		logger.Noticef("option --aa=%d is accepted but not applied", ctx.Int("aa"))
	}
	if ctx.Bool("reflect") {
		logger.Notice("option --reflect is accepted but not applied")
	}
	if ctx.Bool("mt") {
		logger.Notice("option --mt is accepted but not applied")
	}

	sceneID := ctx.Int("scene")
	sc, cameraConfig := scene.Builtin(sceneID, ctx.Float64("brightness"))
	logger.Infof("scene %d: %d objects, %d lights", sceneID, len(sc.Objects), len(sc.Lights))

	cameraConfig = geometry.MergeCameraConfig(cameraConfig, geometry.CameraConfig{
		VFov:        ctx.Float64("fov"),
		AspectRatio: float64(width) / float64(height),
	})
	camera := geometry.NewCamera(cameraConfig)

	start := time.Now()
	buffer := renderer.New().Render(sc, camera, width, height)
	logger.Noticef("rendered %dx%d in %s", width, height, time.Since(start).Round(time.Millisecond))

	return writeImage(buffer, ctx.String("output"), ctx.String("format"))
}

// writeImage dispatches the finished buffer to a file or stdout in the
// requested format. An empty format is inferred from the output name,
// defaulting to ppm.
func writeImage(buffer *ppm.Buffer, output, format string) error {
	if format == "" {
		if strings.HasSuffix(output, ".png") {
			format = "png"
		} else {
			format = "ppm"
		}
	}

	var w io.Writer = os.Stdout
	if output != "" {
		file, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %v", err)
		}
		defer file.Close()
		w = file
	}

	switch format {
	case "ppm":
		if err := buffer.Encode(w); err != nil {
			return fmt.Errorf("failed to write ppm output: %v", err)
		}
	case "png":
		if err := png.Encode(w, buffer.RGBA()); err != nil {
			return fmt.Errorf("failed to write png output: %v", err)
		}
	default:
		return fmt.Errorf("unknown output format %q", format)
	}

	if output != "" {
		logger.Noticef("image written to %s", output)
	}
	return nil
}
