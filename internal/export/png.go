// Package export rasterises the committed scene at a multiple of the
// logical canvas size.
package export

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"log/slog"
	"time"

	"sketchpad/internal/render"
	"sketchpad/internal/state"
)

// DefaultScale is the multiple used by the export button.
const DefaultScale = 4

// ErrInvalidScale is returned for scale multiples below 1.
var ErrInvalidScale = errors.New("export scale must be at least 1")

// Exporter replays scenes onto offscreen surfaces.
type Exporter struct {
	Renderer *render.Renderer
	Fonts    *render.Fonts
	Size     int // logical canvas edge length
	Logger   *slog.Logger
}

// Rasterize paints scene onto a fresh Size*scale square surface and
// returns its pixels. The surface is released before returning.
func (e *Exporter) Rasterize(scene state.Scene, scale int) (image.Image, error) {
	if scale < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidScale, scale)
	}
	edge := e.Size * scale

	c := render.NewCanvas(edge, edge, e.Fonts)
	defer func() {
		if err := c.Close(); err != nil && e.Logger != nil {
			e.Logger.Warn("release export surface", "err", err)
		}
	}()

	e.Renderer.Redraw(c, render.Frame{Scene: scene}, float64(scale))
	if err := c.Err(); err != nil {
		return nil, fmt.Errorf("rasterize scene: %w", err)
	}
	return c.Image(), nil
}

// WritePNG rasterises scene and encodes it to w.
func (e *Exporter) WritePNG(w io.Writer, scene state.Scene, scale int) error {
	start := time.Now()
	img, err := e.Rasterize(scene, scale)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	if e.Logger != nil {
		e.Logger.Info("exported scene",
			"strokes", len(scene.Strokes),
			"stickers", len(scene.Stickers),
			"size", img.Bounds().Dx(),
			"took", time.Since(start).Round(time.Millisecond))
	}
	return nil
}

// FileName returns the suggested download name for an export taken at t.
func FileName(t time.Time) string {
	return "sketchpad-" + t.Format("20060102-150405") + ".png"
}
