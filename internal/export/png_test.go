package export

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sketchpad/internal/render"
	"sketchpad/internal/state"
)

func newExporter(t *testing.T) *Exporter {
	t.Helper()
	fonts, err := render.NewFonts()
	require.NoError(t, err)
	t.Cleanup(func() { _ = fonts.Close() })
	return &Exporter{
		Renderer: render.NewRenderer(render.DefaultBackground),
		Fonts:    fonts,
		Size:     256,
	}
}

func isBackground(c color.Color) bool {
	r, g, b, _ := c.RGBA()
	bg := render.DefaultBackground
	near := func(v uint32, want uint8) bool {
		d := int(v>>8) - int(want)
		return d >= -1 && d <= 1
	}
	return near(r, bg.R) && near(g, bg.G) && near(b, bg.B)
}

func diagonal() state.Stroke {
	ink := color.NRGBA{A: 255}
	s := state.NewStroke(state.Point{X: 10, Y: 10, Width: 3, Color: ink})
	s.Add(state.Point{X: 128, Y: 128, Width: 3, Color: ink})
	s.Add(state.Point{X: 250, Y: 200, Width: 3, Color: ink})
	return *s
}

func TestRasterizeScalesSurface(t *testing.T) {
	t.Parallel()

	e := newExporter(t)
	scene := state.Scene{Strokes: []state.Stroke{diagonal()}}

	img, err := e.Rasterize(scene, 4)
	require.NoError(t, err)
	require.Equal(t, image.Rect(0, 0, 1024, 1024), img.Bounds())

	// Midpoint of the first segment, scaled.
	assert.False(t, isBackground(img.At(276, 276)))
	assert.True(t, isBackground(img.At(1000, 20)))

	marked := 0
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if !isBackground(img.At(x, y)) {
				marked++
				assert.True(t, x >= 0 && x < 1024 && y >= 0 && y < 1024)
			}
		}
	}
	assert.NotZero(t, marked)
}

func TestRasterizeEmptySceneIsBackground(t *testing.T) {
	t.Parallel()

	img, err := newExporter(t).Rasterize(state.Scene{}, 1)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 256, 256), img.Bounds())
	for _, p := range []image.Point{{0, 0}, {128, 128}, {255, 255}} {
		assert.True(t, isBackground(img.At(p.X, p.Y)), "pixel %v", p)
	}
}

func TestRasterizeRejectsBadScale(t *testing.T) {
	t.Parallel()

	_, err := newExporter(t).Rasterize(state.Scene{}, 0)
	assert.ErrorIs(t, err, ErrInvalidScale)
}

func TestWritePNG(t *testing.T) {
	t.Parallel()

	e := newExporter(t)
	scene := state.Scene{
		Strokes:  []state.Stroke{diagonal()},
		Stickers: []state.Sticker{state.NewSticker(40, 60, "A", 4, color.NRGBA{B: 255, A: 255})},
	}

	var buf bytes.Buffer
	require.NoError(t, e.WritePNG(&buf, scene, 2))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 512, img.Bounds().Dx())
	assert.Equal(t, 512, img.Bounds().Dy())
}

func TestFileName(t *testing.T) {
	t.Parallel()

	ts := time.Date(2024, 10, 31, 21, 5, 9, 0, time.UTC)
	assert.Equal(t, "sketchpad-20241031-210509.png", FileName(ts))
}
