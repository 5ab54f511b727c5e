package render

import (
	"image"
	"image/color"
	"io"

	"github.com/gogpu/gg"

	"sketchpad/internal/state"
)

type strokeStyle struct {
	color color.Color
	width float64
}

// Canvas is a state.Surface backed by a gg software context.
type Canvas struct {
	dc    *gg.Context
	fonts *Fonts
	style strokeStyle
	saved []strokeStyle
	err   error
}

var _ state.Surface = (*Canvas)(nil)

// NewCanvas allocates a width×height pixel surface.
func NewCanvas(width, height int, fonts *Fonts) *Canvas {
	dc := gg.NewContext(width, height)
	dc.SetLineCap(gg.LineCapRound)
	dc.SetLineJoin(gg.LineJoinRound)
	c := &Canvas{
		dc:    dc,
		fonts: fonts,
		style: strokeStyle{color: color.Black, width: 1},
	}
	c.apply()
	return c
}

func (c *Canvas) apply() {
	c.dc.SetColor(c.style.color)
	c.dc.SetLineWidth(c.style.width)
}

// Width returns the surface width in pixels.
func (c *Canvas) Width() int { return c.dc.Width() }

// Height returns the surface height in pixels.
func (c *Canvas) Height() int { return c.dc.Height() }

// Fill paints the whole surface with col.
func (c *Canvas) Fill(col color.Color) {
	c.dc.ClearWithColor(gg.FromColor(col))
}

// SetStrokeStyle sets the color and line width used by Stroke.
func (c *Canvas) SetStrokeStyle(col color.Color, width float64) {
	c.style = strokeStyle{color: col, width: width}
	c.apply()
}

func (c *Canvas) MoveTo(x, y float64) { c.dc.MoveTo(x, y) }

func (c *Canvas) LineTo(x, y float64) { c.dc.LineTo(x, y) }

// Stroke paints the current path and clears it. The first failure is kept
// and reported by Err.
func (c *Canvas) Stroke() {
	if err := c.dc.Stroke(); err != nil && c.err == nil {
		c.err = err
	}
}

// DrawGlyph draws glyph with its baseline-left corner at (x, y). The stroke
// style is left untouched.
func (c *Canvas) DrawGlyph(glyph string, x, y, size float64, col color.Color) {
	if c.fonts == nil || glyph == "" || size <= 0 {
		return
	}
	c.dc.SetFont(c.fonts.Face(size))
	c.dc.SetColor(col)
	c.dc.DrawString(glyph, x, y)
	c.dc.SetColor(c.style.color)
}

// Save pushes the current stroke style.
func (c *Canvas) Save() {
	c.saved = append(c.saved, c.style)
}

// Restore pops the last saved stroke style. Unbalanced calls are ignored.
func (c *Canvas) Restore() {
	n := len(c.saved)
	if n == 0 {
		return
	}
	c.style = c.saved[n-1]
	c.saved = c.saved[:n-1]
	c.apply()
}

// StrokeStyle returns the current color and line width.
func (c *Canvas) StrokeStyle() (color.Color, float64) {
	return c.style.color, c.style.width
}

// Err returns the first rasterisation error, if any.
func (c *Canvas) Err() error { return c.err }

// Image returns a copy of the pixels.
func (c *Canvas) Image() image.Image { return c.dc.Image() }

// EncodePNG writes the surface as PNG.
func (c *Canvas) EncodePNG(w io.Writer) error { return c.dc.EncodePNG(w) }

// Close releases the gg context.
func (c *Canvas) Close() error { return c.dc.Close() }
