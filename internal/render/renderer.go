// Package render repaints a sketch scene onto a drawing surface.
package render

import (
	"image/color"

	"sketchpad/internal/state"
)

// DefaultBackground is the canvas fill color.
var DefaultBackground = color.NRGBA{R: 255, G: 165, B: 0, A: 255}

// Frame is everything a single repaint draws. Active and Preview are
// interactive-only and are nil during export.
type Frame struct {
	state.Scene
	Active  *state.Stroke
	Preview *state.Preview
}

// Renderer performs full-surface repaints.
type Renderer struct {
	Background color.NRGBA
}

// NewRenderer returns a Renderer that fills with bg.
func NewRenderer(bg color.NRGBA) *Renderer {
	return &Renderer{Background: bg}
}

// Redraw clears s and replays f at the given scale multiple. Strokes are
// painted in commit order, the in-progress stroke after them, and stickers
// last. The surface's stroke style is the same on return as on entry.
func (r *Renderer) Redraw(s state.Surface, f Frame, scale float64) {
	s.Save()
	defer s.Restore()

	s.Fill(r.Background)

	if f.Preview != nil {
		f.Preview.Render(s, scale)
	}
	for _, st := range f.Strokes {
		st.Render(s, scale)
	}
	if f.Active != nil {
		f.Active.Render(s, scale)
	}
	for _, st := range f.Stickers {
		st.Render(s, scale)
	}
}
