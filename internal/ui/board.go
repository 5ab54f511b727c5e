package ui

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"sketchpad/internal/input"
	"sketchpad/internal/render"
)

// DisplayZoom is how many display units one logical canvas unit takes on screen.
const DisplayZoom = 2

// SketchWidget shows the live scene and forwards pointer events to the
// controller in logical canvas coordinates.
type SketchWidget struct {
	widget.BaseWidget

	ctl      *input.Controller
	renderer *render.Renderer
	fonts    *render.Fonts
	logical  int
	dragging bool
}

var _ fyne.Widget = (*SketchWidget)(nil)
var _ fyne.Draggable = (*SketchWidget)(nil)
var _ desktop.Mouseable = (*SketchWidget)(nil)
var _ desktop.Hoverable = (*SketchWidget)(nil)
var _ desktop.Cursorable = (*SketchWidget)(nil)

// NewSketchWidget creates a square widget for a logical×logical canvas.
func NewSketchWidget(renderer *render.Renderer, fonts *render.Fonts, logical int) *SketchWidget {
	s := &SketchWidget{
		renderer: renderer,
		fonts:    fonts,
		logical:  logical,
	}
	s.ExtendBaseWidget(s)
	return s
}

// SetController attaches the controller that receives pointer events.
func (s *SketchWidget) SetController(ctl *input.Controller) {
	s.ctl = ctl
}

func (s *SketchWidget) toLogical(p fyne.Position) (float64, float64) {
	size := s.Size()
	if size.Width <= 0 || size.Height <= 0 {
		return float64(p.X), float64(p.Y)
	}
	return float64(p.X) * float64(s.logical) / float64(size.Width),
		float64(p.Y) * float64(s.logical) / float64(size.Height)
}

// paint renders the current frame at the raster's pixel size.
func (s *SketchWidget) paint(w, h int) image.Image {
	if w <= 0 || h <= 0 {
		return image.NewRGBA(image.Rect(0, 0, 1, 1))
	}
	c := render.NewCanvas(w, h, s.fonts)
	defer c.Close()

	var f render.Frame
	if s.ctl != nil {
		f = s.ctl.Frame()
	}
	scale := float64(min(w, h)) / float64(s.logical)
	s.renderer.Redraw(c, f, scale)
	return c.Image()
}

func (s *SketchWidget) MouseDown(e *desktop.MouseEvent) {
	if s.ctl == nil || e.Button != desktop.MouseButtonPrimary {
		return
	}
	s.ctl.PointerDown(s.toLogical(e.Position))
}

func (s *SketchWidget) MouseUp(e *desktop.MouseEvent) {
	if s.ctl == nil || e.Button != desktop.MouseButtonPrimary {
		return
	}
	s.dragging = false
	s.ctl.PointerUp()
}

func (s *SketchWidget) MouseIn(e *desktop.MouseEvent) {
	if s.ctl != nil {
		s.ctl.PointerEnter(s.toLogical(e.Position))
	}
}

func (s *SketchWidget) MouseMoved(e *desktop.MouseEvent) {
	// While dragging, Dragged already delivered this move.
	if s.ctl == nil || s.dragging {
		return
	}
	s.ctl.PointerMove(s.toLogical(e.Position))
}

func (s *SketchWidget) MouseOut() {
	if s.ctl != nil {
		s.dragging = false
		s.ctl.PointerLeave()
	}
}

func (s *SketchWidget) Dragged(e *fyne.DragEvent) {
	if s.ctl == nil {
		return
	}
	s.dragging = true
	s.ctl.PointerMove(s.toLogical(e.Position))
}

func (s *SketchWidget) DragEnd() {
	if s.ctl == nil || !s.dragging {
		return
	}
	s.dragging = false
	s.ctl.PointerUp()
}

// Cursor hides the system pointer while the preview marker stands in for it.
func (s *SketchWidget) Cursor() desktop.Cursor {
	if s.ctl != nil && s.ctl.PreviewVisible() {
		return desktop.HiddenCursor
	}
	return desktop.DefaultCursor
}

func (s *SketchWidget) CreateRenderer() fyne.WidgetRenderer {
	r := &sketchRenderer{sketch: s}
	r.raster = canvas.NewRaster(s.paint)
	r.raster.ScaleMode = canvas.ImageScalePixels
	return r
}

type sketchRenderer struct {
	sketch *SketchWidget
	raster *canvas.Raster
}

func (r *sketchRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.raster}
}

func (r *sketchRenderer) Layout(size fyne.Size) {
	r.raster.Resize(size)
}

func (r *sketchRenderer) MinSize() fyne.Size {
	edge := float32(r.sketch.logical * DisplayZoom)
	return fyne.NewSize(edge, edge)
}

func (r *sketchRenderer) Refresh() {
	r.raster.Refresh()
}

func (r *sketchRenderer) Destroy() {}
