package state

import (
	"image/color"

	"github.com/google/uuid"
)

// Pen widths are whole numbers in logical canvas units.
const (
	MinWidth     = 1
	MaxWidth     = 10
	DefaultWidth = 3
)

// Glyph sizing shared by stickers and the cursor preview.
const (
	BaseGlyphSize  = 16.0
	GlyphWidthTerm = 2.0
)

// PenMarker is drawn under the cursor while the pen tool is active.
const PenMarker = "•"

// PreviewBias shifts the preview glyph so its visual center sits near the cursor.
var PreviewBias = struct{ X, Y float64 }{X: -8, Y: 8}

// GlyphSize returns the logical font size for a glyph drawn at the given pen width.
func GlyphSize(width int) float64 {
	return BaseGlyphSize + GlyphWidthTerm*float64(width)
}

// Kind tags an order-log entry with the committed list it refers to.
type Kind int

const (
	KindStroke Kind = iota
	KindSticker
)

func (k Kind) String() string {
	switch k {
	case KindStroke:
		return "stroke"
	case KindSticker:
		return "sticker"
	default:
		return "unknown"
	}
}

// Surface is the drawing target every command renders onto.
// Implementations must not carry style between calls other than what
// SetStrokeStyle sets; Save and Restore bracket a full repaint.
type Surface interface {
	Fill(c color.Color)
	SetStrokeStyle(c color.Color, width float64)
	MoveTo(x, y float64)
	LineTo(x, y float64)
	Stroke()
	DrawGlyph(glyph string, x, y, size float64, c color.Color)
	Save()
	Restore()
}

// Command is anything that can replay itself onto a Surface at a scale multiple.
type Command interface {
	Render(s Surface, scale float64)
}

// Entry is a command the Ledger can commit.
type Entry interface {
	Command
	Kind() Kind
}

// Point is a single sample of a stroke, carrying the tool state at capture time.
type Point struct {
	X     float64
	Y     float64
	Width int
	Color color.NRGBA
}

// Stroke is a freehand line. The first point's width and color style the whole stroke.
type Stroke struct {
	ID     string
	Points []Point
}

// NewStroke starts a stroke seeded with its first point.
func NewStroke(first Point) *Stroke {
	return &Stroke{
		ID:     uuid.NewString(),
		Points: []Point{first},
	}
}

// Add appends a point to an in-progress stroke.
func (s *Stroke) Add(p Point) {
	s.Points = append(s.Points, p)
}

// Kind implements Entry.
func (s Stroke) Kind() Kind { return KindStroke }

// Render draws connected segments through all points.
func (s Stroke) Render(surface Surface, scale float64) {
	if len(s.Points) == 0 {
		return
	}
	first := s.Points[0]
	surface.SetStrokeStyle(first.Color, float64(first.Width)*scale)
	surface.MoveTo(first.X*scale, first.Y*scale)
	for _, p := range s.Points[1:] {
		surface.LineTo(p.X*scale, p.Y*scale)
	}
	surface.Stroke()
}

func (s Stroke) clone() Stroke {
	points := make([]Point, len(s.Points))
	copy(points, s.Points)
	return Stroke{ID: s.ID, Points: points}
}

// Sticker is a glyph placed on the canvas. It never changes after commit.
type Sticker struct {
	ID    string
	X     float64
	Y     float64
	Glyph string
	Width int
	Color color.NRGBA
}

// NewSticker places glyph at (x, y) with the given tool style.
func NewSticker(x, y float64, glyph string, width int, c color.NRGBA) Sticker {
	return Sticker{
		ID:    uuid.NewString(),
		X:     x,
		Y:     y,
		Glyph: glyph,
		Width: width,
		Color: c,
	}
}

// Kind implements Entry.
func (s Sticker) Kind() Kind { return KindSticker }

// Render draws the glyph with its baseline-left corner at the sticker position.
func (s Sticker) Render(surface Surface, scale float64) {
	surface.DrawGlyph(s.Glyph, s.X*scale, s.Y*scale, GlyphSize(s.Width)*scale, s.Color)
}

// Preview is the cursor-following tool marker. It is never committed.
// An empty Glyph means the pen tool is active.
type Preview struct {
	X     float64
	Y     float64
	Glyph string
	Width int
	Color color.NRGBA
}

// Render draws the active glyph, or PenMarker, offset by PreviewBias.
func (p Preview) Render(surface Surface, scale float64) {
	glyph := p.Glyph
	if glyph == "" {
		glyph = PenMarker
	}
	x := (p.X + PreviewBias.X) * scale
	y := (p.Y + PreviewBias.Y) * scale
	surface.DrawGlyph(glyph, x, y, GlyphSize(p.Width)*scale, p.Color)
}

// Tool is the active input tool. The zero value is the pen.
type Tool struct {
	Glyph string
}

// Pen is the freehand drawing tool.
var Pen = Tool{}

// StickerTool returns a tool that places glyph on the next pointer-down.
func StickerTool(glyph string) Tool {
	return Tool{Glyph: glyph}
}

// IsPen reports whether t draws strokes.
func (t Tool) IsPen() bool { return t.Glyph == "" }

func (t Tool) String() string {
	if t.IsPen() {
		return "pen"
	}
	return "sticker(" + t.Glyph + ")"
}

// Scene is a snapshot of everything committed, in commit order per kind.
type Scene struct {
	Strokes  []Stroke
	Stickers []Sticker
}

// Empty reports whether nothing is committed.
func (s Scene) Empty() bool {
	return len(s.Strokes) == 0 && len(s.Stickers) == 0
}
