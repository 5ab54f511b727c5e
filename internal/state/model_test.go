package state

import (
	"fmt"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder is a Surface that logs every call as a string.
type recorder struct {
	calls []string
}

func (r *recorder) Fill(c color.Color) {
	r.calls = append(r.calls, fmt.Sprintf("fill %v", c))
}

func (r *recorder) SetStrokeStyle(c color.Color, width float64) {
	r.calls = append(r.calls, fmt.Sprintf("style %v %g", c, width))
}

func (r *recorder) MoveTo(x, y float64) {
	r.calls = append(r.calls, fmt.Sprintf("move %g,%g", x, y))
}

func (r *recorder) LineTo(x, y float64) {
	r.calls = append(r.calls, fmt.Sprintf("line %g,%g", x, y))
}

func (r *recorder) Stroke() {
	r.calls = append(r.calls, "stroke")
}

func (r *recorder) DrawGlyph(glyph string, x, y, size float64, c color.Color) {
	r.calls = append(r.calls, fmt.Sprintf("glyph %s %g,%g %g %v", glyph, x, y, size, c))
}

func (r *recorder) Save()    { r.calls = append(r.calls, "save") }
func (r *recorder) Restore() { r.calls = append(r.calls, "restore") }

var (
	red  = color.NRGBA{R: 255, A: 255}
	blue = color.NRGBA{B: 255, A: 255}
)

func TestStrokeRenderUsesFirstPointStyle(t *testing.T) {
	t.Parallel()

	s := NewStroke(Point{X: 1, Y: 2, Width: 3, Color: red})
	s.Add(Point{X: 4, Y: 5, Width: 9, Color: blue})
	s.Add(Point{X: 6, Y: 7, Width: 1, Color: blue})

	var r recorder
	s.Render(&r, 4)

	assert.Equal(t, []string{
		fmt.Sprintf("style %v 12", red),
		"move 4,8",
		"line 16,20",
		"line 24,28",
		"stroke",
	}, r.calls)
}

func TestStrokeRenderSinglePoint(t *testing.T) {
	t.Parallel()

	s := NewStroke(Point{X: 10, Y: 10, Width: 2, Color: red})

	var r recorder
	s.Render(&r, 1)

	require.Len(t, r.calls, 3)
	assert.Equal(t, "move 10,10", r.calls[1])
	assert.Equal(t, "stroke", r.calls[2])
}

func TestEmptyStrokeRendersNothing(t *testing.T) {
	t.Parallel()

	var r recorder
	Stroke{}.Render(&r, 2)
	assert.Empty(t, r.calls)
}

func TestStickerRenderScalesPositionAndSize(t *testing.T) {
	t.Parallel()

	s := NewSticker(10, 20, "*", 2, blue)

	var r recorder
	s.Render(&r, 4)

	// (16 + 2*2) * 4
	assert.Equal(t, []string{fmt.Sprintf("glyph * 40,80 80 %v", blue)}, r.calls)
}

func TestPreviewRender(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		preview Preview
		want    string
	}{
		{
			name:    "pen marker",
			preview: Preview{X: 50, Y: 50, Width: 1, Color: red},
			want:    fmt.Sprintf("glyph %s 42,58 18 %v", PenMarker, red),
		},
		{
			name:    "sticker glyph",
			preview: Preview{X: 50, Y: 50, Glyph: "#", Width: 1, Color: red},
			want:    fmt.Sprintf("glyph # 42,58 18 %v", red),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var r recorder
			tt.preview.Render(&r, 1)
			assert.Equal(t, []string{tt.want}, r.calls)
		})
	}
}

func TestGlyphSize(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 18.0, GlyphSize(MinWidth))
	assert.Equal(t, 36.0, GlyphSize(MaxWidth))
}

func TestTool(t *testing.T) {
	t.Parallel()

	assert.True(t, Pen.IsPen())
	assert.Equal(t, "pen", Pen.String())

	tool := StickerTool("@")
	assert.False(t, tool.IsPen())
	assert.Equal(t, "sticker(@)", tool.String())
}

func TestNewStrokeAssignsUniqueIDs(t *testing.T) {
	t.Parallel()

	a := NewStroke(Point{})
	b := NewStroke(Point{})
	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
}
