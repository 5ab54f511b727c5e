package ui

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"sketchpad/internal/state"
)

// --- Current color swatch ---
type colorSwatch struct {
	widget.BaseWidget
	rect *canvas.Rectangle
}

func newColorSwatch(c color.Color) *colorSwatch {
	s := &colorSwatch{rect: canvas.NewRectangle(c)}
	s.rect.SetMinSize(fyne.NewSize(24, 24))
	s.rect.StrokeColor = color.Gray{Y: 150}
	s.rect.StrokeWidth = 1
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) SetColor(c color.Color) {
	s.rect.FillColor = c
	s.rect.Refresh()
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(s.rect)
}

// Toolbar holds the controls that drive a Board.
type Toolbar struct {
	board    *Board
	width    *widget.Label
	tool     *widget.Label
	swatch   *colorSwatch
	hue      *widget.Slider
	stickers *fyne.Container

	content fyne.CanvasObject
}

// NewToolbar builds the control rows for b and subscribes to its changes.
func NewToolbar(b *Board) *Toolbar {
	t := &Toolbar{
		board:    b,
		width:    widget.NewLabel(""),
		tool:     widget.NewLabel(""),
		swatch:   newColorSwatch(b.Controller.Color()),
		stickers: container.NewHBox(),
	}

	history := container.NewHBox(
		widget.NewButtonWithIcon("Clear", theme.DeleteIcon(), b.Controller.Clear),
		widget.NewButtonWithIcon("Undo", theme.ContentUndoIcon(), func() { b.Controller.Undo() }),
		widget.NewButtonWithIcon("Redo", theme.ContentRedoIcon(), func() { b.Controller.Redo() }),
		widget.NewSeparator(),
		widget.NewButtonWithIcon("Export", theme.DownloadIcon(), b.ShowExport),
	)

	pen := container.NewHBox(
		widget.NewButtonWithIcon("", theme.DocumentCreateIcon(), b.Controller.SelectPen),
		widget.NewButtonWithIcon("", theme.ContentRemoveIcon(), func() {
			b.Controller.DecreaseWidth()
			t.refreshWidth()
		}),
		t.width,
		widget.NewButtonWithIcon("", theme.ContentAddIcon(), func() {
			b.Controller.IncreaseWidth()
			t.refreshWidth()
		}),
	)

	t.hue = widget.NewSlider(0, 359)
	t.hue.Step = 1
	t.hue.OnChanged = func(v float64) {
		b.Controller.AdjustColor(v)
		t.swatch.SetColor(b.Controller.Color())
	}
	hue := container.New(layout.NewGridWrapLayout(fyne.NewSize(160, 35)), t.hue)

	for _, g := range b.Controller.Stickers() {
		t.addStickerButton(g)
	}
	b.Controller.OnStickerAdded = t.addStickerButton
	b.Controller.OnToolChanged = func(tool state.Tool) { t.refreshTool(tool) }

	stickers := container.NewHBox(
		widget.NewLabel("Stickers:"),
		t.stickers,
		widget.NewButtonWithIcon("", theme.ContentAddIcon(), b.Controller.AddCustomSticker),
	)

	t.refreshWidth()
	t.refreshTool(b.Controller.Tool())

	t.content = container.NewVBox(
		container.NewHBox(history, layout.NewSpacer(), t.tool),
		container.NewHBox(pen, widget.NewSeparator(), widget.NewLabel("Color:"), t.swatch, hue),
		container.NewHScroll(stickers),
	)
	return t
}

// Object returns the toolbar's canvas object.
func (t *Toolbar) Object() fyne.CanvasObject { return t.content }

func (t *Toolbar) addStickerButton(glyph string) {
	t.stickers.Add(widget.NewButton(glyph, func() {
		t.board.Controller.SelectSticker(glyph)
	}))
}

func (t *Toolbar) refreshWidth() {
	t.width.SetText(fmt.Sprintf("Width: %d", t.board.Controller.Width()))
}

func (t *Toolbar) refreshTool(tool state.Tool) {
	t.tool.SetText("Tool: " + tool.String())
}
