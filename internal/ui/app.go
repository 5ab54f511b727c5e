package ui

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"sketchpad/internal/config"
	"sketchpad/internal/export"
	"sketchpad/internal/input"
	"sketchpad/internal/render"
	"sketchpad/internal/state"
)

// AppTitle is the window title.
const AppTitle = "My Spooky Sketchpad!"

// Board wires the ledger, controller, canvas widget and exporter together.
type Board struct {
	Ledger     *state.Ledger
	Controller *input.Controller
	Sketch     *SketchWidget
	Exporter   *export.Exporter

	cfg    config.Config
	window fyne.Window
	logger *slog.Logger
}

// NewBoard builds a board for cfg. window is the parent for dialogs and
// may be nil in tests.
func NewBoard(cfg config.Config, fonts *render.Fonts, window fyne.Window, logger *slog.Logger) *Board {
	renderer := render.NewRenderer(cfg.BackgroundColor())
	b := &Board{
		Ledger: state.NewLedger(nil),
		Sketch: NewSketchWidget(renderer, fonts, cfg.CanvasSize),
		Exporter: &export.Exporter{
			Renderer: renderer,
			Fonts:    fonts,
			Size:     cfg.CanvasSize,
			Logger:   logger.With("component", "export"),
		},
		cfg:    cfg,
		window: window,
		logger: logger.With("component", "board"),
	}

	b.Controller = input.NewController(b.Ledger, b.Sketch.Refresh,
		input.WithColor(cfg.Pen()),
		input.WithStickers(cfg.Stickers...),
		input.WithPrompter(b),
		input.WithLogger(logger.With("component", "input")),
	)
	b.Sketch.SetController(b.Controller)
	return b
}

// PromptGlyph asks for a custom sticker glyph in a form dialog.
func (b *Board) PromptGlyph(done func(glyph string, ok bool)) {
	if b.window == nil {
		done("", false)
		return
	}
	entry := widget.NewEntry()
	entry.SetPlaceHolder("🕸")
	items := []*widget.FormItem{widget.NewFormItem("Glyph", entry)}
	dialog.ShowForm("Custom sticker", "Add", "Cancel", items, func(ok bool) {
		done(entry.Text, ok)
	}, b.window)
}

// WriteExport encodes the committed scene at the configured export scale.
func (b *Board) WriteExport(w io.Writer) error {
	return b.Exporter.WritePNG(w, b.Ledger.Scene(), b.cfg.ExportScale)
}

// ShowExport offers the scene as a PNG download via a save dialog.
func (b *Board) ShowExport() {
	if b.window == nil {
		return
	}
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			b.logger.Error("export dialog", "err", err)
			dialog.ShowError(err, b.window)
			return
		}
		if writer == nil {
			return // cancelled
		}
		b.saveTo(writer)
	}, b.window)
	d.SetFileName(export.FileName(time.Now()))
	d.Show()
}

func (b *Board) saveTo(writer fyne.URIWriteCloser) {
	defer func() {
		if err := writer.Close(); err != nil {
			b.logger.Error("close export file", "uri", writer.URI().String(), "err", err)
		}
	}()

	if err := b.WriteExport(writer); err != nil {
		err = fmt.Errorf("export %s: %w", writer.URI().Name(), err)
		b.logger.Error("export failed", "err", err)
		dialog.ShowError(err, b.window)
		return
	}
	b.logger.Info("saved export", "uri", writer.URI().String())
}

// Content lays out the toolbar above the canvas.
func (b *Board) Content() fyne.CanvasObject {
	toolbar := NewToolbar(b)
	return container.NewBorder(toolbar.Object(), nil, nil, nil, container.NewCenter(b.Sketch))
}

// RunApp opens the sketchpad window and blocks until it is closed.
func RunApp(cfg config.Config, logger *slog.Logger) error {
	fonts, err := render.NewFonts()
	if err != nil {
		return err
	}
	defer fonts.Close()

	myApp := app.NewWithID("io.sketchpad.app")
	myWindow := myApp.NewWindow(AppTitle)

	board := NewBoard(cfg, fonts, myWindow, logger)
	myWindow.SetContent(board.Content())
	myWindow.Resize(fyne.NewSize(float32(cfg.CanvasSize*DisplayZoom)+80, float32(cfg.CanvasSize*DisplayZoom)+200))

	logger.Info("starting sketchpad", "canvas", cfg.CanvasSize, "export_scale", cfg.ExportScale, "font", fonts.Name())
	myWindow.ShowAndRun()
	return nil
}
