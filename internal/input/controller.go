// Package input turns pointer gestures and toolbar events into ledger
// commits and interactive drawing state.
package input

import (
	"image/color"
	"log/slog"
	"slices"
	"strings"

	"github.com/gogpu/gg"

	"sketchpad/internal/render"
	"sketchpad/internal/state"
)

// GlyphPrompter asks the user for a sticker glyph. done is called with the
// entered text, or ok=false if the prompt was dismissed.
type GlyphPrompter interface {
	PromptGlyph(done func(glyph string, ok bool))
}

// Controller owns the tool state and the in-progress stroke. All methods
// must be called from the UI goroutine.
type Controller struct {
	ledger *state.Ledger
	logger *slog.Logger

	tool     state.Tool
	width    int
	color    color.NRGBA
	stickers []string

	pressed bool
	current *state.Stroke
	preview *state.Preview

	prompter GlyphPrompter
	redraw   func()

	// OnStickerAdded fires after a custom glyph is accepted.
	OnStickerAdded func(glyph string)
	// OnToolChanged fires whenever the active tool changes.
	OnToolChanged func(tool state.Tool)
}

// Option configures a Controller.
type Option func(*Controller)

// WithColor sets the initial pen color.
func WithColor(c color.NRGBA) Option {
	return func(ctl *Controller) { ctl.color = c }
}

// WithStickers sets the initial sticker palette.
func WithStickers(glyphs ...string) Option {
	return func(ctl *Controller) {
		ctl.stickers = ctl.stickers[:0]
		for _, g := range glyphs {
			g = strings.TrimSpace(g)
			if g != "" && !slices.Contains(ctl.stickers, g) {
				ctl.stickers = append(ctl.stickers, g)
			}
		}
	}
}

// WithPrompter sets the collaborator used by AddCustomSticker.
func WithPrompter(p GlyphPrompter) Option {
	return func(ctl *Controller) { ctl.prompter = p }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(ctl *Controller) { ctl.logger = l }
}

// NewController binds a controller to ledger. redraw is invoked
// synchronously after every visible change, including ledger mutations.
func NewController(ledger *state.Ledger, redraw func(), opts ...Option) *Controller {
	c := &Controller{
		ledger: ledger,
		width:  state.DefaultWidth,
		color:  color.NRGBA{A: 255},
		redraw: redraw,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	ledger.SetOnChange(c.changed)
	return c
}

func (c *Controller) changed() {
	if c.redraw != nil {
		c.redraw()
	}
}

func (c *Controller) point(x, y float64) state.Point {
	return state.Point{X: x, Y: y, Width: c.width, Color: c.color}
}

func (c *Controller) setTool(t state.Tool) {
	if c.tool == t {
		return
	}
	c.tool = t
	if c.OnToolChanged != nil {
		c.OnToolChanged(t)
	}
}

// PointerDown starts a gesture at (x, y) in logical canvas coordinates.
func (c *Controller) PointerDown(x, y float64) {
	c.pressed = true
	c.preview = nil

	if !c.tool.IsPen() {
		s := state.NewSticker(x, y, c.tool.Glyph, c.width, c.color)
		c.logger.Debug("place sticker", "id", s.ID, "glyph", s.Glyph, "x", x, "y", y)
		c.setTool(state.Pen)
		c.ledger.Commit(s)
		return
	}

	c.current = state.NewStroke(c.point(x, y))
	c.logger.Debug("start stroke", "id", c.current.ID, "x", x, "y", y)
	c.changed()
}

// PointerMove grows the in-progress stroke while the button is held, and
// otherwise moves the preview.
func (c *Controller) PointerMove(x, y float64) {
	if c.pressed && c.current != nil {
		c.current.Add(c.point(x, y))
		c.changed()
		return
	}
	c.setPreview(x, y)
}

// PointerUp ends the gesture, committing any in-progress stroke.
func (c *Controller) PointerUp() {
	c.pressed = false
	c.commitCurrent()
}

// PointerEnter shows the preview at (x, y).
func (c *Controller) PointerEnter(x, y float64) {
	c.setPreview(x, y)
}

// PointerLeave hides the preview. A stroke still in progress is committed,
// since its pointer-up will not be delivered here.
func (c *Controller) PointerLeave() {
	c.pressed = false
	c.preview = nil
	if c.commitCurrent() {
		return
	}
	c.changed()
}

func (c *Controller) commitCurrent() bool {
	if c.current == nil {
		return false
	}
	s := c.current
	c.current = nil
	c.logger.Debug("commit stroke", "id", s.ID, "points", len(s.Points))
	c.ledger.Commit(s)
	return true
}

func (c *Controller) setPreview(x, y float64) {
	c.preview = &state.Preview{
		X:     x,
		Y:     y,
		Glyph: c.tool.Glyph,
		Width: c.width,
		Color: c.color,
	}
	c.changed()
}

// IncreaseWidth widens the pen by one, up to state.MaxWidth.
func (c *Controller) IncreaseWidth() bool {
	if c.width >= state.MaxWidth {
		return false
	}
	c.width++
	c.refreshPreview()
	return true
}

// DecreaseWidth narrows the pen by one, down to state.MinWidth.
func (c *Controller) DecreaseWidth() bool {
	if c.width <= state.MinWidth {
		return false
	}
	c.width--
	c.refreshPreview()
	return true
}

func (c *Controller) refreshPreview() {
	if c.preview != nil {
		c.setPreview(c.preview.X, c.preview.Y)
	}
}

// SelectSticker arms glyph for the next pointer-down.
func (c *Controller) SelectSticker(glyph string) {
	if glyph == "" {
		return
	}
	c.setTool(state.StickerTool(glyph))
	c.refreshPreview()
}

// SelectPen switches back to freehand drawing.
func (c *Controller) SelectPen() {
	c.setTool(state.Pen)
	c.refreshPreview()
}

// AddCustomSticker asks the prompter for a new glyph and registers it.
func (c *Controller) AddCustomSticker() {
	if c.prompter == nil {
		c.logger.Warn("no glyph prompter configured")
		return
	}
	c.prompter.PromptGlyph(func(glyph string, ok bool) {
		if ok {
			c.RegisterSticker(glyph)
		}
	})
}

// RegisterSticker adds glyph to the palette. Empty and already known
// glyphs are rejected.
func (c *Controller) RegisterSticker(glyph string) bool {
	glyph = strings.TrimSpace(glyph)
	if glyph == "" || slices.Contains(c.stickers, glyph) {
		c.logger.Debug("reject custom sticker", "glyph", glyph)
		return false
	}
	c.stickers = append(c.stickers, glyph)
	c.logger.Info("added custom sticker", "glyph", glyph)
	if c.OnStickerAdded != nil {
		c.OnStickerAdded(glyph)
	}
	return true
}

// AdjustColor sets the pen to a fully saturated color at hue degrees.
func (c *Controller) AdjustColor(hue float64) {
	c.SetColor(color.NRGBAModel.Convert(gg.HSL(hue, 1, 0.5)).(color.NRGBA))
}

// SetColor sets the pen color.
func (c *Controller) SetColor(col color.NRGBA) {
	c.color = col
	c.refreshPreview()
}

// Undo reverts the last commit.
func (c *Controller) Undo() bool { return c.ledger.Undo() }

// Redo re-applies the last undone commit.
func (c *Controller) Redo() bool { return c.ledger.Redo() }

// Clear drops the whole scene, including a stroke in progress.
func (c *Controller) Clear() {
	c.current = nil
	c.ledger.Clear()
}

// Tool returns the active tool.
func (c *Controller) Tool() state.Tool { return c.tool }

// Width returns the pen width.
func (c *Controller) Width() int { return c.width }

// Color returns the pen color.
func (c *Controller) Color() color.NRGBA { return c.color }

// Stickers returns the sticker palette in registration order.
func (c *Controller) Stickers() []string {
	return slices.Clone(c.stickers)
}

// Drawing reports whether a stroke is in progress.
func (c *Controller) Drawing() bool { return c.current != nil }

// PreviewVisible reports whether the cursor preview is shown.
func (c *Controller) PreviewVisible() bool { return c.preview != nil }

// Frame returns what the interactive canvas should show.
func (c *Controller) Frame() render.Frame {
	f := render.Frame{Scene: c.ledger.Scene()}
	if c.current != nil {
		active := *c.current
		f.Active = &active
	}
	if c.preview != nil {
		p := *c.preview
		f.Preview = &p
	}
	return f
}
