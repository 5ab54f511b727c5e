package render

import (
	"fmt"

	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
)

// Fonts hands out glyph faces by pixel size. The underlying font source is
// parsed once and shared by every Canvas created from it.
type Fonts struct {
	source *text.FontSource
	faces  map[float64]text.Face
}

// NewFonts loads the embedded Go Regular font.
func NewFonts() (*Fonts, error) {
	return NewFontsFromData(goregular.TTF)
}

// NewFontsFromData parses a TrueType/OpenType font.
func NewFontsFromData(data []byte) (*Fonts, error) {
	source, err := text.NewFontSource(data)
	if err != nil {
		return nil, fmt.Errorf("load glyph font: %w", err)
	}
	return &Fonts{
		source: source,
		faces:  make(map[float64]text.Face),
	}, nil
}

// Face returns a face of the given size, creating it on first use.
func (f *Fonts) Face(size float64) text.Face {
	if face, ok := f.faces[size]; ok {
		return face
	}
	face := f.source.Face(size)
	f.faces[size] = face
	return face
}

// Name returns the font family name.
func (f *Fonts) Name() string {
	return f.source.Name()
}

// Close releases the font source.
func (f *Fonts) Close() error {
	f.faces = nil
	return f.source.Close()
}
