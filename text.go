package jigsaw

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// Fonts caches Go Regular faces by size.
type Fonts struct {
	source *text.GoTextFaceSource
	faces  map[float64]*text.GoTextFace
}

// LoadFonts parses the embedded Go Regular TrueType font.
func LoadFonts() (*Fonts, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("jigsaw: failed to parse TTF data: %w", err)
	}
	return &Fonts{source: source, faces: make(map[float64]*text.GoTextFace)}, nil
}

// Face returns the face for the given pixel size.
func (f *Fonts) Face(size float64) *text.GoTextFace {
	if face, ok := f.faces[size]; ok {
		return face
	}
	face := &text.GoTextFace{Source: f.source, Size: size}
	f.faces[size] = face
	return face
}

// Measure returns the rendered size of s.
func (f *Fonts) Measure(s string, size float64) (width, height float64) {
	face := f.Face(size)
	return text.Measure(s, face, face.Metrics().HAscent+face.Metrics().HDescent)
}

// TextStyle configures drawText.
type TextStyle struct {
	Size  float64
	Color Color
	// Center aligns the text's center, rather than its top-left, to (x, y).
	Center bool
	Scale  float64 // zero means 1
}

// drawText draws s at (x, y).
func (f *Fonts) drawText(dst *ebiten.Image, s string, x, y float64, style TextStyle) {
	face := f.Face(style.Size)
	op := &text.DrawOptions{}
	if style.Center {
		op.PrimaryAlign = text.AlignCenter
		op.SecondaryAlign = text.AlignCenter
	}
	scale := style.Scale
	if scale == 0 {
		scale = 1
	}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	c := style.Color
	op.ColorScale.Scale(float32(c.R*c.A), float32(c.G*c.A), float32(c.B*c.A), float32(c.A))
	text.Draw(dst, s, face, op)
}
