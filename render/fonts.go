// Package render measures and paints cells with the Go fonts.
package render

import (
	"fmt"
	"math"
	"sync"

	"go.uber.org/multierr"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"mxc/cell"
)

type family int

const (
	familyRegular family = iota
	familyItalic
	familyBold
	familyMono
)

func familyOf(style cell.TextStyle) family {
	switch style {
	case cell.TextStyleVariable:
		return familyItalic
	case cell.TextStyleInput, cell.TextStyleString:
		return familyMono
	case cell.TextStyleMainPrompt, cell.TextStyleOtherPrompt, cell.TextStyleLabel, cell.TextStyleUserLabel,
		cell.TextStyleTitle, cell.TextStyleSection, cell.TextStyleSubsection, cell.TextStyleSubsubsection,
		cell.TextStyleHeading5, cell.TextStyleHeading6:
		return familyBold
	}
	return familyRegular
}

type faceKey struct {
	family family
	// size in half points
	size int
}

// Fonts implements cell.Measurer on top of the Go font family. Faces are
// created on demand and cached per style family and size.
type Fonts struct {
	dpi   float64
	fonts map[family]*opentype.Font

	mu    sync.Mutex
	faces map[faceKey]font.Face
}

// NewFonts parses embedded Go fonts. Sizes are interpreted at dpi, 72
// makes one point one pixel.
func NewFonts(dpi float64) (*Fonts, error) {
	if dpi <= 0 {
		dpi = 72
	}
	f := &Fonts{
		dpi:   dpi,
		fonts: make(map[family]*opentype.Font),
		faces: make(map[faceKey]font.Face),
	}
	for fam, data := range map[family][]byte{
		familyRegular: goregular.TTF,
		familyItalic:  goitalic.TTF,
		familyBold:    gobold.TTF,
		familyMono:    gomono.TTF,
	} {
		parsed, err := opentype.Parse(data)
		if err != nil {
			return nil, fmt.Errorf("unable to parse font: %w", err)
		}
		f.fonts[fam] = parsed
	}
	return f, nil
}

func (f *Fonts) face(style cell.TextStyle, size float64) (font.Face, error) {
	key := faceKey{family: familyOf(style), size: int(math.Round(max(size, 1) * 2))}

	f.mu.Lock()
	defer f.mu.Unlock()

	if face, ok := f.faces[key]; ok {
		return face, nil
	}
	face, err := opentype.NewFace(f.fonts[key.family], &opentype.FaceOptions{
		Size:    float64(key.size) / 2,
		DPI:     f.dpi,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("unable to create font face: %w", err)
	}
	f.faces[key] = face
	return face, nil
}

// TextSize returns width and height of text in pixels.
func (f *Fonts) TextSize(text string, style cell.TextStyle, fontSize float64) (int, int) {
	face, err := f.face(style, fontSize)
	if err != nil {
		return cell.MonoMeasurer{}.TextSize(text, style, fontSize)
	}
	m := face.Metrics()
	return font.MeasureString(face, text).Ceil(), (m.Ascent + m.Descent).Ceil()
}

// Close releases all cached faces.
func (f *Fonts) Close() (err error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for key, face := range f.faces {
		err = multierr.Append(err, face.Close())
		delete(f.faces, key)
	}
	return err
}
