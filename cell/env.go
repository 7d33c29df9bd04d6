package cell

import (
	"image"
	"math"

	"golang.org/x/text/width"
)

// Layout constants, in unscaled pixels or points.
const (
	ExpIndent   = 2
	TextPadding = 1
	MinSize     = 6

	subSupDec          = 3
	limitFontDecrease  = 1
	sumFontDecrease    = 2
	intFontDecrease    = 2
	exptFontDecrease   = 3
	defaultFontSize    = 12
	defaultMinFontSize = 8
)

// Measurer provides font metrics. fontSize is already scaled by zoom.
type Measurer interface {
	TextSize(text string, style TextStyle, fontSize float64) (w, h int)
}

// Painter is the drawing surface. Points are at the left edge of the glyph
// run and at its vertical center.
type Painter interface {
	Text(p image.Point, text string, style TextStyle, fontSize float64)
	Line(a, b image.Point, style TextStyle)
	Rect(r image.Rectangle, style TextStyle)
	Image(r image.Rectangle, img image.Image)
}

// LabelChoice selects which label text is shown for output labels.
type LabelChoice int

const (
	LabelAutomatic LabelChoice = iota
	LabelUser
	LabelNone
)

// Env is shared by every cell of one document.
type Env struct {
	Measurer                   Measurer
	Zoom                       float64
	FontSize                   float64
	MinFontSize                float64
	TeXExponentsAfterSubscript bool
	Labels                     LabelChoice
	WorkingDir                 string

	// upper bounds for displayed image size in unscaled pixels, 0 is unlimited
	MaxImageWidth  float64
	MaxImageHeight float64
}

// NewEnv returns environment with default sizes. When m is nil text is
// measured with MonoMeasurer.
func NewEnv(m Measurer) *Env {
	if m == nil {
		m = MonoMeasurer{}
	}
	return &Env{
		Measurer:    m,
		Zoom:        1,
		FontSize:    defaultFontSize,
		MinFontSize: defaultMinFontSize,
		Labels:      LabelUser,
	}
}

// Scale converts unscaled length to device pixels.
func (e *Env) Scale(px float64) int {
	return int(math.Round(px * e.zoom()))
}

func (e *Env) zoom() float64 {
	if e == nil || e.Zoom <= 0 {
		return 1
	}
	return e.Zoom
}

// reduced returns smaller font size bounded by the configured minimum.
func (e *Env) reduced(fontSize, dec float64) float64 {
	lo := float64(MinSize)
	if e != nil && e.MinFontSize > lo {
		lo = e.MinFontSize
	}
	return math.Max(lo, fontSize-dec)
}

func (e *Env) textSize(text string, style TextStyle, fontSize float64) (int, int) {
	if e == nil || e.Measurer == nil {
		return MonoMeasurer{}.TextSize(text, style, fontSize)
	}
	return e.Measurer.TextSize(text, style, fontSize*e.zoom())
}

// MonoMeasurer approximates metrics of a monospaced font. It is used when no
// real fonts are available, for example when exporting text formats.
type MonoMeasurer struct{}

func (MonoMeasurer) TextSize(text string, _ TextStyle, fontSize float64) (int, int) {
	return int(math.Ceil(float64(TextColumns(text)) * fontSize * 0.6)), int(math.Ceil(fontSize * 1.2))
}

// TextColumns returns number of terminal columns text occupies. East Asian wide
// and fullwidth characters take two.
func TextColumns(text string) int {
	n := 0
	for _, r := range text {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			n += 2
		default:
			n++
		}
	}
	return n
}
