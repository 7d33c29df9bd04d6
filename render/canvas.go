package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"mxc/cell"
	"mxc/utils/images"
)

// Theme assigns colors to text styles.
type Theme struct {
	Background color.Color
	Foreground color.Color
	Styles     map[cell.TextStyle]color.Color
}

// DefaultTheme is dark text on white paper.
func DefaultTheme() Theme {
	return Theme{
		Background: color.White,
		Foreground: color.Black,
		Styles: map[cell.TextStyle]color.Color{
			cell.TextStyleVariable:        color.RGBA{0x00, 0x00, 0x80, 0xff},
			cell.TextStyleNumber:          color.RGBA{0x80, 0x00, 0x00, 0xff},
			cell.TextStyleFunction:        color.Black,
			cell.TextStyleSpecialConstant: color.RGBA{0x00, 0x64, 0x00, 0xff},
			cell.TextStyleGreekConstant:   color.RGBA{0x00, 0x64, 0x00, 0xff},
			cell.TextStyleString:          color.RGBA{0x66, 0x66, 0x66, 0xff},
			cell.TextStyleInput:           color.RGBA{0x00, 0x00, 0xff, 0xff},
			cell.TextStyleMainPrompt:      color.RGBA{0xff, 0x80, 0x80, 0xff},
			cell.TextStyleOtherPrompt:     color.RGBA{0xff, 0x00, 0x00, 0xff},
			cell.TextStyleLabel:           color.RGBA{0xff, 0x80, 0x80, 0xff},
			cell.TextStyleUserLabel:       color.RGBA{0xff, 0x80, 0x80, 0xff},
			cell.TextStyleWarning:         color.RGBA{0xff, 0x8c, 0x00, 0xff},
			cell.TextStyleError:           color.RGBA{0xff, 0x00, 0x00, 0xff},
		},
	}
}

func (t Theme) color(style cell.TextStyle) color.Color {
	if c, ok := t.Styles[style]; ok {
		return c
	}
	return t.Foreground
}

// Canvas implements cell.Painter over RGBA image.
type Canvas struct {
	img   *image.RGBA
	fonts *Fonts
	theme Theme
}

// NewCanvas creates canvas of the given size filled with theme background.
func NewCanvas(w, h int, fonts *Fonts, theme Theme) *Canvas {
	img := image.NewRGBA(image.Rect(0, 0, max(w, 1), max(h, 1)))
	draw.Draw(img, img.Bounds(), image.NewUniform(theme.Background), image.Point{}, draw.Src)
	return &Canvas{img: img, fonts: fonts, theme: theme}
}

func (c *Canvas) RGBA() *image.RGBA { return c.img }

// Text draws text with its left edge at p.X, vertically centered on p.Y.
func (c *Canvas) Text(p image.Point, text string, style cell.TextStyle, fontSize float64) {
	face, err := c.fonts.face(style, fontSize)
	if err != nil {
		return
	}
	m := face.Metrics()
	baseline := fixed.I(p.Y) + (m.Ascent-m.Descent)/2
	d := font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(c.theme.color(style)),
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.I(p.X), Y: baseline},
	}
	d.DrawString(text)
}

// Line draws one pixel wide antialiased line.
func (c *Canvas) Line(a, b image.Point, style cell.TextStyle) {
	ax, ay := float32(a.X)+0.5, float32(a.Y)+0.5
	bx, by := float32(b.X)+0.5, float32(b.Y)+0.5
	dx, dy := bx-ax, by-ay
	length := float32(math.Hypot(float64(dx), float64(dy)))
	if length == 0 {
		return
	}
	// half width normal
	nx, ny := -dy/length/2, dx/length/2

	bounds := c.img.Bounds()
	z := vector.NewRasterizer(bounds.Dx(), bounds.Dy())
	z.MoveTo(ax+nx, ay+ny)
	z.LineTo(bx+nx, by+ny)
	z.LineTo(bx-nx, by-ny)
	z.LineTo(ax-nx, ay-ny)
	z.ClosePath()
	z.Draw(c.img, bounds, image.NewUniform(c.theme.color(style)), image.Point{})
}

// Rect draws outline of r.
func (c *Canvas) Rect(r image.Rectangle, style cell.TextStyle) {
	r = r.Canon()
	c.Line(r.Min, image.Pt(r.Max.X, r.Min.Y), style)
	c.Line(image.Pt(r.Max.X, r.Min.Y), r.Max, style)
	c.Line(r.Max, image.Pt(r.Min.X, r.Max.Y), style)
	c.Line(image.Pt(r.Min.X, r.Max.Y), r.Min, style)
}

// Image draws img scaled into r.
func (c *Canvas) Image(r image.Rectangle, img image.Image) {
	if img == nil || r.Empty() {
		return
	}
	scaled := images.Resize(img, r.Dx(), r.Dy())
	draw.Draw(c.img, r, scaled, scaled.Bounds().Min, draw.Over)
}
