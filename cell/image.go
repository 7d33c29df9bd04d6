package cell

import (
	"image"
	"math"
	"strconv"
	"strings"
)

const graphicsText = " (Graphics) "

// Picture is one loaded image together with the plot sources it was made
// from. Image is nil when the data could not be decoded.
type Picture struct {
	// Name is the file name, relative to the archive when loaded from one.
	Name   string
	Data   []byte
	Format string
	Image  image.Image
	Size   image.Point
	// Err describes why the picture is broken.
	Err string

	GnuplotSource string
	GnuplotData   string
}

// Broken reports picture that cannot be displayed.
func (p *Picture) Broken() bool { return p == nil || p.Image == nil }

func (p *Picture) copy() *Picture {
	if p == nil {
		return nil
	}
	n := *p
	return &n
}

// brokenSize is the size of broken image placeholder.
var brokenSize = image.Pt(120, 60)

// fit scales size to the box keeping aspect ratio. Zero box dimension
// means no bound.
func fit(size image.Point, maxW, maxH float64) image.Point {
	w, h := float64(size.X), float64(size.Y)
	if w <= 0 || h <= 0 {
		return size
	}
	scale := 1.0
	if maxW > 0 && w > maxW {
		scale = maxW / w
	}
	if maxH > 0 && h*scale > maxH {
		scale = maxH / h
	}
	return image.Pt(int(math.Round(w*scale)), int(math.Round(h*scale)))
}

// ImgCell displays a picture.
type ImgCell struct {
	Base

	pic       *Picture
	drawRect  bool
	maxWidth  float64
	maxHeight float64
}

// NewImgCell creates image cell for pic, nil pic gives broken image.
func NewImgCell(env *Env, pic *Picture) *ImgCell {
	c := &ImgCell{pic: pic, drawRect: true, maxWidth: -1, maxHeight: -1}
	if c.pic == nil {
		c.pic = &Picture{Err: "No image"}
	}
	c.init(env)
	c.cellType = CellTypeImage
	if c.pic.Broken() {
		c.toolTip = c.pic.Err
	}
	return c
}

func (c *ImgCell) Copy() Cell {
	n := NewImgCell(c.env, c.pic.copy())
	n.copyFrom(&c.Base)
	n.drawRect = c.drawRect
	n.maxWidth, n.maxHeight = c.maxWidth, c.maxHeight
	return n
}

func (c *ImgCell) Picture() *Picture { return c.pic }

// SetName changes the name the picture is stored under.
func (c *ImgCell) SetName(name string) { c.pic.Name = name }

func (c *ImgCell) DrawRectangle() bool { return c.drawRect }

func (c *ImgCell) SetDrawRectangle(draw bool) {
	c.drawRect = draw
	c.invalidate()
}

// MaxWidth returns size limit given in the worksheet, negative when unset.
func (c *ImgCell) MaxWidth() float64  { return c.maxWidth }
func (c *ImgCell) MaxHeight() float64 { return c.maxHeight }

func (c *ImgCell) SetMaxWidth(w float64) {
	c.maxWidth = w
	c.invalidate()
}

func (c *ImgCell) SetMaxHeight(h float64) {
	c.maxHeight = h
	c.invalidate()
}

// bound combines cell and document limits, both in unscaled pixels.
func bound(own, env float64) float64 {
	switch {
	case own > 0 && env > 0:
		return min(own, env)
	case own > 0:
		return own
	case env > 0:
		return env
	}
	return 0
}

func pictureSize(env *Env, pic *Picture, maxW, maxH float64) image.Point {
	size := brokenSize
	if !pic.Broken() {
		size = pic.Size
	}
	if env != nil {
		maxW, maxH = bound(maxW, env.MaxImageWidth), bound(maxH, env.MaxImageHeight)
	} else {
		maxW, maxH = bound(maxW, 0), bound(maxH, 0)
	}
	size = fit(size, maxW, maxH)
	return image.Pt(env.Scale(float64(size.X)), env.Scale(float64(size.Y)))
}

func (c *ImgCell) Recalculate(fontSize float64) {
	if !c.needsRecalculation(fontSize) {
		return
	}
	sz := pictureSize(c.env, c.pic, c.maxWidth, c.maxHeight)
	border := 0
	if c.drawRect {
		border = 2 * c.env.Scale(1)
	}
	c.width, c.height = sz.X+border, sz.Y+border
	c.center = c.height / 2
	c.recalculated(fontSize)
}

func drawPicture(dc Painter, pic *Picture, r image.Rectangle, frame bool) {
	if pic.Broken() {
		dc.Rect(r, TextStyleError)
		dc.Line(r.Min, r.Max, TextStyleError)
		dc.Line(image.Pt(r.Min.X, r.Max.Y), image.Pt(r.Max.X, r.Min.Y), TextStyleError)
		return
	}
	if frame {
		dc.Rect(r, TextStyleDefault)
		r = r.Inset(1)
	}
	dc.Image(r, pic.Image)
}

func (c *ImgCell) Draw(dc Painter, p image.Point) {
	c.drawn(p)
	r := image.Rect(p.X, p.Y-c.center, p.X+c.width, p.Y+c.Drop())
	drawPicture(dc, c.pic, r, c.drawRect)
}

func (c *ImgCell) BreakUp() bool { return false }

func (c *ImgCell) ToString() string {
	if c.altCopy != "" {
		return c.altCopy
	}
	return graphicsText
}

func (c *ImgCell) ToMatlab() string { return c.ToString() }
func (c *ImgCell) ToTeX() string    { return graphicsText }
func (c *ImgCell) ToMathML() string { return "<mtext>" + graphicsText + "</mtext>" }
func (c *ImgCell) ToOMML() string   { return omml(graphicsText) }

func formatSize(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func (c *ImgCell) ToXML() string {
	var attrs string
	if c.pic.GnuplotSource != "" {
		attrs += ` gnuplotsource="` + XMLEscape(c.pic.GnuplotSource) + `"`
		if c.pic.GnuplotData != "" {
			attrs += ` gnuplotdata="` + XMLEscape(c.pic.GnuplotData) + `"`
		}
	}
	if !c.drawRect {
		attrs += ` rect="false"`
	}
	if c.maxWidth > 0 {
		attrs += ` maxWidth="` + formatSize(c.maxWidth) + `"`
	}
	if c.maxHeight > 0 {
		attrs += ` maxHeight="` + formatSize(c.maxHeight) + `"`
	}
	return "<img" + attrs + c.xmlFlags() + ">" + XMLEscape(c.pic.Name) + "</img>"
}

// SlideShowCell is an animation: a sequence of pictures shown one at a
// time.
type SlideShowCell struct {
	Base

	frames    []*Picture
	frameRate int
	displayed int
	running   bool
}

// NewSlideShowCell creates animation of frames.
func NewSlideShowCell(env *Env, frames []*Picture) *SlideShowCell {
	c := &SlideShowCell{frames: frames, frameRate: -1, running: true}
	c.init(env)
	c.cellType = CellTypeSlideshow
	return c
}

func (c *SlideShowCell) Copy() Cell {
	frames := make([]*Picture, 0, len(c.frames))
	for _, f := range c.frames {
		frames = append(frames, f.copy())
	}
	n := NewSlideShowCell(c.env, frames)
	n.copyFrom(&c.Base)
	n.frameRate, n.displayed, n.running = c.frameRate, c.displayed, c.running
	return n
}

func (c *SlideShowCell) Frames() []*Picture { return c.frames }
func (c *SlideShowCell) Len() int           { return len(c.frames) }

// FrameRate returns frames per second, negative for the default rate.
func (c *SlideShowCell) FrameRate() int { return c.frameRate }

func (c *SlideShowCell) SetFrameRate(fr int) { c.frameRate = fr }

// DisplayedIndex is the frame currently shown.
func (c *SlideShowCell) DisplayedIndex() int { return c.displayed }

// SetDisplayedIndex selects frame, out of range values are ignored.
func (c *SlideShowCell) SetDisplayedIndex(i int) {
	if i < 0 || i >= len(c.frames) {
		return
	}
	c.displayed = i
	c.invalidate()
}

func (c *SlideShowCell) Running() bool           { return c.running }
func (c *SlideShowCell) SetRunning(running bool) { c.running = running }

func (c *SlideShowCell) current() *Picture {
	if c.displayed < len(c.frames) {
		return c.frames[c.displayed]
	}
	return nil
}

func (c *SlideShowCell) Recalculate(fontSize float64) {
	if !c.needsRecalculation(fontSize) {
		return
	}
	sz := pictureSize(c.env, c.current(), -1, -1)
	c.width, c.height = sz.X+2*c.env.Scale(1), sz.Y+2*c.env.Scale(1)
	c.center = c.height / 2
	c.recalculated(fontSize)
}

func (c *SlideShowCell) Draw(dc Painter, p image.Point) {
	c.drawn(p)
	r := image.Rect(p.X, p.Y-c.center, p.X+c.width, p.Y+c.Drop())
	drawPicture(dc, c.current(), r, true)
}

func (c *SlideShowCell) BreakUp() bool { return false }

func (c *SlideShowCell) ToString() string {
	if c.altCopy != "" {
		return c.altCopy
	}
	return graphicsText
}

func (c *SlideShowCell) ToMatlab() string { return c.ToString() }
func (c *SlideShowCell) ToTeX() string    { return graphicsText }
func (c *SlideShowCell) ToMathML() string { return "<mtext>" + graphicsText + "</mtext>" }
func (c *SlideShowCell) ToOMML() string   { return omml(graphicsText) }

func (c *SlideShowCell) ToXML() string {
	names := make([]string, 0, len(c.frames))
	var sources, data []string
	for _, f := range c.frames {
		names = append(names, f.Name)
		if f.GnuplotSource != "" {
			sources = append(sources, f.GnuplotSource)
			data = append(data, f.GnuplotData)
		}
	}
	var attrs string
	if c.frameRate >= 0 {
		attrs += ` fr="` + strconv.Itoa(c.frameRate) + `"`
	}
	if c.displayed > 0 {
		attrs += ` frame="` + strconv.Itoa(c.displayed) + `"`
	}
	if !c.running {
		attrs += ` running="false"`
	}
	if len(sources) == len(c.frames) && len(sources) > 0 {
		attrs += ` gnuplotSources="` + XMLEscape(strings.Join(sources, ";")) + `" gnuplotData="` +
			XMLEscape(strings.Join(data, ";")) + `"`
	}
	return "<slide" + attrs + c.xmlFlags() + ">" + XMLEscape(strings.Join(names, ";")) + "</slide>"
}
