package cell

import (
	"image"
)

// FracCell is a fraction, a binomial coefficient or the d/dx part of a
// derivative depending on its style.
type FracCell struct {
	Base

	num, denom Cell
	fracStyle  FracStyle

	open1, close1 *TextCell
	open2, close2 *TextCell

	parenWidth int
	horizontal int
}

// NewFracCell creates fraction num/denom. Missing parts are replaced by
// invalid placeholders.
func NewFracCell(env *Env, num, denom Cell) *FracCell {
	c := &FracCell{
		open1:  NewTextCell(env, "(", TextStyleFunction),
		close1: NewTextCell(env, ")/", TextStyleFunction),
		open2:  NewTextCell(env, "(", TextStyleFunction),
		close2: NewTextCell(env, ")", TextStyleFunction),
	}
	c.init(env)
	c.num = InvalidOr(env, num)
	c.denom = InvalidOr(env, denom)
	return c
}

func (c *FracCell) Copy() Cell {
	n := NewFracCell(c.env, CopyList(c.num), CopyList(c.denom))
	n.copyFrom(&c.Base)
	n.fracStyle = c.fracStyle
	return n
}

func (c *FracCell) Num() Cell   { return c.num }
func (c *FracCell) Denom() Cell { return c.denom }

func (c *FracCell) SetNum(num Cell) {
	c.num = InvalidOr(c.env, num)
	c.invalidate()
}

func (c *FracCell) SetDenom(denom Cell) {
	c.denom = InvalidOr(c.env, denom)
	c.invalidate()
}

func (c *FracCell) FracStyle() FracStyle { return c.fracStyle }

func (c *FracCell) SetFracStyle(style FracStyle) {
	c.fracStyle = style
	c.invalidate()
}

func (c *FracCell) Recalculate(fontSize float64) {
	if !c.needsRecalculation(fontSize) {
		return
	}
	size := fontSize
	if c.isExponent {
		size = c.env.reduced(fontSize, exptFontDecrease)
	}
	RecalculateList(c.num, size)
	RecalculateList(c.denom, size)
	for _, t := range []*TextCell{c.open1, c.close1, c.open2, c.close2} {
		t.Recalculate(fontSize)
	}
	gap := c.env.Scale(2)
	c.parenWidth = 0
	if c.fracStyle == FracChoose {
		c.parenWidth = c.env.Scale(6)
	}
	c.horizontal = max(ListFullWidth(c.num), ListFullWidth(c.denom)) + 2*gap
	c.width = c.horizontal + 2*c.parenWidth
	c.center = ListHeight(c.num) + gap
	c.height = c.center + ListHeight(c.denom) + gap
	c.recalculated(fontSize)
}

func (c *FracCell) Draw(dc Painter, p image.Point) {
	c.drawn(p)
	gap := c.env.Scale(2)
	x := p.X + c.parenWidth
	numW, denomW := ListFullWidth(c.num), ListFullWidth(c.denom)
	DrawList(dc, c.num, image.Pt(x+(c.horizontal-numW)/2, p.Y-gap-ListMaxDrop(c.num)))
	DrawList(dc, c.denom, image.Pt(x+(c.horizontal-denomW)/2, p.Y+gap+ListCenter(c.denom)))
	if c.fracStyle != FracChoose {
		dc.Line(image.Pt(x+gap/2, p.Y), image.Pt(x+c.horizontal-gap/2, p.Y), c.style)
		return
	}
	top, bottom := p.Y-c.center, p.Y+c.Drop()
	drawBracket(dc, p.X, top, bottom, c.parenWidth, false, c.style)
	drawBracket(dc, p.X+c.width-c.parenWidth, top, bottom, c.parenWidth, true, c.style)
}

func (c *FracCell) BreakUp() bool {
	if c.fracStyle == FracDiff {
		return false
	}
	return c.breakUp(c.open1, c.num, c.close1, c.open2, c.denom, c.close2)
}

func (c *FracCell) ToString() string {
	if c.altCopy != "" {
		return c.altCopy
	}
	num, denom := ListToString(c.num), ListToString(c.denom)
	switch c.fracStyle {
	case FracChoose:
		return "binomial(" + num + "," + denom + ")"
	case FracDiff:
		return num + "/" + denom
	}
	if IsCompound(c.num) {
		num = "(" + num + ")"
	}
	if IsCompound(c.denom) {
		denom = "(" + denom + ")"
	}
	return num + "/" + denom
}

func (c *FracCell) ToMatlab() string {
	num, denom := ListToMatlab(c.num), ListToMatlab(c.denom)
	if c.fracStyle == FracChoose {
		return "nchoosek(" + num + "," + denom + ")"
	}
	if IsCompound(c.num) {
		num = "(" + num + ")"
	}
	if IsCompound(c.denom) {
		denom = "(" + denom + ")"
	}
	return num + "/" + denom
}

func (c *FracCell) ToTeX() string {
	num, denom := ListToTeX(c.num), ListToTeX(c.denom)
	if c.fracStyle == FracChoose {
		return `\binom{` + num + "}{" + denom + "}"
	}
	return `\frac{` + num + "}{" + denom + "}"
}

func (c *FracCell) ToMathML() string {
	if c.fracStyle == FracChoose {
		return `<mrow><mo>(</mo><mfrac linethickness="0">` + mrow(c.num) + mrow(c.denom) + "</mfrac><mo>)</mo></mrow>"
	}
	return "<mfrac>" + mrow(c.num) + mrow(c.denom) + "</mfrac>"
}

func (c *FracCell) ToOMML() string {
	var pr string
	if c.fracStyle == FracChoose {
		pr = `<m:fPr><m:type m:val="noBar"></m:type></m:fPr>`
	}
	s := "<m:f>" + pr + "<m:num>" + ListToOMML(c.num) + "</m:num><m:den>" + ListToOMML(c.denom) + "</m:den></m:f>"
	if c.fracStyle == FracChoose {
		s = "<m:d><m:e>" + s + "</m:e></m:d>"
	}
	return s
}

func (c *FracCell) ToXML() string {
	attrs := c.xmlFlags()
	switch c.fracStyle {
	case FracChoose:
		attrs = ` line="no"` + attrs
	case FracDiff:
		attrs = ` diffstyle="yes"` + attrs
	}
	return "<f" + attrs + "><r>" + ListToXML(c.num) + "</r><r>" + ListToXML(c.denom) + "</r></f>"
}
