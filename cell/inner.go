package cell

import (
	"image"
)

// SqrtCell is square root of inner.
type SqrtCell struct {
	Base

	inner       Cell
	open, close *TextCell
	signWidth   int
}

// NewSqrtCell creates square root. Missing inner is replaced by invalid
// placeholder.
func NewSqrtCell(env *Env, inner Cell) *SqrtCell {
	c := &SqrtCell{
		open:  punct(env, "sqrt("),
		close: punct(env, ")"),
	}
	c.init(env)
	c.inner = InvalidOr(env, inner)
	return c
}

func (c *SqrtCell) Copy() Cell {
	n := NewSqrtCell(c.env, CopyList(c.inner))
	n.copyFrom(&c.Base)
	return n
}

func (c *SqrtCell) Inner() Cell { return c.inner }

func (c *SqrtCell) SetInner(inner Cell) {
	c.inner = InvalidOr(c.env, inner)
	c.invalidate()
}

func (c *SqrtCell) Recalculate(fontSize float64) {
	if !c.needsRecalculation(fontSize) {
		return
	}
	RecalculateList(c.inner, fontSize)
	c.open.Recalculate(fontSize)
	c.close.Recalculate(fontSize)
	c.signWidth = c.env.Scale(10)
	c.width = ListFullWidth(c.inner) + c.signWidth + c.env.Scale(2)
	c.center = ListCenter(c.inner) + c.env.Scale(3)
	c.height = c.center + ListMaxDrop(c.inner)
	c.recalculated(fontSize)
}

func (c *SqrtCell) Draw(dc Painter, p image.Point) {
	c.drawn(p)
	top, bottom := p.Y-c.center+c.env.Scale(1), p.Y+c.Drop()
	sw := c.signWidth
	dc.Line(image.Pt(p.X, p.Y), image.Pt(p.X+sw/3, p.Y-c.env.Scale(1)), c.style)
	dc.Line(image.Pt(p.X+sw/3, p.Y-c.env.Scale(1)), image.Pt(p.X+sw*2/3, bottom), c.style)
	dc.Line(image.Pt(p.X+sw*2/3, bottom), image.Pt(p.X+sw, top), c.style)
	dc.Line(image.Pt(p.X+sw, top), image.Pt(p.X+c.width, top), c.style)
	DrawList(dc, c.inner, image.Pt(p.X+sw+c.env.Scale(1), p.Y))
}

func (c *SqrtCell) BreakUp() bool {
	return c.breakUp(c.open, c.inner, c.close)
}

func (c *SqrtCell) ToString() string {
	if c.altCopy != "" {
		return c.altCopy
	}
	return "sqrt(" + ListToString(c.inner) + ")"
}

func (c *SqrtCell) ToMatlab() string {
	return "sqrt(" + ListToMatlab(c.inner) + ")"
}

func (c *SqrtCell) ToTeX() string {
	return `\sqrt{` + ListToTeX(c.inner) + "}"
}

func (c *SqrtCell) ToMathML() string {
	return "<msqrt>" + ListToMathML(c.inner) + "</msqrt>"
}

func (c *SqrtCell) ToOMML() string {
	return `<m:rad><m:radPr><m:degHide m:val="1"></m:degHide></m:radPr><m:deg></m:deg><m:e>` +
		ListToOMML(c.inner) + "</m:e></m:rad>"
}

func (c *SqrtCell) ToXML() string {
	return "<q" + c.xmlFlags() + ">" + ListToXML(c.inner) + "</q>"
}

// AbsCell is absolute value of inner.
type AbsCell struct {
	Base

	inner       Cell
	open, close *TextCell
}

// NewAbsCell creates absolute value. Missing inner is replaced by invalid
// placeholder.
func NewAbsCell(env *Env, inner Cell) *AbsCell {
	c := &AbsCell{
		open:  punct(env, "abs("),
		close: punct(env, ")"),
	}
	c.init(env)
	c.inner = InvalidOr(env, inner)
	return c
}

func (c *AbsCell) Copy() Cell {
	n := NewAbsCell(c.env, CopyList(c.inner))
	n.copyFrom(&c.Base)
	return n
}

func (c *AbsCell) Inner() Cell { return c.inner }

func (c *AbsCell) SetInner(inner Cell) {
	c.inner = InvalidOr(c.env, inner)
	c.invalidate()
}

func (c *AbsCell) Recalculate(fontSize float64) {
	if !c.needsRecalculation(fontSize) {
		return
	}
	RecalculateList(c.inner, fontSize)
	c.open.Recalculate(fontSize)
	c.close.Recalculate(fontSize)
	c.width = ListFullWidth(c.inner) + 2*c.env.Scale(4)
	c.center = ListCenter(c.inner) + c.env.Scale(2)
	c.height = ListHeight(c.inner) + c.env.Scale(4)
	c.recalculated(fontSize)
}

func (c *AbsCell) Draw(dc Painter, p image.Point) {
	c.drawn(p)
	bar := c.env.Scale(4)
	top, bottom := p.Y-c.center, p.Y+c.Drop()
	dc.Line(image.Pt(p.X+bar/2, top), image.Pt(p.X+bar/2, bottom), c.style)
	DrawList(dc, c.inner, image.Pt(p.X+bar, p.Y))
	x := p.X + c.width - bar/2
	dc.Line(image.Pt(x, top), image.Pt(x, bottom), c.style)
}

func (c *AbsCell) BreakUp() bool {
	return c.breakUp(c.open, c.inner, c.close)
}

func (c *AbsCell) ToString() string {
	if c.altCopy != "" {
		return c.altCopy
	}
	return "abs(" + ListToString(c.inner) + ")"
}

func (c *AbsCell) ToMatlab() string {
	return "abs(" + ListToMatlab(c.inner) + ")"
}

func (c *AbsCell) ToTeX() string {
	return `\left| ` + ListToTeX(c.inner) + `\right| `
}

func (c *AbsCell) ToMathML() string {
	return "<mrow><mo>|</mo>" + ListToMathML(c.inner) + "<mo>|</mo></mrow>"
}

func (c *AbsCell) ToOMML() string {
	return `<m:d><m:dPr><m:begChr m:val="|"></m:begChr><m:endChr m:val="|"></m:endChr></m:dPr><m:e>` +
		ListToOMML(c.inner) + "</m:e></m:d>"
}

func (c *AbsCell) ToXML() string {
	return "<a" + c.xmlFlags() + "><r>" + ListToXML(c.inner) + "</r></a>"
}

// ConjugateCell is complex conjugate of inner, drawn with a bar above.
type ConjugateCell struct {
	Base

	inner       Cell
	open, close *TextCell
}

// NewConjugateCell creates conjugate. Missing inner is replaced by invalid
// placeholder.
func NewConjugateCell(env *Env, inner Cell) *ConjugateCell {
	c := &ConjugateCell{
		open:  punct(env, "conjugate("),
		close: punct(env, ")"),
	}
	c.init(env)
	c.inner = InvalidOr(env, inner)
	return c
}

func (c *ConjugateCell) Copy() Cell {
	n := NewConjugateCell(c.env, CopyList(c.inner))
	n.copyFrom(&c.Base)
	return n
}

func (c *ConjugateCell) Inner() Cell { return c.inner }

func (c *ConjugateCell) SetInner(inner Cell) {
	c.inner = InvalidOr(c.env, inner)
	c.invalidate()
}

func (c *ConjugateCell) Recalculate(fontSize float64) {
	if !c.needsRecalculation(fontSize) {
		return
	}
	RecalculateList(c.inner, fontSize)
	c.open.Recalculate(fontSize)
	c.close.Recalculate(fontSize)
	c.width = ListFullWidth(c.inner) + c.env.Scale(8)
	c.center = ListCenter(c.inner) + c.env.Scale(4)
	c.height = ListHeight(c.inner) + c.env.Scale(6)
	c.recalculated(fontSize)
}

func (c *ConjugateCell) Draw(dc Painter, p image.Point) {
	c.drawn(p)
	top := p.Y - c.center + c.env.Scale(2)
	dc.Line(image.Pt(p.X+c.env.Scale(2), top), image.Pt(p.X+c.width-c.env.Scale(2), top), c.style)
	DrawList(dc, c.inner, image.Pt(p.X+c.env.Scale(4), p.Y))
}

func (c *ConjugateCell) BreakUp() bool {
	return c.breakUp(c.open, c.inner, c.close)
}

func (c *ConjugateCell) ToString() string {
	if c.altCopy != "" {
		return c.altCopy
	}
	return "conjugate(" + ListToString(c.inner) + ")"
}

func (c *ConjugateCell) ToMatlab() string {
	return "conj(" + ListToMatlab(c.inner) + ")"
}

func (c *ConjugateCell) ToTeX() string {
	return `\overline{` + ListToTeX(c.inner) + "}"
}

func (c *ConjugateCell) ToMathML() string {
	return "<mover accent=\"true\">" + mrow(c.inner) + "<mo>&#xaf;</mo></mover>"
}

func (c *ConjugateCell) ToOMML() string {
	return `<m:bar><m:barPr><m:pos m:val="top"></m:pos></m:barPr><m:e>` + ListToOMML(c.inner) + "</m:e></m:bar>"
}

func (c *ConjugateCell) ToXML() string {
	return "<cj" + c.xmlFlags() + "><r>" + ListToXML(c.inner) + "</r></cj>"
}
