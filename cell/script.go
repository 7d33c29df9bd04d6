package cell

import (
	"image"
)

// punct creates auxiliary text used when a cell is broken into lines.
func punct(env *Env, s string) *TextCell {
	return NewTextCell(env, s, TextStyleFunction)
}

func parenthesized(head Cell, s string) string {
	if IsCompound(head) {
		return "(" + s + ")"
	}
	return s
}

// ExptCell is base raised to power.
type ExptCell struct {
	Base

	baseCell, power    Cell
	caret, open, close *TextCell
	isMatrix           bool
	rise               int
}

// NewExptCell creates exponentiation. Missing parts are replaced by invalid
// placeholders.
func NewExptCell(env *Env, base, power Cell) *ExptCell {
	c := &ExptCell{
		caret: punct(env, "^"),
		open:  punct(env, "("),
		close: punct(env, ")"),
	}
	c.init(env)
	c.baseCell = InvalidOr(env, base)
	c.SetPower(power)
	return c
}

func (c *ExptCell) Copy() Cell {
	n := NewExptCell(c.env, CopyList(c.baseCell), CopyList(c.power))
	n.copyFrom(&c.Base)
	n.SetMatrix(c.isMatrix)
	return n
}

func (c *ExptCell) BaseCell() Cell { return c.baseCell }
func (c *ExptCell) Power() Cell    { return c.power }

func (c *ExptCell) SetBase(base Cell) {
	c.baseCell = InvalidOr(c.env, base)
	c.invalidate()
}

func (c *ExptCell) SetPower(power Cell) {
	c.power = InvalidOr(c.env, power)
	c.power.SetExponentFlag(true)
	c.invalidate()
}

// IsMatrix reports matrix power, base^^power.
func (c *ExptCell) IsMatrix() bool { return c.isMatrix }

func (c *ExptCell) SetMatrix(mat bool) {
	c.isMatrix = mat
	c.caret.SetValue("^")
	if mat {
		c.caret.SetValue("^^")
	}
}

func (c *ExptCell) Recalculate(fontSize float64) {
	if !c.needsRecalculation(fontSize) {
		return
	}
	RecalculateList(c.baseCell, fontSize)
	RecalculateList(c.power, c.env.reduced(fontSize, exptFontDecrease))
	for _, t := range []*TextCell{c.caret, c.open, c.close} {
		t.Recalculate(fontSize)
	}
	c.rise = ListCenter(c.baseCell) + ListMaxDrop(c.power) - c.env.Scale(ExpIndent+fontSize/3)
	c.width = ListFullWidth(c.baseCell) + ListFullWidth(c.power)
	c.center = max(ListCenter(c.baseCell), c.rise+ListCenter(c.power))
	c.height = c.center + max(ListMaxDrop(c.baseCell), ListMaxDrop(c.power)-c.rise)
	c.recalculated(fontSize)
}

func (c *ExptCell) Draw(dc Painter, p image.Point) {
	c.drawn(p)
	DrawList(dc, c.baseCell, p)
	DrawList(dc, c.power, image.Pt(p.X+ListFullWidth(c.baseCell), p.Y-c.rise))
}

func (c *ExptCell) BreakUp() bool {
	return c.breakUp(c.baseCell, c.caret, c.open, c.power, c.close)
}

func (c *ExptCell) op() string {
	if c.isMatrix {
		return "^^"
	}
	return "^"
}

func (c *ExptCell) ToString() string {
	if c.altCopy != "" {
		return c.altCopy
	}
	return parenthesized(c.baseCell, ListToString(c.baseCell)) + c.op() + parenthesized(c.power, ListToString(c.power))
}

func (c *ExptCell) ToMatlab() string {
	op := ".^"
	if c.isMatrix {
		op = "^"
	}
	return parenthesized(c.baseCell, ListToMatlab(c.baseCell)) + op + parenthesized(c.power, ListToMatlab(c.power))
}

func (c *ExptCell) ToTeX() string {
	return "{" + ListToTeX(c.baseCell) + "}^{" + ListToTeX(c.power) + "}"
}

func (c *ExptCell) ToMathML() string {
	return "<msup>" + mrow(c.baseCell) + mrow(c.power) + "</msup>"
}

func (c *ExptCell) ToOMML() string {
	return "<m:sSup><m:e>" + ListToOMML(c.baseCell) + "</m:e><m:sup>" + ListToOMML(c.power) + "</m:sup></m:sSup>"
}

func (c *ExptCell) ToXML() string {
	attrs := c.xmlFlags()
	if c.isMatrix {
		attrs = ` mat="true"` + attrs
	}
	return "<e" + attrs + "><r>" + ListToXML(c.baseCell) + "</r><r>" + ListToXML(c.power) + "</r></e>"
}

// SubCell is base with a subscript.
type SubCell struct {
	Base

	baseCell, index Cell
	open, close     *TextCell
	lower           int
}

// NewSubCell creates subscripted base. Missing parts are replaced by
// invalid placeholders.
func NewSubCell(env *Env, base, index Cell) *SubCell {
	c := &SubCell{
		open:  punct(env, "["),
		close: punct(env, "]"),
	}
	c.init(env)
	c.baseCell = InvalidOr(env, base)
	c.SetIndex(index)
	return c
}

func (c *SubCell) Copy() Cell {
	n := NewSubCell(c.env, CopyList(c.baseCell), CopyList(c.index))
	n.copyFrom(&c.Base)
	return n
}

func (c *SubCell) BaseCell() Cell { return c.baseCell }
func (c *SubCell) Index() Cell    { return c.index }

func (c *SubCell) SetBase(base Cell) {
	c.baseCell = InvalidOr(c.env, base)
	c.invalidate()
}

func (c *SubCell) SetIndex(index Cell) {
	c.index = InvalidOr(c.env, index)
	c.index.SetExponentFlag(true)
	c.invalidate()
}

func (c *SubCell) Recalculate(fontSize float64) {
	if !c.needsRecalculation(fontSize) {
		return
	}
	RecalculateList(c.baseCell, fontSize)
	RecalculateList(c.index, c.env.reduced(fontSize, subSupDec))
	c.open.Recalculate(fontSize)
	c.close.Recalculate(fontSize)
	c.lower = ListMaxDrop(c.baseCell) + ListCenter(c.index) - c.env.Scale(ExpIndent+fontSize/3)
	c.width = ListFullWidth(c.baseCell) + ListFullWidth(c.index)
	c.center = max(ListCenter(c.baseCell), ListCenter(c.index)-c.lower)
	c.height = c.center + max(ListMaxDrop(c.baseCell), c.lower+ListMaxDrop(c.index))
	c.recalculated(fontSize)
}

func (c *SubCell) Draw(dc Painter, p image.Point) {
	c.drawn(p)
	DrawList(dc, c.baseCell, p)
	DrawList(dc, c.index, image.Pt(p.X+ListFullWidth(c.baseCell), p.Y+c.lower))
}

func (c *SubCell) BreakUp() bool {
	return c.breakUp(c.baseCell, c.open, c.index, c.close)
}

func (c *SubCell) ToString() string {
	if c.altCopy != "" {
		return c.altCopy
	}
	return ListToString(c.baseCell) + "[" + ListToString(c.index) + "]"
}

func (c *SubCell) ToMatlab() string {
	return ListToMatlab(c.baseCell) + "(" + ListToMatlab(c.index) + ")"
}

func (c *SubCell) ToTeX() string {
	return "{" + ListToTeX(c.baseCell) + "}_{" + ListToTeX(c.index) + "}"
}

func (c *SubCell) ToMathML() string {
	return "<msub>" + mrow(c.baseCell) + mrow(c.index) + "</msub>"
}

func (c *SubCell) ToOMML() string {
	return "<m:sSub><m:e>" + ListToOMML(c.baseCell) + "</m:e><m:sub>" + ListToOMML(c.index) + "</m:sub></m:sSub>"
}

func (c *SubCell) ToXML() string {
	return "<i" + c.xmlFlags() + "><r>" + ListToXML(c.baseCell) + "</r><r>" + ListToXML(c.index) + "</r></i>"
}

// AtCell is an expression evaluated at a point, base|index.
type AtCell struct {
	Base

	baseCell, index    Cell
	open, comma, close *TextCell
	lower              int
}

// NewAtCell creates evaluation of base at index. Missing parts are replaced
// by invalid placeholders.
func NewAtCell(env *Env, base, index Cell) *AtCell {
	c := &AtCell{
		open:  punct(env, "at("),
		comma: punct(env, ","),
		close: punct(env, ")"),
	}
	c.init(env)
	c.baseCell = InvalidOr(env, base)
	c.SetIndex(index)
	return c
}

func (c *AtCell) Copy() Cell {
	n := NewAtCell(c.env, CopyList(c.baseCell), CopyList(c.index))
	n.copyFrom(&c.Base)
	return n
}

func (c *AtCell) BaseCell() Cell { return c.baseCell }
func (c *AtCell) Index() Cell    { return c.index }

func (c *AtCell) SetBase(base Cell) {
	c.baseCell = InvalidOr(c.env, base)
	c.invalidate()
}

func (c *AtCell) SetIndex(index Cell) {
	c.index = InvalidOr(c.env, index)
	c.index.SetExponentFlag(true)
	c.invalidate()
}

func (c *AtCell) Recalculate(fontSize float64) {
	if !c.needsRecalculation(fontSize) {
		return
	}
	RecalculateList(c.baseCell, fontSize)
	RecalculateList(c.index, c.env.reduced(fontSize, subSupDec))
	for _, t := range []*TextCell{c.open, c.comma, c.close} {
		t.Recalculate(fontSize)
	}
	bar := c.env.Scale(4)
	c.lower = ListMaxDrop(c.baseCell) + ListCenter(c.index) - c.env.Scale(ExpIndent)
	c.width = ListFullWidth(c.baseCell) + bar + ListFullWidth(c.index)
	c.center = ListCenter(c.baseCell)
	c.height = c.center + max(ListMaxDrop(c.baseCell), c.lower+ListMaxDrop(c.index))
	c.recalculated(fontSize)
}

func (c *AtCell) Draw(dc Painter, p image.Point) {
	c.drawn(p)
	DrawList(dc, c.baseCell, p)
	x := p.X + ListFullWidth(c.baseCell) + c.env.Scale(2)
	dc.Line(image.Pt(x, p.Y-ListCenter(c.baseCell)), image.Pt(x, p.Y+c.Drop()), c.style)
	DrawList(dc, c.index, image.Pt(x+c.env.Scale(2), p.Y+c.lower))
}

func (c *AtCell) BreakUp() bool {
	return c.breakUp(c.open, c.baseCell, c.comma, c.index, c.close)
}

func (c *AtCell) ToString() string {
	if c.altCopy != "" {
		return c.altCopy
	}
	return "at(" + ListToString(c.baseCell) + "," + ListToString(c.index) + ")"
}

func (c *AtCell) ToMatlab() string {
	return "at(" + ListToMatlab(c.baseCell) + "," + ListToMatlab(c.index) + ")"
}

func (c *AtCell) ToTeX() string {
	return `\left.` + ListToTeX(c.baseCell) + `\right|_{` + ListToTeX(c.index) + "}"
}

func (c *AtCell) ToMathML() string {
	return "<msub><mrow>" + ListToMathML(c.baseCell) + "<mo>|</mo></mrow>" + mrow(c.index) + "</msub>"
}

func (c *AtCell) ToOMML() string {
	return "<m:sSub><m:e>" + ListToOMML(c.baseCell) + omml("|") + "</m:e><m:sub>" + ListToOMML(c.index) + "</m:sub></m:sSub>"
}

func (c *AtCell) ToXML() string {
	return "<at" + c.xmlFlags() + "><r>" + ListToXML(c.baseCell) + "</r><r>" + ListToXML(c.index) + "</r></at>"
}
