package cell

import (
	"image"
)

// texFunctions are typeset as TeX commands.
var texFunctions = map[string]bool{
	"sin":  true,
	"cos":  true,
	"cosh": true,
	"sinh": true,
	"log":  true,
	"cot":  true,
	"sec":  true,
	"csc":  true,
	"tan":  true,
}

// FunCell is a function applied to its argument, name(arg).
type FunCell struct {
	Base

	name, arg Cell
}

// NewFunCell creates function application. Missing parts are replaced by
// invalid placeholders.
func NewFunCell(env *Env, name, arg Cell) *FunCell {
	c := &FunCell{}
	c.init(env)
	c.setName(name)
	c.arg = InvalidOr(env, arg)
	c.style = TextStyleFunction
	return c
}

// setName stores name, its first cell is styled as a function name.
func (c *FunCell) setName(name Cell) {
	if name != nil {
		name.SetStyle(TextStyleFunction)
	}
	c.name = InvalidOr(c.env, name)
}

func (c *FunCell) Copy() Cell {
	n := NewFunCell(c.env, CopyList(c.name), CopyList(c.arg))
	n.copyFrom(&c.Base)
	return n
}

func (c *FunCell) Name() Cell { return c.name }
func (c *FunCell) Arg() Cell  { return c.arg }

func (c *FunCell) SetName(name Cell) {
	c.setName(name)
	c.invalidate()
}

func (c *FunCell) SetArg(arg Cell) {
	c.arg = InvalidOr(c.env, arg)
	c.invalidate()
}

func (c *FunCell) Recalculate(fontSize float64) {
	if !c.needsRecalculation(fontSize) {
		return
	}
	RecalculateList(c.name, fontSize)
	RecalculateList(c.arg, fontSize)
	c.width = ListFullWidth(c.name) + ListFullWidth(c.arg) - c.env.Scale(1)
	c.center = max(ListCenter(c.name), ListCenter(c.arg))
	c.height = c.center + max(ListMaxDrop(c.name), ListMaxDrop(c.arg))
	c.recalculated(fontSize)
}

func (c *FunCell) Draw(dc Painter, p image.Point) {
	c.drawn(p)
	DrawList(dc, c.name, p)
	DrawList(dc, c.arg, image.Pt(p.X+ListFullWidth(c.name)-c.env.Scale(1), p.Y))
}

func (c *FunCell) BreakUp() bool {
	return c.breakUp(c.name, c.arg)
}

func (c *FunCell) ToString() string {
	if c.altCopy != "" {
		return c.altCopy
	}
	return ListToString(c.name) + ListToString(c.arg)
}

func (c *FunCell) ToMatlab() string {
	if c.altCopy != "" {
		return c.altCopy
	}
	return ListToMatlab(c.name) + ListToMatlab(c.arg)
}

func (c *FunCell) ToTeX() string {
	name := ListToString(c.name)
	if texFunctions[name] {
		return `\` + name + "{" + ListToTeX(c.arg) + "}"
	}
	return ListToTeX(c.name) + ListToTeX(c.arg)
}

func (c *FunCell) ToMathML() string {
	return "<mrow>" + ListToMathML(c.name) + "<mo>&#x2061;</mo>" + ListToMathML(c.arg) + "</mrow>"
}

func (c *FunCell) ToOMML() string {
	return "<m:func><m:fName>" + ListToOMML(c.name) + "</m:fName><m:e>" + ListToOMML(c.arg) + "</m:e></m:func>"
}

func (c *FunCell) ToXML() string {
	return "<fn" + c.xmlFlags() + "><r>" + ListToXML(c.name) + "</r>" + ListToXML(c.arg) + "</fn>"
}
