package cell

import (
	"image"
)

// DiffCell is a derivative: the d/dx part followed by the differentiated
// expression.
type DiffCell struct {
	Base

	diff, baseCell Cell
}

// NewDiffCell creates derivative. Missing parts are replaced by invalid
// placeholders.
func NewDiffCell(env *Env, diff, base Cell) *DiffCell {
	c := &DiffCell{}
	c.init(env)
	c.diff = InvalidOr(env, diff)
	c.baseCell = InvalidOr(env, base)
	return c
}

func (c *DiffCell) Copy() Cell {
	n := NewDiffCell(c.env, CopyList(c.diff), CopyList(c.baseCell))
	n.copyFrom(&c.Base)
	return n
}

func (c *DiffCell) Diff() Cell     { return c.diff }
func (c *DiffCell) BaseCell() Cell { return c.baseCell }

func (c *DiffCell) SetDiff(diff Cell) {
	c.diff = InvalidOr(c.env, diff)
	c.invalidate()
}

func (c *DiffCell) SetBase(base Cell) {
	c.baseCell = InvalidOr(c.env, base)
	c.invalidate()
}

func (c *DiffCell) Recalculate(fontSize float64) {
	if !c.needsRecalculation(fontSize) {
		return
	}
	RecalculateList(c.diff, fontSize)
	RecalculateList(c.baseCell, fontSize)
	c.width = ListFullWidth(c.diff) + ListFullWidth(c.baseCell) + c.env.Scale(2)
	c.center = max(ListCenter(c.diff), ListCenter(c.baseCell))
	c.height = c.center + max(ListMaxDrop(c.diff), ListMaxDrop(c.baseCell))
	c.recalculated(fontSize)
}

func (c *DiffCell) Draw(dc Painter, p image.Point) {
	c.drawn(p)
	DrawList(dc, c.diff, p)
	DrawList(dc, c.baseCell, image.Pt(p.X+ListFullWidth(c.diff)+c.env.Scale(2), p.Y))
}

func (c *DiffCell) BreakUp() bool {
	return c.breakUp(c.diff, c.baseCell)
}

func (c *DiffCell) ToString() string {
	if c.altCopy != "" {
		return c.altCopy
	}
	return ListToString(c.diff) + ListToString(c.baseCell)
}

func (c *DiffCell) ToMatlab() string {
	return ListToMatlab(c.diff) + ListToMatlab(c.baseCell)
}

func (c *DiffCell) ToTeX() string {
	return ListToTeX(c.diff) + ListToTeX(c.baseCell)
}

func (c *DiffCell) ToMathML() string {
	return "<mrow>" + ListToMathML(c.diff) + ListToMathML(c.baseCell) + "</mrow>"
}

func (c *DiffCell) ToOMML() string {
	return ListToOMML(c.diff) + ListToOMML(c.baseCell)
}

func (c *DiffCell) ToXML() string {
	return "<d" + c.xmlFlags() + ">" + ListToXML(c.diff) + ListToXML(c.baseCell) + "</d>"
}

// bigOperator lays out a large sign with limits below and above it.
type bigOperator struct {
	signWidth, signHeight int
	column                int
}

func (o *bigOperator) measure(env *Env, sign string, style TextStyle, fontSize float64, under, over Cell) {
	o.signWidth, o.signHeight = env.textSize(sign, style, fontSize*1.6)
	o.column = max(o.signWidth, listWidthOrZero(under), listWidthOrZero(over))
}

// SumCell is a sum, product or sum over list elements.
type SumCell struct {
	Base

	under, over, baseCell Cell
	sumStyle              SumStyle
	open, comma1, comma2  *TextCell
	close                 *TextCell
	op                    bigOperator
}

// NewSumCell creates sum. Over part is optional for list sums, other
// missing parts are replaced by invalid placeholders.
func NewSumCell(env *Env, style SumStyle, under, over, base Cell) *SumCell {
	c := &SumCell{
		comma1: punct(env, ","),
		comma2: punct(env, ","),
		close:  punct(env, ")"),
	}
	c.init(env)
	c.under = InvalidOr(env, under)
	c.baseCell = InvalidOr(env, base)
	c.SetSumStyle(style)
	if over != nil || style != SumList {
		c.over = InvalidOr(env, over)
	}
	return c
}

func (c *SumCell) Copy() Cell {
	n := NewSumCell(c.env, c.sumStyle, CopyList(c.under), copyOrNil(c.over), CopyList(c.baseCell))
	n.copyFrom(&c.Base)
	return n
}

func (c *SumCell) Under() Cell        { return c.under }
func (c *SumCell) Over() Cell         { return c.over }
func (c *SumCell) BaseCell() Cell     { return c.baseCell }
func (c *SumCell) SumStyle() SumStyle { return c.sumStyle }

func (c *SumCell) SetSumStyle(style SumStyle) {
	c.sumStyle = style
	c.open = punct(c.env, c.function()+"(")
	c.invalidate()
}

func (c *SumCell) function() string {
	switch c.sumStyle {
	case SumProd:
		return "product"
	case SumList:
		return "lsum"
	}
	return "sum"
}

func (c *SumCell) sign() string {
	if c.sumStyle == SumProd {
		return "∏"
	}
	return "∑"
}

func (c *SumCell) Recalculate(fontSize float64) {
	if !c.needsRecalculation(fontSize) {
		return
	}
	small := c.env.reduced(fontSize, sumFontDecrease)
	RecalculateList(c.under, small)
	if c.over != nil {
		RecalculateList(c.over, small)
	}
	RecalculateList(c.baseCell, fontSize)
	for _, t := range []*TextCell{c.open, c.comma1, c.comma2, c.close} {
		t.Recalculate(fontSize)
	}
	c.op.measure(c.env, c.sign(), c.style, fontSize, c.under, c.over)
	half := c.op.signHeight / 2
	c.width = c.op.column + c.env.Scale(4) + ListFullWidth(c.baseCell)
	c.center = max(ListCenter(c.baseCell), half+listHeightOrZero(c.over))
	c.height = c.center + max(ListMaxDrop(c.baseCell), half+ListHeight(c.under))
	c.recalculated(fontSize)
}

func (c *SumCell) Draw(dc Painter, p image.Point) {
	c.drawn(p)
	half := c.op.signHeight / 2
	dc.Text(image.Pt(p.X+(c.op.column-c.op.signWidth)/2, p.Y), c.sign(), c.style, c.fontSize*1.6*c.env.zoom())
	underW := ListFullWidth(c.under)
	DrawList(dc, c.under, image.Pt(p.X+(c.op.column-underW)/2, p.Y+half+ListCenter(c.under)))
	if c.over != nil {
		overW := ListFullWidth(c.over)
		DrawList(dc, c.over, image.Pt(p.X+(c.op.column-overW)/2, p.Y-half-ListMaxDrop(c.over)))
	}
	DrawList(dc, c.baseCell, image.Pt(p.X+c.op.column+c.env.Scale(4), p.Y))
}

func (c *SumCell) BreakUp() bool {
	if c.over == nil {
		return c.breakUp(c.open, c.baseCell, c.comma1, c.under, c.close)
	}
	return c.breakUp(c.open, c.baseCell, c.comma1, c.under, c.comma2, c.over, c.close)
}

// variable splits "var=from" of the under part into its pieces.
func (c *SumCell) variable(conv func(Cell) string) (string, string) {
	if Len(c.under) < 3 {
		return conv(c.under), ""
	}
	return c.under.ToString(), conv(c.under.Next().Next())
}

func (c *SumCell) linear(conv func(Cell) string) string {
	v, from := c.variable(conv)
	s := c.function() + "(" + conv(c.baseCell) + "," + v
	if from != "" {
		s += "," + from
	}
	if c.over != nil {
		s += "," + conv(c.over)
	}
	return s + ")"
}

func (c *SumCell) ToString() string {
	if c.altCopy != "" {
		return c.altCopy
	}
	return c.linear(ListToString)
}

func (c *SumCell) ToMatlab() string {
	return c.linear(ListToMatlab)
}

func (c *SumCell) ToTeX() string {
	s := `\sum`
	if c.sumStyle == SumProd {
		s = `\prod`
	}
	s += "_{" + ListToTeX(c.under) + "}"
	if c.over != nil {
		s += "^{" + ListToTeX(c.over) + "}"
	}
	return s + "{" + ListToTeX(c.baseCell) + "}"
}

func (c *SumCell) ToMathML() string {
	sign := "<mo>" + c.sign() + "</mo>"
	if c.over == nil {
		return "<mrow><munder>" + sign + mrow(c.under) + "</munder>" + ListToMathML(c.baseCell) + "</mrow>"
	}
	return "<mrow><munderover>" + sign + mrow(c.under) + mrow(c.over) + "</munderover>" + ListToMathML(c.baseCell) + "</mrow>"
}

func (c *SumCell) ToOMML() string {
	s := `<m:nary><m:naryPr><m:chr m:val="` + c.sign() + `"></m:chr></m:naryPr><m:sub>` + ListToOMML(c.under) + "</m:sub><m:sup>"
	if c.over != nil {
		s += ListToOMML(c.over)
	}
	return s + "</m:sup><m:e>" + ListToOMML(c.baseCell) + "</m:e></m:nary>"
}

func (c *SumCell) ToXML() string {
	attrs := c.xmlFlags()
	switch c.sumStyle {
	case SumProd:
		attrs = ` type="prod"` + attrs
	case SumList:
		attrs = ` type="lsum"` + attrs
	}
	var over string
	if c.over != nil {
		over = ListToXML(c.over)
	}
	return "<sm" + attrs + "><r>" + ListToXML(c.under) + "</r><r>" + over + "</r><r>" + ListToXML(c.baseCell) + "</r></sm>"
}

// IntCell is a definite or indefinite integral.
type IntCell struct {
	Base

	under, over, baseCell, variable Cell
	intStyle                        IntStyle
	open, comma1, comma2, comma3    *TextCell
	close                           *TextCell
	op                              bigOperator
}

// NewIntCell creates indefinite integral of base over variable.
func NewIntCell(env *Env, base, variable Cell) *IntCell {
	c := &IntCell{
		open:   punct(env, "integrate("),
		comma1: punct(env, ","),
		comma2: punct(env, ","),
		comma3: punct(env, ","),
		close:  punct(env, ")"),
	}
	c.init(env)
	c.baseCell = InvalidOr(env, base)
	c.variable = InvalidOr(env, variable)
	return c
}

// NewDefiniteIntCell creates integral of base from under to over.
func NewDefiniteIntCell(env *Env, under, over, base, variable Cell) *IntCell {
	c := NewIntCell(env, base, variable)
	c.intStyle = IntDefinite
	c.under = InvalidOr(env, under)
	c.over = InvalidOr(env, over)
	return c
}

func (c *IntCell) Copy() Cell {
	var n *IntCell
	if c.intStyle == IntDefinite {
		n = NewDefiniteIntCell(c.env, CopyList(c.under), CopyList(c.over), CopyList(c.baseCell), CopyList(c.variable))
	} else {
		n = NewIntCell(c.env, CopyList(c.baseCell), CopyList(c.variable))
	}
	n.copyFrom(&c.Base)
	return n
}

func (c *IntCell) Under() Cell        { return c.under }
func (c *IntCell) Over() Cell         { return c.over }
func (c *IntCell) BaseCell() Cell     { return c.baseCell }
func (c *IntCell) Var() Cell          { return c.variable }
func (c *IntCell) IntStyle() IntStyle { return c.intStyle }

func (c *IntCell) Recalculate(fontSize float64) {
	if !c.needsRecalculation(fontSize) {
		return
	}
	small := c.env.reduced(fontSize, intFontDecrease)
	if c.intStyle == IntDefinite {
		RecalculateList(c.under, small)
		RecalculateList(c.over, small)
	}
	RecalculateList(c.baseCell, fontSize)
	RecalculateList(c.variable, fontSize)
	for _, t := range []*TextCell{c.open, c.comma1, c.comma2, c.comma3, c.close} {
		t.Recalculate(fontSize)
	}
	c.op.measure(c.env, "∫", c.style, fontSize, c.under, c.over)
	half := c.op.signHeight / 2
	c.width = c.op.column + c.env.Scale(4) + ListFullWidth(c.baseCell) + ListFullWidth(c.variable)
	c.center = max(ListCenter(c.baseCell), ListCenter(c.variable), half+listHeightOrZero(c.over))
	c.height = c.center + max(ListMaxDrop(c.baseCell), ListMaxDrop(c.variable), half+listHeightOrZero(c.under))
	c.recalculated(fontSize)
}

func (c *IntCell) Draw(dc Painter, p image.Point) {
	c.drawn(p)
	half := c.op.signHeight / 2
	dc.Text(image.Pt(p.X+(c.op.column-c.op.signWidth)/2, p.Y), "∫", c.style, c.fontSize*1.6*c.env.zoom())
	if c.intStyle == IntDefinite {
		DrawList(dc, c.under, image.Pt(p.X+c.op.column-ListFullWidth(c.under), p.Y+half+ListCenter(c.under)))
		DrawList(dc, c.over, image.Pt(p.X+c.op.column-ListFullWidth(c.over), p.Y-half-ListMaxDrop(c.over)))
	}
	x := p.X + c.op.column + c.env.Scale(4)
	DrawList(dc, c.baseCell, image.Pt(x, p.Y))
	DrawList(dc, c.variable, image.Pt(x+ListFullWidth(c.baseCell), p.Y))
}

func (c *IntCell) BreakUp() bool {
	if c.intStyle == IntDefinite {
		return c.breakUp(c.open, c.baseCell, c.comma1, c.variable, c.comma2, c.under, c.comma3, c.over, c.close)
	}
	return c.breakUp(c.open, c.baseCell, c.comma1, c.variable, c.close)
}

// varName drops the leading d of the differential.
func (c *IntCell) varName(conv func(Cell) string) string {
	if tc, ok := c.variable.(*TextCell); ok && tc.Value() == "d" && c.variable.Next() != nil {
		return conv(c.variable.Next())
	}
	return conv(c.variable)
}

func (c *IntCell) linear(conv func(Cell) string) string {
	s := "integrate(" + conv(c.baseCell) + "," + c.varName(conv)
	if c.intStyle == IntDefinite {
		s += "," + conv(c.under) + "," + conv(c.over)
	}
	return s + ")"
}

func (c *IntCell) ToString() string {
	if c.altCopy != "" {
		return c.altCopy
	}
	return c.linear(ListToString)
}

func (c *IntCell) ToMatlab() string {
	return c.linear(ListToMatlab)
}

func (c *IntCell) ToTeX() string {
	s := `\int`
	if c.intStyle == IntDefinite {
		s += "_{" + ListToTeX(c.under) + "}^{" + ListToTeX(c.over) + "}"
	}
	return s + "{\\left. " + ListToTeX(c.baseCell) + `\;` + ListToTeX(c.variable) + "\\right.}"
}

func (c *IntCell) ToMathML() string {
	sign := "<mo>∫</mo>"
	if c.intStyle == IntDefinite {
		sign = "<msubsup>" + sign + mrow(c.under) + mrow(c.over) + "</msubsup>"
	}
	return "<mrow>" + sign + ListToMathML(c.baseCell) + ListToMathML(c.variable) + "</mrow>"
}

func (c *IntCell) ToOMML() string {
	s := `<m:nary><m:naryPr><m:chr m:val="∫"></m:chr></m:naryPr><m:sub>`
	if c.intStyle == IntDefinite {
		s += ListToOMML(c.under) + "</m:sub><m:sup>" + ListToOMML(c.over)
	} else {
		s += "</m:sub><m:sup>"
	}
	return s + "</m:sup><m:e>" + ListToOMML(c.baseCell) + ListToOMML(c.variable) + "</m:e></m:nary>"
}

func (c *IntCell) ToXML() string {
	if c.intStyle == IntDefinite {
		return "<in" + c.xmlFlags() + "><r>" + ListToXML(c.under) + "</r><r>" + ListToXML(c.over) + "</r><r>" +
			ListToXML(c.baseCell) + "</r><r>" + ListToXML(c.variable) + "</r></in>"
	}
	return `<in def="false"` + c.xmlFlags() + "><r>" + ListToXML(c.baseCell) + "</r><r>" + ListToXML(c.variable) + "</r></in>"
}
