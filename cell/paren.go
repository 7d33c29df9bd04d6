package cell

import (
	"image"
	"unicode"
)

// ParenCell is an expression in parentheses.
type ParenCell struct {
	Base

	inner       Cell
	open, close *TextCell
	print       bool
	big         bool
}

// NewParenCell creates parentheses around inner, which may be nil.
func NewParenCell(env *Env, inner Cell) *ParenCell {
	c := &ParenCell{
		open:  NewTextCell(env, "(", TextStyleFunction),
		close: NewTextCell(env, ")", TextStyleFunction),
		print: true,
	}
	c.init(env)
	c.SetInner(inner)
	return c
}

func (c *ParenCell) Copy() Cell {
	n := NewParenCell(c.env, CopyList(c.inner))
	n.copyFrom(&c.Base)
	n.print = c.print
	return n
}

func (c *ParenCell) Inner() Cell { return c.inner }

// SetInner replaces contents, nil means empty parentheses.
func (c *ParenCell) SetInner(inner Cell) {
	if inner == nil {
		inner = NewTextCell(c.env, "", TextStyleDefault)
	}
	c.inner = inner
	c.invalidate()
}

// Print reports whether parentheses are shown.
func (c *ParenCell) Print() bool { return c.print }

func (c *ParenCell) SetPrint(show bool) {
	c.print = show
	c.invalidate()
}

func (c *ParenCell) Recalculate(fontSize float64) {
	if !c.needsRecalculation(fontSize) {
		return
	}
	RecalculateList(c.inner, fontSize)
	c.open.Recalculate(fontSize)
	c.close.Recalculate(fontSize)
	innerHeight := ListHeight(c.inner)
	c.big = innerHeight > c.open.Height()*3/2
	c.width = ListFullWidth(c.inner)
	c.center = ListCenter(c.inner)
	c.height = innerHeight
	if c.print {
		c.width += c.parenWidth() * 2
		if c.big {
			c.center += c.env.Scale(2)
			c.height += c.env.Scale(4)
		} else {
			c.center = max(c.center, c.open.Center())
			c.height = c.center + max(ListMaxDrop(c.inner), c.open.Drop())
		}
	}
	c.recalculated(fontSize)
}

func (c *ParenCell) parenWidth() int {
	if c.big {
		return c.env.Scale(6)
	}
	return c.open.Width()
}

func (c *ParenCell) Draw(dc Painter, p image.Point) {
	c.drawn(p)
	if !c.print {
		DrawList(dc, c.inner, p)
		return
	}
	pw := c.parenWidth()
	DrawList(dc, c.inner, image.Pt(p.X+pw, p.Y))
	if !c.big {
		c.open.Draw(dc, p)
		c.close.Draw(dc, image.Pt(p.X+c.width-pw, p.Y))
		return
	}
	top, bottom := p.Y-c.center+c.env.Scale(1), p.Y+c.Drop()-c.env.Scale(1)
	drawBracket(dc, p.X, top, bottom, pw, false, c.style)
	drawBracket(dc, p.X+c.width-pw, top, bottom, pw, true, c.style)
}

// drawBracket paints a tall round bracket as three segments.
func drawBracket(dc Painter, x, top, bottom, w int, right bool, style TextStyle) {
	inner, outer := x+w*2/3, x+w/3
	if right {
		inner, outer = x+w/3, x+w*2/3
	}
	bend := (bottom - top) / 6
	dc.Line(image.Pt(inner, top), image.Pt(outer, top+bend), style)
	dc.Line(image.Pt(outer, top+bend), image.Pt(outer, bottom-bend), style)
	dc.Line(image.Pt(outer, bottom-bend), image.Pt(inner, bottom), style)
}

func (c *ParenCell) BreakUp() bool {
	if !c.print {
		return c.breakUp(c.inner)
	}
	return c.breakUp(c.open, c.inner, c.close)
}

func (c *ParenCell) ToString() string {
	if c.altCopy != "" {
		return c.altCopy
	}
	if !c.print {
		return ListToString(c.inner)
	}
	return "(" + ListToString(c.inner) + ")"
}

func (c *ParenCell) ToMatlab() string {
	if !c.print {
		return ListToMatlab(c.inner)
	}
	return "(" + ListToMatlab(c.inner) + ")"
}

func (c *ParenCell) ToTeX() string {
	inner := ListToTeX(c.inner)
	if !c.print {
		return inner
	}
	if simpleTeX(inner) {
		return "(" + inner + ")"
	}
	return `\left( ` + inner + `\right) `
}

// simpleTeX reports content that does not need growing delimiters.
func simpleTeX(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != ',' && r != ' ' {
			return false
		}
	}
	return true
}

func (c *ParenCell) ToMathML() string {
	if !c.print {
		return mrow(c.inner)
	}
	return "<mrow><mo>(</mo>" + ListToMathML(c.inner) + "<mo>)</mo></mrow>"
}

func (c *ParenCell) ToOMML() string {
	if !c.print {
		return ListToOMML(c.inner)
	}
	return `<m:d><m:dPr><m:begChr m:val="("></m:begChr><m:endChr m:val=")"></m:endChr></m:dPr><m:e>` +
		ListToOMML(c.inner) + "</m:e></m:d>"
}

func (c *ParenCell) ToXML() string {
	attrs := c.xmlFlags()
	if !c.print {
		attrs = ` print="no"` + attrs
	}
	return "<p" + attrs + ">" + ListToXML(c.inner) + "</p>"
}
