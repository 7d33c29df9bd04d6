package cell

import (
	"image"
	"strings"
)

const texArrow = `\mbox{\rightarrow }`

// LimitCell is limit of base when the variable approaches a value. The
// under part holds "var->value" as parsed, name is usually "lim".
type LimitCell struct {
	Base

	name, under, baseCell Cell
	open, comma, close    *TextCell
}

// NewLimitCell creates limit. Missing parts are replaced by invalid
// placeholders.
func NewLimitCell(env *Env, name, under, base Cell) *LimitCell {
	c := &LimitCell{
		open:  punct(env, "("),
		comma: punct(env, ","),
		close: punct(env, ")"),
	}
	c.init(env)
	c.name = InvalidOr(env, name)
	c.under = InvalidOr(env, under)
	c.baseCell = InvalidOr(env, base)
	return c
}

func (c *LimitCell) Copy() Cell {
	n := NewLimitCell(c.env, CopyList(c.name), CopyList(c.under), CopyList(c.baseCell))
	n.copyFrom(&c.Base)
	return n
}

func (c *LimitCell) Name() Cell     { return c.name }
func (c *LimitCell) Under() Cell    { return c.under }
func (c *LimitCell) BaseCell() Cell { return c.baseCell }

func (c *LimitCell) SetName(name Cell) {
	c.name = InvalidOr(c.env, name)
	c.invalidate()
}

func (c *LimitCell) SetUnder(under Cell) {
	c.under = InvalidOr(c.env, under)
	c.invalidate()
}

func (c *LimitCell) SetBase(base Cell) {
	c.baseCell = InvalidOr(c.env, base)
	c.invalidate()
}

func (c *LimitCell) underSize(fontSize float64) float64 {
	return c.env.reduced(fontSize, limitFontDecrease)
}

func (c *LimitCell) Recalculate(fontSize float64) {
	if !c.needsRecalculation(fontSize) {
		return
	}
	RecalculateList(c.baseCell, fontSize)
	RecalculateList(c.under, c.underSize(fontSize))
	RecalculateList(c.name, fontSize)
	for _, t := range []*TextCell{c.open, c.comma, c.close} {
		t.Recalculate(fontSize)
	}
	c.width = max(ListFullWidth(c.name), ListFullWidth(c.under)) + ListFullWidth(c.baseCell)
	c.center = max(ListCenter(c.baseCell), ListCenter(c.name))
	c.height = c.center + max(ListMaxDrop(c.name)+ListHeight(c.under), ListMaxDrop(c.baseCell))
	c.recalculated(fontSize)
}

func (c *LimitCell) Draw(dc Painter, p image.Point) {
	c.drawn(p)
	nameW, underW := ListFullWidth(c.name), ListFullWidth(c.under)
	column := max(nameW, underW)
	DrawList(dc, c.name, image.Pt(p.X+column/2-nameW/2, p.Y))
	DrawList(dc, c.under, image.Pt(p.X+column/2-underW/2, p.Y+ListMaxDrop(c.name)+ListCenter(c.under)))
	DrawList(dc, c.baseCell, image.Pt(p.X+column, p.Y))
}

// BreakUp flattens the limit to name(base,under).
func (c *LimitCell) BreakUp() bool {
	return c.breakUp(c.name, c.open, c.baseCell, c.comma, c.under, c.close)
}

// limitArrows separate variable from value in the under part.
var limitArrows = []string{"->", "\u2192"}

// splitUnder separates "var->value" at the first of seps. One sided limits
// are marked by trailing sign of value which becomes ",plus" or ",minus"
// when sided is set.
func splitUnder(under string, sided bool, seps ...string) (string, string) {
	v, to := under, ""
	at, width := -1, 0
	for _, sep := range seps {
		if i := strings.Index(under, sep); i >= 0 && (at < 0 || i < at) {
			at, width = i, len(sep)
		}
	}
	if at >= 0 {
		v, to = under[:at], under[at+width:]
	}
	if sided {
		switch {
		case strings.HasSuffix(to, "+"):
			to = strings.TrimSuffix(to, "+") + ",plus"
		case strings.HasSuffix(to, "-"):
			to = strings.TrimSuffix(to, "-") + ",minus"
		}
	}
	return v, to
}

func (c *LimitCell) ToString() string {
	if c.altCopy != "" {
		return c.altCopy
	}
	v, to := splitUnder(ListToString(c.under), true, limitArrows...)
	return "limit(" + ListToString(c.baseCell) + "," + v + "," + to + ")"
}

func (c *LimitCell) ToMatlab() string {
	v, to := splitUnder(ListToMatlab(c.under), true, limitArrows...)
	return "limit(" + ListToMatlab(c.baseCell) + "," + v + "," + to + ")"
}

func (c *LimitCell) ToTeX() string {
	v, to := splitUnder(ListToTeX(c.under), false, append(limitArrows, texArrow)...)
	return `\lim_{` + v + `\to ` + to + "}{" + ListToTeX(c.baseCell) + "}"
}

func (c *LimitCell) ToMathML() string {
	from := ListToMathML(c.under)
	if from == "" {
		return "<mo>lim</mo>" + ListToMathML(c.baseCell)
	}
	return "<mrow><munder><mo>lim</mo>" + mrow(c.under) + "</munder>" + ListToMathML(c.baseCell) + "</mrow>"
}

func (c *LimitCell) ToOMML() string {
	under := strings.ReplaceAll(ListToOMML(c.under), "->", "→")
	return "<m:func><m:fName><m:limLow><m:e>" + omml("lim") + "</m:e><m:lim>" + under +
		"</m:lim></m:limLow></m:fName><m:e>" + ListToOMML(c.baseCell) + "</m:e></m:func>"
}

func (c *LimitCell) ToXML() string {
	return "<lm" + c.xmlFlags() + "><r>" + ListToXML(c.name) + "</r><r>" + ListToXML(c.under) +
		"</r><r>" + ListToXML(c.baseCell) + "</r></lm>"
}
