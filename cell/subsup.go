package cell

import (
	"image"
	"slices"
	"strings"
)

// SubSupCell is base with up to four scripts: subscript and superscript
// before and after it.
type SubSupCell struct {
	Base

	baseCell         Cell
	postSub, postSup Cell
	preSub, preSup   Cell
	// scripts set through the positional setters, in order of assignment
	scripts []Cell
	aux     []*TextCell

	overlap int
}

// NewSubSupCell creates cell with the base only.
func NewSubSupCell(env *Env, base Cell) *SubSupCell {
	c := &SubSupCell{}
	c.init(env)
	c.baseCell = InvalidOr(env, base)
	return c
}

func (c *SubSupCell) Copy() Cell {
	n := NewSubSupCell(c.env, CopyList(c.baseCell))
	n.copyFrom(&c.Base)
	if c.postSub != nil && !slices.Contains(c.scripts, c.postSub) {
		n.SetIndex(CopyList(c.postSub))
	}
	if c.postSup != nil && !slices.Contains(c.scripts, c.postSup) {
		n.SetExponent(CopyList(c.postSup))
	}
	for _, s := range c.scripts {
		switch s {
		case c.preSub:
			n.SetPreSub(CopyList(s))
		case c.preSup:
			n.SetPreSup(CopyList(s))
		case c.postSub:
			n.SetPostSub(CopyList(s))
		case c.postSup:
			n.SetPostSup(CopyList(s))
		}
	}
	return n
}

func (c *SubSupCell) BaseCell() Cell { return c.baseCell }
func (c *SubSupCell) PostSub() Cell  { return c.postSub }
func (c *SubSupCell) PostSup() Cell  { return c.postSup }
func (c *SubSupCell) PreSub() Cell   { return c.preSub }
func (c *SubSupCell) PreSup() Cell   { return c.preSup }

// Scripts returns scripts set by position.
func (c *SubSupCell) Scripts() []Cell { return slices.Clone(c.scripts) }

func (c *SubSupCell) SetBase(base Cell) {
	if base == nil {
		return
	}
	c.baseCell = base
	c.invalidate()
}

// setScript replaces occupant of one position. Nil leaves position as is.
func (c *SubSupCell) setScript(slot *Cell, script Cell, positional bool) {
	if script == nil {
		return
	}
	if *slot != nil {
		old := *slot
		c.scripts = slices.DeleteFunc(c.scripts, func(s Cell) bool { return s == old })
	}
	*slot = script
	script.SetExponentFlag(true)
	if positional {
		c.scripts = append(c.scripts, script)
	}
	c.invalidate()
}

func (c *SubSupCell) SetPreSub(s Cell)  { c.setScript(&c.preSub, s, true) }
func (c *SubSupCell) SetPreSup(s Cell)  { c.setScript(&c.preSup, s, true) }
func (c *SubSupCell) SetPostSub(s Cell) { c.setScript(&c.postSub, s, true) }
func (c *SubSupCell) SetPostSup(s Cell) { c.setScript(&c.postSup, s, true) }

// SetIndex sets the conventional subscript.
func (c *SubSupCell) SetIndex(s Cell) { c.setScript(&c.postSub, s, false) }

// SetExponent sets the conventional superscript.
func (c *SubSupCell) SetExponent(s Cell) { c.setScript(&c.postSup, s, false) }

func (c *SubSupCell) hasPre() bool { return c.preSub != nil || c.preSup != nil }

func (c *SubSupCell) Recalculate(fontSize float64) {
	if !c.needsRecalculation(fontSize) {
		return
	}
	smaller := c.env.reduced(fontSize, subSupDec)
	RecalculateList(c.baseCell, fontSize)
	for _, s := range []Cell{c.postSub, c.postSup, c.preSub, c.preSup} {
		if s != nil {
			RecalculateList(s, smaller)
		}
	}
	for _, t := range c.aux {
		t.Recalculate(fontSize)
	}
	c.overlap = c.env.Scale(fontSize/2 + ExpIndent)

	preWidth, postWidth := c.scriptWidths()
	subHeight := max(listHeightOrZero(c.postSub), listHeightOrZero(c.preSub))
	supHeight := max(listHeightOrZero(c.postSup), listHeightOrZero(c.preSup))
	baseCenter, baseDrop := ListCenter(c.baseCell), ListMaxDrop(c.baseCell)

	c.width = preWidth + ListFullWidth(c.baseCell) + postWidth
	c.center = max(baseCenter, baseCenter+supHeight-c.overlap)
	c.height = c.center + max(baseDrop, baseDrop+subHeight-c.overlap)
	c.recalculated(fontSize)
}

func listHeightOrZero(head Cell) int {
	if head == nil {
		return 0
	}
	return ListHeight(head)
}

func listWidthOrZero(head Cell) int {
	if head == nil {
		return 0
	}
	return ListFullWidth(head)
}

func (c *SubSupCell) scriptWidths() (pre, post int) {
	pre = max(listWidthOrZero(c.preSub), listWidthOrZero(c.preSup))
	post = max(listWidthOrZero(c.postSub), listWidthOrZero(c.postSup))
	return pre, post
}

// subY and supY give center lines of scripts relative to p.
func (c *SubSupCell) subY(s Cell) int {
	return ListMaxDrop(c.baseCell) + ListCenter(s) - c.overlap
}

func (c *SubSupCell) supY(s Cell) int {
	return -(ListCenter(c.baseCell) + ListHeight(s) - ListCenter(s) - c.overlap)
}

func (c *SubSupCell) Draw(dc Painter, p image.Point) {
	c.drawn(p)
	preWidth, _ := c.scriptWidths()
	if c.preSub != nil {
		DrawList(dc, c.preSub, image.Pt(p.X+preWidth-ListFullWidth(c.preSub), p.Y+c.subY(c.preSub)))
	}
	if c.preSup != nil {
		DrawList(dc, c.preSup, image.Pt(p.X+preWidth-ListFullWidth(c.preSup), p.Y+c.supY(c.preSup)))
	}
	x := p.X + preWidth
	DrawList(dc, c.baseCell, image.Pt(x, p.Y))
	x += ListFullWidth(c.baseCell)
	if c.postSub != nil {
		DrawList(dc, c.postSub, image.Pt(x, p.Y+c.subY(c.postSub)))
	}
	if c.postSup != nil {
		DrawList(dc, c.postSup, image.Pt(x, p.Y+c.supY(c.postSup)))
	}
}

// BreakUp flattens scripts into linear notation around the base.
func (c *SubSupCell) BreakUp() bool {
	if c.brokenIntoLines {
		return false
	}
	var lists []Cell
	wrap := func(open string, s Cell, close string) {
		if s == nil {
			return
		}
		o, cl := punct(c.env, open), punct(c.env, close)
		c.aux = append(c.aux, o, cl)
		lists = append(lists, o, s, cl)
	}
	wrap("[", c.preSub, "]")
	wrap("^(", c.preSup, ")")
	lists = append(lists, c.baseCell)
	wrap("[", c.postSub, "]")
	wrap("^(", c.postSup, ")")
	for _, t := range c.aux {
		t.Recalculate(c.fontSize)
	}
	return c.breakUp(lists...)
}

func (c *SubSupCell) ToString() string {
	if c.altCopy != "" {
		return c.altCopy
	}
	return c.linear(ListToString, "", "")
}

func (c *SubSupCell) ToMatlab() string {
	return c.linear(ListToMatlab, "[", ";")
}

// linear renders text forms. Without pre-scripts this is the conventional
// base[sub]^sup, otherwise every script is listed in assignment order,
// either in separate brackets or in one bracket separated by sep.
func (c *SubSupCell) linear(conv func(Cell) string, open, sep string) string {
	var sb strings.Builder
	sb.WriteString(parenthesized(c.baseCell, conv(c.baseCell)))
	if !c.hasPre() {
		if c.postSub != nil {
			sb.WriteString("[" + conv(c.postSub) + "]")
		}
		if c.postSup != nil {
			sb.WriteString("^" + parenthesized(c.postSup, conv(c.postSup)))
		}
		return sb.String()
	}
	scripts := slices.Clone(c.scripts)
	for _, s := range []Cell{c.postSub, c.postSup} {
		if s != nil && !slices.Contains(scripts, s) {
			scripts = append(scripts, s)
		}
	}
	parts := make([]string, 0, len(scripts))
	for _, s := range scripts {
		parts = append(parts, conv(s))
	}
	if open == "" {
		for _, p := range parts {
			sb.WriteString("[" + p + "]")
		}
		return sb.String()
	}
	sb.WriteString(open + strings.Join(parts, sep) + "]")
	return sb.String()
}

func (c *SubSupCell) ToTeX() string {
	var s string
	if !c.hasPre() {
		if c.env != nil && c.env.TeXExponentsAfterSubscript {
			s = "{{{" + ListToTeX(c.baseCell) + "}"
			if c.postSub != nil {
				s += "_{" + ListToTeX(c.postSub) + "}"
			}
			s += "}"
			if c.postSup != nil {
				s += "^{" + ListToTeX(c.postSup) + "}"
			}
			return s + "}"
		}
		s = "{{" + ListToTeX(c.baseCell) + "}"
		if c.postSub != nil {
			s += "_{" + ListToTeX(c.postSub) + "}"
		}
		if c.postSup != nil {
			s += "^{" + ListToTeX(c.postSup) + "}"
		}
		return s + "}"
	}
	s = "{}"
	if c.preSup != nil {
		s += "^{" + ListToTeX(c.preSup) + "}"
	}
	if c.preSub != nil {
		s += "_{" + ListToTeX(c.preSub) + "}"
	}
	s += "{" + ListToTeX(c.baseCell) + "}"
	if c.postSup != nil {
		s += "^{" + ListToTeX(c.postSup) + "}"
	}
	if c.postSub != nil {
		s += "_{" + ListToTeX(c.postSub) + "}"
	}
	return s
}

func mathMLScript(s Cell) string {
	if s == nil {
		return "<none/>"
	}
	return "<mrow>" + ListToMathML(s) + "</mrow>"
}

func (c *SubSupCell) ToMathML() string {
	if !c.hasPre() {
		s := "<msubsup>" + mrow(c.baseCell)
		for _, script := range []Cell{c.postSub, c.postSup} {
			if script == nil {
				s += "<mrow/>"
			} else {
				s += mrow(script)
			}
		}
		return s + "</msubsup>"
	}
	s := "<mmultiscripts>" + mrow(c.baseCell)
	if c.postSub != nil || c.postSup != nil {
		s += mathMLScript(c.postSub) + mathMLScript(c.postSup)
	}
	s += "<mprescripts/>" + mathMLScript(c.preSub) + mathMLScript(c.preSup)
	return s + "</mmultiscripts>"
}

func ommlScript(s Cell) string {
	if s == nil {
		return "<m:r></m:r>"
	}
	return ListToOMML(s)
}

func (c *SubSupCell) ToOMML() string {
	var s string
	if c.hasPre() {
		s = "<m:sSubSup><m:e><m:r></m:r></m:e><m:sub>" + ommlScript(c.preSub) +
			"</m:sub><m:sup>" + ommlScript(c.preSup) + "</m:sup></m:sSubSup>"
	}
	return s + "<m:sSubSup><m:e>" + ListToOMML(c.baseCell) + "</m:e><m:sub>" + ommlScript(c.postSub) +
		"</m:sub><m:sup>" + ommlScript(c.postSup) + "</m:sup></m:sSubSup>"
}

func (c *SubSupCell) ToXML() string {
	s := "<ie" + c.xmlFlags() + "><r>" + ListToXML(c.baseCell) + "</r>"
	if len(c.scripts) == 0 {
		s += "<r>"
		if c.postSub != nil {
			s += ListToXML(c.postSub)
		}
		s += "</r><r>"
		if c.postSup != nil {
			s += ListToXML(c.postSup)
		}
		return s + "</r></ie>"
	}
	for _, pos := range []struct {
		name   string
		script Cell
	}{
		{"presup", c.preSup},
		{"presub", c.preSub},
		{"postsup", c.postSup},
		{"postsub", c.postSub},
	} {
		if pos.script != nil {
			s += `<r pos="` + pos.name + `">` + ListToXML(pos.script) + "</r>"
		}
	}
	return s + "</ie>"
}
