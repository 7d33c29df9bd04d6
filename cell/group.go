package cell

import (
	"image"
	"strconv"
	"strings"
)

// Answer is a stored reply to a question maxima asked while evaluating a
// code entry.
type Answer struct {
	Question string
	Answer   string
}

// GroupCell is one worksheet entry: the editable part, the output produced
// for it and, when folded, the entries hidden under it.
type GroupCell struct {
	Base

	groupType  GroupType
	editor     *EditorCell
	output     Cell
	hiddenTree *GroupCell

	hide                  bool
	autoAnswer            bool
	suppressTooltipMarker bool
	answers               []Answer

	gap int
}

// NewGroupCell creates empty entry of the given type. Every type except
// page break has an editor.
func NewGroupCell(env *Env, t GroupType) *GroupCell {
	c := &GroupCell{groupType: t}
	c.init(env)
	c.cellType = CellTypeGroup
	if t != GroupTypePagebreak {
		c.editor = NewEditorCell(env, t.EditorType(), "")
	}
	return c
}

func (c *GroupCell) Copy() Cell {
	n := NewGroupCell(c.env, c.groupType)
	n.copyFrom(&c.Base)
	if c.editor != nil {
		n.editor = c.editor.Copy().(*EditorCell)
	}
	n.output = copyOrNil(c.output)
	if c.hiddenTree != nil {
		n.hiddenTree = CopyList(c.hiddenTree).(*GroupCell)
	}
	n.hide = c.hide
	n.autoAnswer = c.autoAnswer
	n.suppressTooltipMarker = c.suppressTooltipMarker
	n.answers = append([]Answer(nil), c.answers...)
	return n
}

func (c *GroupCell) GroupType() GroupType   { return c.groupType }
func (c *GroupCell) Editor() *EditorCell    { return c.editor }
func (c *GroupCell) Output() Cell           { return c.output }
func (c *GroupCell) HiddenTree() *GroupCell { return c.hiddenTree }

// SetEditableContent replaces editor text.
func (c *GroupCell) SetEditableContent(text string) {
	if c.editor == nil {
		return
	}
	c.editor.SetValue(text)
	c.invalidate()
}

// EditableContent returns editor text, empty for page breaks.
func (c *GroupCell) EditableContent() string {
	if c.editor == nil {
		return ""
	}
	return c.editor.Value()
}

// AppendOutput adds cells to the end of the output list.
func (c *GroupCell) AppendOutput(out Cell) {
	if out == nil {
		return
	}
	c.output = Append(c.output, out)
	c.invalidate()
}

// HideTree folds entries under this one.
func (c *GroupCell) HideTree(tree *GroupCell) {
	c.hiddenTree = tree
	c.invalidate()
}

// UnfoldTree detaches and returns the folded entries.
func (c *GroupCell) UnfoldTree() *GroupCell {
	tree := c.hiddenTree
	c.hiddenTree = nil
	c.invalidate()
	return tree
}

// IsHidden reports whether output is hidden.
func (c *GroupCell) IsHidden() bool { return c.hide }

func (c *GroupCell) Hide(hide bool) {
	c.hide = hide
	c.invalidate()
}

func (c *GroupCell) AutoAnswer() bool                { return c.autoAnswer }
func (c *GroupCell) SetAutoAnswer(auto bool)         { c.autoAnswer = auto }
func (c *GroupCell) SuppressTooltipMarker() bool     { return c.suppressTooltipMarker }
func (c *GroupCell) SetSuppressTooltipMarker(v bool) { c.suppressTooltipMarker = v }

// Answers returns stored answers in the order they were given.
func (c *GroupCell) Answers() []Answer { return append([]Answer(nil), c.answers...) }

// SetAnswer stores answer for question, replacing previous one.
func (c *GroupCell) SetAnswer(question, answer string) {
	for i := range c.answers {
		if c.answers[i].Question == question {
			c.answers[i].Answer = answer
			return
		}
	}
	c.answers = append(c.answers, Answer{Question: question, Answer: answer})
}

func (c *GroupCell) showOutput() bool {
	return c.output != nil && !c.hide
}

func (c *GroupCell) Recalculate(fontSize float64) {
	if !c.needsRecalculation(fontSize) {
		return
	}
	c.gap = c.env.Scale(4)
	c.width, c.height, c.center = 0, 0, 0
	if c.editor != nil {
		c.editor.Recalculate(fontSize)
		c.width = c.editor.Width()
		c.height = c.editor.Height()
		c.center = c.editor.Center()
	}
	if c.output != nil {
		RecalculateList(c.output, fontSize)
	}
	if c.showOutput() {
		sz := Bounds(c.output, c.gap)
		c.width = max(c.width, sz.X)
		if c.height > 0 {
			c.height += c.gap
		}
		c.height += sz.Y
	}
	if c.groupType == GroupTypePagebreak {
		c.height = c.env.Scale(MinSize)
		c.center = c.height / 2
	}
	c.recalculated(fontSize)
}

// Draw paints editor at p and output lines below it.
func (c *GroupCell) Draw(dc Painter, p image.Point) {
	c.drawn(p)
	top := p.Y - c.center
	if c.groupType == GroupTypePagebreak {
		dc.Line(image.Pt(p.X, p.Y), image.Pt(p.X+c.env.Scale(100), p.Y), TextStyleDefault)
		return
	}
	if c.editor != nil {
		c.editor.Draw(dc, p)
		top += c.editor.Height() + c.gap
	}
	if c.showOutput() {
		DrawLines(dc, c.output, image.Pt(p.X, top), c.gap)
	}
}

func (c *GroupCell) BreakUp() bool { return false }

// BreakOutput breaks output so that it fits into width and assigns line
// breaks.
func (c *GroupCell) BreakOutput(width int) {
	if c.output == nil {
		return
	}
	BreakUpCells(c.output, width)
	BreakLines(c.output, width)
	c.invalidate()
}

func (c *GroupCell) ToString() string {
	s := c.EditableContent()
	if c.showOutput() {
		if s != "" {
			s += "\n"
		}
		s += ListToString(c.output)
	}
	return s
}

func (c *GroupCell) ToMatlab() string {
	s := c.EditableContent()
	if c.showOutput() {
		if s != "" {
			s += "\n"
		}
		s += ListToMatlab(c.output)
	}
	return s
}

func (c *GroupCell) ToTeX() string {
	if c.groupType == GroupTypePagebreak {
		return `\pagebreak`
	}
	var s string
	if c.editor != nil && !(c.groupType == GroupTypeImage && c.editor.Value() == "") {
		s = c.editor.ToTeX()
	}
	if c.showOutput() {
		if s != "" {
			s += "\n"
		}
		s += `\[` + ListToTeX(c.output) + `\]`
	}
	return s
}

func (c *GroupCell) ToMathML() string {
	var s string
	if c.editor != nil {
		s = c.editor.ToMathML()
	}
	if c.showOutput() {
		s += mrow(c.output)
	}
	return "<mrow>" + s + "</mrow>"
}

func (c *GroupCell) ToOMML() string {
	var s string
	if c.editor != nil {
		s = c.editor.ToOMML()
	}
	if c.showOutput() {
		s += ListToOMML(c.output)
	}
	return s
}

// xmlType returns value of the type attribute and sectioning level.
// Lower headings are stored as subsections with a level so that older
// readers still show them.
func (c *GroupCell) xmlType() (string, int) {
	switch c.groupType {
	case GroupTypeSubsection, GroupTypeSubsubsection, GroupTypeHeading5, GroupTypeHeading6:
		return GroupTypeSubsection.String(), c.groupType.SectioningLevel()
	}
	return c.groupType.String(), 0
}

func (c *GroupCell) ToXML() string {
	var sb strings.Builder
	t, level := c.xmlType()
	sb.WriteString(`<cell type="` + t + `"`)
	if level > 0 {
		sb.WriteString(` sectioning_level="` + strconv.Itoa(level) + `"`)
	}
	if c.hide {
		sb.WriteString(` hide="true"`)
	}
	if c.autoAnswer {
		sb.WriteString(` auto_answer="yes"`)
	}
	for i, a := range c.answers {
		n := strconv.Itoa(i + 1)
		sb.WriteString(` question` + n + `="` + XMLEscape(a.Question) + `" answer` + n + `="` + XMLEscape(a.Answer) + `"`)
	}
	if c.suppressTooltipMarker {
		sb.WriteString(` hideToolTip="true"`)
	}
	sb.WriteString(">\n")
	if c.editor != nil {
		if c.groupType == GroupTypeCode {
			sb.WriteString("<input>\n" + c.editor.ToXML() + "\n</input>\n")
		} else {
			sb.WriteString(c.editor.ToXML() + "\n")
		}
	}
	if c.output != nil {
		if c.groupType == GroupTypeCode {
			sb.WriteString("<output>\n<mth>" + ListToXML(c.output) + "</mth></output>\n")
		} else {
			sb.WriteString(ListToXML(c.output) + "\n")
		}
	}
	if c.hiddenTree != nil {
		sb.WriteString("<fold>\n")
		for g := range All(c.hiddenTree) {
			sb.WriteString(g.ToXML() + "\n")
		}
		sb.WriteString("</fold>\n")
	}
	sb.WriteString("</cell>")
	return sb.String()
}
