package cell

import (
	"image"
	"strings"
)

// EditorCell holds editable source of a worksheet entry: maxima input,
// comment text or a heading.
type EditorCell struct {
	Base

	value      string
	lineHeight int
}

// NewEditorCell creates editor of the given type.
func NewEditorCell(env *Env, t CellType, value string) *EditorCell {
	c := &EditorCell{value: value}
	c.init(env)
	c.SetType(t)
	return c
}

func (c *EditorCell) Copy() Cell {
	n := NewEditorCell(c.env, c.cellType, c.value)
	n.copyFrom(&c.Base)
	return n
}

func (c *EditorCell) Value() string { return c.value }

func (c *EditorCell) SetValue(text string) {
	c.value = text
	c.invalidate()
}

// SetType changes type and the matching text style.
func (c *EditorCell) SetType(t CellType) {
	c.cellType = t
	c.SetStyle(t.TextStyle())
}

// Lines returns editor contents split into lines.
func (c *EditorCell) Lines() []string {
	return strings.Split(c.value, "\n")
}

func (c *EditorCell) Recalculate(fontSize float64) {
	if !c.needsRecalculation(fontSize) {
		return
	}
	pad := 2 * c.env.Scale(TextPadding)
	_, c.lineHeight = c.env.textSize("X", c.style, fontSize)
	c.lineHeight += pad
	c.width = 0
	lines := c.Lines()
	for _, l := range lines {
		w, _ := c.env.textSize(l, c.style, fontSize)
		c.width = max(c.width, w+pad)
	}
	c.height = len(lines) * c.lineHeight
	c.center = c.lineHeight / 2
	c.recalculated(fontSize)
}

func (c *EditorCell) Draw(dc Painter, p image.Point) {
	c.drawn(p)
	for i, l := range c.Lines() {
		if l == "" {
			continue
		}
		dc.Text(image.Pt(p.X+c.env.Scale(TextPadding), p.Y+i*c.lineHeight), l, c.style, c.fontSize*c.env.zoom())
	}
}

func (c *EditorCell) BreakUp() bool { return false }

func (c *EditorCell) ToString() string {
	if c.altCopy != "" {
		return c.altCopy
	}
	return c.value
}

func (c *EditorCell) ToMatlab() string {
	return c.ToString()
}

var texSections = map[CellType]string{
	CellTypeTitle:         `\title`,
	CellTypeSection:       `\section`,
	CellTypeSubsection:    `\subsection`,
	CellTypeSubsubsection: `\subsubsection`,
	CellTypeHeading5:      `\paragraph`,
	CellTypeHeading6:      `\subparagraph`,
}

func (c *EditorCell) ToTeX() string {
	if c.cellType == CellTypeInput {
		return `\begin{verbatim}` + "\n" + c.value + "\n" + `\end{verbatim}`
	}
	text := strings.ReplaceAll(TeXEscape(c.value), "\n", `\\`+"\n")
	if cmd, ok := texSections[c.cellType]; ok {
		return cmd + "{" + text + "}"
	}
	return text
}

func (c *EditorCell) ToMathML() string {
	return "<mtext>" + XMLEscape(c.value) + "</mtext>"
}

func (c *EditorCell) ToOMML() string {
	return omml(c.value)
}

func (c *EditorCell) ToXML() string {
	var sb strings.Builder
	sb.WriteString(`<editor type="` + c.cellType.XMLName() + `">`)
	for _, l := range c.Lines() {
		sb.WriteString("<line>" + XMLEscape(l) + "</line>")
	}
	sb.WriteString("</editor>")
	return sb.String()
}
