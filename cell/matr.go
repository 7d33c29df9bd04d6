package cell

import (
	"image"
	"strings"
)

// MatrCell is a matrix or a table. Each entry is the head of a list.
type MatrCell struct {
	Base

	rows [][]Cell

	special       bool
	inference     bool
	colNames      bool
	rowNames      bool
	roundedParens bool

	colWidths        []int
	rowCenters       []int
	rowDrops         []int
	hgap, vgap, edge int
}

// NewMatrCell creates empty matrix, fill it with NewRow and AddCell.
func NewMatrCell(env *Env) *MatrCell {
	c := &MatrCell{}
	c.init(env)
	return c
}

func (c *MatrCell) Copy() Cell {
	n := NewMatrCell(c.env)
	n.copyFrom(&c.Base)
	n.special, n.inference = c.special, c.inference
	n.colNames, n.rowNames = c.colNames, c.rowNames
	n.roundedParens = c.roundedParens
	for _, row := range c.rows {
		n.NewRow()
		for _, e := range row {
			n.AddCell(CopyList(e))
		}
	}
	return n
}

// NewRow starts a new row, AddCell appends entries to it.
func (c *MatrCell) NewRow() {
	c.rows = append(c.rows, nil)
	c.invalidate()
}

// AddCell appends entry to the last row.
func (c *MatrCell) AddCell(e Cell) {
	if len(c.rows) == 0 {
		c.NewRow()
	}
	last := len(c.rows) - 1
	c.rows[last] = append(c.rows[last], InvalidOr(c.env, e))
	c.invalidate()
}

// Rows returns number of rows.
func (c *MatrCell) Rows() int { return len(c.rows) }

// Columns returns length of the longest row.
func (c *MatrCell) Columns() int {
	n := 0
	for _, row := range c.rows {
		n = max(n, len(row))
	}
	return n
}

// Entry returns the entry or nil when row is shorter.
func (c *MatrCell) Entry(row, col int) Cell {
	if row < 0 || row >= len(c.rows) || col < 0 || col >= len(c.rows[row]) {
		return nil
	}
	return c.rows[row][col]
}

func (c *MatrCell) Special() bool       { return c.special }
func (c *MatrCell) Inference() bool     { return c.inference }
func (c *MatrCell) ColNames() bool      { return c.colNames }
func (c *MatrCell) RowNames() bool      { return c.rowNames }
func (c *MatrCell) RoundedParens() bool { return c.roundedParens }

func (c *MatrCell) SetSpecial(v bool)       { c.special = v; c.invalidate() }
func (c *MatrCell) SetColNames(v bool)      { c.colNames = v; c.invalidate() }
func (c *MatrCell) SetRowNames(v bool)      { c.rowNames = v; c.invalidate() }
func (c *MatrCell) SetRoundedParens(v bool) { c.roundedParens = v; c.invalidate() }

// SetInference marks the table as inference rule, which is special too.
func (c *MatrCell) SetInference(v bool) {
	c.inference = v
	if v {
		c.special = true
	}
	c.invalidate()
}

func (c *MatrCell) Recalculate(fontSize float64) {
	if !c.needsRecalculation(fontSize) {
		return
	}
	cols := c.Columns()
	c.colWidths = make([]int, cols)
	c.rowCenters = make([]int, len(c.rows))
	c.rowDrops = make([]int, len(c.rows))
	for i, row := range c.rows {
		for j, e := range row {
			RecalculateList(e, fontSize)
			c.colWidths[j] = max(c.colWidths[j], ListFullWidth(e))
			c.rowCenters[i] = max(c.rowCenters[i], ListCenter(e))
			c.rowDrops[i] = max(c.rowDrops[i], ListMaxDrop(e))
		}
	}
	c.hgap, c.vgap = c.env.Scale(10), c.env.Scale(4)
	c.edge = c.env.Scale(6)
	if c.special {
		c.edge = c.env.Scale(2)
	}
	w := 2 * c.edge
	for _, cw := range c.colWidths {
		w += cw
	}
	if cols > 1 {
		w += (cols - 1) * c.hgap
	}
	h := 0
	for i := range c.rows {
		h += c.rowCenters[i] + c.rowDrops[i]
	}
	if len(c.rows) > 1 {
		h += (len(c.rows) - 1) * c.vgap
	}
	c.width = w
	c.height = max(h, c.env.Scale(MinSize))
	c.center = c.height / 2
	c.recalculated(fontSize)
}

func (c *MatrCell) Draw(dc Painter, p image.Point) {
	c.drawn(p)
	top, bottom := p.Y-c.center, p.Y+c.Drop()
	y := top
	for i, row := range c.rows {
		x := p.X + c.edge
		for j, e := range row {
			off := (c.colWidths[j] - ListFullWidth(e)) / 2
			DrawList(dc, e, image.Pt(x+off, y+c.rowCenters[i]))
			x += c.colWidths[j] + c.hgap
		}
		y += c.rowCenters[i] + c.rowDrops[i]
		switch {
		case c.colNames && i == 0, c.inference && i == len(c.rows)-2:
			ly := y + c.vgap/2
			dc.Line(image.Pt(p.X+c.edge, ly), image.Pt(p.X+c.width-c.edge, ly), c.style)
		}
		y += c.vgap
	}
	if c.rowNames && len(c.colWidths) > 1 {
		x := p.X + c.edge + c.colWidths[0] + c.hgap/2
		dc.Line(image.Pt(x, top), image.Pt(x, bottom), c.style)
	}
	if c.special {
		return
	}
	if c.roundedParens {
		drawBracket(dc, p.X, top, bottom, c.edge, false, c.style)
		drawBracket(dc, p.X+c.width-c.edge, top, bottom, c.edge, true, c.style)
		return
	}
	l, r := p.X+c.edge/3, p.X+c.width-c.edge/3
	tick := c.edge / 2
	dc.Line(image.Pt(l, top), image.Pt(l, bottom), c.style)
	dc.Line(image.Pt(l, top), image.Pt(l+tick, top), c.style)
	dc.Line(image.Pt(l, bottom), image.Pt(l+tick, bottom), c.style)
	dc.Line(image.Pt(r, top), image.Pt(r, bottom), c.style)
	dc.Line(image.Pt(r, top), image.Pt(r-tick, top), c.style)
	dc.Line(image.Pt(r, bottom), image.Pt(r-tick, bottom), c.style)
}

// BreakUp is not supported, matrices are always laid out as a block.
func (c *MatrCell) BreakUp() bool { return false }

func (c *MatrCell) join(conv func(Cell) string, open, colSep, close, rowSep string) string {
	rows := make([]string, 0, len(c.rows))
	for _, row := range c.rows {
		entries := make([]string, 0, len(row))
		for _, e := range row {
			entries = append(entries, conv(e))
		}
		rows = append(rows, open+strings.Join(entries, colSep)+close)
	}
	return strings.Join(rows, rowSep)
}

func (c *MatrCell) ToString() string {
	if c.altCopy != "" {
		return c.altCopy
	}
	if c.inference && len(c.rows) > 1 {
		last := c.rows[len(c.rows)-1]
		premises := (&MatrCell{rows: c.rows[:len(c.rows)-1]}).join(ListToString, "", ",", "", ",")
		var conclusion []string
		for _, e := range last {
			conclusion = append(conclusion, ListToString(e))
		}
		return "inference_rule([" + premises + "],[" + strings.Join(conclusion, ",") + "])"
	}
	if c.special {
		return c.join(ListToString, "", "\t", "", "\n")
	}
	return "matrix(" + c.join(ListToString, "[", ",", "]", ",") + ")"
}

func (c *MatrCell) ToMatlab() string {
	if c.altCopy != "" {
		return c.altCopy
	}
	return "[" + c.join(ListToMatlab, "", ",", "", ";") + "]"
}

func (c *MatrCell) ToTeX() string {
	body := c.join(ListToTeX, "", " & ", "", `\\`+"\n")
	if c.special {
		return `\begin{array}{` + strings.Repeat("c", c.Columns()) + "}\n" + body + "\n" + `\end{array}`
	}
	env := "bmatrix"
	if c.roundedParens {
		env = "pmatrix"
	}
	return `\begin{` + env + "}\n" + body + "\n" + `\end{` + env + "}"
}

func (c *MatrCell) ToMathML() string {
	body := "<mtable>" + c.join(ListToMathML, "<mtr><mtd>", "</mtd><mtd>", "</mtd></mtr>", "") + "</mtable>"
	if c.special {
		return body
	}
	open, close := "[", "]"
	if c.roundedParens {
		open, close = "(", ")"
	}
	return "<mrow><mo>" + open + "</mo>" + body + "<mo>" + close + "</mo></mrow>"
}

func (c *MatrCell) ToOMML() string {
	body := "<m:m>" + c.join(ListToOMML, "<m:mr><m:e>", "</m:e><m:e>", "</m:e></m:mr>", "") + "</m:m>"
	if c.special {
		return body
	}
	open, close := "[", "]"
	if c.roundedParens {
		open, close = "(", ")"
	}
	return `<m:d><m:dPr><m:begChr m:val="` + open + `"></m:begChr><m:endChr m:val="` + close +
		`"></m:endChr></m:dPr><m:e>` + body + "</m:e></m:d>"
}

func (c *MatrCell) ToXML() string {
	var attrs string
	for _, f := range []struct {
		name string
		set  bool
	}{
		{"special", c.special && !c.inference},
		{"inference", c.inference},
		{"colnames", c.colNames},
		{"rownames", c.rowNames},
		{"roundedParens", c.roundedParens},
	} {
		if f.set {
			attrs += " " + f.name + `="true"`
		}
	}
	var sb strings.Builder
	sb.WriteString("<tb" + attrs + c.xmlFlags() + ">")
	for _, row := range c.rows {
		sb.WriteString("<mtr>")
		for _, e := range row {
			sb.WriteString("<mtd>" + ListToXML(e) + "</mtd>")
		}
		sb.WriteString("</mtr>")
	}
	sb.WriteString("</tb>")
	return sb.String()
}
