package cell

import (
	"image"
)

// BreakUpCells walks the draw chain and breaks up every cell wider than
// maxWidth. Cells produced by breaking are examined too. Returns true when
// anything was broken.
func BreakUpCells(head Cell, maxWidth int) bool {
	broken := false
	for c := head; c != nil; c = c.NextToDraw() {
		if c.Width() > maxWidth && c.BreakUp() {
			broken = true
		}
	}
	return broken
}

// BreakLines assigns soft line breaks along the draw chain so that no line
// is wider than maxWidth unless a single cell is. Forced breaks always start
// a new line.
func BreakLines(head Cell, maxWidth int) {
	width := 0
	first, forced := true, false
	for c := range Cells(head) {
		b := c.base()
		b.breakLine = false
		if c.IsBrokenIntoLines() {
			forced = forced || c.ForceBreakLine()
			continue
		}
		switch {
		case first:
			width = c.Width()
			first, forced = false, false
		case c.ForceBreakLine():
			width = c.Width()
			forced = false
		case forced:
			b.breakLine = true
			width = c.Width()
			forced = false
		case width+c.Width() > maxWidth:
			b.breakLine = true
			width = c.Width()
		default:
			width += c.Width()
		}
	}
}

// Line is one display line of the draw chain.
type Line struct {
	Cells  []Cell
	Width  int
	Center int
	Drop   int
}

// Height of the line.
func (l *Line) Height() int { return l.Center + l.Drop }

// Lines groups the draw chain into display lines. Cells broken into lines
// are skipped, their flattened children are part of the chain.
func Lines(head Cell) []*Line {
	var (
		lines  []*Line
		cur    *Line
		forced bool
	)
	for c := range Cells(head) {
		if c.IsBrokenIntoLines() {
			forced = forced || c.ForceBreakLine()
			continue
		}
		if cur == nil || forced || c.ForceBreakLine() || c.BreakLine() {
			forced = false
			cur = &Line{}
			lines = append(lines, cur)
		}
		cur.Cells = append(cur.Cells, c)
		cur.Width += c.Width()
		cur.Center = max(cur.Center, c.Center())
		cur.Drop = max(cur.Drop, c.Drop())
	}
	return lines
}

// DrawLines paints the draw chain as lines starting with top left corner at
// p, separated by gap pixels. Returns the total height.
func DrawLines(dc Painter, head Cell, p image.Point, gap int) int {
	y := p.Y
	for i, l := range Lines(head) {
		if i > 0 {
			y += gap
		}
		x := p.X
		for _, c := range l.Cells {
			c.Draw(dc, image.Pt(x, y+l.Center))
			x += c.Width()
		}
		y += l.Height()
	}
	return y - p.Y
}

// Bounds returns the size of the draw chain laid out in lines.
func Bounds(head Cell, gap int) image.Point {
	var sz image.Point
	for i, l := range Lines(head) {
		if i > 0 {
			sz.Y += gap
		}
		sz.X = max(sz.X, l.Width)
		sz.Y += l.Height()
	}
	return sz
}
