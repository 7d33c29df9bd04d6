package cell

import (
	"image"
	"iter"
	"strings"
)

// Append links tail after the last cell of the list starting at head and
// returns head. When head is nil tail becomes the head.
func Append(head, tail Cell) Cell {
	if tail == nil {
		return head
	}
	if head == nil {
		return tail
	}
	last := Last(head)
	last.base().next = tail
	tail.base().previous = last
	last.SetNextToDraw(tail)
	return head
}

// Last returns the last cell of the ownership list.
func Last(head Cell) Cell {
	if head == nil {
		return nil
	}
	c := head
	for c.Next() != nil {
		c = c.Next()
	}
	return c
}

// All iterates over the ownership list.
func All(head Cell) iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		for c := head; c != nil; c = c.Next() {
			if !yield(c) {
				return
			}
		}
	}
}

// Cells iterates over the draw chain, including cells flattened by BreakUp.
func Cells(head Cell) iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		for c := head; c != nil; c = c.NextToDraw() {
			if !yield(c) {
				return
			}
		}
	}
}

// Len returns number of cells in the ownership list.
func Len(head Cell) int {
	n := 0
	for range All(head) {
		n++
	}
	return n
}

// CopyList deep copies the whole ownership list.
func CopyList(head Cell) Cell {
	var res Cell
	for c := range All(head) {
		res = Append(res, c.Copy())
	}
	return res
}

// copyOrNil copies optional child.
func copyOrNil(head Cell) Cell {
	if head == nil {
		return nil
	}
	return CopyList(head)
}

// RecalculateList recalculates every cell of the list.
func RecalculateList(head Cell, fontSize float64) {
	for c := range All(head) {
		c.Recalculate(fontSize)
	}
}

// ListFullWidth is the sum of widths of the list.
func ListFullWidth(head Cell) int {
	w := 0
	for c := range All(head) {
		w += c.Width()
	}
	return w
}

// ListCenter is the largest center in the list.
func ListCenter(head Cell) int {
	m := 0
	for c := range All(head) {
		m = max(m, c.Center())
	}
	return m
}

// ListMaxDrop is the largest drop below the center line in the list.
func ListMaxDrop(head Cell) int {
	m := 0
	for c := range All(head) {
		m = max(m, c.Drop())
	}
	return m
}

// ListHeight is the height of the list laid out in one line.
func ListHeight(head Cell) int {
	return ListCenter(head) + ListMaxDrop(head)
}

// DrawList paints the list inline starting at p.
func DrawList(dc Painter, head Cell, p image.Point) {
	for c := range All(head) {
		c.Draw(dc, p)
		p.X += c.Width()
	}
}

// IsCompound reports whether the list needs parentheses when used as an
// operand in linear text.
func IsCompound(head Cell) bool {
	if head == nil {
		return false
	}
	if head.Next() != nil {
		return true
	}
	switch c := head.(type) {
	case *TextCell:
		return c.Style() == TextStyleOperator
	case *FracCell, *SumCell, *IntCell, *LimitCell, *DiffCell, *AtCell:
		return true
	}
	return false
}

func listString(head Cell, conv func(Cell) string, breaks bool) string {
	var sb strings.Builder
	for c := range All(head) {
		if breaks && c.ForceBreakLine() && c != head && sb.Len() > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(conv(c))
	}
	return sb.String()
}

// ListToString converts list to maxima input text.
func ListToString(head Cell) string {
	return listString(head, Cell.ToString, true)
}

// ListToMatlab converts list to MATLAB flavored text.
func ListToMatlab(head Cell) string {
	return listString(head, Cell.ToMatlab, true)
}

// ListToTeX converts list to TeX.
func ListToTeX(head Cell) string {
	return listString(head, Cell.ToTeX, false)
}

// ListToMathML converts list to MathML fragment.
func ListToMathML(head Cell) string {
	return listString(head, Cell.ToMathML, false)
}

// ListToOMML converts list to Office math fragment.
func ListToOMML(head Cell) string {
	return listString(head, Cell.ToOMML, false)
}

// ListToXML converts list to worksheet markup.
func ListToXML(head Cell) string {
	return listString(head, Cell.ToXML, false)
}
