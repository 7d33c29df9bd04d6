package cell

import (
	"image"
)

// Cell is a node of the typeset expression tree. Cells own their children
// and are linked twice: into the ownership list of siblings (Next/Previous)
// and into the flat draw chain (NextToDraw), which line breaking may
// redirect without touching ownership.
type Cell interface {
	base() *Base

	// Copy returns deep copy of the cell and its children, siblings are not
	// copied. The copy is never broken into lines.
	Copy() Cell
	// Recalculate computes metrics for the font size unless they are
	// already valid for it.
	Recalculate(fontSize float64)
	// Draw paints the cell with p at its left edge on the center line.
	Draw(dc Painter, p image.Point)
	// BreakUp splices children into the draw chain. It returns false when
	// cell cannot be broken or was broken already.
	BreakUp() bool

	ToString() string
	ToMatlab() string
	ToTeX() string
	ToMathML() string
	ToOMML() string
	ToXML() string

	Env() *Env
	Next() Cell
	Previous() Cell
	NextToDraw() Cell
	SetNextToDraw(next Cell)
	Width() int
	Height() int
	Center() int
	Drop() int
	Point() image.Point
	IsBrokenIntoLines() bool
	ForceBreakLine() bool
	SetForceBreakLine(force bool)
	BreakLine() bool
	ToolTip() string
	SetToolTip(tip string)
	AltCopy() string
	SetAltCopy(text string)
	Style() TextStyle
	SetStyle(style TextStyle)
	Type() CellType
	SetType(t CellType)
	Highlight() bool
	SetHighlight(hl bool)
	ExponentFlag() bool
	SetExponentFlag(exp bool)
}

// Base is the common record embedded in every cell type.
type Base struct {
	env *Env

	next, previous Cell
	nextToDraw     Cell
	// draw chain of the flattened children, set by BreakUp
	drawHead, drawTail Cell

	width, height, center int
	fontSize, zoom        float64
	valid                 bool
	point                 image.Point

	brokenIntoLines bool
	forceBreakLine  bool
	breakLine       bool
	highlight       bool
	isExponent      bool

	toolTip  string
	altCopy  string
	style    TextStyle
	cellType CellType
}

func (b *Base) base() *Base { return b }

func (b *Base) init(env *Env) {
	b.env = env
	b.valid = false
}

// copyFrom transfers attributes, not links or metrics.
func (b *Base) copyFrom(src *Base) {
	b.env = src.env
	b.forceBreakLine = src.forceBreakLine
	b.highlight = src.highlight
	b.isExponent = src.isExponent
	b.toolTip = src.toolTip
	b.altCopy = src.altCopy
	b.style = src.style
	b.cellType = src.cellType
}

func (b *Base) Env() *Env { return b.env }

func (b *Base) Next() Cell     { return b.next }
func (b *Base) Previous() Cell { return b.previous }

// NextToDraw returns the following cell of the draw chain. For a broken
// cell this is the first of its flattened children.
func (b *Base) NextToDraw() Cell {
	if b.brokenIntoLines && b.drawHead != nil {
		return b.drawHead
	}
	return b.nextToDraw
}

// SetNextToDraw links cell to the draw chain. A broken cell passes the link
// on to the end of its flattened children.
func (b *Base) SetNextToDraw(next Cell) {
	if b.brokenIntoLines && b.drawTail != nil {
		Last(b.drawTail).SetNextToDraw(next)
		return
	}
	b.nextToDraw = next
}

func (b *Base) Width() int         { return b.width }
func (b *Base) Height() int        { return b.height }
func (b *Base) Center() int        { return b.center }
func (b *Base) Drop() int          { return b.height - b.center }
func (b *Base) Point() image.Point { return b.point }

func (b *Base) IsBrokenIntoLines() bool { return b.brokenIntoLines }

func (b *Base) ForceBreakLine() bool { return b.forceBreakLine }
func (b *Base) SetForceBreakLine(force bool) {
	b.forceBreakLine = force
}

// BreakLine reports whether line breaking started a new line at this cell.
func (b *Base) BreakLine() bool { return b.breakLine }

func (b *Base) ToolTip() string       { return b.toolTip }
func (b *Base) SetToolTip(tip string) { b.toolTip = tip }

func (b *Base) AltCopy() string        { return b.altCopy }
func (b *Base) SetAltCopy(text string) { b.altCopy = text }

func (b *Base) Style() TextStyle { return b.style }
func (b *Base) SetStyle(style TextStyle) {
	if b.style != style {
		b.valid = false
	}
	b.style = style
}

func (b *Base) Type() CellType     { return b.cellType }
func (b *Base) SetType(t CellType) { b.cellType = t }

func (b *Base) Highlight() bool      { return b.highlight }
func (b *Base) SetHighlight(hl bool) { b.highlight = hl }

// ExponentFlag is set on cells rendered as a script of another cell.
func (b *Base) ExponentFlag() bool       { return b.isExponent }
func (b *Base) SetExponentFlag(exp bool) { b.isExponent = exp }

// needsRecalculation guards every Recalculate implementation.
func (b *Base) needsRecalculation(fontSize float64) bool {
	return !b.valid || b.fontSize != fontSize || b.zoom != b.env.zoom()
}

// recalculated marks metrics valid for fontSize. Broken cells do not take
// space in the line they were broken in.
func (b *Base) recalculated(fontSize float64) {
	b.fontSize = fontSize
	b.zoom = b.env.zoom()
	b.valid = true
	if b.brokenIntoLines {
		b.width, b.height, b.center = 0, 0, 0
	}
}

// invalidate forces recalculation on next request.
func (b *Base) invalidate() { b.valid = false }

// breakUp chains lists one after another into the draw chain in place of
// the cell itself.
func (b *Base) breakUp(lists ...Cell) bool {
	if b.brokenIntoLines || len(lists) == 0 {
		return false
	}
	saved := b.nextToDraw
	for i := 0; i < len(lists)-1; i++ {
		Last(lists[i]).SetNextToDraw(lists[i+1])
	}
	tail := lists[len(lists)-1]
	Last(tail).SetNextToDraw(saved)
	b.drawHead = lists[0]
	b.drawTail = tail
	b.brokenIntoLines = true
	b.width, b.height, b.center = 0, 0, 0
	return true
}

// drawn records point the cell was painted at.
func (b *Base) drawn(p image.Point) { b.point = p }

// XML attributes common to all cells.
func (b *Base) xmlFlags() string {
	var s string
	if b.forceBreakLine {
		s += ` breakline="true"`
	}
	if b.toolTip != "" {
		s += ` tooltip="` + XMLEscape(b.toolTip) + `"`
	}
	if b.altCopy != "" {
		s += ` altCopy="` + XMLEscape(b.altCopy) + `"`
	}
	return s
}

// InvalidOr substitutes visibly invalid placeholder for missing cell.
func InvalidOr(env *Env, c Cell) Cell {
	if c == nil {
		return NewInvalidCell(env)
	}
	return c
}
