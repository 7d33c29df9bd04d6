package cell

import (
	"fmt"
	"iter"
	"strconv"
	"strings"

	"mxc/utils/debug"
)

// part is a named child list of a composite cell.
type part struct {
	name string
	head Cell
}

// parts lists owned children of c in their structural order. Optional
// children that are absent are omitted.
func parts(c Cell) []part {
	opt := func(ps []part) []part {
		res := ps[:0]
		for _, p := range ps {
			if p.head != nil {
				res = append(res, p)
			}
		}
		return res
	}
	switch c := c.(type) {
	case *ParenCell:
		return []part{{"inner", c.inner}}
	case *FracCell:
		return []part{{"num", c.num}, {"denom", c.denom}}
	case *ExptCell:
		return []part{{"base", c.baseCell}, {"power", c.power}}
	case *SubCell:
		return []part{{"base", c.baseCell}, {"index", c.index}}
	case *AtCell:
		return []part{{"base", c.baseCell}, {"index", c.index}}
	case *SubSupCell:
		return opt([]part{{"base", c.baseCell}, {"presub", c.preSub}, {"presup", c.preSup}, {"postsub", c.postSub}, {"postsup", c.postSup}})
	case *FunCell:
		return []part{{"name", c.name}, {"arg", c.arg}}
	case *LimitCell:
		return []part{{"name", c.name}, {"under", c.under}, {"base", c.baseCell}}
	case *SqrtCell:
		return []part{{"inner", c.inner}}
	case *AbsCell:
		return []part{{"inner", c.inner}}
	case *ConjugateCell:
		return []part{{"inner", c.inner}}
	case *DiffCell:
		return []part{{"diff", c.diff}, {"base", c.baseCell}}
	case *SumCell:
		return opt([]part{{"under", c.under}, {"over", c.over}, {"base", c.baseCell}})
	case *IntCell:
		return opt([]part{{"under", c.under}, {"over", c.over}, {"base", c.baseCell}, {"var", c.variable}})
	case *MatrCell:
		var ps []part
		for i, row := range c.rows {
			for j, e := range row {
				ps = append(ps, part{fmt.Sprintf("[%d,%d]", i, j), e})
			}
		}
		return ps
	case *GroupCell:
		ps := []part{{"output", c.output}}
		if c.hiddenTree != nil {
			ps = append(ps, part{"fold", c.hiddenTree})
		}
		return opt(ps)
	}
	return nil
}

// Tree iterates depth first over the list and every cell it owns,
// including folded groups.
func Tree(head Cell) iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		walkTree(head, yield)
	}
}

func walkTree(head Cell, yield func(Cell) bool) bool {
	for c := range All(head) {
		if !yield(c) {
			return false
		}
		for _, p := range parts(c) {
			if !walkTree(p.head, yield) {
				return false
			}
		}
	}
	return true
}

func typeName(c Cell) string {
	name := fmt.Sprintf("%T", c)
	return name[strings.LastIndexByte(name, '.')+1:]
}

func dumpList(tw *debug.TreeWriter, depth int, head Cell) {
	for c := range All(head) {
		attrs := []debug.Attr{
			{Key: "style", Value: c.Style().String()},
			{Key: "tooltip", Value: c.ToolTip()},
			{Key: "altCopy", Value: c.AltCopy()},
		}
		if c.ForceBreakLine() {
			attrs = append(attrs, debug.Attr{Key: "breakline", Value: "true"})
		}
		if c.IsBrokenIntoLines() {
			attrs = append(attrs, debug.Attr{Key: "broken", Value: "true"})
		}
		switch c := c.(type) {
		case *InvalidCell:
			attrs = append([]debug.Attr{{Key: "value", Value: c.value}}, attrs...)
		case *TextCell:
			attrs = append([]debug.Attr{{Key: "value", Value: c.value}}, attrs...)
		case *EditorCell:
			attrs = append([]debug.Attr{{Key: "type", Value: c.cellType.XMLName()}, {Key: "value", Value: c.value}}, attrs...)
		case *GroupCell:
			attrs = append([]debug.Attr{{Key: "type", Value: c.groupType.String()}, {Key: "input", Value: c.EditableContent()}}, attrs...)
		case *ImgCell:
			attrs = append([]debug.Attr{{Key: "name", Value: c.pic.Name}, {Key: "format", Value: c.pic.Format}}, attrs...)
		case *SlideShowCell:
			attrs = append([]debug.Attr{{Key: "frames", Value: strconv.Itoa(len(c.frames))}}, attrs...)
		}
		tw.Node(depth, typeName(c), attrs...)
		for _, p := range parts(c) {
			tw.Line(depth+1, "%s:", p.name)
			dumpList(tw, depth+2, p.head)
		}
	}
}

// Dump returns indented description of the list and everything it owns.
func Dump(head Cell) string {
	tw := debug.NewTreeWriter()
	dumpList(tw, 0, head)
	return tw.String()
}
