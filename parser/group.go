package parser

import (
	"strconv"
	"strings"

	"github.com/beevik/etree"
	"go.uber.org/zap"

	"mxc/cell"
)

func simpleGroup(t cell.GroupType) groupFunc {
	return func(p *Parser, el *etree.Element) *cell.GroupCell {
		g := cell.NewGroupCell(p.env, t)
		p.groupAttrs(el, g)
		return g
	}
}

func (p *Parser) groupAttrs(el *etree.Element, g *cell.GroupCell) {
	if el.SelectAttrValue("hideToolTip", "") == "true" {
		g.SetSuppressTooltipMarker(true)
	}
}

// groupSubsection handles subsections, deeper levels are stored as
// subsections with sectioning level.
func (p *Parser) groupSubsection(el *etree.Element) *cell.GroupCell {
	t := cell.GroupTypeHeading6
	switch el.SelectAttrValue("sectioning_level", "0") {
	case "0", "3":
		t = cell.GroupTypeSubsection
	case "4":
		t = cell.GroupTypeSubsubsection
	case "5":
		t = cell.GroupTypeHeading5
	}
	g := cell.NewGroupCell(p.env, t)
	p.groupAttrs(el, g)
	return g
}

func (p *Parser) groupCode(el *etree.Element) *cell.GroupCell {
	g := cell.NewGroupCell(p.env, cell.GroupTypeCode)
	if el.SelectAttrValue("auto_answer", "no") == "yes" {
		g.SetAutoAnswer(true)
	}
	for i := 1; ; i++ {
		n := strconv.Itoa(i)
		answer := el.SelectAttr("answer" + n)
		if answer == nil {
			break
		}
		g.SetAnswer(el.SelectAttrValue("question"+n, "Question #"+n), answer.Value)
	}
	p.groupAttrs(el, g)
	return g
}

// parseCell builds worksheet entry with its input, output and folded
// entries.
func (p *Parser) parseCell(el *etree.Element) cell.Cell {
	hide := el.SelectAttrValue("hide", "false") == "true"
	kind := el.SelectAttrValue("type", "text")
	fn, ok := groupTags[kind]
	if !ok {
		p.log.Warn("Unknown cell type, ignoring", zap.String("type", kind))
		return nil
	}
	g := fn(p, el)

	for c := childrenOf(el); c.valid(); c.next() {
		child := c.element()
		if child == nil {
			continue
		}
		switch child.Tag {
		case "editor":
			g.SetEditableContent(p.parseEditor(child).Value())
		case "fold":
			if tree := p.parseFold(child); tree != nil {
				g.HideTree(tree)
			}
		case "input":
			value := "Bug: Missing contents"
			if ed, ok := p.parseTag(childrenOf(child), true).(*cell.EditorCell); ok {
				value = ed.Value()
			}
			g.SetEditableContent(value)
		default:
			g.AppendOutput(p.missing(p.parseTag(c, false)))
		}
	}
	g.Hide(hide)
	return g
}

func (p *Parser) parseFold(el *etree.Element) *cell.GroupCell {
	var tree cell.Cell
	for c := childrenOf(el); c.valid(); c.next() {
		res := p.parseTag(c, false)
		if res == nil {
			continue
		}
		if _, ok := res.(*cell.GroupCell); !ok {
			p.log.Warn("Unexpected content of folded cell, ignoring", zap.String("content", res.ToString()))
			continue
		}
		tree = cell.Append(tree, res)
	}
	if tree == nil {
		return nil
	}
	return tree.(*cell.GroupCell)
}

func editorType(name string) cell.CellType {
	switch name {
	case "input":
		return cell.CellTypeInput
	case "title":
		return cell.CellTypeTitle
	case "section":
		return cell.CellTypeSection
	case "subsection":
		return cell.CellTypeSubsection
	case "subsubsection":
		return cell.CellTypeSubsubsection
	case "heading5":
		return cell.CellTypeHeading5
	case "heading6":
		return cell.CellTypeHeading6
	}
	return cell.CellTypeText
}

func (p *Parser) parseEditor(el *etree.Element) *cell.EditorCell {
	var sb strings.Builder
	for _, line := range el.SelectElements("line") {
		if sb.Len() > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(line.Text())
	}
	return cell.NewEditorCell(p.env, editorType(el.SelectAttrValue("type", "input")), sb.String())
}

func (p *Parser) parseEditorTag(el *etree.Element) cell.Cell {
	return p.parseEditor(el)
}
