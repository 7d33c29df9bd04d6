package parser

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"mxc/cell"
)

const minusSign = "−"

// textCells splits text into one cell per line, lines after the first start
// on a new line. Empty text still gives a single empty cell.
func (p *Parser) textCells(text string, style cell.TextStyle) cell.Cell {
	text = strings.ReplaceAll(norm.NFC.String(text), "-", minusSign)

	var head, last cell.Cell
	for line := range strings.SplitSeq(text, "\n") {
		if line == "" {
			continue
		}
		c := p.textCell(line, style)
		if head == nil {
			head = c
		} else {
			c.SetForceBreakLine(true)
			cell.Append(last, c)
		}
		last = c
	}
	if head == nil {
		head = p.textCell("", style)
	}
	return head
}

func (p *Parser) textCell(value string, style cell.TextStyle) *cell.TextCell {
	c := cell.NewTextCell(p.env, value, style)
	switch style {
	case cell.TextStyleError:
		c.SetType(cell.CellTypeError)
	case cell.TextStyleWarning:
		c.SetType(cell.CellTypeWarning)
	case cell.TextStyleLabel, cell.TextStyleUserLabel:
		c.SetType(cell.CellTypeLabel)
	default:
		c.SetType(p.style)
	}
	c.SetHighlight(p.highlight)
	return c
}
