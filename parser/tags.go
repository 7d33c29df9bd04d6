package parser

import (
	"strconv"
	"strings"
	"sync"

	"github.com/beevik/etree"

	"mxc/cell"
)

type tagFunc func(p *Parser, el *etree.Element) cell.Cell

type groupFunc func(p *Parser, el *etree.Element) *cell.GroupCell

var (
	tablesOnce sync.Once
	innerTags  map[string]tagFunc
	groupTags  map[string]groupFunc
)

func initTables() {
	tablesOnce.Do(func() {
		innerTags = map[string]tagFunc{
			"v":             textTag(cell.TextStyleVariable),
			"mi":            textTag(cell.TextStyleVariable),
			"mo":            textTag(cell.TextStyleOperator),
			"t":             (*Parser).parseMiscText,
			"n":             textTag(cell.TextStyleNumber),
			"mn":            textTag(cell.TextStyleNumber),
			"p":             (*Parser).parseParen,
			"f":             (*Parser).parseFrac,
			"mfrac":         (*Parser).parseFrac,
			"e":             (*Parser).parseSup,
			"msup":          (*Parser).parseSup,
			"i":             (*Parser).parseSub,
			"munder":        (*Parser).parseSub,
			"fn":            (*Parser).parseFun,
			"g":             textTag(cell.TextStyleGreekConstant),
			"s":             textTag(cell.TextStyleSpecialConstant),
			"fnm":           textTag(cell.TextStyleFunction),
			"q":             (*Parser).parseSqrt,
			"d":             (*Parser).parseDiff,
			"sm":            (*Parser).parseSum,
			"in":            (*Parser).parseInt,
			"mspace":        (*Parser).parseSpace,
			"at":            (*Parser).parseAt,
			"a":             (*Parser).parseAbs,
			"cj":            (*Parser).parseConjugate,
			"ie":            (*Parser).parseSubSup,
			"mmultiscripts": (*Parser).parseMultiscripts,
			"lm":            (*Parser).parseLimit,
			"r":             (*Parser).parseContents,
			"mrow":          (*Parser).parseContents,
			"output":        (*Parser).parseContents,
			"tb":            (*Parser).parseTable,
			"mtr":           (*Parser).parseContents,
			"mtd":           (*Parser).parseContents,
			"mth":           (*Parser).parseMth,
			"line":          (*Parser).parseMth,
			"lbl":           (*Parser).parseLabel,
			"st":            textTag(cell.TextStyleString),
			"hl":            (*Parser).parseHighlight,
			"h":             (*Parser).parseHiddenOperator,
			"img":           (*Parser).parseImage,
			"slide":         (*Parser).parseSlideshow,
			"editor":        (*Parser).parseEditorTag,
			"cell":          (*Parser).parseCell,
			"ascii":         (*Parser).parseCharCode,
		}
		groupTags = map[string]groupFunc{
			"code":          (*Parser).groupCode,
			"image":         simpleGroup(cell.GroupTypeImage),
			"pagebreak":     simpleGroup(cell.GroupTypePagebreak),
			"text":          simpleGroup(cell.GroupTypeText),
			"title":         simpleGroup(cell.GroupTypeTitle),
			"section":       simpleGroup(cell.GroupTypeSection),
			"subsection":    (*Parser).groupSubsection,
			"subsubsection": simpleGroup(cell.GroupTypeSubsubsection),
			"heading5":      simpleGroup(cell.GroupTypeHeading5),
			"heading6":      simpleGroup(cell.GroupTypeHeading6),
		}
	})
}

// KnownTags returns names of all elements parser understands.
func KnownTags() []string {
	initTables()
	names := make([]string, 0, len(innerTags))
	for name := range innerTags {
		names = append(names, name)
	}
	return names
}

func textTag(style cell.TextStyle) tagFunc {
	return func(p *Parser, el *etree.Element) cell.Cell {
		res := p.textCells(el.Text(), style)
		p.commonAttrs(el, res)
		return res
	}
}

func (p *Parser) parseMiscText(el *etree.Element) cell.Cell {
	style := cell.TextStyleDefault
	switch el.SelectAttrValue("type", "") {
	case "error":
		style = cell.TextStyleError
	case "warning":
		style = cell.TextStyleWarning
	}
	res := p.textCells(el.Text(), style)
	p.commonAttrs(el, res)
	return res
}

func (p *Parser) parseSpace(el *etree.Element) cell.Cell {
	res := cell.NewTextCell(p.env, " ", cell.TextStyleDefault)
	res.SetType(p.style)
	p.commonAttrs(el, res)
	return res
}

func (p *Parser) parseHiddenOperator(el *etree.Element) cell.Cell {
	res := p.textCells(el.Text(), cell.TextStyleDefault)
	if t, ok := res.(*cell.TextCell); ok {
		t.SetHidableMultSign(true)
	}
	return res
}

func (p *Parser) parseCharCode(el *etree.Element) cell.Cell {
	res := cell.NewTextCell(p.env, "", cell.TextStyleDefault)
	if s := el.Text(); s != "" {
		if code, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
			s = string(rune(code))
		}
		res.SetValue(s)
		res.SetType(p.style)
		res.SetHighlight(p.highlight)
	}
	p.commonAttrs(el, res)
	return res
}

func (p *Parser) parseLabel(el *etree.Element) cell.Cell {
	userLabel := el.SelectAttrValue("userdefinedlabel", "")
	style := cell.TextStyleLabel
	userDefined := el.SelectAttrValue("userdefined", "no") == "yes"
	if userDefined {
		style = cell.TextStyleUserLabel
	}
	res := p.textCells(el.Text(), style)
	t, ok := res.(*cell.TextCell)
	if ok {
		// labels of old documents kept the user defined name only in the
		// value, surrounded by parentheses
		if userDefined && userLabel == "" {
			if v := []rune(t.Value()); len(v) > 2 {
				userLabel = string(v[1 : len(v)-1])
			}
		}
		t.SetUserDefinedLabel(userLabel)
	}
	p.commonAttrs(el, res)
	res.SetForceBreakLine(true)
	return res
}

func (p *Parser) parseContents(el *etree.Element) cell.Cell {
	if len(el.Child) == 0 {
		return nil
	}
	return p.parseTag(childrenOf(el), true)
}

func (p *Parser) parseMth(el *etree.Element) cell.Cell {
	if res := p.parseTag(childrenOf(el), true); res != nil {
		res.SetForceBreakLine(true)
		return res
	}
	return cell.NewTextCell(p.env, " ", cell.TextStyleDefault)
}

func (p *Parser) parseHighlight(el *etree.Element) cell.Cell {
	saved := p.highlight
	p.highlight = true
	defer func() { p.highlight = saved }()
	return p.parseTag(childrenOf(el), true)
}

// arg parses one positional child and moves cursor past it.
func (p *Parser) arg(c *cursor) cell.Cell {
	if !c.valid() {
		return nil
	}
	res := p.parseTag(c, false)
	c.next()
	return res
}

// rest parses everything from cursor on.
func (p *Parser) rest(c *cursor) cell.Cell {
	return p.parseTag(c, true)
}

func (p *Parser) parseParen(el *etree.Element) cell.Cell {
	res := cell.NewParenCell(p.env, p.rest(childrenOf(el)))
	if el.SelectAttrValue("print", "yes") == "no" {
		res.SetPrint(false)
	}
	res.SetStyle(cell.TextStyleVariable)
	return p.finish(el, res)
}

func (p *Parser) parseFrac(el *etree.Element) cell.Cell {
	c := childrenOf(el)
	num := p.arg(c)
	denom := p.arg(c)
	res := cell.NewFracCell(p.env, num, denom)
	res.SetFracStyle(p.fracStyle)
	if el.SelectAttrValue("line", "") == "no" {
		res.SetFracStyle(cell.FracChoose)
	}
	if el.SelectAttrValue("diffstyle", "") == "yes" {
		res.SetFracStyle(cell.FracDiff)
	}
	res.SetStyle(cell.TextStyleVariable)
	return p.finish(el, res)
}

func (p *Parser) parseDiff(el *etree.Element) cell.Cell {
	c := childrenOf(el)
	saved := p.fracStyle
	p.fracStyle = cell.FracDiff
	diff := p.arg(c)
	p.fracStyle = saved
	res := cell.NewDiffCell(p.env, diff, p.rest(c))
	res.SetStyle(cell.TextStyleVariable)
	return p.finish(el, res)
}

func (p *Parser) parseSup(el *etree.Element) cell.Cell {
	c := childrenOf(el)
	base := cell.InvalidOr(p.env, p.arg(c))
	power := cell.InvalidOr(p.env, p.arg(c))
	res := cell.NewExptCell(p.env, base, power)
	res.SetStyle(cell.TextStyleVariable)
	p.finish(el, res)
	if el.SelectAttrValue("mat", "false") == "true" {
		res.SetMatrix(true)
		if res.AltCopy() == "" {
			res.SetAltCopy(cell.ListToString(base) + "^^" + cell.ListToString(power))
		}
	}
	return res
}

func (p *Parser) parseSub(el *etree.Element) cell.Cell {
	c := childrenOf(el)
	base := p.arg(c)
	res := cell.NewSubCell(p.env, base, p.arg(c))
	res.SetStyle(cell.TextStyleVariable)
	return p.finish(el, res)
}

func (p *Parser) parseAt(el *etree.Element) cell.Cell {
	c := childrenOf(el)
	base := p.arg(c)
	res := cell.NewAtCell(p.env, base, p.arg(c))
	res.SetStyle(cell.TextStyleVariable)
	return p.finish(el, res)
}

func (p *Parser) parseSubSup(el *etree.Element) cell.Cell {
	c := childrenOf(el)
	res := cell.NewSubSupCell(p.env, p.arg(c))
	if first := c.element(); first != nil && first.SelectAttrValue("pos", "") != "" {
		for c.valid() {
			pos := ""
			if e := c.element(); e != nil {
				pos = e.SelectAttrValue("pos", "")
			}
			script := cell.InvalidOr(p.env, p.arg(c))
			switch pos {
			case "presub":
				res.SetPreSub(script)
			case "presup":
				res.SetPreSup(script)
			case "postsub":
				res.SetPostSub(script)
			case "postsup":
				res.SetPostSup(script)
			}
		}
	} else {
		res.SetIndex(p.arg(c))
		res.SetExponent(p.arg(c))
	}
	res.SetStyle(cell.TextStyleVariable)
	return p.finish(el, res)
}

// parseMultiscripts reads MathML mmultiscripts: base, post script pairs,
// mprescripts marker, pre script pairs. Absent scripts are given as none.
func (p *Parser) parseMultiscripts(el *etree.Element) cell.Cell {
	c := childrenOf(el)
	res := cell.NewSubSupCell(p.env, p.arg(c))
	pre, sub := false, true
	for c.valid() {
		e := c.element()
		switch {
		case e != nil && e.Tag == "mprescripts":
			pre, sub = true, true
			c.next()
			continue
		case e != nil && e.Tag == "none":
			c.next()
		default:
			script := p.arg(c)
			switch {
			case pre && sub:
				res.SetPreSub(script)
			case pre:
				res.SetPreSup(script)
			case sub:
				res.SetPostSub(script)
			default:
				res.SetPostSup(script)
			}
		}
		sub = !sub
	}
	res.SetStyle(cell.TextStyleVariable)
	return p.finish(el, res)
}

const lambdaTip = "If this isn't a function returning a lambda() expression, a multiplication sign (*) between closing and opening parenthesis is missing here."

func (p *Parser) parseFun(el *etree.Element) cell.Cell {
	c := childrenOf(el)
	name := p.arg(c)
	res := cell.NewFunCell(p.env, name, p.arg(c))
	res.SetStyle(cell.TextStyleFunction)
	p.finish(el, res)
	if strings.Contains(res.ToString(), ")(") {
		res.SetToolTip(lambdaTip)
	}
	return res
}

func (p *Parser) parseLimit(el *etree.Element) cell.Cell {
	c := childrenOf(el)
	name := p.arg(c)
	under := p.arg(c)
	res := cell.NewLimitCell(p.env, name, under, p.arg(c))
	res.SetStyle(cell.TextStyleVariable)
	return p.finish(el, res)
}

func (p *Parser) parseSqrt(el *etree.Element) cell.Cell {
	res := cell.NewSqrtCell(p.env, p.rest(childrenOf(el)))
	res.SetStyle(cell.TextStyleVariable)
	return p.finish(el, res)
}

func (p *Parser) parseAbs(el *etree.Element) cell.Cell {
	res := cell.NewAbsCell(p.env, p.rest(childrenOf(el)))
	res.SetStyle(cell.TextStyleVariable)
	return p.finish(el, res)
}

func (p *Parser) parseConjugate(el *etree.Element) cell.Cell {
	res := cell.NewConjugateCell(p.env, p.rest(childrenOf(el)))
	res.SetStyle(cell.TextStyleVariable)
	return p.finish(el, res)
}

func (p *Parser) parseSum(el *etree.Element) cell.Cell {
	c := childrenOf(el)
	style := cell.SumSum
	switch el.SelectAttrValue("type", "sum") {
	case "prod":
		style = cell.SumProd
	case "lsum":
		style = cell.SumList
	}
	under := p.arg(c)
	var over cell.Cell
	if style == cell.SumList {
		// position is kept, its content ignored
		c.next()
	} else {
		over = cell.InvalidOr(p.env, p.arg(c))
	}
	res := cell.NewSumCell(p.env, style, under, over, p.arg(c))
	res.SetStyle(cell.TextStyleVariable)
	return p.finish(el, res)
}

func (p *Parser) parseInt(el *etree.Element) cell.Cell {
	c := childrenOf(el)
	var res *cell.IntCell
	if el.SelectAttrValue("def", "true") != "true" {
		base := p.arg(c)
		res = cell.NewIntCell(p.env, base, p.rest(c))
	} else {
		under := p.arg(c)
		over := p.arg(c)
		base := p.arg(c)
		res = cell.NewDefiniteIntCell(p.env, under, over, base, p.rest(c))
	}
	res.SetStyle(cell.TextStyleVariable)
	return p.finish(el, res)
}

func (p *Parser) parseTable(el *etree.Element) cell.Cell {
	res := cell.NewMatrCell(p.env)
	flag := func(name string) bool { return el.SelectAttrValue(name, "false") == "true" }
	res.SetSpecial(flag("special"))
	if flag("inference") {
		res.SetInference(true)
	}
	res.SetColNames(flag("colnames"))
	res.SetRowNames(flag("rownames"))
	res.SetRoundedParens(flag("roundedParens"))

	for rows := childrenOf(el); rows.valid(); rows.next() {
		row := rows.element()
		if row == nil {
			continue
		}
		res.NewRow()
		for entries := childrenOf(row); entries.valid(); {
			res.AddCell(p.arg(entries))
		}
	}
	res.SetStyle(cell.TextStyleVariable)
	return p.finish(el, res)
}
