package cell

import (
	"image"
	"strings"
	"unicode"
	"unicode/utf8"
)

const minusSign = "−"

// TextCell is a leaf holding one run of text: a variable or function name,
// a number, an operator, a label or a piece of plain text.
type TextCell struct {
	Base

	value            string
	userDefinedLabel string
	hidableMultSign  bool
}

// NewTextCell creates text leaf of the given style.
func NewTextCell(env *Env, text string, style TextStyle) *TextCell {
	c := &TextCell{value: text}
	c.init(env)
	c.style = style
	return c
}

func (c *TextCell) Copy() Cell {
	n := &TextCell{
		value:            c.value,
		userDefinedLabel: c.userDefinedLabel,
		hidableMultSign:  c.hidableMultSign,
	}
	n.copyFrom(&c.Base)
	return n
}

// Value returns text exactly as parsed.
func (c *TextCell) Value() string { return c.value }

func (c *TextCell) SetValue(text string) {
	c.value = text
	c.invalidate()
}

func (c *TextCell) UserDefinedLabel() string { return c.userDefinedLabel }

func (c *TextCell) SetUserDefinedLabel(label string) {
	c.userDefinedLabel = label
	c.invalidate()
}

// IsHidableMultSign reports multiplication sign that may be omitted when
// displayed.
func (c *TextCell) IsHidableMultSign() bool { return c.hidableMultSign }

func (c *TextCell) SetHidableMultSign(hidable bool) {
	c.hidableMultSign = hidable
	c.invalidate()
}

// plain returns value with typographic minus replaced by ascii one.
func (c *TextCell) plain() string {
	return strings.ReplaceAll(c.value, minusSign, "-")
}

var operatorGlyphs = map[string]string{
	"->": "→",
	"<=": "≤",
	">=": "≥",
	"#":  "≠",
	"*":  "·",
}

var specialGlyphs = map[string]string{
	"%pi":    "π",
	"%e":     "e",
	"%i":     "i",
	"%gamma": "γ",
	"%phi":   "φ",
	"inf":    "∞",
	"minf":   "−∞",
}

var greekLetters = map[string]string{
	"alpha": "α", "beta": "β", "gamma": "γ", "delta": "δ", "epsilon": "ε",
	"zeta": "ζ", "eta": "η", "theta": "θ", "iota": "ι", "kappa": "κ",
	"lambda": "λ", "mu": "μ", "nu": "ν", "xi": "ξ", "omicron": "ο",
	"pi": "π", "rho": "ρ", "sigma": "σ", "tau": "τ", "upsilon": "υ",
	"phi": "φ", "chi": "χ", "psi": "ψ", "omega": "ω",
	"Alpha": "Α", "Beta": "Β", "Gamma": "Γ", "Delta": "Δ", "Epsilon": "Ε",
	"Zeta": "Ζ", "Eta": "Η", "Theta": "Θ", "Iota": "Ι", "Kappa": "Κ",
	"Lambda": "Λ", "Mu": "Μ", "Nu": "Ν", "Xi": "Ξ", "Omicron": "Ο",
	"Pi": "Π", "Rho": "Ρ", "Sigma": "Σ", "Tau": "Τ", "Upsilon": "Υ",
	"Phi": "Φ", "Chi": "Χ", "Psi": "Ψ", "Omega": "Ω",
}

func greekName(s string) (string, bool) {
	g, ok := greekLetters[strings.TrimPrefix(s, "%")]
	return g, ok
}

// DisplayText is the text as it is painted.
func (c *TextCell) DisplayText() string {
	switch c.style {
	case TextStyleOperator, TextStyleDefault:
		if c.hidableMultSign {
			return ""
		}
		if g, ok := operatorGlyphs[c.plain()]; ok {
			return g
		}
	case TextStyleGreekConstant, TextStyleSpecialConstant:
		if g, ok := specialGlyphs[c.value]; ok {
			return g
		}
		if g, ok := greekName(c.value); ok {
			return g
		}
	case TextStyleString:
		return c.value
	case TextStyleLabel, TextStyleUserLabel:
		if c.env != nil {
			switch c.env.Labels {
			case LabelNone:
				return ""
			case LabelUser:
				if c.userDefinedLabel != "" {
					return "(" + c.userDefinedLabel + ")"
				}
			}
		}
	}
	return c.value
}

func (c *TextCell) Recalculate(fontSize float64) {
	if !c.needsRecalculation(fontSize) {
		return
	}
	text := c.DisplayText()
	if text == "" {
		c.width = 0
		_, c.height = c.env.textSize("X", c.style, fontSize)
	} else {
		pad := 2 * c.env.Scale(TextPadding)
		c.width, c.height = c.env.textSize(text, c.style, fontSize)
		c.width += pad
		c.height += pad
	}
	c.center = c.height / 2
	c.recalculated(fontSize)
}

func (c *TextCell) Draw(dc Painter, p image.Point) {
	c.drawn(p)
	text := c.DisplayText()
	if text == "" {
		return
	}
	if c.highlight {
		dc.Rect(image.Rect(p.X, p.Y-c.center, p.X+c.width, p.Y+c.Drop()), TextStyleWarning)
	}
	dc.Text(image.Pt(p.X+c.env.Scale(TextPadding), p.Y), text, c.style, c.fontSize*c.env.zoom())
}

func (c *TextCell) BreakUp() bool { return false }

func (c *TextCell) ToString() string {
	if c.altCopy != "" {
		return c.altCopy
	}
	switch c.style {
	case TextStyleString:
		return `"` + strings.ReplaceAll(c.plain(), `"`, `\"`) + `"`
	case TextStyleLabel, TextStyleUserLabel:
		return c.plain() + "\t"
	}
	return c.plain()
}

var matlabConstants = map[string]string{
	"%pi": "pi",
	"%e":  "e",
	"%i":  "i",
	"inf": "Inf",
	"#":   "~=",
}

func (c *TextCell) ToMatlab() string {
	if c.altCopy != "" {
		return c.altCopy
	}
	if m, ok := matlabConstants[c.value]; ok {
		return m
	}
	if c.style == TextStyleString {
		return "'" + strings.ReplaceAll(c.plain(), "'", "''") + "'"
	}
	return c.plain()
}

var texOperators = map[string]string{
	"->": `\mbox{\rightarrow }`,
	"<=": `\leq `,
	">=": `\geq `,
	"#":  `\neq `,
	"*":  `\cdot `,
}

func (c *TextCell) ToTeX() string {
	v := c.plain()
	switch c.style {
	case TextStyleOperator, TextStyleDefault:
		if c.hidableMultSign {
			return `\,`
		}
		if t, ok := texOperators[v]; ok {
			return t
		}
	case TextStyleGreekConstant, TextStyleSpecialConstant:
		switch v {
		case "%e":
			return "e"
		case "%i":
			return "i"
		case "inf":
			return `\infty `
		case "minf":
			return `-\infty `
		}
		if _, ok := greekName(v); ok {
			return `\` + strings.TrimPrefix(v, "%") + " "
		}
	case TextStyleVariable:
		if utf8.RuneCountInString(v) > 1 && isIdent(v) {
			return `\mathit{` + TeXEscape(v) + "}"
		}
	case TextStyleString, TextStyleText, TextStyleError, TextStyleWarning:
		return `\mbox{` + TeXEscape(v) + "}"
	case TextStyleLabel, TextStyleUserLabel:
		return `\mbox{\tt ` + TeXEscape(c.DisplayText()) + "} "
	}
	return TeXEscape(v)
}

func isIdent(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			return false
		}
	}
	return true
}

func (c *TextCell) ToMathML() string {
	text := XMLEscape(c.DisplayText())
	switch c.style {
	case TextStyleNumber:
		return "<mn>" + text + "</mn>"
	case TextStyleOperator:
		if c.hidableMultSign {
			return "<mo>&#x2062;</mo>"
		}
		return "<mo>" + text + "</mo>"
	case TextStyleString, TextStyleText, TextStyleLabel, TextStyleUserLabel, TextStyleError, TextStyleWarning:
		return "<mtext>" + text + "</mtext>"
	case TextStyleDefault:
		if c.hidableMultSign {
			return "<mo>&#x2062;</mo>"
		}
		if utf8.RuneCountInString(c.value) == 1 && !isIdent(c.value) {
			return "<mo>" + text + "</mo>"
		}
	}
	return "<mi>" + text + "</mi>"
}

func (c *TextCell) ToOMML() string {
	if c.hidableMultSign {
		return ""
	}
	return omml(c.DisplayText())
}

// xmlTag returns element name and extra attributes for style.
func (c *TextCell) xmlTag() (string, string) {
	switch c.style {
	case TextStyleVariable:
		return "v", ""
	case TextStyleNumber:
		return "n", ""
	case TextStyleFunction:
		return "fnm", ""
	case TextStyleGreekConstant:
		return "g", ""
	case TextStyleSpecialConstant:
		return "s", ""
	case TextStyleString:
		return "st", ""
	case TextStyleOperator:
		return "mo", ""
	case TextStyleError:
		return "t", ` type="error"`
	case TextStyleWarning:
		return "t", ` type="warning"`
	case TextStyleLabel:
		return "lbl", ""
	case TextStyleUserLabel:
		attrs := ` userdefined="yes"`
		if c.userDefinedLabel != "" {
			attrs += ` userdefinedlabel="` + XMLEscape(c.userDefinedLabel) + `"`
		}
		return "lbl", attrs
	}
	return "t", ""
}

func (c *TextCell) ToXML() string {
	if c.hidableMultSign {
		return "<h>" + XMLEscape(c.plain()) + "</h>"
	}
	tag, attrs := c.xmlTag()
	s := "<" + tag + attrs + c.xmlFlags() + ">" + XMLEscape(c.plain()) + "</" + tag + ">"
	if c.highlight {
		s = "<hl>" + s + "</hl>"
	}
	return s
}

// InvalidCell marks a place where required content was missing.
type InvalidCell struct {
	TextCell
}

// NewInvalidCell returns visibly invalid placeholder.
func NewInvalidCell(env *Env) *InvalidCell {
	c := &InvalidCell{}
	c.init(env)
	c.value = "?"
	c.style = TextStyleError
	c.cellType = CellTypeError
	c.toolTip = "Missing or invalid contents."
	return c
}

func (c *InvalidCell) Copy() Cell {
	n := NewInvalidCell(c.env)
	n.copyFrom(&c.Base)
	return n
}

func (c *InvalidCell) Draw(dc Painter, p image.Point) {
	c.TextCell.Draw(dc, p)
	dc.Rect(image.Rect(p.X, p.Y-c.center, p.X+c.width, p.Y+c.Drop()), TextStyleError)
}
