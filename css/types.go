package css

import (
	"image/color"
	"strconv"
	"strings"
)

// Value represents a parsed CSS property value.
type Value struct {
	Raw     string  // Original CSS value string (e.g., "12pt", "bold", "#ff0000")
	Value   float64 // Numeric value if applicable
	Unit    string  // Unit if applicable: "px", "pt", "%", etc.
	Keyword string  // Keyword, hash or function text
}

// Selector is "element", ".class" or "element.class".
type Selector struct {
	Element string
	Class   string
}

func (s Selector) String() string {
	if s.Class == "" {
		return s.Element
	}
	return s.Element + "." + s.Class
}

type Rule struct {
	Selector   Selector
	Properties map[string]Value
}

// Stylesheet keeps rules in source order.
type Stylesheet struct {
	Rules    []Rule
	Warnings []string
}

// Properties merges every rule matching selector, later rules win as in
// cascade of equal specificity.
func (s *Stylesheet) Properties(sel Selector) map[string]Value {
	props := make(map[string]Value)
	if s == nil {
		return props
	}
	for _, r := range s.Rules {
		if r.Selector == sel {
			for k, v := range r.Properties {
				props[k] = v
			}
		}
	}
	return props
}

// Classes lists class names used by rules without element part.
func (s *Stylesheet) Classes() []string {
	if s == nil {
		return nil
	}
	seen := make(map[string]bool)
	var out []string
	for _, r := range s.Rules {
		if r.Selector.Element == "" && r.Selector.Class != "" && !seen[r.Selector.Class] {
			seen[r.Selector.Class] = true
			out = append(out, r.Selector.Class)
		}
	}
	return out
}

var namedColors = map[string]color.RGBA{
	"black":       {0x00, 0x00, 0x00, 0xff},
	"white":       {0xff, 0xff, 0xff, 0xff},
	"red":         {0xff, 0x00, 0x00, 0xff},
	"green":       {0x00, 0x80, 0x00, 0xff},
	"blue":        {0x00, 0x00, 0xff, 0xff},
	"navy":        {0x00, 0x00, 0x80, 0xff},
	"maroon":      {0x80, 0x00, 0x00, 0xff},
	"darkgreen":   {0x00, 0x64, 0x00, 0xff},
	"gray":        {0x80, 0x80, 0x80, 0xff},
	"grey":        {0x80, 0x80, 0x80, 0xff},
	"dimgray":     {0x69, 0x69, 0x69, 0xff},
	"silver":      {0xc0, 0xc0, 0xc0, 0xff},
	"orange":      {0xff, 0xa5, 0x00, 0xff},
	"darkorange":  {0xff, 0x8c, 0x00, 0xff},
	"purple":      {0x80, 0x00, 0x80, 0xff},
	"teal":        {0x00, 0x80, 0x80, 0xff},
	"olive":       {0x80, 0x80, 0x00, 0xff},
	"lightpink":   {0xff, 0xb6, 0xc1, 0xff},
	"salmon":      {0xfa, 0x80, 0x72, 0xff},
	"ivory":       {0xff, 0xff, 0xf0, 0xff},
	"transparent": {0x00, 0x00, 0x00, 0x00},
}

// Color converts value to a color. Supported are named colors, hex
// notation with 3, 4, 6 or 8 digits and rgb()/rgba() functions.
func (v Value) Color() (color.RGBA, bool) {
	s := strings.ToLower(strings.TrimSpace(v.Keyword))
	if s == "" {
		s = strings.ToLower(strings.TrimSpace(v.Raw))
	}
	if c, ok := namedColors[s]; ok {
		return c, true
	}
	if hex, ok := strings.CutPrefix(s, "#"); ok {
		return parseHex(hex)
	}
	if args, ok := cutFunction(s, "rgba"); ok {
		return parseRGB(args, true)
	}
	if args, ok := cutFunction(s, "rgb"); ok {
		return parseRGB(args, false)
	}
	return color.RGBA{}, false
}

func cutFunction(s, name string) (string, bool) {
	rest, ok := strings.CutPrefix(s, name+"(")
	if !ok {
		return "", false
	}
	return strings.CutSuffix(rest, ")")
}

func parseHex(s string) (color.RGBA, bool) {
	if len(s) == 3 || len(s) == 4 {
		var sb strings.Builder
		for _, r := range s {
			sb.WriteRune(r)
			sb.WriteRune(r)
		}
		s = sb.String()
	}
	if len(s) == 6 {
		s += "ff"
	}
	if len(s) != 8 {
		return color.RGBA{}, false
	}
	n, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{}, false
	}
	return premultiply(color.RGBA{R: uint8(n >> 24), G: uint8(n >> 16), B: uint8(n >> 8), A: uint8(n)}), true
}

func parseRGB(args string, alpha bool) (color.RGBA, bool) {
	parts := strings.FieldsFunc(args, func(r rune) bool { return r == ',' || r == ' ' || r == '/' })
	if len(parts) != 3 && !(alpha && len(parts) == 4) {
		return color.RGBA{}, false
	}
	var ch [4]uint8
	ch[3] = 0xff
	for i, p := range parts {
		var (
			f   float64
			err error
		)
		switch {
		case strings.HasSuffix(p, "%"):
			f, err = strconv.ParseFloat(strings.TrimSuffix(p, "%"), 64)
			f = f * 255 / 100
		case i == 3:
			f, err = strconv.ParseFloat(p, 64)
			f *= 255
		default:
			f, err = strconv.ParseFloat(p, 64)
		}
		if err != nil {
			return color.RGBA{}, false
		}
		ch[i] = uint8(min(max(f, 0), 255) + 0.5)
	}
	return premultiply(color.RGBA{R: ch[0], G: ch[1], B: ch[2], A: ch[3]}), true
}

// premultiply converts straight alpha of CSS to the form image/color keeps.
func premultiply(c color.RGBA) color.RGBA {
	if c.A == 0xff {
		return c
	}
	a := uint16(c.A)
	c.R = uint8(uint16(c.R) * a / 0xff)
	c.G = uint8(uint16(c.G) * a / 0xff)
	c.B = uint8(uint16(c.B) * a / 0xff)
	return c
}
