package render

import (
	"image/color"
	"maps"
	"strings"

	"go.uber.org/zap"

	"mxc/cell"
	"mxc/css"
)

var styleClasses = func() map[string]cell.TextStyle {
	m := make(map[string]cell.TextStyle)
	for _, name := range cell.TextStyleNames() {
		style, err := cell.ParseTextStyle(name)
		if err != nil {
			continue
		}
		m[strings.ToLower(name)] = style
		m[kebab(name)] = style
	}
	return m
}()

// kebab turns "specialConstant" into "special-constant".
func kebab(s string) string {
	var sb strings.Builder
	for _, r := range s {
		if r >= 'A' && r <= 'Z' {
			sb.WriteByte('-')
			r += 'a' - 'A'
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// ThemeFromCSS overrides colors of base with the stylesheet. Page colors
// come from "body" rule, text style colors from classes named after styles
// (".variable", ".special-constant").
func ThemeFromCSS(sheet *css.Stylesheet, base Theme, log *zap.Logger) Theme {
	theme := Theme{
		Background: base.Background,
		Foreground: base.Foreground,
		Styles:     maps.Clone(base.Styles),
	}
	if theme.Styles == nil {
		theme.Styles = make(map[cell.TextStyle]color.Color)
	}

	body := sheet.Properties(css.Selector{Element: "body"})
	for _, name := range []string{"background", "background-color"} {
		if c, ok := propColor(body, name); ok {
			theme.Background = c
		}
	}
	if c, ok := propColor(body, "color"); ok {
		theme.Foreground = c
	}

	for _, class := range sheet.Classes() {
		style, ok := styleClasses[strings.ToLower(class)]
		if !ok {
			log.Debug("Stylesheet class does not name a text style", zap.String("class", class))
			continue
		}
		if c, ok := propColor(sheet.Properties(css.Selector{Class: class}), "color"); ok {
			theme.Styles[style] = c
		}
	}
	return theme
}

func propColor(props map[string]css.Value, name string) (color.Color, bool) {
	v, ok := props[name]
	if !ok {
		return nil, false
	}
	c, ok := v.Color()
	if !ok {
		return nil, false
	}
	return c, true
}
