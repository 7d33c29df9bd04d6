package css

import (
	"image/color"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
)

func newTestParser(t *testing.T) *Parser {
	return NewParser(zaptest.NewLogger(t, zaptest.WrapOptions(zap.AddCaller(), zap.AddCallerSkip(1))))
}

func TestParse_Rules(t *testing.T) {
	p := newTestParser(t)
	sheet := p.Parse([]byte(`
/* page */
body { background-color: #fffff0; color: black; }
.variable, .number { color: navy; font-size: 12pt }
@media print { .variable { color: red } }
@import "other.css";
p.note { color: #123 }
`), "test.css")

	if len(sheet.Rules) != 4 {
		t.Fatalf("got %d rules, want 4: %+v", len(sheet.Rules), sheet.Rules)
	}

	body := sheet.Properties(Selector{Element: "body"})
	if body["background-color"].Keyword != "#fffff0" {
		t.Errorf("background-color = %+v", body["background-color"])
	}
	if body["color"].Keyword != "black" {
		t.Errorf("color = %+v", body["color"])
	}

	num := sheet.Properties(Selector{Class: "number"})
	if v := num["font-size"]; v.Value != 12 || v.Unit != "pt" {
		t.Errorf("font-size = %+v", v)
	}

	// rules inside @media are skipped
	if v := sheet.Properties(Selector{Class: "variable"})["color"]; v.Keyword != "navy" {
		t.Errorf("variable color = %+v", v)
	}

	if note := sheet.Properties(Selector{Element: "p", Class: "note"}); note["color"].Keyword != "#123" {
		t.Errorf("p.note = %+v", note)
	}
}

func TestParse_UnsupportedSelectors(t *testing.T) {
	p := newTestParser(t)
	sheet := p.Parse([]byte(`
div p { color: red }
a:hover { color: red }
#id { color: red }
.label { color: blue }
`))
	if len(sheet.Rules) != 1 || sheet.Rules[0].Selector.Class != "label" {
		t.Fatalf("unexpected rules: %+v", sheet.Rules)
	}
	if len(sheet.Warnings) != 3 {
		t.Errorf("got %d warnings, want 3: %v", len(sheet.Warnings), sheet.Warnings)
	}
}

func TestStylesheet_Cascade(t *testing.T) {
	p := newTestParser(t)
	sheet := p.Parse([]byte(`.error { color: red } .warning { color: orange } .error { color: maroon }`))

	if v := sheet.Properties(Selector{Class: "error"})["color"]; v.Keyword != "maroon" {
		t.Errorf("later rule must win, got %+v", v)
	}
	classes := sheet.Classes()
	if len(classes) != 2 || classes[0] != "error" || classes[1] != "warning" {
		t.Errorf("Classes() = %v", classes)
	}

	var nilSheet *Stylesheet
	if len(nilSheet.Properties(Selector{Element: "body"})) != 0 || nilSheet.Classes() != nil {
		t.Error("nil stylesheet must be empty")
	}
}

func TestValue_Color(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want color.RGBA
		ok   bool
	}{
		{"named", Value{Keyword: "navy"}, color.RGBA{0, 0, 0x80, 0xff}, true},
		{"named upper case", Value{Keyword: "White"}, color.RGBA{0xff, 0xff, 0xff, 0xff}, true},
		{"short hex", Value{Keyword: "#f80"}, color.RGBA{0xff, 0x88, 0x00, 0xff}, true},
		{"long hex", Value{Keyword: "#102030"}, color.RGBA{0x10, 0x20, 0x30, 0xff}, true},
		{"hex with alpha", Value{Keyword: "#ff000000"}, color.RGBA{0, 0, 0, 0}, true},
		{"rgb", Value{Raw: "rgb(1, 2, 3)", Keyword: "rgb(1, 2, 3)"}, color.RGBA{1, 2, 3, 0xff}, true},
		{"rgb percent", Value{Keyword: "rgb(100%, 0%, 0%)"}, color.RGBA{0xff, 0, 0, 0xff}, true},
		{"rgba", Value{Keyword: "rgba(255, 255, 255, 0)"}, color.RGBA{0, 0, 0, 0}, true},
		{"bad hex", Value{Keyword: "#12"}, color.RGBA{}, false},
		{"bad rgb", Value{Keyword: "rgb(1, 2)"}, color.RGBA{}, false},
		{"unknown", Value{Keyword: "chartreuse-ish"}, color.RGBA{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.v.Color()
			if ok != tt.ok || got != tt.want {
				t.Errorf("Color() = %v, %v; want %v, %v", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestParseDimension(t *testing.T) {
	tests := []struct {
		in   string
		num  float64
		unit string
	}{
		{"12pt", 12, "pt"},
		{"1.5EM", 1.5, "em"},
		{"-3px", -3, "px"},
		{"px", 0, ""},
	}
	for _, tt := range tests {
		if num, unit := parseDimension(tt.in); num != tt.num || unit != tt.unit {
			t.Errorf("parseDimension(%q) = %v, %q", tt.in, num, unit)
		}
	}
}

func TestUnquote(t *testing.T) {
	for in, want := range map[string]string{`"a"`: "a", `'b'`: "b", `c`: "c", `"`: `"`} {
		if got := unquote(in); got != want {
			t.Errorf("unquote(%q) = %q, want %q", in, got, want)
		}
	}
}
