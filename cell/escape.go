package cell

import (
	"strings"
)

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

// XMLEscape escapes text for use in element content and attribute values.
func XMLEscape(s string) string {
	return xmlEscaper.Replace(s)
}

var texEscaper = strings.NewReplacer(
	`\`, `\ensuremath{\backslash}`,
	"{", `\{`,
	"}", `\}`,
	"_", `\_`,
	"#", `\#`,
	"%", `\%`,
	"&", `\&`,
	"$", `\$`,
	"^", `\^{}`,
	"~", `\~{}`,
	"−", "-",
)

// TeXEscape escapes characters that have special meaning in TeX.
func TeXEscape(s string) string {
	return texEscaper.Replace(s)
}

// mrow wraps list in mrow unless it is a single element.
func mrow(head Cell) string {
	if head == nil {
		return "<mrow/>"
	}
	if head.Next() == nil {
		return ListToMathML(head)
	}
	return "<mrow>" + ListToMathML(head) + "</mrow>"
}

// omml wraps text in an Office math run.
func omml(text string) string {
	return "<m:r><m:t>" + XMLEscape(text) + "</m:t></m:r>"
}
