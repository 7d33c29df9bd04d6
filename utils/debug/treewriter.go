package debug

import (
	"fmt"
	"strconv"
	"strings"
)

// Attr is a named value printed on a node line.
type Attr struct {
	Key   string
	Value string
}

// TreeWriter accumulates indented text dump of a tree.
type TreeWriter struct {
	w *strings.Builder
}

func NewTreeWriter() *TreeWriter {
	return &TreeWriter{
		w: &strings.Builder{},
	}
}

func (tw TreeWriter) String() string {
	return tw.w.String()
}

func (tw TreeWriter) indent(depth int) {
	for range depth {
		tw.w.WriteString("  ")
	}
}

func (tw TreeWriter) Line(depth int, format string, args ...any) {
	tw.indent(depth)
	fmt.Fprintf(tw.w, format, args...)
	tw.w.WriteByte('\n')
}

// Node writes kind followed by non-empty attributes, text values quoted.
func (tw TreeWriter) Node(depth int, kind string, attrs ...Attr) {
	tw.indent(depth)
	tw.w.WriteString(kind)
	for _, a := range attrs {
		if a.Value == "" {
			continue
		}
		tw.w.WriteByte(' ')
		tw.w.WriteString(a.Key)
		tw.w.WriteByte('=')
		tw.w.WriteString(encodeText(a.Value))
	}
	tw.w.WriteByte('\n')
}

func (tw TreeWriter) TextBlock(depth int, label, value string) {
	tw.indent(depth)
	tw.w.WriteString(label)
	tw.w.WriteString(": ")
	tw.w.WriteString(encodeText(value))
	tw.w.WriteByte('\n')
}

func encodeText(raw string) string {
	if raw == "" {
		return raw
	}
	return strconv.Quote(raw)
}
