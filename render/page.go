package render

import (
	"image"

	"mxc/cell"
)

// Options control page layout, lengths are in device pixels.
type Options struct {
	Width  int
	Margin int
	Gap    int
	Theme  Theme
}

func (o Options) inner() int {
	return max(o.Width-2*o.Margin, 1)
}

// Page lays out worksheet entries one under another and paints them. Cells
// of env must be measured with fonts for the result to look right.
func Page(groups []*cell.GroupCell, env *cell.Env, fonts *Fonts, opts Options) *image.RGBA {
	height := 2 * opts.Margin
	for i, g := range groups {
		g.Recalculate(env.FontSize)
		g.BreakOutput(opts.inner())
		g.Recalculate(env.FontSize)
		if i > 0 {
			height += opts.Gap
		}
		height += g.Height()
	}

	canvas := NewCanvas(opts.Width, height, fonts, opts.Theme)
	y := opts.Margin
	for _, g := range groups {
		g.Draw(canvas, image.Pt(opts.Margin, y+g.Center()))
		y += g.Height() + opts.Gap
	}
	return canvas.RGBA()
}

// Expression lays out single list of cells, breaking it into lines that
// fit the page width.
func Expression(head cell.Cell, env *cell.Env, fonts *Fonts, opts Options) *image.RGBA {
	cell.RecalculateList(head, env.FontSize)
	if cell.BreakUpCells(head, opts.inner()) {
		cell.RecalculateList(head, env.FontSize)
	}
	cell.BreakLines(head, opts.inner())
	size := cell.Bounds(head, opts.Gap)

	canvas := NewCanvas(opts.Width, size.Y+2*opts.Margin, fonts, opts.Theme)
	cell.DrawLines(canvas, head, image.Pt(opts.Margin, opts.Margin), opts.Gap)
	return canvas.RGBA()
}
