package worksheet

import (
	"image"

	"mxc/cell"
	"mxc/render"
)

// Render paints the whole document as one page. fonts must be the
// measurer of the environment the document was loaded with.
func (d *Document) Render(fonts *render.Fonts, opts render.Options) *image.RGBA {
	if d.Zoom > 0 {
		d.env.Zoom = float64(d.Zoom) / 100
	}
	return render.Page(d.Cells, d.env, fonts, opts)
}

// Dump describes cell tree of every entry.
func (d *Document) Dump() string {
	return cell.Dump(d.head())
}
