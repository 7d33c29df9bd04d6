package images

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// defaultSVGSize is used for plots whose viewBox has no size.
const defaultSVGSize = 640

// maxRasterDim bounds width and height of rasterized SVG.
var maxRasterDim = 8192

func readSVG(data []byte) (*oksvg.SvgIcon, image.Point, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(data))
	if err != nil {
		return nil, image.Point{}, err
	}
	w := int(math.Ceil(icon.ViewBox.W))
	h := int(math.Ceil(icon.ViewBox.H))
	if w <= 0 {
		w = defaultSVGSize
	}
	if h <= 0 {
		h = defaultSVGSize
	}
	return icon, image.Pt(w, h), nil
}

// SVGSize returns intrinsic size of SVG document.
func SVGSize(data []byte) (image.Point, error) {
	_, size, err := readSVG(data)
	return size, err
}

// rasterizeSVG paints plot on white background at its intrinsic size,
// scaled down when larger than maxRasterDim. Cells scale the result to
// their display size.
func rasterizeSVG(data []byte) (image.Image, error) {
	icon, size, err := readSVG(data)
	if err != nil {
		return nil, err
	}
	w, h := size.X, size.Y
	if w > maxRasterDim || h > maxRasterDim {
		s := min(float64(maxRasterDim)/float64(w), float64(maxRasterDim)/float64(h))
		w = max(int(math.Round(float64(w)*s)), 1)
		h = max(int(math.Round(float64(h)*s)), 1)
	}
	icon.SetTarget(0, 0, float64(w), float64(h))

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	icon.Draw(rasterx.NewDasher(w, h, rasterx.NewScannerGV(w, h, dst, dst.Bounds())), 1)
	return dst, nil
}
