package images

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/h2non/filetype"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// FormatSVG is reported for SVG documents, which filetype does not
// recognize.
const FormatSVG = "svg"

var ErrUnknownFormat = errors.New("unknown image format")

// Detect returns short format name of image data (png, jpg, gif, svg...).
func Detect(data []byte) (string, error) {
	if len(data) == 0 {
		return "", ErrUnknownFormat
	}
	kind, err := filetype.Match(data)
	if err == nil && kind != filetype.Unknown && filetype.IsImage(data) {
		return kind.Extension, nil
	}
	if isSVG(data) {
		return FormatSVG, nil
	}
	return "", ErrUnknownFormat
}

func isSVG(data []byte) bool {
	head := data[:min(len(data), 1024)]
	return bytes.Contains(head, []byte("<svg"))
}

// Extension returns file extension used when storing images of format.
func Extension(format string) string {
	switch strings.ToLower(format) {
	case "jpeg", "jpg":
		return "jpg"
	case "tif", "tiff":
		return "tiff"
	case "":
		return "img"
	}
	return strings.ToLower(format)
}

// Size returns pixel dimensions of image data without decoding the pixels.
func Size(data []byte, format string) (image.Point, error) {
	if format == FormatSVG {
		return SVGSize(data)
	}
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return image.Point{}, fmt.Errorf("unable to read %s image header: %w", format, err)
	}
	return image.Pt(cfg.Width, cfg.Height), nil
}

// Decode decodes image data. SVG is rasterized at its intrinsic size.
func Decode(data []byte, format string) (image.Image, error) {
	if format == FormatSVG {
		return rasterizeSVG(data)
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("unable to decode %s image: %w", format, err)
	}
	return img, nil
}

// Frames returns frames of animated GIF. Single frame and non GIF images
// give nil.
func Frames(data []byte) ([]image.Image, error) {
	if !filetype.Is(data, "gif") {
		return nil, nil
	}
	anim, err := gif.DecodeAll(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("unable to decode animation: %w", err)
	}
	if len(anim.Image) < 2 {
		return nil, nil
	}
	frames := make([]image.Image, 0, len(anim.Image))
	for _, f := range anim.Image {
		frames = append(frames, f)
	}
	return frames, nil
}

// Resize stretches img to exactly w x h.
func Resize(img image.Image, w, h int) image.Image {
	b := img.Bounds()
	if w <= 0 || h <= 0 || (b.Dx() == w && b.Dy() == h) {
		return img
	}
	return imaging.Resize(img, w, h, imaging.Linear)
}

// Encode writes img in the format selected by extension of name, png when
// it is not recognized.
func Encode(w io.Writer, img image.Image, name string) error {
	format, err := imaging.FormatFromFilename(name)
	if err != nil {
		format = imaging.PNG
	}
	opts := []imaging.EncodeOption{imaging.JPEGQuality(90)}
	if err := imaging.Encode(w, img, format, opts...); err != nil {
		return fmt.Errorf("unable to encode %s: %w", format, err)
	}
	return nil
}
