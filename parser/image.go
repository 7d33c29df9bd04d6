package parser

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/beevik/etree"
	"go.uber.org/zap"

	"mxc/cell"
	"mxc/utils/images"
)

// readFile loads named file from archive when parser has one, from disk
// otherwise. Relative names not found on disk are tried against working
// directory.
func (p *Parser) readFile(name string) ([]byte, error) {
	if p.fsys != nil {
		name = path.Clean(strings.TrimPrefix(filepath.ToSlash(name), "/"))
		if !fs.ValidPath(name) {
			return nil, fmt.Errorf("invalid path %q", name)
		}
		return fs.ReadFile(p.fsys, name)
	}
	return os.ReadFile(p.resolve(name))
}

func (p *Parser) resolve(name string) string {
	if !filepath.IsAbs(name) && p.dir != "" {
		if _, err := os.Stat(name); errors.Is(err, fs.ErrNotExist) {
			return filepath.Join(p.dir, name)
		}
	}
	return name
}

// removeFile deletes temporary file maxima produced for us.
func (p *Parser) removeFile(name string) {
	if p.fsys != nil {
		return
	}
	if err := os.Remove(p.resolve(name)); err != nil {
		p.log.Debug("Unable to remove temporary image", zap.String("file", name), zap.Error(err))
	}
}

func broken(name string, err error) *cell.Picture {
	return &cell.Picture{Name: name, Err: err.Error()}
}

// loadPicture reads and decodes single image. Failures give broken picture
// carrying the reason. Frames are returned for animated images.
func (p *Parser) loadPicture(name string) (*cell.Picture, []*cell.Picture) {
	data, err := p.readFile(name)
	if err != nil {
		p.log.Warn("Unable to load image", zap.String("file", name), zap.Error(err))
		return broken(name, err), nil
	}
	p.loads++

	format, err := images.Detect(data)
	if err != nil {
		p.log.Warn("Unable to detect image format", zap.String("file", name), zap.Error(err))
		return broken(name, err), nil
	}
	pic := &cell.Picture{Name: name, Data: data, Format: format}
	if pic.Size, err = images.Size(data, format); err != nil {
		p.log.Warn("Unable to read image size", zap.String("file", name), zap.Error(err))
		pic.Err = err.Error()
		return pic, nil
	}
	if pic.Image, err = images.Decode(data, format); err != nil {
		p.log.Warn("Unable to decode image", zap.String("file", name), zap.Error(err))
		pic.Err = err.Error()
		return pic, nil
	}

	frames, err := images.Frames(data)
	if err != nil {
		p.log.Debug("Unable to decode animation, using first frame", zap.String("file", name), zap.Error(err))
		return pic, nil
	}
	var res []*cell.Picture
	base := strings.TrimSuffix(name, path.Ext(name))
	for i, f := range frames {
		res = append(res, &cell.Picture{
			Name:   base + "." + strconv.Itoa(i) + ".png",
			Format: "png",
			Image:  f,
			Size:   f.Bounds().Size(),
		})
	}
	return pic, res
}

func (p *Parser) parseImage(el *etree.Element) cell.Cell {
	name := strings.TrimSpace(el.Text())
	pic, frames := p.loadPicture(name)
	// only files maxima created for this output are removed
	if del := el.SelectAttrValue("del", ""); del == "yes" || del == "true" {
		p.removeFile(name)
	}
	if len(frames) > 1 {
		res := cell.NewSlideShowCell(p.env, frames)
		p.commonAttrs(el, res)
		return res
	}

	pic.GnuplotSource = el.SelectAttrValue("gnuplotsource", "")
	if pic.GnuplotSource != "" {
		pic.GnuplotData = el.SelectAttrValue("gnuplotdata", "")
	}
	res := cell.NewImgCell(p.env, pic)
	if el.SelectAttrValue("rect", "true") == "false" {
		res.SetDrawRectangle(false)
	}
	if w, err := strconv.ParseFloat(el.SelectAttrValue("maxWidth", "-1"), 64); err == nil && w > 0 {
		res.SetMaxWidth(w)
	}
	if h, err := strconv.ParseFloat(el.SelectAttrValue("maxHeight", "-1"), 64); err == nil && h > 0 {
		res.SetMaxHeight(h)
	}
	p.commonAttrs(el, res)
	return res
}

func splitList(s string) []string {
	var res []string
	for item := range strings.SplitSeq(s, ";") {
		if item != "" {
			res = append(res, item)
		}
	}
	return res
}

func (p *Parser) parseSlideshow(el *etree.Element) cell.Cell {
	del := el.SelectAttrValue("del", "false") == "true"
	names := splitList(el.Text())
	sources := splitList(el.SelectAttrValue("gnuplotSources", ""))
	data := splitList(el.SelectAttrValue("gnuplotData", ""))

	frames := make([]*cell.Picture, 0, len(names))
	for i, name := range names {
		pic, _ := p.loadPicture(name)
		if del {
			p.removeFile(name)
		}
		if i < len(sources) && i < len(data) {
			pic.GnuplotSource, pic.GnuplotData = sources[i], data[i]
		}
		frames = append(frames, pic)
	}

	res := cell.NewSlideShowCell(p.env, frames)
	if fr, err := strconv.Atoi(el.SelectAttrValue("fr", "")); err == nil {
		res.SetFrameRate(fr)
	}
	if frame, err := strconv.Atoi(el.SelectAttrValue("frame", "")); err == nil {
		res.SetDisplayedIndex(frame)
	}
	if el.SelectAttrValue("running", "true") == "false" {
		res.SetRunning(false)
	}
	p.commonAttrs(el, res)
	return res
}
