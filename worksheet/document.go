// Package worksheet loads whole worksheets and stores them in any of the
// supported output formats.
package worksheet

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/beevik/etree"
	"go.uber.org/zap"

	"mxc/archive"
	"mxc/cell"
	"mxc/common"
	"mxc/config"
	"mxc/misc"
	"mxc/parser"
)

// DocumentVersion is written into wxMaximaDocument version attribute.
const DocumentVersion = "1.5"

var ErrUnsupported = errors.New("unsupported worksheet file")

// Document is a parsed worksheet: the list of its entries and the header
// values needed to write it back.
type Document struct {
	Cells      []*cell.GroupCell
	Version    string
	Zoom       int
	ActiveCell int

	env *cell.Env
	log *zap.Logger
}

// Load reads .wxmx container or plain .xml worksheet. Images referenced by
// a plain document are resolved relative to its directory.
func Load(ctx context.Context, path string, env *cell.Env, cfg *config.DocumentConfig, log *zap.Logger) (*Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	log = log.Named("worksheet")

	dir := filepath.Dir(path)
	opts := []parser.Option{
		parser.WithLogger(log),
		parser.WithWorkingDir(dir),
		parser.WithShowLength(cfg.ShowLength),
	}

	var content []byte
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wxmx":
		w, err := archive.OpenWxmx(path)
		if err != nil {
			return nil, err
		}
		defer w.Close()

		log.Debug("Opened worksheet container", zap.String("file", path), zap.Strings("entries", w.Names()))
		content = w.Content
		opts = append(opts, parser.WithFS(w.FS()))
	case ".xml":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("unable to read worksheet (%s): %w", path, err)
		}
		content = data
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, path)
	}

	env.WorkingDir = dir
	p := parser.New(env, opts...)
	cells, hdr, err := p.ParseDocument(bytes.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("unable to parse worksheet (%s): %w", path, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	log.Debug("Worksheet loaded", zap.String("file", path), zap.String("version", hdr.Version),
		zap.Int("cells", len(cells)), zap.Int("loads", p.Loads()))

	return &Document{
		Cells:      cells,
		Version:    hdr.Version,
		Zoom:       hdr.Zoom,
		ActiveCell: hdr.ActiveCell,
		env:        env,
		log:        log,
	}, nil
}

// head returns the first entry, entries are linked into one list.
func (d *Document) head() cell.Cell {
	if len(d.Cells) == 0 {
		return nil
	}
	return d.Cells[0]
}

const (
	mathmlNS = "http://www.w3.org/1998/Math/MathML"
	ommlNS   = "http://schemas.openxmlformats.org/officeDocument/2006/math"
)

// ToXML returns complete wxMaximaDocument.
func (d *Document) ToXML() (string, error) {
	zoom := d.Zoom
	if zoom <= 0 {
		zoom = 100
	}

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	doc.CreateText("\n\n")
	doc.CreateComment("   Created using " + misc.GetAppName() + "   ")
	doc.CreateText("\n\n")

	root := doc.CreateElement("wxMaximaDocument")
	root.CreateAttr("version", DocumentVersion)
	root.CreateAttr("zoom", strconv.Itoa(zoom))
	root.CreateAttr("activecell", strconv.Itoa(d.ActiveCell))
	root.CreateText("\n\n")
	for _, g := range d.Cells {
		if err := appendMarkup(root, g.ToXML()); err != nil {
			return "", err
		}
		root.CreateText("\n\n")
	}
	return doc.WriteToString()
}

// appendMarkup parses serialized cell markup and moves its root element
// under parent.
func appendMarkup(parent *etree.Element, markup string) error {
	frag := etree.NewDocument()
	if err := frag.ReadFromString(markup); err != nil {
		return fmt.Errorf("unable to build %s element: %w", parent.Tag, err)
	}
	if el := frag.Root(); el != nil {
		parent.AddChild(el)
	}
	return nil
}

// Export converts document to one of the textual formats.
func (d *Document) Export(format common.OutputFmt) ([]byte, error) {
	switch format {
	case common.OutputFmtText:
		return []byte(d.join((*cell.GroupCell).ToString, "\n\n") + "\n"), nil
	case common.OutputFmtMatlab:
		return []byte(d.join((*cell.GroupCell).ToMatlab, "\n\n") + "\n"), nil
	case common.OutputFmtTex:
		return []byte(texPreamble + d.join((*cell.GroupCell).ToTeX, "\n\n") + "\n\n\\end{document}\n"), nil
	case common.OutputFmtMathml:
		return d.mathml()
	case common.OutputFmtOmml:
		return d.omml()
	case common.OutputFmtXml:
		s, err := d.ToXML()
		if err != nil {
			return nil, err
		}
		return []byte(s + "\n"), nil
	default:
		return nil, fmt.Errorf("%w: %s is not a textual format", ErrUnsupported, format)
	}
}

// mathml puts every entry into its own row of a single block table.
func (d *Document) mathml() ([]byte, error) {
	doc := etree.NewDocument()
	math := doc.CreateElement("math")
	math.CreateAttr("xmlns", mathmlNS)
	math.CreateAttr("display", "block")
	table := math.CreateElement("mtable")
	for _, g := range d.Cells {
		td := table.CreateElement("mtr").CreateElement("mtd")
		if err := appendMarkup(td, g.ToMathML()); err != nil {
			return nil, err
		}
		table.CreateText("\n")
	}
	return writeDocument(doc)
}

// omml writes one m:oMath per entry with visible content.
func (d *Document) omml() ([]byte, error) {
	doc := etree.NewDocument()
	para := doc.CreateElement("m:oMathPara")
	para.CreateAttr("xmlns:m", ommlNS)
	for _, g := range d.Cells {
		s := g.ToOMML()
		if s == "" {
			continue
		}
		if err := appendMarkup(para, "<m:oMath>"+s+"</m:oMath>"); err != nil {
			return nil, err
		}
		para.CreateText("\n")
	}
	return writeDocument(doc)
}

func writeDocument(doc *etree.Document) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := doc.WriteTo(&buf); err != nil {
		return nil, err
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

func (d *Document) join(conv func(*cell.GroupCell) string, sep string) string {
	parts := make([]string, 0, len(d.Cells))
	for _, g := range d.Cells {
		if s := conv(g); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, sep)
}

const texPreamble = `\documentclass{article}
\usepackage{amsmath}
\usepackage{graphicx}
\begin{document}

`

// Save writes document to path in the requested format.
func (d *Document) Save(path string, format common.OutputFmt, fixZip bool) error {
	if format == common.OutputFmtWxmx {
		files, err := d.Images()
		if err != nil {
			return err
		}
		content, err := d.ToXML()
		if err != nil {
			return err
		}
		return archive.WriteWxmx(path, []byte(content), files, fixZip)
	}

	data, err := d.Export(format)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("unable to create output directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("unable to write output file: %w", err)
	}
	return nil
}
