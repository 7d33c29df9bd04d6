// Package parser builds cell trees from the XML markup produced by Maxima
// and stored in wxMaxima documents.
package parser

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/beevik/etree"
	"go.uber.org/zap"
	"golang.org/x/net/html/charset"

	"mxc/cell"
	"mxc/common"
)

// Notifier shows a warning to the user.
type Notifier func(message string)

// Parser converts markup into cells. It keeps state of the parse in
// progress and must not be used from several goroutines at once.
type Parser struct {
	env        *cell.Env
	fsys       fs.FS
	dir        string
	log        *zap.Logger
	notify     Notifier
	showLength common.ShowLength

	// state of the parse in progress, restored after recursion
	style     cell.CellType
	fracStyle cell.FracStyle
	highlight bool
	warned    bool

	loads int
}

type Option func(*Parser)

// WithFS makes images load from fsys, normally contents of wxmx archive.
func WithFS(fsys fs.FS) Option {
	return func(p *Parser) {
		p.fsys = fsys
	}
}

// WithWorkingDir sets directory relative image names are resolved against.
func WithWorkingDir(dir string) Option {
	return func(p *Parser) {
		p.dir = dir
	}
}

func WithLogger(log *zap.Logger) Option {
	return func(p *Parser) {
		p.log = log
	}
}

func WithNotifier(n Notifier) Option {
	return func(p *Parser) {
		p.notify = n
	}
}

func WithShowLength(l common.ShowLength) Option {
	return func(p *Parser) {
		p.showLength = l
	}
}

// New creates parser producing cells sharing env.
func New(env *cell.Env, opts ...Option) *Parser {
	if env == nil {
		env = cell.NewEnv(nil)
	}
	p := &Parser{
		env:        env,
		dir:        env.WorkingDir,
		log:        zap.NewNop(),
		showLength: common.ShowLengthNormal,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.log = p.log.Named("parser")
	if p.notify == nil {
		p.notify = func(message string) {
			p.log.Warn(message)
		}
	}
	initTables()
	return p
}

// Loads returns number of documents and images parser has read so far.
func (p *Parser) Loads() int { return p.loads }

func (p *Parser) reset(style cell.CellType) {
	p.style = style
	p.fracStyle = cell.FracNormal
	p.highlight = false
	p.warned = false
}

func newDocument() *etree.Document {
	doc := etree.NewDocument()
	doc.ReadSettings = etree.ReadSettings{
		CharsetReader: charset.NewReaderLabel,
		Permissive:    true,
	}
	return doc
}

// replaceControls substitutes replacement character for control characters
// other than line breaks and tabs, XML does not allow them.
func replaceControls(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\t' || r == '\n' || r == '\r':
			return r
		case unicode.IsControl(r):
			return utf8.RuneError
		}
		return r
	}, s)
}

// ParseLine parses markup s, the children of its root element become the
// returned list. Input longer than configured limit is not parsed, a single
// warning cell is returned instead. Nil is returned when there is nothing
// to show.
func (p *Parser) ParseLine(s string, style cell.CellType) cell.Cell {
	p.reset(style)

	s = replaceControls(s)
	if limit := p.showLength.Threshold(); limit != 0 && utf8.RuneCountInString(s) >= limit {
		return p.tooLong()
	}

	doc := newDocument()
	p.loads++
	if err := doc.ReadFromString(s); err != nil {
		p.log.Warn("Unable to parse expression", zap.Error(err))
		return nil
	}
	root := doc.Root()
	if root == nil {
		return nil
	}
	return p.parseTag(childrenOf(root), true)
}

func (p *Parser) tooLong() cell.Cell {
	c := cell.NewTextCell(p.env, "(Expression longer than allowed by the configuration setting)", cell.TextStyleWarning)
	c.SetType(cell.CellTypeWarning)
	c.SetToolTip("The maximum size of the expressions that are displayed can be changed in the configuration.")
	c.SetForceBreakLine(true)
	return c
}

// ParseTag parses node, and when all is set every following sibling of it.
func (p *Parser) ParseTag(node etree.Token, all bool) cell.Cell {
	if node == nil {
		return nil
	}
	p.warned = false
	return p.parseTag(siblingsFrom(node), all)
}

// Header holds attributes of the document root.
type Header struct {
	Version    string
	Zoom       int
	ActiveCell int
}

var ErrNotDocument = errors.New("not a wxMaxima document")

// ParseDocument reads complete wxMaximaDocument and returns its top level
// entries in order.
func (p *Parser) ParseDocument(r io.Reader) ([]*cell.GroupCell, Header, error) {
	p.reset(cell.CellTypeDefault)

	var hdr Header
	doc := newDocument()
	p.loads++
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, hdr, fmt.Errorf("unable to read document: %w", err)
	}
	root := doc.Root()
	if root == nil || root.Tag != "wxMaximaDocument" {
		return nil, hdr, ErrNotDocument
	}
	hdr.Version = root.SelectAttrValue("version", "")
	hdr.Zoom = atoi(root.SelectAttrValue("zoom", "100"), 100)
	hdr.ActiveCell = atoi(root.SelectAttrValue("activecell", "-1"), -1)

	var groups []*cell.GroupCell
	for c := range cell.All(p.parseTag(childrenOf(root), true)) {
		g, ok := c.(*cell.GroupCell)
		if !ok {
			p.log.Warn("Unexpected content at document level, ignoring", zap.String("content", c.ToString()))
			continue
		}
		groups = append(groups, g)
	}
	return groups, hdr, nil
}

func atoi(s string, def int) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return def
	}
	return v
}

// parseTag parses token under cursor, and with all set the rest of its
// siblings. Without all cursor is left at the consumed token.
func (p *Parser) parseTag(c *cursor, all bool) cell.Cell {
	var head cell.Cell
	for ; c.valid(); c.next() {
		head = cell.Append(head, p.parseNode(c.token(), all))
		if !all {
			break
		}
	}
	return head
}

func (p *Parser) parseNode(tok etree.Token, all bool) cell.Cell {
	switch t := tok.(type) {
	case *etree.CharData:
		return p.textCells(t.Data, cell.TextStyleDefault)
	case *etree.Element:
		fn, known := innerTags[t.Tag]
		if known {
			if res := fn(p, t); res != nil {
				return res
			}
		} else {
			p.unknownTag(t)
		}
		if len(t.ChildElements()) > 0 || strings.TrimSpace(t.Text()) != "" {
			if res := p.parseTag(childrenOf(t), true); res != nil {
				return res
			}
		}
		if known && all {
			return cell.NewTextCell(p.env, "", cell.TextStyleDefault)
		}
	}
	return nil
}

func (p *Parser) unknownTag(el *etree.Element) {
	p.log.Debug("Unknown tag", zap.String("tag", el.FullTag()))
	if p.warned {
		return
	}
	p.warned = true
	p.notify("Parts of the document will not be loaded correctly: found unknown XML tag " + el.FullTag())
}

// commonAttrs applies attributes every element may carry.
func (p *Parser) commonAttrs(el *etree.Element, c cell.Cell) {
	if c == nil || el == nil {
		return
	}
	if el.SelectAttrValue("breakline", "false") == "true" {
		c.SetForceBreakLine(true)
	}
	if a := el.SelectAttr("tooltip"); a != nil {
		c.SetToolTip(a.Value)
	}
	if a := el.SelectAttr("altCopy"); a != nil {
		c.SetAltCopy(a.Value)
	}
}

// finish sets what every composite cell gets from the parse state.
func (p *Parser) finish(el *etree.Element, c cell.Cell) cell.Cell {
	c.SetType(p.style)
	c.SetHighlight(p.highlight)
	p.commonAttrs(el, c)
	return c
}

// missing marks place where markup lacks required content.
func (p *Parser) missing(c cell.Cell) cell.Cell {
	if c != nil {
		return c
	}
	t := cell.NewTextCell(p.env, "Bug: Missing contents", cell.TextStyleError)
	t.SetType(cell.CellTypeError)
	t.SetToolTip("The XML data from Maxima or from the document was missing data here.")
	return t
}

// cursor walks sibling tokens skipping formatting whitespace, comments and
// processing instructions.
type cursor struct {
	tokens []etree.Token
	pos    int
}

func childrenOf(el *etree.Element) *cursor {
	c := &cursor{tokens: el.Child}
	c.skip()
	return c
}

func siblingsFrom(tok etree.Token) *cursor {
	c := &cursor{tokens: []etree.Token{tok}}
	if parent := tok.Parent(); parent != nil {
		c.tokens, c.pos = parent.Child, tok.Index()
	}
	c.skip()
	return c
}

// formatting reports text node that carries no content. Single stray
// characters count as formatting too.
func formatting(cd *etree.CharData) bool {
	return utf8.RuneCountInString(strings.TrimSpace(cd.Data)) <= 1
}

func (c *cursor) skip() {
	for ; c.pos < len(c.tokens); c.pos++ {
		switch t := c.tokens[c.pos].(type) {
		case *etree.Element:
			return
		case *etree.CharData:
			if !formatting(t) {
				return
			}
		}
	}
}

func (c *cursor) valid() bool { return c.pos < len(c.tokens) }

func (c *cursor) token() etree.Token {
	if !c.valid() {
		return nil
	}
	return c.tokens[c.pos]
}

// element returns element under cursor, nil for text.
func (c *cursor) element() *etree.Element {
	el, _ := c.token().(*etree.Element)
	return el
}

func (c *cursor) next() {
	if c.valid() {
		c.pos++
	}
	c.skip()
}
