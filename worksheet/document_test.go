package worksheet

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/beevik/etree"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"mxc/archive"
	"mxc/cell"
	"mxc/common"
	"mxc/config"
	"mxc/render"
)

const sheetTemplate = `<?xml version="1.0" encoding="UTF-8"?>
<wxMaximaDocument version="1.5" zoom="120" activecell="2">
<cell type="code">
<input>
<editor type="input">
<line>integrate(x,x);</line>
</editor>
</input>
<output>
<mth><lbl>(%o1) </lbl><f><r><e><r><v>x</v></r><r><n>2</n></r></e></r><r><n>2</n></r></f></mth></output>
</cell>
<cell type="image">
<editor type="text">
<line>first plot</line>
</editor>
<img>plot.png</img>
</cell>
<cell type="image">
<editor type="text">
<line>second plot</line>
</editor>
<img>OUTSIDE</img>
</cell>
<cell type="image">
<editor type="text">
<line>missing</line>
</editor>
<img>missing.png</img>
</cell>
</wxMaximaDocument>
`

func newTestLogger(t *testing.T) *zap.Logger {
	return zaptest.NewLogger(t, zaptest.WrapOptions(zap.AddCaller(), zap.AddCallerSkip(1)))
}

func testConfig() *config.DocumentConfig {
	return &config.DocumentConfig{ShowLength: common.ShowLengthNormal}
}

func pngData(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := range w {
		img.Set(x, h/2, color.Black)
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

// writeSheet creates worksheet next to plot.png with second image kept in
// another directory and referenced by absolute path.
func writeSheet(t *testing.T) string {
	t.Helper()
	dir, other := t.TempDir(), t.TempDir()

	if err := os.WriteFile(filepath.Join(dir, "plot.png"), pngData(t, 20, 10), 0644); err != nil {
		t.Fatal(err)
	}
	outside := filepath.Join(other, "elsewhere.png")
	if err := os.WriteFile(outside, pngData(t, 10, 10), 0644); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, "sheet.xml")
	if err := os.WriteFile(path, []byte(strings.Replace(sheetTemplate, "OUTSIDE", outside, 1)), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func loadSheet(t *testing.T, path string, env *cell.Env) *Document {
	t.Helper()
	if env == nil {
		env = cell.NewEnv(nil)
	}
	doc, err := Load(context.Background(), path, env, testConfig(), newTestLogger(t))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	return doc
}

func pictures(doc *Document) []*cell.Picture {
	var res []*cell.Picture
	for c := range cell.Tree(doc.head()) {
		if img, ok := c.(*cell.ImgCell); ok {
			res = append(res, img.Picture())
		}
	}
	return res
}

func TestLoad_XML(t *testing.T) {
	doc := loadSheet(t, writeSheet(t), nil)

	if len(doc.Cells) != 4 {
		t.Fatalf("got %d cells, want 4", len(doc.Cells))
	}
	if doc.Version != "1.5" || doc.Zoom != 120 || doc.ActiveCell != 2 {
		t.Errorf("header = %s/%d/%d", doc.Version, doc.Zoom, doc.ActiveCell)
	}
	pics := pictures(doc)
	if len(pics) != 3 {
		t.Fatalf("got %d pictures, want 3", len(pics))
	}
	if pics[0].Broken() || pics[1].Broken() {
		t.Errorf("pictures not loaded: %q %q", pics[0].Err, pics[1].Err)
	}
	if !pics[2].Broken() {
		t.Error("missing picture is not broken")
	}
}

func TestLoad_Errors(t *testing.T) {
	log := newTestLogger(t)
	dir := t.TempDir()

	t.Run("unsupported", func(t *testing.T) {
		_, err := Load(context.Background(), filepath.Join(dir, "sheet.doc"), cell.NewEnv(nil), testConfig(), log)
		if !errors.Is(err, ErrUnsupported) {
			t.Errorf("error = %v, want %v", err, ErrUnsupported)
		}
	})

	t.Run("missing", func(t *testing.T) {
		if _, err := Load(context.Background(), filepath.Join(dir, "none.xml"), cell.NewEnv(nil), testConfig(), log); err == nil {
			t.Error("Expected error for missing file")
		}
	})

	t.Run("not a worksheet", func(t *testing.T) {
		path := filepath.Join(dir, "page.xml")
		if err := os.WriteFile(path, []byte("<html></html>"), 0644); err != nil {
			t.Fatal(err)
		}
		if _, err := Load(context.Background(), path, cell.NewEnv(nil), testConfig(), log); err == nil {
			t.Error("Expected error for non worksheet xml")
		}
	})

	t.Run("cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		if _, err := Load(ctx, writeSheet(t), cell.NewEnv(nil), testConfig(), log); !errors.Is(err, context.Canceled) {
			t.Errorf("error = %v, want %v", err, context.Canceled)
		}
	})
}

func TestDocument_Images(t *testing.T) {
	doc := loadSheet(t, writeSheet(t), nil)

	files, err := doc.Images()
	if err != nil {
		t.Fatalf("Images() error = %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("got %d files, want 2: %v", len(files), keys(files))
	}
	if _, ok := files["plot.png"]; !ok {
		t.Errorf("plot.png not kept: %v", keys(files))
	}
	if _, ok := files["image1.png"]; !ok {
		t.Errorf("outside picture not renamed: %v", keys(files))
	}

	xml := toXML(t, doc)
	for _, want := range []string{"<img>plot.png</img>", "<img>image1.png</img>"} {
		if !strings.Contains(xml, want) {
			t.Errorf("document has no %q:\n%s", want, xml)
		}
	}
}

func keys(m map[string][]byte) []string {
	var res []string
	for k := range m {
		res = append(res, k)
	}
	return res
}

func TestContainerName(t *testing.T) {
	tests := map[string]bool{
		"image1.png":    true,
		"":              false,
		"dir/image.png": false,
		`C:\image.png`:  false,
		"noextension":   false,
		"plot.0.png":    true,
	}
	for name, want := range tests {
		if got := containerName(name); got != want {
			t.Errorf("containerName(%q) = %v, want %v", name, got, want)
		}
	}
}

func toXML(t *testing.T, doc *Document) string {
	t.Helper()
	s, err := doc.ToXML()
	if err != nil {
		t.Fatalf("ToXML() error = %v", err)
	}
	return s
}

func TestDocument_ToXML(t *testing.T) {
	doc := loadSheet(t, writeSheet(t), nil)
	xml := toXML(t, doc)

	if !strings.HasPrefix(xml, `<?xml version="1.0" encoding="UTF-8"?>`) {
		t.Errorf("no declaration:\n%s", xml)
	}
	for _, want := range []string{
		`<wxMaximaDocument version="1.5" zoom="120" activecell="2">`,
		"integrate(x,x);",
		"</wxMaximaDocument>",
	} {
		if !strings.Contains(xml, want) {
			t.Errorf("document has no %q:\n%s", want, xml)
		}
	}

	doc.Zoom = 0
	if !strings.Contains(toXML(t, doc), `zoom="100"`) {
		t.Error("missing zoom not defaulted")
	}
}

func TestDocument_Export(t *testing.T) {
	doc := loadSheet(t, writeSheet(t), nil)

	tests := []struct {
		format common.OutputFmt
		want   []string
	}{
		{common.OutputFmtText, []string{"integrate(x,x);", "x^2/2", "first plot"}},
		{common.OutputFmtMatlab, []string{"integrate(x,x);"}},
		{common.OutputFmtTex, []string{`\documentclass{article}`, `\frac{`, `\end{document}`}},
		{common.OutputFmtMathml, []string{`<math xmlns="http://www.w3.org/1998/Math/MathML"`, "<mtr><mtd>", "<mfrac>"}},
		{common.OutputFmtOmml, []string{"<m:oMathPara", "<m:oMath>", "</m:oMathPara>"}},
		{common.OutputFmtXml, []string{"<wxMaximaDocument", "<img>plot.png</img>"}},
	}
	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			data, err := doc.Export(tt.format)
			if err != nil {
				t.Fatalf("Export() error = %v", err)
			}
			for _, w := range tt.want {
				if !bytes.Contains(data, []byte(w)) {
					t.Errorf("export has no %q:\n%s", w, data)
				}
			}
		})
	}

	if _, err := doc.Export(common.OutputFmtWxmx); !errors.Is(err, ErrUnsupported) {
		t.Errorf("Export(wxmx) error = %v", err)
	}
}

func readRoot(t *testing.T, data []byte) *etree.Element {
	t.Helper()
	xdoc := etree.NewDocument()
	if err := xdoc.ReadFromBytes(data); err != nil {
		t.Fatalf("output is not well formed: %v\n%s", err, data)
	}
	root := xdoc.Root()
	if root == nil {
		t.Fatalf("output has no root element:\n%s", data)
	}
	return root
}

func TestDocument_XMLStructure(t *testing.T) {
	doc := loadSheet(t, writeSheet(t), nil)

	t.Run("worksheet", func(t *testing.T) {
		root := readRoot(t, []byte(toXML(t, doc)))
		if root.Tag != "wxMaximaDocument" {
			t.Fatalf("root = %q", root.Tag)
		}
		for attr, want := range map[string]string{"version": DocumentVersion, "zoom": "120", "activecell": "2"} {
			if got := root.SelectAttrValue(attr, ""); got != want {
				t.Errorf("%s = %q, want %q", attr, got, want)
			}
		}
		cells := root.SelectElements("cell")
		if len(cells) != 4 {
			t.Fatalf("got %d cells, want 4", len(cells))
		}
		if typ := cells[1].SelectAttrValue("type", ""); typ != "image" {
			t.Errorf("second cell type = %q", typ)
		}
	})

	t.Run("mathml", func(t *testing.T) {
		data, err := doc.Export(common.OutputFmtMathml)
		if err != nil {
			t.Fatalf("Export() error = %v", err)
		}
		root := readRoot(t, data)
		if root.Tag != "math" || root.SelectAttrValue("xmlns", "") != mathmlNS || root.SelectAttrValue("display", "") != "block" {
			t.Errorf("root = %s %v", root.Tag, root.Attr)
		}
		table := root.SelectElement("mtable")
		if table == nil {
			t.Fatal("no mtable")
		}
		if rows := table.SelectElements("mtr"); len(rows) != 4 {
			t.Errorf("got %d rows, want 4", len(rows))
		}
		if len(root.FindElements("//mfrac")) != 1 {
			t.Error("fraction lost")
		}
	})

	t.Run("omml", func(t *testing.T) {
		data, err := doc.Export(common.OutputFmtOmml)
		if err != nil {
			t.Fatalf("Export() error = %v", err)
		}
		root := readRoot(t, data)
		if root.Space != "m" || root.Tag != "oMathPara" || root.SelectAttrValue("xmlns:m", "") != ommlNS {
			t.Errorf("root = %s:%s %v", root.Space, root.Tag, root.Attr)
		}
		maths := root.SelectElements("m:oMath")
		if len(maths) == 0 {
			t.Fatal("no m:oMath entries")
		}
		for _, m := range maths {
			if len(m.ChildElements()) == 0 {
				t.Error("empty m:oMath entry")
			}
		}
	})
}

func TestDocument_SaveWxmx(t *testing.T) {
	for _, fix := range []bool{false, true} {
		name := "plain"
		if fix {
			name = "fixed"
		}
		t.Run(name, func(t *testing.T) {
			doc := loadSheet(t, writeSheet(t), nil)
			out := filepath.Join(t.TempDir(), "out", "sheet.wxmx")
			if err := doc.Save(out, common.OutputFmtWxmx, fix); err != nil {
				t.Fatalf("Save() error = %v", err)
			}

			w, err := archive.OpenWxmx(out)
			if err != nil {
				t.Fatalf("OpenWxmx() error = %v", err)
			}
			names := w.Names()
			w.Close()
			want := []string{archive.ContentName, "image1.png", "mimetype", "plot.png"}
			if strings.Join(names, ",") != strings.Join(want, ",") {
				t.Errorf("Names() = %v, want %v", names, want)
			}

			again := loadSheet(t, out, nil)
			pics := pictures(again)
			if len(pics) != 3 || pics[0].Broken() || pics[1].Broken() {
				t.Fatalf("pictures lost in round trip: %+v", pics)
			}
			if pics[1].Name != "image1.png" {
				t.Errorf("renamed picture = %q", pics[1].Name)
			}
		})
	}
}

func TestDocument_SaveText(t *testing.T) {
	doc := loadSheet(t, writeSheet(t), nil)
	out := filepath.Join(t.TempDir(), "nested", "sheet.txt")
	if err := doc.Save(out, common.OutputFmtText, false); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(data, []byte("integrate(x,x);")) {
		t.Errorf("unexpected text:\n%s", data)
	}
}

func TestDocument_Dump(t *testing.T) {
	doc := loadSheet(t, writeSheet(t), nil)
	dump := doc.Dump()
	if strings.Count(dump, "GroupCell") < 4 {
		t.Errorf("dump misses groups:\n%s", dump)
	}
	if !strings.Contains(dump, "ImgCell") {
		t.Errorf("dump misses images:\n%s", dump)
	}
}

func TestDocument_Render(t *testing.T) {
	fonts, err := render.NewFonts(72)
	if err != nil {
		t.Fatalf("NewFonts() error = %v", err)
	}
	t.Cleanup(func() { _ = fonts.Close() })

	env := cell.NewEnv(fonts)
	doc := loadSheet(t, writeSheet(t), env)
	img := doc.Render(fonts, render.Options{Width: 400, Margin: 5, Gap: 4, Theme: render.DefaultTheme()})

	if img.Bounds().Dx() != 400 || img.Bounds().Dy() <= 10 {
		t.Errorf("image size = %v", img.Bounds())
	}
	if env.Zoom != 1.2 {
		t.Errorf("document zoom not applied: %v", env.Zoom)
	}
}
